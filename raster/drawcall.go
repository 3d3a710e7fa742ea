// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package raster

// VertexBuffer is a borrowed, read-only byte buffer bound
// to one VertexBinding slot for the duration of a draw.
type VertexBuffer struct {
	Data   []byte
	Stride int
}

// Rect is an axis-aligned pixel rectangle, used both for a
// caller-supplied scissor and for the derived per-face
// scissor.
type Rect struct {
	X, Y, Width, Height int
}

// empty reports whether r covers no pixels.
func (r Rect) empty() bool { return r.Width <= 0 || r.Height <= 0 }

// IndexedDrawCall describes one indexed draw: a pipeline, a
// target framebuffer, one vertex buffer per pipeline
// binding, a shared u16 index array and instancing
// parameters.
type IndexedDrawCall struct {
	Pipeline      *Pipeline
	Framebuffer   *Framebuffer
	VertexBuffers []VertexBuffer
	Indices       []uint16

	VertexOffset  int
	FirstIndex    int
	IndexCount    int
	FirstInstance uint32
	InstanceCount uint32

	// Scissor, if non-nil, is intersected with the
	// per-face derived scissor.
	Scissor *Rect

	// Uniform is passed through to ShaderContext.Uniform
	// unmodified.
	Uniform any
}
