// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package raster

// The types below describe a deep, re-renderable snapshot
// of one indexed draw call. They are produced by the draw
// orchestrator when a CaptureSink is installed and consumed
// by the capture package, which owns their lifetime.
//
// raster never imports capture - capture imports raster and
// implements CaptureSink - so that rasterizer.go can record
// events without a package cycle, unlike the original C
// implementation where capture.c and rasterizer.c include
// each other's headers directly.

// CapturedVertexBuffer is a deep copy of one VertexBuffer
// bound at draw time.
type CapturedVertexBuffer struct {
	Data         []byte
	Stride       int
	InstanceData bool
}

// CapturedPrimitive is a deep copy of one face's vertex
// processing results: the global index, clip-space position
// and working data of each of its vertices, plus the
// scissor rectangle that was ultimately used to rasterize
// it.
type CapturedPrimitive struct {
	InstanceIndex uint32
	Scissor       Rect
	Indices       []uint32
	Positions     [][4]float32
	WorkingData   [][]byte
}

// CapturedInstance groups the primitives produced by one
// instance of a draw call.
type CapturedInstance struct {
	Primitives []CapturedPrimitive
}

// CapturedRenderCall is a deep copy of one IndexedDrawCall's
// inputs and per-vertex outputs, sufficient to inspect or
// replay the draw without the original vertex/index buffers.
type CapturedRenderCall struct {
	VertexBuffers        []CapturedVertexBuffer
	Instances            []CapturedInstance
	VerticesPerPrimitive int
	WorkingDataStride    int
}

// CaptureSink receives deep copies of render calls and
// framebuffer clears as they are submitted. Implementations
// must copy or retain everything passed to them; the
// rasterizer reuses and overwrites its own buffers
// immediately after the call returns - ownership of the
// passed-in values transfers to the sink.
type CaptureSink interface {
	RecordRenderCall(fb *Framebuffer, snapshot []*Image, call *CapturedRenderCall)
	RecordFramebufferClear(fb *Framebuffer, snapshot []*Image, values []PixelValue)
}
