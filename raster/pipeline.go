// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package raster

// InputRate determines how a vertex binding is advanced
// across a draw: once per vertex, or once per instance.
type InputRate int

// Input rates.
const (
	PerVertex InputRate = iota
	PerInstance
)

// VertexBinding describes one bound input stream consumed
// by the vertex stage.
type VertexBinding struct {
	Stride    int
	InputRate InputRate
}

// ElementType is the scalar type of one element of a
// BlendedParameter.
type ElementType int

// Element types.
const (
	Byte ElementType = iota
	Float
)

// stride returns the per-element byte size of t.
func (t ElementType) stride() int {
	switch t {
	case Byte:
		return 1
	case Float:
		return 4
	default:
		panic("raster: unknown element type")
	}
}

// BlendedParameter declares a sub-range of the working-data
// buffer that must be perspective-corrected by the pixel
// engine before the fragment stage observes it.
type BlendedParameter struct {
	Offset  int
	Type    ElementType
	Count   int
}

// ShaderContext is the value passed to both the vertex and
// fragment stages. For the vertex stage, VertexIndex and
// InstanceIndex are meaningful and WorkingData is writable
// scratch; Position must be overwritten. For the fragment
// stage, VertexIndex is undefined and WorkingData holds the
// already-interpolated per-parameter values.
type ShaderContext struct {
	VertexIndex   uint32
	InstanceIndex uint32
	Uniform       any
	WorkingData   []byte
}

// VertexStageFunc computes a clip-space position from a set
// of bound vertex-input pointers, one per binding in
// Pipeline.Bindings order, writing any working data it
// wants interpolated into ctx.WorkingData.
type VertexStageFunc func(inputs [][]byte, ctx *ShaderContext, position *[4]float32)

// FragmentStageFunc computes a packed RGBA color from the
// interpolated working data in ctx.
type FragmentStageFunc func(ctx *ShaderContext) uint32

// Shader is a programmable vertex/fragment stage pair plus
// the declared set of working-data ranges that must be
// perspective-corrected between them.
type Shader struct {
	// WorkingSize is the size, in bytes, of the per-vertex
	// scratch buffer handed to the vertex stage and, once
	// interpolated, to the fragment stage.
	WorkingSize int
	VertexStage VertexStageFunc
	FragmentStage FragmentStageFunc
	// BlendedParameters lists the sub-ranges of the working
	// data that the pixel engine perspective-corrects.
	BlendedParameters []BlendedParameter
}

// Winding is the front-facing winding order of a pipeline's
// primitives.
type Winding int

// Winding orders.
const (
	CCW Winding = iota
	CW
)

// Topology is the primitive assembly mode. Only indexed
// primitive lists are supported; strips are a Non-goal.
type Topology int

// Topologies.
const (
	Triangles Topology = iota
	Quads
)

// verticesPerFace returns the vertex count of one primitive
// under t.
func (t Topology) verticesPerFace() int {
	switch t {
	case Triangles:
		return 3
	case Quads:
		return 4
	default:
		panic("raster: unknown topology")
	}
}

// DepthState controls the pre-fragment depth test and the
// depth attachment writeback.
type DepthState struct {
	Test, Write bool
}

// BlendFactor is a multiplicative term used by the blend
// unit.
type BlendFactor int

// Blend factors.
const (
	BlendZero BlendFactor = iota
	BlendOne
	BlendSrcAlpha
	BlendOneMinusSrcAlpha
)

// BlendOp combines the source and destination operands
// after each has been scaled by its BlendFactor.
type BlendOp int

// Blend ops.
const (
	BlendAdd BlendOp = iota
	BlendSrcSubDst
	BlendDstSubSrc
)

// ComponentBlendOp is one channel group's blend equation:
// result = src*SrcFactor `Op` dst*DstFactor.
type ComponentBlendOp struct {
	Op                 BlendOp
	SrcFactor, DstFactor BlendFactor
}

// BlendAttachment is the blend configuration for one color
// attachment, consumed in attachment order by
// Pipeline.BlendAttachments.
type BlendAttachment struct {
	Enabled     bool
	Color, Alpha ComponentBlendOp
}

// ErrNoBindings means a Pipeline was constructed with no
// vertex bindings.
var ErrNoBindings = newError("pipeline has no vertex bindings")

// ErrBadWorkingSize means a Shader's declared
// BlendedParameters reach beyond its WorkingSize.
var ErrBadWorkingSize = newError("blended parameter range exceeds working data size")

// Pipeline is the immutable (for the duration of a draw)
// combination of shader, depth state, face culling and
// blend state that governs one indexed draw call.
type Pipeline struct {
	Shader          Shader
	Depth           DepthState
	Winding         Winding
	CullBack        bool
	Topology        Topology
	Bindings        []VertexBinding
	BlendAttachments []BlendAttachment
}

// NewPipeline validates and returns a Pipeline. It reports
// ErrNoBindings if bindings is empty, and ErrBadWorkingSize
// if any of shader.BlendedParameters reaches past
// shader.WorkingSize.
func NewPipeline(shader Shader, depth DepthState, winding Winding, cullBack bool,
	topology Topology, bindings []VertexBinding, blendAttachments []BlendAttachment) (*Pipeline, error) {

	if len(bindings) == 0 {
		return nil, ErrNoBindings
	}
	for _, p := range shader.BlendedParameters {
		if p.Offset+p.Count*p.Type.stride() > shader.WorkingSize {
			return nil, ErrBadWorkingSize
		}
	}
	return &Pipeline{
		Shader:          shader,
		Depth:           depth,
		Winding:         winding,
		CullBack:        cullBack,
		Topology:        topology,
		Bindings:        bindings,
		BlendAttachments: blendAttachments,
	}, nil
}
