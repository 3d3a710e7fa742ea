// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package raster

import (
	"math"

	"github.com/halvardis/swrast/linear"
)

// VertexOutput is the result of running the vertex stage
// for one vertex of one face: its clip-space position and a
// slice into the draw's shared working-data slab.
type VertexOutput struct {
	Position    [4]float32
	WorkingData []byte
}

// processFaceVertices runs the vertex stage once per vertex
// slot of one face, resolving bound vertex-input pointers
// per binding and filling outputs. If captured is non-nil,
// it is populated with a deep copy of the per-vertex global
// index, position and working data.
func processFaceVertices(dc *IndexedDrawCall, instanceID uint32, face, verticesPerFace int,
	outputs []VertexOutput, captured *CapturedPrimitive) {

	pipeline := dc.Pipeline
	inputs := make([][]byte, len(pipeline.Bindings))

	if captured != nil {
		captured.InstanceIndex = instanceID
		captured.Indices = make([]uint32, verticesPerFace)
		captured.Positions = make([][4]float32, verticesPerFace)
		captured.WorkingData = make([][]byte, verticesPerFace)
	}

	for i := 0; i < verticesPerFace; i++ {
		indexSlot := dc.FirstIndex + face*verticesPerFace + i
		globalIndex := dc.VertexOffset + int(dc.Indices[indexSlot])

		for j, binding := range pipeline.Bindings {
			var bufIndex int
			if binding.InputRate == PerVertex {
				bufIndex = globalIndex
			} else {
				bufIndex = int(instanceID)
			}
			vb := dc.VertexBuffers[j]
			off := bufIndex * binding.Stride
			inputs[j] = vb.Data[off : off+binding.Stride]
		}

		out := &outputs[i]
		out.Position = [4]float32{0, 0, 0, 1}

		ctx := ShaderContext{
			VertexIndex:   uint32(globalIndex),
			InstanceIndex: instanceID,
			Uniform:       dc.Uniform,
			WorkingData:   out.WorkingData,
		}
		pipeline.Shader.VertexStage(inputs, &ctx, &out.Position)

		if captured != nil {
			captured.Indices[i] = uint32(globalIndex)
			captured.Positions[i] = out.Position
			captured.WorkingData[i] = append([]byte(nil), out.WorkingData...)
		}
	}
}

// signedEdgeArea returns the signed area spanned by edge
// a->b and point p, positive on the interior side for the
// configured winding.
func signedEdgeArea(a, b, p *[4]float32, cw bool) float32 {
	var ab, abNormal, ap linear.V2
	ab.Sub(&linear.V2{b[0], b[1]}, &linear.V2{a[0], a[1]})
	abNormal.Rot90(&ab, cw)
	ap.Sub(&linear.V2{p[0], p[1]}, &linear.V2{a[0], a[1]})
	return ap.Dot(&abNormal)
}

// faceContainsPoint is the barycentric coverage test: it
// determines whether point lies inside the face described by
// outputs under the pipeline's winding/culling configuration,
// and if so fills weights with the (non-normalized-sign)
// barycentric weights.
func faceContainsPoint(cw, cullBack bool, outputs []VertexOutput, point [2]float32, weights []float32) bool {
	vertices := len(outputs)
	areas := make([]float32, vertices)
	var areaSum float32
	var p [4]float32
	p[0], p[1] = point[0], point[1]

	for i := 0; i < vertices; i++ {
		a := &outputs[i].Position
		b := &outputs[(i+1)%vertices].Position

		area := signedEdgeArea(a, b, &p, cw)
		if cullBack && area <= 0 {
			return false
		}

		areaSum += area
		areas[(i+2)%vertices] = area
	}

	if areaSum <= 0 {
		areaSum = -areaSum
	}

	firstOut := areas[0] <= 0
	for i := 0; i < vertices; i++ {
		if weights != nil {
			weights[i] = areas[i] / areaSum
		}
		if i > 0 && !cullBack {
			if currentOut := areas[i] <= 0; firstOut != currentOut {
				return false
			}
		}
	}
	return true
}

// mapDimension maps a clip-space coordinate in [-1,1] to
// pixel space [0,size], clamping values outside the clip
// volume.
func mapDimension(v float32, size int) float32 {
	if v < -1 {
		return 0
	}
	if v > 1 {
		return float32(size)
	}
	return (v + 1) / 2 * float32(size)
}

// deriveScissor computes the integer AABB of a face's
// clip-space positions mapped to pixel space, intersected
// with an optional caller-supplied scissor. It reports false
// if the resulting rectangle is empty.
func deriveScissor(outputs []VertexOutput, fbWidth, fbHeight int, existing *Rect) (Rect, bool) {
	x0, y0 := fbWidth, fbHeight
	x1, y1 := 0, 0

	for i := range outputs {
		pos := &outputs[i].Position
		x := mapDimension(pos[0], fbWidth)
		y := mapDimension(pos[1], fbHeight)

		if fx := floorInt(x); fx < x0 {
			x0 = fx
		}
		if fy := floorInt(y); fy < y0 {
			y0 = fy
		}
		if cx := ceilInt(x); cx > x1 {
			x1 = cx
		}
		if cy := ceilInt(y); cy > y1 {
			y1 = cy
		}
	}

	if existing != nil {
		ex1, ey1 := existing.X+existing.Width, existing.Y+existing.Height
		if existing.X > x0 {
			x0 = existing.X
		}
		if existing.Y > y0 {
			y0 = existing.Y
		}
		if ex1 < x1 {
			x1 = ex1
		}
		if ey1 < y1 {
			y1 = ey1
		}
	}

	if x1 <= x0 || y1 <= y0 {
		return Rect{}, false
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}, true
}

func floorInt(v float32) int { return int(math.Floor(float64(v))) }

func ceilInt(v float32) int { return int(math.Ceil(float64(v))) }
