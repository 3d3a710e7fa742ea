// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package raster

import (
	"encoding/binary"
	"math"
)

// renderContext holds everything a scanline job needs to
// rasterize pixels of one face: the pipeline/framebuffer
// pair, this face's vertex outputs, the current instance
// and uniform data, and the join semaphore used to signal
// scanline completion (nil in single-threaded mode).
type renderContext struct {
	pipeline *Pipeline
	fb       *Framebuffer

	outputs []VertexOutput

	instanceID uint32
	uniform    any

	sem *countingSemaphore
}

// shaderBlendParameters perspective-corrects every declared
// BlendedParameter of shader, reading from each vertex's
// working data and writing the result into dst.
func shaderBlendParameters(shader *Shader, outputs []VertexOutput, weights []float32, depth float32, dst []byte) {
	for _, p := range shader.BlendedParameters {
		stride := p.Type.stride()
		for j := 0; j < p.Count; j++ {
			off := p.Offset + j*stride

			var result float32
			for k := range outputs {
				src := outputs[k].WorkingData[off : off+stride]

				var value float32
				switch p.Type {
				case Byte:
					value = float32(src[0])
				case Float:
					value = math.Float32frombits(binary.LittleEndian.Uint32(src))
				}

				z := outputs[k].Position[2]
				result += value * weights[k] / z
			}
			result *= depth

			dstElem := dst[off : off+stride]
			switch p.Type {
			case Byte:
				dstElem[0] = byte(result)
			case Float:
				binary.LittleEndian.PutUint32(dstElem, math.Float32bits(result))
			}
		}
	}
}

// preFragmentTests runs the depth test against every DEPTH
// attachment of fb, when enabled by the pipeline's depth
// state.
func preFragmentTests(pipeline *Pipeline, fb *Framebuffer, x, y int, depth float32) bool {
	for _, att := range fb.Attachments {
		if att.Format == Depth && pipeline.Depth.Test {
			if depth > att.DepthAt(x, y) {
				return false
			}
		}
	}
	return true
}

// renderPixel performs the full per-pixel pipeline: coverage,
// depth test, perspective-correct attribute blending, the
// fragment stage, and attachment writeback.
func renderPixel(x, y int, rc *renderContext) {
	point := [2]float32{
		(float32(x)+0.5)/float32(rc.fb.Width)*2 - 1,
		(float32(y)+0.5)/float32(rc.fb.Height)*2 - 1,
	}

	weights := make([]float32, len(rc.outputs))
	if !faceContainsPoint(rc.pipeline.Winding == CW, rc.pipeline.CullBack, rc.outputs, point, weights) {
		return
	}

	var invDepth float32
	for i := range rc.outputs {
		invDepth += weights[i] / rc.outputs[i].Position[2]
	}
	depth := 1 / invDepth

	if !preFragmentTests(rc.pipeline, rc.fb, x, y, depth) {
		return
	}

	workingData := make([]byte, rc.pipeline.Shader.WorkingSize)
	shaderBlendParameters(&rc.pipeline.Shader, rc.outputs, weights, depth, workingData)

	ctx := ShaderContext{
		InstanceIndex: rc.instanceID,
		Uniform:       rc.uniform,
		WorkingData:   workingData,
	}
	srcColor := rc.pipeline.Shader.FragmentStage(&ctx)

	blendIndex := 0
	for _, att := range rc.fb.Attachments {
		switch att.Format {
		case Color:
			if blendIndex < len(rc.pipeline.BlendAttachments) {
				dst := att.ColorAt(x, y)
				att.SetColorAt(x, y, blendPixel(srcColor, dst, &rc.pipeline.BlendAttachments[blendIndex]))
			} else {
				att.SetColorAt(x, y, srcColor)
			}
			blendIndex++
		case Depth:
			if rc.pipeline.Depth.Write {
				att.SetDepthAt(x, y, depth)
			}
		}
	}
}
