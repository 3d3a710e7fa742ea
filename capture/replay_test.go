// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package capture

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/halvardis/swrast/raster"
)

func encodeXY(vs [][2]float32) []byte {
	buf := make([]byte, len(vs)*8)
	for i, v := range vs {
		binary.LittleEndian.PutUint32(buf[i*8:], math.Float32bits(v[0]))
		binary.LittleEndian.PutUint32(buf[i*8+4:], math.Float32bits(v[1]))
	}
	return buf
}

func trianglePipeline(t *testing.T) *raster.Pipeline {
	t.Helper()
	pipeline, err := raster.NewPipeline(
		raster.Shader{
			VertexStage: func(inputs [][]byte, ctx *raster.ShaderContext, position *[4]float32) {
				x := math.Float32frombits(binary.LittleEndian.Uint32(inputs[0][0:4]))
				y := math.Float32frombits(binary.LittleEndian.Uint32(inputs[0][4:8]))
				position[0], position[1], position[2], position[3] = x, y, 1, 1
			},
			FragmentStage: func(ctx *raster.ShaderContext) uint32 { return 0x0000ffff },
		},
		raster.DepthState{}, raster.CCW, false, raster.Triangles,
		[]raster.VertexBinding{{Stride: 8, InputRate: raster.PerVertex}},
		[]raster.BlendAttachment{{Enabled: false}},
	)
	if err != nil {
		t.Fatal(err)
	}
	return pipeline
}

func TestReplayRoundTrip(t *testing.T) {
	pipeline := trianglePipeline(t)
	color, _ := raster.NewImage(8, 8, raster.Color)
	fb, _ := raster.NewFramebuffer(color)

	dc := &raster.IndexedDrawCall{
		Pipeline:    pipeline,
		Framebuffer: fb,
		VertexBuffers: []raster.VertexBuffer{
			{Data: encodeXY([][2]float32{{-1, -1}, {1, -1}, {0, 1}}), Stride: 8},
		},
		Indices:       []uint16{0, 1, 2},
		IndexCount:    3,
		InstanceCount: 1,
	}

	rast := raster.New(false)
	defer rast.Close()

	c := New()
	rast.SetCapture(c)
	rast.FramebufferClear(fb, []raster.PixelValue{{Color: 0x000000ff}})
	rast.RenderIndexed(dc)

	replayColor, _ := raster.NewImage(8, 8, raster.Color)
	replayFB, _ := raster.NewFramebuffer(replayColor)

	if err := Replay(rast, c.Events(), pipeline, replayFB, nil); err != nil {
		t.Fatal(err)
	}

	if !color.Equal(replayColor) {
		t.Fatalf("Replay: replayed framebuffer does not match the original render")
	}
}

func TestReplayDimensionMismatch(t *testing.T) {
	pipeline := trianglePipeline(t)
	color, _ := raster.NewImage(8, 8, raster.Color)
	fb, _ := raster.NewFramebuffer(color)

	rast := raster.New(false)
	defer rast.Close()
	c := New()
	rast.SetCapture(c)
	rast.FramebufferClear(fb, []raster.PixelValue{{Color: 1}})

	mismatched, _ := raster.NewImage(4, 4, raster.Color)
	mismatchedFB, _ := raster.NewFramebuffer(mismatched)

	if err := Replay(rast, c.Events(), pipeline, mismatchedFB, nil); err != ErrDimensionMismatch {
		t.Fatalf("Replay: have %v, want %v", err, ErrDimensionMismatch)
	}
}
