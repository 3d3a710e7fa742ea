// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Command rastercmd renders a single CCW triangle with
// per-vertex colors to a PNG file, exercising the public
// raster API end to end: a view/projection camera built with
// the linear package, pipeline construction, an indexed draw
// call, a capture sink, and replay of the captured call
// against a second framebuffer.
package main

import (
	"encoding/binary"
	"flag"
	"image/png"
	"log"
	"math"
	"os"

	"github.com/halvardis/swrast/capture"
	"github.com/halvardis/swrast/linear"
	"github.com/halvardis/swrast/raster"
)

// vertex is the per-vertex input layout bound to the
// pipeline's single binding: an object-space xyz position
// followed by an RGBA color, all float32.
type vertex struct {
	x, y, z    float32
	r, g, b, a float32
}

func encodeVertices(vs []vertex) []byte {
	const stride = 7 * 4
	buf := make([]byte, len(vs)*stride)
	for i, v := range vs {
		off := i * stride
		fields := [7]float32{v.x, v.y, v.z, v.r, v.g, v.b, v.a}
		for j, f := range fields {
			binary.LittleEndian.PutUint32(buf[off+j*4:off+j*4+4], math.Float32bits(f))
		}
	}
	return buf
}

func readFloat32(b []byte) float32 { return math.Float32frombits(binary.LittleEndian.Uint32(b)) }

func main() {
	out := flag.String("o", "triangle.png", "output PNG path")
	replayOut := flag.String("replay", "", "also replay the capture and write it to this PNG path")
	flag.Parse()

	const width, height = 256, 256

	// view/projection are combined once, up front, into a
	// single matrix the vertex stage applies to every
	// object-space position it reads.
	var view, proj, viewProj linear.M4
	view.LookAt(&linear.V3{0, 0, 4}, &linear.V3{0, 0, 0}, &linear.V3{0, 1, 0})
	proj.Perspective(float32(math.Pi)/3, float32(width)/float32(height), 0.1, 100)
	viewProj.Mul(&proj, &view)

	// Working data layout: four consecutive floats holding
	// the interpolated RGBA color. All four are declared
	// blended so the pixel engine perspective-corrects them
	// before the fragment stage runs.
	shader := raster.Shader{
		WorkingSize: 16,
		VertexStage: func(inputs [][]byte, ctx *raster.ShaderContext, position *[4]float32) {
			in := inputs[0]
			object := linear.V4{readFloat32(in[0:4]), readFloat32(in[4:8]), readFloat32(in[8:12]), 1}
			var clip linear.V4
			clip.Mul(&viewProj, &object)
			position[0] = clip[0] / clip[3]
			position[1] = clip[1] / clip[3]
			position[2] = clip[3]
			position[3] = clip[2] / clip[3]
			copy(ctx.WorkingData, in[12:28])
		},
		FragmentStage: func(ctx *raster.ShaderContext) uint32 {
			r := byte(readFloat32(ctx.WorkingData[0:4]) * 255)
			g := byte(readFloat32(ctx.WorkingData[4:8]) * 255)
			b := byte(readFloat32(ctx.WorkingData[8:12]) * 255)
			a := byte(readFloat32(ctx.WorkingData[12:16]) * 255)
			return uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a)
		},
		BlendedParameters: []raster.BlendedParameter{
			{Offset: 0, Type: raster.Float, Count: 4},
		},
	}

	pipeline, err := raster.NewPipeline(
		shader,
		raster.DepthState{},
		raster.CCW,
		false,
		raster.Triangles,
		[]raster.VertexBinding{{Stride: 28, InputRate: raster.PerVertex}},
		[]raster.BlendAttachment{{Enabled: false}},
	)
	if err != nil {
		log.Fatal(err)
	}

	color, err := raster.NewImage(width, height, raster.Color)
	if err != nil {
		log.Fatal(err)
	}
	fb, err := raster.NewFramebuffer(color)
	if err != nil {
		log.Fatal(err)
	}

	vertices := []vertex{
		{x: -1, y: 1, z: 0, r: 0, g: 1, b: 1, a: 1},
		{x: 1, y: 1, z: 0, r: 1, g: 0, b: 1, a: 1},
		{x: 0, y: -1, z: 0, r: 1, g: 1, b: 0, a: 1},
	}

	dc := &raster.IndexedDrawCall{
		Pipeline:    pipeline,
		Framebuffer: fb,
		VertexBuffers: []raster.VertexBuffer{
			{Data: encodeVertices(vertices), Stride: 28},
		},
		Indices:       []uint16{0, 1, 2},
		IndexCount:    3,
		InstanceCount: 1,
	}

	rast := raster.New(true)
	defer rast.Close()

	capt := capture.New()
	rast.SetCapture(capt)

	rast.FramebufferClear(fb, []raster.PixelValue{{Color: 0x000000ff}})
	rast.RenderIndexed(dc)

	if err := writePNG(*out, color); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", *out)

	if *replayOut != "" {
		replayColor, err := raster.NewImage(width, height, raster.Color)
		if err != nil {
			log.Fatal(err)
		}
		replayFB, err := raster.NewFramebuffer(replayColor)
		if err != nil {
			log.Fatal(err)
		}
		if err := capture.Replay(rast, capt.Events(), pipeline, replayFB, dc.Uniform); err != nil {
			log.Fatal(err)
		}
		if err := writePNG(*replayOut, replayColor); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", *replayOut)
	}
}

func writePNG(path string, img *raster.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return png.Encode(file, img.ToStdImage())
}
