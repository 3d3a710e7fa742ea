// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package raster

import "testing"

func TestRenderScanlineSignalsOnce(t *testing.T) {
	color, _ := NewImage(4, 4, Color)
	fb, _ := NewFramebuffer(color)
	pipeline := &Pipeline{
		Winding: CCW,
		Shader:  Shader{FragmentStage: func(ctx *ShaderContext) uint32 { return 0xffffffff }},
	}
	rc := &renderContext{pipeline: pipeline, fb: fb, outputs: ccwTriangle(), sem: newCountingSemaphore()}
	job := &scanlineJob{rc: rc, scissor: &Rect{X: 0, Y: 0, Width: 4, Height: 4}, index: 0, stride: 1}

	renderScanline(job)

	if rc.sem.value != 1 {
		t.Fatalf("renderScanline: join semaphore signaled %d times, want 1", rc.sem.value)
	}
}

func TestRenderScanlineStridedCoverage(t *testing.T) {
	color, _ := NewImage(1, 4, Color)
	fb, _ := NewFramebuffer(color)
	pipeline := &Pipeline{
		Winding: CCW,
		Shader:  Shader{FragmentStage: func(ctx *ShaderContext) uint32 { return 1 }},
	}
	outputs := []VertexOutput{
		{Position: [4]float32{-1, -1, 1, 1}},
		{Position: [4]float32{1, -1, 1, 1}},
		{Position: [4]float32{1, 1, 1, 1}},
		{Position: [4]float32{-1, 1, 1, 1}},
	}
	rc := &renderContext{pipeline: pipeline, fb: fb, outputs: outputs}

	// Two jobs split the 4 rows by stride 2; together they
	// must cover every row exactly once.
	job0 := &scanlineJob{rc: rc, scissor: &Rect{X: 0, Y: 0, Width: 1, Height: 4}, index: 0, stride: 2}
	job1 := &scanlineJob{rc: rc, scissor: &Rect{X: 0, Y: 0, Width: 1, Height: 4}, index: 1, stride: 2}
	renderScanline(job0)
	renderScanline(job1)

	for y := 0; y < 4; y++ {
		if c := color.ColorAt(0, y); c != 1 {
			t.Fatalf("row %d not covered by either strided job", y)
		}
	}
}
