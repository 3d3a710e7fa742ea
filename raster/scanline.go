// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package raster

// scanlineJob is one unit of pixel work submitted to the
// worker pool: every index-th row of a face's scissor
// rectangle.
type scanlineJob struct {
	rc      *renderContext
	scissor *Rect
	index   int
	stride  int
}

// renderScanline is the worker pool's job callback. It
// processes rows index, index+stride, index+2*stride, …
// within the job's scissor, then signals the join semaphore
// exactly once.
func renderScanline(job *scanlineJob) {
	for yOff := job.index; yOff < job.scissor.Height; yOff += job.stride {
		y := job.scissor.Y + yOff
		for xOff := 0; xOff < job.scissor.Width; xOff++ {
			x := job.scissor.X + xOff
			renderPixel(x, y, job.rc)
		}
	}
	if job.rc.sem != nil {
		job.rc.sem.signal()
	}
}
