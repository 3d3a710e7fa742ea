// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package raster

// Rasterizer owns the worker pool (when multithreaded) and
// the currently installed capture sink. It is the entry
// point for the two draw-time operations: FramebufferClear
// and RenderIndexed.
type Rasterizer struct {
	pool        *workerPool
	numScanlines int
	capture     CaptureSink
}

// New creates a Rasterizer. When multithread is true, a
// fixed pool of runtime.GOMAXPROCS(-1) workers is started
// and used to distribute scanline work across faces;
// otherwise every draw runs scanline jobs inline on the
// caller's goroutine.
func New(multithread bool) *Rasterizer {
	rast := &Rasterizer{}
	if multithread {
		rast.pool = newWorkerPool(defaultWorkerCount(), func(job any) {
			renderScanline(job.(*scanlineJob))
		})
		rast.numScanlines = rast.pool.n
	} else {
		rast.numScanlines = 1
	}
	return rast
}

// Close stops the worker pool, if any, blocking until every
// worker has exited. A Rasterizer must not be used for
// further draws afterward.
func (rast *Rasterizer) Close() {
	if rast.pool != nil {
		rast.pool.stop()
	}
}

// SetCapture installs sink as the destination for
// subsequently recorded draw and clear events. Passing nil
// disables capture. The sink's lifetime must exceed any
// subsequent draw.
func (rast *Rasterizer) SetCapture(sink CaptureSink) { rast.capture = sink }

// FramebufferClear fills every attachment of fb with its
// corresponding clear value, optionally recording the event
// to the installed capture sink.
func (rast *Rasterizer) FramebufferClear(fb *Framebuffer, values []PixelValue) {
	fb.Clear(values)

	if rast.capture != nil {
		snapshot := fb.Clone()
		recorded := append([]PixelValue(nil), values...)
		rast.capture.RecordFramebufferClear(fb, snapshot, recorded)
	}
}

// RenderIndexed executes one indexed draw call: it loops
// instances and faces, running the primitive engine to
// assemble each face, deriving its scissor, fanning scanline
// jobs across the worker pool (or running them inline) and
// joining before moving to the next face.
func (rast *Rasterizer) RenderIndexed(dc *IndexedDrawCall) {
	pipeline := dc.Pipeline
	verticesPerFace := pipeline.Topology.verticesPerFace()

	assertf(dc.IndexCount%verticesPerFace == 0,
		"RenderIndexed: index count %d is not a multiple of %d vertices per face",
		dc.IndexCount, verticesPerFace)
	assertf(len(dc.VertexBuffers) == len(pipeline.Bindings),
		"RenderIndexed: %d vertex buffers bound, pipeline declares %d bindings",
		len(dc.VertexBuffers), len(pipeline.Bindings))

	faceCount := dc.IndexCount / verticesPerFace

	workingSize := pipeline.Shader.WorkingSize
	slab := make([]byte, workingSize*verticesPerFace)
	outputs := make([]VertexOutput, verticesPerFace)
	for i := range outputs {
		outputs[i].WorkingData = slab[workingSize*i : workingSize*(i+1)]
	}

	rc := &renderContext{
		pipeline:   pipeline,
		fb:         dc.Framebuffer,
		outputs:    outputs,
		uniform:    dc.Uniform,
	}

	var captured *CapturedRenderCall
	if rast.capture != nil {
		captured = &CapturedRenderCall{
			VerticesPerPrimitive: verticesPerFace,
			WorkingDataStride:    workingSize,
			VertexBuffers:        make([]CapturedVertexBuffer, len(dc.VertexBuffers)),
			Instances:            make([]CapturedInstance, dc.InstanceCount),
		}
		for i, vb := range dc.VertexBuffers {
			captured.VertexBuffers[i] = CapturedVertexBuffer{
				Data:         append([]byte(nil), vb.Data...),
				Stride:       pipeline.Bindings[i].Stride,
				InstanceData: pipeline.Bindings[i].InputRate == PerInstance,
			}
		}
	}

	for i := uint32(0); i < dc.InstanceCount; i++ {
		rc.instanceID = dc.FirstInstance + i

		var capturedInstance *CapturedInstance
		if captured != nil {
			capturedInstance = &captured.Instances[i]
			capturedInstance.Primitives = make([]CapturedPrimitive, faceCount)
		}

		for face := 0; face < faceCount; face++ {
			var capturedPrimitive *CapturedPrimitive
			if capturedInstance != nil {
				capturedPrimitive = &capturedInstance.Primitives[face]
			}
			rast.renderFace(dc, face, rc, capturedPrimitive)
		}
	}

	if rast.capture != nil && captured != nil {
		snapshot := dc.Framebuffer.Clone()
		rast.capture.RecordRenderCall(dc.Framebuffer, snapshot, captured)
	}
}

// renderFace processes one face: vertex stage, scissor
// derivation, scanline job fan-out and join.
func (rast *Rasterizer) renderFace(dc *IndexedDrawCall, face int, rc *renderContext, captured *CapturedPrimitive) {
	verticesPerFace := len(rc.outputs)
	processFaceVertices(dc, rc.instanceID, face, verticesPerFace, rc.outputs, captured)

	scissor, ok := deriveScissor(rc.outputs, rc.fb.Width, rc.fb.Height, dc.Scissor)
	if !ok {
		return
	}
	if captured != nil {
		captured.Scissor = scissor
	}

	rast.dispatchScanlines(rc, scissor)
}

// dispatchScanlines fans K = min(scissor.Height, numScanlines)
// scanline jobs for rc across the worker pool (or runs them
// inline in single-threaded mode) and joins before returning.
func (rast *Rasterizer) dispatchScanlines(rc *renderContext, scissor Rect) {
	totalJobs := rast.numScanlines
	if scissor.Height < totalJobs {
		totalJobs = scissor.Height
	}

	if rast.pool != nil {
		rc.sem = newCountingSemaphore()
	} else {
		rc.sem = nil
	}

	for i := 0; i < totalJobs; i++ {
		job := &scanlineJob{rc: rc, scissor: &scissor, index: i, stride: totalJobs}
		if rast.pool != nil {
			rast.pool.submit(job)
		} else {
			renderScanline(job)
		}
	}

	if rc.sem != nil {
		rc.sem.waitFor(uint64(totalJobs))
	}
}

// ReplayPrimitive re-rasterizes one previously captured
// primitive: given the exact clip-space positions and working
// data recorded for each of its vertices, plus the
// scissor that was used originally, it re-runs the pixel
// engine directly, bypassing the vertex stage entirely since
// its outputs were already captured.
func (rast *Rasterizer) ReplayPrimitive(pipeline *Pipeline, fb *Framebuffer, instanceID uint32,
	uniform any, scissor Rect, positions [][4]float32, workingData [][]byte) {

	outputs := make([]VertexOutput, len(positions))
	for i := range outputs {
		outputs[i].Position = positions[i]
		outputs[i].WorkingData = workingData[i]
	}

	rc := &renderContext{
		pipeline:   pipeline,
		fb:         fb,
		outputs:    outputs,
		instanceID: instanceID,
		uniform:    uniform,
	}
	rast.dispatchScanlines(rc, scissor)
}
