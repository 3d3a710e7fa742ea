// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package capture

import (
	"errors"

	"github.com/halvardis/swrast/raster"
)

// ErrDimensionMismatch means the framebuffer passed to Replay
// does not match the dimensions recorded in the event's
// attachment snapshots.
var ErrDimensionMismatch = errors.New("capture: replay framebuffer dimensions do not match capture")

// Replay re-issues a recorded sequence of events against fb,
// using rast as the pixel engine and pipeline for every
// recorded render call. fb must have the same dimensions as
// the framebuffer the events were captured from; it need not
// be the same Framebuffer value, and it is
// never cleared implicitly, so callers that want a blank
// starting point must clear it themselves before replaying.
//
// Render calls are replayed by feeding each primitive's
// captured clip-space positions and working data directly
// into the pixel engine through Rasterizer.ReplayPrimitive,
// bypassing the vertex stage entirely: the vertex shader and
// original vertex/index buffers are not needed, since their
// only observable effect - the positions and working data
// at each vertex - was already captured. uniform is passed
// through unchanged to every replayed primitive, matching the
// uniform in effect for the whole recorded draw call.
func Replay(rast *raster.Rasterizer, events []*Event, pipeline *raster.Pipeline, fb *raster.Framebuffer, uniform any) error {
	for _, ev := range events {
		if len(ev.Attachments) > 0 {
			a := ev.Attachments[0]
			if a.Width != fb.Width || a.Height != fb.Height {
				return ErrDimensionMismatch
			}
		}

		switch ev.Type {
		case FramebufferClear:
			fb.Clear(ev.FramebufferClear)

		case RenderCall:
			call := ev.RenderCall
			for _, inst := range call.Instances {
				for _, prim := range inst.Primitives {
					rast.ReplayPrimitive(pipeline, fb, prim.InstanceIndex, uniform,
						prim.Scissor, prim.Positions, prim.WorkingData)
				}
			}
		}
	}
	return nil
}
