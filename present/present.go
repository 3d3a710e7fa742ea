// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package present provides the minimal collaborator the
// rasterizer needs to hand a finished color attachment off
// to some display mechanism. It deliberately mirrors only the
// presentation slice of a full window system integration
// layer: the rasterizer has no notion of windows, input or
// resize events, only of a surface it can blit a finished
// Image into.
package present

import "github.com/halvardis/swrast/raster"

// Surface is anything that can accept a finished color
// Image and make it visible by whatever means the
// implementation chooses (a window, a file, a test double).
// Present must not retain img; implementations that need to
// keep the pixels past the call must copy them.
type Surface interface {
	// Present displays img, which must be a Color-format
	// Image of the surface's own dimensions.
	Present(img *raster.Image) error

	// Size returns the surface's dimensions in pixels.
	Size() (w, h int)
}
