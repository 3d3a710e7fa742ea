// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package capture

import (
	"testing"

	"github.com/halvardis/swrast/raster"
)

func TestCaptureRecordsInOrder(t *testing.T) {
	c := New()
	color, _ := raster.NewImage(2, 2, raster.Color)
	fb, _ := raster.NewFramebuffer(color)
	snapshot := fb.Clone()

	c.RecordFramebufferClear(fb, snapshot, []raster.PixelValue{{Color: 1}})
	c.RecordRenderCall(fb, snapshot, &raster.CapturedRenderCall{})
	c.RecordFramebufferClear(fb, snapshot, []raster.PixelValue{{Color: 2}})

	events := c.Events()
	if len(events) != 3 {
		t.Fatalf("Events: have %d events, want 3", len(events))
	}
	if events[0].Type != FramebufferClear || events[0].FramebufferClear[0].Color != 1 {
		t.Fatalf("Events[0]: unexpected content %+v", events[0])
	}
	if events[1].Type != RenderCall {
		t.Fatalf("Events[1]: want RenderCall, got %v", events[1].Type)
	}
	if events[2].Type != FramebufferClear || events[2].FramebufferClear[0].Color != 2 {
		t.Fatalf("Events[2]: unexpected content %+v", events[2])
	}
}

func TestCaptureReset(t *testing.T) {
	c := New()
	color, _ := raster.NewImage(1, 1, raster.Color)
	fb, _ := raster.NewFramebuffer(color)
	c.RecordFramebufferClear(fb, fb.Clone(), []raster.PixelValue{{Color: 1}})
	if len(c.Events()) != 1 {
		t.Fatalf("expected one recorded event before Reset")
	}
	c.Reset()
	if len(c.Events()) != 0 {
		t.Fatalf("Reset: expected no events, got %d", len(c.Events()))
	}
}
