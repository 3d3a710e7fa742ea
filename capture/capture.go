// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package capture records a faithful, re-renderable trace of
// draw and clear events issued against a raster.Rasterizer,
// with per-event attachment snapshots taken synchronously
// with submission.
package capture

import "github.com/halvardis/swrast/raster"

// EventType identifies the kind of event recorded.
type EventType int

// Event types.
const (
	RenderCall EventType = iota
	FramebufferClear
)

// Event is one recorded draw or clear, together with a
// snapshot of every attachment of the framebuffer it
// targeted, taken immediately after the event executed.
type Event struct {
	Type        EventType
	Attachments []*raster.Image

	RenderCall       *raster.CapturedRenderCall
	FramebufferClear []raster.PixelValue
}

// Capture is an append-only, ordered sequence of Events. It
// implements raster.CaptureSink, so it can be installed
// directly via Rasterizer.SetCapture.
type Capture struct {
	events []*Event
}

// New returns an empty Capture.
func New() *Capture { return &Capture{} }

// RecordRenderCall implements raster.CaptureSink.
func (c *Capture) RecordRenderCall(fb *raster.Framebuffer, snapshot []*raster.Image, call *raster.CapturedRenderCall) {
	c.events = append(c.events, &Event{
		Type:        RenderCall,
		Attachments: snapshot,
		RenderCall:  call,
	})
}

// RecordFramebufferClear implements raster.CaptureSink.
func (c *Capture) RecordFramebufferClear(fb *raster.Framebuffer, snapshot []*raster.Image, values []raster.PixelValue) {
	c.events = append(c.events, &Event{
		Type:             FramebufferClear,
		Attachments:      snapshot,
		FramebufferClear: values,
	})
}

// Events returns the recorded events in insertion order.
// The returned slice must not be modified.
func (c *Capture) Events() []*Event { return c.events }

// Reset discards every recorded event.
func (c *Capture) Reset() { c.events = nil }
