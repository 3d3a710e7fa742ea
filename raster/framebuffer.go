// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package raster

import (
	"encoding/binary"
	"math"
)

// ErrDimensionMismatch means a Framebuffer attachment's
// dimensions do not match the framebuffer's own width and
// height.
var ErrDimensionMismatch = newError("attachment dimensions do not match framebuffer")

// ErrNoAttachments means a Framebuffer was created with no
// attachments.
var ErrNoAttachments = newError("framebuffer has no attachments")

// Framebuffer is an ordered list of image attachments that
// share a common width and height. It is stack-allocated
// per draw; the referenced Images outlive it.
type Framebuffer struct {
	Width, Height int
	Attachments   []*Image
}

// NewFramebuffer builds a Framebuffer from the given
// attachments, validating that every attachment shares the
// same dimensions.
func NewFramebuffer(attachments ...*Image) (*Framebuffer, error) {
	if len(attachments) == 0 {
		return nil, ErrNoAttachments
	}
	w, h := attachments[0].Width, attachments[0].Height
	for _, a := range attachments {
		if a.Width != w || a.Height != h {
			return nil, ErrDimensionMismatch
		}
	}
	return &Framebuffer{Width: w, Height: h, Attachments: attachments}, nil
}

// PixelValue holds a single clear/fragment value for one
// attachment. Exactly one of Color or Depth is meaningful,
// selected by the attachment's Format - it plays the role of
// the original implementation's image_pixel union.
type PixelValue struct {
	Color uint32
	Depth float32
}

// encode returns the byte representation of v for the given
// format, matching Image's own in-memory encoding.
func (v PixelValue) encode(f Format) []byte {
	b := make([]byte, f.pixelStride())
	switch f {
	case Color:
		binary.BigEndian.PutUint32(b, v.Color)
	case Depth:
		binary.LittleEndian.PutUint32(b, math.Float32bits(v.Depth))
	}
	return b
}

// Clear fills every attachment with its corresponding
// clear value. len(values) must equal len(fb.Attachments).
func (fb *Framebuffer) Clear(values []PixelValue) {
	for i, att := range fb.Attachments {
		att.fill(values[i].encode(att.Format))
	}
}

// Clone returns a deep copy of every attachment in fb,
// used by the capture recorder to take a point-in-time
// snapshot.
func (fb *Framebuffer) Clone() []*Image {
	out := make([]*Image, len(fb.Attachments))
	for i, a := range fb.Attachments {
		out[i] = a.Clone()
	}
	return out
}
