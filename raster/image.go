// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package raster implements a CPU software rasterizer: an
// indexed draw engine built around barycentric coverage,
// perspective-correct attribute interpolation, a
// programmable shader contract, pre-fragment depth testing
// and alpha blending, with pixel work distributed over a
// fixed worker pool.
package raster

import (
	"encoding/binary"
	"math"
)

// Format identifies the pixel layout of an Image.
type Format int

// Pixel formats.
const (
	// Color is a 32-bit RGBA color, packed MSB to LSB as
	// R, G, B, A (i.e. pixel = R<<24 | G<<16 | B<<8 | A).
	Color Format = iota
	// Depth is a 32-bit IEEE-754 float, near=0, far
	// increasing, typically clamped to [0,1].
	Depth
)

// pixelStride returns the per-pixel byte size of f.
func (f Format) pixelStride() int {
	switch f {
	case Color, Depth:
		return 4
	default:
		panic("raster: unknown format")
	}
}

// ErrBadDim means an Image or Framebuffer was given a
// non-positive width or height.
var ErrBadDim = newError("width and height must be positive")

// Image is a CPU-resident pixel buffer of a single format.
// It is the unit of storage for both color and depth
// framebuffer attachments.
type Image struct {
	Width, Height int
	Format        Format
	data          []byte
}

// NewImage allocates an Image of the given dimensions and
// format, zero-initialized.
func NewImage(width, height int, format Format) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDim
	}
	stride := format.pixelStride()
	return &Image{
		Width:  width,
		Height: height,
		Format: format,
		data:   make([]byte, width*height*stride),
	}, nil
}

// Stride returns the per-pixel byte size of the image.
func (img *Image) Stride() int { return img.Format.pixelStride() }

// index returns the byte offset of pixel (x,y).
func (img *Image) index(x, y int) int {
	return (y*img.Width + x) * img.Stride()
}

// ColorAt returns the packed RGBA color at (x,y).
// The image must have Format Color.
func (img *Image) ColorAt(x, y int) uint32 {
	off := img.index(x, y)
	return binary.BigEndian.Uint32(img.data[off : off+4])
}

// SetColorAt sets the packed RGBA color at (x,y).
// The image must have Format Color.
func (img *Image) SetColorAt(x, y int, c uint32) {
	off := img.index(x, y)
	binary.BigEndian.PutUint32(img.data[off:off+4], c)
}

// DepthAt returns the depth value at (x,y).
// The image must have Format Depth.
func (img *Image) DepthAt(x, y int) float32 {
	off := img.index(x, y)
	return math.Float32frombits(binary.LittleEndian.Uint32(img.data[off : off+4]))
}

// SetDepthAt sets the depth value at (x,y).
// The image must have Format Depth.
func (img *Image) SetDepthAt(x, y int, d float32) {
	off := img.index(x, y)
	binary.LittleEndian.PutUint32(img.data[off:off+4], math.Float32bits(d))
}

// Clone returns a deep copy of img, used by the capture
// recorder to snapshot attachments without aliasing live
// framebuffer storage.
func (img *Image) Clone() *Image {
	cp := &Image{Width: img.Width, Height: img.Height, Format: img.Format}
	cp.data = append([]byte(nil), img.data...)
	return cp
}

// Equal reports whether img and other have identical
// dimensions, format and pixel contents.
func (img *Image) Equal(other *Image) bool {
	if other == nil || img.Width != other.Width || img.Height != other.Height || img.Format != other.Format {
		return false
	}
	if len(img.data) != len(other.data) {
		return false
	}
	for i := range img.data {
		if img.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// fill writes value to every pixel of img. value must hold
// Stride() bytes already encoded in the image's native byte
// order for its format (big-endian color, little-endian
// depth float bits).
func (img *Image) fill(value []byte) {
	stride := img.Stride()
	for off := 0; off+stride <= len(img.data); off += stride {
		copy(img.data[off:off+stride], value)
	}
}
