// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package raster

import (
	stdimage "image"
	"image/color"
)

// ToStdImage converts img into a standard library image: a
// Color attachment becomes an image.RGBA, and a Depth
// attachment becomes an image.Gray16, with each depth value
// linearly mapped from [0,1] to [0,65535]. The returned image
// is an independent copy; mutating it does not affect img.
func (img *Image) ToStdImage() stdimage.Image {
	switch img.Format {
	case Depth:
		out := stdimage.NewGray16(stdimage.Rect(0, 0, img.Width, img.Height))
		for y := 0; y < img.Height; y++ {
			for x := 0; x < img.Width; x++ {
				d := img.DepthAt(x, y)
				out.SetGray16(x, y, color.Gray16{Y: uint16(d * 65535)})
			}
		}
		return out
	default:
		out := stdimage.NewRGBA(stdimage.Rect(0, 0, img.Width, img.Height))
		for y := 0; y < img.Height; y++ {
			for x := 0; x < img.Width; x++ {
				c := img.ColorAt(x, y)
				out.SetRGBA(x, y, color.RGBA{
					R: byte(c >> 24),
					G: byte(c >> 16),
					B: byte(c >> 8),
					A: byte(c),
				})
			}
		}
		return out
	}
}

// ImageFromStdImage builds a Color-format Image from any
// standard library image.Image, such as one decoded by
// image/png.
func ImageFromStdImage(src stdimage.Image) (*Image, error) {
	bounds := src.Bounds()
	img, err := NewImage(bounds.Dx(), bounds.Dy(), Color)
	if err != nil {
		return nil, err
	}
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			r, g, b, a := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			packed := uint32(r>>8)<<24 | uint32(g>>8)<<16 | uint32(b>>8)<<8 | uint32(a>>8)
			img.SetColorAt(x, y, packed)
		}
	}
	return img, nil
}
