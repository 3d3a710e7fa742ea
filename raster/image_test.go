// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package raster

import "testing"

func TestNewImageBadDim(t *testing.T) {
	if _, err := NewImage(0, 1, Color); err != ErrBadDim {
		t.Fatalf("NewImage(0,1)\nhave %v\nwant %v", err, ErrBadDim)
	}
	if _, err := NewImage(1, -1, Depth); err != ErrBadDim {
		t.Fatalf("NewImage(1,-1)\nhave %v\nwant %v", err, ErrBadDim)
	}
}

func TestColorAt(t *testing.T) {
	img, err := NewImage(4, 4, Color)
	if err != nil {
		t.Fatal(err)
	}
	img.SetColorAt(1, 2, 0x11223344)
	if c := img.ColorAt(1, 2); c != 0x11223344 {
		t.Fatalf("ColorAt\nhave %#x\nwant %#x", c, 0x11223344)
	}
	if c := img.ColorAt(0, 0); c != 0 {
		t.Fatalf("ColorAt(zero value)\nhave %#x\nwant 0", c)
	}
}

func TestDepthAt(t *testing.T) {
	img, err := NewImage(4, 4, Depth)
	if err != nil {
		t.Fatal(err)
	}
	img.SetDepthAt(3, 3, 0.25)
	if d := img.DepthAt(3, 3); d != 0.25 {
		t.Fatalf("DepthAt\nhave %v\nwant 0.25", d)
	}
}

func TestImageCloneIndependence(t *testing.T) {
	img, err := NewImage(2, 2, Color)
	if err != nil {
		t.Fatal(err)
	}
	img.SetColorAt(0, 0, 0xff)
	cp := img.Clone()
	if !img.Equal(cp) {
		t.Fatalf("Clone: clone not equal to original")
	}
	cp.SetColorAt(0, 0, 0xff00)
	if img.ColorAt(0, 0) != 0xff {
		t.Fatalf("Clone: mutating the clone affected the original")
	}
	if img.Equal(cp) {
		t.Fatalf("Equal: reports equal after divergent mutation")
	}
}

func TestImageFill(t *testing.T) {
	img, err := NewImage(3, 2, Color)
	if err != nil {
		t.Fatal(err)
	}
	img.fill(PixelValue{Color: 0xaabbccdd}.encode(Color))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			if c := img.ColorAt(x, y); c != 0xaabbccdd {
				t.Fatalf("fill: pixel (%d,%d)\nhave %#x\nwant %#x", x, y, c, 0xaabbccdd)
			}
		}
	}
}
