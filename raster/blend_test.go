// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package raster

import "testing"

func TestBlendPixelDisabledIsIdentity(t *testing.T) {
	att := &BlendAttachment{Enabled: false}
	src := uint32(0x11223344)
	dst := uint32(0xaabbccdd)
	if r := blendPixel(src, dst, att); r != src {
		t.Fatalf("blendPixel(disabled)\nhave %#x\nwant %#x", r, src)
	}
}

func TestBlendPixelOneZeroIsSrc(t *testing.T) {
	op := ComponentBlendOp{Op: BlendAdd, SrcFactor: BlendOne, DstFactor: BlendZero}
	att := &BlendAttachment{Enabled: true, Color: op, Alpha: op}
	src := uint32(0x11223344)
	dst := uint32(0xaabbccdd)
	if r := blendPixel(src, dst, att); r != src {
		t.Fatalf("blendPixel(one,zero)\nhave %#x\nwant %#x", r, src)
	}
}

func TestBlendPixelZeroOneIsDst(t *testing.T) {
	op := ComponentBlendOp{Op: BlendAdd, SrcFactor: BlendZero, DstFactor: BlendOne}
	att := &BlendAttachment{Enabled: true, Color: op, Alpha: op}
	src := uint32(0x11223344)
	dst := uint32(0xaabbccdd)
	if r := blendPixel(src, dst, att); r != dst {
		t.Fatalf("blendPixel(zero,one)\nhave %#x\nwant %#x", r, dst)
	}
}

func TestBlendChannelClamps(t *testing.T) {
	bc := &blendContext{srcAlpha: 1, dstAlpha: 1}
	op := &ComponentBlendOp{Op: BlendAdd, SrcFactor: BlendOne, DstFactor: BlendOne}
	if c := blendChannel(200, 200, bc, op); c != 0xFF {
		t.Fatalf("blendChannel(overflow)\nhave %#x\nwant 0xff", c)
	}
	op2 := &ComponentBlendOp{Op: BlendSrcSubDst, SrcFactor: BlendZero, DstFactor: BlendOne}
	if c := blendChannel(0, 200, bc, op2); c != 0 {
		t.Fatalf("blendChannel(underflow)\nhave %#x\nwant 0", c)
	}
}

func TestBlendFactorValue(t *testing.T) {
	bc := &blendContext{srcAlpha: 0.25, dstAlpha: 0.75}
	cases := []struct {
		f    BlendFactor
		want float32
	}{
		{BlendZero, 0},
		{BlendOne, 1},
		{BlendSrcAlpha, 0.25},
		{BlendOneMinusSrcAlpha, 0.75},
	}
	for _, c := range cases {
		if v := blendFactorValue(c.f, bc); v != c.want {
			t.Fatalf("blendFactorValue(%v)\nhave %v\nwant %v", c.f, v, c.want)
		}
	}
}
