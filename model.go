// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsluv

import (
	"image/color"

	"cogentcore.org/hsluv/base/num"
)

var (
	_ color.Color = RGB[float32]{}
	_ color.Color = HSLuv[float32]{}
	_ color.Color = HPLuv[float64]{}
)

// HSLuvModel is the standard [color.Model] that converts colors
// to HSLuv[float32].
var HSLuvModel = color.ModelFunc(hsluvModel)

func hsluvModel(c color.Color) color.Color {
	if h, ok := c.(HSLuv[float32]); ok {
		return h
	}
	return FromColor[float32](c).HSLuv()
}

// HPLuvModel is the standard [color.Model] that converts colors
// to HPLuv[float32].
var HPLuvModel = color.ModelFunc(hpluvModel)

func hpluvModel(c color.Color) color.Color {
	if h, ok := c.(HPLuv[float32]); ok {
		return h
	}
	return FromColor[float32](c).HPLuv()
}

// FromColor returns the sRGB components of the given [color.Color],
// undoing its alpha premultiplication. A fully transparent color
// gives black.
func FromColor[F num.Float](c color.Color) RGB[F] {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGB[F]{}
	}
	fa := F(a)
	return RGB[F]{R: F(r) / fa, G: F(g) / fa, B: F(b) / fa}
}

// fromColorAlpha is [FromColor] converted to HSLuv,
// also returning the 0-1 alpha of the color.
func fromColorAlpha(c color.Color) (HSLuv[float32], float32) {
	_, _, _, a := c.RGBA()
	return FromColor[float32](c).HSLuv(), float32(a) / 0xffff
}

// toRGBA returns the HSLuv color with the given 0-1 alpha
// as a premultiplied [color.RGBA].
func toRGBA(h HSLuv[float32], alpha float32) color.RGBA {
	c := h.AsRGBA()
	if alpha >= 1 {
		return c
	}
	alpha = num.Clamp(alpha, 0, 1)
	return color.RGBA{
		R: uint8(float32(c.R)*alpha + 0.5),
		G: uint8(float32(c.G)*alpha + 0.5),
		B: uint8(float32(c.B)*alpha + 0.5),
		A: uint8(alpha*255 + 0.5),
	}
}

// component16 converts a color component to the 16 bit range
// used by [color.Color], clamping it to 0-1. NaN gives 0.
func component16[F num.Float](c F) uint32 {
	if num.IsNaN(c) {
		return 0
	}
	return uint32(num.Clamp(c, 0, 1)*0xffff + 0.5)
}

// RGBA implements the [color.Color] interface. The color is
// clamped to the sRGB gamut and is always fully opaque.
func (c RGB[F]) RGBA() (r, g, b, a uint32) {
	return component16(c.R), component16(c.G), component16(c.B), 0xffff
}

// AsRGBA returns the color as a [color.RGBA], quantized
// in the same way as [RGBToHex].
func (c RGB[F]) AsRGBA() color.RGBA {
	return color.RGBA{R: quantize(c.R), G: quantize(c.G), B: quantize(c.B), A: 255}
}

// RGBA implements the [color.Color] interface.
func (c HSLuv[F]) RGBA() (r, g, b, a uint32) {
	return c.RGB().RGBA()
}

// AsRGBA returns the color as a [color.RGBA].
func (c HSLuv[F]) AsRGBA() color.RGBA {
	return c.RGB().AsRGBA()
}

// RGBA implements the [color.Color] interface.
func (c HPLuv[F]) RGBA() (r, g, b, a uint32) {
	return c.RGB().RGBA()
}

// AsRGBA returns the color as a [color.RGBA].
func (c HPLuv[F]) AsRGBA() color.RGBA {
	return c.RGB().AsRGBA()
}
