// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsluv

import "cogentcore.org/hsluv/base/num"

// RGB is a color in the sRGB color space, with gamma corrected
// components nominally in the range 0-1. Components outside of that
// range represent colors outside of the sRGB gamut; they are carried
// through all conversions and only clamped by [RGBToHex] and the
// [image/color] methods.
type RGB[F num.Float] struct {
	R, G, B F
}

// XYZ is a color in the CIE 1931 XYZ color space (D65, Y = 1 for white).
type XYZ[F num.Float] struct {
	X, Y, Z F
}

// LUV is a color in the CIE 1976 L*u*v* color space.
type LUV[F num.Float] struct {

	// L is the lightness (0-100)
	L F

	// U and V are the chromatic coordinates; they are unbounded.
	U, V F
}

// LCH is the cylindrical form of [LUV], LCH(uv).
type LCH[F num.Float] struct {

	// L is the lightness (0-100)
	L F

	// C is the chroma, the distance from the neutral axis (>= 0)
	C F

	// H is the hue in degrees (0-360)
	H F
}

// HSLuv is a color in the HSLuv color space: [LCH] with the chroma
// rescaled so that a saturation of 100 is always the edge of the sRGB
// gamut at the given hue and lightness.
type HSLuv[F num.Float] struct {

	// H is the hue in degrees (0-360), identical to the LCH hue
	H F

	// S is the saturation (0-100) relative to the most saturated
	// sRGB color with the same hue and lightness
	S F

	// L is the lightness (0-100), identical to the L*u*v* lightness
	L F
}

// HPLuv is a color in the HPLuv color space: like [HSLuv], but the
// chroma is rescaled against the largest chroma that is in gamut for
// every hue at the given lightness. That keeps the chroma independent
// of the hue (pastel colors), at the cost of not reaching the most
// saturated colors; values of P above 100 may be out of gamut.
type HPLuv[F num.Float] struct {

	// H is the hue in degrees (0-360), identical to the LCH hue
	H F

	// P is the saturation as a percentage (0-100) of the hue
	// independent maximum chroma
	P F

	// L is the lightness (0-100), identical to the L*u*v* lightness
	L F
}

// XYZ returns the color in the XYZ color space.
func (c RGB[F]) XYZ() XYZ[F] { return RGBToXYZ(c) }

// LCH returns the color in the LCH(uv) color space.
func (c RGB[F]) LCH() LCH[F] { return RGBToLCH(c) }

// HSLuv returns the color in the HSLuv color space.
func (c RGB[F]) HSLuv() HSLuv[F] { return RGBToHSLuv(c) }

// HPLuv returns the color in the HPLuv color space.
func (c RGB[F]) HPLuv() HPLuv[F] { return RGBToHPLuv(c) }

// Hex returns the color as a #rrggbb string; see [RGBToHex].
func (c RGB[F]) Hex() string { return RGBToHex(c) }

// RGB returns the color in the sRGB color space.
func (c XYZ[F]) RGB() RGB[F] { return XYZToRGB(c) }

// LUV returns the color in the L*u*v* color space.
func (c XYZ[F]) LUV() LUV[F] { return XYZToLUV(c) }

// XYZ returns the color in the XYZ color space.
func (c LUV[F]) XYZ() XYZ[F] { return LUVToXYZ(c) }

// LCH returns the color in the LCH(uv) color space.
func (c LUV[F]) LCH() LCH[F] { return LUVToLCH(c) }

// LUV returns the color in the L*u*v* color space.
func (c LCH[F]) LUV() LUV[F] { return LCHToLUV(c) }

// RGB returns the color in the sRGB color space.
func (c LCH[F]) RGB() RGB[F] { return LCHToRGB(c) }

// HSLuv returns the color in the HSLuv color space.
func (c LCH[F]) HSLuv() HSLuv[F] { return LCHToHSLuv(c) }

// HPLuv returns the color in the HPLuv color space.
func (c LCH[F]) HPLuv() HPLuv[F] { return LCHToHPLuv(c) }

// LCH returns the color in the LCH(uv) color space.
func (c HSLuv[F]) LCH() LCH[F] { return HSLuvToLCH(c) }

// RGB returns the color in the sRGB color space.
func (c HSLuv[F]) RGB() RGB[F] { return HSLuvToRGB(c) }

// Hex returns the color as a #rrggbb string.
func (c HSLuv[F]) Hex() string { return HSLuvToHex(c) }

// LCH returns the color in the LCH(uv) color space.
func (c HPLuv[F]) LCH() LCH[F] { return HPLuvToLCH(c) }

// RGB returns the color in the sRGB color space.
func (c HPLuv[F]) RGB() RGB[F] { return HPLuvToRGB(c) }

// Hex returns the color as a #rrggbb string.
func (c HPLuv[F]) Hex() string { return HPLuvToHex(c) }
