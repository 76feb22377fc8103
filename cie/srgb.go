// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie provides the CIE color spaces and standard sRGB
// conversions that HSLuv and HPLuv are built on: the sRGB transfer
// function, linear sRGB <-> XYZ, XYZ <-> L*u*v* and L*u*v* <-> LCH(uv).
// All functions are generic over [num.Float], so they can be used
// with both float32 and float64 values.
package cie

import "cogentcore.org/hsluv/base/num"

// SRGBToLinearComp converts an sRGB rgb component to linear space (removes gamma).
// Used in converting from sRGB to XYZ colors.
func SRGBToLinearComp[F num.Float](srgb F) F {
	if srgb > 0.04045 {
		return num.Pow((srgb+0.055)/1.055, 2.4)
	}
	return srgb / 12.92
}

// SRGBFromLinearComp converts an sRGB rgb linear component
// to non-linear (gamma corrected) sRGB value
// Used in converting from XYZ to sRGB.
func SRGBFromLinearComp[F num.Float](lin F) F {
	if lin <= 0.0031308 {
		return 12.92 * lin
	}
	return 1.055*num.Pow(lin, 1/2.4) - 0.055
}

// SRGBToLinear converts set of sRGB components to linear values,
// removing gamma correction.
func SRGBToLinear[F num.Float](r, g, b F) (rl, gl, bl F) {
	rl = SRGBToLinearComp(r)
	gl = SRGBToLinearComp(g)
	bl = SRGBToLinearComp(b)
	return
}

// SRGBFromLinear converts set of sRGB components from linear values,
// adding gamma correction.
func SRGBFromLinear[F num.Float](rl, gl, bl F) (r, g, b F) {
	r = SRGBFromLinearComp(rl)
	g = SRGBFromLinearComp(gl)
	b = SRGBFromLinearComp(bl)
	return
}
