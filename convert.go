// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsluv

import (
	"cogentcore.org/hsluv/base/num"
	"cogentcore.org/hsluv/cie"
)

// RGBToXYZ converts sRGB into XYZ.
func RGBToXYZ[F num.Float](c RGB[F]) XYZ[F] {
	x, y, z := cie.SRGBToXYZ(c.R, c.G, c.B)
	return XYZ[F]{X: x, Y: y, Z: z}
}

// XYZToRGB converts XYZ into sRGB. The result is not clamped.
func XYZToRGB[F num.Float](c XYZ[F]) RGB[F] {
	r, g, b := cie.XYZToSRGB(c.X, c.Y, c.Z)
	return RGB[F]{R: r, G: g, B: b}
}

// XYZToLUV converts XYZ into L*u*v*.
func XYZToLUV[F num.Float](c XYZ[F]) LUV[F] {
	l, u, v := cie.XYZToLUV(c.X, c.Y, c.Z)
	return LUV[F]{L: l, U: u, V: v}
}

// LUVToXYZ converts L*u*v* into XYZ.
func LUVToXYZ[F num.Float](c LUV[F]) XYZ[F] {
	x, y, z := cie.LUVToXYZ(c.L, c.U, c.V)
	return XYZ[F]{X: x, Y: y, Z: z}
}

// LUVToLCH converts L*u*v* into LCH(uv).
func LUVToLCH[F num.Float](c LUV[F]) LCH[F] {
	l, ch, h := cie.LUVToLCH(c.L, c.U, c.V)
	return LCH[F]{L: l, C: ch, H: h}
}

// LCHToLUV converts LCH(uv) into L*u*v*.
func LCHToLUV[F num.Float](c LCH[F]) LUV[F] {
	l, u, v := cie.LCHToLUV(c.L, c.C, c.H)
	return LUV[F]{L: l, U: u, V: v}
}

// RGBToLCH converts sRGB into LCH(uv).
func RGBToLCH[F num.Float](c RGB[F]) LCH[F] {
	return LUVToLCH(XYZToLUV(RGBToXYZ(c)))
}

// LCHToRGB converts LCH(uv) into sRGB.
func LCHToRGB[F num.Float](c LCH[F]) RGB[F] {
	return XYZToRGB(LUVToXYZ(LCHToLUV(c)))
}

// HSLuvToRGB converts HSLuv into sRGB.
func HSLuvToRGB[F num.Float](c HSLuv[F]) RGB[F] {
	return LCHToRGB(HSLuvToLCH(c))
}

// RGBToHSLuv converts sRGB into HSLuv.
func RGBToHSLuv[F num.Float](c RGB[F]) HSLuv[F] {
	return LCHToHSLuv(RGBToLCH(c))
}

// HPLuvToRGB converts HPLuv into sRGB.
func HPLuvToRGB[F num.Float](c HPLuv[F]) RGB[F] {
	return LCHToRGB(HPLuvToLCH(c))
}

// RGBToHPLuv converts sRGB into HPLuv.
func RGBToHPLuv[F num.Float](c RGB[F]) HPLuv[F] {
	return LCHToHPLuv(RGBToLCH(c))
}
