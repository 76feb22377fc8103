// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "cogentcore.org/hsluv/base/num"

// XYZToSRGBLinMatrix converts CIE XYZ (D65) into linear sRGB.
// Its rows are also the source of the gamut boundary lines, so the
// values must match the HSLuv reference implementation exactly.
var XYZToSRGBLinMatrix = [3][3]float64{
	{3.240969941904521, -1.537383177570093, -0.498610760293},
	{-0.96924363628087, 1.87596750150772, 0.041555057407175},
	{0.055630079696993, -0.20397695888897, 1.056971514242878},
}

// SRGBLinToXYZMatrix is the inverse of [XYZToSRGBLinMatrix].
var SRGBLinToXYZMatrix = [3][3]float64{
	{0.41239079926595, 0.35758433938387, 0.18048078840183},
	{0.21263900587151, 0.71516867876775, 0.072192315360733},
	{0.019330818715591, 0.11919477979462, 0.95053215224966},
}

// MatMul returns the product of the given matrix and the column
// vector (x, y, z), computed in the precision of F.
func MatMul[F num.Float](m *[3][3]float64, x, y, z F) (a, b, c F) {
	a = F(m[0][0])*x + F(m[0][1])*y + F(m[0][2])*z
	b = F(m[1][0])*x + F(m[1][1])*y + F(m[1][2])*z
	c = F(m[2][0])*x + F(m[2][1])*y + F(m[2][2])*z
	return
}

// SRGBLinToXYZ converts sRGB linear into XYZ CIE standard color space
func SRGBLinToXYZ[F num.Float](rl, gl, bl F) (x, y, z F) {
	return MatMul(&SRGBLinToXYZMatrix, rl, gl, bl)
}

// XYZToSRGBLin converts XYZ CIE standard color space to sRGB linear
func XYZToSRGBLin[F num.Float](x, y, z F) (rl, gl, bl F) {
	return MatMul(&XYZToSRGBLinMatrix, x, y, z)
}

// SRGBToXYZ converts sRGB into XYZ CIE standard color space
func SRGBToXYZ[F num.Float](r, g, b F) (x, y, z F) {
	rl, gl, bl := SRGBToLinear(r, g, b)
	return SRGBLinToXYZ(rl, gl, bl)
}

// XYZToSRGB converts XYZ CIE standard color space into sRGB.
// The result is not clamped: colors outside of the sRGB gamut
// have components below 0 or above 1.
func XYZToSRGB[F num.Float](x, y, z F) (r, g, b F) {
	rl, gl, bl := XYZToSRGBLin(x, y, z)
	return SRGBFromLinear(rl, gl, bl)
}
