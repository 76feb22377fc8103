// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "cogentcore.org/hsluv/base/num"

// D65 reference white, as used by HSLuv.
const (
	RefY = 1.0
	RefU = 0.19783000664283
	RefV = 0.46831999493879
)

// CIE L* constants.
const (
	// Kappa is the slope of the linear segment of L* near black.
	Kappa = 903.2962962

	// Epsilon is the relative luminance where L* switches from the
	// linear segment to the cube root.
	Epsilon = 0.0088564516
)

// YToL converts relative luminance Y to L* lightness (0-100),
// using the linear segment below [Epsilon].
func YToL[F num.Float](y F) F {
	if y > Epsilon {
		return 116*num.Cbrt(y/RefY) - 16
	}
	return y / RefY * Kappa
}

// LToY converts L* lightness (0-100) back to relative luminance Y.
// It is the exact inverse of [YToL]: the linear segment ends at L* = 8.
func LToY[F num.Float](l F) F {
	if l > 8 {
		t := (l + 16) / 116
		return RefY * t * t * t
	}
	return RefY * l / Kappa
}

// XYZToLUV converts XYZ into CIE L*u*v*. Black (L* = 0) and the
// zero vector map to (0, 0, 0) without dividing by zero.
func XYZToLUV[F num.Float](x, y, z F) (l, u, v F) {
	l = YToL(y)
	if l == 0 || (x == 0 && y == 0 && z == 0) {
		return 0, 0, 0
	}
	d := x + 15*y + 3*z
	varU := 4 * x / d
	varV := 9 * y / d
	u = 13 * l * (varU - RefU)
	v = 13 * l * (varV - RefV)
	return
}

// LUVToXYZ converts CIE L*u*v* into XYZ. L* = 0 maps to (0, 0, 0).
func LUVToXYZ[F num.Float](l, u, v F) (x, y, z F) {
	if l == 0 {
		return 0, 0, 0
	}
	varU := u/(13*l) + RefU
	varV := v/(13*l) + RefV
	y = LToY(l)
	x = -(9 * y * varU) / ((varU-4)*varV - varU*varV)
	z = (9*y - 15*varV*y - varV*x) / (3 * varV)
	return
}
