// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "cogentcore.org/hsluv/base/num"

// ChromaEpsilon is the chroma below which the hue of a color is
// undefined and reported as 0. It is well above the rounding noise
// of float32 around the neutral axis and far below one 8-bit step.
const ChromaEpsilon = 1e-3

// LUVToLCH converts CIE L*u*v* into the cylindrical LCH(uv) form,
// with hue in degrees in [0, 360).
func LUVToLCH[F num.Float](l, u, v F) (lo, c, h F) {
	c = num.Hypot(u, v)
	if c < ChromaEpsilon {
		return l, c, 0
	}
	h = num.RadToDeg(num.Atan2(v, u))
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h -= 360
	}
	return l, c, h
}

// LCHToLUV converts LCH(uv), with hue in degrees, into CIE L*u*v*.
func LCHToLUV[F num.Float](l, c, h F) (lo, u, v F) {
	sin, cos := num.Sincos(num.DegToRad(h))
	return l, c * cos, c * sin
}
