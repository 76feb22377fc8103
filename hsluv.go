// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hsluv converts colors between sRGB, #rrggbb hex strings,
// CIE XYZ, CIE L*u*v*, LCH(uv), HSLuv and HPLuv.
//
// HSLuv and HPLuv are human-friendly alternatives to HSL built on
// L*u*v*: lightness is perceptual, and saturation is expressed as a
// percentage of the chroma available in the sRGB gamut, computed by
// package [cogentcore.org/hsluv/gamut].
//
// All conversions are pure functions over small value types that are
// generic over float32 and float64, so both precisions share one
// implementation:
//
//	c := hsluv.HSLuv[float64]{H: 250, S: 90, L: 60}
//	hex := c.Hex()
//	back := hsluv.HexToHSLuv[float32](hex)
package hsluv

import (
	"cogentcore.org/hsluv/base/num"
	"cogentcore.org/hsluv/gamut"
)

// Lightness thresholds at which colors collapse to black or white.
// Near both ends the gamut shrinks to a point, so saturation is
// undefined; the same thresholds apply to both directions of every
// HSLuv and HPLuv conversion and to both float precisions.
const (
	// WhiteLightness is the lightness above which a color is white.
	WhiteLightness = 99.99

	// BlackLightness is the lightness below which a color is black.
	BlackLightness = 0.001
)

// HSLuvToLCH converts HSLuv into LCH(uv).
func HSLuvToLCH[F num.Float](c HSLuv[F]) LCH[F] {
	switch {
	case c.L > WhiteLightness:
		return LCH[F]{L: 100, C: 0, H: c.H}
	case c.L < BlackLightness:
		return LCH[F]{L: 0, C: 0, H: c.H}
	}
	mx := gamut.MaxChroma(c.L, c.H)
	return LCH[F]{L: c.L, C: mx / 100 * c.S, H: c.H}
}

// LCHToHSLuv converts LCH(uv) into HSLuv. Chroma beyond the
// gamut gives a saturation above 100.
func LCHToHSLuv[F num.Float](c LCH[F]) HSLuv[F] {
	switch {
	case c.L > WhiteLightness:
		return HSLuv[F]{H: c.H, S: 0, L: 100}
	case c.L < BlackLightness:
		return HSLuv[F]{H: c.H, S: 0, L: 0}
	}
	mx := gamut.MaxChroma(c.L, c.H)
	return HSLuv[F]{H: c.H, S: c.C / mx * 100, L: c.L}
}

// HPLuvToLCH converts HPLuv into LCH(uv).
func HPLuvToLCH[F num.Float](c HPLuv[F]) LCH[F] {
	switch {
	case c.L > WhiteLightness:
		return LCH[F]{L: 100, C: 0, H: c.H}
	case c.L < BlackLightness:
		return LCH[F]{L: 0, C: 0, H: c.H}
	}
	mx := gamut.MaxSafeChroma(c.L)
	return LCH[F]{L: c.L, C: mx / 100 * c.P, H: c.H}
}

// LCHToHPLuv converts LCH(uv) into HPLuv.
func LCHToHPLuv[F num.Float](c LCH[F]) HPLuv[F] {
	switch {
	case c.L > WhiteLightness:
		return HPLuv[F]{H: c.H, P: 0, L: 100}
	case c.L < BlackLightness:
		return HPLuv[F]{H: c.H, P: 0, L: 0}
	}
	mx := gamut.MaxSafeChroma(c.L)
	return HPLuv[F]{H: c.H, P: c.C / mx * 100, L: c.L}
}
