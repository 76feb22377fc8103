// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsluv

import (
	"image/color"

	"cogentcore.org/hsluv/base/num"
)

// Lighten returns a color that is lighter by the
// given absolute HSLuv lightness amount (0-100, ranges enforced)
func Lighten(c color.Color, amount float32) color.RGBA {
	h, a := fromColorAlpha(c)
	h.L = num.Clamp(h.L+amount, 0, 100)
	return toRGBA(h, a)
}

// Darken returns a color that is darker by the
// given absolute HSLuv lightness amount (0-100, ranges enforced)
func Darken(c color.Color, amount float32) color.RGBA {
	h, a := fromColorAlpha(c)
	h.L = num.Clamp(h.L-amount, 0, 100)
	return toRGBA(h, a)
}

// Highlight returns a color that is lighter or darker by the
// given absolute HSLuv lightness amount (0-100, ranges enforced),
// making the color darker if it is light (lightness >= 50) and
// lighter otherwise. It is the opposite of [Samelight].
func Highlight(c color.Color, amount float32) color.RGBA {
	h, a := fromColorAlpha(c)
	if h.L >= 50 {
		h.L -= amount
	} else {
		h.L += amount
	}
	h.L = num.Clamp(h.L, 0, 100)
	return toRGBA(h, a)
}

// Samelight returns a color that is lighter or darker by the
// given absolute HSLuv lightness amount (0-100, ranges enforced),
// making the color lighter if it is light (lightness >= 50) and
// darker otherwise. It is the opposite of [Highlight].
func Samelight(c color.Color, amount float32) color.RGBA {
	h, a := fromColorAlpha(c)
	if h.L >= 50 {
		h.L += amount
	} else {
		h.L -= amount
	}
	h.L = num.Clamp(h.L, 0, 100)
	return toRGBA(h, a)
}

// Saturate returns a color that is more saturated by the
// given absolute HSLuv saturation amount (0-100, ranges enforced).
// Because HSLuv saturation is relative to the gamut, the result
// is always a displayable color with the same hue and lightness.
func Saturate(c color.Color, amount float32) color.RGBA {
	h, a := fromColorAlpha(c)
	h.S = num.Clamp(h.S+amount, 0, 100)
	return toRGBA(h, a)
}

// Desaturate returns a color that is less saturated by the
// given absolute HSLuv saturation amount (0-100, ranges enforced)
func Desaturate(c color.Color, amount float32) color.RGBA {
	h, a := fromColorAlpha(c)
	h.S = num.Clamp(h.S-amount, 0, 100)
	return toRGBA(h, a)
}

// Spin returns a color that has a different hue by the
// given HSLuv hue amount in degrees (±0-360, wrapped)
func Spin(c color.Color, amount float32) color.RGBA {
	h, a := fromColorAlpha(c)
	h.H = num.WrapDegrees(h.H + amount)
	return toRGBA(h, a)
}

// MinHueDistance finds the minimum distance between two hues.
// A positive number means add to a to get to b.
// A negative number means subtract from a to get to b.
func MinHueDistance[F num.Float](a, b F) F {
	d1 := b - a
	d2 := (b + 360) - a
	d3 := (b - (a + 360))
	d1a := num.Abs(d1)
	d2a := num.Abs(d2)
	d3a := num.Abs(d3)
	if d1a < d2a && d1a < d3a {
		return d1
	}
	if d2a < d1a && d2a < d3a {
		return d2
	}
	return d3
}

// Blend returns a color that is the given percent blend between the first
// and second color; 10 = 10% of the first and 90% of the second, etc;
// blending is done directly on non-premultiplied HSLuv values, and
// a correctly premultiplied color is returned.
func Blend(pct float32, x, y color.Color) color.RGBA {
	hx, ax := fromColorAlpha(x)
	hy, ay := fromColorAlpha(y)
	pct = num.Clamp(pct, 0, 100)
	px := pct / 100
	py := 1 - px

	dhue := MinHueDistance(hx.H, hy.H)

	// weight as a function of saturation: if near grey, hue is unreliable
	cpy := py
	if sum := px*hx.S + py*hy.S; sum > 0 {
		cpy = py * hy.S / sum
	}
	h := HSLuv[float32]{
		H: num.WrapDegrees(hx.H + cpy*dhue),
		S: px*hx.S + py*hy.S,
		L: px*hx.L + py*hy.L,
	}
	return toRGBA(h, px*ax+py*ay)
}

// IsLight returns whether the given color is light
// (has an HSLuv lightness greater than or equal to 50)
func IsLight(c color.Color) bool {
	h, _ := fromColorAlpha(c)
	return h.L >= 50
}

// IsDark returns whether the given color is dark
// (has an HSLuv lightness less than 50)
func IsDark(c color.Color) bool {
	return !IsLight(c)
}

// ContrastColor returns the color that should
// be used to contrast this color (white or black),
// based on the result of [IsLight].
func ContrastColor(c color.Color) color.RGBA {
	if IsLight(c) {
		return color.RGBA{0, 0, 0, 255}
	}
	return color.RGBA{255, 255, 255, 255}
}
