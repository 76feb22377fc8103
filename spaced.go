// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsluv

import "image/color"

// Spaced returns a maximally widely spaced sequence of colors
// for progressive values of the index, using the HPLuv space so
// that every color in a round has the same lightness and chroma.
// This is useful, for example, for assigning colors in graphs.
func Spaced(idx int) color.RGBA {
	// blue, red, green, yellow, violet, aqua, orange, blueviolet
	hues := []float32{255, 12, 128, 85, 310, 200, 40, 280}
	toffs := []float32{0, -5, 0, 10, 0, 0, 5, 0}
	lights := []float32{60, 75, 45, 60, 75}
	pastels := []float32{100, 100, 100, 40, 40}
	ncats := len(hues)
	nl := len(lights)
	hi := idx % ncats
	hr := idx / ncats
	li := hr % nl
	// negative indexes mirror positive ones
	if hi < 0 {
		hi = -hi
	}
	if li < 0 {
		li = -li
	}
	return HPLuv[float32]{H: hues[hi], P: pastels[li], L: toffs[hi] + lights[li]}.AsRGBA()
}
