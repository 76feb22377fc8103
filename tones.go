// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsluv

import (
	"image"
	"image/color"

	"cogentcore.org/hsluv/base/num"
)

// Tones produces the tones of a key color: colors with the hue and
// saturation of the key at different lightness values. Because HSLuv
// saturation is relative to the gamut, every tone is displayable and
// keeps the character of the key. To get a tonal value, use [Tones.Tone].
type Tones struct {

	// the key color used to generate these tones
	Key HSLuv[float32]
}

// NewTones returns a new set of [Tones]
// for the given color.
func NewTones(c color.Color) Tones {
	return Tones{Key: FromColor[float32](c).HSLuv()}
}

// Tone returns the color at the given tone, which is
// an HSLuv lightness on a scale of 0 to 100 (ranges enforced).
func (t Tones) Tone(tone int) color.RGBA {
	h := t.Key
	h.L = num.Clamp(float32(tone), 0, 100)
	return h.AsRGBA()
}

// ToneUniform returns [image.Uniform] of [Tones.Tone].
func (t Tones) ToneUniform(tone int) *image.Uniform {
	return image.NewUniform(t.Tone(tone))
}

// Ramp returns n tones evenly spaced from black (tone 0)
// to white (tone 100). A single tone is the midpoint.
func (t Tones) Ramp(n int) []color.RGBA {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []color.RGBA{t.Tone(50)}
	}
	ramp := make([]color.RGBA, n)
	h := t.Key
	for i := range ramp {
		h.L = 100 * float32(i) / float32(n-1)
		ramp[i] = h.AsRGBA()
	}
	return ramp
}
