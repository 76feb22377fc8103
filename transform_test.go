// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsluv

import (
	"image/color"
	"testing"

	"cogentcore.org/hsluv/base/tolassert"
	"github.com/stretchr/testify/assert"
)

var (
	red   = color.RGBA{255, 0, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
	white = color.RGBA{255, 255, 255, 255}
	ocean = color.RGBA{0x33, 0x66, 0x99, 255}
)

// assertNear asserts that each component of the two colors
// differs by at most one.
func assertNear(t *testing.T, want, got color.RGBA, msgAndArgs ...any) {
	t.Helper()
	near := func(a, b uint8) bool {
		return int(a)-int(b) <= 1 && int(b)-int(a) <= 1
	}
	if !near(want.R, got.R) || !near(want.G, got.G) || !near(want.B, got.B) || !near(want.A, got.A) {
		assert.Equal(t, want, got, msgAndArgs...)
	}
}

func TestLightenDarken(t *testing.T) {
	assert.Equal(t, color.RGBA{119, 119, 119, 255}, Lighten(black, 50))
	assert.Equal(t, white, Lighten(ocean, 100))
	assert.Equal(t, black, Darken(ocean, 100))
	assertNear(t, color.RGBA{24, 54, 84, 255}, Darken(ocean, 20))

	// lightness is perceptual, so the result has the requested lightness
	l := HSLuvModel.Convert(Lighten(ocean, 30)).(HSLuv[float32]).L
	tolassert.EqualTol(t, 72.00916, l, 0.5)
}

func TestHighlightSamelight(t *testing.T) {
	assert.True(t, IsDark(Highlight(white, 60)))
	assert.True(t, IsLight(Highlight(black, 60)))
	assert.Equal(t, white, Samelight(white, 20))
	assert.Equal(t, black, Samelight(black, 20))

	gray := color.RGBA{0x60, 0x60, 0x60, 0xff}
	tolassert.EqualTol(t, 50.73055, HSLuvModel.Convert(Highlight(gray, 10)).(HSLuv[float32]).L, 0.5)
	tolassert.EqualTol(t, 30.73055, HSLuvModel.Convert(Samelight(gray, 10)).(HSLuv[float32]).L, 0.5)
}

func TestSaturate(t *testing.T) {
	assert.Equal(t, color.RGBA{127, 127, 127, 255}, Desaturate(red, 100))
	assertNear(t, red, Saturate(red, 50))

	c := Saturate(ocean, 100)
	assertNear(t, color.RGBA{0, 103, 167, 255}, c)
	// full saturation is on the edge of the gamut
	assert.True(t, min(c.R, c.G, c.B) == 0 || max(c.R, c.G, c.B) == 255, "%v", c)

	// grays stay gray
	gray := Saturate(color.RGBA{0x80, 0x80, 0x80, 0xff}, 0)
	assert.Equal(t, color.RGBA{0x80, 0x80, 0x80, 0xff}, gray)
}

func TestSpin(t *testing.T) {
	assertNear(t, color.RGBA{0, 147, 52, 255}, Spin(red, 120))
	assertNear(t, red, Spin(red, 360))
	assertNear(t, red, Spin(red, -720))
	assertNear(t, Spin(red, 240), Spin(red, -120))
}

func TestMinHueDistance(t *testing.T) {
	assert.Equal(t, float32(90), MinHueDistance[float32](0, 90))
	assert.Equal(t, -20.0, MinHueDistance(10.0, 350.0))
	assert.Equal(t, 20.0, MinHueDistance(350.0, 10.0))
	assert.Equal(t, -30.0, MinHueDistance(100.0, 70.0))
}

func TestBlend(t *testing.T) {
	assertNear(t, red, Blend(100, red, blue))
	assertNear(t, blue, Blend(0, red, blue))
	assertNear(t, color.RGBA{119, 119, 119, 255}, Blend(50, black, white))

	// the hue of a gray does not pull the result
	c := HSLuvModel.Convert(Blend(50, ocean, color.RGBA{0x80, 0x80, 0x80, 0xff})).(HSLuv[float32])
	tolassert.EqualTol(t, 246.94244, c.H, 2)

	// red to blue goes the short way around, through magenta
	m := Blend(50, red, blue)
	assert.Greater(t, m.R, m.G)
	assert.Greater(t, m.B, m.G)

	// alpha is blended as well
	half := Blend(50, red, color.RGBA{})
	assert.Equal(t, uint8(128), half.A)
}

func TestAlpha(t *testing.T) {
	c := Lighten(color.NRGBA{255, 0, 0, 128}, 0)
	assert.Equal(t, color.RGBA{128, 0, 0, 128}, c)
	assert.Equal(t, uint8(0), Spin(color.RGBA{}, 10).A)
}

func TestIsLight(t *testing.T) {
	assert.True(t, IsLight(white))
	assert.True(t, IsLight(color.RGBA{0x80, 0x80, 0x80, 0xff}))
	assert.True(t, IsLight(color.RGBA{0xff, 0xcc, 0x00, 0xff}))
	assert.False(t, IsLight(black))
	assert.True(t, IsDark(blue))
	assert.True(t, IsDark(color.RGBA{0x60, 0x60, 0x60, 0xff}))

	assert.Equal(t, black, ContrastColor(color.RGBA{0xff, 0xcc, 0x00, 0xff}))
	assert.Equal(t, white, ContrastColor(blue))
}
