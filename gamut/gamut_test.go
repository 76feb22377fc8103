// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gamut

import (
	"math"
	"testing"

	"cogentcore.org/hsluv/base/num"
	"cogentcore.org/hsluv/base/tolassert"
	"cogentcore.org/hsluv/cie"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

func TestBounds(t *testing.T) {
	want := [NumLines]Line[float64]{
		{-8.021739130434915, -318.52815091205554},
		{1.7136369050402749, -301.39159129591553},
		{1.325964991023324, -182.4777708884064},
		{-0.588118432617865, -358.4889217606724},
		{-0.12162162162162199, 55.4594960078863},
		{-0.0611425182144912, -123.4927578329191},
	}
	if diff := cmp.Diff(want, Bounds(50.0), cmpopts.EquateApprox(1e-12, 0)); diff != "" {
		t.Errorf("Bounds(50) mismatch (-want +got):\n%s", diff)
	}

	want = [NumLines]Line[float64]{
		{-8.021739130434915, -159.26407545602777},
		{0.3534096210367031, -151.8929561818133},
		{1.325964991023324, -91.2388854442032},
		{-0.10543497385838321, -157.05167919853096},
		{-0.12162162162162199, 27.729748003943154},
		{-0.023725845358419567, -117.10267193012744},
	}
	if diff := cmp.Diff(want, Bounds(25.0), cmpopts.EquateApprox(1e-12, 0)); diff != "" {
		t.Errorf("Bounds(25) mismatch (-want +got):\n%s", diff)
	}

	b32 := Bounds[float32](50)
	for i, ln := range Bounds(50.0) {
		tolassert.EqualTol(t, float32(ln.Slope), b32[i].Slope, 1e-4)
		tolassert.EqualTol(t, float32(ln.Intercept), b32[i].Intercept, 1e-2)
	}
}

func TestLine(t *testing.T) {
	ln := Line[float64]{Slope: 2, Intercept: 1}
	assert.Equal(t, 7.0, ln.Y(3))
	assert.Equal(t, -0.5, ln.Perpendicular().Slope)
	assert.Equal(t, 0.0, ln.Perpendicular().Intercept)

	// 2x + 1 = -x + 4
	assert.Equal(t, 1.0, ln.Intersect(Line[float64]{Slope: -1, Intercept: 4}))

	// straight up the v axis hits v = 2x + 1 at distance 1
	length, ok := ln.RayLength(math.Pi / 2)
	assert.True(t, ok)
	tolassert.EqualTol(t, 1.0, length, 1e-12)

	// straight down never reaches it
	_, ok = ln.RayLength(-math.Pi / 2)
	assert.False(t, ok)

	// a line through the origin is never hit at a positive distance
	_, ok = Line[float64]{Slope: 1}.RayLength(1)
	assert.False(t, ok)

	assert.Equal(t, 5.0, DistanceFromPole(3.0, -4.0))
}

func TestMaxChroma(t *testing.T) {
	tolassert.EqualTol(t, 137.6188452363118, MaxChroma(50.0, 0.0), 1e-9)
	tolassert.EqualTol(t, 68.87542338630058, MaxChroma(50.0, 120.0), 1e-9)
	tolassert.EqualTol(t, 179.03809692362032, MaxChroma(53.23711559542933, 12.177050630061776), 1e-6)

	tolassert.EqualTol(t, float32(137.6188452363118), MaxChroma[float32](50, 0), 1e-2)
	tolassert.EqualTol(t, float32(68.87542338630058), MaxChroma[float32](50, 120), 1e-2)
}

func TestMaxChromaDegenerate(t *testing.T) {
	for _, h := range []float64{0, 90, 180, 270} {
		assert.Equal(t, num.MaxValue[float64](), MaxChroma(0.0, h))
		assert.Equal(t, num.MaxValue[float32](), MaxChroma(float32(0), float32(h)))
		assert.Less(t, MaxChroma(99.99, h), 0.5)
	}
}

// TestMaxChromaOnSurface checks that the color at the maximum chroma
// lies on the surface of the linear sRGB cube.
func TestMaxChromaOnSurface(t *testing.T) {
	const tol = 1e-9
	for l := 1.0; l < 100; l += 3 {
		for h := 0.0; h < 360; h += 7.5 {
			c := MaxChroma(l, h)
			_, u, v := cie.LCHToLUV(l, c, h)
			x, y, z := cie.LUVToXYZ(l, u, v)
			r, g, b := cie.XYZToSRGBLin(x, y, z)
			mn := min(r, g, b)
			mx := max(r, g, b)
			assert.GreaterOrEqual(t, mn, -tol, "l=%g h=%g", l, h)
			assert.LessOrEqual(t, mx, 1+tol, "l=%g h=%g", l, h)
			onSurface := math.Abs(mn) < tol || math.Abs(mx-1) < tol
			assert.True(t, onSurface, "l=%g h=%g rgb=(%g, %g, %g)", l, h, r, g, b)
		}
	}
}

func TestMaxSafeChroma(t *testing.T) {
	tolassert.EqualTol(t, 39.40312603554313, MaxSafeChroma(50.0), 1e-9)
	tolassert.EqualTol(t, 7.8806252071086265, MaxSafeChroma(10.0), 1e-9)
	tolassert.EqualTol(t, 10.658347137760796, MaxSafeChroma(95.0), 1e-9)
	tolassert.EqualTol(t, float32(39.40312603554313), MaxSafeChroma[float32](50), 1e-2)
	assert.Equal(t, 0.0, MaxSafeChroma(0.0))
	assert.Less(t, MaxSafeChroma(99.99), 0.05)
}

// TestMaxSafeChromaIsMinimum checks that the safe chroma is the
// minimum of the maximum chroma over all hues.
func TestMaxSafeChromaIsMinimum(t *testing.T) {
	for _, l := range []float64{1, 5, 25, 50, 75, 95} {
		safe := MaxSafeChroma(l)
		lowest := num.MaxValue[float64]()
		for h := 0.0; h < 360; h += 0.1 {
			c := MaxChroma(l, h)
			assert.GreaterOrEqual(t, c, safe-1e-9, "l=%g h=%g", l, h)
			lowest = min(lowest, c)
		}
		tolassert.EqualTol(t, safe, lowest, 1e-3*safe)
	}
}

func BenchmarkMaxChroma(b *testing.B) {
	for i := 0; i < b.N; i++ {
		MaxChroma(56.0, 120.0)
	}
}

func BenchmarkMaxSafeChroma(b *testing.B) {
	for i := 0; i < b.N; i++ {
		MaxSafeChroma(float32(56))
	}
}
