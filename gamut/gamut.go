// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gamut computes the boundary of the sRGB gamut in the
// chromatic (u, v) plane of CIE L*u*v* at a fixed lightness.
//
// For a given L*, the colors that stay inside the sRGB cube form a
// convex hexagon around the neutral axis. Each edge of that hexagon
// is the image of one face of the cube (one of R, G or B at 0 or 1)
// and is a straight line in (u, v). [Bounds] returns the six lines,
// [MaxChroma] the distance to the hexagon edge along a hue direction,
// and [MaxSafeChroma] the radius of the largest circle around the
// neutral axis that fits inside the hexagon.
package gamut

import (
	"cogentcore.org/hsluv/base/num"
	"cogentcore.org/hsluv/cie"
)

// NumLines is the number of boundary lines at any lightness:
// one per sRGB channel and clamping plane.
const NumLines = 6

// Line is a line in the (u, v) plane, v = Slope*u + Intercept.
type Line[F num.Float] struct {
	Slope     F
	Intercept F
}

// Y returns the v coordinate of the line at the given u.
func (ln Line[F]) Y(x F) F {
	return ln.Slope*x + ln.Intercept
}

// Intersect returns the u coordinate where this line crosses the
// other line. Parallel lines give an infinite or NaN result.
func (ln Line[F]) Intersect(other Line[F]) F {
	return (ln.Intercept - other.Intercept) / (other.Slope - ln.Slope)
}

// RayLength returns the distance from the origin to this line along
// the ray at angle theta (radians). The bool result is false when
// the ray does not hit the line at a strictly positive distance, in
// which case the length is meaningless.
func (ln Line[F]) RayLength(theta F) (F, bool) {
	sin, cos := num.Sincos(theta)
	length := ln.Intercept / (sin - ln.Slope*cos)
	return length, length > 0
}

// Perpendicular returns the line through the origin that is
// perpendicular to this line.
func (ln Line[F]) Perpendicular() Line[F] {
	return Line[F]{Slope: -1 / ln.Slope}
}

// DistanceFromPole returns the distance of the point (x, y) from
// the origin.
func DistanceFromPole[F num.Float](x, y F) F {
	return num.Sqrt(x*x + y*y)
}

// Bounds returns the six lines bounding the sRGB gamut in the (u, v)
// plane at lightness l (0-100). The lines are ordered by sRGB channel
// (red, green, blue) and, within each channel, by the clamping plane
// (0 then 1). At l = 0 the lines are degenerate.
func Bounds[F num.Float](l F) [NumLines]Line[F] {
	t := l + 16
	sub1 := t * t * t / 1560896
	sub2 := sub1
	if sub1 <= cie.Epsilon {
		sub2 = l / cie.Kappa
	}

	var bounds [NumLines]Line[F]
	for c, row := range cie.XYZToSRGBLinMatrix {
		m1, m2, m3 := F(row[0]), F(row[1]), F(row[2])
		for plane := 0; plane < 2; plane++ {
			p := F(plane)
			top1 := (284517*m1 - 94839*m3) * sub2
			top2 := (838422*m3+769860*m2+731718*m1)*l*sub2 - 769860*p*l
			bottom := (632260*m3-126452*m2)*sub2 + 126452*p
			bounds[2*c+plane] = Line[F]{Slope: top1 / bottom, Intercept: top2 / bottom}
		}
	}
	return bounds
}

// MaxChroma returns the largest chroma that stays inside the sRGB
// gamut for the given lightness (0-100) and hue (degrees). It is the
// distance to the nearest boundary line in the hue direction. When no
// line is hit, which only happens for degenerate lightness values,
// it returns [num.MaxValue].
func MaxChroma[F num.Float](l, h F) F {
	hrad := num.DegToRad(h)
	mx := num.MaxValue[F]()
	for _, ln := range Bounds(l) {
		length, ok := ln.RayLength(hrad)
		if ok && length < mx {
			mx = length
		}
	}
	return mx
}

// MaxSafeChroma returns the largest chroma that stays inside the sRGB
// gamut for the given lightness (0-100) regardless of hue: the
// distance from the neutral axis to the nearest boundary line.
func MaxSafeChroma[F num.Float](l F) F {
	mx := num.MaxValue[F]()
	for _, ln := range Bounds(l) {
		x := ln.Intersect(ln.Perpendicular())
		d := DistanceFromPole(x, ln.Y(x))
		if d < mx {
			mx = d
		}
	}
	return mx
}
