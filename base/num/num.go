// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package num provides the floating-point constraint used throughout
// the color packages, and generic versions of the math functions they
// need. float32 values are computed with github.com/chewxy/math32,
// which has some optimized implementations, and float64 values with
// the standard math package, so that each precision stays in its own
// arithmetic.
package num

import (
	"math"
	"unsafe"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Float is the set of floating-point types that colors can be
// represented with.
type Float interface {
	constraints.Float
}

const (
	// DegToRadFactor is the number of radians per degree.
	DegToRadFactor = math.Pi / 180

	// RadToDegFactor is the number of degrees per radian.
	RadToDegFactor = 180 / math.Pi
)

// Is32 returns whether F is a 32 bit floating-point type.
func Is32[F Float]() bool {
	var z F
	return unsafe.Sizeof(z) == 4
}

// MaxValue returns the largest finite value representable by F.
func MaxValue[F Float]() F {
	if Is32[F]() {
		mx := float32(math.MaxFloat32)
		return F(mx)
	}
	mx := math.MaxFloat64
	return F(mx)
}

// DegToRad converts a number from degrees to radians
func DegToRad[F Float](degrees F) F {
	return degrees * DegToRadFactor
}

// RadToDeg converts a number from radians to degrees
func RadToDeg[F Float](radians F) F {
	return radians * RadToDegFactor
}

// Abs returns the absolute value of x.
func Abs[F Float](x F) F {
	if Is32[F]() {
		return F(math32.Abs(float32(x)))
	}
	return F(math.Abs(float64(x)))
}

// Sqrt returns the square root of x.
func Sqrt[F Float](x F) F {
	if Is32[F]() {
		return F(math32.Sqrt(float32(x)))
	}
	return F(math.Sqrt(float64(x)))
}

// Hypot returns Sqrt(p*p + q*q), taking care to avoid
// unnecessary overflow and underflow.
func Hypot[F Float](p, q F) F {
	if Is32[F]() {
		return F(math32.Hypot(float32(p), float32(q)))
	}
	return F(math.Hypot(float64(p), float64(q)))
}

// Cbrt returns the cube root of x.
func Cbrt[F Float](x F) F {
	if Is32[F]() {
		return F(math32.Cbrt(float32(x)))
	}
	return F(math.Cbrt(float64(x)))
}

// Pow returns x**y, the base-x exponential of y.
func Pow[F Float](x, y F) F {
	if Is32[F]() {
		return F(math32.Pow(float32(x), float32(y)))
	}
	return F(math.Pow(float64(x), float64(y)))
}

// Sin returns the sine of the radian argument x.
func Sin[F Float](x F) F {
	if Is32[F]() {
		return F(math32.Sin(float32(x)))
	}
	return F(math.Sin(float64(x)))
}

// Cos returns the cosine of the radian argument x.
func Cos[F Float](x F) F {
	if Is32[F]() {
		return F(math32.Cos(float32(x)))
	}
	return F(math.Cos(float64(x)))
}

// Sincos returns Sin(x), Cos(x).
func Sincos[F Float](x F) (sin, cos F) {
	if Is32[F]() {
		s, c := math32.Sincos(float32(x))
		return F(s), F(c)
	}
	s, c := math.Sincos(float64(x))
	return F(s), F(c)
}

// Atan2 returns the arc tangent of y/x, using the signs of the two
// to determine the quadrant of the return value.
func Atan2[F Float](y, x F) F {
	if Is32[F]() {
		return F(math32.Atan2(float32(y), float32(x)))
	}
	return F(math.Atan2(float64(y), float64(x)))
}

// Round returns the nearest integer, rounding half away from zero.
func Round[F Float](x F) F {
	if Is32[F]() {
		return F(math32.Round(float32(x)))
	}
	return F(math.Round(float64(x)))
}

// Mod returns the floating-point remainder of x/y.
// The magnitude of the result is less than y and its
// sign agrees with that of x.
func Mod[F Float](x, y F) F {
	if Is32[F]() {
		return F(math32.Mod(float32(x), float32(y)))
	}
	return F(math.Mod(float64(x), float64(y)))
}

// IsNaN reports whether x is a "not-a-number" value.
func IsNaN[F Float](x F) bool {
	return x != x
}

// Clamp clamps x to the provided closed interval [a, b]
func Clamp[F Float](x, a, b F) F {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// WrapDegrees returns the given angle in degrees wrapped
// into the range [0, 360).
func WrapDegrees[F Float](deg F) F {
	deg = Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}
