// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsluv

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/hsluv/base/errors"
	"cogentcore.org/hsluv/base/num"
)

// ErrMalformedHex is returned by [ParseHex] for strings
// that are not a 6 digit hex color.
var ErrMalformedHex = errors.New("hsluv: malformed hex color")

// HexLen is the length of a hex color string, including the '#'.
const HexLen = 7

const hexDigits = "0123456789abcdef"

// quantize converts a color component to a byte. The value is rounded
// to 3 decimals before it is clamped to 0-1 and scaled, so that values
// within float noise of a byte boundary land on the same byte in both
// precisions. NaN gives 0.
func quantize[F num.Float](c F) uint8 {
	if num.IsNaN(c) {
		return 0
	}
	c = num.Round(c*1000) / 1000
	c = num.Clamp(c, 0, 1)
	return uint8(num.Round(c * 255))
}

// HexBytes returns the color as the bytes of a lowercase #rrggbb string,
// without allocating. Components are clamped to 0-1.
func HexBytes[F num.Float](c RGB[F]) [HexLen]byte {
	var b [HexLen]byte
	b[0] = '#'
	for i, v := range [3]F{c.R, c.G, c.B} {
		q := quantize(v)
		b[1+2*i] = hexDigits[q>>4]
		b[2+2*i] = hexDigits[q&0x0f]
	}
	return b
}

// AppendHex appends the #rrggbb form of the color to dst and
// returns the extended buffer.
func AppendHex[F num.Float](dst []byte, c RGB[F]) []byte {
	b := HexBytes(c)
	return append(dst, b[:]...)
}

// RGBToHex returns the color as a lowercase #rrggbb string.
// Components are clamped to 0-1.
func RGBToHex[F num.Float](c RGB[F]) string {
	b := HexBytes(c)
	return string(b[:])
}

// HexToRGB parses a #rrggbb hex color string; the leading '#' is
// optional. It never fails: a string that does not have exactly 6
// characters after the '#' gives black, and a component that is not
// a valid hex number gives 0. A pair may carry a sign, so "+f"
// gives 15/255 and "-f" gives -15/255. See [ParseHex] for a strict
// version.
func HexToRGB[F num.Float](hex string) RGB[F] {
	hex = strings.TrimLeft(hex, "#")
	if len(hex) != 6 {
		return RGB[F]{}
	}
	var comps [3]F
	for i := range comps {
		v, err := strconv.ParseInt(hex[2*i:2*i+2], 16, 64)
		if err == nil {
			comps[i] = F(v) / 255
		}
	}
	return RGB[F]{R: comps[0], G: comps[1], B: comps[2]}
}

// ParseHex parses a #rrggbb hex color string, with an optional
// leading '#'. Unlike [HexToRGB], it returns an error wrapping
// [ErrMalformedHex] for anything that is not 6 hex digits.
// See [MustParseHex] and [LogParseHex] for versions that do
// not return an error.
func ParseHex[F num.Float](hex string) (RGB[F], error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return RGB[F]{}, fmt.Errorf("%w %q: want 6 hex digits, have %d characters", ErrMalformedHex, hex, len(s))
	}
	var comps [3]F
	for i := range comps {
		v, err := strconv.ParseUint(s[2*i:2*i+2], 16, 8)
		if err != nil {
			return RGB[F]{}, fmt.Errorf("%w %q: %w", ErrMalformedHex, hex, err)
		}
		comps[i] = F(v) / 255
	}
	return RGB[F]{R: comps[0], G: comps[1], B: comps[2]}, nil
}

// MustParseHex parses the given hex color string.
// It panics on any resulting error; see [ParseHex] for a
// version that returns an error.
func MustParseHex[F num.Float](hex string) RGB[F] {
	return errors.Must(ParseHex[F](hex))
}

// LogParseHex parses the given hex color string. It logs any
// resulting error and returns black; see [ParseHex] for a
// version that returns an error.
func LogParseHex[F num.Float](hex string) RGB[F] {
	return errors.Log1(ParseHex[F](hex))
}

// HSLuvToHex converts HSLuv into a #rrggbb string.
func HSLuvToHex[F num.Float](c HSLuv[F]) string {
	return RGBToHex(HSLuvToRGB(c))
}

// HPLuvToHex converts HPLuv into a #rrggbb string.
func HPLuvToHex[F num.Float](c HPLuv[F]) string {
	return RGBToHex(HPLuvToRGB(c))
}

// HexToHSLuv converts a #rrggbb string into HSLuv,
// with the lenient parsing of [HexToRGB].
func HexToHSLuv[F num.Float](hex string) HSLuv[F] {
	return RGBToHSLuv(HexToRGB[F](hex))
}

// HexToHPLuv converts a #rrggbb string into HPLuv,
// with the lenient parsing of [HexToRGB].
func HexToHPLuv[F num.Float](hex string) HPLuv[F] {
	return RGBToHPLuv(HexToRGB[F](hex))
}
