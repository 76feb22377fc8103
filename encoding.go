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
	"golang.org/x/image/colornames"
)

// ErrMalformedColor is returned by [ParseHSLuv] and [ParseHPLuv]
// for strings that are not a valid color.
var ErrMalformedColor = errors.New("hsluv: malformed color")

// String returns the color in the form hsluv(h, s, l).
func (c HSLuv[F]) String() string {
	return fmt.Sprintf("hsluv(%g, %g, %g)", c.H, c.S, c.L)
}

// String returns the color in the form hpluv(h, p, l).
func (c HPLuv[F]) String() string {
	return fmt.Sprintf("hpluv(%g, %g, %g)", c.H, c.P, c.L)
}

// MarshalText implements [encoding.TextMarshaler].
func (c HSLuv[F]) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler],
// accepting any form that [ParseHSLuv] accepts.
func (c *HSLuv[F]) UnmarshalText(text []byte) error {
	h, err := ParseHSLuv[F](string(text))
	if err != nil {
		return err
	}
	*c = h
	return nil
}

// MarshalText implements [encoding.TextMarshaler].
func (c HPLuv[F]) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler],
// accepting any form that [ParseHPLuv] accepts.
func (c *HPLuv[F]) UnmarshalText(text []byte) error {
	h, err := ParseHPLuv[F](string(text))
	if err != nil {
		return err
	}
	*c = h
	return nil
}

// ParseHSLuv parses a color string into HSLuv. It accepts the
// hsluv(h, s, l) form produced by [HSLuv.String], the hpluv(h, p, l)
// form of [HPLuv.String], #rrggbb hex strings, and standard
// CSS color names such as "steelblue". Case and surrounding
// space are ignored.
func ParseHSLuv[F num.Float](s string) (HSLuv[F], error) {
	low := strings.ToLower(strings.TrimSpace(s))
	if args, ok, err := parseFunc[F](low, "hsluv"); ok {
		if err != nil {
			return HSLuv[F]{}, err
		}
		return HSLuv[F]{H: args[0], S: args[1], L: args[2]}, nil
	}
	if args, ok, err := parseFunc[F](low, "hpluv"); ok {
		if err != nil {
			return HSLuv[F]{}, err
		}
		return HPLuv[F]{H: args[0], P: args[1], L: args[2]}.LCH().HSLuv(), nil
	}
	rgb, err := parseRGB[F](low)
	if err != nil {
		return HSLuv[F]{}, err
	}
	return rgb.HSLuv(), nil
}

// ParseHPLuv parses a color string into HPLuv, accepting
// the same forms as [ParseHSLuv].
func ParseHPLuv[F num.Float](s string) (HPLuv[F], error) {
	low := strings.ToLower(strings.TrimSpace(s))
	if args, ok, err := parseFunc[F](low, "hpluv"); ok {
		if err != nil {
			return HPLuv[F]{}, err
		}
		return HPLuv[F]{H: args[0], P: args[1], L: args[2]}, nil
	}
	if args, ok, err := parseFunc[F](low, "hsluv"); ok {
		if err != nil {
			return HPLuv[F]{}, err
		}
		return HSLuv[F]{H: args[0], S: args[1], L: args[2]}.LCH().HPLuv(), nil
	}
	rgb, err := parseRGB[F](low)
	if err != nil {
		return HPLuv[F]{}, err
	}
	return rgb.HPLuv(), nil
}

// parseFunc parses the three arguments of a name(a, b, c) color
// function. ok is false when s is not a call to the named function.
func parseFunc[F num.Float](s, name string) (args [3]F, ok bool, err error) {
	rest, found := strings.CutPrefix(s, name)
	if !found {
		return args, false, nil
	}
	rest = strings.TrimSpace(rest)
	if !strings.HasPrefix(rest, "(") || !strings.HasSuffix(rest, ")") {
		return args, true, fmt.Errorf("%w %q: missing parentheses", ErrMalformedColor, s)
	}
	fields := strings.Split(rest[1:len(rest)-1], ",")
	if len(fields) != len(args) {
		return args, true, fmt.Errorf("%w %q: want %d arguments, have %d", ErrMalformedColor, s, len(args), len(fields))
	}
	bits := 64
	if num.Is32[F]() {
		bits = 32
	}
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), bits)
		if err != nil {
			return args, true, fmt.Errorf("%w %q: %w", ErrMalformedColor, s, err)
		}
		args[i] = F(v)
	}
	return args, true, nil
}

// parseRGB parses a hex string or a CSS color name.
func parseRGB[F num.Float](s string) (RGB[F], error) {
	if strings.HasPrefix(s, "#") {
		rgb, err := ParseHex[F](s)
		if err != nil {
			return RGB[F]{}, fmt.Errorf("%w: %w", ErrMalformedColor, err)
		}
		return rgb, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return FromColor[F](c), nil
	}
	return RGB[F]{}, fmt.Errorf("%w %q: not a color function, hex string or color name", ErrMalformedColor, s)
}
