// Package colorspace implements HSL to hex conversion and hue rotation for
// #RRGGBB color strings. Malformed input never panics; it degrades to black.
package colorspace

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseHex decodes a "#RRGGBB" string into its channels. A malformed value
// returns black and ok=false.
func ParseHex(hex string) (r, g, b uint8, ok bool) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}

// HSLToHex converts h in [0,360), s and l in [0,100] to a lowercase
// "#rrggbb" string using the standard chroma/intermediate/match construction.
func HSLToHex(h, s, l float64) string {
	sn := s / 100
	ln := l / 100

	c := (1 - math.Abs(2*ln-1)) * sn
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := ln - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return fmt.Sprintf("#%02x%02x%02x", channel(r+m), channel(g+m), channel(b+m))
}

func channel(v float64) uint8 {
	n := math.Round(v * 255)
	if n < 0 {
		n = 0
	}
	if n > 255 {
		n = 255
	}
	return uint8(n)
}

// HexToHSL converts a "#RRGGBB" string back to HSL with h in [0,360) and
// s, l in [0,100]. Malformed input is treated as black.
func HexToHSL(hex string) (h, s, l float64) {
	ri, gi, bi, _ := ParseHex(hex)
	r := float64(ri) / 255
	g := float64(gi) / 255
	b := float64(bi) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l = (max + min) / 2

	if max == min {
		return 0, 0, l * 100
	}

	d := max - min
	s = d / (1 - math.Abs(2*l-1))

	switch max {
	case r:
		h = math.Mod((g-b)/d, 6)
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}

	return h, s * 100, l * 100
}

// RotateHue shifts a color's hue by the given number of degrees, leaving
// saturation and lightness unchanged.
func RotateHue(hex string, degrees float64) string {
	h, s, l := HexToHSL(hex)
	h = math.Mod(h+degrees+360, 360)
	if h < 0 {
		h += 360
	}
	return HSLToHex(h, s, l)
}
