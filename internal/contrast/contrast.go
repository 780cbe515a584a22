// Package contrast measures how distinguishable two colors are and exposes
// the thresholds used to gate color assignment.
//
// Luminance is BT.709 luma over raw channel values, not the gamma-linearized
// WCAG relative luminance. The ratio scale still follows WCAG conventions
// (1.0 identical, 21.0 black on white), so the familiar 4.5/3.0 thresholds
// keep their meaning.
package contrast

import (
	"github.com/cardforge/cardforge/internal/colorspace"
)

// Threshold values on the contrast-ratio scale.
const (
	// AANormal is the minimum ratio for normal-size text.
	AANormal = 4.5
	// AALarge is the minimum ratio for large text.
	AALarge = 3.5
	// Indistinct marks two colors a viewer cannot reliably tell apart,
	// used to detect a shape vanishing into whatever is behind it.
	Indistinct = 1.6
)

// Luminance returns the BT.709 luma of a hex color in [0, 255]. Malformed
// input is treated as black.
func Luminance(hex string) float64 {
	r, g, b, _ := colorspace.ParseHex(hex)
	return 0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)
}

// Ratio returns the contrast ratio between two colors. It is symmetric and
// Ratio(x, x) == 1 for any x.
func Ratio(a, b string) float64 {
	la := Luminance(a) / 255
	lb := Luminance(b) / 255
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// IsDark reports whether a color reads as dark, i.e. white text contrasts
// better against it than black text.
func IsDark(hex string) bool {
	return Ratio(hex, "#ffffff") >= Ratio(hex, "#000000")
}
