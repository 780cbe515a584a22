// Package palette generates seven-role color palettes from string seeds.
// The same seed always produces the same palette, which makes variant ids
// reproducible across runs and machines.
package palette

import (
	"math"

	"github.com/cardforge/cardforge/internal/colorspace"
	"github.com/cardforge/cardforge/internal/contrast"
	"github.com/cardforge/cardforge/internal/randseed"
)

// ColorPalette is an immutable set of role-bound colors. Every color field
// is a well-formed #rrggbb string.
type ColorPalette struct {
	ID         string `yaml:"id" json:"id"`
	Name       string `yaml:"name" json:"name"`
	Primary    string `yaml:"primary" json:"primary"`
	Secondary  string `yaml:"secondary" json:"secondary"`
	Accent     string `yaml:"accent" json:"accent"`
	Background string `yaml:"background" json:"background"`
	Text       string `yaml:"text" json:"text"`
	Subtext    string `yaml:"subtext" json:"subtext"`
	IsDark     bool   `yaml:"is_dark" json:"isDark"`
}

// Role color constants shared by generation and theme application.
const (
	White        = "#ffffff"
	Black        = "#000000"
	SoftWhite    = "#f8fafc"
	SoftBlack    = "#0f172a"
	mutedOnDark  = "#94a3b8"
	mutedOnLight = "#64748b"
)

// Generate produces a palette deterministically from the given seed.
func Generate(seed string) ColorPalette {
	rnd := randseed.NewSource(seed)

	tone := drawTone(rnd)
	baseHue := rnd.Range(tone.HueMin, tone.HueMax)

	accent := colorspace.HSLToHex(baseHue, rnd.Range(70, 95), rnd.Range(45, 60))
	primary := accent

	background, isDark := drawBackground(rnd, baseHue)
	secondary := colorspace.RotateHue(primary, 180)
	text, subtext := pickText(background)

	name := tone.Name + " Light"
	if isDark {
		name = tone.Name + " Dark"
	}

	return ColorPalette{
		ID:         "gen_" + seed,
		Name:       name,
		Primary:    primary,
		Secondary:  secondary,
		Accent:     accent,
		Background: background,
		Text:       text,
		Subtext:    subtext,
		IsDark:     isDark,
	}
}

// GenerateRandom produces a palette from a fresh random seed.
func GenerateRandom() ColorPalette {
	return Generate(randseed.RandomSeed())
}

func drawTone(rnd *randseed.Source) Tone {
	r := rnd.Next()
	cumulative := 0.0
	for _, t := range tones {
		cumulative += t.Weight
		if r < cumulative {
			return t
		}
	}
	return tones[len(tones)-1]
}

func drawMode(rnd *randseed.Source) backgroundMode {
	switch r := rnd.Next(); {
	case r < bgLightCutoff:
		return bgLight
	case r < bgDarkCutoff:
		return bgDark
	default:
		return bgBold
	}
}

func drawBackground(rnd *randseed.Source, baseHue float64) (hex string, isDark bool) {
	switch drawMode(rnd) {
	case bgLight:
		// Near-white wash of the brand hue.
		return colorspace.HSLToHex(baseHue, rnd.Range(5, 20), rnd.Range(92, 98)), false
	case bgDark:
		// Near-black, hue allowed to drift a little.
		hue := math.Mod(baseHue+rnd.Range(-15, 15)+360, 360)
		return colorspace.HSLToHex(hue, rnd.Range(10, 30), rnd.Range(5, 15)), true
	default:
		// Bold: the background is the brand color itself; treat as dark
		// for text-contrast purposes.
		return colorspace.HSLToHex(baseHue, rnd.Range(60, 90), rnd.Range(25, 45)), true
	}
}

// pickText chooses text and subtext colors for a background by polarity:
// whichever of white or black contrasts better wins, preferring the softened
// tone when it still clears the AA-normal threshold.
func pickText(background string) (text, subtext string) {
	whiteRatio := contrast.Ratio(background, White)
	blackRatio := contrast.Ratio(background, Black)

	if whiteRatio >= blackRatio {
		text = White
		if contrast.Ratio(background, SoftWhite) >= contrast.AANormal {
			text = SoftWhite
		}
		return text, mutedOnDark
	}

	text = Black
	if contrast.Ratio(background, SoftBlack) >= contrast.AANormal {
		text = SoftBlack
	}
	return text, mutedOnLight
}
