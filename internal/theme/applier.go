// Package theme propagates a color palette onto a card template. Layers are
// recolored in paint order so each layer's final color is known before any
// layer above it asks what it is sitting on, and every choice is gated by a
// contrast check so nothing becomes illegible or invisible.
package theme

import (
	"github.com/cardforge/cardforge/internal/colorspace"
	"github.com/cardforge/cardforge/internal/contrast"
	"github.com/cardforge/cardforge/internal/logger"
	"github.com/cardforge/cardforge/internal/logo"
	"github.com/cardforge/cardforge/internal/palette"
	"github.com/cardforge/cardforge/internal/spatial"
	"github.com/cardforge/cardforge/internal/template"
)

// largeTextSize is the font size above which text may take the brand color
// when contrast allows.
const largeTextSize = 18

// Applier maps palettes onto templates. The logo resolver is injected so
// the core stays free of asset-catalog dependencies; both fields may be
// zero values.
type Applier struct {
	logos logo.Resolver
	log   *logger.Logger
}

// New creates an Applier. A nil resolver disables logo substitution.
func New(logos logo.Resolver, log *logger.Logger) *Applier {
	if logos == nil {
		logos = logo.NopResolver{}
	}
	return &Applier{logos: logos, log: log.WithComponent("theme")}
}

// ApplyPalette themes a template against a freshly computed context map.
func (a *Applier) ApplyPalette(t *template.CardTemplate, pal palette.ColorPalette) *template.CardTemplate {
	return a.Apply(t, pal, spatial.Resolve(t))
}

// Apply produces a themed copy of the template. The input is never mutated.
func (a *Applier) Apply(t *template.CardTemplate, pal palette.ColorPalette, ctx spatial.ContextMap) *template.CardTemplate {
	out := t.Clone()
	a.applyBackground(&out.Background, pal)

	// Colors already assigned to surfaces beneath the layer being
	// processed, keyed by layer id.
	assigned := make(map[string]string, len(out.Layers))

	for i := range out.Layers {
		layer := &out.Layers[i]
		effBg := a.effectiveBackground(layer.ID, pal, ctx, assigned)

		switch {
		case layer.IsLogoLayer():
			a.applyLogo(out.ID, layer, effBg)
		case layer.Type == template.TypeText:
			layer.Fill = textColor(layer, pal, effBg)
		case layer.Type == template.TypeLine || layer.Type == template.TypeArrow:
			layer.Fill = pal.Primary
			layer.Stroke = pal.Primary
		case layer.IsSurface():
			a.applySurface(layer, pal, effBg, assigned)
		default:
			// Images and unrecognized layer types pass through unchanged.
		}
	}

	return out
}

// effectiveBackground returns the color a layer is actually painted over:
// the palette background, or the already-assigned color of the surface the
// context map places beneath it.
func (a *Applier) effectiveBackground(layerID string, pal palette.ColorPalette, ctx spatial.ContextMap, assigned map[string]string) string {
	entry, ok := ctx[layerID]
	if !ok || entry.BackgroundLayerID == spatial.MainBackground {
		return pal.Background
	}
	if color, ok := assigned[entry.BackgroundLayerID]; ok {
		return color
	}
	return pal.Background
}

func (a *Applier) applyBackground(bg *template.Background, pal palette.ColorPalette) {
	switch bg.Type {
	case template.BackgroundSolid:
		bg.Color1 = pal.Background
	case template.BackgroundGradient:
		bg.Color1 = pal.Background
		bg.Color2 = gradientStop(pal)
	case template.BackgroundPatterned:
		bg.Color1 = pal.Background
		if pal.IsDark {
			bg.PatternColor = palette.White
		} else {
			bg.PatternColor = palette.Black
		}
	case template.BackgroundTexture:
		bg.OverlayColor = pal.Background
		bg.Color1 = pal.Background
	}
}

// gradientStop derives the second gradient color: the background nudged
// toward the light on dark palettes and toward the dark on light ones, so
// the gradient stays subtle and text contrast is preserved.
func gradientStop(pal palette.ColorPalette) string {
	h, s, l := colorspace.HexToHSL(pal.Background)
	if pal.IsDark {
		l += 8
	} else {
		l -= 8
	}
	if l < 0 {
		l = 0
	}
	if l > 100 {
		l = 100
	}
	return colorspace.HSLToHex(h, s, l)
}

func (a *Applier) applySurface(layer *template.Layer, pal palette.ColorPalette, effBg string, assigned map[string]string) {
	if layer.HasTransparentFill() {
		// A transparent shape stays transparent; only its stroke is themed.
		if layer.Stroke != "" {
			layer.Stroke = pal.Secondary
		}
		return
	}

	fill := pal.Primary
	if contrast.Ratio(effBg, fill) < contrast.Indistinct {
		// The shape would vanish into what's behind it.
		fill = pal.Secondary
	}
	if contrast.Ratio(effBg, fill) < contrast.Indistinct {
		// Both brand colors blend in (bold backgrounds can sit between
		// the two); the stronger of white/black always separates.
		fill = polarityColor(effBg)
	}
	layer.Fill = fill
	assigned[layer.ID] = fill

	if layer.Stroke != "" {
		layer.Stroke = pal.Secondary
	}
}

// polarityColor returns whichever of pure white or black contrasts more
// with the given background.
func polarityColor(hex string) string {
	if contrast.Ratio(hex, palette.White) >= contrast.Ratio(hex, palette.Black) {
		return palette.White
	}
	return palette.Black
}

// textColor picks a legible text color against the effective background.
// Large branded titles may take the brand color when it clears the
// large-text bar; everything else falls to a white/black polarity choice.
func textColor(layer *template.Layer, pal palette.ColorPalette, effBg string) string {
	if layer.FontSize > largeTextSize && contrast.Ratio(effBg, pal.Primary) > contrast.AALarge {
		return pal.Primary
	}

	whiteRatio := contrast.Ratio(effBg, palette.White)
	blackRatio := contrast.Ratio(effBg, palette.Black)

	if whiteRatio >= blackRatio {
		if contrast.Ratio(effBg, palette.SoftWhite) >= contrast.AANormal {
			return palette.SoftWhite
		}
		return palette.White
	}

	if contrast.Ratio(effBg, pal.Text) > contrast.AANormal {
		return pal.Text
	}
	return palette.Black
}

func (a *Applier) applyLogo(templateID string, layer *template.Layer, effBg string) {
	path, err := a.logos.Resolve(templateID, effBg)
	if err != nil {
		a.log.Error(err, "logo resolution failed, keeping existing asset")
		return
	}
	if path != "" {
		layer.Src = path
	}
}
