// Package variation drives repeated palette generation and theme
// application to produce a set of visually distinct template variants.
package variation

import (
	"github.com/cardforge/cardforge/internal/logger"
	"github.com/cardforge/cardforge/internal/palette"
	"github.com/cardforge/cardforge/internal/spatial"
	"github.com/cardforge/cardforge/internal/template"
	"github.com/cardforge/cardforge/internal/theme"
)

const (
	// maxAttempts bounds palette generation per run; running out yields a
	// shorter variant list, not an error.
	maxAttempts = 15
	// maxAccepted is the number of themed variants on top of the base.
	maxAccepted = 9
)

// Generator produces template variants.
type Generator struct {
	applier *theme.Applier
	log     *logger.Logger
}

// NewGenerator creates a variation Generator around a theme applier.
func NewGenerator(applier *theme.Applier, log *logger.Logger) *Generator {
	return &Generator{applier: applier, log: log.WithComponent("variation")}
}

// Variations returns the unmodified base template followed by up to nine
// randomly themed variants with unique palette-derived ids. Each call
// produces a fresh random set.
func (g *Generator) Variations(t *template.CardTemplate) []*template.CardTemplate {
	return g.run(t, func() palette.ColorPalette { return palette.GenerateRandom() }, maxAttempts)
}

// VariationsSeeded is the deterministic path: palettes come from the given
// seeds, in order, with the same dedupe and acceptance rules.
func (g *Generator) VariationsSeeded(t *template.CardTemplate, seeds []string) []*template.CardTemplate {
	i := 0
	next := func() palette.ColorPalette {
		pal := palette.Generate(seeds[i])
		i++
		return pal
	}
	return g.run(t, next, len(seeds))
}

func (g *Generator) run(t *template.CardTemplate, next func() palette.ColorPalette, attempts int) []*template.CardTemplate {
	variants := []*template.CardTemplate{t}

	// Geometry is constant across attempts, so the context map is
	// resolved once.
	ctx := spatial.Resolve(t)
	seen := make(map[string]bool, maxAccepted)

	for attempt := 0; attempt < attempts && len(seen) < maxAccepted; attempt++ {
		pal := next()
		if seen[pal.ID] {
			g.log.WithFields(map[string]any{"palette": pal.ID}).Debug("duplicate palette, skipping")
			continue
		}
		seen[pal.ID] = true

		variant := g.applier.Apply(t, pal, ctx)
		variant.ID = t.ID + "_" + pal.ID
		variants = append(variants, variant)
	}

	g.log.WithFields(map[string]any{"template": t.ID, "variants": len(variants)}).Debug("variation run complete")
	return variants
}
