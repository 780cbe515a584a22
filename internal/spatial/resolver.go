// Package spatial determines what each layer of a template is visually
// painted over. A layer may sit on the card's own background or on a shape
// painted beneath it; the distinction drives contrast decisions when a
// palette is applied.
package spatial

import (
	"github.com/cardforge/cardforge/internal/template"
)

// MainBackground is the sentinel background id for layers that sit directly
// on the card's background paint.
const MainBackground = "main_bg"

// LayerContext records which surface a layer is painted over.
type LayerContext struct {
	BackgroundLayerID string `yaml:"background_layer_id" json:"backgroundLayerId"`
}

// ContextMap maps layer id to its resolved background. It is derived data:
// recomputed whenever template geometry changes, never patched in place.
type ContextMap map[string]LayerContext

// coverageThreshold is the fraction of a layer's bounding box a candidate
// beneath it must cover to count as its background when it does not fully
// contain it.
const coverageThreshold = 0.6

// Resolve computes the context map for a template. For each layer it walks
// candidates in reverse paint order starting immediately below: the nearest
// filled surface whose bounding box contains (or mostly covers) the layer
// wins; with no qualifying candidate the layer sits on the main background.
func Resolve(t *template.CardTemplate) ContextMap {
	ctx := make(ContextMap, len(t.Layers))

	for i := range t.Layers {
		target := &t.Layers[i]
		bg := MainBackground

		for j := i - 1; j >= 0; j-- {
			candidate := &t.Layers[j]
			if !candidate.IsSurface() || candidate.HasTransparentFill() {
				continue
			}
			if covers(candidate, target) {
				bg = candidate.ID
				break
			}
		}

		ctx[target.ID] = LayerContext{BackgroundLayerID: bg}
	}

	return ctx
}

// covers reports whether the candidate's axis-aligned bounding box contains
// the target's box, or overlaps at least coverageThreshold of its area.
func covers(candidate, target *template.Layer) bool {
	cx1, cy1, cx2, cy2 := bounds(candidate)
	tx1, ty1, tx2, ty2 := bounds(target)

	if cx1 <= tx1 && cy1 <= ty1 && cx2 >= tx2 && cy2 >= ty2 {
		return true
	}

	overlapW := minf(cx2, tx2) - maxf(cx1, tx1)
	overlapH := minf(cy2, ty2) - maxf(cy1, ty1)
	if overlapW <= 0 || overlapH <= 0 {
		return false
	}

	targetArea := (tx2 - tx1) * (ty2 - ty1)
	if targetArea <= 0 {
		return false
	}

	return overlapW*overlapH/targetArea >= coverageThreshold
}

func bounds(l *template.Layer) (x1, y1, x2, y2 float64) {
	return l.X, l.Y, l.X + l.Width, l.Y + l.Height
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
