package theme

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cardforge/cardforge/internal/contrast"
	"github.com/cardforge/cardforge/internal/palette"
	"github.com/cardforge/cardforge/internal/spatial"
	"github.com/cardforge/cardforge/internal/template"
)

var lightPalette = palette.ColorPalette{
	ID:         "gen_light",
	Name:       "Corporate Light",
	Primary:    "#4680b9",
	Secondary:  "#b97f46",
	Accent:     "#4680b9",
	Background: "#ffffff",
	Text:       "#0f172a",
	Subtext:    "#64748b",
	IsDark:     false,
}

var darkPalette = palette.ColorPalette{
	ID:         "gen_dark",
	Name:       "Creative Dark",
	Primary:    "#ee3532",
	Secondary:  "#32ebee",
	Accent:     "#ee3532",
	Background: "#0f0f1b",
	Text:       "#f8fafc",
	Subtext:    "#94a3b8",
	IsDark:     true,
}

// recordingResolver captures the background hex each logo resolution saw.
type recordingResolver struct {
	seenBg []string
	path   string
}

func (r *recordingResolver) Resolve(templateID, backgroundHex string) (string, error) {
	r.seenBg = append(r.seenBg, backgroundHex)
	return r.path, nil
}

func solidCard(layers ...template.Layer) *template.CardTemplate {
	return &template.CardTemplate{
		ID:         "card",
		Name:       "Card",
		Width:      1050,
		Height:     600,
		Background: template.Background{Type: template.BackgroundSolid, Color1: "#123456"},
		Layers:     layers,
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	base := solidCard(
		template.Layer{ID: "box", Type: template.TypeRect, Width: 100, Height: 100, Fill: "#999999", Stroke: "#888888"},
	)
	snapshot := base.Clone()

	a := New(nil, nil)
	a.ApplyPalette(base, lightPalette)

	require.Equal(t, snapshot, base)
}

func TestApplySolidBackground(t *testing.T) {
	t.Parallel()

	a := New(nil, nil)
	out := a.ApplyPalette(solidCard(), lightPalette)
	require.Equal(t, "#ffffff", out.Background.Color1)
}

func TestApplyGradientBackground(t *testing.T) {
	t.Parallel()

	base := solidCard()
	base.Background = template.Background{Type: template.BackgroundGradient, Color1: "#111111", Color2: "#222222"}

	a := New(nil, nil)

	out := a.ApplyPalette(base, lightPalette)
	require.Equal(t, "#ffffff", out.Background.Color1)
	require.Equal(t, "#ebebeb", out.Background.Color2)

	out = a.ApplyPalette(base, darkPalette)
	require.Equal(t, "#0f0f1b", out.Background.Color1)
	require.Equal(t, "#1e1e35", out.Background.Color2)
}

func TestApplyPatternBackground(t *testing.T) {
	t.Parallel()

	base := solidCard()
	base.Background = template.Background{Type: template.BackgroundPatterned, Color1: "#111111", PatternImageURL: "tiles/dots.png"}

	a := New(nil, nil)

	out := a.ApplyPalette(base, lightPalette)
	require.Equal(t, "#ffffff", out.Background.Color1)
	require.Equal(t, "#000000", out.Background.PatternColor)
	require.Equal(t, "tiles/dots.png", out.Background.PatternImageURL)

	out = a.ApplyPalette(base, darkPalette)
	require.Equal(t, "#ffffff", out.Background.PatternColor)
}

func TestApplyTextureBackground(t *testing.T) {
	t.Parallel()

	base := solidCard()
	base.Background = template.Background{Type: template.BackgroundTexture, Color1: "#111111", OverlayColor: "#222222"}

	a := New(nil, nil)
	out := a.ApplyPalette(base, darkPalette)
	require.Equal(t, "#0f0f1b", out.Background.Color1)
	require.Equal(t, "#0f0f1b", out.Background.OverlayColor)
}

func TestApplyShapeTakesPrimary(t *testing.T) {
	t.Parallel()

	base := solidCard(
		template.Layer{ID: "box", Type: template.TypeRect, Width: 100, Height: 100, Fill: "#999999"},
	)

	a := New(nil, nil)
	out := a.ApplyPalette(base, lightPalette)
	require.Equal(t, "#4680b9", out.Layers[0].Fill)
}

func TestApplyShapeCollisionFallsBackToSecondary(t *testing.T) {
	t.Parallel()

	// Background equals primary: a primary-filled rect would vanish.
	pal := lightPalette
	pal.Background = pal.Primary

	base := solidCard(
		template.Layer{ID: "box", Type: template.TypeRect, Width: 100, Height: 100, Fill: pal.Primary},
	)

	a := New(nil, nil)
	out := a.ApplyPalette(base, pal)
	require.Equal(t, pal.Secondary, out.Layers[0].Fill)
}

func TestApplyTransparentShapeStaysTransparent(t *testing.T) {
	t.Parallel()

	base := solidCard(
		template.Layer{ID: "frame", Type: template.TypeRect, Width: 100, Height: 100, Fill: "transparent", Stroke: "#111111"},
		template.Layer{ID: "ghost", Type: template.TypeCircle, Width: 50, Height: 50},
	)

	a := New(nil, nil)
	out := a.ApplyPalette(base, lightPalette)
	require.Equal(t, "transparent", out.Layers[0].Fill)
	require.Equal(t, lightPalette.Secondary, out.Layers[0].Stroke)
	require.Empty(t, out.Layers[1].Fill)
}

func TestApplyStrokeTakesSecondary(t *testing.T) {
	t.Parallel()

	base := solidCard(
		template.Layer{ID: "box", Type: template.TypeRect, Width: 100, Height: 100, Fill: "#999999", Stroke: "#777777"},
	)

	a := New(nil, nil)
	out := a.ApplyPalette(base, lightPalette)
	require.Equal(t, lightPalette.Secondary, out.Layers[0].Stroke)
}

func TestApplyLineAndArrowTakePrimary(t *testing.T) {
	t.Parallel()

	base := solidCard(
		template.Layer{ID: "rule", Type: template.TypeLine, Width: 200, Height: 2, Stroke: "#111111"},
		template.Layer{ID: "pointer", Type: template.TypeArrow, Width: 100, Height: 10, Fill: "#111111"},
	)

	a := New(nil, nil)
	out := a.ApplyPalette(base, lightPalette)
	for _, l := range out.Layers {
		require.Equal(t, lightPalette.Primary, l.Fill, "layer %s", l.ID)
		require.Equal(t, lightPalette.Primary, l.Stroke, "layer %s", l.ID)
	}
}

func TestApplySmallTextOnCardBackground(t *testing.T) {
	t.Parallel()

	base := solidCard(
		template.Layer{ID: "caption", Type: template.TypeText, Width: 200, Height: 20, FontSize: 12, Fill: "#555555"},
	)

	a := New(nil, nil)

	// White card: black polarity wins and palette text clears AA.
	out := a.ApplyPalette(base, lightPalette)
	require.Equal(t, lightPalette.Text, out.Layers[0].Fill)

	// Near-black card: white polarity, softened white clears AA.
	out = a.ApplyPalette(base, darkPalette)
	require.Equal(t, palette.SoftWhite, out.Layers[0].Fill)
}

func TestApplyLargeTextTakesBrandColorWhenLegible(t *testing.T) {
	t.Parallel()

	base := solidCard(
		template.Layer{ID: "headline", Type: template.TypeText, Width: 500, Height: 60, FontSize: 28, Fill: "#555555"},
	)

	a := New(nil, nil)

	// ratio(#0f0f1b, #ee3532) is above the large-text bar: brand color.
	out := a.ApplyPalette(base, darkPalette)
	require.Equal(t, darkPalette.Primary, out.Layers[0].Fill)

	// ratio(#ffffff, #4680b9) is not: falls back to polarity choice.
	out = a.ApplyPalette(base, lightPalette)
	require.Equal(t, lightPalette.Text, out.Layers[0].Fill)
}

func TestApplyTextOverShapeUsesAssignedColor(t *testing.T) {
	t.Parallel()

	// The label sits on the panel, so its effective background is the
	// panel's newly assigned primary, not the card background.
	base := solidCard(
		template.Layer{ID: "panel", Type: template.TypeRect, X: 0, Y: 0, Width: 500, Height: 300, Fill: "#999999"},
		template.Layer{ID: "label", Type: template.TypeText, X: 20, Y: 20, Width: 200, Height: 30, FontSize: 12, Fill: "#555555"},
	)

	a := New(nil, nil)
	out := a.ApplyPalette(base, lightPalette)

	require.Equal(t, "#4680b9", out.Layers[0].Fill)
	// On #4680b9 black polarity wins but palette text misses AA: pure black.
	require.Equal(t, palette.Black, out.Layers[1].Fill)
}

func TestApplyLegibilityGuarantee(t *testing.T) {
	t.Parallel()

	base := solidCard(
		template.Layer{ID: "panel", Type: template.TypeRect, X: 0, Y: 0, Width: 800, Height: 500, Fill: "#999999"},
		template.Layer{ID: "title", Type: template.TypeText, X: 20, Y: 20, Width: 400, Height: 60, FontSize: 30, Fill: "#555555"},
		template.Layer{ID: "body", Type: template.TypeText, X: 20, Y: 100, Width: 400, Height: 30, FontSize: 12, Fill: "#555555"},
		template.Layer{ID: "footer", Type: template.TypeText, X: 20, Y: 550, Width: 400, Height: 20, FontSize: 10, Fill: "#555555"},
	)

	a := New(nil, nil)

	for i := 0; i < 50; i++ {
		pal := palette.Generate("leg" + string(rune('a'+i%26)) + string(rune('0'+i%10)))
		ctx := spatial.Resolve(base)
		out := a.Apply(base, pal, ctx)

		for _, l := range out.Layers {
			if l.Type != template.TypeText {
				continue
			}
			effBg := pal.Background
			if ctx[l.ID].BackgroundLayerID != spatial.MainBackground {
				effBg = out.LayerByID(ctx[l.ID].BackgroundLayerID).Fill
			}
			require.GreaterOrEqual(t, contrast.Ratio(effBg, l.Fill), 3.0,
				"palette %s text %s on %s", pal.ID, l.Fill, effBg)
		}
	}
}

func TestApplyShapeSeparationGuarantee(t *testing.T) {
	t.Parallel()

	base := solidCard(
		template.Layer{ID: "shape", Type: template.TypeRect, Width: 300, Height: 200, Fill: "#999999"},
	)

	a := New(nil, nil)

	for i := 0; i < 50; i++ {
		pal := palette.Generate("sep" + string(rune('a'+i%26)) + string(rune('0'+i%10)))
		out := a.ApplyPalette(base, pal)
		require.GreaterOrEqual(t, contrast.Ratio(pal.Background, out.Layers[0].Fill), contrast.Indistinct,
			"palette %s fill %s on %s", pal.ID, out.Layers[0].Fill, pal.Background)
	}
}

func TestApplyLogoReceivesResolvedBackground(t *testing.T) {
	t.Parallel()

	base := solidCard(
		template.Layer{ID: "panel", Type: template.TypeRect, X: 0, Y: 0, Width: 500, Height: 300, Fill: "#999999"},
		template.Layer{ID: "logo", Type: template.TypeImage, X: 20, Y: 20, Width: 100, Height: 100, IsLogo: true, Src: "logos/old.svg"},
	)

	resolver := &recordingResolver{path: "logos/new.svg"}
	a := New(resolver, nil)
	out := a.ApplyPalette(base, lightPalette)

	require.Equal(t, []string{"#4680b9"}, resolver.seenBg)
	require.Equal(t, "logos/new.svg", out.Layers[1].Src)
	// Geometry is untouched.
	require.Equal(t, base.Layers[1].X, out.Layers[1].X)
	require.Equal(t, base.Layers[1].Width, out.Layers[1].Width)
}

// The reserved "logo" id routes through logo resolution even without the
// explicit flag.
func TestApplyReservedLogoIDWithoutFlag(t *testing.T) {
	t.Parallel()

	base := solidCard(
		template.Layer{ID: "logo", Type: template.TypeImage, Width: 100, Height: 100, Src: "logos/old.svg"},
	)

	resolver := &recordingResolver{path: "logos/new.svg"}
	a := New(resolver, nil)
	out := a.ApplyPalette(base, lightPalette)

	require.Equal(t, []string{"#ffffff"}, resolver.seenBg)
	require.Equal(t, "logos/new.svg", out.Layers[0].Src)
}

func TestApplyWithoutLogoResolverKeepsAsset(t *testing.T) {
	t.Parallel()

	base := solidCard(
		template.Layer{ID: "logo", Type: template.TypeImage, Width: 100, Height: 100, IsLogo: true, Src: "logos/old.svg"},
	)

	a := New(nil, nil)
	out := a.ApplyPalette(base, lightPalette)
	require.Equal(t, "logos/old.svg", out.Layers[0].Src)
}

func TestApplyUnknownLayerTypePassesThrough(t *testing.T) {
	t.Parallel()

	base := solidCard(
		template.Layer{ID: "mystery", Type: template.LayerType("hologram"), Width: 100, Height: 100, Fill: "#abcdef"},
	)

	a := New(nil, nil)
	out := a.ApplyPalette(base, lightPalette)
	require.Equal(t, base.Layers[0], out.Layers[0])
}

func TestApplyImagePassesThrough(t *testing.T) {
	t.Parallel()

	base := solidCard(
		template.Layer{ID: "photo", Type: template.TypeImage, Width: 200, Height: 150, Src: "photos/team.jpg"},
	)

	a := New(nil, nil)
	out := a.ApplyPalette(base, lightPalette)
	require.Equal(t, base.Layers[0], out.Layers[0])
}
