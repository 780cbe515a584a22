package template

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsSurface(t *testing.T) {
	t.Parallel()

	surfaces := []LayerType{TypeRect, TypeCircle, TypeEllipse, TypeStar, TypeRegularPolygon, TypePath, TypeIcon}
	for _, typ := range surfaces {
		l := Layer{Type: typ}
		require.True(t, l.IsSurface(), "type %s", typ)
	}

	nonSurfaces := []LayerType{TypeText, TypeLine, TypeArrow, TypeImage, LayerType("hologram")}
	for _, typ := range nonSurfaces {
		l := Layer{Type: typ}
		require.False(t, l.IsSurface(), "type %s", typ)
	}
}

func TestHasTransparentFill(t *testing.T) {
	t.Parallel()

	require.True(t, (&Layer{}).HasTransparentFill())
	require.True(t, (&Layer{Fill: TransparentFill}).HasTransparentFill())
	require.False(t, (&Layer{Fill: "#112233"}).HasTransparentFill())
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()

	base := &CardTemplate{
		ID:         "base",
		Name:       "Base",
		Width:      100,
		Height:     100,
		Background: Background{Type: BackgroundSolid, Color1: "#ffffff"},
		Layers: []Layer{
			{ID: "a", Type: TypeRect, Fill: "#111111", Width: 10, Height: 10},
		},
	}

	clone := base.Clone()
	clone.Layers[0].Fill = "#222222"
	clone.Background.Color1 = "#000000"
	clone.ID = "clone"

	require.Equal(t, "#111111", base.Layers[0].Fill)
	require.Equal(t, "#ffffff", base.Background.Color1)
	require.Equal(t, "base", base.ID)
}

func TestGeometryHash(t *testing.T) {
	t.Parallel()

	base := &CardTemplate{
		ID:     "hashme",
		Width:  100,
		Height: 100,
		Layers: []Layer{
			{ID: "a", Type: TypeRect, X: 1, Y: 2, Width: 10, Height: 10},
		},
	}

	require.Equal(t, base.GeometryHash(), base.Clone().GeometryHash())

	// Recoloring does not change geometry.
	recolored := base.Clone()
	recolored.Layers[0].Fill = "#ff0000"
	require.Equal(t, base.GeometryHash(), recolored.GeometryHash())

	// Moving a layer does.
	moved := base.Clone()
	moved.Layers[0].X = 50
	require.NotEqual(t, base.GeometryHash(), moved.GeometryHash())
}

func TestLayerByID(t *testing.T) {
	t.Parallel()

	tpl := &CardTemplate{Layers: []Layer{{ID: "a"}, {ID: "b"}}}
	require.NotNil(t, tpl.LayerByID("b"))
	require.Nil(t, tpl.LayerByID("missing"))
}

func TestIsLogoLayer(t *testing.T) {
	t.Parallel()

	require.True(t, (&Layer{ID: "brand", IsLogo: true}).IsLogoLayer())
	require.True(t, (&Layer{ID: "logo"}).IsLogoLayer())
	require.False(t, (&Layer{ID: "brand"}).IsLogoLayer())
}
