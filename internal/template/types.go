// Package template defines the card template document model: an ordered
// stack of shape, text, and image layers over a background pattern. Layer
// index order is paint order; index 0 is the bottom of the stack.
package template

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// LayerType identifies what kind of element a layer paints.
type LayerType string

const (
	TypeText           LayerType = "text"
	TypeRect           LayerType = "rect"
	TypeCircle         LayerType = "circle"
	TypeEllipse        LayerType = "ellipse"
	TypeStar           LayerType = "star"
	TypeRegularPolygon LayerType = "regular_polygon"
	TypePath           LayerType = "path"
	TypeIcon           LayerType = "icon"
	TypeLine           LayerType = "line"
	TypeArrow          LayerType = "arrow"
	TypeImage          LayerType = "image"
)

// BackgroundType identifies how the card background is painted.
type BackgroundType string

const (
	BackgroundSolid     BackgroundType = "solid"
	BackgroundGradient  BackgroundType = "gradient"
	BackgroundPatterned BackgroundType = "pattern"
	BackgroundTexture   BackgroundType = "texture"
)

// TransparentFill is the fill value for layers that paint no interior.
const TransparentFill = "transparent"

// CardTemplate is a complete card document.
type CardTemplate struct {
	ID         string     `yaml:"id" json:"id" validate:"required,template_id"`
	Name       string     `yaml:"name" json:"name" validate:"required,min=1,max=100"`
	Width      float64    `yaml:"width" json:"width" validate:"required,gt=0"`
	Height     float64    `yaml:"height" json:"height" validate:"required,gt=0"`
	Background Background `yaml:"background" json:"background"`
	Layers     []Layer    `yaml:"layers" json:"layers" validate:"dive"`
}

// Background describes the card's own paint, beneath every layer.
type Background struct {
	Type            BackgroundType `yaml:"type" json:"type" validate:"required,oneof=solid gradient pattern texture"`
	Color1          string         `yaml:"color1" json:"color1" validate:"required,hex_color6"`
	Color2          string         `yaml:"color2,omitempty" json:"color2,omitempty" validate:"omitempty,hex_color6"`
	PatternImageURL string         `yaml:"pattern_image_url,omitempty" json:"patternImageUrl,omitempty"`
	PatternColor    string         `yaml:"pattern_color,omitempty" json:"patternColor,omitempty" validate:"omitempty,hex_color6"`
	OverlayColor    string         `yaml:"overlay_color,omitempty" json:"overlayColor,omitempty" validate:"omitempty,hex_color6"`
	Scale           float64        `yaml:"scale" json:"scale"`
	Rotation        float64        `yaml:"rotation,omitempty" json:"rotation,omitempty"`
	Opacity         float64        `yaml:"opacity" json:"opacity" validate:"gte=0,lte=1"`
}

// backgroundDoc mirrors Background for decoding. Scale and opacity are
// pointers so an absent value and an explicit zero stay distinguishable.
type backgroundDoc struct {
	Type            BackgroundType `yaml:"type" json:"type"`
	Color1          string         `yaml:"color1" json:"color1"`
	Color2          string         `yaml:"color2" json:"color2"`
	PatternImageURL string         `yaml:"pattern_image_url" json:"patternImageUrl"`
	PatternColor    string         `yaml:"pattern_color" json:"patternColor"`
	OverlayColor    string         `yaml:"overlay_color" json:"overlayColor"`
	Scale           *float64       `yaml:"scale" json:"scale"`
	Rotation        float64        `yaml:"rotation" json:"rotation"`
	Opacity         *float64       `yaml:"opacity" json:"opacity"`
}

func (d backgroundDoc) apply(b *Background) {
	b.Type = d.Type
	b.Color1 = d.Color1
	b.Color2 = d.Color2
	b.PatternImageURL = d.PatternImageURL
	b.PatternColor = d.PatternColor
	b.OverlayColor = d.OverlayColor
	b.Rotation = d.Rotation

	b.Scale = 1
	if d.Scale != nil {
		b.Scale = *d.Scale
	}
	b.Opacity = 1
	if d.Opacity != nil {
		b.Opacity = *d.Opacity
	}
}

// UnmarshalYAML applies background paint defaults: scale and opacity default
// to 1 only when the document omits them.
func (b *Background) UnmarshalYAML(value *yaml.Node) error {
	var doc backgroundDoc
	if err := value.Decode(&doc); err != nil {
		return err
	}

	doc.apply(b)
	return nil
}

// UnmarshalJSON mirrors UnmarshalYAML for JSON documents.
func (b *Background) UnmarshalJSON(data []byte) error {
	var doc backgroundDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	doc.apply(b)
	return nil
}

// Layer is a single element in the paint stack. Unknown Type values are
// preserved end to end so newer documents survive older binaries.
type Layer struct {
	ID       string    `yaml:"id" json:"id" validate:"required,layer_id"`
	Type     LayerType `yaml:"type" json:"type" validate:"required"`
	X        float64   `yaml:"x" json:"x"`
	Y        float64   `yaml:"y" json:"y"`
	Width    float64   `yaml:"width" json:"width" validate:"gte=0"`
	Height   float64   `yaml:"height" json:"height" validate:"gte=0"`
	Rotation float64   `yaml:"rotation,omitempty" json:"rotation,omitempty"`

	Fill        string  `yaml:"fill,omitempty" json:"fill,omitempty" validate:"omitempty,fill_color"`
	Stroke      string  `yaml:"stroke,omitempty" json:"stroke,omitempty" validate:"omitempty,hex_color6"`
	StrokeWidth float64 `yaml:"stroke_width,omitempty" json:"strokeWidth,omitempty" validate:"gte=0"`

	FontSize float64 `yaml:"font_size,omitempty" json:"fontSize,omitempty" validate:"gte=0"`
	Text     string  `yaml:"text,omitempty" json:"text,omitempty"`

	IsLogo bool   `yaml:"is_logo,omitempty" json:"isLogo,omitempty"`
	Src    string `yaml:"src,omitempty" json:"src,omitempty"`
}

// IsSurface reports whether the layer can act as a painted surface that
// other layers sit on for contrast purposes.
func (l *Layer) IsSurface() bool {
	switch l.Type {
	case TypeRect, TypeCircle, TypeEllipse, TypeStar, TypeRegularPolygon, TypePath, TypeIcon:
		return true
	default:
		return false
	}
}

// HasTransparentFill reports whether the layer paints no interior.
func (l *Layer) HasTransparentFill() bool {
	return l.Fill == "" || l.Fill == TransparentFill
}

// IsLogoLayer reports whether the layer routes through logo resolution:
// either flagged explicitly or carrying the reserved "logo" id.
func (l *Layer) IsLogoLayer() bool {
	return l.IsLogo || l.ID == "logo"
}

// LayerByID returns the layer with the given id, or nil.
func (t *CardTemplate) LayerByID(id string) *Layer {
	for i := range t.Layers {
		if t.Layers[i].ID == id {
			return &t.Layers[i]
		}
	}
	return nil
}
