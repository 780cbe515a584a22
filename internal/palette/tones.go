package palette

// Tone is a named hue/saturation/lightness envelope constraining where a
// generated base hue may fall.
type Tone struct {
	Name     string
	Weight   float64
	HueMin   float64
	HueMax   float64
	SatMin   float64
	SatMax   float64
	LightMin float64
	LightMax float64
}

// tones are drawn in declaration order; weights sum to 1.
var tones = []Tone{
	{Name: "Corporate", Weight: 0.4, HueMin: 180, HueMax: 270, SatMin: 30, SatMax: 60, LightMin: 40, LightMax: 60},
	{Name: "Modern", Weight: 0.4, HueMin: 240, HueMax: 320, SatMin: 50, SatMax: 80, LightMin: 30, LightMax: 50},
	{Name: "Creative", Weight: 0.2, HueMin: 0, HueMax: 60, SatMin: 60, SatMax: 80, LightMin: 50, LightMax: 75},
}

// backgroundMode selects how the card background relates to the brand hue.
type backgroundMode int

const (
	bgLight backgroundMode = iota
	bgDark
	bgBold
)

// Weighted draw boundaries for background modes: Light 30%, Dark 40%,
// Bold 30%.
const (
	bgLightCutoff = 0.3
	bgDarkCutoff  = 0.7
)
