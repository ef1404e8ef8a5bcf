package config

// Style identifies one of the delimiter's visual variants.
type Style string

const (
	StyleStar Style = "star"
	StyleDash Style = "dash"
	StyleLine Style = "line"
)

// Built-in supported value sets. Allow-lists supplied by the host are
// intersected with these; values outside them are never available.
var (
	SupportedStyles        = []Style{StyleStar, StyleDash, StyleLine}
	SupportedLineWidths    = []int{8, 15, 25, 35, 50, 60, 100}
	SupportedLineThickness = []int{1, 2, 3, 4, 5, 6}
)

// Built-in defaults, used when the host supplies none or an invalid one.
const (
	BuiltinDefaultStyle         = StyleStar
	BuiltinDefaultLineWidth     = 25
	BuiltinDefaultLineThickness = 2
)

// Config is the host-supplied tool configuration. Every field is optional;
// zero values mean "use the built-in behavior". Allow-lists restrict which
// values the settings menu offers, preferred defaults seed new blocks.
type Config struct {
	Styles        []Style `yaml:"styles,omitempty" json:"styles,omitempty" validate:"omitempty,dive,delimiter_style"`
	LineWidths    []int   `yaml:"lineWidths,omitempty" json:"lineWidths,omitempty" validate:"omitempty,dive,supported_width"`
	LineThickness []int   `yaml:"lineThickness,omitempty" json:"lineThickness,omitempty" validate:"omitempty,dive,supported_thickness"`

	DefaultStyle         Style `yaml:"defaultStyle,omitempty" json:"defaultStyle,omitempty" validate:"omitempty,delimiter_style"`
	DefaultLineWidth     int   `yaml:"defaultLineWidth,omitempty" json:"defaultLineWidth,omitempty" validate:"omitempty,supported_width"`
	DefaultLineThickness int   `yaml:"defaultLineThickness,omitempty" json:"defaultLineThickness,omitempty" validate:"omitempty,supported_thickness"`

	// SaveAll serializes lineWidth and lineThickness for every style, not just
	// "line". Kept as an explicit output policy because older hosts persisted
	// the full shape unconditionally.
	SaveAll bool `yaml:"saveAll,omitempty" json:"saveAll,omitempty"`
}
