package config

import (
	"slices"

	"github.com/blockkit/delimiter/internal/logger"
)

// Resolved holds the per-dimension available sets and validated defaults
// computed once at tool construction. It is immutable for the tool's lifetime.
type Resolved struct {
	Styles        []Style
	LineWidths    []int
	LineThickness []int

	DefaultStyle         Style
	DefaultLineWidth     int
	DefaultLineThickness int

	SaveAll bool
}

// Resolve computes the available sets and defaults from an optional host
// configuration. A nil config yields the full built-in sets and defaults.
// A preferred default outside its available set is rejected with a warning
// and replaced by the built-in default; this never fails.
func Resolve(cfg *Config, log *logger.Logger) *Resolved {
	if cfg == nil {
		cfg = &Config{}
	}

	styles := intersect(SupportedStyles, cfg.Styles)
	widths := intersect(SupportedLineWidths, cfg.LineWidths)
	thickness := intersect(SupportedLineThickness, cfg.LineThickness)

	return &Resolved{
		Styles:        styles,
		LineWidths:    widths,
		LineThickness: thickness,

		DefaultStyle:         resolveDefault(styles, cfg.DefaultStyle, BuiltinDefaultStyle, "style", log),
		DefaultLineWidth:     resolveDefault(widths, cfg.DefaultLineWidth, BuiltinDefaultLineWidth, "lineWidth", log),
		DefaultLineThickness: resolveDefault(thickness, cfg.DefaultLineThickness, BuiltinDefaultLineThickness, "lineThickness", log),

		SaveAll: cfg.SaveAll,
	}
}

// HasStyle reports whether the style is in the available set.
func (r *Resolved) HasStyle(s Style) bool {
	return slices.Contains(r.Styles, s)
}

// HasLineWidth reports whether the width is in the available set.
func (r *Resolved) HasLineWidth(w int) bool {
	return slices.Contains(r.LineWidths, w)
}

// HasLineThickness reports whether the thickness is in the available set.
func (r *Resolved) HasLineThickness(t int) bool {
	return slices.Contains(r.LineThickness, t)
}

// intersect filters the supported set to members of the allow-list, keeping
// the supported ordering. An empty allow-list, or one that shares no members
// with the supported set, yields the full supported set so the available set
// is never empty.
func intersect[T comparable](supported, allowed []T) []T {
	if len(allowed) == 0 {
		return slices.Clone(supported)
	}

	out := make([]T, 0, len(supported))
	for _, v := range supported {
		if slices.Contains(allowed, v) {
			out = append(out, v)
		}
	}

	if len(out) == 0 {
		return slices.Clone(supported)
	}
	return out
}

// resolveDefault picks the preferred default when it is available, otherwise
// the built-in default, otherwise the first available member. The result is
// always inside the available set.
func resolveDefault[T comparable](available []T, preferred, builtin T, dimension string, log *logger.Logger) T {
	var zero T
	if preferred != zero {
		if slices.Contains(available, preferred) {
			return preferred
		}
		log.WithField("dimension", dimension).Warnf("configured default %v is not among the available options, using built-in default", preferred)
	}

	if slices.Contains(available, builtin) {
		return builtin
	}
	return available[0]
}
