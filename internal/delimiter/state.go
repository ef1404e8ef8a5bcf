package delimiter

import (
	"github.com/tidwall/gjson"

	"github.com/blockkit/delimiter/internal/config"
)

// State is the complete internal visual state of one delimiter block. Width
// and thickness are carried even when the style is not "line" so switching
// away and back preserves the previous rule shape.
type State struct {
	Style         config.Style
	LineWidth     int
	LineThickness int
}

// normalizeData converts possibly absent or partial persisted data into a
// complete State using the resolved defaults. Input that is not a JSON
// object is coerced to empty. No membership validation happens here; the
// current-value accessors re-check availability on every read, so stale
// values degrade to defaults instead of erroring.
func normalizeData(data []byte, resolved *config.Resolved) State {
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		doc = gjson.Parse("{}")
	}

	st := State{
		Style:         resolved.DefaultStyle,
		LineWidth:     resolved.DefaultLineWidth,
		LineThickness: resolved.DefaultLineThickness,
	}

	if v := doc.Get("style"); v.String() != "" {
		st.Style = config.Style(v.String())
	}
	if v := doc.Get("lineWidth"); v.Int() != 0 {
		st.LineWidth = int(v.Int())
	}
	if v := doc.Get("lineThickness"); v.Exists() {
		st.LineThickness = int(v.Int())
	}

	return st
}
