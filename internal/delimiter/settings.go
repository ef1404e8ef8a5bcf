package delimiter

import (
	"fmt"

	"github.com/blockkit/delimiter/internal/config"
	"github.com/blockkit/delimiter/internal/editor"
	"github.com/blockkit/delimiter/internal/icons"
)

// RenderSettings produces the tunes menu: the glyph styles first, then one
// entry per available width, then one entry per available thickness. The
// thickness entries appear only while the rule is showing.
func (t *Tool) RenderSettings() []editor.MenuEntry {
	current := t.currentStyle()
	entries := make([]editor.MenuEntry, 0, len(t.resolved.LineWidths)+len(t.resolved.LineThickness)+2)

	for _, style := range t.resolved.Styles {
		if style == config.StyleLine {
			continue
		}
		entries = append(entries, editor.MenuEntry{
			Icon:       styleIcon(style),
			Label:      t.api.Translate(styleTitle(style)),
			Group:      string(style),
			IsActive:   current == style,
			OnActivate: func() { t.setStyle(style) },
		})
	}

	for _, width := range t.resolved.LineWidths {
		entries = append(entries, editor.MenuEntry{
			Icon:       icons.LineWidth(width),
			Label:      fmt.Sprintf("%s %d%%", t.api.Translate("Line"), width),
			Group:      string(config.StyleLine),
			IsActive:   current == config.StyleLine && width == t.currentLineWidth(),
			OnActivate: func() { t.setLineWidth(width) },
		})
	}

	if current == config.StyleLine {
		for _, thickness := range t.resolved.LineThickness {
			entries = append(entries, editor.MenuEntry{
				Icon:       icons.Thickness(thickness),
				Label:      fmt.Sprintf("%s %d", t.api.Translate("Thickness"), thickness),
				Group:      "thickness",
				IsActive:   thickness == t.currentLineThickness(),
				OnActivate: func() { t.setLineThickness(thickness) },
			})
		}
	}

	return entries
}

func styleTitle(style config.Style) string {
	if style == config.StyleDash {
		return "Dash"
	}
	return "Star"
}

func styleIcon(style config.Style) string {
	if style == config.StyleDash {
		return icons.Dash
	}
	return icons.Star
}
