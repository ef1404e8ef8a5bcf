package delimiter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockkit/delimiter/internal/config"
	"github.com/blockkit/delimiter/internal/editor"
	"github.com/blockkit/delimiter/internal/icons"
)

type upperTranslator struct{}

func (upperTranslator) T(msg string) string { return "»" + msg }

func groups(entries []editor.MenuEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Group
	}
	return out
}

func TestSettingsOrderForGlyphStyle(t *testing.T) {
	t.Parallel()

	tool := New(Params{})
	entries := tool.RenderSettings()

	// star + dash + seven widths; no thickness entries while a glyph shows.
	require.Len(t, entries, 9)
	assert.Equal(t, []string{
		"star", "dash",
		"line", "line", "line", "line", "line", "line", "line",
	}, groups(entries))

	assert.True(t, entries[0].IsActive)
	assert.False(t, entries[1].IsActive)
	for _, e := range entries[2:] {
		assert.False(t, e.IsActive)
	}
}

func TestSettingsIncludeThicknessWhileLineShows(t *testing.T) {
	t.Parallel()

	tool := New(Params{Data: json.RawMessage(`{"style":"line","lineWidth":50,"lineThickness":3}`)})
	entries := tool.RenderSettings()

	require.Len(t, entries, 2+7+6)

	var activeWidths, activeThickness []string
	for _, e := range entries {
		if !e.IsActive {
			continue
		}
		switch e.Group {
		case "line":
			activeWidths = append(activeWidths, e.Label)
		case "thickness":
			activeThickness = append(activeThickness, e.Label)
		}
	}
	assert.Equal(t, []string{"Line 50%"}, activeWidths)
	assert.Equal(t, []string{"Thickness 3"}, activeThickness)
}

func TestSettingsRespectAllowLists(t *testing.T) {
	t.Parallel()

	tool := New(Params{Config: &config.Config{
		Styles:        []config.Style{config.StyleStar, config.StyleLine},
		LineWidths:    []int{25, 50},
		LineThickness: []int{1, 2},
	}})
	entries := tool.RenderSettings()

	// dash excluded, two widths, no thickness while star shows.
	require.Len(t, entries, 3)
	assert.Equal(t, []string{"star", "line", "line"}, groups(entries))
	assert.Equal(t, "Line 25%", entries[1].Label)
	assert.Equal(t, "Line 50%", entries[2].Label)
}

func TestSettingsWidthIconsEncodeWidth(t *testing.T) {
	t.Parallel()

	tool := New(Params{})
	entries := tool.RenderSettings()

	assert.Equal(t, icons.Star, entries[0].Icon)
	assert.Equal(t, icons.Dash, entries[1].Icon)
	assert.Equal(t, icons.LineWidth(8), entries[2].Icon)
	assert.Equal(t, icons.LineWidth(100), entries[8].Icon)
}

func TestSettingsLabelsPassThroughTranslator(t *testing.T) {
	t.Parallel()

	tool := New(Params{API: editor.API{I18n: upperTranslator{}}})
	entries := tool.RenderSettings()

	assert.Equal(t, "»Star", entries[0].Label)
	assert.Equal(t, "»Dash", entries[1].Label)
	assert.Equal(t, "»Line 8%", entries[2].Label)
}

func TestSettingsActivationSwitchesStyle(t *testing.T) {
	t.Parallel()

	tool := New(Params{})
	tool.Render()

	entries := tool.RenderSettings()
	entries[1].OnActivate() // dash

	assert.True(t, tool.Root().HasClass("bk-delimiter-dash"))
	assert.JSONEq(t, `{"style":"dash"}`, string(tool.Save()))
}

func TestSettingsWidthActivationFromGlyphStyle(t *testing.T) {
	t.Parallel()

	tool := New(Params{})
	tool.Render()

	var line60 editor.MenuEntry
	for _, e := range tool.RenderSettings() {
		if e.Label == "Line 60%" {
			line60 = e
		}
	}
	require.NotNil(t, line60.OnActivate)
	line60.OnActivate()

	root := tool.Root()
	assert.True(t, root.HasClass("bk-delimiter-line"))
	assert.Equal(t, "60%", root.Child(0).Style("width"))

	// The thickness group appears once the rule shows.
	entries := tool.RenderSettings()
	assert.Contains(t, groups(entries), "thickness")
}

func TestSettingsThicknessActivation(t *testing.T) {
	t.Parallel()

	tool := New(Params{Data: json.RawMessage(`{"style":"line"}`)})
	tool.Render()

	var thick4 editor.MenuEntry
	for _, e := range tool.RenderSettings() {
		if e.Label == "Thickness 4" {
			thick4 = e
		}
	}
	require.NotNil(t, thick4.OnActivate)
	thick4.OnActivate()

	assert.True(t, tool.Root().Child(0).HasClass("bk-delimiter-thickness-4"))
}
