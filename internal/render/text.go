package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const defaultColumns = 40

var thicknessRunes = map[int]rune{
	1: '─',
	2: '━',
	3: '▬',
	4: '▄',
	5: '▆',
	6: '█',
}

// TextRenderer draws a delimiter node tree as a terminal string. It is the
// reference surface for the CLI preview; hosts with a real document implement
// Target against their own element tree instead.
type TextRenderer struct {
	Columns int

	glyphStyle lipgloss.Style
	ruleStyle  lipgloss.Style
}

// NewTextRenderer creates a renderer for a container of the given width in
// columns. Zero or negative widths fall back to a default.
func NewTextRenderer(columns int) *TextRenderer {
	return &TextRenderer{
		Columns:    columns,
		glyphStyle: lipgloss.NewStyle().Bold(true),
		ruleStyle:  lipgloss.NewStyle().Faint(true),
	}
}

// Render draws the container and its glyph or rule child, centered.
func (t *TextRenderer) Render(root *Node) string {
	if root == nil {
		return ""
	}

	columns := t.Columns
	if columns <= 0 {
		columns = defaultColumns
	}
	container := lipgloss.NewStyle().Width(columns).Align(lipgloss.Center)

	child := root.Child(0)
	if child == nil {
		return container.Render("")
	}

	if child.Tag == "hr" {
		cols := columns * rulePercent(child) / 100
		if cols < 1 {
			cols = 1
		}
		line := strings.Repeat(string(ruleRune(ruleThickness(child))), cols)
		return container.Render(t.ruleStyle.Render(line))
	}

	return container.Render(t.glyphStyle.Render(child.Text))
}

func rulePercent(hr *Node) int {
	value := strings.TrimSuffix(hr.Style("width"), "%")
	pct, err := strconv.Atoi(value)
	if err != nil || pct <= 0 {
		return 100
	}
	if pct > 100 {
		pct = 100
	}
	return pct
}

func ruleThickness(hr *Node) int {
	for _, class := range hr.Classes {
		idx := strings.LastIndex(class, "-thickness-")
		if idx < 0 {
			continue
		}
		if n, err := strconv.Atoi(class[idx+len("-thickness-"):]); err == nil {
			return n
		}
	}
	return 1
}

func ruleRune(thickness int) rune {
	if r, ok := thicknessRunes[thickness]; ok {
		return r
	}
	return thicknessRunes[1]
}
