// Package delimiter implements the delimiter block tool: a divider rendered
// as star glyphs, dash glyphs, or a horizontal rule with configurable width
// percent and thickness.
package delimiter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/sjson"

	"github.com/blockkit/delimiter/internal/config"
	"github.com/blockkit/delimiter/internal/editor"
	"github.com/blockkit/delimiter/internal/logger"
	"github.com/blockkit/delimiter/internal/render"
)

const wrapperClass = "bk-delimiter"

const (
	starGlyph = "***"
	dashGlyph = "———"
)

// Tool is one delimiter block instance. All methods run on the host's UI
// goroutine; the host serializes callback invocation, so no locking is
// needed.
type Tool struct {
	api      editor.API
	resolved *config.Resolved
	state    State
	root     *render.Node
	target   render.Target
}

// Params configures a Tool.
type Params struct {
	API    editor.API
	Config *config.Config
	Data   json.RawMessage
	Target render.Target
	Log    *logger.Logger
}

// New constructs a delimiter tool, resolving the configuration once and
// normalizing persisted data against the resolved defaults.
func New(p Params) *Tool {
	resolved := config.Resolve(p.Config, p.Log)
	return &Tool{
		api:      p.API,
		resolved: resolved,
		state:    normalizeData(p.Data, resolved),
		target:   p.Target,
	}
}

// Factory adapts New to the registry's construction contract, decoding the
// raw host configuration.
func Factory(log *logger.Logger) editor.Factory {
	return func(p editor.Params) (editor.Tool, error) {
		cfg, err := config.FromJSON(p.Config)
		if err != nil {
			return nil, err
		}
		return New(Params{API: p.API, Config: cfg, Data: p.Data, Target: p.Target, Log: log}), nil
	}
}

// Current-value accessors. State may hold stale values because the available
// sets can shrink between saves; every render and serialization path reads
// through these, never the raw fields.

func (t *Tool) currentStyle() config.Style {
	if t.resolved.HasStyle(t.state.Style) {
		return t.state.Style
	}
	return t.resolved.DefaultStyle
}

func (t *Tool) currentLineWidth() int {
	if t.resolved.HasLineWidth(t.state.LineWidth) {
		return t.state.LineWidth
	}
	return t.resolved.DefaultLineWidth
}

func (t *Tool) currentLineThickness() int {
	if t.resolved.HasLineThickness(t.state.LineThickness) {
		return t.state.LineThickness
	}
	return t.resolved.DefaultLineThickness
}

// Render builds the block's element tree and returns it for mounting.
func (t *Tool) Render() *render.Node {
	t.root = t.buildTree()
	return t.root
}

// Root returns the currently mounted element tree, or nil before Render.
func (t *Tool) Root() *render.Node {
	return t.root
}

// Save extracts the serializable block state. Width and thickness are
// included for the "line" style, or for every style under the SaveAll
// output policy.
func (t *Tool) Save() json.RawMessage {
	style := t.currentStyle()

	out := []byte(`{}`)
	out, _ = sjson.SetBytes(out, "style", string(style))
	if t.resolved.SaveAll || style == config.StyleLine {
		out, _ = sjson.SetBytes(out, "lineWidth", t.currentLineWidth())
		out, _ = sjson.SetBytes(out, "lineThickness", t.currentLineThickness())
	}
	return out
}

func (t *Tool) buildTree() *render.Node {
	style := t.currentStyle()

	classes := make([]string, 0, 3)
	if block := t.api.BlockClass(); block != "" {
		classes = append(classes, block)
	}
	classes = append(classes, wrapperClass, wrapperClass+"-"+string(style))
	root := render.NewElement("div", classes...)

	switch style {
	case config.StyleLine:
		root.AppendChild(t.buildRule())
	case config.StyleDash:
		root.AppendChild(render.NewText("span", dashGlyph))
	default:
		root.AppendChild(render.NewText("span", starGlyph))
	}

	return root
}

func (t *Tool) buildRule() *render.Node {
	hr := render.NewElement("hr", t.ruleClasses()...)
	hr.SetStyle("width", t.ruleWidthValue())
	return hr
}

func (t *Tool) ruleClasses() []string {
	return []string{
		wrapperClass + "-line",
		fmt.Sprintf("%s-thickness-%d", wrapperClass, t.currentLineThickness()),
	}
}

func (t *Tool) ruleWidthValue() string {
	return fmt.Sprintf("%d%%", t.currentLineWidth())
}

// setStyle switches the visual variant. The subtree is fully rebuilt so the
// container's style class stays correct.
func (t *Tool) setStyle(style config.Style) {
	t.state.Style = style
	t.rebuild()
}

// setLineWidth records the width. While the rule is showing, the mutation is
// patched into the mounted element so adjacent content keeps focus and
// scroll position; otherwise the style flips to "line" and the subtree is
// rebuilt.
func (t *Tool) setLineWidth(width int) {
	t.state.LineWidth = width
	if t.currentStyle() != config.StyleLine {
		t.state.Style = config.StyleLine
		t.rebuild()
		return
	}
	t.patchRule("style.width", t.ruleWidthValue())
}

// setLineThickness mirrors setLineWidth; the thickness lives in the rule's
// class list, so the patch swaps classes instead of an inline style.
func (t *Tool) setLineThickness(thickness int) {
	t.state.LineThickness = thickness
	if t.currentStyle() != config.StyleLine {
		t.state.Style = config.StyleLine
		t.rebuild()
		return
	}
	t.patchRule("class", strings.Join(t.ruleClasses(), " "))
}

func (t *Tool) rebuild() {
	t.root = t.buildTree()
	if t.target != nil {
		t.target.Replace(t.root)
	}
}

func (t *Tool) patchRule(name, value string) {
	if hr := t.root.Child(0); hr != nil {
		hr.ApplyAttribute(name, value)
	}
	if t.target != nil {
		t.target.PatchAttribute([]int{0}, name, value)
	}
}
