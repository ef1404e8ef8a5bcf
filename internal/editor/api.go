// Package editor models the contracts between a host block editor and its
// block tools: the capability object tools receive at construction, the
// descriptors tools expose, and a registry the host uses to look tools up.
// The host runtime itself lives outside this repository.
package editor

import (
	"encoding/json"

	"github.com/blockkit/delimiter/internal/render"
)

// StyleProvider exposes the host's CSS class hooks.
type StyleProvider interface {
	// Block returns the class every block's root element must carry.
	Block() string
}

// Translator localizes human-readable labels.
type Translator interface {
	T(msg string) string
}

// API bundles the host collaborators a block tool receives at construction.
// Both collaborators are optional; the accessors degrade to no-ops so tools
// can run without a host (tests, the CLI preview).
type API struct {
	Styles StyleProvider
	I18n   Translator
}

// BlockClass returns the host's block-wide CSS class, or "".
func (a API) BlockClass() string {
	if a.Styles == nil {
		return ""
	}
	return a.Styles.Block()
}

// Translate localizes a label, passing it through when no translator is set.
func (a API) Translate(msg string) string {
	if a.I18n == nil {
		return msg
	}
	return a.I18n.T(msg)
}

// MenuEntry is one togglable entry in the host's tunes menu. Entries in the
// same Group are mutually exclusive.
type MenuEntry struct {
	Icon       string
	Label      string
	Group      string
	IsActive   bool
	OnActivate func()
}

// Tool is one mounted block instance.
type Tool interface {
	// Render builds and returns the block's element tree for mounting.
	Render() *render.Node

	// Save extracts the block's serializable state.
	Save() json.RawMessage

	// RenderSettings produces the ordered tunes menu entries.
	RenderSettings() []MenuEntry
}

// Params mirrors the host's construction contract: the capability object,
// the raw tool configuration, previously persisted block data (possibly
// empty), and the surface that receives render mutations.
type Params struct {
	API    API
	Config json.RawMessage
	Data   json.RawMessage
	Target render.Target
}

// Factory constructs tool instances from construction params.
type Factory func(p Params) (Tool, error)
