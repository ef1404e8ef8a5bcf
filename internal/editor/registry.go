package editor

import (
	"fmt"
	"sort"
	"sync"

	"github.com/blockkit/delimiter/internal/logger"
	blockerrors "github.com/blockkit/delimiter/pkg/errors"
)

// Registration bundles everything a tool contributes to the host: its
// identity, its toolbox presentation, the sanitize descriptor for its saved
// fields, and the factory that builds instances.
type Registration struct {
	Metadata Metadata
	Toolbox  Toolbox
	Sanitize SanitizeConfig
	Factory  Factory
}

// Registry manages block tool registration and lookup. Hosts may register
// from init paths on multiple goroutines, so access is guarded.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Registration
	log   *logger.Logger
}

// NewRegistry returns an empty registry.
func NewRegistry(log *logger.Logger) *Registry {
	return &Registry{
		tools: make(map[string]Registration),
		log:   log,
	}
}

// Register adds a tool to the registry. Duplicate names and malformed
// metadata are rejected.
func (r *Registry) Register(reg Registration) error {
	if reg.Factory == nil {
		return blockerrors.NewToolError(reg.Metadata.Name, fmt.Errorf("factory is nil"))
	}
	if err := reg.Metadata.Validate(); err != nil {
		return blockerrors.NewToolError(reg.Metadata.Name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	name := reg.Metadata.Name
	if _, exists := r.tools[name]; exists {
		return blockerrors.NewToolError(name, fmt.Errorf("already registered"))
	}

	r.tools[name] = reg
	r.log.WithField("tool", name).Debug("registered block tool")
	return nil
}

// Create instantiates a registered tool with the given construction params.
func (r *Registry) Create(name string, p Params) (Tool, error) {
	r.mu.RLock()
	reg, exists := r.tools[name]
	r.mu.RUnlock()

	if !exists {
		return nil, blockerrors.NewToolError(name, fmt.Errorf("not registered"))
	}

	tool, err := reg.Factory(p)
	if err != nil {
		return nil, blockerrors.NewToolError(name, err)
	}
	return tool, nil
}

// Lookup returns the registration for a tool name.
func (r *Registry) Lookup(name string) (Registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, exists := r.tools[name]
	return reg, exists
}

// Names lists registered tool names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
