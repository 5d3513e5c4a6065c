package registry

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/fredshone/factory/internal/config"
	"github.com/fredshone/factory/internal/tool"
)

// Module is the interface that all core modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the producer types known to a single application instance.
type Registry struct {
	Tools map[string]*tool.Spec
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{Tools: make(map[string]*tool.Spec)}
}

// RegisterTool registers a producer type. Registering the same type twice is
// a programming error.
func (r *Registry) RegisterTool(spec *tool.Spec) {
	if _, exists := r.Tools[spec.Type]; exists {
		panic(fmt.Sprintf("tool type '%s' already registered", spec.Type))
	}
	slog.Debug("Registering tool type.", "type", spec.Type, "kind", spec.Kind.String())
	r.Tools[spec.Type] = spec
}

// Tool looks up a producer type.
func (r *Registry) Tool(typ string) (*tool.Spec, bool) {
	spec, ok := r.Tools[typ]
	return spec, ok
}

// Types returns the registered type names, sorted.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.Tools))
	for typ := range r.Tools {
		types = append(types, typ)
	}
	sort.Strings(types)
	return types
}

// PopulateDefinitionsFromModel registers every tool declared in the model.
// A declaration may not shadow a type registered by a Go module.
func (r *Registry) PopulateDefinitionsFromModel(model *config.Model) error {
	types := make([]string, 0, len(model.Tools))
	for typ := range model.Tools {
		types = append(types, typ)
	}
	sort.Strings(types)

	for _, typ := range types {
		def := model.Tools[typ]
		if _, exists := r.Tools[def.Type]; exists {
			return fmt.Errorf("tool '%s' is already provided by a built-in module", def.Type)
		}
		r.RegisterTool(&tool.Spec{
			Type:         def.Type,
			Description:  def.Description,
			Kind:         tool.KindTool,
			Requires:     def.Requires,
			ValidOptions: def.ValidOptions,
			Unscoped:     def.Unscoped,
		})
	}
	return nil
}

// Catalog builds a station catalog from a requirement -> tool type mapping.
func (r *Registry) Catalog(provides map[string]string) (tool.Catalog, error) {
	catalog := make(tool.Catalog, len(provides))
	for name, typ := range provides {
		spec, ok := r.Tools[typ]
		if !ok {
			return nil, fmt.Errorf("requirement '%s' references unknown tool type '%s'", name, typ)
		}
		catalog[name] = spec.Bind(name)
	}
	return catalog, nil
}
