// Package source provides the built-in "source" producer type: a raw input
// that a terminal station supplies without needing anything upstream.
package source

import (
	"github.com/fredshone/factory/internal/registry"
	"github.com/fredshone/factory/internal/tool"
)

// Type is the tool type name used in factory files.
const Type = "source"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Spec returns the producer type for raw inputs. Any option is accepted.
func Spec() *tool.Spec {
	return &tool.Spec{
		Type:        Type,
		Description: "Raw input supplied by a terminal station.",
		Kind:        tool.KindSource,
	}
}

// Register registers the source type with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterTool(Spec())
}
