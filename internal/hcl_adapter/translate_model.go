// This file contains the logic for translating HCL schema structs into the
// format-agnostic configuration model defined in the config package.

package hcl_adapter

import (
	"context"
	"fmt"
	"sort"

	"github.com/fredshone/factory/internal/config"
	"github.com/fredshone/factory/internal/ctxlog"
	"github.com/fredshone/factory/internal/demand"
)

// translateDemand converts the `demand` block into a demand mapping. Every
// attribute becomes one requirement.
func (l *Loader) translateDemand(ctx context.Context, b *DemandBlock) (demand.Demand, error) {
	logger := ctxlog.FromContext(ctx)

	attrs, diags := b.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid demand block: %w", diags)
	}

	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	d := make(demand.Demand, len(attrs))
	for _, name := range names {
		opts, err := optionsFromExpr(ctx, attrs[name].Expr)
		if err != nil {
			return nil, fmt.Errorf("demand for '%s': %w", name, err)
		}
		d[name] = opts
		logger.Debug("Translated demand entry.", "requirement", name, "options", []string(opts))
	}
	return d, nil
}

// translateTool converts a `tool` block into the agnostic model.
func (l *Loader) translateTool(b *ToolBlock) *config.ToolDefinition {
	return &config.ToolDefinition{
		Type:         b.Type,
		Description:  b.Description,
		Requires:     b.Requires,
		ValidOptions: b.ValidOptions,
		Unscoped:     b.Unscoped,
	}
}

// translateStation converts a `station` block into the agnostic model.
func (l *Loader) translateStation(b *StationBlock) *config.Station {
	provides := b.Provides
	if provides == nil {
		provides = make(map[string]string)
	}
	return &config.Station{
		Name:        b.Name,
		Description: b.Description,
		Suppliers:   b.Suppliers,
		Provides:    provides,
	}
}
