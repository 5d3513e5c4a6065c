package factory

import (
	"context"
	"fmt"

	"github.com/fredshone/factory/internal/config"
	"github.com/fredshone/factory/internal/ctxlog"
	"github.com/fredshone/factory/internal/registry"
)

// FromModel constructs a wired graph from a validated config model and
// returns it with the root station. The model's demand becomes the root's
// demand source.
func FromModel(ctx context.Context, model *config.Model, r *registry.Registry) (*Graph, StationID, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("FromModel: Starting graph construction.")

	rootName, err := model.Root()
	if err != nil {
		return nil, 0, err
	}

	// First pass: create all stations with their catalogs.
	g := New()
	for _, s := range model.Stations {
		catalog, err := r.Catalog(s.Provides)
		if err != nil {
			return nil, 0, fmt.Errorf("station %q: %w", s.Name, err)
		}
		st := Station{Name: s.Name, Catalog: catalog}
		if s.Name == rootName {
			st.Source = StaticDemand(model.Demand)
		}
		if _, err := g.AddStation(st); err != nil {
			return nil, 0, err
		}
	}
	logger.Debug("FromModel: Station creation complete.", "station_count", g.Len())

	// Second pass: link suppliers in declaration order.
	for _, s := range model.Stations {
		manager, _ := g.Lookup(s.Name)
		for _, supName := range s.Suppliers {
			supplier, ok := g.Lookup(supName)
			if !ok {
				return nil, 0, fmt.Errorf("station %q references unknown supplier %q", s.Name, supName)
			}
			if err := g.Link(manager, supplier); err != nil {
				return nil, 0, err
			}
		}
	}
	logger.Debug("FromModel: Station linking complete.")

	root, _ := g.Lookup(rootName)
	logger.Debug("FromModel: Graph construction successful.", "root", rootName)
	return g, root, nil
}
