package factory

import (
	"context"
	"fmt"
	"slices"

	"github.com/fredshone/factory/internal/ctxlog"
	"github.com/fredshone/factory/internal/demand"
	"github.com/fredshone/factory/internal/tool"
)

// ResolveDemand returns what the station needs from its suppliers. The result
// is computed once and cached; later calls return the cache, which supplier
// engagement may have extended since.
//
// A station without managers takes its demand from its DemandSource. Any
// other station instantiates, for every requirement its managers demand and
// its catalog offers, one producer per requested option, and combines the
// producers' own demands.
func (g *Graph) ResolveDemand(ctx context.Context, id StationID) (demand.Demand, error) {
	if !g.valid(id) {
		return nil, fmt.Errorf("station %d not found", id)
	}
	s := g.stations[id]
	if s.demand != nil {
		return s.demand.Clone(), nil
	}
	logger := ctxlog.FromContext(ctx).With("station", s.name)

	if len(s.managers) == 0 {
		if s.source == nil {
			return nil, fmt.Errorf("station %q has no managers and no demand source", s.name)
		}
		d, err := s.source.Demand(ctx)
		if err != nil {
			return nil, fmt.Errorf("station %q: reading demand source: %w", s.name, err)
		}
		s.demand = d.Clone()
		logger.Debug("Resolved root demand.", "demand", s.demand.String())
		return s.demand.Clone(), nil
	}

	if i := slices.Index(g.resolving, id); i >= 0 {
		path := g.Names(append(slices.Clone(g.resolving[i:]), id))
		return nil, &CycleDetectedError{Path: path}
	}
	g.resolving = append(g.resolving, id)
	defer func() { g.resolving = g.resolving[:len(g.resolving)-1] }()

	var collected []demand.Demand
	for _, m := range s.managers {
		managerDemand, err := g.ResolveDemand(ctx, m)
		if err != nil {
			return nil, err
		}
		for _, name := range managerDemand.Names() {
			if _, ok := s.catalog[name]; !ok {
				continue
			}
			ds, err := g.instantiate(ctx, s, name, managerDemand[name])
			if err != nil {
				return nil, err
			}
			collected = append(collected, ds...)
		}
	}

	s.demand = demand.Combine(collected...)
	logger.Debug("Resolved station demand.", "demand", s.demand.String(), "resources", len(s.order))
	return s.demand.Clone(), nil
}

// EngageSuppliers pushes the station's demand onto its suppliers. Every
// requirement must be offered by at least one supplier. Each supplier that
// offers a demanded requirement instantiates the missing producers for it and
// merges their demands into its own cached demand.
//
// Engagement is idempotent per resource key and is meant to be repeated: a
// supplier with several managers is engaged once by each of them, and its
// demand grows to the union of what they need.
func (g *Graph) EngageSuppliers(ctx context.Context, id StationID) error {
	d, err := g.ResolveDemand(ctx, id)
	if err != nil {
		return err
	}
	s := g.stations[id]
	logger := ctxlog.FromContext(ctx).With("station", s.name)

	offered := make(map[string]struct{})
	for _, sup := range s.suppliers {
		for name := range g.stations[sup].catalog {
			offered[name] = struct{}{}
		}
	}
	var missing []string
	for _, name := range d.Names() {
		if _, ok := offered[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &UnsatisfiableDemandError{Station: s.name, Missing: missing, Suppliers: g.Names(s.suppliers)}
	}

	for _, supID := range s.suppliers {
		sup := g.stations[supID]
		var collected []demand.Demand
		for _, name := range sup.catalog.Names() {
			opts, ok := d[name]
			if !ok {
				continue
			}
			ds, err := g.instantiate(ctx, sup, name, opts)
			if err != nil {
				return err
			}
			collected = append(collected, ds...)
		}
		if len(collected) == 0 {
			continue
		}
		if sup.demand == nil {
			sup.demand = make(demand.Demand)
		}
		sup.demand.Merge(collected...)
		logger.Debug("Engaged supplier.", "supplier", sup.name, "new_producers", len(collected), "supplier_demand", sup.demand.String())
	}
	return nil
}

// instantiate creates the producers for one requirement on s, one per
// requested option, skipping keys already present. It returns the demands of
// the producers it created.
func (g *Graph) instantiate(ctx context.Context, s *station, name string, opts demand.Options) ([]demand.Demand, error) {
	options := []string(opts)
	if opts.Unconstrained() {
		options = []string{""}
	}
	scoped := !opts.Unconstrained()

	var out []demand.Demand
	for _, opt := range options {
		key := demand.Key(name, opt)
		if _, exists := s.resources[key]; exists {
			continue
		}
		if prev, seen := s.scoped[name]; seen && prev != scoped {
			return nil, &DemandShapeError{Station: s.name, Requirement: name}
		}
		t, err := s.catalog[name](opt)
		if err != nil {
			return nil, fmt.Errorf("station %q: %w", s.name, err)
		}
		s.resources[key] = t
		s.order = append(s.order, key)
		s.scoped[name] = scoped
		out = append(out, t.Demand())
		ctxlog.FromContext(ctx).Debug("Instantiated producer.", "station", s.name, "key", key, "type", t.Spec().Type)
	}
	return out, nil
}

// Build constructs every producer in the station's resource table against
// the union of its suppliers' resources. Producers build in the order they
// were instantiated.
func (g *Graph) Build(ctx context.Context, id StationID) ([]Effect, error) {
	if !g.valid(id) {
		return nil, fmt.Errorf("station %d not found", id)
	}
	s := g.stations[id]
	available := g.available(s)
	ctxlog.FromContext(ctx).Debug("Building station.", "station", s.name, "producers", len(s.order), "available", len(available))

	effects := make([]Effect, 0, len(s.order))
	for _, key := range s.order {
		effect, err := s.resources[key].Build(available)
		if err != nil {
			return nil, fmt.Errorf("station %q: %w", s.name, err)
		}
		effects = append(effects, Effect{Station: s.name, Effect: effect})
	}
	return effects, nil
}

// available gathers the resource keys held by all of s's suppliers.
func (g *Graph) available(s *station) demand.KeySet {
	keys := make(demand.KeySet)
	for _, sup := range s.suppliers {
		keys.Add(g.stations[sup].order...)
	}
	return keys
}

// Effect is a producer build attributed to its station.
type Effect struct {
	Station string
	tool.Effect
}
