package factory

import (
	"context"
	"fmt"
	"slices"

	"github.com/fredshone/factory/internal/demand"
	"github.com/fredshone/factory/internal/tool"
)

// StationID indexes a station in its Graph.
type StationID int

// DemandSource supplies the root demand. It is consulted once, by the station
// that has no managers.
type DemandSource interface {
	Demand(ctx context.Context) (demand.Demand, error)
}

// StaticDemand is a DemandSource returning a fixed mapping.
type StaticDemand demand.Demand

// Demand implements DemandSource.
func (s StaticDemand) Demand(context.Context) (demand.Demand, error) {
	return demand.Demand(s).Clone(), nil
}

// Station describes a station to add to a Graph.
type Station struct {
	Name string
	// Catalog lists the producers the station can instantiate. Empty for a
	// pure pass-through station.
	Catalog tool.Catalog
	// Source is only consulted when the station has no managers.
	Source DemandSource
}

// station is the arena record for a node.
type station struct {
	id      StationID
	name    string
	depth   int
	catalog tool.Catalog
	source  DemandSource

	// resources is append-only within a run; order keeps insertion order.
	resources map[string]*tool.Tool
	order     []string
	// scoped records, per requirement name, whether its producers carry an option.
	scoped map[string]bool

	// demand is nil until first resolved or engaged.
	demand demand.Demand

	managers  []StationID
	suppliers []StationID
}

// Graph owns the stations and their edges.
type Graph struct {
	stations []*station
	byName   map[string]StationID
	// resolving is the stack of stations whose demand is being resolved.
	resolving []StationID
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		byName: make(map[string]StationID),
	}
}

// AddStation adds a station and returns its identifier. Names must be unique.
func (g *Graph) AddStation(s Station) (StationID, error) {
	if s.Name == "" {
		return 0, fmt.Errorf("station name must not be empty")
	}
	if _, exists := g.byName[s.Name]; exists {
		return 0, fmt.Errorf("station %q already exists", s.Name)
	}
	id := StationID(len(g.stations))
	g.stations = append(g.stations, &station{
		id:        id,
		name:      s.Name,
		catalog:   s.Catalog,
		source:    s.Source,
		resources: make(map[string]*tool.Tool),
		scoped:    make(map[string]bool),
	})
	g.byName[s.Name] = id
	return id, nil
}

// MustAddStation is like AddStation but panics on error. It is meant for
// statically wired graphs.
func (g *Graph) MustAddStation(s Station) StationID {
	id, err := g.AddStation(s)
	if err != nil {
		panic(err)
	}
	return id
}

// Link records that manager consumes from supplier. The edge is appended to
// the manager's supplier list and to the supplier's manager list, so both
// keep declaration order.
func (g *Graph) Link(manager, supplier StationID) error {
	if !g.valid(manager) {
		return fmt.Errorf("manager station %d not found", manager)
	}
	if !g.valid(supplier) {
		return fmt.Errorf("supplier station %d not found", supplier)
	}
	if manager == supplier {
		return fmt.Errorf("self-referential edge not allowed: %s -> %s", g.Name(manager), g.Name(manager))
	}
	m, s := g.stations[manager], g.stations[supplier]
	if slices.Contains(m.suppliers, supplier) {
		return fmt.Errorf("edge %s -> %s already exists", m.name, s.name)
	}
	m.suppliers = append(m.suppliers, supplier)
	s.managers = append(s.managers, manager)
	return nil
}

// Connect links id to all of its managers and suppliers at once.
func (g *Graph) Connect(id StationID, managers, suppliers []StationID) error {
	for _, m := range managers {
		if err := g.Link(m, id); err != nil {
			return err
		}
	}
	for _, s := range suppliers {
		if err := g.Link(id, s); err != nil {
			return err
		}
	}
	return nil
}

func (g *Graph) valid(id StationID) bool {
	return id >= 0 && int(id) < len(g.stations)
}

// Len returns the number of stations.
func (g *Graph) Len() int { return len(g.stations) }

// Lookup finds a station by name.
func (g *Graph) Lookup(name string) (StationID, bool) {
	id, ok := g.byName[name]
	return id, ok
}

// Name returns the station's name.
func (g *Graph) Name(id StationID) string { return g.stations[id].name }

// Names maps identifiers to station names.
func (g *Graph) Names(ids []StationID) []string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = g.stations[id].name
	}
	return names
}

// Depth returns the station's labelled depth.
func (g *Graph) Depth(id StationID) int { return g.stations[id].depth }

// Managers returns the stations consuming from id, in declaration order.
func (g *Graph) Managers(id StationID) []StationID {
	return slices.Clone(g.stations[id].managers)
}

// Suppliers returns the stations id consumes from, in declaration order.
func (g *Graph) Suppliers(id StationID) []StationID {
	return slices.Clone(g.stations[id].suppliers)
}

// Resources returns the station's resource keys in insertion order.
func (g *Graph) Resources(id StationID) []string {
	return slices.Clone(g.stations[id].order)
}

// Resource returns the producer stored under key.
func (g *Graph) Resource(id StationID, key string) (*tool.Tool, bool) {
	t, ok := g.stations[id].resources[key]
	return t, ok
}

// CachedDemand returns a copy of the station's cached demand and whether one
// has been computed yet.
func (g *Graph) CachedDemand(id StationID) (demand.Demand, bool) {
	d := g.stations[id].demand
	if d == nil {
		return nil, false
	}
	return d.Clone(), true
}

// Roots returns the stations without managers, in insertion order.
func (g *Graph) Roots() []StationID {
	var roots []StationID
	for _, s := range g.stations {
		if len(s.managers) == 0 {
			roots = append(roots, s.id)
		}
	}
	return roots
}

// Reset clears all per-run state: depths, resource tables and cached
// demands. Wiring and catalogs are kept.
func (g *Graph) Reset() {
	for _, s := range g.stations {
		s.depth = 0
		s.resources = make(map[string]*tool.Tool)
		s.order = nil
		s.scoped = make(map[string]bool)
		s.demand = nil
	}
	g.resolving = nil
}
