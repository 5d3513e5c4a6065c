package factory

import (
	"testing"

	"github.com/fredshone/factory/internal/config"
	"github.com/fredshone/factory/internal/demand"
	"github.com/fredshone/factory/internal/registry"
	"github.com/fredshone/factory/modules/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddStation(t *testing.T) {
	g := New()
	id, err := g.AddStation(Station{Name: "a"})
	require.NoError(t, err)

	got, ok := g.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, id, got)

	_, err = g.AddStation(Station{Name: "a"})
	assert.EqualError(t, err, `station "a" already exists`)
	_, err = g.AddStation(Station{})
	assert.EqualError(t, err, "station name must not be empty")
	assert.Panics(t, func() { g.MustAddStation(Station{Name: "a"}) })
}

func TestLink(t *testing.T) {
	g := New()
	a := g.MustAddStation(Station{Name: "a"})
	b := g.MustAddStation(Station{Name: "b"})
	c := g.MustAddStation(Station{Name: "c"})

	require.NoError(t, g.Connect(b, []StationID{a}, []StationID{c}))
	assert.Equal(t, []StationID{b}, g.Suppliers(a))
	assert.Equal(t, []StationID{a}, g.Managers(b))
	assert.Equal(t, []StationID{c}, g.Suppliers(b))
	assert.Equal(t, []StationID{a}, g.Roots())

	assert.EqualError(t, g.Link(a, b), "edge a -> b already exists")
	assert.EqualError(t, g.Link(a, a), "self-referential edge not allowed: a -> a")
	assert.EqualError(t, g.Link(a, StationID(9)), "supplier station 9 not found")
	assert.EqualError(t, g.Link(StationID(-1), a), "manager station -1 not found")
}

func transportModel() *config.Model {
	m := config.NewModel()
	m.Demand = demand.Demand{"vkt": demand.Of("bus")}
	m.Tools["vkt"] = &config.ToolDefinition{Type: "vkt", Requires: []string{"volume_counts"}, ValidOptions: []string{"car", "bus"}}
	m.Tools["volume_counts"] = &config.ToolDefinition{Type: "volume_counts", Requires: []string{"network", "events"}, Unscoped: true}
	m.Stations = []*config.Station{
		{Name: "start", Suppliers: []string{"post"}},
		{Name: "post", Suppliers: []string{"handler"}, Provides: map[string]string{"vkt": "vkt"}},
		{Name: "handler", Suppliers: []string{"paths"}, Provides: map[string]string{"volume_counts": "volume_counts"}},
		{Name: "paths", Provides: map[string]string{"network": source.Type, "events": source.Type}},
	}
	return m
}

func transportRegistry(t *testing.T, m *config.Model) *registry.Registry {
	t.Helper()
	r := registry.New()
	(&source.Module{}).Register(r)
	require.NoError(t, r.PopulateDefinitionsFromModel(m))
	return r
}

func TestFromModel(t *testing.T) {
	ctx := testContext(t)
	m := transportModel()
	require.NoError(t, m.Validate())

	g, root, err := FromModel(ctx, m, transportRegistry(t, m))
	require.NoError(t, err)
	assert.Equal(t, "start", g.Name(root))
	assert.Equal(t, 4, g.Len())

	result, err := g.Run(ctx, root)
	require.NoError(t, err)
	assert.Equal(t, []string{"start", "post", "handler", "paths"}, g.Names(result.Visited))

	handler, _ := g.Lookup("handler")
	assert.Equal(t, []string{"volume_counts:bus"}, g.Resources(handler))
	paths, _ := g.Lookup("paths")
	assert.Equal(t, []string{"events", "network"}, g.Resources(paths))
}

func TestFromModel_UnknownToolType(t *testing.T) {
	m := transportModel()
	r := transportRegistry(t, m)
	m.Stations[1].Provides["vkt"] = "nope"

	_, _, err := FromModel(testContext(t), m, r)
	assert.EqualError(t, err, `station "post": requirement 'vkt' references unknown tool type 'nope'`)
}

func TestFromModel_NoRoot(t *testing.T) {
	m := transportModel()
	r := transportRegistry(t, m)
	m.Stations[3].Suppliers = []string{"start"}

	_, _, err := FromModel(testContext(t), m, r)
	assert.ErrorContains(t, err, "no root station")
}
