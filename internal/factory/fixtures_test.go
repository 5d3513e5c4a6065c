package factory

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/fredshone/factory/internal/ctxlog"
	"github.com/fredshone/factory/internal/demand"
	"github.com/fredshone/factory/internal/tool"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	return ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// numbered is a producer accepting options 1 to 3 and forwarding its option.
func numbered(requires ...string) *tool.Spec {
	return &tool.Spec{Type: "numbered", Requires: requires, ValidOptions: []string{"1", "2", "3"}}
}

var rawSource = &tool.Spec{Type: "source", Kind: tool.KindSource}

func sources(names ...string) tool.Catalog {
	c := make(tool.Catalog, len(names))
	for _, name := range names {
		c[name] = rawSource.Bind(name)
	}
	return c
}

func connect(t *testing.T, g *Graph, id StationID, suppliers ...StationID) {
	t.Helper()
	require.NoError(t, g.Connect(id, nil, suppliers))
}

// simpleFactory fans out from start to b and c, which both feed d.
//
//	start -> b -> d -> end
//	start -> c -> d
type simpleFactory struct {
	g                   *Graph
	start, b, c, d, end StationID
}

func newSimpleFactory(t *testing.T) *simpleFactory {
	t.Helper()
	tool1 := numbered("a", "b", "e")
	tool2 := numbered("b")
	tool3 := numbered("a", "c")
	tool4 := numbered("c")
	tool5 := numbered("f")

	g := New()
	f := &simpleFactory{g: g}
	f.start = g.MustAddStation(Station{Name: "start", Source: StaticDemand{"a": demand.Of("1"), "b": demand.Of("1", "2")}})
	f.b = g.MustAddStation(Station{Name: "b", Catalog: tool.Catalog{"a": tool1.Bind("a"), "f": tool4.Bind("f")}})
	f.c = g.MustAddStation(Station{Name: "c", Catalog: tool.Catalog{"b": tool3.Bind("b")}})
	f.d = g.MustAddStation(Station{Name: "d", Catalog: tool.Catalog{
		"a": tool1.Bind("a"),
		"b": tool3.Bind("b"),
		"e": tool2.Bind("e"),
		"c": tool5.Bind("c"),
	}})
	f.end = g.MustAddStation(Station{Name: "end", Catalog: sources("a", "b", "c", "d", "e", "f")})

	connect(t, g, f.start, f.b, f.c)
	connect(t, g, f.b, f.d)
	connect(t, g, f.c, f.d)
	connect(t, g, f.d, f.end)
	return f
}

// unequalFactory reaches c both directly from start and through b.
//
//	start -> b -> c -> end
//	start -> c
type unequalFactory struct {
	g                *Graph
	start, b, c, end StationID
}

func newUnequalFactory(t *testing.T) *unequalFactory {
	t.Helper()
	tool1 := numbered("a")
	tool2 := numbered("a")
	tool3 := numbered("b")

	g := New()
	f := &unequalFactory{g: g}
	f.start = g.MustAddStation(Station{Name: "start", Source: StaticDemand{"a": demand.Of("1"), "b": demand.Of("2")}})
	f.b = g.MustAddStation(Station{Name: "b", Catalog: tool.Catalog{"b": tool1.Bind("b")}})
	f.c = g.MustAddStation(Station{Name: "c", Catalog: tool.Catalog{"a": tool2.Bind("a"), "b": tool3.Bind("b")}})
	f.end = g.MustAddStation(Station{Name: "end", Catalog: sources("a", "b", "c", "d", "e", "f")})

	connect(t, g, f.start, f.b, f.c)
	connect(t, g, f.b, f.c)
	connect(t, g, f.c, f.end)
	return f
}

// transportFactory post-processes simulation outputs: vehicle kilometres
// travelled are computed from volume counts, which are computed from the
// network and events read from configured paths.
//
//	start -> handler -> inputs -> paths
//	start -> post -> handler
type transportFactory struct {
	g                                  *Graph
	start, post, handler, inputs, path StationID
}

func newTransportFactory(t *testing.T) *transportFactory {
	t.Helper()
	vkt := &tool.Spec{Type: "vkt", Requires: []string{"volume_counts"}, ValidOptions: []string{"car", "bus"}}
	volumeCounts := &tool.Spec{Type: "volume_counts", Requires: []string{"network", "events"}, ValidOptions: []string{"car", "bus"}, Unscoped: true}
	modeShare := &tool.Spec{Type: "mode_share", Requires: []string{"network", "events"}, ValidOptions: []string{"all"}, Unscoped: true}
	network := &tool.Spec{Type: "network", Requires: []string{"network_path"}}
	events := &tool.Spec{Type: "events", Requires: []string{"events_path"}}
	plans := &tool.Spec{Type: "plans", Requires: []string{"plans_path"}}

	g := New()
	f := &transportFactory{g: g}
	f.start = g.MustAddStation(Station{Name: "start", Source: StaticDemand{"volume_counts": demand.Of("car"), "vkt": demand.Of("bus")}})
	f.post = g.MustAddStation(Station{Name: "post", Catalog: tool.Catalog{"vkt": vkt.Bind("vkt")}})
	f.handler = g.MustAddStation(Station{Name: "handler", Catalog: tool.Catalog{
		"volume_counts": volumeCounts.Bind("volume_counts"),
		"mode_share":    modeShare.Bind("mode_share"),
	}})
	f.inputs = g.MustAddStation(Station{Name: "inputs", Catalog: tool.Catalog{
		"events":  events.Bind("events"),
		"plans":   plans.Bind("plans"),
		"network": network.Bind("network"),
	}})
	f.path = g.MustAddStation(Station{Name: "paths", Catalog: sources("network_path", "events_path", "plans_path")})

	connect(t, g, f.start, f.handler, f.post)
	connect(t, g, f.post, f.handler)
	connect(t, g, f.handler, f.inputs)
	connect(t, g, f.inputs, f.path)
	return f
}

// chainFactory is a linear chain root -> a -> b -> c -> d. Stations a and b
// pass x through, c refines x from the raw input r, and d supplies r.
type chainFactory struct {
	g                *Graph
	root, a, b, c, d StationID
}

func newChainFactory(t *testing.T, terminal tool.Catalog) *chainFactory {
	t.Helper()
	pass := &tool.Spec{Type: "pass", Requires: []string{"x"}}
	refine := &tool.Spec{Type: "refine", Requires: []string{"r"}}

	g := New()
	f := &chainFactory{g: g}
	f.root = g.MustAddStation(Station{Name: "root", Source: StaticDemand{"x": demand.Of("1")}})
	f.a = g.MustAddStation(Station{Name: "a", Catalog: tool.Catalog{"x": pass.Bind("x")}})
	f.b = g.MustAddStation(Station{Name: "b", Catalog: tool.Catalog{"x": pass.Bind("x")}})
	f.c = g.MustAddStation(Station{Name: "c", Catalog: tool.Catalog{"x": refine.Bind("x")}})
	f.d = g.MustAddStation(Station{Name: "d", Catalog: terminal})

	connect(t, g, f.root, f.a)
	connect(t, g, f.a, f.b)
	connect(t, g, f.b, f.c)
	connect(t, g, f.c, f.d)
	return f
}
