package factory

import (
	"context"
	"fmt"
	"slices"

	"github.com/fredshone/factory/internal/ctxlog"
)

// Result describes a completed run.
type Result struct {
	// Visited is the order in which demand was propagated.
	Visited []StationID
	// Built is the order in which stations were built: Visited reversed.
	Built []StationID
	// Effects holds every producer build, in build order.
	Effects []Effect
}

// Sequence returns the forward visit order followed by the build order.
func (r *Result) Sequence() []StationID {
	return append(slices.Clone(r.Visited), r.Built...)
}

// Plan runs the first two stages: it labels depths from root and propagates
// demand breadth first until every reachable station has engaged its
// suppliers. It returns the visit order.
//
// Stations wait in a queue ordered by ascending depth, ties kept in the order
// they were enqueued, so a supplier is only visited after every manager on a
// longer path to it has pushed its demand. Each station is enqueued at most
// once.
func (g *Graph) Plan(ctx context.Context, root StationID) ([]StationID, error) {
	logger := ctxlog.FromContext(ctx)

	if err := g.LabelDepths(ctx, root); err != nil {
		return nil, fmt.Errorf("labelling depths: %w", err)
	}
	if err := g.EngageSuppliers(ctx, root); err != nil {
		return nil, err
	}

	queue := []StationID{root}
	enqueued := map[StationID]bool{root: true}
	var visited []StationID

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		id := queue[0]
		queue = queue[1:]
		visited = append(visited, id)
		logger.Debug("Visiting station.", "station", g.Name(id), "depth", g.Depth(id))

		if err := g.EngageSuppliers(ctx, id); err != nil {
			return nil, err
		}
		for _, sup := range g.stations[id].suppliers {
			if enqueued[sup] {
				continue
			}
			enqueued[sup] = true
			queue = g.enqueue(queue, sup)
		}
	}

	logger.Debug("Demand propagated.", "visited", g.Names(visited))
	return visited, nil
}

// enqueue inserts id after every queued station of equal or lower depth.
func (g *Graph) enqueue(queue []StationID, id StationID) []StationID {
	depth := g.stations[id].depth
	i := len(queue)
	for i > 0 && g.stations[queue[i-1]].depth > depth {
		i--
	}
	return slices.Insert(queue, i, id)
}

// Run executes the full protocol from root: depth labelling, demand
// propagation and the reverse build pass. Any error aborts the run; an
// *UnsatisfiableDemandError means no station was built.
func (g *Graph) Run(ctx context.Context, root StationID) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Info("Starting factory run.", "root", g.Name(root), "stations", g.Len())

	visited, err := g.Plan(ctx, root)
	if err != nil {
		return nil, err
	}

	built := slices.Clone(visited)
	slices.Reverse(built)

	result := &Result{Visited: visited, Built: built}
	for _, id := range built {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		effects, err := g.Build(ctx, id)
		if err != nil {
			return nil, err
		}
		result.Effects = append(result.Effects, effects...)
	}

	logger.Info("Factory run finished.", "built", len(result.Effects))
	return result, nil
}
