package factory

import (
	"context"
	"fmt"
	"slices"

	"github.com/fredshone/factory/internal/ctxlog"
)

// LabelDepths walks the graph depth first from root along supplier edges and
// raises each station's depth to its parent's depth plus one. A supplier
// reachable through several managers is revisited on every path, so it ends
// up at its maximum distance from the root. Depths never decrease.
//
// A supplier edge leading back onto the current path yields a
// *CycleDetectedError.
func (g *Graph) LabelDepths(ctx context.Context, root StationID) error {
	if !g.valid(root) {
		return fmt.Errorf("root station %d not found", root)
	}
	var path []StationID

	var visit func(id StationID) error
	visit = func(id StationID) error {
		if slices.Contains(path, id) {
			cycle := append(slices.Clone(path[slices.Index(path, id):]), id)
			return &CycleDetectedError{Path: g.Names(cycle)}
		}
		path = append(path, id)
		defer func() { path = path[:len(path)-1] }()

		s := g.stations[id]
		for _, supID := range s.suppliers {
			sup := g.stations[supID]
			sup.depth = max(sup.depth, s.depth+1)
			if err := visit(supID); err != nil {
				return err
			}
		}
		return nil
	}

	if err := visit(root); err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Debug("Depths labelled.", "root", g.Name(root))
	return nil
}
