package app

import (
	"context"
	"fmt"

	"github.com/fredshone/factory/internal/ctxlog"
	"github.com/fredshone/factory/internal/factory"
)

// Run wires the station graph from the loaded model, propagates demand from
// the root and, unless the app is in plan-only mode, builds every station in
// reverse visit order. A report of the run is written to the app's output.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	a.logger.Debug("Building station graph from config model...")
	graph, root, err := factory.FromModel(ctx, a.model, a.registry)
	if err != nil {
		return fmt.Errorf("failed to build station graph: %w", err)
	}
	a.logger.Debug("Station graph built.", "station_count", graph.Len(), "root", graph.Name(root))

	if a.config.PlanOnly {
		a.logger.Info("Planning supply chain...")
		visited, err := graph.Plan(ctx, root)
		if err != nil {
			return fmt.Errorf("planning failed: %w", err)
		}
		a.logger.Info("Supply chain is satisfiable.", "stations", len(visited))
		return writeReport(a.outW, graph, &factory.Result{Visited: visited})
	}

	result, err := graph.Run(ctx, root)
	if err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return writeReport(a.outW, graph, result)
}
