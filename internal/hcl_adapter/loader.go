package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/fredshone/factory/internal/config"
	"github.com/fredshone/factory/internal/ctxlog"
	"github.com/fredshone/factory/internal/fsutil"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// Load orchestrates the entire HCL configuration loading process. It is
// agnostic to the origin of the paths and parses any valid block from any
// file. Stations keep the order in which they were read, across files.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	hclFiles, err := fsutil.ExpandPaths(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	if len(hclFiles) == 0 {
		return nil, fmt.Errorf("no .hcl files found in %v", paths)
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	model := config.NewModel()
	parser := hclparse.NewParser()
	var demandFile string

	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		// Translate and merge all discovered blocks into the model.
		for _, block := range root.Demand {
			if demandFile != "" {
				return nil, fmt.Errorf("demand block in %s: demand is already declared in %s", file, demandFile)
			}
			d, err := l.translateDemand(ctx, block)
			if err != nil {
				return nil, fmt.Errorf("in file %s: %w", file, err)
			}
			model.Demand = d
			demandFile = file
		}
		for _, block := range root.Tools {
			if _, exists := model.Tools[block.Type]; exists {
				return nil, fmt.Errorf("tool '%s' in %s is declared more than once", block.Type, file)
			}
			model.Tools[block.Type] = l.translateTool(block)
		}
		for _, block := range root.Stations {
			model.Stations = append(model.Stations, l.translateStation(block))
		}
	}

	logger.Debug("HCL loading complete.", "tools", len(model.Tools), "stations", len(model.Stations), "demand", model.Demand.String())
	return model, nil
}
