package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// DemandBlock represents the top-level `demand` block. Each attribute names a
// requirement; its value lists the wanted options, and null or an empty list
// means any.
type DemandBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// ToolBlock represents a `tool` block declaring a producer type.
type ToolBlock struct {
	Type         string   `hcl:"type,label"`
	Description  string   `hcl:"description,optional"`
	Requires     []string `hcl:"requires"`
	ValidOptions []string `hcl:"valid_options,optional"`
	Unscoped     bool     `hcl:"unscoped,optional"`
}

// StationBlock represents a `station` block: a node of the factory graph.
type StationBlock struct {
	Name        string            `hcl:"name,label"`
	Description string            `hcl:"description,optional"`
	Suppliers   []string          `hcl:"suppliers,optional"`
	Provides    map[string]string `hcl:"provides,optional"`
}

// fileRoot is a struct used to decode all possible top-level blocks from any file.
type fileRoot struct {
	Demand   []*DemandBlock  `hcl:"demand,block"`
	Tools    []*ToolBlock    `hcl:"tool,block"`
	Stations []*StationBlock `hcl:"station,block"`
	Remain   hcl.Body        `hcl:",remain"`
}
