package config

import (
	"github.com/fredshone/factory/internal/demand"
)

// Model is the unified, format-agnostic representation of a factory.
type Model struct {
	// Demand is the root demand; nil when no demand was declared.
	Demand demand.Demand
	// Tools holds the declared producer types keyed by type name.
	Tools map[string]*ToolDefinition
	// Stations keeps declaration order, which fixes manager order.
	Stations []*Station
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{Tools: make(map[string]*ToolDefinition)}
}

// ToolDefinition is the format-agnostic representation of a `tool` block.
type ToolDefinition struct {
	Type         string
	Description  string
	Requires     []string
	ValidOptions []string
	Unscoped     bool
}

// Station is the format-agnostic representation of a `station` block.
type Station struct {
	Name        string
	Description string
	// Suppliers lists the stations this one consumes from, in order.
	Suppliers []string
	// Provides maps a requirement name to the tool type producing it.
	Provides map[string]string
}

// Station returns the station with the given name.
func (m *Model) Station(name string) (*Station, bool) {
	for _, s := range m.Stations {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}
