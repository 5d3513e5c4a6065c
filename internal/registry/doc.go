// Package registry provides the central "glue" between factory files and
// compiled producer types.
//
// The Registry maps the tool type names used in factory files (e.g.
// "passthrough" or "source") to tool.Spec values. Types come from two
// places: Go modules registering built-in kinds, and `tool` blocks declared
// in configuration. Before a run, the registry is validated against the
// model so that every station catalog entry resolves to a known type.
package registry
