// Package config defines the format-agnostic model of a factory: the root
// demand, the producer types and the stations wired into a graph, along with
// the Loader interface that concrete formats implement.
//
// The config.Model is the single source of truth for the registry and the
// factory engine. The HCL implementation lives in hcl_adapter.
package config
