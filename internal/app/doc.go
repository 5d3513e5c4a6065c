// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run lifecycle that loads a factory file,
// wires the station graph and reports what was built, decoupled from any
// specific entrypoint like a CLI.
package app
