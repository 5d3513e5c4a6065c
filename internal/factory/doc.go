// Package factory is the resolution-and-build engine. It holds the station
// graph and drives the three-stage protocol over it:
//
//  1. LabelDepths walks the graph depth first from the root and records each
//     station's maximum distance from it.
//  2. Plan pulls demand from the root toward the raw-input stations. Each
//     visited station engages its suppliers, which instantiate the producers
//     the station asked for and accumulate their upstream demand.
//  3. Run replays the visit order in reverse and builds every producer
//     against the resources its station's suppliers hold.
//
// Stations live in an arena owned by Graph and refer to each other through
// StationID index lists. Managers (consumers) and suppliers (providers) are
// two views of the same edges, recorded together by Link.
//
// The engine is single threaded. A Graph must be driven by one caller from
// wiring to the end of a run.
package factory
