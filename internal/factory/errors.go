package factory

import (
	"fmt"
	"strings"
)

// UnsatisfiableDemandError is returned when a station demands requirements
// none of its suppliers can produce.
type UnsatisfiableDemandError struct {
	Station   string
	Missing   []string
	Suppliers []string
}

func (e *UnsatisfiableDemandError) Error() string {
	return fmt.Sprintf("missing requirements [%s] required by station %q from suppliers [%s]",
		strings.Join(e.Missing, ", "), e.Station, strings.Join(e.Suppliers, ", "))
}

// DemandShapeError is returned when a station is asked for the same
// requirement both unconstrained and with concrete options.
type DemandShapeError struct {
	Station     string
	Requirement string
}

func (e *DemandShapeError) Error() string {
	return fmt.Sprintf("station %q: requirement %q is demanded both with and without options", e.Station, e.Requirement)
}

// CycleDetectedError is returned when a traversal revisits a station that is
// still on its own path.
type CycleDetectedError struct {
	Path []string
}

func (e *CycleDetectedError) Error() string {
	return fmt.Sprintf("cycle detected: %s", strings.Join(e.Path, " -> "))
}
