package config

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// Validate checks the wiring of the model and reports every problem found:
// duplicate or unknown stations, self edges, cycles, and the number of root
// stations (stations no other station lists as a supplier).
func (m *Model) Validate() error {
	var err error

	known := make(map[string]bool, len(m.Stations))
	for _, s := range m.Stations {
		if known[s.Name] {
			err = multierr.Append(err, fmt.Errorf("station %q is declared more than once", s.Name))
		}
		known[s.Name] = true
	}

	for _, s := range m.Stations {
		seen := make(map[string]bool, len(s.Suppliers))
		for _, sup := range s.Suppliers {
			switch {
			case sup == s.Name:
				err = multierr.Append(err, fmt.Errorf("station %q lists itself as a supplier", s.Name))
			case !known[sup]:
				err = multierr.Append(err, fmt.Errorf("station %q references unknown supplier %q", s.Name, sup))
			case seen[sup]:
				err = multierr.Append(err, fmt.Errorf("station %q lists supplier %q more than once", s.Name, sup))
			}
			seen[sup] = true
		}
	}

	if _, rootErr := m.Root(); rootErr != nil {
		err = multierr.Append(err, rootErr)
	}
	if m.Demand == nil {
		err = multierr.Append(err, fmt.Errorf("no demand declared"))
	}
	if err != nil {
		return err
	}
	return m.detectCycles()
}

// Root returns the name of the single station that has no managers.
func (m *Model) Root() (string, error) {
	managed := make(map[string]bool)
	for _, s := range m.Stations {
		for _, sup := range s.Suppliers {
			managed[sup] = true
		}
	}
	var roots []string
	for _, s := range m.Stations {
		if !managed[s.Name] {
			roots = append(roots, s.Name)
		}
	}
	switch len(roots) {
	case 0:
		return "", fmt.Errorf("no root station: every station is supplying another")
	case 1:
		return roots[0], nil
	default:
		return "", fmt.Errorf("expected exactly one root station, found %d: %s", len(roots), strings.Join(roots, ", "))
	}
}

// detectCycles follows supplier edges depth first and reports the first cycle.
func (m *Model) detectCycles() error {
	byName := make(map[string]*Station, len(m.Stations))
	for _, s := range m.Stations {
		byName[s.Name] = s
	}
	visiting := make(map[string]bool)
	visited := make(map[string]bool)

	var visit func(s *Station, path []string) error
	visit = func(s *Station, path []string) error {
		visiting[s.Name] = true
		path = append(path, s.Name)
		for _, supName := range s.Suppliers {
			if visiting[supName] {
				return fmt.Errorf("cycle detected: %s -> %s", strings.Join(path, " -> "), supName)
			}
			if !visited[supName] {
				if err := visit(byName[supName], path); err != nil {
					return err
				}
			}
		}
		delete(visiting, s.Name)
		visited[s.Name] = true
		return nil
	}

	for _, s := range m.Stations {
		if !visited[s.Name] {
			if err := visit(s, nil); err != nil {
				return err
			}
		}
	}
	return nil
}
