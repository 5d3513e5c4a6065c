package tool

import (
	"fmt"
	"strings"
)

// InvalidOptionError is returned when a producer is constructed with an option
// outside its allow-list.
type InvalidOptionError struct {
	Type   string
	Name   string
	Option string
	Valid  []string
}

func (e *InvalidOptionError) Error() string {
	opt := e.Option
	if opt == "" {
		opt = "<none>"
	}
	return fmt.Sprintf("unsupported option %q for %s producing %q, valid options: [%s]",
		opt, e.Type, e.Name, strings.Join(e.Valid, ", "))
}

// MissingInputError is returned by Build when a required key was never
// supplied.
type MissingInputError struct {
	Tool      string
	Input     string
	Available []string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing input %q for %s, available: [%s]", e.Input, e.Tool, strings.Join(e.Available, ", "))
}
