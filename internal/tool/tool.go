// Package tool implements producers: leaf units that satisfy one named
// requirement for one option, declare what they need from upstream, and
// validate their inputs when built.
package tool

import (
	"fmt"
	"slices"

	"github.com/fredshone/factory/internal/demand"
)

// Kind is the closed set of producer variants.
type Kind int

const (
	// KindTool consumes declared requirements from upstream stations.
	KindTool Kind = iota
	// KindSource supplies a raw input and needs nothing.
	KindSource
)

// String returns the name used for the kind in factory files.
func (k Kind) String() string {
	switch k {
	case KindTool:
		return "tool"
	case KindSource:
		return "source"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Spec describes a producer type. Stations bind a Spec to the requirement
// name it satisfies through their catalog.
type Spec struct {
	Type        string
	Description string
	Kind        Kind
	// Requires lists the requirement names the producer consumes, in order.
	Requires []string
	// ValidOptions is the allow-list of options. Nil accepts any option,
	// including none at all.
	ValidOptions []string
	// Unscoped producers demand their requirements unconstrained instead of
	// forwarding their own option.
	Unscoped bool
}

// Validate checks that the producer type is usable.
func (s *Spec) Validate() error {
	if s.Type == "" {
		return fmt.Errorf("tool spec has no type")
	}
	switch s.Kind {
	case KindTool:
		if len(s.Requires) == 0 {
			return fmt.Errorf("tool %q declares no requirements", s.Type)
		}
	case KindSource:
		if len(s.Requires) > 0 {
			return fmt.Errorf("source %q cannot declare requirements", s.Type)
		}
	default:
		return fmt.Errorf("tool %q has unknown kind %s", s.Type, s.Kind)
	}
	return nil
}

// Accepts reports whether option passes the allow-list.
func (s *Spec) Accepts(option string) bool {
	if s.ValidOptions == nil {
		return true
	}
	return slices.Contains(s.ValidOptions, option)
}

// Constructor instantiates the producer for one option. The empty option
// means unconstrained.
type Constructor func(option string) (*Tool, error)

// Catalog maps a requirement name to the constructor that satisfies it.
type Catalog map[string]Constructor

// Names returns the requirement names the catalog can produce, sorted.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Bind returns a constructor producing requirement name with this spec.
func (s *Spec) Bind(name string) Constructor {
	return func(option string) (*Tool, error) {
		return New(s, name, option)
	}
}

// Tool is a producer instance for a single requirement and option.
type Tool struct {
	spec   *Spec
	name   string
	option string
}

// New instantiates a producer. It fails with an *InvalidOptionError when the
// spec declares an allow-list that does not contain option.
func New(spec *Spec, name, option string) (*Tool, error) {
	if !spec.Accepts(option) {
		return nil, &InvalidOptionError{Type: spec.Type, Name: name, Option: option, Valid: spec.ValidOptions}
	}
	return &Tool{spec: spec, name: name, option: option}, nil
}

// Name is the requirement this producer satisfies.
func (t *Tool) Name() string { return t.name }

// Option is the option the producer was built for, empty if unconstrained.
func (t *Tool) Option() string { return t.option }

// Spec returns the producer type.
func (t *Tool) Spec() *Spec { return t.spec }

// Key is the resource key the producer occupies in its station.
func (t *Tool) Key() string { return demand.Key(t.name, t.option) }

// Demand returns what the producer needs from upstream: every required name
// scoped to the producer's option, or unconstrained when there is no option
// or the producer is unscoped.
func (t *Tool) Demand() demand.Demand {
	d := make(demand.Demand, len(t.spec.Requires))
	for _, req := range t.spec.Requires {
		if t.option == "" || t.spec.Unscoped {
			d[req] = demand.Any()
			continue
		}
		d[req] = demand.Of(t.option)
	}
	return d
}

// Effect records a completed build.
type Effect struct {
	Key    string
	Type   string
	Inputs []string
}

// Build validates that every key the producer demands is available and
// returns the resulting effect. A missing key yields a *MissingInputError.
// Build is meant to be called once per instance.
func (t *Tool) Build(available demand.KeySet) (Effect, error) {
	inputs := demand.Flatten(t.Demand())
	for _, key := range inputs {
		if !available.Has(key) {
			return Effect{}, &MissingInputError{Tool: t.Key(), Input: key, Available: available.Sorted()}
		}
	}
	return Effect{Key: t.Key(), Type: t.spec.Type, Inputs: inputs}, nil
}

// String implements fmt.Stringer.
func (t *Tool) String() string {
	return fmt.Sprintf("%s(%s)", t.spec.Type, t.Key())
}
