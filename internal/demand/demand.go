package demand

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Options is a sorted, duplicate-free set of option identifiers. The nil
// (or empty) value is the unconstrained marker: a requirement never maps to
// an empty set.
type Options []string

// Any returns the unconstrained marker.
func Any() Options {
	return nil
}

// Of builds an option set from the given identifiers. Empty identifiers are
// dropped; with nothing left the result is the unconstrained marker.
func Of(opts ...string) Options {
	out := make(Options, 0, len(opts))
	for _, opt := range opts {
		if opt != "" {
			out = append(out, opt)
		}
	}
	if len(out) == 0 {
		return nil
	}
	sort.Strings(out)
	return slices.Compact(out)
}

// Unconstrained reports whether the set carries no option distinction.
func (o Options) Unconstrained() bool {
	return len(o) == 0
}

// Contains reports whether opt is a member of the set.
func (o Options) Contains(opt string) bool {
	_, found := slices.BinarySearch(o, opt)
	return found
}

// Union returns a new set holding the options of both sets. The union of two
// unconstrained sets is unconstrained; a concrete set absorbs an
// unconstrained one.
func (o Options) Union(other Options) Options {
	if o.Unconstrained() && other.Unconstrained() {
		return nil
	}
	merged := make([]string, 0, len(o)+len(other))
	merged = append(merged, o...)
	merged = append(merged, other...)
	return Of(merged...)
}

// Equal reports whether both sets hold the same options.
func (o Options) Equal(other Options) bool {
	return slices.Equal(o, other)
}

// Demand maps a requirement name to the options wanted for it.
type Demand map[string]Options

// Names returns the requirement names in sorted order.
func (d Demand) Names() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether the demand references name.
func (d Demand) Has(name string) bool {
	_, ok := d[name]
	return ok
}

// Clone returns a deep copy. A nil demand clones to an empty one.
func (d Demand) Clone() Demand {
	out := make(Demand, len(d))
	for name, opts := range d {
		out[name] = Of(opts...)
	}
	return out
}

// Merge folds the given demands into d in place using union semantics.
func (d Demand) Merge(others ...Demand) {
	for _, other := range others {
		for name, opts := range other {
			if existing, ok := d[name]; ok {
				d[name] = existing.Union(opts)
				continue
			}
			d[name] = Of(opts...)
		}
	}
}

// Equal reports whether both demands reference the same names with the same
// option sets. Nil and empty demands are equal.
func (d Demand) Equal(other Demand) bool {
	if len(d) != len(other) {
		return false
	}
	for name, opts := range d {
		theirs, ok := other[name]
		if !ok || !opts.Equal(theirs) {
			return false
		}
	}
	return true
}

// String renders the demand deterministically, e.g. {a:[1 2] b:*}.
func (d Demand) String() string {
	var sb strings.Builder
	sb.WriteRune('{')
	for i, name := range d.Names() {
		if i > 0 {
			sb.WriteRune(' ')
		}
		opts := d[name]
		if opts.Unconstrained() {
			fmt.Fprintf(&sb, "%s:*", name)
			continue
		}
		fmt.Fprintf(&sb, "%s:%v", name, []string(opts))
	}
	sb.WriteRune('}')
	return sb.String()
}

// Combine joins the given demands into a fresh mapping. The result holds the
// union of all names; each name maps to the union of the concrete options
// contributed for it, or to unconstrained when none were. Combining nothing
// yields an empty, non-nil demand.
func Combine(demands ...Demand) Demand {
	out := make(Demand)
	out.Merge(demands...)
	return out
}
