package demand

import (
	"sort"
	"strings"
)

// keySeparator joins a requirement name and an option in a resource key.
const keySeparator = ":"

// Key returns the resource key for a requirement name and option. An empty
// option yields the bare name.
func Key(name, option string) string {
	if option == "" {
		return name
	}
	return name + keySeparator + option
}

// SplitKey reverses Key. Options may themselves contain the separator, so the
// name ends at the first one.
func SplitKey(key string) (name, option string) {
	name, option, _ = strings.Cut(key, keySeparator)
	return name, option
}

// Flatten returns the sorted resource keys of a demand: the bare name for an
// unconstrained requirement and "name:option" for every concrete option.
func Flatten(d Demand) []string {
	keys := make([]string, 0, len(d))
	for name, opts := range d {
		if opts.Unconstrained() {
			keys = append(keys, name)
			continue
		}
		for _, opt := range opts {
			keys = append(keys, Key(name, opt))
		}
	}
	sort.Strings(keys)
	return keys
}

// KeySet is a set of resource keys.
type KeySet map[string]struct{}

// NewKeySet builds a set from the given keys.
func NewKeySet(keys ...string) KeySet {
	s := make(KeySet, len(keys))
	s.Add(keys...)
	return s
}

// Add inserts keys into the set.
func (s KeySet) Add(keys ...string) {
	for _, k := range keys {
		s[k] = struct{}{}
	}
}

// Has reports whether key is in the set.
func (s KeySet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Sorted returns the members in sorted order.
func (s KeySet) Sorted() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
