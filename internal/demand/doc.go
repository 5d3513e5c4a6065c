// Package demand defines the value type that flows between stations: a
// mapping from requirement name to the set of options a consumer wants for
// it, or to "unconstrained" when the consumer does not care which option is
// built.
//
// Two operations make up the algebra used by the engine:
//   - Combine joins several mappings by union. A requirement is satisfied if
//     any consumer wants any option, so the merged demand covers all of them.
//   - Flatten turns a mapping into the set of resource keys ("name" or
//     "name:option") that index station resource tables.
package demand
