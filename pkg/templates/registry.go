// Package templates is the registry of notification email templates: which
// templates exist, what parameters they require, and their subject and body
// sources.
package templates

import "sort"

// registry holds the built-in templates keyed by ID.
var registry = map[string]Template{}

func init() {
	for _, t := range builtin() {
		registry[t.ID] = t
	}
}

// Lookup returns the template for an ID.
func Lookup(id string) (Template, bool) {
	t, ok := registry[id]
	return t, ok
}

// All returns every registered template sorted by ID.
func All() []Template {
	out := make([]Template, 0, len(registry))
	for _, t := range registry {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
