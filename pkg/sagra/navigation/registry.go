package navigation

import (
	"fmt"

	"github.com/BrandonKowalski/sagra/pkg/sagra/route"
)

// Screen is the rendered form of a route produced by an EntryFunc. The
// navigation layer treats it as opaque apart from its kind; drawing it is
// the embedding UI layer's job.
type Screen interface {
	ScreenKind() route.Kind
}

// EntryFunc renders one route variant: it destructures the route's payload
// and wires the screen's outgoing actions to the given Navigator or to
// external collaborators.
type EntryFunc func(r route.Route, nav Navigator) (Screen, error)

// Registry is the static table from route kind to entry. It is a pure
// lookup: there is no fallback or default entry.
type Registry struct {
	entries map[route.Kind]EntryFunc
}

// NewRegistry validates that the entry table covers the closed route variant
// set exactly: every kind has exactly one entry and no entry references an
// unknown kind. Any mismatch is a configuration error to be treated as fatal
// at startup.
func NewRegistry(entries map[route.Kind]EntryFunc) (*Registry, error) {
	for _, kind := range route.Kinds() {
		fn, ok := entries[kind]
		if !ok {
			return nil, NewConfigurationError("registry",
				fmt.Errorf("route kind %q has no registered entry", kind))
		}
		if fn == nil {
			return nil, NewConfigurationError("registry",
				fmt.Errorf("route kind %q has a nil entry", kind))
		}
	}
	if len(entries) != len(route.Kinds()) {
		known := make(map[route.Kind]bool, len(route.Kinds()))
		for _, kind := range route.Kinds() {
			known[kind] = true
		}
		for kind := range entries {
			if !known[kind] {
				return nil, NewConfigurationError("registry",
					fmt.Errorf("entry registered for unknown route kind %q", kind))
			}
		}
	}

	table := make(map[route.Kind]EntryFunc, len(entries))
	for kind, fn := range entries {
		table[kind] = fn
	}
	return &Registry{entries: table}, nil
}

// Render dispatches the route to its entry. NewRegistry guarantees the
// lookup succeeds for every member of the variant set.
func (reg *Registry) Render(r route.Route, nav Navigator) (Screen, error) {
	fn, ok := reg.entries[r.Kind()]
	if !ok {
		return nil, NewConfigurationError("render",
			fmt.Errorf("route kind %q has no registered entry", r.Kind()))
	}
	return fn(r, nav)
}
