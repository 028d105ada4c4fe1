// Package drill provides the registry of runnable drills and shared
// parameter-parsing helpers for drill implementations.
package drill

import (
	"fmt"

	"github.com/advancedcpp/drillbox/internal/ports"
)

// Registry is an ordered, immutable catalog of drills keyed by id.
type Registry struct {
	byID  map[string]ports.Drill
	order []string
}

// NewRegistry builds a registry from the given drills. An empty or duplicate
// id is a programmer error and panics, like duplicate flag registration.
func NewRegistry(drills ...ports.Drill) *Registry {
	r := &Registry{byID: make(map[string]ports.Drill, len(drills))}
	for _, d := range drills {
		id := d.Info().ID
		if id == "" {
			panic("drill: registered drill with empty id")
		}
		if _, dup := r.byID[id]; dup {
			panic(fmt.Sprintf("drill: duplicate drill id %q", id))
		}
		r.byID[id] = d
		r.order = append(r.order, id)
	}
	return r
}

var _ ports.DrillCatalog = (*Registry)(nil)

func (r *Registry) Lookup(id string) (ports.Drill, bool) {
	d, ok := r.byID[id]
	return d, ok
}

// All returns drills in registration order.
func (r *Registry) All() []ports.Drill {
	out := make([]ports.Drill, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}
