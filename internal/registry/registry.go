// Package registry holds the fixed table of machine records the dashboard
// reads from.
//
// A Registry is immutable once built. Lookups hand out copies, and the
// iteration order is the order the machines were defined in, so selector
// rendering is deterministic.
package registry

import (
	"fmt"
)

// Registry is a read-only table of machines keyed by ID.
type Registry struct {
	machines  []Machine
	index     map[string]int
	defaultID string
}

// New builds a registry from machines in the given order. defaultID names
// the machine selected at startup; when empty the first machine is used.
// The table is validated before it is accepted.
func New(machines []Machine, defaultID string) (*Registry, error) {
	if defaultID == "" && len(machines) > 0 {
		defaultID = machines[0].ID
	}
	if err := validate(machines, defaultID); err != nil {
		return nil, err
	}

	r := &Registry{
		machines:  make([]Machine, len(machines)),
		index:     make(map[string]int, len(machines)),
		defaultID: defaultID,
	}
	for i, m := range machines {
		r.machines[i] = m.clone()
		r.index[m.ID] = i
	}
	return r, nil
}

// Lookup returns the machine with the given ID.
func (r *Registry) Lookup(id string) (Machine, bool) {
	i, ok := r.index[id]
	if !ok {
		return Machine{}, false
	}
	return r.machines[i].clone(), true
}

// MustLookup returns the machine with the given ID and panics when it is
// missing. Callers only pass IDs taken from the registry itself.
func (r *Registry) MustLookup(id string) Machine {
	m, ok := r.Lookup(id)
	if !ok {
		panic(fmt.Sprintf("registry: unknown machine %q", id))
	}
	return m
}

// Entries returns every machine in definition order.
func (r *Registry) Entries() []Machine {
	out := make([]Machine, len(r.machines))
	for i, m := range r.machines {
		out[i] = m.clone()
	}
	return out
}

// IDs returns every machine ID in definition order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.machines))
	for i, m := range r.machines {
		ids[i] = m.ID
	}
	return ids
}

// IndexOf returns the position of id in definition order, or -1.
func (r *Registry) IndexOf(id string) int {
	i, ok := r.index[id]
	if !ok {
		return -1
	}
	return i
}

// At returns the ID at position i, wrapping around in both directions.
func (r *Registry) At(i int) string {
	n := len(r.machines)
	return r.machines[((i%n)+n)%n].ID
}

// Contains reports whether id is a registry key.
func (r *Registry) Contains(id string) bool {
	_, ok := r.index[id]
	return ok
}

// Len returns the number of machines.
func (r *Registry) Len() int {
	return len(r.machines)
}

// Default returns the ID of the machine selected at startup.
func (r *Registry) Default() string {
	return r.defaultID
}
