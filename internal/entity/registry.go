package entity

// Registry is the single owner of every live Entity. Lookups are
// expected O(1) average, matching spec.md's hash-table contract for
// the entity registry; no ordering guarantee is made or needed here,
// since ordering is the job of orderedset and relindex.Table.
type Registry struct {
	byID map[string]*Entity
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]*Entity)}
}

// Add creates and returns a new Entity for id if none exists yet.
// If id is already registered, Add is a no-op and returns the existing
// record.
func (r *Registry) Add(id string) *Entity {
	if e, ok := r.byID[id]; ok {
		return e
	}
	e := newEntity(id)
	r.byID[id] = e
	return e
}

// Find returns the Entity for id, or nil and false if none is live.
func (r *Registry) Find(id string) (*Entity, bool) {
	e, ok := r.byID[id]
	return e, ok
}

// Remove deletes the Entity for id. Callers must have already severed
// every reference to it from in-neighbor sets and leaders sets;
// Registry does not track or sweep back-references itself.
func (r *Registry) Remove(id string) {
	delete(r.byID, id)
}

// All calls visit for every live entity, in no particular order.
func (r *Registry) All(visit func(e *Entity)) {
	for _, e := range r.byID {
		visit(e)
	}
}

// Size returns the number of live entities.
func (r *Registry) Size() int {
	return len(r.byID)
}
