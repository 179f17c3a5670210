package entity

import "github.com/relindex/relindex/internal/orderedset"

// Entity is a uniquely-named vertex in the relation graph. Its ID is
// immutable once created; identifiers are copied into the record on
// creation rather than aliased to whatever buffer the caller read them
// from, so the record's lifetime is independent of the input stream.
type Entity struct {
	ID string

	// relIn maps a relation-type name to the ordered set of entities
	// that hold an incoming relation of that type to this entity, i.e.
	// relIn[t] is the in-neighbor set of (this entity, t).
	relIn map[string]*orderedset.Set
}

func newEntity(id string) *Entity {
	return &Entity{
		ID:    id,
		relIn: make(map[string]*orderedset.Set),
	}
}

// InNeighbors returns the in-neighbor set for relation type t, creating
// an empty one if this is the first time t is seen for this entity.
func (e *Entity) InNeighbors(t string) *orderedset.Set {
	s, ok := e.relIn[t]
	if !ok {
		s = orderedset.New()
		e.relIn[t] = s
	}
	return s
}

// InNeighborsIfPresent returns the in-neighbor set for relation type t
// without creating one, and reports whether it exists.
func (e *Entity) InNeighborsIfPresent(t string) (*orderedset.Set, bool) {
	s, ok := e.relIn[t]
	return s, ok
}

// DropInNeighbors clears and removes the in-neighbor set for relation
// type t entirely, so a subsequent InNeighbors(t) starts fresh.
func (e *Entity) DropInNeighbors(t string) {
	if s, ok := e.relIn[t]; ok {
		s.Clear()
		delete(e.relIn, t)
	}
}

// Types returns every relation type this entity currently has an
// in-neighbor entry for, in no particular order. The cascading-delete
// sweep in relindex.Engine.RemoveEntity does not call it (it visits
// types via the global type table); it exists for completeness and for
// tests that need to inspect an entity's state.
func (e *Entity) Types() []string {
	types := make([]string, 0, len(e.relIn))
	for t := range e.relIn {
		types = append(types, t)
	}
	return types
}
