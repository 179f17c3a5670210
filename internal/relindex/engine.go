package relindex

import (
	"github.com/relindex/relindex/internal/entity"
	"github.com/relindex/relindex/internal/logging"
)

var log = logging.GetLogger("relindex")

// Engine is the incremental maximum-in-degree index. It owns an
// entity registry and a relation-type table and is the sole mutable
// object in the program; it is not safe for concurrent use, matching
// the single-threaded, synchronous command model this index is built
// for.
type Engine struct {
	entities *entity.Registry
	types    *Table
}

// New returns an empty Engine.
func New() *Engine {
	return &Engine{
		entities: entity.NewRegistry(),
		types:    NewTable(),
	}
}

// AddEntity creates a new entity for id if none is live yet. It is a
// no-op otherwise and can never affect the relation-type table.
func (e *Engine) AddEntity(id string) {
	e.entities.Add(id)
}

// AddRelation records relation (from, to, typ). It is a no-op if
// either endpoint is unknown, or if the relation already exists.
// Self-relations (from == to) are permitted.
func (e *Engine) AddRelation(from, to, typ string) {
	if _, ok := e.entities.Find(from); !ok {
		return
	}
	toEntity, ok := e.entities.Find(to)
	if !ok {
		return
	}

	d := e.types.GetOrCreate(typ)
	s := toEntity.InNeighbors(typ)

	if s.Contains(from) {
		return
	}
	s.Insert(from)
	k := s.Size()

	switch {
	case k == d.CurrentMax:
		d.Leaders.Insert(to)
	case k > d.CurrentMax:
		d.Leaders.Clear()
		d.CurrentMax = k
		d.Leaders.Insert(to)
	}
	// k < d.CurrentMax: to's in-degree changed but still falls short of
	// the max, nothing about d needs to change.
}

// RemoveRelation deletes relation (from, to, typ) if it exists. It is
// a no-op if either endpoint, the relation type, or the relation
// itself is unknown.
func (e *Engine) RemoveRelation(from, to, typ string) {
	if _, ok := e.entities.Find(from); !ok {
		return
	}
	toEntity, ok := e.entities.Find(to)
	if !ok {
		return
	}
	d, ok := e.types.Get(typ)
	if !ok {
		return
	}
	s, ok := toEntity.InNeighborsIfPresent(typ)
	if !ok {
		return
	}
	if !s.Contains(from) {
		return
	}

	s.Remove(from)
	kOld := s.Size() + 1

	if kOld != d.CurrentMax {
		// to was not a leader; removing a non-leader relation cannot
		// change the max.
		return
	}
	if d.Leaders.Size() > 1 {
		// to is no longer at the max, but other leaders still are.
		d.Leaders.Remove(to)
		return
	}
	// to was the sole leader and just lost the lead; no cached
	// alternative exists, so fall back to a full scan.
	e.recompute(typ)
}

// RemoveEntity deletes entity id and every relation incident to it —
// both relations targeting it (dropped wholesale, per type) and
// relations it sources (removed one at a time from each other live
// entity's in-neighbor sets). Every relation type touched is then
// recomputed from scratch, since the removed entity may have been a
// sole or tied leader for several of them. This sweep-and-recompute is
// linear per relation type rather than logarithmic, which is
// acceptable because delent is expected to be rare relative to addrel.
func (e *Engine) RemoveEntity(id string) {
	removed, ok := e.entities.Find(id)
	if !ok {
		return
	}

	types := e.types.Types()
	log.Debug("cascading entity removal", "id", id, "affected_types", len(types))
	for _, typ := range types {
		e.entities.All(func(x *entity.Entity) {
			if x == removed {
				x.DropInNeighbors(typ)
				return
			}
			if s, ok := x.InNeighborsIfPresent(typ); ok {
				s.Remove(id)
			}
		})
		e.recompute(typ)
	}

	// Set-level removals above have already severed every reference to
	// removed; only now is it safe to drop the record itself.
	e.entities.Remove(id)
}

// recompute rebuilds the descriptor for typ from scratch by scanning
// every live entity's in-degree for that type. It is the fallback path
// used when an incremental update cannot determine the new maximum
// cheaply: breaking a tie at the current maximum downward, or any
// relation type touched by RemoveEntity.
func (e *Engine) recompute(typ string) {
	d, ok := e.types.Get(typ)
	if !ok {
		return
	}

	d.CurrentMax = 0
	d.Leaders.Clear()

	e.entities.All(func(x *entity.Entity) {
		s, ok := x.InNeighborsIfPresent(typ)
		if !ok {
			return
		}
		c := s.Size()
		if c == 0 {
			return
		}
		switch {
		case c > d.CurrentMax:
			d.Leaders.Clear()
			d.CurrentMax = c
			d.Leaders.Insert(x.ID)
		case c == d.CurrentMax:
			d.Leaders.Insert(x.ID)
		}
	})

	if d.CurrentMax == 0 {
		log.Debug("relation type exhausted", "type", typ)
		e.types.Drop(typ)
	}
}

// TypeReport is a single relation type's entry in a Report snapshot.
type TypeReport struct {
	Type       string
	CurrentMax int
	Leaders    []string
}

// Report returns a snapshot of every relation type currently in use,
// in ascending byte order of type name, each with its leaders in
// ascending byte order of ID. The returned slices are owned by the
// caller; producing them costs time proportional to the output, not
// to the live population.
func (e *Engine) Report() []TypeReport {
	var out []TypeReport
	e.types.All(func(typ string, d *Descriptor) bool {
		out = append(out, TypeReport{
			Type:       typ,
			CurrentMax: d.CurrentMax,
			Leaders:    d.Leaders.Keys(),
		})
		return true
	})
	return out
}
