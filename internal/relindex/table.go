package relindex

import "github.com/relindex/relindex/internal/orderedset"

// Descriptor tracks, for one relation type, the current maximum
// in-degree observed across live entities and the set of entities
// achieving it.
type Descriptor struct {
	CurrentMax int
	Leaders    *orderedset.Set
}

func newDescriptor() *Descriptor {
	return &Descriptor{Leaders: orderedset.New()}
}

// Table is the relation-type table (C4): an ordered mapping from
// relation-type name to its Descriptor. A descriptor is present here
// iff its CurrentMax is greater than zero, except transiently within a
// single in-flight command (see Engine.AddRelation); that transient
// state is never observable between commands.
type Table struct {
	descriptors map[string]*Descriptor
	order       *orderedset.Set
}

// NewTable returns an empty relation-type table.
func NewTable() *Table {
	return &Table{
		descriptors: make(map[string]*Descriptor),
		order:       orderedset.New(),
	}
}

// GetOrCreate returns the descriptor for typ, creating an empty one
// (CurrentMax 0, empty Leaders) if none exists yet.
func (t *Table) GetOrCreate(typ string) *Descriptor {
	if d, ok := t.descriptors[typ]; ok {
		return d
	}
	d := newDescriptor()
	t.descriptors[typ] = d
	t.order.Insert(typ)
	return d
}

// Get returns the descriptor for typ, or nil and false if absent.
func (t *Table) Get(typ string) (*Descriptor, bool) {
	d, ok := t.descriptors[typ]
	return d, ok
}

// Drop removes the descriptor for typ entirely.
func (t *Table) Drop(typ string) {
	delete(t.descriptors, typ)
	t.order.Remove(typ)
}

// Types returns every relation-type name currently in the table, in
// ascending byte order. Used by Engine.RemoveEntity to snapshot the
// type list before sweeping each type in turn.
func (t *Table) Types() []string {
	return t.order.Keys()
}

// All calls visit for every (type, descriptor) pair in ascending byte
// order of type name. Iteration stops early if visit returns false.
func (t *Table) All(visit func(typ string, d *Descriptor) bool) {
	t.order.All(func(typ string) bool {
		return visit(typ, t.descriptors[typ])
	})
}

// Empty reports whether the table holds no relation types at all.
func (t *Table) Empty() bool {
	return t.order.Size() == 0
}
