// Package entity provides the entity registry and per-entity relation
// maps that back the relindex engine.
//
// An Entity is a uniquely-named vertex in the relation graph. The
// Registry owns every live Entity by reference; every other structure
// in this module (in-neighbor sets, leaders sets) holds a non-owning
// reference by ID and must have that reference severed before the
// Registry drops the record.
package entity
