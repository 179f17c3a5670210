// Package relindex implements the incremental maximum-in-degree index:
// the relation-type table (C4) and the addrel/delrel/delent/report
// logic that keeps it consistent against each entity's in-neighbor
// sets (C5).
//
// Engine is the single stateful object in the program. Every mutation
// — AddEntity, AddRelation, RemoveRelation, RemoveEntity — runs in
// time proportional to the logarithm of the affected fan-in, except
// for the recompute triggered when a tie at the current maximum is
// broken downward (RemoveRelation's sole-leader case, and every call
// in RemoveEntity), which is a linear scan over live entities.
package relindex
