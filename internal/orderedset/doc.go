// Package orderedset provides an ordered set of string keys with
// logarithmic point operations and in-order traversal.
//
// It backs both the per-(target, relation-type) in-neighbor sets and
// the per-relation-type leaders sets in internal/relindex: anywhere
// the index needs to insert, remove, test membership, and walk a
// small dynamic set of entity IDs in ascending byte order.
package orderedset
