package orderedset

import "github.com/google/btree"

// degree controls the branching factor of the underlying B-tree. The sets
// this package holds are small (fan-in counts, leader ties) so a low
// degree keeps node allocation modest without mattering for asymptotics.
const degree = 32

// Set is an ordered set of string keys. The zero value is not usable;
// construct one with New. A Set is not safe for concurrent use, matching
// the rest of this module: relindex.Engine is driven by a single
// dispatcher goroutine.
type Set struct {
	tree *btree.BTreeG[string]
}

// New returns an empty Set.
func New() *Set {
	return &Set{
		tree: btree.NewG(degree, func(a, b string) bool { return a < b }),
	}
}

// Insert adds key to the set. It is idempotent: inserting a key already
// present leaves the set unchanged and reports false.
func (s *Set) Insert(key string) bool {
	_, existed := s.tree.ReplaceOrInsert(key)
	return !existed
}

// Remove deletes key from the set. It is a no-op if key is absent.
func (s *Set) Remove(key string) {
	s.tree.Delete(key)
}

// Contains reports whether key is a member of the set.
func (s *Set) Contains(key string) bool {
	return s.tree.Has(key)
}

// Size returns the number of elements in the set.
func (s *Set) Size() int {
	return s.tree.Len()
}

// Clear removes every element, leaving the set empty.
func (s *Set) Clear() {
	s.tree.Clear(false)
}

// All calls visit for every member in ascending byte order. Iteration
// stops early if visit returns false.
func (s *Set) All(visit func(key string) bool) {
	s.tree.Ascend(func(key string) bool {
		return visit(key)
	})
}

// Keys returns every member in ascending byte order. It allocates a new
// slice on each call; callers that only need to iterate should prefer All.
func (s *Set) Keys() []string {
	keys := make([]string, 0, s.tree.Len())
	s.All(func(key string) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}
