package orderedset

import (
	"reflect"
	"testing"
)

func TestSetInsert(t *testing.T) {
	t.Run("InsertNew", func(t *testing.T) {
		s := New()
		if inserted := s.Insert("b"); !inserted {
			t.Error("expected first insert to report true")
		}
		if s.Size() != 1 {
			t.Errorf("expected size 1, got %d", s.Size())
		}
	})

	t.Run("InsertDuplicateIsIdempotent", func(t *testing.T) {
		s := New()
		s.Insert("a")
		if inserted := s.Insert("a"); inserted {
			t.Error("expected duplicate insert to report false")
		}
		if s.Size() != 1 {
			t.Errorf("expected size 1 after duplicate insert, got %d", s.Size())
		}
	})
}

func TestSetRemove(t *testing.T) {
	s := New()
	s.Insert("a")
	s.Insert("b")

	s.Remove("a")
	if s.Contains("a") {
		t.Error("expected a to be removed")
	}
	if s.Size() != 1 {
		t.Errorf("expected size 1, got %d", s.Size())
	}

	// Removing an absent key is a no-op.
	s.Remove("z")
	if s.Size() != 1 {
		t.Errorf("expected size to stay 1 after removing absent key, got %d", s.Size())
	}
}

func TestSetContains(t *testing.T) {
	s := New()
	s.Insert("x")
	if !s.Contains("x") {
		t.Error("expected x to be present")
	}
	if s.Contains("y") {
		t.Error("expected y to be absent")
	}
}

func TestSetOrderedTraversal(t *testing.T) {
	s := New()
	for _, key := range []string{"delta", "alpha", "charlie", "bravo"} {
		s.Insert(key)
	}

	got := s.Keys()
	want := []string{"alpha", "bravo", "charlie", "delta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSetClear(t *testing.T) {
	s := New()
	s.Insert("a")
	s.Insert("b")
	s.Clear()

	if s.Size() != 0 {
		t.Errorf("expected size 0 after clear, got %d", s.Size())
	}
	if s.Contains("a") {
		t.Error("expected a to be gone after clear")
	}
}

func TestSetAllEarlyStop(t *testing.T) {
	s := New()
	for _, key := range []string{"a", "b", "c", "d"} {
		s.Insert(key)
	}

	var seen []string
	s.All(func(key string) bool {
		seen = append(seen, key)
		return key != "b"
	})

	want := []string{"a", "b"}
	if !reflect.DeepEqual(seen, want) {
		t.Errorf("got %v, want %v", seen, want)
	}
}

func TestSetByteWiseOrdering(t *testing.T) {
	// Lexicographic by byte value, not by locale or case-folding.
	s := New()
	for _, key := range []string{"B", "a", "Z", "1"} {
		s.Insert(key)
	}

	got := s.Keys()
	want := []string{"1", "B", "Z", "a"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
