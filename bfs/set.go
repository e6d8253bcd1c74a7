package bfs

import "github.com/emirpasic/gods/maps/linkedhashmap"

// Set is an insertion-ordered collection of states deduplicated by Key.
// It lets Successors implementations return set semantics while keeping
// the expansion order, and therefore the search, deterministic.
type Set[S State[S]] struct {
	m *linkedhashmap.Map
}

// NewSet returns a Set holding the given states.
func NewSet[S State[S]](states ...S) *Set[S] {
	s := &Set[S]{m: linkedhashmap.New()}
	s.Add(states...)
	return s
}

// Add inserts states whose keys are not yet present. The first state
// added for a key is the one kept.
func (s *Set[S]) Add(states ...S) {
	for _, st := range states {
		key := st.Key()
		if _, found := s.m.Get(key); !found {
			s.m.Put(key, st)
		}
	}
}

// Contains reports whether a state with the same key is present.
func (s *Set[S]) Contains(state S) bool {
	_, found := s.m.Get(state.Key())
	return found
}

// Len returns the number of distinct states.
func (s *Set[S]) Len() int {
	return s.m.Size()
}

// Slice returns the states in insertion order.
func (s *Set[S]) Slice() []S {
	out := make([]S, 0, s.m.Size())
	for _, v := range s.m.Values() {
		out = append(out, v.(S))
	}
	return out
}
