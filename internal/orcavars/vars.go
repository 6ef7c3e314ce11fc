// Package orcavars implements the variable store shared by the K and V
// operators: a glyph-to-glyph mapping that persists across ticks until
// the machine is reset.
//
// The design note in spec.md §9 flags that the Orca reference
// implementation mixes a hash map and an int-indexed array across
// revisions and asks implementers to pick one. This package picks the
// 36-entry indexed array, keyed by orcaglyph.ToInt — it avoids hashing
// entirely, matching the teacher's general preference for small fixed
// arrays over maps in hot per-tick paths (see internal/memory.Bus's
// fixed-size WRAM/cartridge arrays in the retrieved nitro-core-dx repo).
package orcavars

import "nitro-core-dx/internal/orcaglyph"

const slots = 36

// Store is the K/V operator variable table.
type Store struct {
	values [slots]byte
	set    [slots]bool
}

// New returns an empty variable store.
func New() *Store {
	return &Store{}
}

// Get returns the value bound to name, or the empty glyph if name is
// unbound or not a valid base-36 glyph.
func (s *Store) Get(name byte) byte {
	i := orcaglyph.ToInt(name, -1)
	if i < 0 || i >= slots || !s.set[i] {
		return orcaglyph.Empty
	}
	return s.values[i]
}

// Set binds name to value. A non-base-36 name is a no-op.
func (s *Store) Set(name, value byte) {
	i := orcaglyph.ToInt(name, -1)
	if i < 0 || i >= slots {
		return
	}
	s.values[i] = value
	s.set[i] = true
}

// Reset clears every binding.
func (s *Store) Reset() {
	for i := range s.set {
		s.set[i] = false
		s.values[i] = 0
	}
}
