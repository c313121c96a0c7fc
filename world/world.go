/*
Package world implements the prefix allocator and accessibility store used
by a tableau to name worlds and record the accessibility relation discovered
during expansion.

A Prefix is a dotted sequence of positive integers such as "1", "1.1",
"1.2.1". The root world is always "1". Prefixes are opaque identifiers: they
carry no ordering semantics beyond identity.

Store is append-only within the scope of one branch. When a β-rule forks a
branch, the driver calls Fork to hand each child an independent copy, so
that a δ-rule firing on one sibling is never visible to another — see
tableau.Driver.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2019–2026 The modalk Authors

*/
package world

import (
	"fmt"

	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key "modalk.world".
func tracer() tracing.Trace {
	return tracing.Select("modalk.world")
}

// Prefix names a world within one tableau.
type Prefix string

// Root is the prefix of the seed world every tableau starts with.
const Root Prefix = "1"

// Store holds the accessibility relation built up while a tableau is
// expanded. The zero value is not usable; create one with NewStore.
type Store struct {
	succ map[Prefix]*linkedhashset.Set // w -> ordered set of w' with w -> w'
}

// NewStore creates a store seeded with the root world and no edges.
func NewStore() *Store {
	return &Store{succ: map[Prefix]*linkedhashset.Set{
		Root: linkedhashset.New(),
	}}
}

// NewSuccessor allocates a fresh prefix w.k, where k is one more than the
// number of successors w already has, records the edge w -> w.k, and
// returns the new prefix.
func (s *Store) NewSuccessor(w Prefix) Prefix {
	set := s.successorSet(w)
	k := set.Size() + 1
	fresh := Prefix(fmt.Sprintf("%s.%d", w, k))
	set.Add(fresh)
	s.succ[fresh] = linkedhashset.New()
	tracer().Debugf("world: new successor %s of %s", fresh, w)
	return fresh
}

// Successors returns the current set of prefixes w' such that w -> w', in
// the order they were created.
func (s *Store) Successors(w Prefix) []Prefix {
	set := s.successorSet(w)
	vals := set.Values()
	out := make([]Prefix, len(vals))
	for i, v := range vals {
		out[i] = v.(Prefix)
	}
	return out
}

// HasSuccessor reports whether w -> w2 is a recorded edge.
func (s *Store) HasSuccessor(w, w2 Prefix) bool {
	return s.successorSet(w).Contains(w2)
}

func (s *Store) successorSet(w Prefix) *linkedhashset.Set {
	set, ok := s.succ[w]
	if !ok {
		set = linkedhashset.New()
		s.succ[w] = set
	}
	return set
}

// Edges returns the full accessibility relation as (from, to) pairs. The
// order of the pairs is not defined; callers that need a stable order (such
// as witness export) sort the result themselves.
func (s *Store) Edges() []Edge {
	edges := make([]Edge, 0)
	for from, set := range s.succ {
		for _, to := range set.Values() {
			edges = append(edges, Edge{From: from, To: to.(Prefix)})
		}
	}
	return edges
}

// Edge is a directed accessibility edge w -> w'.
type Edge struct {
	From Prefix
	To   Prefix
}

// Fork returns an independent copy of the store. Mutating the copy (via
// NewSuccessor) is never visible to the original, and vice versa -- this is
// what makes sibling branches created by a β-rule unable to observe each
// other's δ-created worlds.
func (s *Store) Fork() *Store {
	clone := &Store{succ: make(map[Prefix]*linkedhashset.Set, len(s.succ))}
	for w, set := range s.succ {
		fresh := linkedhashset.New()
		for _, v := range set.Values() {
			fresh.Add(v)
		}
		clone.succ[w] = fresh
	}
	return clone
}
