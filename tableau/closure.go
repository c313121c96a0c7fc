package tableau

import (
	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/ravndal/modalk/formula"
	"github.com/ravndal/modalk/world"
)

// closureState tracks, per world, the atoms asserted T and the atoms
// asserted F on a branch -- the branch is closed as soon as some atom
// lands in both sets for the same world.
type closureState struct {
	pos    map[world.Prefix]*linkedhashset.Set
	neg    map[world.Prefix]*linkedhashset.Set
	closed bool
}

func newClosureState() *closureState {
	return &closureState{
		pos: make(map[world.Prefix]*linkedhashset.Set),
		neg: make(map[world.Prefix]*linkedhashset.Set),
	}
}

// observe records a literal SPF and reports whether it closes the branch.
// Non-atomic SPFs are ignored (closure.md §4.5: only literal contradictions
// close a branch).
func (c *closureState) observe(s SPF) bool {
	if c.closed || s.Formula.Kind() != formula.KindAtom {
		return c.closed
	}
	name := s.Formula.Name()
	same, other := c.pos, c.neg
	if s.Sign == F {
		same, other = c.neg, c.pos
	}
	if set, ok := other[s.World]; ok && set.Contains(name) {
		c.closed = true
		tracer().Debugf("tableau: branch closed at world %s on atom %s", s.World, name)
		return true
	}
	set, ok := same[s.World]
	if !ok {
		set = linkedhashset.New()
		same[s.World] = set
	}
	set.Add(name)
	return false
}

// clone returns an independent copy, used when a β-rule forks a branch.
func (c *closureState) clone() *closureState {
	out := newClosureState()
	out.closed = c.closed
	for w, set := range c.pos {
		fresh := linkedhashset.New()
		for _, v := range set.Values() {
			fresh.Add(v)
		}
		out.pos[w] = fresh
	}
	for w, set := range c.neg {
		fresh := linkedhashset.New()
		for _, v := range set.Values() {
			fresh.Add(v)
		}
		out.neg[w] = fresh
	}
	return out
}

// valuationAt returns the true/false atom names recorded for w, for witness
// export, in the order they were first observed (not sorted).
func (c *closureState) valuationAt(w world.Prefix) (trueAtoms, falseAtoms []string) {
	if set, ok := c.pos[w]; ok {
		for _, v := range set.Values() {
			trueAtoms = append(trueAtoms, v.(string))
		}
	}
	if set, ok := c.neg[w]; ok {
		for _, v := range set.Values() {
			falseAtoms = append(falseAtoms, v.(string))
		}
	}
	return trueAtoms, falseAtoms
}

// worlds returns every world this closure state has seen a literal for.
func (c *closureState) worlds() []world.Prefix {
	seen := map[world.Prefix]bool{}
	for w := range c.pos {
		seen[w] = true
	}
	for w := range c.neg {
		seen[w] = true
	}
	out := make([]world.Prefix, 0, len(seen))
	for w := range seen {
		out = append(out, w)
	}
	return out
}
