package tableau

import (
	"testing"

	"github.com/ravndal/modalk/formula"
	"github.com/ravndal/modalk/world"
)

func TestClosureSameWorldContradiction(t *testing.T) {
	c := newClosureState()
	p := formula.Atom("p")
	if c.observe(SPF{T, world.Root, p}) {
		t.Fatalf("single literal should not close")
	}
	if !c.observe(SPF{F, world.Root, p}) {
		t.Fatalf("T p and F p at the same world should close")
	}
}

func TestClosureAcrossWorldsDoesNotClose(t *testing.T) {
	c := newClosureState()
	p := formula.Atom("p")
	w2 := world.Prefix("1.1")
	c.observe(SPF{T, world.Root, p})
	if c.observe(SPF{F, w2, p}) {
		t.Fatalf("disagreement across different worlds must not close the branch")
	}
}

func TestClosureIgnoresNonLiterals(t *testing.T) {
	c := newClosureState()
	p := formula.Atom("p")
	c.observe(SPF{T, world.Root, formula.Box(p)})
	if c.observe(SPF{F, world.Root, formula.Box(p)}) {
		t.Fatalf("T/F box formulas are not direct contradictions before expansion")
	}
}

func TestClosureCloneIsIndependent(t *testing.T) {
	c := newClosureState()
	p := formula.Atom("p")
	c.observe(SPF{T, world.Root, p})
	clone := c.clone()
	clone.observe(SPF{F, world.Root, p})
	if c.closed {
		t.Fatalf("original closure state must not see the clone's contradiction")
	}
	if !clone.closed {
		t.Fatalf("clone should be closed")
	}
}
