package tableau

import (
	"testing"

	"github.com/ravndal/modalk/formula"
	"github.com/ravndal/modalk/world"
)

func TestClassify(t *testing.T) {
	p, q := formula.Atom("p"), formula.Atom("q")
	cases := []struct {
		spf  SPF
		kind RuleKind
	}{
		{SPF{T, world.Root, p}, RuleLiteral},
		{SPF{T, world.Root, formula.Not(p)}, RuleAlpha},
		{SPF{F, world.Root, formula.Not(p)}, RuleAlpha},
		{SPF{T, world.Root, formula.And(p, q)}, RuleAlpha},
		{SPF{F, world.Root, formula.And(p, q)}, RuleBeta},
		{SPF{T, world.Root, formula.Or(p, q)}, RuleBeta},
		{SPF{F, world.Root, formula.Or(p, q)}, RuleAlpha},
		{SPF{T, world.Root, formula.Implies(p, q)}, RuleBeta},
		{SPF{F, world.Root, formula.Implies(p, q)}, RuleAlpha},
		{SPF{F, world.Root, formula.Box(p)}, RuleDelta},
		{SPF{T, world.Root, formula.Diamond(p)}, RuleDelta},
		{SPF{T, world.Root, formula.Box(p)}, RuleNu},
		{SPF{F, world.Root, formula.Diamond(p)}, RuleNu},
	}
	for _, c := range cases {
		if got := classify(c.spf); got != c.kind {
			t.Errorf("classify(%s) = %v, want %v", c.spf, got, c.kind)
		}
	}
}

func TestExpandAlphaAnd(t *testing.T) {
	p, q, r := formula.Atom("p"), formula.Atom("q"), formula.Atom("r")
	spf := SPF{T, world.Root, formula.And(p, q, r)}
	frag := expandAlpha(spf)
	if len(frag) != 3 {
		t.Fatalf("expected 3 conjuncts, got %d", len(frag))
	}
	for i, name := range []string{"p", "q", "r"} {
		if frag[i].Formula.Name() != name || frag[i].Sign != T || frag[i].World != world.Root {
			t.Errorf("frag[%d] = %s, want T 1 %s", i, frag[i], name)
		}
	}
}

func TestExpandBetaOrTrue(t *testing.T) {
	p, q := formula.Atom("p"), formula.Atom("q")
	spf := SPF{T, world.Root, formula.Or(p, q)}
	frags := expandBeta(spf)
	if len(frags) != 2 {
		t.Fatalf("expected 2 fragments, got %d", len(frags))
	}
	if frags[0][0].Formula.Name() != "p" || frags[1][0].Formula.Name() != "q" {
		t.Fatalf("unexpected fragment contents: %v", frags)
	}
}

func TestExpandDeltaCreatesWorld(t *testing.T) {
	p := formula.Atom("p")
	store := world.NewStore()
	spf := SPF{F, world.Root, formula.Box(p)}
	frag, w2 := expandDelta(spf, store)
	if w2 != "1.1" {
		t.Fatalf("expected fresh world 1.1, got %s", w2)
	}
	if len(frag) != 1 || frag[0].Sign != F || frag[0].World != w2 || frag[0].Formula.Name() != "p" {
		t.Fatalf("unexpected fragment: %v", frag)
	}
}

func TestExpandNuOverSuccessors(t *testing.T) {
	p := formula.Atom("p")
	store := world.NewStore()
	w1 := store.NewSuccessor(world.Root)
	w2 := store.NewSuccessor(world.Root)
	spf := SPF{T, world.Root, formula.Box(p)}
	frag := expandNu(spf, store.Successors(world.Root))
	if len(frag) != 2 || frag[0].World != w1 || frag[1].World != w2 {
		t.Fatalf("unexpected ν expansion: %v", frag)
	}
}
