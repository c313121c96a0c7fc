package formula_test

import (
	"testing"

	"github.com/ravndal/modalk/formula"
)

func TestEqualsStructural(t *testing.T) {
	p := formula.Atom("p")
	q := formula.Atom("q")
	f1 := formula.Implies(formula.Box(p), formula.Diamond(q))
	f2 := formula.Implies(formula.Box(formula.Atom("p")), formula.Diamond(formula.Atom("q")))
	if !formula.Equals(f1, f2) {
		t.Fatalf("expected structurally equal formulas to be equal")
	}
	f3 := formula.Implies(formula.Box(p), formula.Box(q))
	if formula.Equals(f1, f3) {
		t.Fatalf("expected different formulas to compare unequal")
	}
}

func TestAtomsSortedAndDeduped(t *testing.T) {
	p, q := formula.Atom("p"), formula.Atom("q")
	f := formula.And(formula.Or(q, p), formula.Not(p))
	got := formula.Atoms(f)
	want := []string{"p", "q"}
	if len(got) != len(want) {
		t.Fatalf("Atoms() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Atoms() = %v, want %v", got, want)
		}
	}
}

func TestString(t *testing.T) {
	p, q := formula.Atom("p"), formula.Atom("q")
	cases := []struct {
		f    *formula.Formula
		want string
	}{
		{formula.Atom("p"), "p"},
		{formula.Not(p), "~p"},
		{formula.Box(p), "[]p"},
		{formula.Diamond(p), "<>p"},
		{formula.And(p, q), "p & q"},
		{formula.Or(p, q), "p | q"},
		{formula.Implies(p, q), "p -> q"},
		{formula.Implies(formula.And(p, q), p), "p & q -> p"},
		{formula.Box(formula.Implies(p, q)), "[](p -> q)"},
		{formula.Implies(formula.Box(formula.Implies(p, q)), formula.Implies(formula.Box(p), formula.Box(q))),
			"[](p -> q) -> []p -> []q"},
	}
	for _, c := range cases {
		if got := c.f.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestAndRequiresAtLeastTwoOperands(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected And() with one operand to panic")
		}
	}()
	formula.And(formula.Atom("p"))
}
