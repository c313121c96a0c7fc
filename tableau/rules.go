package tableau

import (
	"fmt"

	"github.com/ravndal/modalk/formula"
	"github.com/ravndal/modalk/world"
)

// RuleKind classifies how an SPF expands, per spec.md §4.3/§4.4.
type RuleKind int

const (
	// RuleLiteral means no expansion applies (phi is an Atom).
	RuleLiteral RuleKind = iota
	// RuleAlpha is a linear, non-branching, non-modal expansion.
	RuleAlpha
	// RuleDelta is a linear rule that allocates a fresh world (existential
	// modality: F,Box or T,Diamond).
	RuleDelta
	// RuleBeta is a branching rule: each fragment starts an alternative
	// branch.
	RuleBeta
	// RuleNu is a universal-modality rule, re-fired whenever new
	// successors of its world appear.
	RuleNu
)

// Fragment is one alternative continuation produced by a rule; a β-rule
// returns several, an α/δ/ν rule returns (conceptually) one.
type Fragment []SPF

// classify returns which rule table row an SPF falls under.
func classify(s SPF) RuleKind {
	k := s.Formula.Kind()
	if k == formula.KindAtom {
		return RuleLiteral
	}
	switch {
	case k == formula.KindNot:
		return RuleAlpha
	case k == formula.KindAnd && s.Sign == T:
		return RuleAlpha
	case k == formula.KindAnd && s.Sign == F:
		return RuleBeta
	case k == formula.KindOr && s.Sign == T:
		return RuleBeta
	case k == formula.KindOr && s.Sign == F:
		return RuleAlpha
	case k == formula.KindImplies && s.Sign == T:
		return RuleBeta
	case k == formula.KindImplies && s.Sign == F:
		return RuleAlpha
	case k == formula.KindBox && s.Sign == F:
		return RuleDelta
	case k == formula.KindDiamond && s.Sign == T:
		return RuleDelta
	case k == formula.KindBox && s.Sign == T:
		return RuleNu
	case k == formula.KindDiamond && s.Sign == F:
		return RuleNu
	}
	panic(fmt.Sprintf("tableau: unhandled formula shape %v with sign %v", k, s.Sign))
}

// expandAlpha expands a linear, non-modal SPF into its single fragment.
func expandAlpha(s SPF) Fragment {
	w := s.World
	switch phi := s.Formula; {
	case phi.Kind() == formula.KindNot:
		return Fragment{{Sign: s.Sign.Negate(), World: w, Formula: phi.Args()[0]}}
	case phi.Kind() == formula.KindAnd && s.Sign == T:
		frag := make(Fragment, 0, len(phi.Args()))
		for _, a := range phi.Args() {
			frag = append(frag, SPF{Sign: T, World: w, Formula: a})
		}
		return frag
	case phi.Kind() == formula.KindOr && s.Sign == F:
		frag := make(Fragment, 0, len(phi.Args()))
		for _, a := range phi.Args() {
			frag = append(frag, SPF{Sign: F, World: w, Formula: a})
		}
		return frag
	case phi.Kind() == formula.KindImplies && s.Sign == F:
		args := phi.Args()
		return Fragment{
			{Sign: T, World: w, Formula: args[0]},
			{Sign: F, World: w, Formula: args[1]},
		}
	}
	panic(fmt.Sprintf("tableau: expandAlpha called on non-alpha SPF %s", s))
}

// expandBeta expands a branching SPF into its list of alternative
// fragments, one per child branch.
func expandBeta(s SPF) []Fragment {
	w := s.World
	switch phi := s.Formula; {
	case phi.Kind() == formula.KindAnd && s.Sign == F:
		frags := make([]Fragment, 0, len(phi.Args()))
		for _, a := range phi.Args() {
			frags = append(frags, Fragment{{Sign: F, World: w, Formula: a}})
		}
		return frags
	case phi.Kind() == formula.KindOr && s.Sign == T:
		frags := make([]Fragment, 0, len(phi.Args()))
		for _, a := range phi.Args() {
			frags = append(frags, Fragment{{Sign: T, World: w, Formula: a}})
		}
		return frags
	case phi.Kind() == formula.KindImplies && s.Sign == T:
		args := phi.Args()
		return []Fragment{
			{{Sign: F, World: w, Formula: args[0]}},
			{{Sign: T, World: w, Formula: args[1]}},
		}
	}
	panic(fmt.Sprintf("tableau: expandBeta called on non-beta SPF %s", s))
}

// expandDelta expands an existential-modality SPF, creating a fresh world
// w2 := store.NewSuccessor(s.World) and pushing the subformula into it.
func expandDelta(s SPF, store *world.Store) (Fragment, world.Prefix) {
	w2 := store.NewSuccessor(s.World)
	phi := s.Formula.Args()[0]
	return Fragment{{Sign: s.Sign, World: w2, Formula: phi}}, w2
}

// expandNu computes the universal-modality obligation of s over the given
// current successors of s.World: one SPF per successor, all in a single
// fragment. The driver is responsible for filtering this down to the
// entries not yet on the branch (the "discharged" bookkeeping).
func expandNu(s SPF, successors []world.Prefix) Fragment {
	phi := s.Formula.Args()[0]
	frag := make(Fragment, 0, len(successors))
	for _, w2 := range successors {
		frag = append(frag, SPF{Sign: s.Sign, World: w2, Formula: phi})
	}
	return frag
}
