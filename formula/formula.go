/*
Package formula implements the abstract syntax tree for modal-propositional
formulas built over atoms, the boolean connectives and the two unary modal
operators □ (necessity) and ◇ (possibility).

Formulas are immutable once constructed; equality is structural.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2019–2026 The modalk Authors

*/
package formula

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Kind tags the variant a Formula node represents.
type Kind int

//go:generate stringer -type Kind

const (
	// KindAtom is a propositional variable.
	KindAtom Kind = iota
	// KindNot is unary negation.
	KindNot
	// KindAnd is an n-ary (n>=2) conjunction.
	KindAnd
	// KindOr is an n-ary (n>=2) disjunction.
	KindOr
	// KindImplies is binary implication.
	KindImplies
	// KindBox is the necessity operator □.
	KindBox
	// KindDiamond is the possibility operator ◇.
	KindDiamond
)

// Formula is a node in a modal-propositional formula tree. The zero value is
// not a valid Formula; use the constructor functions below.
type Formula struct {
	kind Kind
	atom string      // only meaningful for KindAtom
	args []*Formula  // operands, in source order
}

// Kind returns the node's tag.
func (f *Formula) Kind() Kind { return f.kind }

// Name returns the atom's identifier. Panics if f is not a KindAtom.
func (f *Formula) Name() string {
	if f.kind != KindAtom {
		panic("formula: Name() called on a non-atomic formula")
	}
	return f.atom
}

// Args returns the operand list. For Not/Box/Diamond it has length 1, for
// Implies length 2, for And/Or length >= 2, for Atom length 0.
func (f *Formula) Args() []*Formula { return f.args }

// Atom constructs an atomic formula with the given identifier.
func Atom(name string) *Formula {
	if name == "" {
		panic("formula: Atom() needs a non-empty name")
	}
	return &Formula{kind: KindAtom, atom: name}
}

// Not constructs the negation of phi.
func Not(phi *Formula) *Formula {
	return &Formula{kind: KindNot, args: []*Formula{phi}}
}

// And constructs an n-ary conjunction, n >= 2.
func And(phis ...*Formula) *Formula {
	if len(phis) < 2 {
		panic("formula: And() needs at least 2 operands")
	}
	return &Formula{kind: KindAnd, args: phis}
}

// Or constructs an n-ary disjunction, n >= 2.
func Or(phis ...*Formula) *Formula {
	if len(phis) < 2 {
		panic("formula: Or() needs at least 2 operands")
	}
	return &Formula{kind: KindOr, args: phis}
}

// Implies constructs phi -> psi.
func Implies(phi, psi *Formula) *Formula {
	return &Formula{kind: KindImplies, args: []*Formula{phi, psi}}
}

// Box constructs □phi.
func Box(phi *Formula) *Formula {
	return &Formula{kind: KindBox, args: []*Formula{phi}}
}

// Diamond constructs ◇phi.
func Diamond(phi *Formula) *Formula {
	return &Formula{kind: KindDiamond, args: []*Formula{phi}}
}

// Equals reports whether phi and psi are structurally identical.
func Equals(phi, psi *Formula) bool {
	if phi == psi {
		return true
	}
	if phi == nil || psi == nil {
		return false
	}
	if phi.kind != psi.kind {
		return false
	}
	if phi.kind == KindAtom {
		return phi.atom == psi.atom
	}
	if len(phi.args) != len(psi.args) {
		return false
	}
	for i, a := range phi.args {
		if !Equals(a, psi.args[i]) {
			return false
		}
	}
	return true
}

// Atoms returns the sorted, de-duplicated set of atom names occurring in phi.
func Atoms(phi *Formula) []string {
	seen := map[string]bool{}
	collectAtoms(phi, seen)
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

func collectAtoms(phi *Formula, into map[string]bool) {
	if phi.kind == KindAtom {
		into[phi.atom] = true
		return
	}
	for _, a := range phi.args {
		collectAtoms(a, into)
	}
}

// String renders phi in infix notation with minimal parenthesization:
// Box -> "[]", Diamond -> "<>", And -> "&", Or -> "|", Implies -> "->",
// Not -> "~".
func (f *Formula) String() string {
	var b strings.Builder
	writeFormula(&b, f, 0)
	return b.String()
}

// precedence levels, higher binds tighter. Unary modal/not operators bind
// tighter than any binary connective.
const (
	precImplies = 1
	precOr      = 2
	precAnd     = 3
	precUnary   = 4
)

func precedenceOf(f *Formula) int {
	switch f.kind {
	case KindImplies:
		return precImplies
	case KindOr:
		return precOr
	case KindAnd:
		return precAnd
	default:
		return precUnary
	}
}

func writeFormula(b *strings.Builder, f *Formula, parentPrec int) {
	switch f.kind {
	case KindAtom:
		b.WriteString(f.atom)
	case KindNot:
		b.WriteString("~")
		writeOperand(b, f.args[0], precUnary)
	case KindBox:
		b.WriteString("[]")
		writeOperand(b, f.args[0], precUnary)
	case KindDiamond:
		b.WriteString("<>")
		writeOperand(b, f.args[0], precUnary)
	case KindAnd:
		writeNary(b, f, "&", precAnd, parentPrec)
	case KindOr:
		writeNary(b, f, "|", precOr, parentPrec)
	case KindImplies:
		own := precedenceOf(f)
		needParens := own < parentPrec
		if needParens {
			b.WriteString("(")
		}
		writeOperand(b, f.args[0], precImplies+1)
		b.WriteString(" -> ")
		writeOperand(b, f.args[1], precImplies)
		if needParens {
			b.WriteString(")")
		}
	default:
		panic(fmt.Sprintf("formula: unknown kind %v in String()", f.kind))
	}
}

func writeNary(b *strings.Builder, f *Formula, sep string, own, parentPrec int) {
	needParens := own < parentPrec
	if needParens {
		b.WriteString("(")
	}
	for i, a := range f.args {
		if i > 0 {
			b.WriteString(" " + sep + " ")
		}
		writeOperand(b, a, own)
	}
	if needParens {
		b.WriteString(")")
	}
}

func writeOperand(b *strings.Builder, f *Formula, minPrec int) {
	writeFormula(b, f, minPrec)
}
