/*
Package tableau implements the prefixed signed tableau decision procedure
for modal logic K: the branch type, the rule engine, the closure checker
and the expansion driver.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2019–2026 The modalk Authors

*/
package tableau

import (
	"fmt"

	"github.com/cnf/structhash"
	"github.com/npillmayer/schuko/tracing"

	"github.com/ravndal/modalk/formula"
	"github.com/ravndal/modalk/world"
)

// tracer traces with key "modalk.tableau".
func tracer() tracing.Trace {
	return tracing.Select("modalk.tableau")
}

// Sign is the truth value a formula is asserted to have at a world.
type Sign bool

const (
	// T asserts the formula true at its world.
	T Sign = true
	// F asserts the formula false at its world.
	F Sign = false
)

// Negate flips a sign, used by the Not rule.
func (s Sign) Negate() Sign { return !s }

func (s Sign) String() string {
	if s {
		return "T"
	}
	return "F"
}

// SPF is a signed prefixed formula: "phi is asserted sign at world".
type SPF struct {
	Sign    Sign
	World   world.Prefix
	Formula *formula.Formula
}

// String renders an SPF as e.g. "T 1.2 []p".
func (s SPF) String() string {
	return fmt.Sprintf("%s %s %s", s.Sign, s.World, s.Formula)
}

// hashable is the structurally-stable projection of an SPF used as a
// dedup/bookkeeping key -- structhash needs exported fields, so we key on
// the SPF's printable form rather than its unexported Formula internals.
type hashable struct {
	Sign    string
	World   string
	Formula string
}

// key returns a canonical hash for s, used to track "already expanded"
// SPFs and ν-rule discharge sets without relying on pointer identity.
func (s SPF) key() string {
	h, err := structhash.Hash(hashable{
		Sign:    s.Sign.String(),
		World:   string(s.World),
		Formula: s.Formula.String(),
	}, 1)
	if err != nil {
		// structhash only fails on unhashable types; hashable is plain
		// strings, so this would indicate a library invariant violation.
		panic(fmt.Sprintf("tableau: structhash failed: %v", err))
	}
	return h
}

// IsLiteral reports whether phi is an Atom, i.e. s cannot be expanded
// further by any tableau rule.
func (s SPF) IsLiteral() bool {
	return s.Formula.Kind() == formula.KindAtom
}
