package witness_test

import (
	"context"
	"testing"

	"github.com/ravndal/modalk/formula"
	"github.com/ravndal/modalk/tableau"
	"github.com/ravndal/modalk/witness"
	"github.com/ravndal/modalk/world"
)

func TestExportAndModelRoundTrip(t *testing.T) {
	p := formula.Atom("p")
	// []p & ~<>p: satisfiable with a world that has no successors.
	phi := formula.And(formula.Box(p), formula.Not(formula.Diamond(p)))
	d := tableau.NewDriver()
	res, err := d.Run(context.Background(), tableau.SPF{Sign: tableau.T, World: world.Root, Formula: phi})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(res.Open) == 0 {
		t.Fatalf("expected an open branch")
	}
	br := res.Open[0]

	tree := witness.ExportTree(res.Tree)
	if tree.Root == "" || len(tree.Nodes) == 0 {
		t.Fatalf("expected a non-empty proof tree")
	}

	edges := witness.ExportAccessibility(br)
	valuations := witness.ExportValuation(br)
	model := witness.NewModel(edges, valuations)
	if !model.IsTrue(phi, string(world.Root)) {
		t.Fatalf("exported witness model must satisfy the seeding formula")
	}
}

func TestModelSatisfiesKAxiomWitness(t *testing.T) {
	p, q := formula.Atom("p"), formula.Atom("q")
	// <>(p | q) -> (<>p | <>q), negated, must be unsatisfiable: no witness.
	phi := formula.Not(formula.Implies(
		formula.Diamond(formula.Or(p, q)),
		formula.Or(formula.Diamond(p), formula.Diamond(q)),
	))
	d := tableau.NewDriver()
	res, err := d.Run(context.Background(), tableau.SPF{Sign: tableau.T, World: world.Root, Formula: phi})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(res.Open) != 0 {
		t.Fatalf("expected no open branches: <>(p|q) -> (<>p|<>q) is valid")
	}
}
