package modalk

import (
	"context"
	"fmt"

	"github.com/ravndal/modalk/formula"
	"github.com/ravndal/modalk/parse"
	"github.com/ravndal/modalk/tableau"
	"github.com/ravndal/modalk/witness"
	"github.com/ravndal/modalk/world"
)

// Parse parses text into a formula using this surface grammar: atoms,
// unary ~, []/□, <>/♢ (binding tighter than any
// binary connective, ~ tightest of all), and binary ->, |, & (weakest to
// strongest, -> right-associative). It returns a *parse.SyntaxError on
// malformed input.
func Parse(text string) (*formula.Formula, error) {
	return parse.Parse(text)
}

// Result is the full outcome of deciding a formula: whether it is valid,
// whether it is satisfiable, and a witness taken from the satisfiability
// tableau: its proof tree always, and the accessibility edges and valuation
// of its first open branch when there is one. The validity tableau
// contributes no witness.
type Result struct {
	Valid         bool
	Satisfiable   bool
	Tree          *witness.Tree
	Accessibility []witness.Edge
	Valuation     []witness.Valuation
}

// IsSatisfiable decides whether phi has a model: it seeds a tableau with
// T phi at the root world and checks whether any branch saturates open.
func IsSatisfiable(ctx context.Context, phi *formula.Formula) (bool, error) {
	res, err := run(ctx, tableau.T, phi)
	if err != nil {
		return false, err
	}
	return len(res.Open) > 0, nil
}

// IsValid decides whether phi holds in every model of every frame: it seeds
// a tableau with F phi (a refutation attempt) and checks that every branch
// closes.
func IsValid(ctx context.Context, phi *formula.Formula) (bool, error) {
	res, err := run(ctx, tableau.F, phi)
	if err != nil {
		return false, err
	}
	return len(res.Open) == 0, nil
}

// Decide runs both the satisfiability and validity tableaux and returns a
// Result carrying a witness for the satisfiability tableau's open branch,
// if any (every valid formula is satisfiable, so a witness also exists for
// valid input).
func Decide(ctx context.Context, phi *formula.Formula) (Result, error) {
	validRes, err := run(ctx, tableau.F, phi)
	if err != nil {
		return Result{}, fmt.Errorf("modalk: validity tableau: %w", err)
	}
	valid := len(validRes.Open) == 0

	satRes, err := run(ctx, tableau.T, phi)
	if err != nil {
		return Result{}, fmt.Errorf("modalk: satisfiability tableau: %w", err)
	}
	satisfiable := len(satRes.Open) > 0

	out := Result{Valid: valid, Satisfiable: satisfiable, Tree: witness.ExportTree(satRes.Tree)}
	if satisfiable {
		br := satRes.Open[0]
		out.Accessibility = witness.ExportAccessibility(br)
		out.Valuation = witness.ExportValuation(br)
	}
	return out, nil
}

func run(ctx context.Context, sign tableau.Sign, phi *formula.Formula) (*tableau.Result, error) {
	d := tableau.NewDriver()
	return d.Run(ctx, tableau.SPF{Sign: sign, World: world.Root, Formula: phi})
}
