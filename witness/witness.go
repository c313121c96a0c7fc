/*
Package witness provides a read-only snapshot of a finished tableau: the
proof tree built by the Expansion Driver, the accessibility relation of a
chosen branch, and that branch's per-world literal valuation. It exists
purely to feed external visualizers (spec.md §4.7); nothing in this package
renders graphics.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2019–2026 The modalk Authors

*/
package witness

import (
	"sort"

	"golang.org/x/exp/slices"

	"github.com/ravndal/modalk/formula"
	"github.com/ravndal/modalk/tableau"
	"github.com/ravndal/modalk/world"
)

// Node is a proof-tree node, serialized for external consumption.
type Node struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Children []string `json:"children"`
}

// Edge is a directed accessibility edge w -> w'.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Valuation is the literal valuation recorded for one world.
type Valuation struct {
	World string   `json:"world"`
	True  []string `json:"true"`
	False []string `json:"false"`
}

// Tree is the exported, read-only proof tree of a decision call.
type Tree struct {
	Root  string          `json:"root"`
	Nodes map[string]Node `json:"nodes"`
}

// ExportTree converts a tableau's internal proof tree into its
// serialization form.
func ExportTree(t *tableau.ProofTree) *Tree {
	out := &Tree{Root: t.Root(), Nodes: make(map[string]Node)}
	for _, id := range t.Nodes() {
		label, children := t.Node(id)
		out.Nodes[id] = Node{ID: id, Label: label, Children: append([]string(nil), children...)}
	}
	return out
}

// ExportAccessibility returns the accessibility edges of a branch, sorted
// for deterministic output.
func ExportAccessibility(b *tableau.Branch) []Edge {
	edges := b.Store().Edges()
	out := make([]Edge, len(edges))
	for i, e := range edges {
		out[i] = Edge{From: string(e.From), To: string(e.To)}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	return out
}

// ExportValuation returns the per-world literal valuation of a branch,
// sorted by world name for deterministic output.
func ExportValuation(b *tableau.Branch) []Valuation {
	worlds := b.Worlds()
	ws := make([]string, len(worlds))
	for i, w := range worlds {
		ws[i] = string(w)
	}
	slices.Sort(ws)
	out := make([]Valuation, 0, len(ws))
	for _, w := range ws {
		trueAtoms, falseAtoms := b.ValuationAt(world.Prefix(w))
		t, f := append([]string(nil), trueAtoms...), append([]string(nil), falseAtoms...)
		slices.Sort(t)
		slices.Sort(f)
		out = append(out, Valuation{World: w, True: t, False: f})
	}
	return out
}

// Model is a small read-only Kripke-model evaluator built over an exported
// witness snapshot: worlds not mentioned in the valuation default to false
// for any given atom (the usual open-world reading of an unexpanded
// tableau branch). It is a supplementary convenience for tests and callers
// that want to double-check a witness, not part of the decision result
// itself -- the core still only returns booleans (spec.md §1).
type Model struct {
	succ  map[string][]string
	truth map[string]map[string]bool
}

// NewModel builds a Model from exported accessibility edges and valuations.
func NewModel(edges []Edge, valuations []Valuation) *Model {
	m := &Model{succ: make(map[string][]string), truth: make(map[string]map[string]bool)}
	for _, e := range edges {
		m.succ[e.From] = append(m.succ[e.From], e.To)
	}
	for _, v := range valuations {
		set := make(map[string]bool, len(v.True))
		for _, a := range v.True {
			set[a] = true
		}
		m.truth[v.World] = set
	}
	return m
}

// IsTrue evaluates phi at world w under this model.
func (m *Model) IsTrue(phi *formula.Formula, w string) bool {
	switch phi.Kind() {
	case formula.KindAtom:
		return m.truth[w][phi.Name()]
	case formula.KindNot:
		return !m.IsTrue(phi.Args()[0], w)
	case formula.KindAnd:
		for _, a := range phi.Args() {
			if !m.IsTrue(a, w) {
				return false
			}
		}
		return true
	case formula.KindOr:
		for _, a := range phi.Args() {
			if m.IsTrue(a, w) {
				return true
			}
		}
		return false
	case formula.KindImplies:
		return !m.IsTrue(phi.Args()[0], w) || m.IsTrue(phi.Args()[1], w)
	case formula.KindBox:
		for _, w2 := range m.succ[w] {
			if !m.IsTrue(phi.Args()[0], w2) {
				return false
			}
		}
		return true
	case formula.KindDiamond:
		for _, w2 := range m.succ[w] {
			if m.IsTrue(phi.Args()[0], w2) {
				return true
			}
		}
		return false
	}
	panic("witness: unknown formula kind in Model.IsTrue")
}
