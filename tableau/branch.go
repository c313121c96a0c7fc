package tableau

import (
	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/ravndal/modalk/world"
)

// Branch is an ordered sequence of SPFs representing one candidate-model
// path through a tableau, together with the bookkeeping the Expansion
// Driver needs: the store of worlds reachable from this branch, which
// SPFs have already fired their α/β/δ rule, which successors each ν-rule
// has already discharged, and the literal contradiction state.
type Branch struct {
	spfs []SPF

	store *world.Store

	expandedOnce map[string]bool                    // α/β/δ: fires at most once
	nuDischarged map[string]*linkedhashset.Set       // ν key -> set of world.Prefix already pushed

	closure *closureState

	tree *ProofTree
	node string // id of this branch's current leaf in tree
}

// newBranch seeds a fresh tableau with one SPF at the root world.
func newBranch(seed SPF) *Branch {
	b := &Branch{
		store:        world.NewStore(),
		expandedOnce: make(map[string]bool),
		nuDischarged: make(map[string]*linkedhashset.Set),
		closure:      newClosureState(),
	}
	b.tree = newProofTree(seed)
	b.node = b.tree.root
	b.append(seed)
	return b
}

// append adds an SPF to the branch and updates the closure state.
func (b *Branch) append(s SPF) {
	b.spfs = append(b.spfs, s)
	b.closure.observe(s)
}

// appendAll adds every SPF of a fragment.
func (b *Branch) appendAll(frag Fragment) {
	for _, s := range frag {
		b.append(s)
	}
}

// Closed reports whether this branch contains a literal contradiction.
func (b *Branch) Closed() bool { return b.closure.closed }

// SPFs returns the branch's SPF sequence in the order they were added.
func (b *Branch) SPFs() []SPF {
	out := make([]SPF, len(b.spfs))
	copy(out, b.spfs)
	return out
}

// Store exposes the branch's accessibility store, e.g. for witness export.
func (b *Branch) Store() *world.Store { return b.store }

// ValuationAt returns the T/F atom sets recorded at w.
func (b *Branch) ValuationAt(w world.Prefix) (trueAtoms, falseAtoms []string) {
	return b.closure.valuationAt(w)
}

// Worlds returns every world this branch has a literal valuation for.
func (b *Branch) Worlds() []world.Prefix {
	return b.closure.worlds()
}

// recordLinear appends a child node to the proof tree for a linear (α, δ or
// ν) rule firing and advances this branch's current node.
func (b *Branch) recordLinear(frag Fragment) {
	child := b.tree.newNode(fragmentLabel(frag))
	b.tree.addChild(b.node, child)
	b.node = child
}

// fork splits the branch into n independent children, one per β-fragment.
// Each child receives its own copy of the store, bookkeeping and closure
// state, and a dedicated proof-tree child node -- sibling branches never
// observe each other's later δ-created worlds (spec.md §5).
func (b *Branch) fork(n int) []*Branch {
	children := make([]*Branch, n)
	for i := 0; i < n; i++ {
		childNode := b.tree.newNode("") // label filled in by caller via relabel
		b.tree.addChild(b.node, childNode)
		children[i] = &Branch{
			spfs:         append([]SPF(nil), b.spfs...),
			store:        b.store.Fork(),
			expandedOnce: cloneBoolMap(b.expandedOnce),
			nuDischarged: cloneSetMap(b.nuDischarged),
			closure:      b.closure.clone(),
			tree:         b.tree,
			node:         childNode,
		}
	}
	return children
}

func (b *Branch) relabelNode(id, label string) {
	b.tree.nodes[id].label = label
}

// dischargedSet returns (creating if needed) the set of worlds a ν-rule SPF
// has already pushed its obligation into.
func (b *Branch) dischargedSet(s SPF) *linkedhashset.Set {
	key := s.key()
	set, ok := b.nuDischarged[key]
	if !ok {
		set = linkedhashset.New()
		b.nuDischarged[key] = set
	}
	return set
}

// markNuDischarged records that s's obligation has now been pushed into
// every world in added.
func (b *Branch) markNuDischarged(s SPF, added Fragment) {
	set := b.dischargedSet(s)
	for _, a := range added {
		set.Add(a.World)
	}
}

func cloneBoolMap(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneSetMap(m map[string]*linkedhashset.Set) map[string]*linkedhashset.Set {
	out := make(map[string]*linkedhashset.Set, len(m))
	for k, set := range m {
		fresh := linkedhashset.New()
		for _, v := range set.Values() {
			fresh.Add(v)
		}
		out[k] = fresh
	}
	return out
}
