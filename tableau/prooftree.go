package tableau

import "fmt"

// proofNode is one node of the proof tree: an SPF (or small group, for
// linear rules) together with its children. Shared across all branches of
// one Driver.Run call -- see ProofTree.
type proofNode struct {
	id       string
	label    string
	children []string
}

// ProofTree records the expansion history of one decision call. It is built
// once and handed, read-only, to package witness for external
// visualization (spec.md §4.7).
type ProofTree struct {
	nodes   map[string]*proofNode
	root    string
	counter int
}

func newProofTree(seed SPF) *ProofTree {
	t := &ProofTree{nodes: make(map[string]*proofNode)}
	t.root = t.newNode(seed.String())
	return t
}

func (t *ProofTree) newNode(label string) string {
	t.counter++
	id := fmt.Sprintf("n%d", t.counter)
	t.nodes[id] = &proofNode{id: id, label: label}
	return id
}

func (t *ProofTree) addChild(parent, child string) {
	p := t.nodes[parent]
	p.children = append(p.children, child)
}

// Root returns the id of the seed SPF's node.
func (t *ProofTree) Root() string { return t.root }

// Node returns the label and children of a node id.
func (t *ProofTree) Node(id string) (label string, children []string) {
	n := t.nodes[id]
	return n.label, n.children
}

// Nodes returns every node id currently in the tree.
func (t *ProofTree) Nodes() []string {
	out := make([]string, 0, len(t.nodes))
	for id := range t.nodes {
		out = append(out, id)
	}
	return out
}

func fragmentLabel(frag Fragment) string {
	if len(frag) == 0 {
		return "(closed, no expansion)"
	}
	s := ""
	for i, spf := range frag {
		if i > 0 {
			s += "; "
		}
		s += spf.String()
	}
	return s
}
