package tableau

import (
	"context"
	"errors"
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// Sentinel errors surfaced by Run, per spec.md §7.
var (
	// ErrInconclusive is returned if the depth guard trips. Since K is
	// decidable, this indicates a bug and must never fire on correct
	// input.
	ErrInconclusive = errors.New("tableau: depth guard tripped, result inconclusive")
	// ErrTimedOut is returned if ctx is cancelled before the tableau
	// saturates.
	ErrTimedOut = errors.New("tableau: timed out")
	// ErrUnknownShape is returned if the formula AST contains a variant
	// the rule engine does not recognize (an internal invariant
	// violation -- should be unreachable for any formula.Formula value).
	ErrUnknownShape = errors.New("tableau: unknown formula shape")
)

// DefaultDepthGuard bounds the number of rule firings per Run call. It is a
// defensive limit only: K is decidable, so correct input never approaches
// it. See spec.md §4.4 and §7.
const DefaultDepthGuard = 200000

// Driver is the Expansion Driver: it drives a tableau to saturation or
// closure, enforcing the rule-ordering and ν-rule fairness discipline of
// spec.md §4.4.
type Driver struct {
	DepthGuard int
}

// NewDriver creates a Driver with the default depth guard.
func NewDriver() *Driver {
	return &Driver{DepthGuard: DefaultDepthGuard}
}

// Result is the outcome of running a tableau to completion: the open,
// saturated branches (empty means every branch closed) and the full proof
// tree for witness export.
type Result struct {
	Open []*Branch
	Tree *ProofTree
}

// Run seeds a tableau with seed and expands it to completion, following the
// priority order α < δ < β < ν (see spec.md §4.4). Branches fork
// independently at β-rules (spec.md §5); sibling branches never observe
// each other's δ-created worlds.
func (d *Driver) Run(ctx context.Context, seed SPF) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, fmt.Errorf("%w: %v", ErrUnknownShape, r)
		}
	}()

	root := newBranch(seed)
	pending := arraystack.New()
	pending.Push(root)
	var open []*Branch
	steps := 0

outer:
	for !pending.Empty() {
		v, _ := pending.Pop()
		br := v.(*Branch)
		for {
			select {
			case <-ctx.Done():
				return nil, ErrTimedOut
			default:
			}
			if br.Closed() {
				continue outer
			}
			steps++
			if steps > d.DepthGuard {
				tracer().Errorf("tableau: depth guard of %d tripped", d.DepthGuard)
				return nil, ErrInconclusive
			}
			spf, kind, found := br.selectNext()
			if !found {
				tracer().Debugf("tableau: branch saturated and open, %d SPFs", len(br.spfs))
				open = append(open, br)
				continue outer
			}
			switch kind {
			case RuleAlpha:
				frag := expandAlpha(spf)
				br.expandedOnce[spf.key()] = true
				br.appendAll(frag)
				br.recordLinear(frag)
			case RuleDelta:
				frag, w2 := expandDelta(spf, br.store)
				br.expandedOnce[spf.key()] = true
				br.appendAll(frag)
				br.recordLinear(frag)
				tracer().Debugf("tableau: delta rule on %s created world %s", spf, w2)
			case RuleBeta:
				fragments := expandBeta(spf)
				br.expandedOnce[spf.key()] = true
				children := br.fork(len(fragments))
				tracer().Infof("tableau: beta rule on %s forks into %d branches", spf, len(children))
				for i, frag := range fragments {
					children[i].appendAll(frag)
					br.relabelNode(children[i].node, fragmentLabel(frag))
					pending.Push(children[i])
				}
				continue outer
			case RuleNu:
				missing := br.missingNu(spf)
				br.appendAll(missing)
				br.recordLinear(missing)
				br.markNuDischarged(spf, missing)
			default:
				panic(fmt.Sprintf("tableau: unreachable rule kind %v", kind))
			}
		}
	}
	return &Result{Open: open, Tree: root.tree}, nil
}

// selectNext implements the priority order of spec.md §4.4 step 2.
func (b *Branch) selectNext() (SPF, RuleKind, bool) {
	if spf, ok := b.firstUnexpanded(RuleAlpha); ok {
		return spf, RuleAlpha, true
	}
	if spf, ok := b.firstUnexpanded(RuleDelta); ok {
		return spf, RuleDelta, true
	}
	if spf, ok := b.firstUnexpanded(RuleBeta); ok {
		return spf, RuleBeta, true
	}
	if spf, ok := b.firstEligibleNu(); ok {
		return spf, RuleNu, true
	}
	return SPF{}, RuleLiteral, false
}

func (b *Branch) firstUnexpanded(kind RuleKind) (SPF, bool) {
	for _, s := range b.spfs {
		if classify(s) == kind && !b.expandedOnce[s.key()] {
			return s, true
		}
	}
	return SPF{}, false
}

func (b *Branch) firstEligibleNu() (SPF, bool) {
	for _, s := range b.spfs {
		if classify(s) != RuleNu {
			continue
		}
		if len(b.missingNu(s)) > 0 {
			return s, true
		}
	}
	return SPF{}, false
}

// missingNu computes the ν-rule obligation of s over the branch's current
// successor set that has not yet been discharged onto the branch.
func (b *Branch) missingNu(s SPF) Fragment {
	successors := b.store.Successors(s.World)
	full := expandNu(s, successors)
	discharged := b.dischargedSet(s)
	var missing Fragment
	for _, candidate := range full {
		if discharged.Contains(candidate.World) {
			continue
		}
		missing = append(missing, candidate)
	}
	return missing
}
