package earley

import "github.com/emirpasic/gods/sets/hashset"

// reductionKey records that name has been fully recognized from position
// start to the current position at precedence prec. It is a plain
// comparable struct so it can live directly inside a gods hashset, which
// buckets by Go equality under the hood.
type reductionKey struct {
	Start int
	Name  string
	Prec  int
}

// RuleNetwork is the opaque handle a grammar compiler hands to a recognizer.
// RulesFor must return one start rule per production defining name, already
// filtered against callerPhi: when callerPhi is non-nil, only productions
// whose own declared precedence satisfies callerPhi.Allows(prec) are
// returned. A name with no productions (undefined or unreachable
// non-terminal) simply yields no rules. This package treats that as "can
// never reduce", not as an error.
type RuleNetwork interface {
	RulesFor(name string, callerPhi *Predicate) []StartRule
}

// StartRule is one production's entry point into the dotted-rule network,
// together with its own declared precedence.
type StartRule struct {
	Node *Node
	Prec int
}

// Chart is the per-input-position data structure: kernel items keyed by the
// non-terminal they await, and a set of completed reductions, one slot per
// position from 0 through the current position inclusive. Earlier slots stay
// live for the lifetime of the chart, since a reduction at position i may
// still need to look back into kernels[start] for any start <= i. The chart
// is an append-only arena, never rewound.
type Chart struct {
	kernels    []map[string][]Item
	reductions []*hashset.Set
	network    RuleNetwork
}

func newChart(network RuleNetwork) *Chart {
	return &Chart{
		kernels:    []map[string][]Item{{}},
		reductions: []*hashset.Set{hashset.New()},
		network:    network,
	}
}

// extend appends one fresh, empty slot, to be filled while consuming the
// next input symbol.
func (c *Chart) extend() {
	c.kernels = append(c.kernels, map[string][]Item{})
	c.reductions = append(c.reductions, hashset.New())
}

func (c *Chart) pos() int {
	return len(c.kernels) - 1
}

// registerKernel records that waiter is awaiting a reduction of name begun
// at start, to be resumed once one completes at pos. phi, if non-nil, is the
// Constrain (or synthetic top-level) node whose predicate the eventual
// reduction must satisfy to wake this waiter.
//
// If name has never been predicted at pos, this also asks the rule network
// for name's start rules, filtered by the caller's own predicate if the
// registration itself arrived via a Constrain node, and pushes one fresh
// item per rule onto q. That happens at most once per (pos, name) pair: the
// kernel map's key presence is the memoization flag, the same role a
// completed reduction set plays for registerReduction below.
func (c *Chart) registerKernel(name string, waiter *Node, start, pos int, phi *Node, q *workQueue) {
	slot := c.kernels[pos]
	if _, predicted := slot[name]; !predicted {
		slot[name] = nil
		var callerPhi *Predicate
		if phi != nil {
			callerPhi = &phi.Pred
		}
		for _, rule := range c.network.RulesFor(name, callerPhi) {
			q.push(Item{Start: pos, Node: rule.Node})
		}
	}
	slot[name] = append(slot[name], Item{Start: start, Node: waiter, Phi: phi})
}

// registerReduction records that name has reduced from start to pos at
// precedence prec, then wakes every kernel waiter whose predicate allows
// prec. Re-insertion of an already-seen triple is a no-op and does not
// rewake anything: this is the cycle-breaker that makes left-recursive
// grammars terminate.
func (c *Chart) registerReduction(name string, start, pos, prec int, q *workQueue) {
	key := reductionKey{Start: start, Name: name, Prec: prec}
	set := c.reductions[pos]
	if set.Contains(key) {
		return
	}
	set.Add(key)
	for _, waiter := range c.kernels[start][name] {
		if waiter.phiPredicate().Allows(prec) {
			q.push(waiter)
		}
	}
}

// scan parks an item whose dot sits before a terminal until the next input
// symbol is available. Precedence predicates are not propagated through
// terminals; they only ever apply to reductions of non-terminals, so the
// parked item carries none.
func (c *Chart) scan(node *Node, start int, t *transientSet) {
	t.add(Item{Start: start, Node: node})
}

// accepted reports whether some (0, startSymbol, p) has been reduced at the
// current position, and, if top is non-nil, whether p satisfies it.
func (c *Chart) accepted(startSymbol string, top *Predicate) bool {
	for _, v := range c.reductions[c.pos()].Values() {
		key := v.(reductionKey)
		if key.Start == 0 && key.Name == startSymbol && (top == nil || top.Allows(key.Prec)) {
			return true
		}
	}
	return false
}
