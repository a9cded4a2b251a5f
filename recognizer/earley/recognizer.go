package earley

import "fmt"

// Recognizer holds the chart, work queue, and transient set for a single
// parse of a single input. It is not reusable once input has begun feeding:
// create a fresh Recognizer for a new input, the same way a fresh Chart
// arena is expected per parse.
type Recognizer struct {
	chart      *Chart
	queue      *workQueue
	transients *transientSet
	start      string
	top        *Node // synthetic Constrain wrapping the caller's top-level predicate, or nil
}

// NewRecognizer creates a recognizer for start-symbol start, driven by
// network, optionally constrained at the top level by top (pass nil for an
// unconstrained parse, the overwhelming common case; top only matters to
// callers embedding a recognized start symbol as a precedence-constrained
// sub-derivation of something else).
func NewRecognizer(start string, network RuleNetwork, top *Predicate) (*Recognizer, error) {
	if network == nil {
		return nil, fmt.Errorf("earley: NewRecognizer: nil rule network")
	}
	if start == "" {
		return nil, fmt.Errorf("earley: NewRecognizer: empty start symbol")
	}
	r := &Recognizer{
		chart:      newChart(network),
		queue:      newWorkQueue(),
		transients: newTransientSet(),
		start:      start,
	}
	if top != nil {
		r.top = &Node{Kind: KindConstrain, NonTerminal: start, Pred: *top, Next: newSentinel()}
	}
	r.initialize()
	return r, nil
}

// initialize manually enters the start symbol at position 0 and drains to
// fixpoint, so the recognizer is ready for input before any symbol has been
// read.
func (r *Recognizer) initialize() {
	sentinel := newSentinel()
	if r.top != nil {
		sentinel = r.top.Next
	}
	r.chart.registerKernel(r.start, sentinel, 0, 0, r.top, r.queue)
	r.drain(0)
}

// Feed extends the chart by len(symbols) slots, advancing the recognizer one
// input symbol at a time.
func (r *Recognizer) Feed(symbols []Symbol) {
	for _, s := range symbols {
		r.advance(s)
	}
}

// advance consumes one input symbol: it extends the chart, wakes every
// parked Scan item whose terminal matches sym, clears the transient set, and
// drains the resulting work queue to a fixpoint.
func (r *Recognizer) advance(sym Symbol) {
	r.chart.extend()
	pos := r.chart.pos()
	for _, t := range r.transients.items() {
		if t.Node.Terminal == sym {
			r.queue.push(Item{Start: t.Start, Node: t.Node.Next, Phi: t.Phi})
		}
	}
	r.transients.reset()
	r.drain(pos)
}

// drain runs the per-position fixpoint: pop the work queue until empty,
// dispatching strictly on node kind. There are exactly five live cases plus
// the sentinel no-op, and that set is closed by design: a tagged switch, not
// an open interface with a virtual process method.
func (r *Recognizer) drain(pos int) {
	for {
		item, ok := r.queue.pop()
		if !ok {
			break
		}
		switch item.Node.Kind {
		case KindSentinel:
			// the start symbol's sentinel waiter, woken whenever the start
			// symbol reduces from position 0; nothing follows it.
		case KindScan:
			r.chart.scan(item.Node, item.Start, r.transients)
		case KindPredict:
			r.chart.registerKernel(item.Node.NonTerminal, item.Node.Next, item.Start, pos, nil, r.queue)
		case KindConstrain:
			r.chart.registerKernel(item.Node.NonTerminal, item.Node.Next, item.Start, pos, item.Node, r.queue)
		case KindBranch:
			for _, alt := range item.Node.Alternatives {
				r.queue.push(Item{Start: item.Start, Node: alt, Phi: item.Phi})
			}
		case KindReduce:
			r.chart.registerReduction(item.Node.Name, item.Start, pos, item.Node.Prec, r.queue)
		}
	}
	r.chart.dumpPosition(pos)
}

// Accepted reports whether the start symbol has been fully reduced over the
// full prefix read so far. It is pure and may be called any number of times.
func (r *Recognizer) Accepted() bool {
	var top *Predicate
	if r.top != nil {
		top = &r.top.Pred
	}
	return r.chart.accepted(r.start, top)
}
