package earley

import (
	"github.com/cnf/structhash"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'precedence.earley', following the teacher's
// per-package tracer() convention (tracing.Select("gorgo.lr") et al.).
func tracer() tracing.Trace {
	return tracing.Select("precedence.earley")
}

// dumpPosition logs the chart slot at pos once a fixpoint has been reached,
// mirroring lr/earley's dumpState/itemSetString debug helpers.
func (c *Chart) dumpPosition(pos int) {
	tracer().Debugf("--- chart[%03d] -----------------------------------", pos)
	for name, waiters := range c.kernels[pos] {
		for _, w := range waiters {
			tracer().Debugf("  kernel %-10s %s  (%s)", name, w, debugKey(w, pos))
		}
	}
	for _, v := range c.reductions[pos].Values() {
		key := v.(reductionKey)
		tracer().Debugf("  reduction (%d, %s, %d)", key.Start, key.Name, key.Prec)
	}
}

// debugKey builds a stable correlation key for a (position, item) pair, the
// same way lr/earley/earley.go uses structhash to key its backlinks map. It
// exists purely to make two log lines about "the same" waiter recognizable
// across positions without printing pointer addresses.
func debugKey(it Item, pos int) string {
	h, err := structhash.Hash(struct {
		Start int
		Kind  Kind
		Pos   int
	}{it.Start, it.Node.Kind, pos}, 1)
	if err != nil {
		return "?"
	}
	return h
}
