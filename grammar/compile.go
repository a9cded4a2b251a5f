package grammar

import (
	"fmt"

	"github.com/dotted-rule/earleyprec/recognizer/earley"
)

// rule is one compiled production: its entry node into the dotted-rule
// network, plus its own declared precedence.
type rule struct {
	head *earley.Node
	prec int
}

// Grammar is a compiled, immutable dotted-rule network, implementing
// earley.RuleNetwork. Build one with Builder.Compile.
type Grammar struct {
	name  string
	order []string // non-terminal names in first-definition order, for Dump
	rules map[string][]rule
	prods []production // retained for pretty-printing (String/Dump)
}

// Compile walks every registered production right-to-left, wrapping
// Scan/Predict/Constrain/Branch nodes around a Reduce leaf, the chain shape
// the recognizer's own node network expects, and returns the resulting
// network.
func (b *Builder) Compile() (*Grammar, error) {
	if len(b.prods) == 0 {
		return nil, fmt.Errorf("grammar: %q: no productions defined", b.name)
	}
	g := &Grammar{
		name:  b.name,
		rules: make(map[string][]rule, len(b.prods)),
		prods: append([]production(nil), b.prods...),
	}
	seen := make(map[string]bool, len(b.prods))
	for _, p := range b.prods {
		if !seen[p.name] {
			seen[p.name] = true
			g.order = append(g.order, p.name)
		}
		head := p.body.compile(earley.NewReduce(p.name, p.prec))
		tracer().Debugf("compiled %s[%d] -> %s", p.name, p.prec, head)
		g.rules[p.name] = append(g.rules[p.name], rule{head: head, prec: p.prec})
	}
	tracer().Infof("%q: compiled %d productions over %d non-terminals", g.name, len(b.prods), len(g.order))
	return g, nil
}

// RulesFor implements earley.RuleNetwork: one StartRule per production
// defining name, filtered by callerPhi against each production's own
// declared precedence.
func (g *Grammar) RulesFor(name string, callerPhi *earley.Predicate) []earley.StartRule {
	rs := g.rules[name]
	if len(rs) == 0 {
		return nil
	}
	out := make([]earley.StartRule, 0, len(rs))
	for _, r := range rs {
		if callerPhi != nil && !callerPhi.Allows(r.prec) {
			continue
		}
		out = append(out, earley.StartRule{Node: r.head, Prec: r.prec})
	}
	return out
}

// NewRecognizer is a convenience wrapper around earley.NewRecognizer,
// plugging this grammar in as the rule network for start symbol start.
func (g *Grammar) NewRecognizer(start string) (*earley.Recognizer, error) {
	return earley.NewRecognizer(start, g, nil)
}
