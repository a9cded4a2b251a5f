package grammar

import (
	"fmt"
	"strings"

	"github.com/dotted-rule/earleyprec/recognizer/earley"
)

// Expr is a grammar expression: a terminal, a non-terminal reference (plain
// or precedence-constrained), a concatenation, or an alternation. Expr
// values compose freely and are only ever consumed by Builder.Define and
// Builder.Compile.
type Expr interface {
	fmt.Stringer
	compile(next *earley.Node) *earley.Node
}

type termExpr struct {
	sym earley.Symbol
}

// Term matches a single input symbol, equivalent to Python's GrammarTerminal
// (auto-lifted there from any non-GrammarObject value via lift()).
func Term(sym earley.Symbol) Expr {
	return termExpr{sym: sym}
}

func (t termExpr) compile(next *earley.Node) *earley.Node {
	return earley.NewScan(t.sym, next)
}

func (t termExpr) String() string {
	return fmt.Sprintf("%q", symbolText(t.sym))
}

// symbolText renders a Symbol for pretty-printing. Runes and bytes print as
// the character they represent rather than their numeric value, since most
// grammars in this package's tests and demos are character-level.
func symbolText(sym earley.Symbol) string {
	switch v := sym.(type) {
	case rune:
		return string(v)
	case byte:
		return string(rune(v))
	default:
		return fmt.Sprint(v)
	}
}

type refExpr struct {
	name string
	pred *earley.Predicate // nil: unconstrained reference
}

// Ref is an unconstrained reference to non-terminal name, equivalent to
// Python's bare GrammarRule.
func Ref(name string) Expr {
	return refExpr{name: name}
}

// RefLT references name, accepting only a reduction whose declared
// precedence is strictly below p. Python's `(g.name < p)` plays the same role.
func RefLT(name string, p int) Expr { return constrainedRef(name, earley.LessThan(p)) }

// RefLE references name, accepting precedence at or below p. Python's
// `(g.name <= p)`.
func RefLE(name string, p int) Expr { return constrainedRef(name, earley.AtMost(p)) }

// RefGT references name, accepting precedence strictly above p. Python's
// `(g.name > p)`.
func RefGT(name string, p int) Expr { return constrainedRef(name, earley.GreaterThan(p)) }

// RefGE references name, accepting precedence at or above p. Python's
// `(g.name >= p)`.
func RefGE(name string, p int) Expr { return constrainedRef(name, earley.AtLeast(p)) }

// RefEQ references name, accepting only precedence exactly p. Python's
// `(g.name == p)`.
func RefEQ(name string, p int) Expr { return constrainedRef(name, earley.EqualTo(p)) }

// RefNE references name, accepting any precedence other than p. Python's
// `(g.name != p)`.
func RefNE(name string, p int) Expr { return constrainedRef(name, earley.NotEqualTo(p)) }

func constrainedRef(name string, pred earley.Predicate) Expr {
	return refExpr{name: name, pred: &pred}
}

func (r refExpr) compile(next *earley.Node) *earley.Node {
	if r.pred == nil {
		return earley.NewPredict(r.name, next)
	}
	return earley.NewConstrain(r.name, *r.pred, next)
}

func (r refExpr) String() string {
	if r.pred == nil {
		return r.name
	}
	return fmt.Sprintf("(%s %s)", r.name, r.pred)
}

type seqExpr struct {
	parts []Expr
}

// Seq concatenates its parts left to right, equivalent to Python's
// GrammarAnd (`+`). The compiled node chain wraps right to left, in keeping
// with the recognizer's own node construction order.
func Seq(parts ...Expr) Expr {
	return seqExpr{parts: parts}
}

func (s seqExpr) compile(next *earley.Node) *earley.Node {
	for i := len(s.parts) - 1; i >= 0; i-- {
		next = s.parts[i].compile(next)
	}
	return next
}

func (s seqExpr) String() string {
	parts := make([]string, len(s.parts))
	for i, p := range s.parts {
		parts[i] = p.String()
	}
	return strings.Join(parts, " + ")
}

type altExpr struct {
	parts []Expr
}

// Alt is an alternation of its parts, equivalent to Python's GrammarOr
// (`|`). Every alternative shares the same continuation node.
func Alt(parts ...Expr) Expr {
	return altExpr{parts: parts}
}

func (a altExpr) compile(next *earley.Node) *earley.Node {
	alts := make([]*earley.Node, len(a.parts))
	for i, p := range a.parts {
		alts[i] = p.compile(next)
	}
	return earley.NewBranch(alts...)
}

func (a altExpr) String() string {
	parts := make([]string, len(a.parts))
	for i, p := range a.parts {
		parts[i] = p.String()
	}
	return strings.Join(parts, " | ")
}
