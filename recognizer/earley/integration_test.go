package earley_test

import (
	"testing"

	"github.com/dotted-rule/earleyprec/grammar"
	"github.com/dotted-rule/earleyprec/recognizer/earley"
)

func symbols(s string) []earley.Symbol {
	out := make([]earley.Symbol, 0, len(s))
	for _, r := range s {
		out = append(out, r)
	}
	return out
}

func mustAccept(t *testing.T, g *grammar.Grammar, start, input string, want bool) {
	t.Helper()
	r, err := g.NewRecognizer(start)
	if err != nil {
		t.Fatalf("NewRecognizer: %v", err)
	}
	r.Feed(symbols(input))
	if got := r.Accepted(); got != want {
		t.Errorf("%q: Accepted() = %v, want %v", input, got, want)
	}
}

// leftRecursiveA is spec.md scenario 1: A -> A "a" | "a" | B; B -> "b".
func leftRecursiveA(t *testing.T) *grammar.Grammar {
	b := grammar.NewBuilder("LeftRecursion")
	b.Define("A", 0, grammar.Seq(grammar.Ref("A"), grammar.Term('a')))
	b.Define("A", 0, grammar.Term('a'))
	b.Define("A", 0, grammar.Ref("B"))
	b.Define("B", 0, grammar.Term('b'))
	g, err := b.Compile()
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	return g
}

// rightRecursiveA is spec.md scenario 2: A -> "a" A | "a" | B; B -> "b".
func rightRecursiveA(t *testing.T) *grammar.Grammar {
	b := grammar.NewBuilder("RightRecursion")
	b.Define("A", 0, grammar.Seq(grammar.Term('a'), grammar.Ref("A")))
	b.Define("A", 0, grammar.Term('a'))
	b.Define("A", 0, grammar.Ref("B"))
	b.Define("B", 0, grammar.Term('b'))
	g, err := b.Compile()
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	return g
}

func TestLeftRecursionTerminatesAndAccepts(t *testing.T) {
	g := leftRecursiveA(t)
	for _, input := range []string{"a", "aa", "aaa", "b"} {
		mustAccept(t, g, "A", input, true)
	}
	// See DESIGN.md "the aba open question": a grammar carrying only the
	// left-recursive alternative (A -> A a) plus the two base cases can only
	// place a 'b' first, never after an 'a'. "aba" is correctly
	// rejected here. TestCombinedRecursionAcceptsAba below reproduces the
	// original source's actual (3-rule) grammar, where it is accepted.
	mustAccept(t, g, "A", "aba", false)
}

func TestRightRecursionTerminatesAndAccepts(t *testing.T) {
	g := rightRecursiveA(t)
	for _, input := range []string{"a", "aa", "aaa", "b"} {
		mustAccept(t, g, "A", input, true)
	}
	mustAccept(t, g, "A", "aba", false)
}

// TestCombinedRecursionAcceptsAba reproduces original_source/tests.py's
// GrammarTest verbatim: all three A-productions (left recursion, right
// recursion, and the "a"|B base case) registered on the same non-terminal.
// Under this grammar "aba" derives as B->"b", then A-> "a" A (prepend 'a' to
// get "ab"), then A -> A "a" (append 'a' to get "aba"). See DESIGN.md.
func TestCombinedRecursionAcceptsAba(t *testing.T) {
	b := grammar.NewBuilder("CombinedRecursion")
	b.Define("A", 0, grammar.Seq(grammar.Ref("A"), grammar.Term('a')))
	b.Define("A", 0, grammar.Seq(grammar.Term('a'), grammar.Ref("A")))
	b.Define("A", 0, grammar.Alt(grammar.Term('a'), grammar.Ref("B")))
	b.Define("B", 0, grammar.Term('b'))
	if got := b.RuleCount("A"); got != 3 {
		t.Fatalf("RuleCount(A) = %d, want 3", got)
	}
	g, err := b.Compile()
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	mustAccept(t, g, "A", "a", true)
	mustAccept(t, g, "A", "aa", true)
	mustAccept(t, g, "A", "aaa", true)
	mustAccept(t, g, "A", "aba", true)
}

// TestAlternationWithoutRecursion is spec.md scenario 3: S -> "x" | "y".
func TestAlternationWithoutRecursion(t *testing.T) {
	b := grammar.NewBuilder("Alternation")
	b.Define("S", 0, grammar.Alt(grammar.Term('x'), grammar.Term('y')))
	g, err := b.Compile()
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	mustAccept(t, g, "S", "x", true)
	mustAccept(t, g, "S", "y", true)
	mustAccept(t, g, "S", "", false)
	mustAccept(t, g, "S", "xy", false)
	mustAccept(t, g, "S", "z", false)
}

// arithmeticGrammar is spec.md scenario 4.
func arithmeticGrammar(t *testing.T) *grammar.Grammar {
	b := grammar.NewBuilder("Arithmetic")
	b.Define("expr", 0, grammar.Ref("num"))
	b.Define("expr", 0, grammar.Ref("sub"))
	b.Define("expr", 20, grammar.Ref("add"))
	b.Define("expr", 10, grammar.Ref("mul"))
	b.Define("sub", 0, grammar.Seq(grammar.Term('('), grammar.RefLE("expr", 100), grammar.Term(')')))
	b.Define("add", 20, grammar.Seq(grammar.RefLT("expr", 20), grammar.Term('+'), grammar.RefLE("expr", 20)))
	b.Define("mul", 10, grammar.Seq(grammar.RefLE("expr", 10), grammar.Term('*'), grammar.RefLT("expr", 10)))
	for _, d := range "0123456789" {
		b.Define("num", 0, grammar.Term(d))
	}
	g, err := b.Compile()
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	return g
}

func TestArithmeticPrecedence(t *testing.T) {
	g := arithmeticGrammar(t)
	mustAccept(t, g, "expr", "1*2+3*4", true)
	mustAccept(t, g, "expr", "1++2", false)
	mustAccept(t, g, "expr", "(1+2)*3", true)
}

// TestEmptyInput is spec.md scenario 5.
func TestEmptyInput(t *testing.T) {
	b := grammar.NewBuilder("JustA")
	b.Define("S", 0, grammar.Term('a'))
	g, err := b.Compile()
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	mustAccept(t, g, "S", "", false)
}

// TestDeterministicStreaming is spec.md scenario 6: feeding s1 then s2
// must yield the same Accepted() result as feeding s1+s2 in one call.
func TestDeterministicStreaming(t *testing.T) {
	g := arithmeticGrammar(t)
	whole := "1*2+3*4"

	rWhole, err := g.NewRecognizer("expr")
	if err != nil {
		t.Fatalf("NewRecognizer: %v", err)
	}
	rWhole.Feed(symbols(whole))

	rSplit, err := g.NewRecognizer("expr")
	if err != nil {
		t.Fatalf("NewRecognizer: %v", err)
	}
	rSplit.Feed(symbols(whole[:3]))
	rSplit.Feed(symbols(whole[3:]))

	if rWhole.Accepted() != rSplit.Accepted() {
		t.Errorf("streamed feed diverged from single feed: whole=%v split=%v",
			rWhole.Accepted(), rSplit.Accepted())
	}
	if !rWhole.Accepted() {
		t.Fatalf("expected %q to be accepted", whole)
	}
}

// TestRejectsMismatchedPrefix checks that a symbol matching no transient
// terminal is not an error, it just can never lead to acceptance.
func TestRejectsMismatchedPrefix(t *testing.T) {
	g := arithmeticGrammar(t)
	r, err := g.NewRecognizer("expr")
	if err != nil {
		t.Fatalf("NewRecognizer: %v", err)
	}
	r.Feed(symbols("1+"))
	r.Feed(symbols("*")) // '*' cannot follow '+' in this grammar
	if r.Accepted() {
		t.Errorf("expected %q to be rejected", "1+*")
	}
}
