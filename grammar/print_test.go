package grammar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringRendersOneLinePerProduction(t *testing.T) {
	b := NewBuilder("G")
	b.Define("S", 0, Alt(Term('x'), Term('y')))
	g, err := b.Compile()
	assert.NoError(t, err)

	s := g.String()
	assert.Contains(t, s, "G")
	assert.Contains(t, s, `S -> "x" | "y"`)
}

func TestStringAnnotatesNonZeroPrecedence(t *testing.T) {
	b := NewBuilder("G")
	b.Define("add", 20, Seq(RefLT("expr", 20), Term('+'), RefLE("expr", 20)))
	g, err := b.Compile()
	assert.NoError(t, err)

	assert.Contains(t, g.String(), "add[20] ->")
}

func TestDumpGroupsAlternativesByName(t *testing.T) {
	b := NewBuilder("G")
	b.Define("A", 0, Term('a'))
	b.Define("B", 0, Term('b'))
	b.Define("A", 0, Ref("B"))
	g, err := b.Compile()
	assert.NoError(t, err)

	var buf strings.Builder
	assert.NoError(t, g.Dump(&buf))
	out := buf.String()

	assert.Contains(t, out, "A ::=")
	assert.Contains(t, out, "B ::=")
	// A's two alternatives must be joined under its single paragraph.
	aLine := out[strings.Index(out, "A ::="):strings.Index(out, "B ::=")]
	assert.Contains(t, aLine, `"a"`)
	assert.Contains(t, aLine, "B")
}
