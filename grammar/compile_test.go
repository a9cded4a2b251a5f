package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dotted-rule/earleyprec/recognizer/earley"
)

func TestRulesForFiltersByCallerPrecedence(t *testing.T) {
	b := NewBuilder("Levels")
	b.Define("expr", 0, Term('0'))
	b.Define("expr", 10, Term('1'))
	b.Define("expr", 20, Term('2'))
	g, err := b.Compile()
	assert.NoError(t, err)

	all := g.RulesFor("expr", nil)
	assert.Len(t, all, 3)

	below15 := earley.LessThan(15)
	filtered := g.RulesFor("expr", &below15)
	assert.Len(t, filtered, 2)
	for _, r := range filtered {
		assert.Less(t, r.Prec, 15)
	}
}

func TestRulesForUnknownNameReturnsNil(t *testing.T) {
	b := NewBuilder("G")
	b.Define("A", 0, Term('a'))
	g, err := b.Compile()
	assert.NoError(t, err)
	assert.Nil(t, g.RulesFor("nonexistent", nil))
}

func TestGrammarImplementsRuleNetwork(t *testing.T) {
	var _ earley.RuleNetwork = (*Grammar)(nil)
}

func TestNewRecognizerConvenienceWrapper(t *testing.T) {
	b := NewBuilder("G")
	b.Define("S", 0, Term('x'))
	g, err := b.Compile()
	assert.NoError(t, err)

	r, err := g.NewRecognizer("S")
	assert.NoError(t, err)
	r.Feed([]earley.Symbol{'x'})
	assert.True(t, r.Accepted())
}
