package grammar

import "testing"

func TestRefStringIncludesPredicate(t *testing.T) {
	cases := []struct {
		expr Expr
		want string
	}{
		{Ref("expr"), "expr"},
		{RefLT("expr", 20), "(expr < 20)"},
		{RefLE("expr", 20), "(expr <= 20)"},
		{RefGT("expr", 5), "(expr > 5)"},
		{RefGE("expr", 5), "(expr >= 5)"},
		{RefEQ("expr", 1), "(expr == 1)"},
		{RefNE("expr", 1), "(expr != 1)"},
	}
	for _, c := range cases {
		if got := c.expr.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestSeqAndAltStringJoining(t *testing.T) {
	seq := Seq(Term('('), Ref("expr"), Term(')'))
	if got, want := seq.String(), `"(" + expr + ")"`; got != want {
		t.Errorf("Seq.String() = %q, want %q", got, want)
	}
	alt := Alt(Term('x'), Term('y'))
	if got, want := alt.String(), `"x" | "y"`; got != want {
		t.Errorf("Alt.String() = %q, want %q", got, want)
	}
}
