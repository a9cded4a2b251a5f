package grammar

import (
	"fmt"
	"io"
	"strings"

	"github.com/dotted-rule/earleyprec/internal/iteratable"
)

// String renders the grammar the way Python's Grammar.__str__ does: a header
// line followed by one "name -> body" line per production, in definition
// order. Grammar pretty-printing is not the recognizer core's job; it lives
// here instead.
func (g *Grammar) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", g.name)
	for _, p := range g.prods {
		if p.prec == 0 {
			fmt.Fprintf(&b, "%s -> %s\n", p.name, p.body)
		} else {
			fmt.Fprintf(&b, "%s[%d] -> %s\n", p.name, p.prec, p.body)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// Dump writes one paragraph per distinct non-terminal, grouping its
// alternative productions together. Useful for grammars assembled out of
// many separate Define calls, where String's definition-order listing can
// interleave unrelated names.
func (g *Grammar) Dump(w io.Writer) error {
	names := iteratable.New()
	for _, name := range g.order {
		names.Add(name)
	}
	var err error
	names.Each(func(name string) {
		if err != nil {
			return
		}
		var alts []string
		for _, p := range g.prods {
			if p.name == name {
				alts = append(alts, p.body.String())
			}
		}
		_, err = fmt.Fprintf(w, "%s ::= %s\n", name, strings.Join(alts, "\n    |  "))
	})
	return err
}
