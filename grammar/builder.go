package grammar

// production is one right-hand side registered under a name, at a given
// precedence. Python's Grammar._rules tuple (name, p, val) plays the same role.
type production struct {
	name string
	prec int
	body Expr
}

// Builder collects productions for a single grammar before compilation.
// Calling Define twice for the same name appends a second alternative
// production, exactly the way repeated Python attribute assignment
// (g.A = ...; g.A = ...) appends to Grammar._rules rather than overwriting.
type Builder struct {
	name  string
	prods []production
}

// NewBuilder starts a grammar named name. The name is cosmetic (used only in
// String/Dump output); it plays no role in compilation.
func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// Define registers one production: name, at precedence prec, with body.
func (b *Builder) Define(name string, prec int, body Expr) *Builder {
	b.prods = append(b.prods, production{name: name, prec: prec, body: body})
	return b
}

// DefineDefault registers a production at precedence 0, the default a bare
// Python attribute assignment (`g.number = ...`) gets.
func (b *Builder) DefineDefault(name string, body Expr) *Builder {
	return b.Define(name, 0, body)
}

// RuleCount returns the number of productions registered so far under name.
// Grounded in original_source/tests.py's pre-compile introspection
// (`len(g._rules.predict("A"))`), useful for grammar unit tests that want to
// assert a grammar was assembled as intended before ever compiling it.
func (b *Builder) RuleCount(name string) int {
	n := 0
	for _, p := range b.prods {
		if p.name == name {
			n++
		}
	}
	return n
}
