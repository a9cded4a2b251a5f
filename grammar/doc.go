/*
Package grammar provides a fluent combinator surface for describing
context-free grammars with per-rule precedence annotations, and compiles the
result down into the dotted-rule network that package earley drives.

This is the "external collaborator" earley.RuleNetwork assumes exists but
deliberately does not specify: building it is a straightforward tree-walk,
not the interesting part of this module. The surface mirrors the Python
GrammarObject/GrammarAnd/GrammarOr/GrammarConstraint hierarchy this module
was distilled from, with its `+`, `|`, `<` operator overloads replaced by
named Go constructors, since Go has no operator overloading:

	Python                          Go
	lift("a") | "b" | "c"           Alt(Term("a"), Term("b"), Term("c"))
	g.expr + "+" + g.expr           Seq(Ref("expr"), Term("+"), Ref("expr"))
	(g.expr < 20) + "+"             Seq(RefLT("expr", 20), Term("+"))
	g.add[20] = ...                 b.Define("add", 20, ...)
	g.number = ...                  b.DefineDefault("number", ...)

A Builder collects productions; Compile walks each production's body
right-to-left, starting from a Reduce leaf, wrapping Scan/Predict/Constrain/
Branch nodes around it the way the recognizer's own node chain expects, and
returns a *Grammar implementing earley.RuleNetwork.
*/
package grammar
