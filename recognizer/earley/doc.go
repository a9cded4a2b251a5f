/*
Package earley implements a chart-based recognizer for context-free grammars
augmented with numeric precedence constraints.

It is a recognizer, not a parser: it answers yes/no membership queries for a
prefix of the input read so far, in the tradition of Jay Earley's 1968
algorithm as popularized by Loup Vaillant's "Earley Parsing Explained" and,
closer to home, by this module's sibling `grammar` package, which compiles a
fluent grammar description down into the dotted-rule network this package
drives.

The chart maintains, per input position, a kernel of mid-recognition items
waiting on a non-terminal and a set of completed reductions. Prediction,
scanning and completion are driven to a fixpoint for each input symbol before
the next symbol is consumed. A reduction additionally carries the precedence
level of the production that produced it; a waiting item may carry a
precedence predicate inherited from the reference that registered it, and a
reduction only wakes that waiter if the predicate allows the reduction's
precedence. That interaction, more than the chart mechanics themselves, is
the part of this package worth reading carefully.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package earley
