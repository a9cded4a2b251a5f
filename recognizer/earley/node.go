package earley

import "fmt"

// Symbol is an input symbol. The core is agnostic to its concrete type:
// characters, lexemes, or token values all work, as long as equality (==)
// is meaningful for it.
type Symbol = interface{}

// Kind tags the five closed node variants of the dotted-rule network. There
// is no open extension point here: a sixth kind would require touching every
// switch in this package, which is the point. Dispatch stays a flat switch,
// never an interface with a process method per node.
type Kind uint8

const (
	// KindSentinel marks the synthetic node installed at recognizer
	// start-up so that the start symbol's own kernel slot is non-empty
	// before any real rule has fired. No rule advances into it; it is woken
	// only when the start symbol reduces from position 0, and dispatch
	// treats it as a no-op.
	KindSentinel Kind = iota
	KindScan
	KindPredict
	KindConstrain
	KindBranch
	KindReduce
)

func (k Kind) String() string {
	switch k {
	case KindSentinel:
		return "sentinel"
	case KindScan:
		return "scan"
	case KindPredict:
		return "predict"
	case KindConstrain:
		return "constrain"
	case KindBranch:
		return "branch"
	case KindReduce:
		return "reduce"
	default:
		return "unknown"
	}
}

// Node is one position-in-a-production of the compiled dotted-rule network.
// Nodes are built once by a grammar compiler (see package grammar) and are
// immutable and freely shared by reference afterwards; a successor node is
// simply a re-entry point reached from every item that completes up to it.
//
// Which fields are meaningful depends on Kind:
//
//	Scan:      Terminal, Next
//	Predict:   NonTerminal, Next
//	Constrain: NonTerminal, Pred, Next
//	Branch:    Alternatives
//	Reduce:    Name, Prec
type Node struct {
	Kind Kind

	Terminal    Symbol // Scan
	NonTerminal string // Predict, Constrain
	Pred        Predicate
	Next        *Node // Scan, Predict, Constrain

	Alternatives []*Node // Branch, ordered

	Name string // Reduce
	Prec int    // Reduce
}

// NewScan builds a node whose dot sits immediately before terminal t.
func NewScan(t Symbol, next *Node) *Node {
	return &Node{Kind: KindScan, Terminal: t, Next: next}
}

// NewPredict builds a node whose dot sits before non-terminal name, with no
// precedence filter on its eventual reduction.
func NewPredict(name string, next *Node) *Node {
	return &Node{Kind: KindPredict, NonTerminal: name, Next: next}
}

// NewConstrain builds a node whose dot sits before non-terminal name, only
// accepting a reduction of name whose declared precedence satisfies pred.
func NewConstrain(name string, pred Predicate, next *Node) *Node {
	return &Node{Kind: KindConstrain, NonTerminal: name, Pred: pred, Next: next}
}

// NewBranch builds a node at an alternation; each alternative is itself a
// dotted-rule node to continue from.
func NewBranch(alternatives ...*Node) *Node {
	return &Node{Kind: KindBranch, Alternatives: alternatives}
}

// NewReduce builds a node at the end of a production: reaching it emits a
// reduction of name at precedence prec.
func NewReduce(name string, prec int) *Node {
	return &Node{Kind: KindReduce, Name: name, Prec: prec}
}

func newSentinel() *Node {
	return &Node{Kind: KindSentinel}
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	switch n.Kind {
	case KindScan:
		return fmt.Sprintf("scan(%v)", n.Terminal)
	case KindPredict:
		return fmt.Sprintf("predict(%s)", n.NonTerminal)
	case KindConstrain:
		return fmt.Sprintf("constrain(%s %s)", n.NonTerminal, n.Pred)
	case KindBranch:
		return fmt.Sprintf("branch(%d alts)", len(n.Alternatives))
	case KindReduce:
		return fmt.Sprintf("reduce(%s@%d)", n.Name, n.Prec)
	default:
		return "sentinel"
	}
}
