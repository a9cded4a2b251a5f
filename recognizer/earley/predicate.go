package earley

import "fmt"

// Predicate is a relational constraint over a production's declared
// precedence level, of the kind a Constrain node carries and a reduction's
// precedence is tested against. It is a small value type, not a bare func,
// so that it can be described back to a caller: grammar pretty-printing
// wants to render `(expr < 20)`, not an opaque function pointer.
type Predicate struct {
	op string
	n  int
	ok func(p int) bool
}

// Allows reports whether precedence level p satisfies the predicate.
func (pr Predicate) Allows(p int) bool {
	if pr.ok == nil {
		return true
	}
	return pr.ok(p)
}

func (pr Predicate) String() string {
	if pr.ok == nil {
		return ""
	}
	return fmt.Sprintf("%s %d", pr.op, pr.n)
}

// LessThan builds a predicate satisfied by any precedence strictly below n.
func LessThan(n int) Predicate { return Predicate{"<", n, func(p int) bool { return p < n }} }

// AtMost builds a predicate satisfied by any precedence at or below n.
func AtMost(n int) Predicate { return Predicate{"<=", n, func(p int) bool { return p <= n }} }

// GreaterThan builds a predicate satisfied by any precedence strictly above n.
func GreaterThan(n int) Predicate { return Predicate{">", n, func(p int) bool { return p > n }} }

// AtLeast builds a predicate satisfied by any precedence at or above n.
func AtLeast(n int) Predicate { return Predicate{">=", n, func(p int) bool { return p >= n }} }

// EqualTo builds a predicate satisfied only by precedence n.
func EqualTo(n int) Predicate { return Predicate{"==", n, func(p int) bool { return p == n }} }

// NotEqualTo builds a predicate satisfied by any precedence other than n.
func NotEqualTo(n int) Predicate { return Predicate{"!=", n, func(p int) bool { return p != n }} }
