package ir

import "fmt"

// GuardKind discriminates the variants of the guard expression tree:
// True, Port(p), the four orderings plus Eq/Neq, and the three boolean
// connectives.
type GuardKind int

const (
	GuardTrue GuardKind = iota
	GuardPort
	GuardEq
	GuardNeq
	GuardLt
	GuardLe
	GuardGt
	GuardGe
	GuardAnd
	GuardOr
	GuardNot
)

// Guard is a symbolic boolean expression over port values. Guards are
// values: two guards are equal iff they are structurally equal. A
// separate synthesis backend is responsible for reducing a Guard to
// combinational logic; this package only builds and compares the tree.
type Guard struct {
	Kind GuardKind

	// GuardPort operand.
	Port *Port

	// Operands of a relational guard (Eq/Neq/Lt/Le/Gt/Ge).
	A, B *Port

	// Operands of a boolean connective (And/Or: L and R; Not: Operand).
	L, R    *Guard
	Operand *Guard
}

// True is the constant-true guard; an absent guard on an Assignment
// means this.
func True() *Guard { return &Guard{Kind: GuardTrue} }

// PortGuard builds the truthiness guard of a one-bit driver port.
func PortGuard(p *Port) *Guard {
	mustDriver(p)
	mustWidth1(p)
	return &Guard{Kind: GuardPort, Port: p}
}

func relational(kind GuardKind, a, b *Port) *Guard {
	mustDriver(a)
	mustDriver(b)
	mustSameWidth(a, b)
	return &Guard{Kind: kind, A: a, B: b}
}

// Eq, Neq, Lt, Le, Gt, Ge build relational guards over two driver ports
// of equal width. These operators are total: any width mismatch or
// comparison of a non-driver port is an implementation-detected bug,
// reported fatal rather than returned as an error (see mustDriver/
// mustSameWidth below).
func Eq(a, b *Port) *Guard  { return relational(GuardEq, a, b) }
func Neq(a, b *Port) *Guard { return relational(GuardNeq, a, b) }
func Lt(a, b *Port) *Guard  { return relational(GuardLt, a, b) }
func Le(a, b *Port) *Guard  { return relational(GuardLe, a, b) }
func Gt(a, b *Port) *Guard  { return relational(GuardGt, a, b) }
func Ge(a, b *Port) *Guard  { return relational(GuardGe, a, b) }

// And conjoins two guards.
func And(l, r *Guard) *Guard { return &Guard{Kind: GuardAnd, L: l, R: r} }

// Or disjoins two guards.
func Or(l, r *Guard) *Guard { return &Guard{Kind: GuardOr, L: l, R: r} }

// Not negates a guard. Negation is syntactic; no normalization is
// performed.
func Not(g *Guard) *Guard { return &Guard{Kind: GuardNot, Operand: g} }

// Equal reports whether two guards are structurally identical.
func (g *Guard) Equal(other *Guard) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.Kind != other.Kind {
		return false
	}
	switch g.Kind {
	case GuardTrue:
		return true
	case GuardPort:
		return g.Port == other.Port
	case GuardEq, GuardNeq, GuardLt, GuardLe, GuardGt, GuardGe:
		return g.A == other.A && g.B == other.B
	case GuardAnd, GuardOr:
		return g.L.Equal(other.L) && g.R.Equal(other.R)
	case GuardNot:
		return g.Operand.Equal(other.Operand)
	default:
		return false
	}
}

// mustDriver and mustSameWidth guard the guard algebra's totality
// invariant. A violation here means the pass itself constructed a
// malformed comparison — an implementation bug, not a condition a caller
// can recover from — so it panics rather than returning an error, the
// same way an out-of-range slice index panics instead of threading an
// error through a hot dispatch path.
func mustDriver(p *Port) {
	if !p.IsDriver() {
		panic(fmt.Sprintf("ir: guard operand %s is not a driver port", p.QualifiedName()))
	}
}

func mustWidth1(p *Port) {
	if p.Width != 1 {
		panic(fmt.Sprintf("ir: guard operand %s has width %d, want 1", p.QualifiedName(), p.Width))
	}
}

func mustSameWidth(a, b *Port) {
	if a.Width != b.Width {
		panic(fmt.Sprintf("ir: guard operands %s (width %d) and %s (width %d) have mismatched widths",
			a.QualifiedName(), a.Width, b.QualifiedName(), b.Width))
	}
}
