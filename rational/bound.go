package rational

// BoundKind tags which variant a Bound holds.
type BoundKind int

const (
	// Finite holds an exact Rational value.
	Finite BoundKind = iota
	// PosInf is an unbounded-above sentinel.
	PosInf
	// NegInf is an unbounded-below sentinel.
	NegInf
)

// Bound is a tagged union over "a rational value, or +infinity, or
// -infinity". Sensitivity ranges (shadow-price validity ranges,
// objective-coefficient ranges) routinely hit an unbounded side, and a
// tagged union makes that explicit at the type level instead of
// smuggling infinity through a sentinel big number.
type Bound struct {
	kind BoundKind
	val  Rational
}

// NewFinite wraps an exact value.
func NewFinite(v Rational) Bound { return Bound{kind: Finite, val: v} }

// PositiveInfinity is the +infinity bound.
func PositiveInfinity() Bound { return Bound{kind: PosInf} }

// NegativeInfinity is the -infinity bound.
func NegativeInfinity() Bound { return Bound{kind: NegInf} }

// Kind reports which variant b holds.
func (b Bound) Kind() BoundKind { return b.kind }

// IsFinite reports whether b holds an exact value.
func (b Bound) IsFinite() bool { return b.kind == Finite }

// Value returns the wrapped value and true if b is Finite; otherwise
// it returns the zero Rational and false.
func (b Bound) Value() (Rational, bool) {
	if b.kind != Finite {
		return Rational{}, false
	}
	return b.val, true
}

// String renders b the way a report table would: the exact value, or
// "+Infty"/"-Infty".
func (b Bound) String() string {
	switch b.kind {
	case PosInf:
		return "+Infty"
	case NegInf:
		return "-Infty"
	default:
		return b.val.String()
	}
}
