package rational

import (
	"math/big"
	"regexp"
)

// literalPattern matches exactly the numeric literals the LP grammar
// allows: optionally signed integers, decimals, or p/q fractions with a
// strictly positive denominator. It intentionally rejects anything
// math/big.Rat.SetString would otherwise accept (scientific notation,
// leading '+' on the denominator, etc.) so that a malformed model is
// rejected at parse time rather than silently reinterpreted.
var literalPattern = regexp.MustCompile(`^[+-]?(?:(?:0|[1-9][0-9]*)(?:/[1-9][0-9]*|\.[0-9]*)?|\.[0-9]+)$`)

// Rational is an exact rational number. Its zero value is 0 and is
// ready to use; all operations return new values rather than mutating
// the receiver.
type Rational struct {
	v big.Rat
}

// Zero is the exact rational zero. Provided for readability at call
// sites; equivalent to the Rational zero value.
func Zero() Rational { return Rational{} }

// One is the exact rational one.
func One() Rational { return FromInt64(1) }

// FromInt64 builds an exact integer Rational.
func FromInt64(n int64) Rational {
	var r Rational
	r.v.SetInt64(n)
	return r
}

// FromFraction builds the exact rational n/d. It returns
// ErrZeroDenominator if d == 0.
func FromFraction(n, d int64) (Rational, error) {
	if d == 0 {
		return Rational{}, ErrZeroDenominator
	}
	var r Rational
	r.v.SetFrac64(n, d)
	return r, nil
}

// Parse reads a literal in one of the three forms the LP grammar
// allows: a signed integer ("12", "-3"), a decimal ("12.5", "-.75"),
// or a p/q fraction ("1/50", "-3/4") with q >= 1. It returns
// ErrBadLiteral for anything else, including scientific notation,
// which the grammar does not support.
func Parse(s string) (Rational, error) {
	if !literalPattern.MatchString(s) {
		return Rational{}, ErrBadLiteral
	}
	var r Rational
	if _, ok := r.v.SetString(s); !ok {
		return Rational{}, ErrBadLiteral
	}
	return r, nil
}

// Add returns r + other.
func (r Rational) Add(other Rational) Rational {
	var out Rational
	out.v.Add(&r.v, &other.v)
	return out
}

// Sub returns r - other.
func (r Rational) Sub(other Rational) Rational {
	var out Rational
	out.v.Sub(&r.v, &other.v)
	return out
}

// Mul returns r * other.
func (r Rational) Mul(other Rational) Rational {
	var out Rational
	out.v.Mul(&r.v, &other.v)
	return out
}

// Quot returns r / other. Division by zero panics, matching big.Rat's
// own contract; callers in package tableau never invoke Quot on a
// zero divisor because every ratio test filters non-positive pivot
// elements before dividing (see the leaving-row rule).
func (r Rational) Quot(other Rational) Rational {
	var out Rational
	out.v.Quo(&r.v, &other.v)
	return out
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	var out Rational
	out.v.Neg(&r.v)
	return out
}

// Cmp compares r to other: -1 if r < other, 0 if equal, +1 if r > other.
func (r Rational) Cmp(other Rational) int {
	return r.v.Cmp(&other.v)
}

// Sign returns -1, 0, or +1 according to the sign of r.
func (r Rational) Sign() int {
	return r.v.Sign()
}

// IsZero reports whether r == 0.
func (r Rational) IsZero() bool { return r.v.Sign() == 0 }

// IsPositive reports whether r > 0.
func (r Rational) IsPositive() bool { return r.v.Sign() > 0 }

// IsNegative reports whether r < 0.
func (r Rational) IsNegative() bool { return r.v.Sign() < 0 }

// Num returns the numerator of r in lowest terms.
func (r Rational) Num() *big.Int { return new(big.Int).Set(r.v.Num()) }

// Denom returns the denominator of r in lowest terms (always >= 1).
func (r Rational) Denom() *big.Int { return new(big.Int).Set(r.v.Denom()) }

// IsInteger reports whether r has denominator 1.
func (r Rational) IsInteger() bool { return r.v.IsInt() }

// Floor returns the greatest integer <= r, as an int64. It is used by
// the branch-and-bound driver to compute the split point k = floor(v)
// for a fractional variable; panics if the result does not fit in an
// int64, which cannot happen for any model the bound-rows arithmetic
// in package bnb constructs.
func (r Rational) Floor() int64 {
	q := new(big.Int)
	m := new(big.Int)
	q.DivMod(r.v.Num(), r.v.Denom(), m) // Euclidean division: floor for b.Rat's normalized (num, denom>0)
	if !q.IsInt64() {
		panic("rational: Floor result overflows int64")
	}
	return q.Int64()
}

// Float64 returns the nearest float64 approximation of r, for display
// or logging only — never for arithmetic or comparisons.
func (r Rational) Float64() float64 {
	f, _ := r.v.Float64()
	return f
}

// String renders r the way the grammar would read it back: an integer
// literal when the denominator is 1, otherwise "num/den".
func (r Rational) String() string {
	return r.v.RatString()
}
