// Package rational implements exact arithmetic over Q, the field of
// rational numbers, as a thin wrapper around math/big.Rat.
//
// The two-phase simplex engine in package tableau performs every pivot
// in exact arithmetic: no cell, ratio, or comparison ever touches a
// float64. That is the entire reason this package exists — Go's
// standard library already ships an arbitrary-precision rational type,
// and nothing in the surrounding example corpus supplies a competing
// exact-fraction library, so Rational is deliberately a small façade
// over big.Rat rather than a reimplementation (see DESIGN.md).
//
// The zero value of Rational is the exact rational zero and is ready
// to use without initialization, exactly like big.Rat's zero value.
// All arithmetic methods are side-effect free: they return a new
// Rational and never mutate the receiver or argument.
package rational
