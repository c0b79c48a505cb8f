// Package model defines the normalized linear-program description that
// package tableau canonicalizes into a simplex tableau, plus a minimal
// parser for the textual grammar described below.
//
// A Model is an ordered list of Rows, where Row 0 is always the
// objective. Each Row maps variable name to coefficient, carries a
// Relation (LE, GE, EQ) and a right-hand-side constant, and may carry
// an optional display Name. A Model additionally tracks which variable
// names are declared free (unrestricted in sign) and which are
// declared integral; a binary declaration is sugar for "integral, plus
// an automatically added x <= 1 row".
//
// # Grammar
//
// The grammar is case-insensitive; comments start with '#' and run to
// end of line; the model is terminated by a line containing only
// "end".
//
//	(max|min) <linexpr>
//	(st|s.t.|subject to|such that)
//	[ name) ] <linexpr> (<= | < | >= | > | = | ==) <number>
//	free: v1, v2, ...
//	int: v1, v2, ...
//	bin: v1, v2, ...
//	end
//
// A <linexpr> is a signed sum of "[coef]var" terms; a variable name
// matches [A-Za-z][A-Za-z0-9]*, coefficients are integers, decimals, or
// p/q fractions, each variable may appear at most once per linexpr, and
// an omitted coefficient means 1. free: and int:/bin: are mutually
// exclusive per variable.
//
// This parser is deliberately small: the full interactive modeling
// experience (file loading, REPL prompts, richer diagnostics) is an
// external collaborator per the design this package implements against;
// Parse is complete enough to drive every scenario the simplex engine
// needs, including the single-line "x <= k" / "x >= k+1" bound rows
// package bnb inserts when exploring a branch-and-bound node.
package model
