// Package simplex (corvidlabs/simplex) is a teaching-oriented linear and
// integer programming solver built around the two-phase simplex method
// over exact rational arithmetic.
//
// 🚀 What is simplex?
//
//	A small, thread-naive, mostly pure-Go library that walks a linear
//	program through the two-phase simplex method one pivot at a time:
//
//	  • Exact arithmetic: every tableau cell is a big.Rat, so there is
//	    no accumulated floating-point error and comparisons are exact.
//	  • Four entering-column rules (largest-sigma, Bland's smallest-index,
//	    best-objective-improvement, user choice) plus a degeneracy policy
//	    combining smallest-index with two experimental, toggleable
//	    perturbation heuristics.
//	  • Sensitivity analysis: shadow prices, RHS ranges, objective
//	    coefficient ranges, all at phase-II optimum.
//	  • Branch-and-bound atop the simplex engine for integer and binary
//	    models.
//
// ✨ Why choose simplex?
//
//   - Transparent   — every pivot, undo, peek, and shake is inspectable.
//   - Exact         — Q arithmetic throughout, no silent precision loss.
//   - Reproducible  — flat-wolf perturbation and Shake draw from an
//     explicit random source; nothing reaches for the global RNG.
//
// Organized under one directory per component:
//
//	rational/ — exact Q arithmetic (big.Rat wrapper)
//	model/    — normalized LP description + a minimal grammar parser
//	tableau/  — the two-phase simplex engine itself
//	reporter/ — solution, shadow-price, and sensitivity-range printing
//	bnb/      — branch-and-bound driver for integer models
//	replay/   — formula-mode re-emission for spreadsheet recomputation
//	repl/     — a minimal interactive/non-interactive driver and CLI menu
//
// Quick sketch of the pipeline:
//
//	model.Parse ──▶ tableau.New ──▶ Phase I (if needed) ──▶ Phase II ──▶ reporter.Report
//	                                                                  └─▶ bnb.Driver (integer models)
//
// See each package's doc.go for details, and package examples for a
// couple of worked models.
package simplex
