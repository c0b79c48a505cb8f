// Package tableau implements the two-phase simplex method over exact
// rational arithmetic: canonicalization of a model.Model into column
// layout, entering/leaving pivot selection under four interchangeable
// rules, the phase-I artificial-variable objective and its transition
// into phase II, undo/peek/shake history navigation, and post-optimal
// sensitivity analysis (shadow prices, RHS ranges, objective-coefficient
// ranges).
//
// # Column layout
//
// Column 0 is always the RHS sentinel "(RHS)". Structural columns come
// next (model variables plus any free-variable shadow columns), sorted
// by model.SortVarNames. Then three blocks, each in row order: a
// surplus column "#i" for every GE row, then a slack column "$i" for
// every LE row, then an artificial column "@i" for every EQ or GE row.
// The final m columns of a canonicalized Tableau therefore hold the
// phase-I starting basis (one column per row, not necessarily in row
// order), and — because every pivot preserves that property — also
// hold B⁻¹ at any later point reached purely by pivoting (see
// Sensitivity, which maps each row to its starting column).
//
// # Phases
//
// A Tableau starts in phase 1 if it has any artificial column, else
// phase 2. Solve drives a phase to optimality, detects the phase-I/II
// transition, and continues into phase 2. Negative phase values record
// an iteration-cap suspension; phase 3 records an unbounded detection.
package tableau
