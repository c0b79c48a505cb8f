// Package reporter renders a solved tableau.Tableau's solution and
// post-optimal sensitivity analysis as labeled tables, the way
// spec.md §4.9/§6.2 describes: a variable-value table, a constraint-
// activity table, a shadow-price table with RHS ranges, and an
// objective-coefficient-range table.
package reporter
