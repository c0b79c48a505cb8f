// Package bnb implements branch-and-bound over an integer-declared
// model.Model by repeatedly solving tableau.Tableau relaxations.
//
// # Tree
//
// The search tree is an arena: Tree.Nodes is indexed by an insertion-
// order sequence id, and a Node refers to its parent and children by
// that index rather than by pointer, so the structure is acyclic in Go's
// garbage collector's eyes even though logically it is a tree of cyclic
// parent/child references. Every Node additionally carries a
// google/uuid-derived ExternalID for callers (a UI, a replay log) that
// need a handle stable across runs, independent of arena layout.
//
// # Drill
//
// Drilling a node truncates its Model back to the original row count,
// replays every ancestor's bound constraint from the root down, adds
// the node's own new bound, and solves the resulting relaxation fresh —
// Tableau state is never patched in place across a bound change.
package bnb
