package bnb

import (
	"github.com/google/uuid"

	"github.com/corvidlabs/simplex/model"
	"github.com/corvidlabs/simplex/rational"
)

// bound is one ancestor constraint row: Var <rel> K, always LE or GE
// with an integer K (spec.md §4.10: "x ≤ k" or "x ≥ k+1").
type bound struct {
	Var string
	Rel model.Relation
	K   int64
}

// Node is one point in the search tree: the bound it adds relative to
// its parent, and a snapshot of its relaxation's outcome. Solution is
// nil when the relaxation was infeasible or unbounded.
type Node struct {
	SeqID      int
	ExternalID string

	ParentIdx int // -1 for the root
	LeftIdx   int // -1 until drilled
	RightIdx  int // -1 until drilled

	Bound bound // zero value at the root (no bound added)

	Solution  map[string]rational.Rational // nil if infeasible/unbounded
	Objective rational.Rational
	Feasible  bool
}

// BoundText renders the node's bound the way a report would display it
// ("x <= 3", "x >= 4"), or "" at the root.
func (n *Node) BoundText() string {
	if n.Bound.Var == "" {
		return ""
	}
	rel := "<="
	if n.Bound.Rel == model.GE {
		rel = ">="
	}
	return n.Bound.Var + " " + rel + " " + formatInt64(n.Bound.K)
}

func formatInt64(n int64) string {
	r := rational.FromInt64(n)
	return r.String()
}

// Tree is the branch-and-bound arena rooted at a Model's LP relaxation.
type Tree struct {
	Nodes []*Node

	// orig is the Model's objective plus its first Morig constraint
	// rows, captured once at NewTree and never mutated; every child
	// Model is rebuilt from this plus the ancestor bound chain.
	orig  *model.Model
	Morig int
}

// NewTree creates the arena for m, which must already hold its root
// (possibly bin-expanded) constraint rows; later Drill calls truncate
// back to exactly these Morig rows before replaying ancestor bounds.
func NewTree(m *model.Model) *Tree {
	return &Tree{orig: m, Morig: len(m.Constraints())}
}

// newNode constructs a Node with a freshly minted ExternalID and -1
// child/parent sentinels where unset.
func newNode(seqID, parentIdx int, b bound) *Node {
	return &Node{
		SeqID:      seqID,
		ExternalID: uuid.NewString(),
		ParentIdx:  parentIdx,
		LeftIdx:    -1,
		RightIdx:   -1,
		Bound:      b,
	}
}
