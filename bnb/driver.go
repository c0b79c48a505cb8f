package bnb

import (
	"errors"

	"github.com/corvidlabs/simplex/model"
	"github.com/corvidlabs/simplex/rational"
	"github.com/corvidlabs/simplex/tableau"
)

// Driver is the branch-and-bound engine: a Tree plus the Tableau
// options every child relaxation is solved with, and the per-solve
// iteration cap. Grounded on the teacher's engine-struct-over-closures
// style (package tsp's bbEngine): explicit fields instead of captured
// variables keep the search state inspectable and the methods testable
// in isolation.
type Driver struct {
	Tree    *Tree
	Opts    []tableau.Option
	MaxIter int
}

// NewDriver builds the root node by solving m's own relaxation (no
// ancestor bounds) and returns a Driver ready to Run. m must already
// hold its declared constraint rows (including any bin-sugar rows);
// NewTree captures that row count as the truncation floor for every
// later child.
func NewDriver(m *model.Model, maxIter int, opts ...tableau.Option) (*Driver, error) {
	d := &Driver{Tree: NewTree(m), MaxIter: maxIter, Opts: opts}
	root, err := d.solveNode(nil)
	if err != nil {
		return nil, err
	}
	root.SeqID = 0
	root.ParentIdx = -1
	d.Tree.Nodes = append(d.Tree.Nodes, root)
	return d, nil
}

// solveNode reconstructs the Model for path, canonicalizes, and solves
// it. An infeasible or unbounded relaxation is a normal terminal node
// (Feasible=false, Solution=nil per spec.md §3's Node invariant), not a
// Driver error; any other Solve failure (a canonicalization fault, or
// an iteration-cap suspension) is a hard error since it signals the
// engine itself could not finish, not that the integer program has no
// candidate at this node.
func (d *Driver) solveNode(path []bound) (*Node, error) {
	m, err := d.Tree.buildModel(path)
	if err != nil {
		return nil, err
	}
	tb, err := tableau.New(m, d.Opts...)
	if err != nil {
		return nil, err
	}
	node := newNode(len(d.Tree.Nodes), -1, boundOf(path))

	err = tb.Solve(d.MaxIter)
	switch {
	case errors.Is(err, tableau.ErrInfeasible), errors.Is(err, tableau.ErrUnbounded):
		return node, nil
	case err != nil:
		return nil, err
	}

	node.Feasible = true
	node.Objective = tb.ObjectiveValue()
	node.Solution = make(map[string]rational.Rational, len(m.Vars))
	for _, v := range m.Vars {
		node.Solution[v] = tb.VariableValue(m, v)
	}
	return node, nil
}

func boundOf(path []bound) bound {
	if len(path) == 0 {
		return bound{}
	}
	return path[len(path)-1]
}

// ChooseNode scans the arena in insertion order and returns the index
// of the first node with no children yet, a feasible solution, and at
// least one integer-required variable whose value is fractional — the
// "first candidate" walk preserved from original_source/simplex.py's
// chooseNode (spec.md §10), not a best-bound search.
func (d *Driver) ChooseNode() (int, bool) {
	intVars := d.Tree.orig.IntVars()
	for i, n := range d.Tree.Nodes {
		if !n.Feasible || n.LeftIdx != -1 || n.RightIdx != -1 {
			continue
		}
		if _, ok := firstFractional(n, intVars); ok {
			return i, true
		}
	}
	return 0, false
}

// ChooseVar scans the Model's declared integer-variable order (not
// sorted by fractionality) and returns the first one whose value in
// node's solution is fractional.
func (d *Driver) ChooseVar(node *Node) (string, bool) {
	return firstFractional(node, d.Tree.orig.IntVars())
}

func firstFractional(n *Node, intVars []string) (string, bool) {
	for _, v := range intVars {
		if val, ok := n.Solution[v]; ok && !val.IsInteger() {
			return v, true
		}
	}
	return "", false
}

// Drill branches nodeIdx on its first fractional integer variable:
// k = floor(value), emitting a "v <= k" child and a "v >= k+1" child,
// each solved fresh per spec.md §4.10 step 5. Returns the two new
// nodes' arena indices.
func (d *Driver) Drill(nodeIdx int) (leftIdx, rightIdx int, err error) {
	if nodeIdx < 0 || nodeIdx >= len(d.Tree.Nodes) {
		return 0, 0, ErrUnknownNode
	}
	parent := d.Tree.Nodes[nodeIdx]
	if !parent.Feasible {
		return 0, 0, ErrNoFractionalVar
	}
	varName, ok := d.ChooseVar(parent)
	if !ok {
		return 0, 0, ErrNoFractionalVar
	}
	k := parent.Solution[varName].Floor()
	base := d.Tree.ancestorPath(nodeIdx)

	left, err := d.solveNode(append(append([]bound(nil), base...), bound{Var: varName, Rel: model.LE, K: k}))
	if err != nil {
		return 0, 0, err
	}
	left.ParentIdx = nodeIdx
	d.Tree.Nodes = append(d.Tree.Nodes, left)
	leftIdx = len(d.Tree.Nodes) - 1

	right, err := d.solveNode(append(append([]bound(nil), base...), bound{Var: varName, Rel: model.GE, K: k + 1}))
	if err != nil {
		return 0, 0, err
	}
	right.ParentIdx = nodeIdx
	d.Tree.Nodes = append(d.Tree.Nodes, right)
	rightIdx = len(d.Tree.Nodes) - 1

	parent.LeftIdx, parent.RightIdx = leftIdx, rightIdx
	return leftIdx, rightIdx, nil
}

// Run drives the search to termination: repeatedly choosing a
// candidate node and drilling it until ChooseNode finds none (spec.md
// §4.10 step 6 — no automatic bound pruning, the walk simply runs dry).
func (d *Driver) Run() error {
	for {
		idx, ok := d.ChooseNode()
		if !ok {
			return nil
		}
		if _, _, err := d.Drill(idx); err != nil {
			return err
		}
	}
}

// BestIntegerNode scans the arena for feasible nodes whose solution is
// entirely integer and returns the one with the best objective value
// (largest for a maximize model, smallest for minimize) — a convenience
// post-search query, not a pruning mechanism used during the search.
func (d *Driver) BestIntegerNode() (*Node, bool) {
	intVars := d.Tree.orig.IntVars()
	var best *Node
	for _, n := range d.Tree.Nodes {
		if !n.Feasible {
			continue
		}
		if _, fractional := firstFractional(n, intVars); fractional {
			continue
		}
		if best == nil {
			best = n
			continue
		}
		cmp := n.Objective.Cmp(best.Objective)
		if d.Tree.orig.Maximize && cmp > 0 || !d.Tree.orig.Maximize && cmp < 0 {
			best = n
		}
	}
	return best, best != nil
}
