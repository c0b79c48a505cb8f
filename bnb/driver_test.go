package bnb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidlabs/simplex/model"
	"github.com/corvidlabs/simplex/rational"
)

func r(n int64) rational.Rational { return rational.FromInt64(n) }

// pureIPModel is spec.md §8 scenario 5: max 100x1+150x2 st
// 8000x1+4000x2<=40000, 15x1+30x2<=200, int: x1,x2. Its LP relaxation's
// optimum is the intersection of both constraints, x1=20/9, x2=50/9 —
// both fractional, verified directly by solving the 2x2 system.
func pureIPModel(t *testing.T) *model.Model {
	t.Helper()
	m := model.New(true)
	require.NoError(t, m.SetObjective(map[string]rational.Rational{"x1": r(100), "x2": r(150)}))
	require.NoError(t, m.AddConstraint(map[string]rational.Rational{"x1": r(8000), "x2": r(4000)}, model.LE, r(40000), ""))
	require.NoError(t, m.AddConstraint(map[string]rational.Rational{"x1": r(15), "x2": r(30)}, model.LE, r(200), ""))
	require.NoError(t, m.MarkInt("x1"))
	require.NoError(t, m.MarkInt("x2"))
	return m
}

func TestNewDriver_RootRelaxationIsFractional(t *testing.T) {
	m := pureIPModel(t)
	d, err := NewDriver(m, 0)
	require.NoError(t, err)
	require.Len(t, d.Tree.Nodes, 1)

	root := d.Tree.Nodes[0]
	require.True(t, root.Feasible)
	_, fractional := firstFractional(root, d.Tree.orig.IntVars())
	assert.True(t, fractional, "root relaxation must have a fractional integer variable")
}

func TestDrill_ChildModelHasOneMoreConstraintThanParent(t *testing.T) {
	m := pureIPModel(t)
	d, err := NewDriver(m, 0)
	require.NoError(t, err)

	morig := d.Tree.Morig
	leftIdx, rightIdx, err := d.Drill(0)
	require.NoError(t, err)

	for _, idx := range []int{leftIdx, rightIdx} {
		node := d.Tree.Nodes[idx]
		path := d.Tree.ancestorPath(idx)
		assert.Len(t, path, 1, "depth-1 child carries exactly one ancestor bound")
		childModel, err := d.Tree.buildModel(path)
		require.NoError(t, err)
		assert.Equal(t, morig+1, len(childModel.Constraints()))
		assert.NotEmpty(t, node.Bound.Var)
	}
}

func TestChooseNode_SkipsDrilledAndInfeasibleNodes(t *testing.T) {
	m := pureIPModel(t)
	d, err := NewDriver(m, 0)
	require.NoError(t, err)

	idx, ok := d.ChooseNode()
	require.True(t, ok)
	assert.Equal(t, 0, idx) // only the root exists so far

	_, _, err = d.Drill(idx)
	require.NoError(t, err)

	next, ok := d.ChooseNode()
	if ok {
		assert.NotEqual(t, 0, next, "the drilled root must not be chosen again")
	}
}

func TestRun_TerminatesAndFindsAnIntegerNode(t *testing.T) {
	m := pureIPModel(t)
	d, err := NewDriver(m, 0)
	require.NoError(t, err)
	require.NoError(t, d.Run())

	_, ok := d.ChooseNode()
	assert.False(t, ok, "Run must leave no candidate node behind")

	best, ok := d.BestIntegerNode()
	assert.True(t, ok, "the search space is bounded and feasible, so some integer node must exist")
	if ok {
		for _, v := range d.Tree.orig.IntVars() {
			assert.True(t, best.Solution[v].IsInteger())
		}
	}
}

func TestDrill_NoFractionalVarIsAnError(t *testing.T) {
	m := model.New(true)
	require.NoError(t, m.SetObjective(map[string]rational.Rational{"x": r(1)}))
	require.NoError(t, m.AddConstraint(map[string]rational.Rational{"x": r(1)}, model.LE, r(4), ""))
	require.NoError(t, m.MarkInt("x"))

	d, err := NewDriver(m, 0)
	require.NoError(t, err)
	// x=4 at the root relaxation is already integer: nothing to branch.
	_, _, err = d.Drill(0)
	assert.ErrorIs(t, err, ErrNoFractionalVar)
}
