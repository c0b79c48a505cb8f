package reporter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidlabs/simplex/model"
	"github.com/corvidlabs/simplex/rational"
	"github.com/corvidlabs/simplex/tableau"
)

func r(n int64) rational.Rational { return rational.FromInt64(n) }

func twoVarMax(t *testing.T) *model.Model {
	t.Helper()
	m := model.New(true)
	require.NoError(t, m.SetObjective(map[string]rational.Rational{"x": r(6), "y": r(4)}))
	require.NoError(t, m.AddConstraint(map[string]rational.Rational{"x": r(6), "y": r(8)}, model.LE, r(12), ""))
	require.NoError(t, m.AddConstraint(map[string]rational.Rational{"x": r(10), "y": r(5)}, model.LE, r(10), ""))
	return m
}

func TestNew_RequiresPhase2Optimum(t *testing.T) {
	m := twoVarMax(t)
	tb, err := tableau.New(m)
	require.NoError(t, err)
	tb.Phase = tableau.Phase1 // force the guard without a real phase-1 model
	_, err = New(tb, m)
	assert.ErrorIs(t, err, ErrNotOptimal)
}

func TestNew_GathersSolutionAndSensitivity(t *testing.T) {
	m := twoVarMax(t)
	tb, err := tableau.New(m)
	require.NoError(t, err)
	require.NoError(t, tb.Solve(0))

	rep, err := New(tb, m)
	require.NoError(t, err)

	require.Len(t, rep.Solution, 2)
	require.Len(t, rep.Coeffs, 2)
	require.Len(t, rep.Shadow, 2)
	require.Len(t, rep.Activity, 2)
	assert.True(t, rep.Objective.IsPositive())

	names := map[string]bool{}
	for _, v := range rep.Solution {
		names[v.Name] = true
	}
	assert.True(t, names["x"])
	assert.True(t, names["y"])
}

func TestRender_ProducesNonEmptyOutput(t *testing.T) {
	m := twoVarMax(t)
	tb, err := tableau.New(m)
	require.NoError(t, err)
	require.NoError(t, tb.Solve(0))

	rep, err := New(tb, m)
	require.NoError(t, err)

	var buf bytes.Buffer
	rep.Render(&buf)
	assert.NotEmpty(t, buf.String())
	assert.Contains(t, buf.String(), "objective")
}
