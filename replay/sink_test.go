package replay

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidlabs/simplex/model"
	"github.com/corvidlabs/simplex/rational"
	"github.com/corvidlabs/simplex/reporter"
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

func TestSink_WritesHeaderAndModel(t *testing.T) {
	var buf bytes.Buffer
	s := NewSink(&buf)
	s.WriteHeader()
	s.WriteModel(twoVarMax(t))

	out := buf.String()
	lines := strings.Split(out, "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, noteLine, lines[0])
	assert.Contains(t, out, "max ")
	assert.Contains(t, out, "end")
}

func TestSink_AfterPivotRecordsEveryIteration(t *testing.T) {
	var buf bytes.Buffer
	s := NewSink(&buf)
	m := twoVarMax(t)

	tb, err := tableau.New(m, tableau.WithInteractor(s))
	require.NoError(t, err)
	require.NoError(t, tb.Solve(0))

	out := buf.String()
	assert.Greater(t, s.itn, 0)
	assert.Contains(t, out, "sigma")
	assert.Contains(t, out, "=")
}

func TestSink_WriteReportProducesFourTables(t *testing.T) {
	var buf bytes.Buffer
	s := NewSink(&buf)
	m := twoVarMax(t)

	tb, err := tableau.New(m)
	require.NoError(t, err)
	require.NoError(t, tb.Solve(0))

	rep, err := reporter.New(tb, m)
	require.NoError(t, err)

	s.WriteReport(rep)
	out := buf.String()
	assert.Contains(t, out, "objective\t")
	assert.Contains(t, out, "variable\tvalue")
	assert.Contains(t, out, "activity")
	assert.Contains(t, out, "shadow price")
	assert.Contains(t, out, "coeff lower")
}

func TestSink_PanicsOnNilWriter(t *testing.T) {
	assert.Panics(t, func() { NewSink(nil) })
}
