package tableau

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidlabs/simplex/model"
	"github.com/corvidlabs/simplex/rational"
)

func r(n int64) rational.Rational { return rational.FromInt64(n) }

// twoVarMax builds max 6x+4y st 6x+8y<=12, 10x+5y<=10 — a pure-LE model
// with no artificials, so it should canonicalize straight into phase 2.
func twoVarMax(t *testing.T) *model.Model {
	t.Helper()
	m := model.New(true)
	require.NoError(t, m.SetObjective(map[string]rational.Rational{"x": r(6), "y": r(4)}))
	require.NoError(t, m.AddConstraint(map[string]rational.Rational{"x": r(6), "y": r(8)}, model.LE, r(12), ""))
	require.NoError(t, m.AddConstraint(map[string]rational.Rational{"x": r(10), "y": r(5)}, model.LE, r(10), ""))
	return m
}

func TestNew_PureLEStartsPhase2(t *testing.T) {
	m := twoVarMax(t)
	tb, err := New(m)
	require.NoError(t, err)
	assert.Equal(t, Phase2, tb.Phase)
	assert.Equal(t, 0, tb.totalArtificialCols)
	assert.Equal(t, 0, tb.artificialCols)
	// (RHS), x, y, $1, $2
	assert.Len(t, tb.Vars, 5)
	assert.Equal(t, "(RHS)", tb.Vars[0])
}

func TestNew_UnitBasisColumns(t *testing.T) {
	m := twoVarMax(t)
	tb, err := New(m)
	require.NoError(t, err)
	for row := 1; row <= tb.M(); row++ {
		basisCol := tb.Base[row]
		assert.True(t, tb.Rows[row][basisCol].Cmp(r(1)) == 0, "row %d basis column must carry coefficient 1", row)
		for other := 1; other <= tb.M(); other++ {
			if other == row {
				continue
			}
			assert.True(t, tb.Rows[other][basisCol].IsZero(), "row %d must be zero in row %d's basis column", other, row)
		}
	}
}

func TestNew_GEProducesSurplusAndArtificial(t *testing.T) {
	m := model.New(false)
	require.NoError(t, m.SetObjective(map[string]rational.Rational{"x": r(1)}))
	require.NoError(t, m.AddConstraint(map[string]rational.Rational{"x": r(1)}, model.GE, r(1), ""))
	tb, err := New(m)
	require.NoError(t, err)
	assert.Equal(t, Phase1, tb.Phase)
	assert.Equal(t, 1, tb.totalArtificialCols)

	var sawSurplus, sawArtificial bool
	for _, v := range tb.Vars {
		if v == "#1" {
			sawSurplus = true
		}
		if v == "@1" {
			sawArtificial = true
		}
	}
	assert.True(t, sawSurplus, "GE row must synthesize a surplus column")
	assert.True(t, sawArtificial, "GE row must synthesize an artificial column")
}

func TestNew_ColumnOrderSurplusThenSlackThenArtificial(t *testing.T) {
	// Row 1 is GE (surplus + artificial), row 2 is LE (slack), row 3 is
	// EQ (artificial only) — columns must appear surplus-block, then
	// slack-block, then artificial-block, each in row order, regardless
	// of how relation types interleave across rows.
	m := model.New(true)
	require.NoError(t, m.SetObjective(map[string]rational.Rational{"x": r(1), "y": r(1)}))
	require.NoError(t, m.AddConstraint(map[string]rational.Rational{"x": r(1), "y": r(1)}, model.GE, r(1), ""))
	require.NoError(t, m.AddConstraint(map[string]rational.Rational{"x": r(1)}, model.LE, r(5), ""))
	require.NoError(t, m.AddConstraint(map[string]rational.Rational{"y": r(1)}, model.EQ, r(2), ""))
	tb, err := New(m)
	require.NoError(t, err)

	extras := tb.Vars[3:] // (RHS), x, y, then extras
	require.Len(t, extras, 4)
	assert.Equal(t, "#1", extras[0])
	assert.Equal(t, "$2", extras[1])
	assert.Equal(t, "@1", extras[2])
	// Row 3 (EQ) needs a second artificial, appended after @1.
	assert.Len(t, tb.Vars, 7)
	assert.Equal(t, "@3", tb.Vars[6])
}

func TestNew_FreeVariableGetsShadowColumn(t *testing.T) {
	m := model.New(true)
	require.NoError(t, m.SetObjective(map[string]rational.Rational{"x": r(1)}))
	require.NoError(t, m.AddConstraint(map[string]rational.Rational{"x": r(1), "y": r(1)}, model.LE, r(5), ""))
	require.NoError(t, m.MarkFree("x"))
	tb, err := New(m)
	require.NoError(t, err)

	var sawShadow bool
	for _, v := range tb.Vars {
		if v == "!x" {
			sawShadow = true
		}
	}
	assert.True(t, sawShadow, "a free variable must get a shadow column")
}

func TestNew_NegativeRHSFlipsRelation(t *testing.T) {
	m := model.New(true)
	require.NoError(t, m.SetObjective(map[string]rational.Rational{"x": r(1)}))
	require.NoError(t, m.AddConstraint(map[string]rational.Rational{"x": r(-1)}, model.LE, r(-1), ""))
	tb, err := New(m)
	require.NoError(t, err)
	assert.True(t, tb.Rows[1][0].Cmp(r(1)) == 0, "RHS must be normalized non-negative")
	assert.True(t, tb.Rows[1][tb.columnIndex("x")].Cmp(r(1)) == 0, "coefficients must flip sign along with RHS")
	// LE flipped to GE still needs an artificial.
	assert.Equal(t, 1, tb.totalArtificialCols)
}
