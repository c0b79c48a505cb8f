package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SimpleMax(t *testing.T) {
	const src = `
max 6x + 4y
st
6x + 8y <= 12
10x + 5y <= 10
end
`
	m, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.True(t, m.Maximize)
	require.Len(t, m.Constraints(), 2)
	assert.Equal(t, "6", m.Objective().Coeffs["X"].String())
	assert.Equal(t, "4", m.Objective().Coeffs["Y"].String())
	assert.Equal(t, LE, m.Constraints()[0].Rel)
	assert.Equal(t, "12", m.Constraints()[0].RHS.String())
}

func TestParse_FreeVariables(t *testing.T) {
	const src = `
max 6x + 4y + Z2 + Z1
st
6x + 8y <= 12
10x + 5y <= 10
free: Z1, Z2
end
`
	m, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.True(t, m.IsFree("Z1"))
	assert.True(t, m.IsFree("Z2"))
}

func TestParse_Comments(t *testing.T) {
	const src = `
max 3/4 x1 - 150 x2 + 1/50 x3 - 6 x4 #comment runs to the end of line
st
1/4 x1 - 60 x2 - 1/25 x3 + 9 x4 <= 0
1/2 x1 - 90 x2 - 1/50 x3 + 3 x4 <= 0
end
`
	m, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "3/4", m.Objective().Coeffs["X1"].String())
	assert.Equal(t, "-150", m.Objective().Coeffs["X2"].String())
}

func TestParse_NamedRow(t *testing.T) {
	const src = `
max x + y
st
labor) x + y <= 10
end
`
	m, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "LABOR)", m.Constraints()[0].Name)
}

func TestParse_IntDeclaration(t *testing.T) {
	const src = `
max 100 x1 + 150 x2
st
8000 x1 + 4000 x2 <= 40000
15 x1 + 30 x2 <= 200
int: x1, x2
end
`
	m, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.True(t, m.IsInt("X1"))
	assert.True(t, m.IsInt("X2"))
	assert.True(t, m.HasIntVars())
}

func TestParse_RejectsMissingEnd(t *testing.T) {
	const src = `
max x
st
x <= 1
`
	_, err := Parse(strings.NewReader(src))
	assert.ErrorIs(t, err, ErrParse)
}

func TestParse_RejectsMissingObjectiveKeyword(t *testing.T) {
	const src = `
6x + 4y
st
x <= 1
end
`
	_, err := Parse(strings.NewReader(src))
	assert.ErrorIs(t, err, ErrParse)
}

func TestParse_RejectsMissingSubjectTo(t *testing.T) {
	const src = `
max x
x <= 1
end
`
	_, err := Parse(strings.NewReader(src))
	assert.ErrorIs(t, err, ErrParse)
}

func TestParse_RejectsDuplicateVarInTerm(t *testing.T) {
	const src = `
max x + x
st
x <= 1
end
`
	_, err := Parse(strings.NewReader(src))
	assert.ErrorIs(t, err, ErrDuplicateVarInRow)
}

func TestParse_EqualityConstraint(t *testing.T) {
	const src = `
min 3x1 + 5/2x2 + 7/2x3 - 4x4 + 1x5
such that
-1x1 + 3x2 + 5x3 + 1x5 = 12
+1x2 + 3x3 + 2x4 + 3x5 = 10
2x1 - 1x2 + 4x5 = 20
end
`
	m, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, m.Constraints(), 3)
	for _, r := range m.Constraints() {
		assert.Equal(t, EQ, r.Rel)
	}
}
