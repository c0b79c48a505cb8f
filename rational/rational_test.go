package rational

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Integer(t *testing.T) {
	r, err := Parse("12")
	require.NoError(t, err)
	assert.Equal(t, "12", r.String())
	assert.True(t, r.IsInteger())
}

func TestParse_NegativeInteger(t *testing.T) {
	r, err := Parse("-3")
	require.NoError(t, err)
	assert.Equal(t, "-3", r.String())
}

func TestParse_Decimal(t *testing.T) {
	r, err := Parse("12.5")
	require.NoError(t, err)
	assert.Equal(t, "25/2", r.String())
}

func TestParse_LeadingDotDecimal(t *testing.T) {
	r, err := Parse("-.75")
	require.NoError(t, err)
	assert.Equal(t, "-3/4", r.String())
}

func TestParse_Fraction(t *testing.T) {
	r, err := Parse("1/50")
	require.NoError(t, err)
	assert.Equal(t, "1/50", r.String())
}

func TestParse_RejectsScientificNotation(t *testing.T) {
	_, err := Parse("1e10")
	assert.ErrorIs(t, err, ErrBadLiteral)
}

func TestParse_RejectsEmpty(t *testing.T) {
	_, err := Parse("")
	assert.ErrorIs(t, err, ErrBadLiteral)
}

func TestParse_RejectsLeadingZero(t *testing.T) {
	_, err := Parse("012")
	assert.ErrorIs(t, err, ErrBadLiteral)
}

func TestFromFraction_ZeroDenominator(t *testing.T) {
	_, err := FromFraction(1, 0)
	assert.ErrorIs(t, err, ErrZeroDenominator)
}

func TestArithmetic(t *testing.T) {
	a := FromInt64(3)
	b, err := FromFraction(1, 2)
	require.NoError(t, err)

	assert.Equal(t, "7/2", a.Add(b).String())
	assert.Equal(t, "5/2", a.Sub(b).String())
	assert.Equal(t, "3/2", a.Mul(b).String())
	assert.Equal(t, "6", a.Quot(b).String())
	assert.Equal(t, "-3", a.Neg().String())
}

func TestCmpAndSign(t *testing.T) {
	a := FromInt64(3)
	b := FromInt64(5)
	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(FromInt64(3)))

	assert.True(t, Zero().IsZero())
	assert.True(t, FromInt64(-1).IsNegative())
	assert.True(t, FromInt64(1).IsPositive())
}

func TestZeroValueIsZero(t *testing.T) {
	var r Rational
	assert.True(t, r.IsZero())
	assert.Equal(t, "0", r.String())
}

func TestFloor(t *testing.T) {
	v, err := FromFraction(7, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), v.Floor())

	neg, err := FromFraction(-7, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(-4), neg.Floor())
}

func TestNumDenom(t *testing.T) {
	v, err := FromFraction(6, 8) // reduces to 3/4
	require.NoError(t, err)
	assert.Equal(t, "3", v.Num().String())
	assert.Equal(t, "4", v.Denom().String())
}
