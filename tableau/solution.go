package tableau

import (
	"github.com/corvidlabs/simplex/model"
	"github.com/corvidlabs/simplex/rational"
)

// columnIndex returns the position of name in Vars, or -1.
func (t *Tableau) columnIndex(name string) int {
	for i, v := range t.Vars {
		if v == name {
			return i
		}
	}
	return -1
}

// ColumnValue returns the current value of column c: its RHS if c is
// basic, zero otherwise.
func (t *Tableau) ColumnValue(c int) rational.Rational {
	if r, ok := t.isBasic(c); ok {
		return t.Rows[r][0]
	}
	return rational.Zero()
}

// ObjectiveValue returns the true objective value at the tableau's
// current state, undoing the maximization-convention sign flip.
func (t *Tableau) ObjectiveValue() rational.Rational {
	return rational.FromInt64(int64(-t.ObjDir)).Mul(t.Rows[0][0])
}

// VariableValue returns the value of a model variable, resolving a
// free variable as x(v) - x(!v) per the shadow-column construction.
func (t *Tableau) VariableValue(m *model.Model, name string) rational.Rational {
	idx := t.columnIndex(name)
	if idx < 0 {
		return rational.Zero()
	}
	val := t.ColumnValue(idx)
	if !m.IsFree(name) {
		return val
	}
	shadowIdx := t.columnIndex("!" + name)
	if shadowIdx < 0 {
		return val
	}
	return val.Sub(t.ColumnValue(shadowIdx))
}
