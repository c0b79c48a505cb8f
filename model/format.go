package model

import (
	"strings"

	"github.com/corvidlabs/simplex/rational"
)

// Text renders m back into the grammar Parse reads, for display and
// replay logging. It is not guaranteed to reproduce the original
// source byte-for-byte: comments are dropped, a row name is written
// only when it has the "name)" form Parse reads, and bin: sugar comes
// out in its expanded int:/constraint-row form. Parsing its output
// reproduces an equivalent Model.
func (m *Model) Text() string {
	var b strings.Builder

	if m.Maximize {
		b.WriteString("max ")
	} else {
		b.WriteString("min ")
	}
	b.WriteString(formatTerms(m, m.Objective().Coeffs))
	b.WriteString("\nst\n")

	for _, c := range m.Constraints() {
		if strings.HasSuffix(c.Name, ")") {
			b.WriteString(c.Name)
		}
		b.WriteString(formatTerms(m, c.Coeffs))
		b.WriteString(" ")
		b.WriteString(c.Rel.String())
		b.WriteString(" ")
		b.WriteString(c.RHS.String())
		b.WriteString("\n")
	}

	if free := m.FreeVars(); len(free) > 0 {
		b.WriteString("free: " + strings.Join(free, ",") + "\n")
	}
	if ints := m.IntVars(); len(ints) > 0 {
		b.WriteString("int: " + strings.Join(ints, ",") + "\n")
	}
	b.WriteString("end\n")
	return b.String()
}

// formatTerms renders a coefficient map as a signed sum over m's
// deterministic column order, so output is reproducible run to run.
func formatTerms(m *Model, terms map[string]rational.Rational) string {
	var b strings.Builder
	for _, v := range m.SortedVars() {
		coeff, ok := terms[v]
		if !ok || coeff.IsZero() {
			continue
		}
		sign := "+"
		if coeff.IsNegative() {
			sign = "-"
			coeff = coeff.Neg()
		}
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(sign)
		if !(coeff.IsInteger() && coeff.Num().Int64() == 1) {
			b.WriteString(coeff.String())
		}
		b.WriteString(v)
	}
	return b.String()
}
