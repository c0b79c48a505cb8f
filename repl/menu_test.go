package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenu_ChooseParsesValidSelection(t *testing.T) {
	var out bytes.Buffer
	m := NewMenu(strings.NewReader("1\n"), &out, nil)
	choice, err := m.Choose()
	require.NoError(t, err)
	assert.Equal(t, 1, choice)
}

func TestMenu_ChooseRejectsOutOfRange(t *testing.T) {
	var out bytes.Buffer
	m := NewMenu(strings.NewReader("99\n"), &out, nil)
	_, err := m.Choose()
	assert.ErrorIs(t, err, ErrBadSelection)
}

func TestMenu_ChooseReturnsNoSelectionOnEOF(t *testing.T) {
	var out bytes.Buffer
	m := NewMenu(strings.NewReader(""), &out, nil)
	_, err := m.Choose()
	assert.ErrorIs(t, err, ErrNoSelection)
}

func TestMenu_RunSolvesABuiltinLPScenario(t *testing.T) {
	var out bytes.Buffer
	m := NewMenu(strings.NewReader(""), &out, nil)
	require.NoError(t, m.Run(1))
	assert.Contains(t, out.String(), "objective")
}

func TestMenu_RunSolvesThePureIPScenario(t *testing.T) {
	var out bytes.Buffer
	m := NewMenu(strings.NewReader(""), &out, nil)
	require.NoError(t, m.Run(7))
	assert.Contains(t, out.String(), "best integer solution")
}

func TestMenu_BuildReadsTypedModelUpToEnd(t *testing.T) {
	var out bytes.Buffer
	in := "max x\nst\nx <= 5\nend\nextra line ignored\n"
	m := NewMenu(strings.NewReader(in), &out, nil)
	mod, err := m.Build(len(Scenarios))
	require.NoError(t, err)
	assert.Contains(t, mod.Vars, "X")
}
