package repl

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/corvidlabs/simplex/tableau"
)

// Driver is a line-oriented tableau.Interactor: after every pivot it
// prints the tableau to Out, then — when Interactive is set on the
// attached Tableau — reads commands from In until a "continue", a
// blank line, or end of input before returning control to Solve. It
// satisfies spec.md §4.8's interact() menu
// (method/perturbation/wolf/undo/peek/shake) without attempting a
// full line-editing terminal UI.
type Driver struct {
	In  *bufio.Scanner
	Out io.Writer
	Log *zap.Logger

	rng *rand.Rand
}

// NewDriver builds a Driver reading commands from in and writing
// tableau renders to out. log may be nil, in which case a no-op
// logger is used (diagnostics are optional, never required for
// correctness).
func NewDriver(in io.Reader, out io.Writer, log *zap.Logger) *Driver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Driver{In: bufio.NewScanner(in), Out: out, Log: log, rng: rand.New(rand.NewSource(1))}
}

// AfterPivot renders the current tableau and, when driven
// interactively, prompts for commands until control is released.
func (d *Driver) AfterPivot(t *tableau.Tableau) {
	t.Render(d.Out, len(t.Hist), false)
	if !t.Interactive {
		return
	}
	for d.prompt(t) {
	}
}

// ChooseColumn is consulted only under tableau.UserChoice; it prompts
// for a 1-based column index and returns 0 (fall back to
// SmallestIndex) on blank input or EOF.
func (d *Driver) ChooseColumn(t *tableau.Tableau) int {
	fmt.Fprint(d.Out, "column (blank = smallest_index): ")
	if !d.In.Scan() {
		return 0
	}
	line := strings.TrimSpace(d.In.Text())
	if line == "" {
		return 0
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n >= t.Cols() {
		d.Log.Warn("bad column choice, falling back", zap.String("input", line))
		return 0
	}
	return n
}

// prompt reads and executes one command, returning true to keep
// prompting (the command was a diagnostic, not a release of control)
// or false once the caller should resume solving.
func (d *Driver) prompt(t *tableau.Tableau) bool {
	fmt.Fprint(d.Out, "command [continue|undo|peek-back|peek-fwd|peek-abort|shake|method <name>|perturbation <on|off>|wolf <on|off>]: ")
	if !d.In.Scan() {
		return false
	}
	fields := strings.Fields(strings.TrimSpace(d.In.Text()))
	if len(fields) == 0 {
		return false
	}

	switch strings.ToLower(fields[0]) {
	case "continue", "c", "":
		return false
	case "undo":
		if err := t.Undo(); err != nil {
			fmt.Fprintln(d.Out, "undo:", err)
		}
	case "peek-back":
		if err := t.PeekBackward(); err != nil {
			fmt.Fprintln(d.Out, "peek-back:", err)
		}
	case "peek-fwd":
		if err := t.PeekForward(); err != nil {
			fmt.Fprintln(d.Out, "peek-fwd:", err)
		}
	case "peek-abort":
		t.PeekAbort()
	case "shake":
		if err := t.Shake(); err != nil {
			fmt.Fprintln(d.Out, "shake:", err)
		}
	case "method":
		if len(fields) < 2 {
			fmt.Fprintln(d.Out, "method: missing name")
			break
		}
		m, ok := parseMethod(fields[1])
		if !ok {
			fmt.Fprintln(d.Out, "method: unknown", fields[1])
			break
		}
		t.Method = m
	case "perturbation":
		t.VirtualPerturbation = parseToggle(fields)
	case "wolf":
		t.FlatWolf = parseToggle(fields)
	default:
		fmt.Fprintln(d.Out, "unrecognized command:", fields[0])
	}
	t.Render(d.Out, len(t.Hist), false)
	return true
}

func parseMethod(s string) (tableau.Method, bool) {
	switch strings.ToLower(s) {
	case "largest_sigma":
		return tableau.LargestSigma, true
	case "smallest_index":
		return tableau.SmallestIndex, true
	case "best_objective":
		return tableau.BestObjective, true
	case "user_choice":
		return tableau.UserChoice, true
	default:
		return 0, false
	}
}

func parseToggle(fields []string) bool {
	if len(fields) < 2 {
		return false
	}
	return strings.EqualFold(fields[1], "on")
}
