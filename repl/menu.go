package repl

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/corvidlabs/simplex/bnb"
	"github.com/corvidlabs/simplex/model"
	"github.com/corvidlabs/simplex/replay"
	"github.com/corvidlabs/simplex/reporter"
	"github.com/corvidlabs/simplex/tableau"
)

// Menu drives the CLI surface: print the built-in scenarios, read a
// selection, build the chosen model (or one typed in for option 8),
// and run it to completion. For a plain LP every pivot is replayed to
// Out in formula-mode alongside the final report; for an integer model
// only the replay header and model text are written, followed by the
// best integer solution found.
type Menu struct {
	In  *bufio.Scanner
	Out io.Writer
	Log *zap.Logger
}

// NewMenu builds a Menu reading selections from in and writing all
// output — prompts, tableau renders, and the replay dump — to out.
func NewMenu(in io.Reader, out io.Writer, log *zap.Logger) *Menu {
	if log == nil {
		log = zap.NewNop()
	}
	return &Menu{In: bufio.NewScanner(in), Out: out, Log: log}
}

// Print writes the numbered menu, scenarios 0..7 plus option 8.
func (m *Menu) Print() {
	fmt.Fprintln(m.Out, "*** Menu ***")
	for i, s := range Scenarios {
		fmt.Fprintf(m.Out, "%d  %s\n", i, s.Label)
	}
	fmt.Fprintf(m.Out, "%d  %s\n", len(Scenarios), LoadLabel)
	fmt.Fprint(m.Out, "Your choice (hit 'return' to quit) [0-8]: ")
}

// Choose reads one line and parses it as a menu selection in
// 0..len(Scenarios). ErrNoSelection means the input was empty or
// closed (the caller should quit, not retry).
func (m *Menu) Choose() (int, error) {
	if !m.In.Scan() {
		return 0, ErrNoSelection
	}
	line := strings.TrimSpace(m.In.Text())
	if line == "" {
		return 0, ErrNoSelection
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 0 || n > len(Scenarios) {
		return 0, ErrBadSelection
	}
	return n, nil
}

// Build resolves a menu choice into a Model: a built-in Scenario's
// text for 0..7, or lines read from In up to and including "end" for
// the load-a-model option.
func (m *Menu) Build(choice int) (*model.Model, error) {
	if choice < len(Scenarios) {
		return model.Parse(strings.NewReader(Scenarios[choice].Text))
	}
	fmt.Fprintln(m.Out, "Type your model, terminated by a line containing only 'end':")
	var b strings.Builder
	for m.In.Scan() {
		line := m.In.Text()
		b.WriteString(line)
		b.WriteByte('\n')
		if strings.TrimSpace(strings.ToUpper(line)) == "END" {
			break
		}
	}
	return model.Parse(strings.NewReader(b.String()))
}

// Run builds the chosen model and solves it: branch-and-bound for an
// integer model, a single phase-I/II solve otherwise. The replay.Sink
// writes the header and model text to Out in both cases; for a plain
// LP it also records every pivot and the final report. The
// branch-and-bound path records no pivots and prints only the best
// integer node's objective and values.
func (m *Menu) Run(choice int) error {
	mod, err := m.Build(choice)
	if err != nil {
		m.Log.Error("failed to build model", zap.Error(err))
		return err
	}

	sink := replay.NewSink(m.Out)
	sink.WriteHeader()
	sink.WriteModel(mod)

	if mod.HasIntVars() {
		return m.runBnB(mod, sink)
	}
	return m.runLP(mod, sink)
}

func (m *Menu) runLP(mod *model.Model, sink *replay.Sink) error {
	tb, err := tableau.New(mod, tableau.WithInteractor(sink))
	if err != nil {
		m.Log.Error("canonicalization failed", zap.Error(err))
		return err
	}
	if err := tb.Solve(0); err != nil {
		m.Log.Warn("solve did not reach an optimum", zap.Error(err))
		fmt.Fprintln(m.Out, "solve:", err)
		return nil
	}

	rep, err := reporter.New(tb, mod)
	if err != nil {
		m.Log.Error("reporter failed", zap.Error(err))
		return err
	}
	rep.Render(m.Out)
	sink.WriteReport(rep)
	return nil
}

func (m *Menu) runBnB(mod *model.Model, sink *replay.Sink) error {
	driver, err := bnb.NewDriver(mod, 0)
	if err != nil {
		m.Log.Error("branch-and-bound root relaxation failed", zap.Error(err))
		return err
	}
	if err := driver.Run(); err != nil {
		m.Log.Warn("branch-and-bound did not terminate cleanly", zap.Error(err))
	}
	best, ok := driver.BestIntegerNode()
	if !ok {
		fmt.Fprintln(m.Out, "no integer-feasible node found")
		return nil
	}
	fmt.Fprintf(m.Out, "best integer solution: objective = %s\n", best.Objective.String())
	for name, v := range best.Solution {
		fmt.Fprintf(m.Out, "  %s = %s\n", name, v.String())
	}
	return nil
}
