package model

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/corvidlabs/simplex/rational"
)

// parseStage tracks where the reader is within the grammar.
type parseStage int

const (
	stageObjective parseStage = iota
	stageSubjectTo
	stageBody
)

// Parse reads the textual model grammar (see package doc) from r and
// returns a normalized Model. Parsing stops at a line containing only
// "end"; a reader that never produces one yields ErrParse once input
// is exhausted.
func Parse(r io.Reader) (*Model, error) {
	scanner := bufio.NewScanner(r)
	stage := stageObjective
	var m *Model
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()

		name, body, ok := stripCommentAndName(raw)
		if !ok {
			continue // full-line "##" comment
		}
		body = strings.TrimSpace(body)
		if body == "" {
			continue
		}
		upper := strings.ToUpper(body)

		switch stage {
		case stageObjective:
			mm, err := parseObjectiveLine(upper)
			if err != nil {
				return nil, fmt.Errorf("model: line %d: %w", lineNo, err)
			}
			m = mm
			stage = stageSubjectTo

		case stageSubjectTo:
			collapsed := strings.Join(strings.Fields(upper), " ")
			switch collapsed {
			case "ST", "S.T.", "SUBJECT TO", "SUCH THAT":
				stage = stageBody
			default:
				return nil, fmt.Errorf("model: line %d: %w: expected 'st', 's.t.', 'subject to', or 'such that'", lineNo, ErrParse)
			}

		case stageBody:
			if collapsed := strings.Join(strings.Fields(upper), " "); collapsed == "END" {
				return m, nil
			}
			if err := parseBodyLine(m, upper, name); err != nil {
				return nil, fmt.Errorf("model: line %d: %w", lineNo, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("model: unterminated model (no 'end' line): %w", ErrParse)
}

// stripCommentAndName strips a trailing '#'-comment and an optional
// leading "name)" row label. It returns ok=false for a full-line "##"
// comment, which callers should simply skip.
func stripCommentAndName(line string) (name, body string, ok bool) {
	if strings.HasPrefix(line, "##") {
		return "", "", false
	}
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	if i := strings.IndexByte(line, ')'); i >= 0 {
		name = line[:i+1]
		line = line[i+1:]
	}
	return name, line, true
}

func parseObjectiveLine(upper string) (*Model, error) {
	if len(upper) < 4 {
		return nil, fmt.Errorf("%w: objective must start with MAX/MIN", ErrParse)
	}
	prefix := upper[:4]
	var maximize bool
	switch prefix {
	case "MAX ":
		maximize = true
	case "MIN ":
		maximize = false
	default:
		return nil, fmt.Errorf("%w: objective must start with MAX/MIN", ErrParse)
	}
	terms, err := parseTerms(upper[4:])
	if err != nil {
		return nil, err
	}
	m := New(maximize)
	if err := m.SetObjective(terms); err != nil {
		return nil, err
	}
	return m, nil
}

func parseBodyLine(m *Model, upper, name string) error {
	switch {
	case strings.HasPrefix(upper, "FREE:"):
		for _, v := range splitNames(upper[len("FREE:"):]) {
			if err := m.MarkFree(v); err != nil {
				return err
			}
		}
		return nil
	case strings.HasPrefix(upper, "INT:"):
		for _, v := range splitNames(upper[len("INT:"):]) {
			if err := m.MarkInt(v); err != nil {
				return err
			}
		}
		return nil
	case strings.HasPrefix(upper, "BIN:"):
		for _, v := range splitNames(upper[len("BIN:"):]) {
			if err := m.MarkBin(v); err != nil {
				return err
			}
		}
		return nil
	default:
		return parseConstraintLine(m, upper, name)
	}
}

func splitNames(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// relOperators is checked longest-first so "<=" is not mistaken for "<".
var relOperators = []struct {
	op  string
	rel Relation
}{
	{">=", GE},
	{"<=", LE},
	{"==", EQ},
	{"=", EQ},
	{"<", LE},
	{">", GE},
}

func parseConstraintLine(m *Model, upper, name string) error {
	var (
		opIdx   = -1
		opLen   int
		relVal  Relation
		matched bool
	)
	for i := 0; i < len(upper); i++ {
		for _, cand := range relOperators {
			if strings.HasPrefix(upper[i:], cand.op) {
				opIdx, opLen, relVal, matched = i, len(cand.op), cand.rel, true
				break
			}
		}
		if matched {
			break
		}
	}
	if !matched {
		return fmt.Errorf("%w: no comparison operator found", ErrParse)
	}
	lhs := strings.TrimSpace(upper[:opIdx])
	rhsText := strings.TrimSpace(upper[opIdx+opLen:])

	terms, err := parseTerms(lhs)
	if err != nil {
		return err
	}
	rhs, err := rational.Parse(rhsText)
	if err != nil {
		return fmt.Errorf("%w: illegal number %q", ErrParse, rhsText)
	}
	return m.AddConstraint(terms, relVal, rhs, strings.ToUpper(strings.TrimSpace(name)))
}

// parseTerms parses a signed sum of "[coef]var" terms into a
// variable -> coefficient map. Each variable may appear at most once.
func parseTerms(s string) (map[string]rational.Rational, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty linear expression", ErrParse)
	}

	var terms []string
	var signs []byte
	var cur strings.Builder
	leadingConsumed := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '+' || c == '-' {
			if i == 0 {
				signs = append(signs, c)
				leadingConsumed = true
				continue
			}
			terms = append(terms, strings.TrimSpace(cur.String()))
			signs = append(signs, c)
			cur.Reset()
			continue
		}
		cur.WriteByte(c)
	}
	terms = append(terms, strings.TrimSpace(cur.String()))
	if terms[len(terms)-1] == "" {
		return nil, fmt.Errorf("%w: expression must not end with a sign", ErrParse)
	}
	if !leadingConsumed {
		signs = append([]byte{'+'}, signs...)
	}
	if len(terms) != len(signs) {
		return nil, fmt.Errorf("%w: malformed expression", ErrParse)
	}

	out := make(map[string]rational.Rational, len(terms))
	for i, t := range terms {
		if t == "" {
			return nil, fmt.Errorf("%w: malformed expression", ErrParse)
		}
		pos := firstLetterIndex(t)
		if pos < 0 {
			return nil, fmt.Errorf("%w: term %q has no variable", ErrParse, t)
		}
		varName := t[pos:]
		if !varNamePattern.MatchString(varName) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidVarName, varName)
		}
		if _, dup := out[varName]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateVarInRow, varName)
		}
		coeffText := "1"
		if pos > 0 {
			coeffText = strings.TrimSpace(t[:pos])
		}
		if signs[i] == '-' {
			coeffText = "-" + coeffText
		}
		coeff, err := rational.Parse(coeffText)
		if err != nil {
			return nil, fmt.Errorf("%w: illegal coefficient %q", ErrParse, coeffText)
		}
		out[varName] = coeff
	}
	return out, nil
}

func firstLetterIndex(s string) int {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
			return i
		}
	}
	return -1
}
