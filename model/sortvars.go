package model

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	trailingIndexPattern = regexp.MustCompile(`[0-9]+$`)
	leadingZerosPattern  = regexp.MustCompile(`^0+`)
)

// splitTrailingIndex separates a variable name into its "stripped"
// name part and a trailing numeric index, the way the original LP
// notation expects z1, z2, ..., z10 to sort as z1 < z2 < ... < z10
// rather than lexicographically ("z10" < "z2"). A name with no
// trailing digits gets index -1. A leading '!' (free-variable shadow
// column marker) never participates in the digit search and is
// stripped from the name part.
func splitTrailingIndex(name string) (namePart string, idx int) {
	shadow := strings.HasPrefix(name, "!")
	bare := name
	if shadow {
		bare = name[1:]
	}
	m := trailingIndexPattern.FindStringIndex(bare)
	if m == nil {
		return bare, -1
	}
	digits := bare[m[0]:]
	namePart = bare[:m[0]]
	if z := leadingZerosPattern.FindString(digits); z != "" {
		digits = digits[len(z):]
	}
	if digits == "" {
		return namePart, 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return namePart, 0
	}
	return namePart, n
}

// SortVarNames orders variable names by the model's deterministic
// column-layout rule: primarily by the name with any trailing digit
// run and leading '!' stripped, and secondarily by that trailing index
// as an integer (so z2 sorts before z10). The input slice is not
// mutated; a new sorted slice is returned.
func SortVarNames(names []string) []string {
	type entry struct {
		orig, part string
		idx        int
	}

	working := make([]string, len(names))
	copy(working, names)
	// Seed with a reverse-lexicographic pass: this mirrors the
	// original notation's two-stage stable sort, whose net effect
	// is "namePart ascending, then idx ascending, with ties among
	// equal (namePart, idx) pairs broken by reverse-lexicographic
	// original order" — a degenerate case that only arises for
	// variables that are identical once the prefix/suffix are
	// stripped, which the grammar's uniqueness rule forbids anyway.
	sort.Sort(sort.Reverse(sort.StringSlice(working)))

	entries := make([]entry, len(working))
	for i, v := range working {
		part, idx := splitTrailingIndex(v)
		entries[i] = entry{orig: v, part: part, idx: idx}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].idx < entries[j].idx })
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].part < entries[j].part })

	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.orig
	}
	return out
}
