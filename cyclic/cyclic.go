package cyclic

import (
	"sort"
	"strings"
)

// Pad — cyclic padding
//
// Description:
//
//	Pad appends the first window-1 characters of s to its own tail, so that
//	every length-window substring of the ring — including those spanning the
//	seam between the last and first positions — appears as an ordinary
//	contiguous substring of the result.
//
// Key property (used by necklace reduction): for equal-length a and b,
// b is a rotation of a iff b occurs as a substring of Pad(a, len(a)).
//
// The window may exceed len(s); the prefix contribution is then capped at
// the whole of s, so the result never exceeds twice the input length.
// Windows of 1 or less add nothing and return s unchanged.
//
// Complexity: O(len(s)+window) time and memory.
func Pad(s string, window int) string {
	k := window - 1
	if k <= 0 {
		return s
	}
	if k > len(s) {
		k = len(s)
	}

	return s + s[:k]
}

// Segments returns the distinct length-m windows of the ring cycle, sorted
// lexicographically. One window starts at each of the len(cycle) original
// positions; windows that would run past the padded form are truncated, so
// for m > len(cycle) some results are shorter than m.
//
// Returns ErrSegmentWidth when m < 1.
//
// Complexity: O(L·m + L·log L) time, O(L·m) memory.
func Segments(cycle string, m int) ([]string, error) {
	if m < 1 {
		return nil, ErrSegmentWidth
	}

	padded := Pad(cycle, m)
	seen := make(map[string]struct{}, len(cycle))
	for i := 0; i < len(cycle); i++ {
		end := i + m
		if end > len(padded) {
			end = len(padded)
		}
		seen[padded[i:end]] = struct{}{}
	}

	return sortedKeys(seen), nil
}

// SegmentsAll returns the union of Segments over every member of cycles,
// deduplicated and sorted lexicographically.
//
// Returns ErrSegmentWidth when m < 1.
func SegmentsAll(cycles []string, m int) ([]string, error) {
	if m < 1 {
		return nil, ErrSegmentWidth
	}

	seen := make(map[string]struct{})
	for _, c := range cycles {
		padded := Pad(c, m)
		for i := 0; i < len(c); i++ {
			end := i + m
			if end > len(padded) {
				end = len(padded)
			}
			seen[padded[i:end]] = struct{}{}
		}
	}

	return sortedKeys(seen), nil
}

// InCycle reports whether test occurs on the ring cycle, including
// occurrences that span the seam between the last and first positions.
// A test longer than the padded form of cycle never matches.
//
// Complexity: O(len(cycle)+len(test)) time.
func InCycle(test, cycle string) bool {
	return strings.Contains(Pad(cycle, len(test)), test)
}

// FindInCycles returns the members of cycles on which test occurs,
// in input order. An empty result is not an error: it simply means no
// member contains the test sequence.
func FindInCycles(test string, cycles []string) []string {
	var matches []string
	for _, c := range cycles {
		if InCycle(test, c) {
			matches = append(matches, c)
		}
	}

	return matches
}

// sortedKeys flattens a string set into a sorted slice.
func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)

	return out
}
