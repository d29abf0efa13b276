package necklace

import (
	"sort"
	"strings"

	"github.com/katalvlaran/metonic/cyclic"
	"github.com/katalvlaran/metonic/sequence"
)

// Reduce — rotation-equivalence reduction
//
// Description:
//
//	Reduce walks seqs in order and keeps the first-met representative of
//	each necklace, returning the accepted cycles in acceptance order.
//
// Algorithm Outline:
//  1. Keep an accepted list and, for each accepted cycle, its cached full
//     padding Pad(c, len(c)) — the doubled form containing every rotation
//     of c as a contiguous substring.
//  2. For each candidate: discard it if it occurs inside any cached
//     padding (its necklace is already represented); otherwise accept it
//     and cache its own padding.
//  3. Return the accepted list.
//
// The loop is deliberately iterative. The input is exponential in the
// sequence length, and one-candidate-per-call recursion would tie stack
// depth to input size rather than to the (small) number of necklaces.
//
// Input contract: seqs is pre-ordered by the caller — the reducer never
// re-sorts, so supplying the sequence pipeline's ascending order makes the
// numerically smallest rotation of each necklace canonical. An empty input
// reduces to an empty cycle set.
//
// Complexity:
//
//	Time   = O(S·k·L) substring probes (S input, k accepted, length L)
//	Memory = O(k·L) for accepted cycles and their paddings
//
// Errors:
//   - ErrUnequalLength — seqs mixes sequence lengths.
func Reduce(seqs []string) ([]string, error) {
	if len(seqs) == 0 {
		return nil, nil
	}

	length := len(seqs[0])
	var accepted, padded []string

	for _, c := range seqs {
		if len(c) != length {
			return nil, ErrUnequalLength
		}

		known := false
		for _, p := range padded {
			if strings.Contains(p, c) {
				known = true
				break
			}
		}
		if known {
			continue
		}

		accepted = append(accepted, c)
		padded = append(padded, cyclic.Pad(c, len(c)))
	}

	return accepted, nil
}

// CycleSet generates and reduces in one step: the sequence pipeline for
// rule r, already in ascending order, reduced to its canonical cycles.
//
// CycleSet(sequence.DefaultRule()) yields the three possible 19-year
// Metonic cycles.
func CycleSet(r sequence.Rule) ([]string, error) {
	seqs, err := sequence.Combinations(r)
	if err != nil {
		return nil, err
	}

	return Reduce(seqs)
}

// CycleSetOf reduces an externally supplied candidate list. The input is
// copied and sorted lexicographically first (for equal-length binary
// strings this is exactly ascending binary-value order), so canonical
// selection does not depend on the caller's ordering.
func CycleSetOf(seqs []string) ([]string, error) {
	ordered := append([]string(nil), seqs...)
	sort.Strings(ordered)

	return Reduce(ordered)
}
