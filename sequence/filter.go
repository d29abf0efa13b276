package sequence

import (
	"strings"

	"github.com/katalvlaran/metonic/cyclic"
)

// FilterByCount keeps the sequences whose number of Intercalary symbols is a
// member of allowed, preserving relative input order. The input slice is
// never mutated; the result is a fresh slice.
//
// The allowed set must be non-empty and non-negative. Scalar-to-set
// normalization belongs to callers (see Rule.WithCounts); this operation
// accepts only the uniform set form.
//
// Errors:
//   - ErrEmptyCountSet — allowed is empty.
//   - ErrNegativeCount — allowed contains a negative member.
//
// Complexity: O(S·n) over S sequences of length n.
func FilterByCount(seqs []string, allowed []int) ([]string, error) {
	if len(allowed) == 0 {
		return nil, ErrEmptyCountSet
	}
	member := make(map[int]struct{}, len(allowed))
	for _, c := range allowed {
		if c < 0 {
			return nil, ErrNegativeCount
		}
		member[c] = struct{}{}
	}

	kept := make([]string, 0, len(seqs))
	for _, s := range seqs {
		if _, ok := member[strings.Count(s, string(Intercalary))]; ok {
			kept = append(kept, s)
		}
	}

	return kept, nil
}

// FilterByMaxRun keeps the sequences containing no run of sym longer than
// maxRun when the sequence is read as a ring, preserving relative input
// order.
//
// The probe is cyclic padding with window maxRun+1: a sequence is rejected
// iff its padded form contains maxRun+1 consecutive occurrences of sym.
// A maxRun of 0 therefore bans the symbol outright.
//
// Edge case, verified by tests rather than assumed: when len(seq) ≤ maxRun
// the padding cannot wrap far enough to tell one long wraparound run from
// the whole ring being a single run of sym, so a sequence consisting
// entirely of sym is rejected as soon as its padded form reaches maxRun+1
// characters, and kept when even full doubling stays shorter than the
// forbidden run.
//
// Errors:
//   - ErrNegativeRun   — maxRun < 0.
//   - ErrUnknownSymbol — sym outside the binary alphabet.
//
// Complexity: O(S·(n+maxRun)) over S sequences of length n.
func FilterByMaxRun(seqs []string, sym Symbol, maxRun int) ([]string, error) {
	if maxRun < 0 {
		return nil, ErrNegativeRun
	}
	if sym != Ordinary && sym != Intercalary {
		return nil, ErrUnknownSymbol
	}

	forbidden := strings.Repeat(string(sym), maxRun+1)
	kept := make([]string, 0, len(seqs))
	for _, s := range seqs {
		if !strings.Contains(cyclic.Pad(s, maxRun+1), forbidden) {
			kept = append(kept, s)
		}
	}

	return kept, nil
}

// Combinations runs the full enumeration pipeline for rule r:
// Generate, then the count filter, then the run filter for each symbol.
// The result preserves ascending enumeration order.
//
// With DefaultRule this reproduces the classical Metonic candidate list:
// 57 sequences, the 19 rotations of each of 3 necklaces.
//
// Any sentinel error from the underlying stages is returned unchanged.
func Combinations(r Rule) ([]string, error) {
	seqs, err := Generate(r.Length)
	if err != nil {
		return nil, err
	}

	if seqs, err = FilterByCount(seqs, r.Counts); err != nil {
		return nil, err
	}
	if seqs, err = FilterByMaxRun(seqs, Intercalary, r.MaxI); err != nil {
		return nil, err
	}
	if seqs, err = FilterByMaxRun(seqs, Ordinary, r.MaxO); err != nil {
		return nil, err
	}

	return seqs, nil
}
