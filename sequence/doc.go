// Package sequence generates fixed-length binary sequences exhaustively and
// narrows them with symbol-count and cyclic run-length constraints.
//
// 🚀 What is sequence?
//
//	The enumeration front end of the metonic pipeline:
//		• Generate: all 2^n length-n sequences over {Ordinary, Intercalary},
//		  in ascending binary-value order
//		• FilterByCount: keep sequences whose intercalary count belongs to an
//		  allowed set
//		• FilterByMaxRun: keep sequences with no run of a symbol longer than a
//		  bound, evaluated on the ring (the run may wrap the seam)
//		• Combinations: the composed Generate → count → run pipeline driven
//		  by a Rule
//
// ✨ Key properties:
//
//   - Order is load-bearing: Generate's ascending order flows through the
//     filters unchanged, so downstream necklace reduction always picks the
//     numerically smallest rotation it meets first as canonical.
//   - Filters are pure and composable; each returns a fresh slice that
//     preserves the relative order of its input.
//   - DefaultRule reproduces the classical Metonic rule set: 19 years,
//     exactly 7 intercalary, never two intercalary in a row, never three
//     ordinary in a row — exactly 57 survivors (3 necklaces × 19 rotations).
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/metonic/sequence"
//
//	seqs, err := sequence.Combinations(sequence.DefaultRule())
//	// seqs holds 57 sequences of length 19, ascending
//
// Performance:
//
//   - Generate:       O(n·2^n) time, O(n·2^n) memory — exponential by nature;
//     callers bound n.
//   - FilterByCount:  O(S·n) over S input sequences.
//   - FilterByMaxRun: O(S·n) with a (maxRun+1)-window cyclic padding probe.
//
// Errors:
//
//   - ErrLength:         n below 1.
//   - ErrLengthOverflow: n too large for the enumeration counter.
//   - ErrEmptyCountSet:  empty allowed-count set.
//   - ErrNegativeCount:  negative member in the allowed-count set.
//   - ErrNegativeRun:    negative run-length bound.
//   - ErrUnknownSymbol:  symbol outside the binary alphabet.
//   - ErrBadSequence:    display conversion met a character outside {0,1}.
//
// See necklace/ for reduction of these candidates to canonical cycles.
package sequence
