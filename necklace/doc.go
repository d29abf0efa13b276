// Package necklace collapses lists of equal-length binary sequences to one
// canonical representative per rotation-equivalence class.
//
// What:
//
//   - Two equal-length sequences are equivalent when one is a rotation of
//     the other; the equivalence class is a necklace, and the first member
//     met in input order becomes its canonical cycle.
//   - Reduce walks a pre-ordered candidate list and keeps exactly one
//     representative per necklace, in first-acceptance order.
//   - CycleSet and CycleSetOf are the composed entry points: one drives the
//     sequence pipeline from a Rule, the other sorts an arbitrary list
//     before reducing it.
//
// Why:
//
//   - Intercalation cycles are rings of years with no distinguished start:
//     the 57 sequences satisfying the classical Metonic rules are just the
//     19 rotations of each of 3 genuinely different cycles.
//   - Any rotation-invariant inventory (segment sets, membership queries)
//     only needs the canonical cycles.
//
// How (the padding trick):
//
//	For a cycle c of length L, Pad(c, L) = c ++ c[0:L-1] contains every
//	rotation of c as a contiguous length-L substring. A candidate is
//	therefore discarded exactly when it occurs inside the cached padding of
//	an already-accepted cycle.
//
// The reduction is an explicit loop over an accepted-list accumulator, not
// recursion: candidate counts grow as 2^n and recursion depth would grow
// with the input, not with the output.
//
// Complexity:
//
//   - Reduce: O(S·k·L) substring probes (S candidates, k accepted cycles,
//     length L); constraint filtering keeps k small in practice.
//
// Errors:
//
//   - ErrUnequalLength: input mixes sequence lengths, so rotation
//     equivalence is undefined.
//
// Determinism: callers of Reduce supply deterministically ordered input
// (the sequence pipeline's ascending order, or any sorted order); the
// reducer itself never re-sorts, so representative selection is exactly
// reproducible.
package necklace
