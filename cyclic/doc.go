// Package cyclic treats a string as a ring and answers questions that
// ordinary substring search cannot: membership and windowing across the
// seam where the last position joins the first.
//
// What:
//
//   - Pad exposes wraparound substrings by appending a prefix of the string
//     to its own tail, so plain substring search becomes cyclic search.
//   - Segments / SegmentsAll extract the distinct fixed-width windows of one
//     ring or of a whole collection, sorted for determinism.
//   - InCycle reports whether a sequence occurs anywhere on a ring,
//     including across the seam.
//   - FindInCycles filters a collection of rings down to those containing a
//     sequence, preserving input order.
//
// Why:
//
//   - Calendar cycles: match an attested run of ordinary/intercalary years
//     against candidate intercalation cycles regardless of starting year.
//   - Necklace reduction: two equal-length strings are rotations of one
//     another iff one occurs in the other's full padding (see necklace/).
//   - Pattern inventories: list every distinct k-year stretch a cycle emits.
//
// Complexity:
//
//   - Pad:          O(L+w), Memory: O(L+w)          (L = ring length, w = window).
//   - Segments:     O(L·m + L·log L), Memory: O(L·m) (m = segment width).
//   - InCycle:      O(L + t), Memory: O(L+t)         (t = test length).
//   - FindInCycles: one InCycle per member.
//
// Errors:
//
//   - ErrSegmentWidth: requested segment width is below one.
//
// All functions are pure: inputs are never mutated, results are fresh values.
package cyclic
