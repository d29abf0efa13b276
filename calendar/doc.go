// Package calendar holds the Metonic calendar collaborators: the attested
// Athenian intercalation pattern, the epoch constant, and the arithmetic
// between astronomical years and (cycle, position) pairs.
//
// What:
//
//   - Athens — the 19-year intercalation pattern attested for classical
//     Athens, as a binary ring string.
//   - YearZero — the astronomical year in which cycle 1 begins
//     (432 BCE, the first year of Meton's cycle).
//   - ToMetonic / FromMetonic — floor-division conversion between an
//     astronomical year and its 1-based (cycle, position) coordinates.
//   - Cycles — the three canonical 19-year cycles admitted by the default
//     rule set, computed once and cached.
//
// Why:
//
//   - Astronomical year numbering makes BCE arithmetic uniform: 1 BCE is
//     year 0, 2 BCE is -1, and so on; floor division keeps the conversion
//     exact on both sides of the epoch.
//   - The constants live here, not in the combinatorial packages: the core
//     works on anonymous rings and knows nothing about Athens.
//
// Errors:
//
//   - ErrPosition: a position outside 1..19 in FromMetonic.
package calendar
