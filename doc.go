// Package metonic is your in-memory playground for enumerating, filtering,
// and reducing binary cycles — from raw combinatorial generation to
// rotation-unique necklaces and cyclic substring search.
//
// 🚀 What is metonic?
//
//	A small, pure-Go library for fixed-length binary sequences treated as
//	rings (cycles):
//		• Generation: every length-n sequence of ordinary (0) and intercalary (1) symbols
//		• Filtering: symbol-count membership & cyclic run-length constraints
//		• Reduction: collapse rotations of the same ring to one canonical necklace
//		• Search: cyclic substring membership & unique fixed-width segments
//		• Calendar: Metonic cycle/position arithmetic for astronomical years
//
// ✨ Why choose metonic?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – ascending enumeration order fixes which rotation of a
//     necklace becomes its canonical representative
//   - Pure Go – no cgo, no hidden deps in the core packages
//   - Historically grounded – the default rule set reproduces the classical
//     19-year Metonic intercalation cycle (7 intercalary years, never two in
//     a row, never three ordinary years in a row)
//
// Under the hood, everything is organized under small subpackages:
//
//	cyclic/   — cyclic padding, segment extraction & ring substring search
//	sequence/ — exhaustive generation + count/run-length constraint filters
//	necklace/ — rotation-equivalence reduction to canonical cycle sets
//	calendar/ — Metonic year arithmetic & the attested Athenian cycle
//	cmd/      — the metonic command-line tool
//
// Quick ASCII example:
//
//	    0───1
//	   ╱     ╲
//	  0       0      the ring "010010": rotations "100100",
//	   ╲     ╱       "001001", … are the same necklace
//	    1───0
//
// Dive into each subpackage's doc.go for full examples, complexity notes,
// and the classical Metonic rule set.
//
//	go get github.com/katalvlaran/metonic
package metonic
