package calendar

import (
	"errors"
	"slices"
	"sync"

	"github.com/katalvlaran/metonic/necklace"
	"github.com/katalvlaran/metonic/sequence"
)

// ErrPosition indicates a cycle position outside 1..CycleLength.
var ErrPosition = errors.New("calendar: position must be between 1 and 19")

const (
	// Athens is the intercalation pattern attested for classical Athens:
	// a rotation of one of the three rule-compliant 19-year cycles.
	Athens = "0100100101001001010"

	// YearZero is the astronomical year of position 1 of cycle 1 —
	// 432/431 BCE, the first year of Meton's cycle at Athens.
	// Astronomical numbering: 1 BCE is year 0, earlier years are negative.
	YearZero = -431

	// CycleLength is the span of one Metonic cycle in years.
	CycleLength = 19
)

// ToMetonic converts an astronomical year to its Metonic coordinates:
// the 1-based cycle number and the 1-based position (1..19) within it.
//
// Floor division keeps the mapping exact for years before the epoch:
// ToMetonic(YearZero-1) is (0, 19), not (1, 0).
func ToMetonic(year int) (cycle, pos int) {
	d := year - YearZero
	q, r := d/CycleLength, d%CycleLength
	if r < 0 {
		q--
		r += CycleLength
	}

	return q + 1, r + 1
}

// FromMetonic converts Metonic coordinates back to an astronomical year.
// It is the exact inverse of ToMetonic for every year.
//
// Errors:
//   - ErrPosition — pos outside 1..19.
func FromMetonic(cycle, pos int) (int, error) {
	if pos < 1 || pos > CycleLength {
		return 0, ErrPosition
	}

	return (cycle-1)*CycleLength + YearZero + (pos - 1), nil
}

// defaultCycles computes the canonical cycle set for the default rule
// once; the rule is a compile-time constant, so failure would be a
// programming error inside this module.
var defaultCycles = sync.OnceValues(func() ([]string, error) {
	return necklace.CycleSet(sequence.DefaultRule())
})

// Cycles returns the three canonical 19-year cycles admitted by the
// classical Metonic rules, in ascending order. The result is a fresh copy;
// callers may reorder or modify it freely.
func Cycles() ([]string, error) {
	cs, err := defaultCycles()
	if err != nil {
		return nil, err
	}

	return slices.Clone(cs), nil
}
