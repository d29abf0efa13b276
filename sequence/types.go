// Package sequence - core types, options, and sentinel errors.
package sequence

import "errors"

// Sentinel errors for sequence operations.
var (
	// ErrLength indicates a requested sequence length below 1.
	ErrLength = errors.New("sequence: length must be at least 1")
	// ErrLengthOverflow indicates a length too large for the enumeration counter.
	ErrLengthOverflow = errors.New("sequence: length exceeds enumerable range")
	// ErrEmptyCountSet indicates an empty allowed-count set.
	ErrEmptyCountSet = errors.New("sequence: allowed count set must not be empty")
	// ErrNegativeCount indicates a negative member in the allowed-count set.
	ErrNegativeCount = errors.New("sequence: allowed counts must be non-negative")
	// ErrNegativeRun indicates a negative run-length bound.
	ErrNegativeRun = errors.New("sequence: max run length must be non-negative")
	// ErrUnknownSymbol indicates a symbol outside the binary alphabet.
	ErrUnknownSymbol = errors.New("sequence: symbol must be Ordinary or Intercalary")
	// ErrBadSequence indicates a character outside the binary alphabet.
	ErrBadSequence = errors.New("sequence: sequence may contain only '0' and '1'")
)

// Symbol is one member of the binary alphabet sequences are written in.
type Symbol byte

const (
	// Ordinary is the '0' symbol (an ordinary, 12-month year).
	Ordinary Symbol = '0'
	// Intercalary is the '1' symbol (an intercalary, 13-month year).
	Intercalary Symbol = '1'
)

// maxLength bounds Generate so the 2^n enumeration counter fits in an int.
// Tractability below that bound is the caller's concern.
const maxLength = 62

// Rule bundles the constraint set for one generation run.
//
// Fields:
//   - Length — sequence length n; every produced sequence has exactly n symbols.
//   - Counts — allowed numbers of Intercalary symbols (set membership).
//   - MaxI   — longest allowed run of Intercalary symbols, read cyclically.
//   - MaxO   — longest allowed run of Ordinary symbols, read cyclically.
type Rule struct {
	Length int
	Counts []int
	MaxI   int
	MaxO   int
}

// DefaultRule returns the classical Metonic rule set: 19 years, exactly 7
// intercalary, no two intercalary years in a row, no more than two ordinary
// years in a row.
func DefaultRule() Rule {
	return Rule{
		Length: 19,
		Counts: []int{7},
		MaxI:   1,
		MaxO:   2,
	}
}

// WithCounts returns a copy of r with its allowed-count set replaced.
// It is the scalar-or-set boundary: a caller holding a single required count
// writes r.WithCounts(7), one holding alternatives writes r.WithCounts(6, 7).
func (r Rule) WithCounts(counts ...int) Rule {
	r.Counts = counts

	return r
}
