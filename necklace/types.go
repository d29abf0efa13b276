// Package necklace - sentinel errors for rotation-equivalence reduction.
package necklace

import "errors"

// ErrUnequalLength indicates input sequences of differing lengths, for
// which rotation equivalence is undefined.
var ErrUnequalLength = errors.New("necklace: all sequences must have equal length")
