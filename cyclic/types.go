// Package cyclic - sentinel errors for ring operations.
package cyclic

import "errors"

// ErrSegmentWidth indicates a requested segment width below one.
var ErrSegmentWidth = errors.New("cyclic: segment width must be at least 1")
