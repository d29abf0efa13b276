package sequence

// Generate — exhaustive binary enumeration
//
// Description:
//
//	Generate produces every length-n sequence over {Ordinary, Intercalary},
//	in ascending order of the sequence's value read as a binary integer,
//	most-significant symbol first — the same order as counting 0..2^n-1
//	zero-padded to width n.
//
// The order is a contract, not a convenience: necklace reduction keeps the
// first rotation it encounters as the canonical representative of each
// necklace, so reordering the output changes which rotation is canonical.
//
// Algorithm Outline:
//  1. Start from the all-Ordinary sequence (value 0) in a mutable buffer.
//  2. Emit the buffer, then increment it as a binary odometer: flip trailing
//     Intercalary symbols back to Ordinary, then raise the next position.
//  3. Stop after the all-Intercalary sequence (value 2^n-1) is emitted.
//
// Complexity:
//
//	Time   = O(n·2^n)
//	Memory = O(n·2^n) for the returned slice
//
// Errors:
//   - ErrLength         — n < 1.
//   - ErrLengthOverflow — n > 62 (counter would not fit in an int).
func Generate(n int) ([]string, error) {
	if n < 1 {
		return nil, ErrLength
	}
	if n > maxLength {
		return nil, ErrLengthOverflow
	}

	out := make([]string, 0, 1<<uint(n))
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(Ordinary)
	}

	for {
		out = append(out, string(buf))

		// Binary odometer increment, least-significant position last.
		j := n - 1
		for j >= 0 && buf[j] == byte(Intercalary) {
			buf[j] = byte(Ordinary)
			j--
		}
		if j < 0 {
			break
		}
		buf[j] = byte(Intercalary)
	}

	return out, nil
}
