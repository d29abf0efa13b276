package sequence

// Display conversions for the binary alphabet. These are presentation
// collaborators: the combinatorial operations exchange plain '0'/'1'
// strings, and callers convert at the edge.

// AsString converts a sequence to its letter form: 'O' for Ordinary years,
// 'I' for Intercalary ones.
//
// Errors:
//   - ErrBadSequence — c contains a character outside {'0','1'}.
func AsString(c string) (string, error) {
	out := make([]byte, len(c))
	for i := 0; i < len(c); i++ {
		switch Symbol(c[i]) {
		case Ordinary:
			out[i] = 'O'
		case Intercalary:
			out[i] = 'I'
		default:
			return "", ErrBadSequence
		}
	}

	return string(out), nil
}

// AsInts converts a sequence to a slice of 0s (Ordinary) and 1s
// (Intercalary).
//
// Errors:
//   - ErrBadSequence — c contains a character outside {'0','1'}.
func AsInts(c string) ([]int, error) {
	out := make([]int, len(c))
	for i := 0; i < len(c); i++ {
		switch Symbol(c[i]) {
		case Ordinary:
			out[i] = 0
		case Intercalary:
			out[i] = 1
		default:
			return nil, ErrBadSequence
		}
	}

	return out, nil
}
