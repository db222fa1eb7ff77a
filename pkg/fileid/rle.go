package fileid

import "github.com/go-faster/errors"

// maxRun is the longest zero run a single (0, n) pair can describe.
const maxRun = 255

// rleEncode replaces every run of zero bytes with the pair (0, runLength).
// Runs longer than 255 bytes are written as several consecutive pairs.
func rleEncode(b []byte) []byte {
	out := make([]byte, 0, len(b))
	n := 0
	for _, c := range b {
		if c == 0 {
			n++
			if n == maxRun {
				out = append(out, 0, maxRun)
				n = 0
			}
			continue
		}
		if n > 0 {
			out = append(out, 0, byte(n))
			n = 0
		}
		out = append(out, c)
	}
	if n > 0 {
		out = append(out, 0, byte(n))
	}
	return out
}

// rleDecode expands (0, runLength) pairs produced by rleEncode.
func rleDecode(b []byte) ([]byte, error) {
	out := make([]byte, 0, len(b)*2)
	for i := 0; i < len(b); i++ {
		if b[i] != 0 {
			out = append(out, b[i])
			continue
		}
		if i+1 == len(b) {
			return nil, errors.Wrap(ErrMalformedInput, "zero byte without run length")
		}
		i++
		for n := 0; n < int(b[i]); n++ {
			out = append(out, 0)
		}
	}
	return out, nil
}
