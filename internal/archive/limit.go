package archive

import (
	"errors"
	"io"
)

// ErrBodyTooLarge is returned by a bounded reader as soon as the
// source would exceed the configured maximum. It fires before the
// excess bytes are buffered anywhere; it is the system's only defense
// against an unbounded response body.
var ErrBodyTooLarge = errors.New("response body exceeds the configured maximum download size")

// BoundReader wraps r so that reading more than max bytes fails with
// ErrBodyTooLarge.
func BoundReader(r io.Reader, max int64) io.Reader {
	return &boundedReader{r: r, remaining: max}
}

type boundedReader struct {
	r         io.Reader
	remaining int64
}

func (b *boundedReader) Read(p []byte) (int, error) {
	if b.remaining <= 0 {
		// The budget is spent; any further byte means the body is too
		// large, a clean EOF means it fit exactly.
		var probe [1]byte
		n, err := b.r.Read(probe[:])
		if n > 0 {
			return 0, ErrBodyTooLarge
		}
		if err != nil {
			return 0, err
		}
		return 0, nil
	}

	if int64(len(p)) > b.remaining {
		p = p[:b.remaining]
	}
	n, err := b.r.Read(p)
	b.remaining -= int64(n)
	return n, err
}
