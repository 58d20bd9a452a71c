// brokenio wraps an io.Reader so we can make reads fail exactly where
// we want. Typical use: you have a reader going into some parsing
// code and want to see what the parser does when the disk, network or
// whatever lets it down part way through.

package brokenio

import (
	"errors"
	"io"
)

// ErrBroken is the error handed out at the failure point, so tests
// can check it came from here and nowhere else.
var ErrBroken = errors.New("injected read failure")

// Reader passes data through until failAfter bytes have gone by, then
// fails every read. A failAfter of zero fails on the first read,
// which is what a zero length file looks like to most callers.
type Reader struct {
	rdr       io.Reader
	failAfter int
	nRead     int
}

// NewReader wraps rdr. After failAfter bytes, reads return ErrBroken.
func NewReader(rdr io.Reader, failAfter int) *Reader {
	return &Reader{rdr: rdr, failAfter: failAfter}
}

func (r *Reader) Read(p []byte) (int, error) {
	if r.nRead >= r.failAfter {
		return 0, ErrBroken
	}
	if left := r.failAfter - r.nRead; len(p) > left {
		p = p[:left]
	}
	n, err := r.rdr.Read(p)
	r.nRead += n
	return n, err
}
