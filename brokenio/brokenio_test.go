package brokenio_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	. "github.com/andrew-torda/pepscan/brokenio"
)

func TestFailAfter(t *testing.T) {
	rdr := NewReader(strings.NewReader(strings.Repeat("a", 100)), 30)
	b, err := io.ReadAll(rdr)
	if !errors.Is(err, ErrBroken) {
		t.Fatal("wanted ErrBroken, got", err)
	}
	if len(b) != 30 {
		t.Fatal("wanted 30 bytes before the failure, got", len(b))
	}
}

func TestFailImmediately(t *testing.T) {
	rdr := NewReader(strings.NewReader("abc"), 0)
	var p [8]byte
	if _, err := rdr.Read(p[:]); !errors.Is(err, ErrBroken) {
		t.Fatal("wanted ErrBroken on first read, got", err)
	}
}
