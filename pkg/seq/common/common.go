// 11 Jan 2021

// Package common holds the few constants shared by every part of the
// program, so nobody has to import the seq package just to learn what
// a gap looks like.
package common

import (
	"fmt"
	"io"
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

const GapChar byte = '-' // a minus sign is always used for gaps

// Ambiguity codes one meets in protein alignments. They say a residue
// is present, but not reliably which one, so they carry no information
// for conservation tallies.
const AmbigChars = "XBJZ"

var ambig = [256]bool{'X': true, 'B': true, 'J': true, 'Z': true}

// Informative says whether a symbol takes part in conservation
// counting. Gaps and ambiguity codes do not.
func Informative(c byte) bool {
	if c == GapChar {
		return false
	}
	return !ambig[c]
}

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail")
	}

	if _, err := io.WriteString(f_tmp, s); err != nil {
		return "", fmt.Errorf("writing string to temp file %v", f_tmp.Name())
	}
	name := f_tmp.Name()
	f_tmp.Close()
	return name, nil
}
