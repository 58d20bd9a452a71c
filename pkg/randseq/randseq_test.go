package randseq_test

import (
	"bytes"
	"errors"
	"testing"

	. "github.com/andrew-torda/pepscan/pkg/randseq"
	"github.com/andrew-torda/pepscan/pkg/seq"
)

// Same seed, same alignment. That is the property everything else
// relies on.
func TestDeterministic(t *testing.T) {
	var b1, b2 bytes.Buffer
	args := Args{Iseed: 99, Nseq: 4, Len: 50, GapFrac: 0.2}
	if err := Write(&b1, &args); err != nil {
		t.Fatal(err)
	}
	if err := Write(&b2, &args); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b1.Bytes(), b2.Bytes()) {
		t.Fatal("two runs with one seed differ")
	}
}

func TestReadable(t *testing.T) {
	var b bytes.Buffer
	args := Args{Iseed: 3, Nseq: 6, Len: 40}
	if err := Write(&b, &args); err != nil {
		t.Fatal(err)
	}
	msa, err := seq.ReadMSA(&b, &seq.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if msa.NSeq() != 6 || msa.Len() != 40 {
		t.Fatal("got", msa.NSeq(), "seqs of", msa.Len())
	}
}

// MkErr breaks a length, which the alignment reader must catch.
func TestMkErr(t *testing.T) {
	var b bytes.Buffer
	args := Args{Iseed: 3, Nseq: 3, Len: 20, MkErr: true}
	if err := Write(&b, &args); err != nil {
		t.Fatal(err)
	}
	if _, err := seq.ReadMSA(&b, &seq.Options{}); !errors.Is(err, seq.ErrSeqFormat) {
		t.Fatal("wanted ErrSeqFormat, got", err)
	}
}
