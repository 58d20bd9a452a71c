// 22 Mar 2021

// Package randseq makes random protein alignments in fasta format.
// Only the tests use it, but it is its own package so all the tests
// can share it.
package randseq

import (
	"fmt"
	"io"
	"math/rand"

	. "github.com/andrew-torda/pepscan/pkg/seq/common"
)

// The twenty standard amino acids.
const letters = "ACDEFGHIKLMNPQRSTVWY"

// Args says what kind of alignment to make.
type Args struct {
	Iseed   int64   // random number seed
	Nseq    int     // number of sequences
	Len     int     // length of each sequence
	GapFrac float32 // fraction of positions turned into gaps
	MkErr   bool    // deliberately break one sequence's length
}

// Write makes Nseq random sequences of length Len and writes them as
// fasta to wrtr. With the same seed you get the same alignment, which
// is the whole point for testing.
func Write(wrtr io.Writer, args *Args) error {
	rnd := rand.New(rand.NewSource(args.Iseed))
	for i := 0; i < args.Nseq; i++ {
		slen := args.Len
		if args.MkErr && i == args.Nseq-1 {
			slen++ // last sequence is the wrong length
		}
		s := make([]byte, slen)
		for j := range s {
			if args.GapFrac > 0 && rnd.Float32() < args.GapFrac {
				s[j] = GapChar
			} else {
				s[j] = letters[rnd.Intn(len(letters))]
			}
		}
		if _, err := fmt.Fprintf(wrtr, "> rnd %d\n%s\n", i, s); err != nil {
			return err
		}
	}
	return nil
}
