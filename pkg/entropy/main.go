// 12 Mar 2021
// Entropy per alignment column, written as a small table for the
// plotting tool to eat.

package entropy

import (
	"fmt"
	"io"
	"time"

	"github.com/andrew-torda/pepscan/pkg/seq"
	"github.com/andrew-torda/pepscan/pkg/seq/common"
)

// TSVHeader is the first line of the entropy table and what the
// plotting side looks for before believing a file.
const TSVHeader = "pos\tentropy"

type CmdFlag struct {
	GapsAreChar bool // is a gap a valid symbol ?
	Offset      int  // added to the position numbering on output
	Time        bool // print run time ?
	Vbsty       int
}

// WriteTable writes positions and entropies as two tab separated
// columns. Positions are 1-based, plus whatever offset the caller
// asked for.
func WriteTable(w io.Writer, entropy []float32, offset int) error {
	if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
		return err
	}
	for i, v := range entropy {
		if _, err := fmt.Fprintf(w, "%d\t%.4f\n", i+1+offset, v); err != nil {
			return err
		}
	}
	return nil
}

// Mymain reads an alignment, calculates per-column entropy and writes
// the table.
func Mymain(flags *CmdFlag, infile, outfile string) error {
	if flags.Time {
		startTime := time.Now()
		defer func() {
			fmt.Println("finished after", time.Since(startTime).Milliseconds(), "ms")
		}()
	}

	msa, err := seq.ReadMSAFile(infile, &seq.Options{Vbsty: flags.Vbsty})
	if err != nil {
		return fmt.Errorf("fail reading alignment: %w", err)
	}

	entropy := make([]float32, msa.Len())
	msa.Entropy(flags.GapsAreChar, entropy)

	return common.WrtOut(outfile, func(w io.Writer) error {
		return WriteTable(w, entropy, flags.Offset)
	})
}
