// 10 Mar 2021
// The innards of the pepscan command. Read an alignment, scan it with
// a sliding window, write the ranked table and the consensus fasta.

package pepscan

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/andrew-torda/pepscan/pkg/conswin"
	"github.com/andrew-torda/pepscan/pkg/seq"
	"github.com/andrew-torda/pepscan/pkg/seq/common"
)

// DfltWidth is the window width if the caller says nothing, 15
// residues, a typical peptide length.
const DfltWidth = 15

// CmdFlag is the set of options passed in from the command line.
type CmdFlag struct {
	Width     int    // window width in residues
	TSV       string // where the ranked window table goes
	Fasta     string // where the consensus sequences go
	EmptyColX bool   // write 'X', not a gap, for empty consensus columns
	Time      bool   // print run time at the end ?
	Vbsty     int
}

// Mymain is the main function for scanning an alignment. Both output
// files default to stdout, which is only useful for one of them at a
// time, but handy when poking around.
func Mymain(flags *CmdFlag, infile string) error {
	if flags.Time {
		startTime := time.Now()
		end := func() { // closure, so we get the right time
			fmt.Println("finished after", time.Since(startTime).Milliseconds(), "ms")
		}
		defer end()
	}
	if flags.Width == 0 {
		flags.Width = DfltWidth
	}

	s_opts := &seq.Options{Vbsty: flags.Vbsty}
	msa, err := seq.ReadMSAFile(infile, s_opts)
	if err != nil {
		return fmt.Errorf("fail reading alignment: %w", err)
	}
	if flags.Vbsty > 2 {
		fmt.Fprintln(os.Stderr, "read", msa.NSeq(),
			"sequences of length", msa.Len())
	}

	c_opts := &conswin.Options{}
	if flags.EmptyColX {
		c_opts.EmptyCol = 'X'
	}
	wins, err := conswin.Scan(msa, flags.Width, c_opts)
	if err != nil {
		return err
	}
	if len(wins) == 0 && flags.Vbsty > 0 {
		fmt.Fprintln(os.Stderr, "window of", flags.Width,
			"is wider than the alignment,", msa.Len(), "- no windows")
	}

	err = common.WrtOut(flags.TSV, func(w io.Writer) error {
		return conswin.WriteTSV(w, wins)
	})
	if err != nil {
		return err
	}
	return common.WrtOut(flags.Fasta, func(w io.Writer) error {
		return conswin.WriteFasta(w, wins)
	})
}
