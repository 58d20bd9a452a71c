// 10 Mar 2021
// Scan a protein multiple sequence alignment with a sliding window
// and rank the windows by conservation.

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/andrew-torda/pepscan/pkg/pepscan"
	. "github.com/andrew-torda/pepscan/pkg/seq/common"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[flags] [infile]")
	long := `Given no arguments, the alignment is read from stdin.
The window table (-tsv) and consensus fasta (-fasta) default to stdout,
so you normally want to name at least one of them.`
	fmt.Fprintln(os.Stderr, long)
	flag.PrintDefaults()
}

func main() {
	var flags pepscan.CmdFlag
	var infile string

	flag.IntVar(&flags.Width, "w", pepscan.DfltWidth, "window width in residues")
	flag.StringVar(&flags.TSV, "tsv", "", "file for the ranked window table")
	flag.StringVar(&flags.Fasta, "fasta", "", "file for the consensus sequences")
	flag.BoolVar(&flags.EmptyColX, "x", false, "write X, not a gap, for all-gap consensus columns")
	flag.BoolVar(&flags.Time, "t", false, "print out timing information")
	flag.IntVar(&flags.Vbsty, "v", 1, "verbosity")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 0 {
		infile = flag.Arg(0)
	}

	if err := pepscan.Mymain(&flags, infile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
