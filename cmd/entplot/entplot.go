// 17 Mar 2021
// Plot the entropy table as a png.

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/andrew-torda/pepscan/pkg/entplot"
	. "github.com/andrew-torda/pepscan/pkg/seq/common"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]),
		"[flags] [infile [outfile]]")
	fmt.Fprintln(os.Stderr,
		"Reads the pos/entropy table the entropy command writes, plots it as a png.")
	flag.PrintDefaults()
}

func main() {
	var flags entplot.CmdFlag
	var infile, outfile string

	flag.IntVar(&flags.Wd, "W", 0, "image width in pixels (0 = default)")
	flag.IntVar(&flags.Ht, "H", 0, "image height in pixels (0 = default)")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 0 {
		infile = flag.Arg(0)
		if flag.NArg() > 1 {
			outfile = flag.Arg(1)
		}
	}
	if err := entplot.Mymain(&flags, infile, outfile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
