// 17 Mar 2021

package entplot

import (
	"fmt"
	"image/png"
	"io"
	"os"

	"github.com/andrew-torda/pepscan/pkg/seq/common"
)

type CmdFlag struct {
	Wd, Ht int  // image size in pixels, 0 for defaults
	Time   bool // unused so far, kept for symmetry with the other tools
}

// Mymain reads the entropy table and writes the plot as a png.
func Mymain(flags *CmdFlag, infile, outfile string) error {
	var rdr io.Reader = os.Stdin
	if infile != "" && infile != "-" {
		fp, err := os.Open(infile)
		if err != nil {
			return err
		}
		defer fp.Close()
		rdr = fp
	}
	tbl, err := ReadTable(rdr)
	if err != nil {
		return fmt.Errorf("fail reading entropy table: %w", err)
	}
	img, err := Render(tbl, flags.Wd, flags.Ht)
	if err != nil {
		return err
	}
	return common.WrtOut(outfile, func(w io.Writer) error {
		return png.Encode(w, img)
	})
}
