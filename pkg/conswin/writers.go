// 5 Mar 2021

package conswin

import (
	"fmt"
	"io"
)

// TSVHeader is the first line of the window table.
const TSVHeader = "start\tend\tmean_conservation"

const cPerLine = 60 // fasta line width, same as everywhere else

// WriteTSV writes the ranked windows as a tab separated table, one
// row per window, scores to three decimals.
func WriteTSV(w io.Writer, wins []Window) error {
	if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
		return err
	}
	for _, wn := range wins {
		_, err := fmt.Fprintf(w, "%d\t%d\t%.3f\n", wn.Start, wn.End, wn.Score)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteFasta writes a fasta record per window, ranked order, with the
// coordinates and score packed into the identifier.
func WriteFasta(w io.Writer, wins []Window) error {
	for _, wn := range wins {
		_, err := fmt.Fprintf(w, ">Pos%d-%d_cons%.3f\n", wn.Start, wn.End, wn.Score)
		if err != nil {
			return err
		}
		s := wn.Consensus
		for ; len(s) > cPerLine; s = s[cPerLine:] {
			if _, err := fmt.Fprintln(w, s[:cPerLine]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}
