// 3 Mar 2021

// Package conswin slides a fixed-width window over a protein
// alignment, scores each window by its mean per-column conservation
// and derives a consensus peptide for it. Conservation of a column is
// the fraction of its informative residues, no gaps, no ambiguity
// codes, taken up by the most common residue. A column with nothing
// informative in it scores zero.
//
// Windows come back sorted by score, highest first. Equal scores keep
// their left-to-right order, so two runs on the same input always
// agree. Coordinates in a Window are 1-based and inclusive, which is
// what ends up in the output files.
package conswin

import (
	"errors"
	"fmt"
	"sort"

	"github.com/andrew-torda/pepscan/pkg/seq"
	. "github.com/andrew-torda/pepscan/pkg/seq/common"
)

// ErrWidth is wrapped by errors from a window width that makes no
// sense (zero or negative). A width merely bigger than the alignment
// is not an error. It just gives no windows.
var ErrWidth = errors.New("bad window width")

// ConsThresh is the majority fraction a residue needs before we
// believe it as the consensus for a column. Below it we write 'X'.
const ConsThresh = 0.7

// Options are the knobs for a scan. The zero value does the right
// thing.
type Options struct {
	// EmptyCol is emitted for a consensus column with no informative
	// residues at all. Zero means the gap character.
	EmptyCol byte
}

// Window is one scored stretch of the alignment.
type Window struct {
	Score      float64
	Start, End int // 1-based, inclusive
	Consensus  string
}

// colScores computes the conservation of every column, once, from the
// alignment's raw per-site tallies. The counts matrix must still hold
// counts, not fractions, so do not call this after UsageFrac.
func colScores(msa *seq.MSA) []float64 {
	counts := msa.Counts()
	revmap := msa.Revmap()
	scores := make([]float64, msa.Len())
	for i := range scores {
		var best, total float32
		for irow, c := range revmap {
			if !Informative(c) {
				continue
			}
			n := counts.Mat[irow][i]
			total += n
			if n > best {
				best = n
			}
		}
		if total > 0 {
			scores[i] = float64(best) / float64(total)
		}
	}
	return scores
}

// consensus builds the consensus string for one window's sub-alignment.
// Ties for the majority residue go to whichever residue reached the
// count first, which is fixed by sequence order, so repeat runs agree.
func consensus(sub *seq.MSA, emptyCol byte) string {
	out := make([]byte, sub.Len())
	for i := range out {
		col, _ := sub.Column(i) // i is in range by construction
		var cnt [seq.MaxSym]int
		var best byte
		bestN, total := 0, 0
		for _, c := range col {
			if !Informative(c) {
				continue
			}
			cnt[c]++
			total++
			if cnt[c] > bestN {
				bestN, best = cnt[c], c
			}
		}
		switch {
		case total == 0:
			out[i] = emptyCol
		case float64(bestN)/float64(total) >= ConsThresh:
			out[i] = best
		default:
			out[i] = 'X'
		}
	}
	return string(out)
}

// Scan scores every window of the given width and returns them ranked
// by score, each with its consensus. A width bigger than the alignment
// gives an empty, non-nil slice. The window mean is kept by a sliding
// sum, adding the incoming column and dropping the outgoing one, so
// each column's score is only computed once.
func Scan(msa *seq.MSA, width int, opts *Options) ([]Window, error) {
	if width <= 0 {
		return nil, fmt.Errorf("window width %d: %w", width, ErrWidth)
	}
	if opts == nil {
		opts = &Options{}
	}
	emptyCol := opts.EmptyCol
	if emptyCol == 0 {
		emptyCol = GapChar
	}

	length := msa.Len()
	if width > length {
		return []Window{}, nil
	}

	scores := colScores(msa)
	wins := make([]Window, 0, length-width+1)
	var sum float64
	for i := 0; i < width; i++ {
		sum += scores[i]
	}
	for s := 0; ; s++ {
		wins = append(wins, Window{
			Score: sum / float64(width),
			Start: s + 1,
			End:   s + width,
		})
		if s+width >= length {
			break
		}
		sum += scores[s+width] - scores[s]
	}

	sort.SliceStable(wins, func(i, j int) bool {
		return wins[i].Score > wins[j].Score
	})

	for i := range wins {
		sub, err := msa.Slice(wins[i].Start-1, wins[i].End)
		if err != nil {
			return nil, err
		}
		wins[i].Consensus = consensus(sub, emptyCol)
	}
	return wins, nil
}
