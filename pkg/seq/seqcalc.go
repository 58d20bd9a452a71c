// 20 Feb 2021
// seqcalc does the common per-site calculations on an alignment.
// The functions live here since they need the innards of an MSA.

package seq

import (
	"math"

	"github.com/andrew-torda/matrix"
	. "github.com/andrew-torda/pepscan/pkg/seq/common"
)

const (
	badMap = math.MaxUint8 // marks a symbol as not seen
)

// SetSymUsed fills out the array saying whether a symbol occurs
// anywhere in the alignment.
func (msa *MSA) SetSymUsed() {
	for _, sq := range msa.seqs {
		for _, c := range sq.seq {
			msa.symUsed[c] = true
		}
	}
	msa.usedKnwn = true
}

// mapsyms looks at the symbols used and builds the little arrays that
// map a character to its row in the counts matrix and back again.
func (msa *MSA) mapsyms() {
	if !msa.usedKnwn {
		msa.SetSymUsed()
	}
	for i := range msa.mapping { // initialise with bad value, to
		msa.mapping[i] = badMap //  trap errors later
	}
	var n uint8
	for i := range msa.symUsed {
		if msa.symUsed[i] {
			msa.mapping[i] = n
			msa.revmap = append(msa.revmap, uint8(i))
			n++
		}
	}
}

// UsageSite counts how many of each symbol appear at each site.
// counts.Mat looks like [number_of_symbol_types][length_of_seq].
// We store it as float32, since it will often be normalised to
// fractions later and we can reuse the same matrix.
func (msa *MSA) UsageSite() {
	if len(msa.revmap) == 0 {
		msa.mapsyms()
	}
	nrow := len(msa.revmap)
	ncol := msa.Len()
	msa.counts = matrix.NewFMatrix2d(nrow, ncol)
	for _, sq := range msa.seqs {
		for i, c := range sq.seq {
			msa.counts.Mat[msa.mapping[c]][i] += 1
		}
	}
}

// Counts returns the per-site symbol tallies, computing them on first
// use. The matrix holds raw counts until UsageFrac is called.
func (msa *MSA) Counts() *matrix.FMatrix2d {
	if msa.counts == nil {
		msa.UsageSite()
	}
	return msa.counts
}

// Revmap returns the symbol stored in each row of the counts matrix.
func (msa *MSA) Revmap() []uint8 {
	if len(msa.revmap) == 0 {
		msa.mapsyms()
	}
	return msa.revmap
}

// Mapping returns the counts row for a character, or math.MaxUint8 if
// the character does not occur.
func (msa *MSA) Mapping(c byte) uint8 {
	if len(msa.revmap) == 0 {
		msa.mapsyms()
	}
	return msa.mapping[c]
}

// UsageFrac converts counts to fractions. If gapsAreChar is true, a
// gap is just another symbol. Otherwise a symbol's fraction is the
// fraction of non-gaps at that site in which you find the symbol,
// while the gap row keeps its fraction of the original column total,
// which is what you want when plotting.
func (msa *MSA) UsageFrac(gapsAreChar bool) {
	if msa.counts == nil {
		msa.UsageSite()
	}
	counts := msa.counts
	gappos := msa.Mapping(GapChar)
	thereAreGaps := gappos != badMap

	nrow, ncol := counts.Size()
	total := make([]float32, ncol) // total observations in each column
	for icol := 0; icol < ncol; icol++ {
		for irow := 0; irow < nrow; irow++ {
			total[icol] += counts.Mat[irow][icol]
		}
	}
	var savedGapFrac []float32
	if thereAreGaps && !gapsAreChar {
		savedGapFrac = make([]float32, ncol)
		for icol := range savedGapFrac {
			savedGapFrac[icol] = counts.Mat[gappos][icol] / total[icol]
			total[icol] -= counts.Mat[gappos][icol]
		}
	}
	for icol := 0; icol < ncol; icol++ { // normalise the counts
		for irow := 0; irow < nrow; irow++ {
			if total[icol] != 0 {
				counts.Mat[irow][icol] /= total[icol]
			}
		}
	}
	for icol := range savedGapFrac { // gap fractions are of the
		counts.Mat[gappos][icol] = savedGapFrac[icol] // original totals
	}
	msa.freqKnwn = true
}

// logBase returns the base for logarithms in the entropy calculation.
// We only deal with proteins, so it is 20 residues, plus the gap when
// gaps count as a character.
func (msa *MSA) logBase(gapsAreChar bool) int {
	if gapsAreChar {
		return 21
	}
	return 20
}

// entropyFromFracs is the inner loop. It works on the frequency
// matrix directly, skipping the gap row unless gaps are characters.
func entropyFromFracs(gapsAreChar bool, mat [][]float32, entropy []float32,
	logbase int, gapRow uint8) {
	logfac := 1.0 / math.Log(float64(logbase)) // to change base of logs
	nrow := len(mat)
	ncol := len(mat[0])

	iBadRow := -1
	if !gapsAreChar {
		iBadRow = int(gapRow)
	}
	for icol := 0; icol < ncol; icol++ {
		total := 0.0
		for irow := 0; irow < nrow; irow++ {
			if irow == iBadRow {
				continue
			}
			f := float64(mat[irow][icol])
			if f == 0.0 {
				continue
			}
			total += f * math.Log(f) * logfac
		}
		entropy[icol] = float32(math.Abs(total))
	}
}

// Entropy calculates the per-site sequence entropy. The caller
// allocates space for the result, one entry per alignment column.
// It needs to be told whether gaps are characters or to be ignored.
func (msa *MSA) Entropy(gapsAreChar bool, entropy []float32) {
	if !msa.freqKnwn {
		msa.UsageFrac(gapsAreChar)
	}
	entropyFromFracs(gapsAreChar, msa.counts.Mat, entropy,
		msa.logBase(gapsAreChar), msa.Mapping(GapChar))
}
