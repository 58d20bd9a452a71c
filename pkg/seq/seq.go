// 14 Feb 2021

// Package seq reads protein multiple sequence alignments, which begin
// their lives in fasta format, and gives column-wise access to them.
// An alignment is read once and is read-only afterwards. Everything
// that slides windows or sums entropies sits on top of the column and
// slice views provided here.
package seq

import (
	"errors"
	"fmt"
	"strings"

	"github.com/andrew-torda/matrix"
)

// Seq is one sequence with its fasta comment.
type Seq struct {
	cmmt string
	seq  []byte
}

// We only read ascii characters, so anything bigger than this is not
// valid.
const (
	MaxSym uint8 = 127
)

// Errors the caller may want to pick apart with errors.Is. Anything
// wrapping ErrSeqFormat means the input was not a usable alignment.
// ErrRange means a column or slice index was out of bounds.
var (
	ErrSeqFormat = errors.New("bad alignment format")
	ErrRange     = errors.New("position out of range")
)

// Options contains all the choices passed in from the caller.
type Options struct {
	Vbsty      int
	DiffLenSeq bool // false, unless we allow sequences of different lengths
	NoMmap     bool // read files conventionally, even when we could map them
}

const cmmt_char byte = '>' // introduces comments in fasta format

// MSA is an alignment: a group of sequences of equal length, plus the
// symbol bookkeeping needed for per-site tallies. The mapping array
// tells us which row of the counts matrix a character lives in.
type MSA struct {
	symUsed  [MaxSym]bool  // which symbols are actually used
	mapping  [MaxSym]uint8 // mapping['C'] is the counts row used for C
	revmap   []uint8       // revmap[2] is the character stored in row 2
	seqs     []Seq
	counts   *matrix.FMatrix2d
	usedKnwn bool // do we know which symbols are used ?
	freqKnwn bool // have counts been turned into fractions ?
}

// Cmmt returns the comment without the leading ">".
func (s Seq) Cmmt() string { return s.cmmt }

// GetSeq returns the sequence as the original byte slice.
func (s Seq) GetSeq() []byte { return s.seq }

func (s Seq) Len() int { return len(s.seq) }

// Empty returns true if a sequence has no residues.
func (s Seq) Empty() bool { return len(s.seq) == 0 }

// trimStr trims a string to n bytes if it is longer
func trimStr(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// upper changes a sequence to upper case, in place. It only works
// with bytes, not runes. It returns an error on a symbol that cannot
// occur in a sequence (value of MaxSym or more).
func (s *Seq) upper() error {
	const diff = 'a' - 'A'
	const symerr = "bad sym \"%c\" at position %d starting \"%s\""
	t := s.seq
	for i := 0; i < len(t); i++ {
		c := t[i]
		if c >= MaxSym {
			return fmt.Errorf(symerr, c, i, trimStr(s.cmmt, 40))
		}
		if 'a' <= c && c <= 'z' {
			t[i] -= diff
		}
	}
	return nil
}

// String returns a sequence with its comment at the start.
func (s Seq) String() string {
	return fmt.Sprintf("%c%s\n%s", cmmt_char, s.cmmt, string(s.seq))
}

// NSeq returns the number of sequences.
func (msa *MSA) NSeq() int { return len(msa.seqs) }

// Len returns the alignment length. All sequences have this length.
func (msa *MSA) Len() int {
	if len(msa.seqs) == 0 {
		return 0
	}
	return len(msa.seqs[0].seq)
}

// SeqSlc returns the slice of sequences.
func (msa *MSA) SeqSlc() []Seq { return msa.seqs }

// FindNdx returns the index of the sequence whose comment contains a
// string. Numbering starts from zero. We remove any ">", space or tab
// at the start.
func (msa *MSA) FindNdx(s string) int {
	s = strings.TrimLeft(s, " >\t")
	for i, sq := range msa.seqs {
		if strings.Contains(sq.cmmt, s) {
			return i
		}
	}
	return -1
}

// Column fills out the symbols at position i across all sequences, one
// byte per sequence, in sequence order. The slice is freshly allocated,
// so the caller can scribble on it.
func (msa *MSA) Column(i int) ([]byte, error) {
	if i < 0 || i >= msa.Len() {
		return nil, fmt.Errorf("column %d of 0..%d: %w", i, msa.Len()-1, ErrRange)
	}
	col := make([]byte, len(msa.seqs))
	for j := range msa.seqs {
		col[j] = msa.seqs[j].seq[i]
	}
	return col, nil
}

// Slice returns a new alignment restricted to columns [start, end).
// The sequence bytes are shared with the parent, which is fine since
// alignments are never written to after reading. Tallies are not
// carried over. They are cheap and the slice probably wants its own.
func (msa *MSA) Slice(start, end int) (*MSA, error) {
	if start < 0 || end > msa.Len() || start >= end {
		return nil, fmt.Errorf("slice [%d, %d) of length %d: %w",
			start, end, msa.Len(), ErrRange)
	}
	sub := new(MSA)
	sub.seqs = make([]Seq, len(msa.seqs))
	for i, sq := range msa.seqs {
		sub.seqs[i] = Seq{cmmt: sq.cmmt, seq: sq.seq[start:end]}
	}
	return sub, nil
}

// checkLengths makes sure all sequences are the same length, which is
// what makes a set of sequences an alignment.
func checkLengths(seqs []Seq) error {
	const msg = "sequence lengths differ: first is %d, but %d (%s) is %d: %w"
	iwant := len(seqs[0].seq)
	for i := 1; i < len(seqs); i++ {
		if ilen := len(seqs[i].seq); ilen != iwant {
			return fmt.Errorf(msg, iwant, i+1,
				trimStr(seqs[i].cmmt, 40), ilen, ErrSeqFormat)
		}
	}
	return nil
}

// Str2MSA takes some strings and returns them as an alignment.
// sIn is a slice of strings which are the sequences.
// prefix is optional. Sequences need names. If prefix is not given,
// sequences will be called "s0", "s1", ...
// It is used by tests everywhere, so it panics rather than returning
// an error on unequal lengths.
func Str2MSA(sIn []string, prefix ...string) *MSA {
	base := "s"
	if prefix != nil {
		base = prefix[0]
	}
	msa := new(MSA)
	for i, s := range sIn {
		msa.seqs = append(msa.seqs, Seq{cmmt: fmt.Sprint(base, i), seq: []byte(s)})
	}
	if len(msa.seqs) > 0 {
		if err := checkLengths(msa.seqs); err != nil {
			panic(err.Error())
		}
	}
	return msa
}
