// Reader for fasta format files.

package seq

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

// An item is terminated by a newline if we are in a comment or a
// comment character ">" if we are in a sequence.
const (
	NL = '\n'
)

type item struct {
	data     []byte
	complete bool
	err      error // a real read error, carried to the consumer
}

type lexer struct {
	input []byte
	ichan chan *item
	msa   *MSA
	rdr   io.Reader
	cmmt  string // partial comment
	seq   []byte // partial sequence
	term  byte
	err   error
}

const defaultReadSize = 512

var rdsize int = defaultReadSize

// setFastaRdSize is only used during testing, to force buffer
// boundaries into awkward places.
func setFastaRdSize(i int) {
	if i <= 2 {
		panic("setFastaRdSize given buffer length of 2 or less")
	}
	rdsize = i
}

// next reads from the input and sends items down ichan. An item is
// terminated by l.term, the end of the buffer or end of input. At end
// of input we send one last complete item so the consumer can finish
// whatever it was collecting.
func (l *lexer) next() {
	for {
		if len(l.input) == 0 {
			buf := make([]byte, rdsize)
			n, err := l.rdr.Read(buf)
			if n == 0 {
				it := &item{complete: true} // flush
				if err != nil && err != io.EOF {
					it.err = err // a real error, not just EOF
				}
				l.ichan <- it
				close(l.ichan)
				return
			}
			l.input = buf[:n]
		}

		it := new(item)
		if ndx := bytes.IndexByte(l.input, l.term); ndx == -1 {
			it.data = l.input // no terminator found, so just send
			l.input = nil     // back whatever we have in the buffer
		} else { //                             We did find a terminator
			it.data = l.input[:ndx]
			l.input = l.input[ndx+1:]
			it.complete = true
			if l.term == NL {
				l.term = cmmt_char
			} else {
				l.term = NL
			}
		}
		l.ichan <- it
	}
}

type stateFn func(*lexer) stateFn

// removeWhite strips whitespace from sequence data, in a fresh slice
// so nothing points back into the read buffer.
func removeWhite(s []byte) []byte {
	out := make([]byte, 0, len(s))
	for _, c := range s {
		switch c {
		case ' ', '\t', '\n', '\v', '\f', '\r':
		default:
			out = append(out, c)
		}
	}
	return out
}

// gcmmt collects a comment line.
func gcmmt(l *lexer) stateFn {
	it := <-l.ichan
	if it == nil {
		return nil
	}
	if it.err != nil {
		l.err = it.err
		return nil
	}
	l.cmmt = l.cmmt + string(it.data)
	if it.complete {
		// Only the first comment in a file still has its ">". The
		// others lose theirs as the previous sequence's terminator.
		if len(l.cmmt) > 0 && l.cmmt[0] == cmmt_char {
			l.cmmt = l.cmmt[1:]
		}
		return gseq
	}
	return gcmmt
}

// gseq collects sequence data until the next comment or end of input.
func gseq(l *lexer) stateFn {
	it := <-l.ichan
	if it == nil {
		return nil
	}
	if it.err != nil {
		l.err = it.err
		return nil
	}
	l.seq = append(l.seq, removeWhite(it.data)...)
	if it.complete {
		if len(l.seq) == 0 && l.cmmt == "" {
			return nil // end of input, nothing pending
		}
		if len(l.seq) == 0 {
			l.err = fmt.Errorf("zero length sequence after %q: %w",
				trimStr(l.cmmt, 40), ErrSeqFormat)
			return nil
		}
		l.msa.seqs = append(l.msa.seqs, Seq{cmmt: l.cmmt, seq: l.seq})
		l.cmmt = ""
		l.seq = nil
		return gcmmt
	}
	return gseq
}

// ReadMSA reads a fasta formatted alignment from rdr. Sequences are
// uppercased and, unless s_opts.DiffLenSeq is set, must all have the
// same length.
func ReadMSA(rdr io.Reader, s_opts *Options) (*MSA, error) {
	msa := new(MSA)
	l := &lexer{rdr: rdr, ichan: make(chan *item, 2), msa: msa, term: NL}

	go l.next()
	for state := gcmmt; state != nil; {
		state = state(l)
	}
	if l.err != nil {
		go func() { // unblock the generator before leaving
			for range l.ichan {
			}
		}()
		return nil, l.err
	}
	if msa.NSeq() == 0 {
		return nil, fmt.Errorf("no sequences found: %w", ErrSeqFormat)
	}
	for i := range msa.seqs {
		if err := msa.seqs[i].upper(); err != nil {
			return nil, fmt.Errorf("%v: %w", err, ErrSeqFormat)
		}
	}
	if !s_opts.DiffLenSeq {
		if err := checkLengths(msa.seqs); err != nil {
			return nil, err
		}
	}
	return msa, nil
}

// ReadMSAFile reads an alignment given a filename. An empty name means
// standard input. Regular files are mapped rather than read, which was
// noticeably faster on big alignments. Anything that will not map, a
// pipe or some odd filesystem, falls back to ordinary reads.
func ReadMSAFile(fname string, s_opts *Options) (*MSA, error) {
	if fname == "" {
		return ReadMSA(os.Stdin, s_opts)
	}
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	if !s_opts.NoMmap {
		if mm, err := mmap.Map(fp, mmap.RDONLY, 0); err == nil {
			defer mm.Unmap()
			return ReadMSA(bytes.NewReader(mm), s_opts)
		}
	}
	return ReadMSA(fp, s_opts)
}
