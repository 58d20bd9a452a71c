package pepscan_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andrew-torda/pepscan/pkg/conswin"
	. "github.com/andrew-torda/pepscan/pkg/pepscan"
	"github.com/andrew-torda/pepscan/pkg/seq"
	"github.com/andrew-torda/pepscan/pkg/seq/common"
)

const alnPerfect = `> s1
ACDEFKLMNPQRSTVWYACD
> s2
GHIKLKLMNPQRSTVWYACD
> s3
MNPQRKLMNPQRSTVWYACD
`

// TestRun drives the whole thing: read, scan, write both files into
// directories that do not exist yet.
func TestRun(t *testing.T) {
	fname, err := common.WrtTemp(alnPerfect)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	dir := t.TempDir()
	flags := CmdFlag{
		Width: 15,
		TSV:   filepath.Join(dir, "tables", "windows.tsv"),
		Fasta: filepath.Join(dir, "peptides", "consensus.fa"),
	}
	if err := Mymain(&flags, fname); err != nil {
		t.Fatal(err)
	}

	tsv, err := os.ReadFile(flags.TSV)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(tsv), "\n"), "\n")
	if lines[0] != conswin.TSVHeader {
		t.Fatal("tsv header is", lines[0])
	}
	if nwant := 20 - 15 + 1 + 1; len(lines) != nwant {
		t.Fatal("tsv has", len(lines), "lines, wanted", nwant)
	}
	if lines[1] != "6\t20\t1.000" {
		t.Fatal("top tsv row is", lines[1])
	}

	fa, err := os.ReadFile(flags.Fasta)
	if err != nil {
		t.Fatal(err)
	}
	falines := strings.Split(string(fa), "\n")
	if falines[0] != ">Pos6-20_cons1.000" {
		t.Fatal("top fasta id is", falines[0])
	}
	if falines[1] != "KLMNPQRSTVWYACD" {
		t.Fatal("top consensus is", falines[1])
	}
}

// TestDefaultWidth: a zero width in the flags means the 15 residue
// default, not an error.
func TestDefaultWidth(t *testing.T) {
	fname, err := common.WrtTemp(alnPerfect)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	dir := t.TempDir()
	flags := CmdFlag{
		TSV:   filepath.Join(dir, "w.tsv"),
		Fasta: filepath.Join(dir, "c.fa"),
	}
	if err := Mymain(&flags, fname); err != nil {
		t.Fatal(err)
	}
}

// TestWideWindow: width beyond the alignment gives the header and
// nothing else.
func TestWideWindow(t *testing.T) {
	fname, err := common.WrtTemp(alnPerfect)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	dir := t.TempDir()
	flags := CmdFlag{
		Width: 30,
		TSV:   filepath.Join(dir, "w.tsv"),
		Fasta: filepath.Join(dir, "c.fa"),
		Vbsty: 0,
	}
	if err := Mymain(&flags, fname); err != nil {
		t.Fatal(err)
	}
	tsv, err := os.ReadFile(flags.TSV)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimRight(string(tsv), "\n") != conswin.TSVHeader {
		t.Fatal("expected only the header, got", string(tsv))
	}
	if fa, _ := os.ReadFile(flags.Fasta); len(fa) != 0 {
		t.Fatal("expected an empty fasta, got", string(fa))
	}
}

func TestBadInputs(t *testing.T) {
	dir := t.TempDir()
	flags := CmdFlag{Width: 15, TSV: filepath.Join(dir, "w.tsv")}
	if err := Mymain(&flags, "/no/such/alignment.fa"); err == nil {
		t.Fatal("missing input should fail")
	}

	ragged := "> s1\nACDE\n> s2\nACD\n"
	fname, err := common.WrtTemp(ragged)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	if err := Mymain(&flags, fname); !errors.Is(err, seq.ErrSeqFormat) {
		t.Fatal("ragged alignment should give ErrSeqFormat, got", err)
	}

	good, err := common.WrtTemp(alnPerfect)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(good)
	flags.Width = -1
	if err := Mymain(&flags, good); !errors.Is(err, conswin.ErrWidth) {
		t.Fatal("negative width should give ErrWidth, got", err)
	}
}
