package entropy_test

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"strings"
	"testing"

	. "github.com/andrew-torda/pepscan/pkg/entropy"
	"github.com/andrew-torda/pepscan/pkg/seq"
	"github.com/andrew-torda/pepscan/pkg/seq/common"
)

func approxEqual(x, y float32) bool {
	const eps = 1e-5
	d := x - y
	return d < eps && d > -eps
}

// TestValues checks the entropy numbers on columns we can do in our
// heads. Logs are base 20 for proteins.
func TestValues(t *testing.T) {
	log20 := func(x float64) float64 { return math.Log(x) / math.Log(20) }
	msa := seq.Str2MSA([]string{"AAC", "AAG"})
	// col 0 and 1 conserved, col 2 split 50:50
	want := []float32{0, 0, float32(-log20(0.5))}

	got := make([]float32, msa.Len())
	msa.Entropy(false, got)
	for i := range got {
		if !approxEqual(got[i], want[i]) {
			t.Fatal("entropy col", i, "got", got[i], "want", want[i])
		}
	}
}

// TestGapsIgnored: a column that is one residue plus gaps has zero
// entropy when gaps are not characters.
func TestGapsIgnored(t *testing.T) {
	msa := seq.Str2MSA([]string{"AA", "A-", "A-"})
	got := make([]float32, msa.Len())
	msa.Entropy(false, got)
	if !approxEqual(got[1], 0) {
		t.Fatal("gappy column entropy got", got[1], "want 0")
	}
}

func TestWriteTable(t *testing.T) {
	var b bytes.Buffer
	if err := WriteTable(&b, []float32{0, 0.75649}, 0); err != nil {
		t.Fatal(err)
	}
	want := TSVHeader + "\n1\t0.0000\n2\t0.7565\n"
	if b.String() != want {
		t.Fatalf("table:\n%swanted:\n%s", b.String(), want)
	}
}

// TestMymain goes from a file of sequences to a file of numbers.
func TestMymain(t *testing.T) {
	in := "> s1\nAAC\n> s2\nAAG\n"
	fname, err := common.WrtTemp(in)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	outfile := fmt.Sprintf("%s/ent.tsv", t.TempDir())

	flags := CmdFlag{}
	if err := Mymain(&flags, fname, outfile); err != nil {
		t.Fatal(err)
	}
	out, err := os.ReadFile(outfile)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	if lines[0] != TSVHeader {
		t.Fatal("header is", lines[0])
	}
	if len(lines) != 4 {
		t.Fatal("wanted 3 data rows, got", len(lines)-1)
	}
	if lines[1] != "1\t0.0000" {
		t.Fatal("first row is", lines[1])
	}
}
