// 9 Mar 2021

package common

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WrtOut opens fname for writing, creating any missing directories on
// the way, hands the writer to wrt and closes up. An empty name or
// "-" means standard output. If wrt fails part way, the file is
// removed rather than left half written.
func WrtOut(fname string, wrt func(io.Writer) error) error {
	if fname == "" || fname == "-" {
		return wrt(os.Stdout)
	}
	if _, err := os.Stat(fname); err == nil {
		fmt.Fprintln(os.Stderr, "Warning, trashing old version of", fname)
	}
	if dir := filepath.Dir(fname); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("output directory for %s: %w", fname, err)
		}
	}
	fp, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("creating %s: %w", fname, err)
	}
	if err := wrt(fp); err != nil {
		fp.Close()
		os.Remove(fname)
		return fmt.Errorf("writing %s: %w", fname, err)
	}
	return fp.Close()
}
