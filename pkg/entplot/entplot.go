// 16 Mar 2021

// Package entplot turns the per-column entropy table into a line
// plot. It reads the two column table the entropy command writes and
// renders a png. It shares nothing with the window scanner except the
// idea of an alignment position.
package entplot

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"strconv"
	"strings"

	"github.com/andrew-torda/pepscan/pkg/entropy"
	"github.com/golang/freetype/raster"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ErrTable is wrapped by errors from a table we cannot make sense of.
var ErrTable = errors.New("bad entropy table")

// Table is the parsed entropy profile, one entry per column.
type Table struct {
	Pos []int
	Ent []float64
}

// ReadTable parses the pos/entropy table. The header line must be
// present. Blank lines are allowed, anything else that does not parse
// is an error. Extra columns after the second are ignored.
func ReadTable(rdr io.Reader) (*Table, error) {
	scn := bufio.NewScanner(rdr)
	if !scn.Scan() {
		return nil, fmt.Errorf("empty input: %w", ErrTable)
	}
	if hd := strings.TrimSpace(scn.Text()); hd != entropy.TSVHeader {
		return nil, fmt.Errorf("header is %q, want %q: %w",
			hd, entropy.TSVHeader, ErrTable)
	}
	tbl := new(Table)
	for nline := 2; scn.Scan(); nline++ {
		line := strings.TrimSpace(scn.Text())
		if line == "" {
			continue
		}
		flds := strings.Split(line, "\t")
		if len(flds) < 2 {
			return nil, fmt.Errorf("line %d: want pos<tab>entropy: %w",
				nline, ErrTable)
		}
		pos, err := strconv.Atoi(flds[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: position %q: %w", nline, flds[0], ErrTable)
		}
		ent, err := strconv.ParseFloat(flds[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: entropy %q: %w", nline, flds[1], ErrTable)
		}
		tbl.Pos = append(tbl.Pos, pos)
		tbl.Ent = append(tbl.Ent, ent)
	}
	if err := scn.Err(); err != nil {
		return nil, err
	}
	if len(tbl.Pos) == 0 {
		return nil, fmt.Errorf("no data rows: %w", ErrTable)
	}
	return tbl, nil
}

const (
	dfltWd = 900
	dfltHt = 300
	marL   = 50 // room for y labels
	marR   = 15
	marT   = 15
	marB   = 35 // room for x labels and title
)

var lineTeal = color.RGBA{0, 0x80, 0x80, 0xff}

func hline(img *image.RGBA, x0, x1, y int, c color.Color) {
	for x := x0; x <= x1; x++ {
		img.Set(x, y, c)
	}
}

func vline(img *image.RGBA, x, y0, y1 int, c color.Color) {
	for y := y0; y <= y1; y++ {
		img.Set(x, y, c)
	}
}

// fixp converts plot coordinates to the 26.6 fixed point the
// rasterizer wants.
func fixp(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(x*64 + 0.5),
		Y: fixed.Int26_6(y*64 + 0.5),
	}
}

// Render draws the entropy profile into a fresh image. Zero width or
// height mean the defaults. The polyline is stroked with the freetype
// rasterizer so it does not look like a staircase.
func Render(tbl *Table, wd, ht int) (*image.RGBA, error) {
	if wd <= 0 {
		wd = dfltWd
	}
	if ht <= 0 {
		ht = dfltHt
	}
	if len(tbl.Pos) < 2 {
		return nil, fmt.Errorf("need at least two points to plot: %w", ErrTable)
	}

	img := image.NewRGBA(image.Rect(0, 0, wd, ht))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	x0, y0 := marL, ht-marB // origin, bottom left
	x1, y1 := wd-marR, marT

	pmin, pmax := float64(tbl.Pos[0]), float64(tbl.Pos[0])
	emax := 0.0
	for i := range tbl.Pos {
		p := float64(tbl.Pos[i])
		if p < pmin {
			pmin = p
		}
		if p > pmax {
			pmax = p
		}
		if tbl.Ent[i] > emax {
			emax = tbl.Ent[i]
		}
	}
	if pmax == pmin {
		pmax = pmin + 1
	}
	if emax <= 0 {
		emax = 1 // a flat, fully conserved profile still gets axes
	}
	xAt := func(p float64) float64 {
		return float64(x0) + (p-pmin)/(pmax-pmin)*float64(x1-x0)
	}
	yAt := func(e float64) float64 {
		return float64(y0) - e/emax*float64(y0-y1)
	}

	hline(img, x0, x1, y0, color.Black)
	vline(img, x0, y1, y0, color.Black)

	rst := raster.NewRasterizer(wd, ht)
	rst.UseNonZeroWinding = true
	var path raster.Path
	path.Start(fixp(xAt(float64(tbl.Pos[0])), yAt(tbl.Ent[0])))
	for i := 1; i < len(tbl.Pos); i++ {
		path.Add1(fixp(xAt(float64(tbl.Pos[i])), yAt(tbl.Ent[i])))
	}
	rst.AddStroke(path, fixed.Int26_6(96), raster.RoundCapper, raster.RoundJoiner)
	painter := raster.NewRGBAPainter(img)
	painter.SetColor(lineTeal)
	rst.Rasterize(painter)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
	}
	for i := 0; i <= 4; i++ { // x ticks, five of them
		p := pmin + (pmax-pmin)*float64(i)/4
		x := int(xAt(p))
		vline(img, x, y0, y0+4, color.Black)
		s := strconv.Itoa(int(p + 0.5))
		d.Dot = fixed.P(x-len(s)*7/2, y0+18)
		d.DrawString(s)
	}
	for i := 0; i <= 2; i++ { // y ticks at 0, half, max
		e := emax * float64(i) / 2
		y := int(yAt(e))
		hline(img, x0-4, x0, y, color.Black)
		s := strconv.FormatFloat(e, 'f', 2, 64)
		d.Dot = fixed.P(x0-8-len(s)*7, y+4)
		d.DrawString(s)
	}
	d.Dot = fixed.P((x0+x1)/2-63, ht-6)
	d.DrawString("alignment position")
	d.Dot = fixed.P(4, marT-2)
	d.DrawString("entropy")

	return img, nil
}
