package wfc

import (
	"bufio"
	"io"
	"strings"
)

// Observer receives the grid after each collapse step.
type Observer interface {
	Observe(step int, at Coord, g *Grid)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(step int, at Coord, g *Grid)

// Observe calls f.
func (f ObserverFunc) Observe(step int, at Coord, g *Grid) { f(step, at, g) }

// Dump writes one line per row: each cell's mask in binary, a " | "
// separator, then the row's glyphs. A blank line ends the snapshot.
func (g *Grid) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	size := g.cfg.Size
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			bw.WriteByte(' ')
			bw.WriteString(g.cells.At(x, y).Binary())
		}
		bw.WriteString(" | ")
		for x := 0; x < size; x++ {
			bw.WriteRune(g.cells.At(x, y).Glyph())
		}
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')
	return bw.Flush()
}

// String returns the Dump text.
func (g *Grid) String() string {
	var sb strings.Builder
	_ = g.Dump(&sb)
	return sb.String()
}

// Dumper is an Observer that writes a Dump after every step. The first
// write error stops further output and is kept for Err.
type Dumper struct {
	w   io.Writer
	err error
}

// DumpObserver returns a Dumper writing to w.
func DumpObserver(w io.Writer) *Dumper { return &Dumper{w: w} }

// Observe writes the grid snapshot.
func (d *Dumper) Observe(_ int, _ Coord, g *Grid) {
	if d.err != nil {
		return
	}
	d.err = g.Dump(d.w)
}

// Err returns the first write error, if any.
func (d *Dumper) Err() error { return d.err }
