// Package levels parses tile layouts into grid cells.
package levels

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	ErrEmptyLayout = errors.New("levels: layout has no rows")
	ErrRowWidth    = errors.New("levels: rows have different widths")
	ErrTileSize    = errors.New("levels: tile size must be positive")
)

//go:embed default.csv
var defaultLayout string

// Layout is a validated rectangular grid of tile codes.
type Layout struct {
	cells    [][]string
	tileSize float64
}

// Cell is one grid position with its world top-left corner.
type Cell struct {
	Row int
	Col int
	X   float64
	Y   float64
	Def TileDef
}

// Parse validates rows of comma-separated codes. Every row must have the
// same number of codes.
func Parse(rows []string, tileSize float64) (*Layout, error) {
	if tileSize <= 0 {
		return nil, ErrTileSize
	}
	var cells [][]string
	for _, r := range rows {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		codes := strings.Split(r, ",")
		for i := range codes {
			codes[i] = strings.TrimSpace(codes[i])
		}
		if len(cells) > 0 && len(codes) != len(cells[0]) {
			return nil, fmt.Errorf("%w: row %d has %d codes, want %d", ErrRowWidth, len(cells), len(codes), len(cells[0]))
		}
		cells = append(cells, codes)
	}
	if len(cells) == 0 {
		return nil, ErrEmptyLayout
	}
	return &Layout{cells: cells, tileSize: tileSize}, nil
}

// Read parses one row per line.
func Read(r io.Reader, tileSize float64) (*Layout, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		rows = append(rows, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("levels: read: %w", err)
	}
	return Parse(rows, tileSize)
}

// Load reads a layout file from disk.
func Load(path string, tileSize float64) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("levels: open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, tileSize)
}

// Default returns the embedded layout.
func Default(tileSize float64) (*Layout, error) {
	return Read(strings.NewReader(defaultLayout), tileSize)
}

func (l *Layout) Rows() int                { return len(l.cells) }
func (l *Layout) Cols() int                { return len(l.cells[0]) }
func (l *Layout) TileSize() float64        { return l.tileSize }
func (l *Layout) Width() float64           { return float64(l.Cols()) * l.tileSize }
func (l *Layout) Height() float64          { return float64(l.Rows()) * l.tileSize }
func (l *Layout) Code(row, col int) string { return l.cells[row][col] }

// Cells returns every non-empty cell in row-major order.
func (l *Layout) Cells() []Cell {
	var out []Cell
	for r, row := range l.cells {
		for c, code := range row {
			def := Lookup(code)
			if def.Kind == KindEmpty {
				continue
			}
			out = append(out, Cell{
				Row: r,
				Col: c,
				X:   float64(c) * l.tileSize,
				Y:   float64(r) * l.tileSize,
				Def: def,
			})
		}
	}
	return out
}

// Lines returns the layout back as comma-separated rows.
func (l *Layout) Lines() []string {
	out := make([]string, len(l.cells))
	for i, row := range l.cells {
		out[i] = strings.Join(row, ",")
	}
	return out
}
