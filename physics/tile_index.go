// Package physics resolves axis-aligned bodies against static level tiles.
package physics

import (
	"math"

	"github.com/milk9111/duskwatch/common"
)

// TileIndex buckets solid tile rects by the column of their centre so
// collision queries only look at the three columns around a body.
type TileIndex struct {
	size float64
	cols map[int][]common.Rect
	n    int
}

// NewTileIndex returns an empty index for the given tile size.
func NewTileIndex(tileSize float64) *TileIndex {
	if tileSize <= 0 {
		tileSize = 1
	}
	return &TileIndex{size: tileSize, cols: make(map[int][]common.Rect)}
}

// Insert adds a solid rect.
func (ix *TileIndex) Insert(r common.Rect) {
	c := ix.Column(r.CenterX())
	ix.cols[c] = append(ix.cols[c], r)
	ix.n++
}

// Column maps a world x to a column index.
func (ix *TileIndex) Column(x float64) int {
	return int(math.Floor(x / ix.size))
}

// Around returns the rects in columns c-1..c+1 where c is the column of x.
func (ix *TileIndex) Around(x float64) []common.Rect {
	if ix == nil || ix.n == 0 {
		return nil
	}
	c := ix.Column(x)
	var out []common.Rect
	for col := c - 1; col <= c+1; col++ {
		out = append(out, ix.cols[col]...)
	}
	return out
}

// Nearby returns candidate solids for a body.
func (ix *TileIndex) Nearby(r common.Rect) []common.Rect {
	return ix.Around(r.CenterX())
}

// Len returns the number of indexed rects.
func (ix *TileIndex) Len() int {
	if ix == nil {
		return 0
	}
	return ix.n
}

// TileSize returns the column width.
func (ix *TileIndex) TileSize() float64 {
	return ix.size
}
