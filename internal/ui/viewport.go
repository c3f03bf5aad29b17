package ui

import (
	"math"

	"github.com/diegok/termpong/internal/game"
)

// Viewport maps field coordinates onto a rectangle of terminal cells.
// Field y grows upwards, screen rows grow downwards.
type Viewport struct {
	X, Y  int // top-left cell
	W, H  int // size in cells
	Field game.Field
}

// Cell returns the column and row for a field point, clamped to the viewport
func (v Viewport) Cell(x, y float64) (int, int) {
	col := int(math.Floor(x / v.Field.Width * float64(v.W)))
	row := v.H - 1 - int(math.Floor(y/v.Field.Height*float64(v.H)))
	return v.X + clampInt(col, 0, v.W-1), v.Y + clampInt(row, 0, v.H-1)
}

// Empty reports whether there is no room to draw in
func (v Viewport) Empty() bool {
	return v.W <= 0 || v.H <= 0
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
