package view

import "fmt"

// Default viewport extents, in grid cells.
const (
	DefaultViewportWidth  = 120
	DefaultViewportHeight = 35
)

// Viewport is a movable window onto a virtual grid.
type Viewport struct {
	Width, Height int
	OffX, OffY    int
}

// NewViewport builds a viewport no larger than the grid it will slice.
func NewViewport(w, h, gridW, gridH int) (*Viewport, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("viewport: dimensions must be positive, got %dx%d", w, h)
	}
	if w > gridW || h > gridH {
		return nil, fmt.Errorf("viewport: %dx%d exceeds grid %dx%d", w, h, gridW, gridH)
	}
	return &Viewport{Width: w, Height: h}, nil
}

// Center positions the viewport so the given grid cell sits as close to
// its middle as the grid edges allow.
func (v *Viewport) Center(gx, gy, gridW, gridH int) {
	v.OffX = clampInt(gx-v.Width/2, 0, gridW-v.Width)
	v.OffY = clampInt(gy-v.Height/2, 0, gridH-v.Height)
}

// Contains reports whether a grid cell is inside the viewport.
func (v *Viewport) Contains(gx, gy int) bool {
	return gx >= v.OffX && gx < v.OffX+v.Width && gy >= v.OffY && gy < v.OffY+v.Height
}

// Slice copies the visible window out of the grid, row by row. Cells
// past the grid edge come back blank.
func (v *Viewport) Slice(g *Grid) [][]Cell {
	rows := make([][]Cell, v.Height)
	for y := 0; y < v.Height; y++ {
		row := make([]Cell, v.Width)
		for x := 0; x < v.Width; x++ {
			row[x] = g.Get(v.OffX+x, v.OffY+y)
		}
		rows[y] = row
	}
	return rows
}
