package view

import (
	"fmt"
	"math"

	"github.com/etherdrift/etherdrift/internal/galaxy"
)

// Projection maps continuous world coordinates onto a virtual grid.
// The mapping is many-to-one: distinct world positions land on the
// same cell, and Unproject only recovers a representative point.
type Projection struct {
	WorldX, WorldY float64
	GridW, GridH   int
}

// NewProjection builds a projection from world extents onto a grid.
func NewProjection(worldX, worldY float64, gridW, gridH int) (Projection, error) {
	if worldX <= 0 || worldY <= 0 {
		return Projection{}, fmt.Errorf("projection: world extents must be positive, got %gx%g", worldX, worldY)
	}
	if gridW < 2 || gridH < 2 {
		return Projection{}, fmt.Errorf("projection: grid must be at least 2x2, got %dx%d", gridW, gridH)
	}
	return Projection{WorldX: worldX, WorldY: worldY, GridW: gridW, GridH: gridH}, nil
}

// Project maps a world position to its grid cell, clamping out-of-range
// input onto the border.
func (p Projection) Project(c galaxy.Coordinate) (gx, gy int) {
	gx = clampInt(int(math.Round(c.X/p.WorldX*float64(p.GridW-1))), 0, p.GridW-1)
	gy = clampInt(int(math.Round(c.Y/p.WorldY*float64(p.GridH-1))), 0, p.GridH-1)
	return gx, gy
}

// Unproject returns the world position a grid cell represents. Used to
// sample world-space fields when painting cells.
func (p Projection) Unproject(gx, gy int) (wx, wy float64) {
	wx = float64(gx) / float64(p.GridW-1) * p.WorldX
	wy = float64(gy) / float64(p.GridH-1) * p.WorldY
	return wx, wy
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
