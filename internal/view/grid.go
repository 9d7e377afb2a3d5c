// Package view builds the virtual map grid: a presentation-agnostic
// composite of zones, systems, scan icons, NPCs and the player marker.
// Front-ends only map glyphs to colors or widgets; nothing here imports a
// renderer.
package view

import (
	"fmt"

	"github.com/etherdrift/etherdrift/internal/galaxy"
)

// Default virtual map dimensions. Much larger than any viewport so the
// map scrolls; much smaller than the world so projection is lossy.
const (
	DefaultGridWidth  = 200
	DefaultGridHeight = 60
)

// Cell is one virtual map cell: a glyph, an optional payload (the star
// system or NPC projected there) and the faction zone it sits in.
type Cell struct {
	Glyph   rune
	Payload any
	Zone    galaxy.FactionID
}

// Grid is the 2-D virtual map. Rebuilt on every render; transient.
type Grid struct {
	Width, Height int
	cells         []Cell
}

// NewGrid allocates a blank grid. Dimensions must be positive.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", width, height)
	}
	g := &Grid{Width: width, Height: height, cells: make([]Cell, width*height)}
	g.Clear()
	return g, nil
}

// Clear resets every cell to blank unclaimed space.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Cell{Glyph: GlyphBlank, Zone: galaxy.FactionNone}
	}
}

// Set writes a cell. Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if x >= 0 && x < g.Width && y >= 0 && y < g.Height {
		g.cells[y*g.Width+x] = c
	}
}

// Get reads a cell. Out-of-bounds reads return a blank cell.
func (g *Grid) Get(x, y int) Cell {
	if x >= 0 && x < g.Width && y >= 0 && y < g.Height {
		return g.cells[y*g.Width+x]
	}
	return Cell{Glyph: GlyphBlank, Zone: galaxy.FactionNone}
}
