package render

import (
	"github.com/etherdrift/etherdrift/internal/galaxy"
	"github.com/etherdrift/etherdrift/internal/view"
)

// dragGlyphColors maps each ether overlay glyph back to its ramp color.
var dragGlyphColors = buildDragGlyphColors()

func buildDragGlyphColors() map[rune]uint8 {
	m := make(map[rune]uint8, 8)
	for t := galaxy.DragVeryLow; t <= galaxy.DragVeryHigh; t++ {
		m[view.DragTierGlyph(t)] = DragTierColor(t)
	}
	return m
}

// RenderMap writes a composed viewport slice into a CellBuffer at the
// given offset, mapping glyphs to palette colors.
func RenderMap(buf *CellBuffer, rows [][]view.Cell, offsetX, offsetY int) {
	for y, row := range rows {
		for x, cell := range row {
			glyph, fg, bg := cellVisuals(cell)
			buf.Set(offsetX+x, offsetY+y, glyph, fg, bg)
		}
	}
}

func cellVisuals(c view.Cell) (glyph rune, fg, bg uint8) {
	switch c.Glyph {
	case view.GlyphBlank:
		return ' ', ColorWhite, ColorBlack
	case view.GlyphZone:
		return c.Glyph, FactionColor(c.Zone), ColorBlack
	case view.GlyphShip:
		return c.Glyph, ColorWhite, ColorBlack
	case view.GlyphNPC:
		return c.Glyph, ColorLightRed, ColorBlack
	case view.GlyphSystemStations, view.GlyphSystemStationsUnknown:
		return c.Glyph, ColorYellow, ColorBlack
	case view.GlyphSystemVisited:
		return c.Glyph, ColorWhite, ColorBlack
	case view.GlyphSystemUnknown:
		return c.Glyph, ColorLightGray, ColorBlack
	case view.GlyphScanHabitable:
		return c.Glyph, ColorLightGreen, ColorBlack
	case view.GlyphScanPlanet:
		return c.Glyph, ColorGreen, ColorBlack
	case view.GlyphScanStation:
		return c.Glyph, ColorLightCyan, ColorBlack
	case view.GlyphScanMinerals:
		return c.Glyph, ColorYellow, ColorBlack
	case view.GlyphScanAsteroids:
		return c.Glyph, ColorLightGray, ColorBlack
	}
	if fg, ok := dragGlyphColors[c.Glyph]; ok {
		return c.Glyph, fg, ColorBlack
	}
	return c.Glyph, ColorWhite, ColorBlack
}
