package view

import "github.com/etherdrift/etherdrift/internal/galaxy"

// Map glyphs, layered lowest to highest priority.
const (
	GlyphBlank = ' '
	GlyphZone  = '░' // faction zone shading
	GlyphNPC   = '&'
	GlyphShip  = '@'

	// Star systems: diamond variants carry stations, plain markers don't;
	// the filled/starred form flips once the system is visited.
	GlyphSystemStations        = '◈' // visited, with stations
	GlyphSystemStationsUnknown = '◆' // unvisited, with stations
	GlyphSystemVisited         = '*'
	GlyphSystemUnknown         = '+'

	// Scan summary icons, painted one row below a scanned system.
	GlyphScanHabitable = 'P'
	GlyphScanPlanet    = 'p'
	GlyphScanStation   = 'S'
	GlyphScanMinerals  = 'M'
	GlyphScanAsteroids = 'a'
)

// dragTierGlyphs shades the ether overlay: light marks for enhancement
// tiers, heavy shading for drag tiers. Indexed by galaxy.DragTier.
var dragTierGlyphs = [8]rune{'·', '∙', '°', '~', '≈', '▒', '▓', '█'}

// DragTierGlyph returns the overlay glyph for a drag tier.
func DragTierGlyph(t galaxy.DragTier) rune {
	return dragTierGlyphs[t]
}

// SystemGlyph picks the map marker for a star system.
func SystemGlyph(sys *galaxy.StarSystem) rune {
	hasStations := len(sys.Stations) > 0
	switch {
	case hasStations && sys.Visited:
		return GlyphSystemStations
	case hasStations:
		return GlyphSystemStationsUnknown
	case sys.Visited:
		return GlyphSystemVisited
	default:
		return GlyphSystemUnknown
	}
}

// ScanIcon summarizes a scanned system's contents as a single glyph:
// habitable planet > planet > station > mineral-rich belt > belt.
// Returns 0 when the system has nothing to report.
func ScanIcon(sys *galaxy.StarSystem) rune {
	planets := sys.Planets()
	for _, p := range planets {
		if p.Habitable {
			return GlyphScanHabitable
		}
	}
	if len(planets) > 0 {
		return GlyphScanPlanet
	}
	if len(sys.Stations) > 0 {
		return GlyphScanStation
	}
	belts := sys.AsteroidBelts()
	for _, b := range belts {
		if b.MineralRich {
			return GlyphScanMinerals
		}
	}
	if len(belts) > 0 {
		return GlyphScanAsteroids
	}
	return 0
}
