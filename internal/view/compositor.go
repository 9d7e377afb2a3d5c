package view

import "github.com/etherdrift/etherdrift/internal/galaxy"

// NPCMarker is one foreign ship to paint on the map.
type NPCMarker struct {
	Coord galaxy.Coordinate
	Name  string
}

// Scene is everything the compositor needs beyond the galaxy itself.
type Scene struct {
	Player  galaxy.Coordinate
	Scanned map[string]bool // system names with scan data
	NPCs    []NPCMarker
}

// Options toggles optional map layers.
type Options struct {
	ShowFactionZones bool
	ShowEtherOverlay bool
}

// Compositor paints a galaxy scene onto a virtual grid. Layers are
// applied in a fixed order, later layers overwriting earlier ones:
// faction zones, ether overlay, star systems, scan icons, NPCs, player.
type Compositor struct {
	gal  *galaxy.Galaxy
	proj Projection
}

// NewCompositor builds a compositor for a galaxy and projection.
func NewCompositor(gal *galaxy.Galaxy, proj Projection) *Compositor {
	return &Compositor{gal: gal, proj: proj}
}

// Projection returns the world-to-grid mapping in use.
func (c *Compositor) Projection() Projection { return c.proj }

// Compose clears the grid and paints the scene. Safe to call every
// frame; repeated calls with the same inputs produce the same grid.
func (c *Compositor) Compose(g *Grid, scene Scene, opts Options) {
	g.Clear()
	if opts.ShowFactionZones {
		c.paintFactionZones(g)
	}
	if opts.ShowEtherOverlay {
		c.paintEtherOverlay(g, scene.Player.Z)
	}
	c.paintSystems(g)
	c.paintScanIcons(g, scene.Scanned)
	c.paintNPCs(g, scene.NPCs)
	c.paintPlayer(g, scene.Player)
}

// paintFactionZones shades every cell whose world position falls inside
// a faction's sphere of influence. Zones are volumes; the map samples
// them at the galactic mid-plane.
func (c *Compositor) paintFactionZones(g *Grid) {
	midZ := c.gal.SizeZ / 2
	for gy := 0; gy < g.Height; gy++ {
		for gx := 0; gx < g.Width; gx++ {
			wx, wy := c.proj.Unproject(gx, gy)
			fid := c.gal.FactionAt(galaxy.Coordinate{X: wx, Y: wy, Z: midZ})
			if fid != galaxy.FactionNone {
				g.Set(gx, gy, Cell{Glyph: GlyphZone, Zone: fid})
			}
		}
	}
}

// paintEtherOverlay shades cells by friction tier at the player's
// depth, writing only into blank and zone cells so markers painted by
// later layers stay legible on redraw.
func (c *Compositor) paintEtherOverlay(g *Grid, z float64) {
	for gy := 0; gy < g.Height; gy++ {
		for gx := 0; gx < g.Width; gx++ {
			cell := g.Get(gx, gy)
			if cell.Glyph != GlyphBlank && cell.Glyph != GlyphZone {
				continue
			}
			wx, wy := c.proj.Unproject(gx, gy)
			f := c.gal.FrictionAt(galaxy.Coordinate{X: wx, Y: wy, Z: z})
			if f == 1.0 {
				continue
			}
			cell.Glyph = DragTierGlyph(galaxy.TierForFriction(f))
			g.Set(gx, gy, cell)
		}
	}
}

func (c *Compositor) paintSystems(g *Grid) {
	for _, sys := range c.gal.Systems {
		gx, gy := c.proj.Project(sys.Coord)
		cell := g.Get(gx, gy)
		cell.Glyph = SystemGlyph(sys)
		cell.Payload = sys
		g.Set(gx, gy, cell)
	}
}

// paintScanIcons annotates scanned systems with a one-glyph summary on
// the row below. Only blank and zone cells take an icon; icons past the
// bottom edge are dropped by Set.
func (c *Compositor) paintScanIcons(g *Grid, scanned map[string]bool) {
	for _, sys := range c.gal.Systems {
		if !scanned[sys.Name] {
			continue
		}
		icon := ScanIcon(sys)
		if icon == 0 {
			continue
		}
		gx, gy := c.proj.Project(sys.Coord)
		cell := g.Get(gx, gy+1)
		if cell.Glyph != GlyphBlank && cell.Glyph != GlyphZone {
			continue
		}
		cell.Glyph = icon
		g.Set(gx, gy+1, cell)
	}
}

// paintNPCs marks foreign ships, keeping the zone shading of the cell
// they sit on.
func (c *Compositor) paintNPCs(g *Grid, npcs []NPCMarker) {
	for _, n := range npcs {
		gx, gy := c.proj.Project(n.Coord)
		cell := g.Get(gx, gy)
		cell.Glyph = GlyphNPC
		cell.Payload = n
		g.Set(gx, gy, cell)
	}
}

func (c *Compositor) paintPlayer(g *Grid, at galaxy.Coordinate) {
	gx, gy := c.proj.Project(at)
	cell := g.Get(gx, gy)
	cell.Glyph = GlyphShip
	g.Set(gx, gy, cell)
}
