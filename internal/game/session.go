package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/etherdrift/etherdrift/internal/galaxy"
	"github.com/etherdrift/etherdrift/internal/view"

	"github.com/etherdrift/etherdrift/assets"
)

// SessionConfig sets up a new session. Zero values take defaults.
type SessionConfig struct {
	Seed      int64
	ShipName  string
	ShipClass string

	GridWidth, GridHeight         int
	ViewportWidth, ViewportHeight int
	NPCCount                      int

	BaseCost BaseCostFunc // nil = two fuel per distance unit
	Events   EventSystem  // nil = no periodic events
}

// Session is one playthrough. It owns all mutable state: the ship, the
// NPC fleet, the visited flags, the comms log. Rendering is repeatable;
// Move and its side effects run once per input event.
type Session struct {
	Galaxy *galaxy.Galaxy
	Ship   *Ship
	Fleet  *Fleet
	Log    *MessageLog

	ShowFactionZones bool
	ShowEtherOverlay bool

	grid     *view.Grid
	viewport *view.Viewport
	comp     *view.Compositor

	mover    *moveController
	resolver *encounterResolver
	ticker   moveTicker
	driftRNG *rand.Rand
}

// NewSession builds a session: galaxy, ship, fleet, view pipeline.
func NewSession(cfg SessionConfig) (*Session, error) {
	if cfg.GridWidth == 0 {
		cfg.GridWidth = view.DefaultGridWidth
	}
	if cfg.GridHeight == 0 {
		cfg.GridHeight = view.DefaultGridHeight
	}
	if cfg.ViewportWidth == 0 {
		cfg.ViewportWidth = view.DefaultViewportWidth
	}
	if cfg.ViewportHeight == 0 {
		cfg.ViewportHeight = view.DefaultViewportHeight
	}
	if cfg.NPCCount == 0 {
		cfg.NPCCount = 6
	}
	if cfg.ShipName == "" {
		cfg.ShipName = "Nomad"
	}

	gal, err := galaxy.New(cfg.Seed)
	if err != nil {
		return nil, err
	}

	catalog, err := LoadShipCatalog(assets.ShipCatalogJSON)
	if err != nil {
		return nil, fmt.Errorf("load ship catalog: %w", err)
	}
	ship := NewShip(cfg.ShipName, catalog.Class(cfg.ShipClass), gal.Center())

	proj, err := view.NewProjection(gal.SizeX, gal.SizeY, cfg.GridWidth, cfg.GridHeight)
	if err != nil {
		return nil, err
	}
	grid, err := view.NewGrid(cfg.GridWidth, cfg.GridHeight)
	if err != nil {
		return nil, err
	}
	vp, err := view.NewViewport(cfg.ViewportWidth, cfg.ViewportHeight, cfg.GridWidth, cfg.GridHeight)
	if err != nil {
		return nil, err
	}

	fleet := NewFleet(gal, cfg.Seed, cfg.NPCCount)

	log := NewMessageLog(50)
	log.Add(fmt.Sprintf("%s underway. %d systems on the charts.", ship.Name, len(gal.Systems)), MsgInfo)

	s := &Session{
		Galaxy:           gal,
		Ship:             ship,
		Fleet:            fleet,
		Log:              log,
		ShowFactionZones: true,
		ShowEtherOverlay: false,
		grid:             grid,
		viewport:         vp,
		comp:             view.NewCompositor(gal, proj),
		mover:            newMoveController(gal, proj, cfg.BaseCost, cfg.Seed),
		resolver:         &encounterResolver{gal: gal, npcs: fleet, proj: proj, seed: cfg.Seed},
		ticker:           moveTicker{events: cfg.Events},
		driftRNG:         rand.New(rand.NewPCG(uint64(cfg.Seed), uint64(cfg.Seed>>12|11))),
	}
	return s, nil
}

// Projection returns the session's world-to-grid mapping.
func (s *Session) Projection() view.Projection { return s.comp.Projection() }

// Render composes the map and returns the viewport window, centered on
// the ship. Pure redisplay: calling it again changes nothing.
func (s *Session) Render() [][]view.Cell {
	scene := view.Scene{
		Player:  s.Ship.Coord,
		Scanned: scannedSystemNames(s.Scan()),
		NPCs:    s.Fleet.Markers(),
	}
	opts := view.Options{
		ShowFactionZones: s.ShowFactionZones,
		ShowEtherOverlay: s.ShowEtherOverlay,
	}
	s.comp.Compose(s.grid, scene, opts)

	gx, gy := s.Projection().Project(s.Ship.Coord)
	s.viewport.Center(gx, gy, s.grid.Width, s.grid.Height)
	return s.viewport.Slice(s.grid)
}

// Viewport returns the current window geometry, for HUD overlays.
func (s *Session) Viewport() view.Viewport { return *s.viewport }

// Scan returns everything within the ship's scanner range, nearest
// first.
func (s *Session) Scan() []ScannedObject {
	return scanObjects(s.Galaxy, s.Fleet, s.Ship.Coord, s.Ship.ScanRange)
}

// NearbySystems lists systems within the ship's jump range for the HUD.
func (s *Session) NearbySystems() []galaxy.NearSystem {
	return s.Galaxy.NearbySystems(s.Ship.Coord, s.Ship.JumpRange)
}

// Move executes one turn: movement and fuel, NPC drift, ether drift,
// the periodic event hook, then encounter and arrival checks.
func (s *Session) Move(dir Direction) MoveResult {
	res := s.mover.move(s.Ship, dir)
	s.logFuel(res)

	s.Fleet.Tick()
	s.Galaxy.DriftEtherZones(s.driftRNG)
	s.ticker.tick()

	outcome := s.resolver.resolve(s.Ship)
	res.Encounter = outcome.Encounter
	res.Arrival = outcome.Arrival
	res.Nearby = outcome.Nearby
	res.NewCoord = s.Ship.Coord // arrival may have snapped it

	if enc := outcome.Encounter; enc != nil {
		s.Log.Add(fmt.Sprintf("Contact: %s hails you.", enc.NPC.Name), MsgWarning)
		s.Log.Add(fmt.Sprintf("\"%s\"", enc.Greeting), MsgComms)
	}
	if arr := outcome.Arrival; arr != nil {
		if outcome.Ambiguous {
			s.Log.Add(fmt.Sprintf("Overlapping signals resolved; locking onto %s.", arr.System.Name), MsgInfo)
		}
		s.Log.Add(fmt.Sprintf("Arrived at %s. %s space, threat level %d.",
			arr.System.Name, s.Galaxy.FactionName(arr.System.Faction), arr.Manifest.ThreatLevel), MsgDiscovery)
	}
	return res
}

func (s *Session) logFuel(res MoveResult) {
	switch {
	case res.FuelDelta > 0 && s.Ship.Fuel >= s.Ship.MaxFuel:
		s.Log.Add("Fuel fully recharged.", MsgDiscovery)
	case res.FuelDelta > 0:
		s.Log.Add(fmt.Sprintf("Emergency recharge: %d/%d.", s.Ship.Fuel, s.Ship.MaxFuel), MsgInfo)
	case res.Stranded:
		s.Log.Add("Fuel depleted. Drifting recharges the cells slowly.", MsgCritical)
	case res.LowFuel:
		s.Log.Add(fmt.Sprintf("Low fuel: %d/%d.", s.Ship.Fuel, s.Ship.MaxFuel), MsgWarning)
	}
}

// ToggleFactionZones flips the political overlay.
func (s *Session) ToggleFactionZones() {
	s.ShowFactionZones = !s.ShowFactionZones
	if s.ShowFactionZones {
		s.Log.Add("Faction zone overlay on.", MsgInfo)
	} else {
		s.Log.Add("Faction zone overlay off.", MsgInfo)
	}
}

// ToggleEtherOverlay flips the ether drag overlay.
func (s *Session) ToggleEtherOverlay() {
	s.ShowEtherOverlay = !s.ShowEtherOverlay
	if s.ShowEtherOverlay {
		s.Log.Add("Ether energy overlay on.", MsgInfo)
	} else {
		s.Log.Add("Ether energy overlay off.", MsgInfo)
	}
}

// MoveCount reports committed moves, for the HUD turn counter.
func (s *Session) MoveCount() uint64 { return s.ticker.moves }
