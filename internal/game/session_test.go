package game

import (
	"testing"

	"github.com/etherdrift/etherdrift/internal/galaxy"
)

func newTestSession(t *testing.T, cfg SessionConfig) *Session {
	t.Helper()
	s, err := NewSession(cfg)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestSessionStartsAtCenter(t *testing.T) {
	s := newTestSession(t, SessionConfig{Seed: 7})
	if s.Ship.Coord != s.Galaxy.Center() {
		t.Errorf("ship starts at %+v, want galaxy center", s.Ship.Coord)
	}
	if s.Ship.Fuel != s.Ship.MaxFuel {
		t.Errorf("ship starts with %d/%d fuel", s.Ship.Fuel, s.Ship.MaxFuel)
	}
}

func TestSessionShipClassFromCatalog(t *testing.T) {
	s := newTestSession(t, SessionConfig{Seed: 7, ShipClass: "Stellar Voyager"})
	if s.Ship.MaxFuel != 200 || s.Ship.JumpRange != 25 {
		t.Errorf("Stellar Voyager stats: fuel %d range %g", s.Ship.MaxFuel, s.Ship.JumpRange)
	}

	// Unknown class falls back to the catalog default.
	s = newTestSession(t, SessionConfig{Seed: 7, ShipClass: "No Such Hull"})
	if s.Ship.MaxFuel != 100 {
		t.Errorf("fallback class fuel = %d, want 100", s.Ship.MaxFuel)
	}
}

func TestRenderIdempotent(t *testing.T) {
	s := newTestSession(t, SessionConfig{Seed: 11})
	s.ShowEtherOverlay = true

	first := s.Render()
	second := s.Render()

	if len(first) != len(second) {
		t.Fatalf("render sizes differ: %d vs %d", len(first), len(second))
	}
	for y := range first {
		for x := range first[y] {
			if first[y][x].Glyph != second[y][x].Glyph {
				t.Fatalf("cell (%d,%d) changed between renders with unchanged state", x, y)
			}
		}
	}
	if s.Ship.Fuel != s.Ship.MaxFuel {
		t.Error("render consumed fuel")
	}
}

func TestRenderShowsPlayer(t *testing.T) {
	s := newTestSession(t, SessionConfig{Seed: 11})
	rows := s.Render()

	vp := s.Viewport()
	gx, gy := s.Projection().Project(s.Ship.Coord)
	cell := rows[gy-vp.OffY][gx-vp.OffX]
	if cell.Glyph != '@' {
		t.Errorf("player cell shows %q, want '@'", cell.Glyph)
	}
}

func TestRenderDegradesWithoutCollaborators(t *testing.T) {
	s := newTestSession(t, SessionConfig{Seed: 11, NPCCount: 1})
	// Strip the optional registries; the map should still render the
	// ship alone.
	s.Galaxy.Systems = nil
	s.Galaxy.Zones = nil
	s.Galaxy.EtherZones = nil
	s.Fleet = NewFleet(s.Galaxy, 11, 0)
	s.resolver.npcs = s.Fleet

	rows := s.Render()
	vp := s.Viewport()
	gx, gy := s.Projection().Project(s.Ship.Coord)
	if rows[gy-vp.OffY][gx-vp.OffX].Glyph != '@' {
		t.Error("ship missing from degraded render")
	}

	res := s.Move(East)
	if res.Encounter != nil || res.Arrival != nil {
		t.Error("events fired with empty registries")
	}
}

func TestMoveAdvancesEventsEveryThird(t *testing.T) {
	ev := &countingEvents{}
	s := newTestSession(t, SessionConfig{Seed: 3, Events: ev})

	s.Move(East)
	s.Move(West)
	if ev.advances != 0 {
		t.Fatalf("advances = %d after two moves, want 0", ev.advances)
	}
	s.Move(East)
	if ev.advances != 1 {
		t.Fatalf("advances = %d after three moves, want 1", ev.advances)
	}
}

func TestMoveCommitsAtomically(t *testing.T) {
	s := newTestSession(t, SessionConfig{Seed: 5})
	startFuel := s.Ship.Fuel

	res := s.Move(North)
	if res.NewCoord != s.Ship.Coord {
		t.Errorf("result coordinate %+v disagrees with ship %+v", res.NewCoord, s.Ship.Coord)
	}
	if res.Arrival == nil && res.Encounter == nil {
		if s.Ship.Fuel-startFuel != res.FuelDelta {
			t.Errorf("fuel moved %d, result says %d", s.Ship.Fuel-startFuel, res.FuelDelta)
		}
	}
}

func TestScanSortedByDistance(t *testing.T) {
	s := newTestSession(t, SessionConfig{Seed: 13})
	s.Galaxy.Systems = []*galaxy.StarSystem{
		{Name: "Farther", Coord: galaxy.Coordinate{X: 53, Y: 50, Z: 25}},
		{Name: "Closer", Coord: galaxy.Coordinate{X: 51, Y: 50, Z: 25}},
		{Name: "Out of Range", Coord: galaxy.Coordinate{X: 90, Y: 50, Z: 25}},
	}
	s.Fleet = NewFleet(s.Galaxy, 13, 0)

	objs := s.Scan()
	if len(objs) != 2 {
		t.Fatalf("scan found %d objects, want 2", len(objs))
	}
	if objs[0].System.Name != "Closer" || objs[1].System.Name != "Farther" {
		t.Errorf("scan order: %q then %q", objs[0].System.Name, objs[1].System.Name)
	}
}

func TestToggleOverlaysLogged(t *testing.T) {
	s := newTestSession(t, SessionConfig{Seed: 13})
	before := len(s.Log.Messages)
	s.ToggleEtherOverlay()
	if !s.ShowEtherOverlay {
		t.Error("toggle did not enable the overlay")
	}
	if len(s.Log.Messages) == before {
		t.Error("toggle not logged")
	}
}

func TestMessageLogBounded(t *testing.T) {
	l := NewMessageLog(3)
	for i := 0; i < 5; i++ {
		l.Add("entry", MsgInfo)
	}
	if len(l.Messages) != 3 {
		t.Errorf("log holds %d messages, want 3", len(l.Messages))
	}
	if got := len(l.Recent(10)); got != 3 {
		t.Errorf("Recent(10) returned %d messages", got)
	}
}

func TestMessageLogWrapsLongLines(t *testing.T) {
	l := NewMessageLog(10)
	l.Add("a very long transmission that certainly exceeds the comms panel width and must be wrapped onto several lines", MsgComms)
	if len(l.Messages) < 2 {
		t.Error("long message not wrapped")
	}
	for _, m := range l.Messages {
		if len(m.Text) > 58 {
			t.Errorf("wrapped line too long: %q", m.Text)
		}
	}
}

func TestLoadShipCatalogRejectsBadData(t *testing.T) {
	if _, err := LoadShipCatalog([]byte("{not json")); err == nil {
		t.Error("malformed JSON accepted")
	}
	if _, err := LoadShipCatalog([]byte(`{"classes":[]}`)); err == nil {
		t.Error("empty catalog accepted")
	}
	if _, err := LoadShipCatalog([]byte(`{"classes":[{"name":"X","fuel":0,"jump_range":5}]}`)); err == nil {
		t.Error("zero-fuel class accepted")
	}
}

func TestShipRefuel(t *testing.T) {
	ship := testShip(40)
	if added := ship.Refuel(); added != 60 {
		t.Errorf("Refuel added %d, want 60", added)
	}
	if ship.Fuel != ship.MaxFuel {
		t.Errorf("fuel = %d after refuel", ship.Fuel)
	}
}

func TestFleetDriftStaysInBounds(t *testing.T) {
	gal := bareGalaxy()
	f := NewFleet(gal, 21, 8)
	for i := 0; i < 500; i++ {
		f.Tick()
	}
	for _, m := range f.Markers() {
		c := m.Coord
		if c.X < 0 || c.X > gal.SizeX || c.Y < 0 || c.Y > gal.SizeY || c.Z < 0 || c.Z > gal.SizeZ {
			t.Fatalf("NPC %s drifted out of bounds: %+v", m.Name, c)
		}
	}
}

func TestFleetNearbyExcludesDistant(t *testing.T) {
	gal := bareGalaxy()
	f := NewFleet(gal, 21, 10)
	center := gal.Center()
	for _, info := range f.Nearby(center, 20) {
		if info.Distance > 20 {
			t.Errorf("NPC %s at distance %g returned by 20-unit query", info.Name, info.Distance)
		}
	}
}
