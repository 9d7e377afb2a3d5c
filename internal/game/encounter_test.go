package game

import (
	"testing"

	"github.com/etherdrift/etherdrift/internal/galaxy"
	"github.com/etherdrift/etherdrift/internal/view"
)

func testResolver(t *testing.T, gal *galaxy.Galaxy, npcs NPCLocator) *encounterResolver {
	t.Helper()
	proj, err := view.NewProjection(gal.SizeX, gal.SizeY, view.DefaultGridWidth, view.DefaultGridHeight)
	if err != nil {
		t.Fatalf("NewProjection: %v", err)
	}
	return &encounterResolver{gal: gal, npcs: npcs, proj: proj, seed: 42}
}

// stubLocator serves a fixed NPC list without an ECS world.
type stubLocator struct {
	npcs []NPCInfo
}

func (s *stubLocator) Nearby(c galaxy.Coordinate, radius float64) []NPCInfo {
	var out []NPCInfo
	for _, n := range s.npcs {
		if d := c.Distance(n.Coord); d <= radius {
			n.Distance = d
			out = append(out, n)
		}
	}
	return out
}

func (s *stubLocator) AtCell(proj view.Projection, gx, gy int) *NPCInfo {
	for _, n := range s.npcs {
		px, py := proj.Project(n.Coord)
		if px == gx && py == gy {
			n := n
			return &n
		}
	}
	return nil
}

func TestArrivalSnapsToNearestIn3D(t *testing.T) {
	gal := bareGalaxy()
	far := &galaxy.StarSystem{Name: "Far Layer", Coord: galaxy.Coordinate{X: 10, Y: 10, Z: 5}}
	near := &galaxy.StarSystem{Name: "Near Layer", Coord: galaxy.Coordinate{X: 10, Y: 10, Z: 0}}
	gal.Systems = []*galaxy.StarSystem{far, near}

	r := testResolver(t, gal, nil)
	ship := testShip(100)
	ship.Coord = galaxy.Coordinate{X: 10, Y: 10, Z: 1}

	res := r.resolve(ship)
	if res.Arrival == nil {
		t.Fatal("no arrival on a system cell")
	}
	if res.Arrival.System.Name != "Near Layer" {
		t.Errorf("arrived at %q, want the closer system", res.Arrival.System.Name)
	}
	if ship.Coord != near.Coord {
		t.Errorf("ship not snapped to system coordinate: %+v", ship.Coord)
	}
	if !near.Visited {
		t.Error("visited flag not set")
	}
	if far.Visited {
		t.Error("bypassed system marked visited")
	}
}

func TestArrivalTieBreaksByRegistryOrder(t *testing.T) {
	gal := bareGalaxy()
	first := &galaxy.StarSystem{Name: "First Entry", Coord: galaxy.Coordinate{X: 10, Y: 10, Z: 27}}
	second := &galaxy.StarSystem{Name: "Second Entry", Coord: galaxy.Coordinate{X: 10, Y: 10, Z: 23}}
	gal.Systems = []*galaxy.StarSystem{first, second}

	r := testResolver(t, gal, nil)
	ship := testShip(100)
	ship.Coord = galaxy.Coordinate{X: 10, Y: 10, Z: 25} // equidistant

	res := r.resolve(ship)
	if res.Arrival == nil {
		t.Fatal("no arrival")
	}
	if res.Arrival.System != first {
		t.Errorf("tie resolved to %q, want the earlier registry entry", res.Arrival.System.Name)
	}
	if !res.Ambiguous {
		t.Error("equidistant arrival not flagged ambiguous")
	}
}

func TestNPCOnCellHaltsArrival(t *testing.T) {
	gal := bareGalaxy()
	sys := &galaxy.StarSystem{Name: "Blocked System", Coord: galaxy.Coordinate{X: 10, Y: 10, Z: 25}}
	gal.Systems = []*galaxy.StarSystem{sys}

	npcs := &stubLocator{npcs: []NPCInfo{{
		Name: "Void Fang", Kind: NPCPirate,
		Coord: galaxy.Coordinate{X: 10, Y: 10, Z: 30},
	}}}
	r := testResolver(t, gal, npcs)
	ship := testShip(100)
	ship.Coord = galaxy.Coordinate{X: 10, Y: 10, Z: 25}

	res := r.resolve(ship)
	if res.Encounter == nil {
		t.Fatal("NPC on destination cell did not trigger an encounter")
	}
	if res.Encounter.NPC.Name != "Void Fang" {
		t.Errorf("encountered %q", res.Encounter.NPC.Name)
	}
	if res.Encounter.Greeting == "" {
		t.Error("encounter has no greeting")
	}
	if res.Arrival != nil {
		t.Error("arrival processed despite encounter")
	}
	if sys.Visited {
		t.Error("system marked visited despite halted arrival")
	}
}

func TestNearbyNPCRadius(t *testing.T) {
	gal := bareGalaxy()
	npcs := &stubLocator{npcs: []NPCInfo{
		{Name: "Close", Coord: galaxy.Coordinate{X: 55, Y: 50, Z: 25}},
		{Name: "Edge", Coord: galaxy.Coordinate{X: 60, Y: 50, Z: 25}},
		{Name: "Far", Coord: galaxy.Coordinate{X: 80, Y: 50, Z: 25}},
	}}
	r := testResolver(t, gal, npcs)
	ship := testShip(100)

	res := r.resolve(ship)
	if len(res.Nearby) != 2 {
		t.Fatalf("nearby count = %d, want 2 (10-unit radius, inclusive)", len(res.Nearby))
	}
}

func TestManifestCounts(t *testing.T) {
	sys := &galaxy.StarSystem{
		Name:        "Census",
		ThreatLevel: 7,
		Faction:     2,
		Stations:    []galaxy.Station{{}, {}},
		Bodies: []galaxy.CelestialBody{
			{Kind: galaxy.BodyPlanet, Habitable: true},
			{Kind: galaxy.BodyPlanet},
			{Kind: galaxy.BodyPlanet},
			{Kind: galaxy.BodyAsteroidBelt, MineralRich: true},
			{Kind: galaxy.BodyAsteroidBelt},
		},
	}
	m := buildManifest(sys)
	if m.Planets != 3 || m.Habitable != 1 {
		t.Errorf("planets %d/%d habitable, want 3/1", m.Planets, m.Habitable)
	}
	if m.Belts != 2 || m.MineralBelts != 1 {
		t.Errorf("belts %d/%d mineral, want 2/1", m.Belts, m.MineralBelts)
	}
	if m.Stations != 2 || m.ThreatLevel != 7 || m.Faction != 2 {
		t.Errorf("manifest %+v", m)
	}
}

func TestGreetingDeterministic(t *testing.T) {
	r := testResolver(t, bareGalaxy(), nil)
	npc := NPCInfo{Name: "Wayfarer", Kind: NPCWanderer, Coord: galaxy.Coordinate{X: 33, Y: 44, Z: 5}}
	if r.greeting(npc) != r.greeting(npc) {
		t.Error("same contact greeted differently on redisplay")
	}
}
