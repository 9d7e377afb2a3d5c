package galaxy

import (
	"math/rand/v2"
	"testing"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(99, 7))
}

func TestCoordinateDistance(t *testing.T) {
	a := Coordinate{0, 0, 0}
	b := Coordinate{3, 4, 0}
	if d := a.Distance(b); d != 5 {
		t.Errorf("Distance = %v, want 5", d)
	}
	c := Coordinate{3, 4, 12}
	if d := a.Distance(c); d != 13 {
		t.Errorf("Distance = %v, want 13", d)
	}
}

func TestCoordinateClamped(t *testing.T) {
	cases := []struct {
		in, want Coordinate
	}{
		{Coordinate{-5, 50, 25}, Coordinate{0, 50, 25}},
		{Coordinate{150, 50, 25}, Coordinate{100, 50, 25}},
		{Coordinate{50, -1, 60}, Coordinate{50, 0, 50}},
		{Coordinate{50, 50, 25}, Coordinate{50, 50, 25}},
	}
	for _, tc := range cases {
		if got := tc.in.Clamped(100, 100, 50); got != tc.want {
			t.Errorf("Clamped(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestSystemAt(t *testing.T) {
	g := testGalaxy(t)
	sys := &StarSystem{Name: "Tau Ceti", Coord: Coordinate{12, 34, 5}}
	g.Systems = []*StarSystem{sys}

	if got := g.SystemAt(Coordinate{12, 34, 5}); got != sys {
		t.Errorf("SystemAt exact coordinate = %v, want the system", got)
	}
	if got := g.SystemAt(Coordinate{12, 34, 6}); got != nil {
		t.Errorf("SystemAt off coordinate = %v, want nil", got)
	}
}

func TestGeneratedSystemFactionMatchesSampler(t *testing.T) {
	g, err := New(3)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, s := range g.Systems {
		if s.Faction != g.FactionAt(s.Coord) {
			t.Errorf("system %q faction %v disagrees with FactionAt %v",
				s.Name, s.Faction, g.FactionAt(s.Coord))
		}
	}
}

func TestPlanetsAndBeltsSplit(t *testing.T) {
	s := &StarSystem{Bodies: []CelestialBody{
		{Kind: BodyPlanet, Name: "A I", Habitable: true},
		{Kind: BodyAsteroidBelt, Name: "A Belt 1"},
		{Kind: BodyPlanet, Name: "A II"},
	}}
	if got := len(s.Planets()); got != 2 {
		t.Errorf("Planets() = %d, want 2", got)
	}
	if got := len(s.AsteroidBelts()); got != 1 {
		t.Errorf("AsteroidBelts() = %d, want 1", got)
	}
}

func TestFactionName(t *testing.T) {
	g, err := New(1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := g.FactionName(FactionNone); got != "Independent" {
		t.Errorf("FactionName(none) = %q", got)
	}
	if got := g.FactionName(0); got != "The Veritas Covenant" {
		t.Errorf("FactionName(0) = %q", got)
	}
}
