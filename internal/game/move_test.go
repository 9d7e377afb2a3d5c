package game

import (
	"testing"

	"github.com/etherdrift/etherdrift/internal/galaxy"
	"github.com/etherdrift/etherdrift/internal/view"
)

// bareGalaxy is a galaxy with no zones and no systems, so friction is
// neutral everywhere and no arrival can fire.
func bareGalaxy() *galaxy.Galaxy {
	return &galaxy.Galaxy{SizeX: 100, SizeY: 100, SizeZ: 50}
}

func testMover(t *testing.T, gal *galaxy.Galaxy) *moveController {
	t.Helper()
	proj, err := view.NewProjection(gal.SizeX, gal.SizeY, view.DefaultGridWidth, view.DefaultGridHeight)
	if err != nil {
		t.Fatalf("NewProjection: %v", err)
	}
	return newMoveController(gal, proj, nil, 42)
}

func testShip(fuel int) *Ship {
	return &Ship{
		Name: "Testbed", Class: "Basic Transport",
		Coord:   galaxy.Coordinate{X: 50, Y: 50, Z: 25},
		Fuel:    fuel,
		MaxFuel: 100, JumpRange: 15, ScanRange: 5,
	}
}

func TestStepSizes(t *testing.T) {
	m := testMover(t, bareGalaxy())
	sx, sy := m.stepSizes()
	// 100/200 rounds to 1 via the minimum; 100/60 rounds to 2.
	if sx != 1 {
		t.Errorf("stepX = %g, want 1", sx)
	}
	if sy != 2 {
		t.Errorf("stepY = %g, want 2", sy)
	}
}

func TestMoveBurnsFuelAtNeutralFriction(t *testing.T) {
	m := testMover(t, bareGalaxy())
	ship := testShip(100)

	res := m.move(ship, East)
	// Distance 1, base cost 2/unit, friction 1.0.
	if res.FuelDelta != -2 {
		t.Errorf("FuelDelta = %d, want -2", res.FuelDelta)
	}
	if ship.Fuel != 98 {
		t.Errorf("fuel = %d, want 98", ship.Fuel)
	}
	if ship.Coord.X != 51 {
		t.Errorf("X = %g, want 51", ship.Coord.X)
	}

	res = m.move(ship, South)
	// Distance 2 on the Y axis.
	if res.FuelDelta != -4 {
		t.Errorf("FuelDelta = %d, want -4", res.FuelDelta)
	}
	if ship.Coord.Y != 52 {
		t.Errorf("Y = %g, want 52", ship.Coord.Y)
	}
}

func TestMoveFrictionMultipliesCost(t *testing.T) {
	gal := bareGalaxy()
	gal.EtherZones = []galaxy.EtherZone{{
		Name:     "Test Storm",
		Center:   galaxy.Coordinate{X: 51, Y: 50, Z: 25},
		Radius:   5,
		Friction: 2.0,
	}}
	m := testMover(t, gal)
	ship := testShip(100)

	res := m.move(ship, East)
	// Base cost 2 doubled by destination friction.
	if res.FuelDelta != -4 {
		t.Errorf("FuelDelta = %d, want -4", res.FuelDelta)
	}
}

func TestMoveClampsAtWorldEdge(t *testing.T) {
	m := testMover(t, bareGalaxy())
	ship := testShip(100)
	ship.Coord = galaxy.Coordinate{X: 0, Y: 50, Z: 25}

	res := m.move(ship, West)
	if ship.Coord.X != 0 {
		t.Errorf("X = %g, want 0", ship.Coord.X)
	}
	// No distance covered, no fuel burned.
	if res.FuelDelta != 0 {
		t.Errorf("FuelDelta = %d, want 0", res.FuelDelta)
	}

	ship.Coord = galaxy.Coordinate{X: 50, Y: 99.5, Z: 25}
	m.move(ship, South)
	if ship.Coord.Y != 100 {
		t.Errorf("Y = %g, want exactly 100", ship.Coord.Y)
	}
}

func TestMoveDebitsAtMostRemainingFuel(t *testing.T) {
	m := testMover(t, bareGalaxy())
	ship := testShip(1)

	res := m.move(ship, South) // needs 4, has 1
	if res.FuelDelta != -1 {
		t.Errorf("FuelDelta = %d, want -1", res.FuelDelta)
	}
	if ship.Fuel != 0 {
		t.Errorf("fuel = %d, want 0", ship.Fuel)
	}
	if !res.Stranded {
		t.Error("ship not flagged stranded at zero fuel")
	}
	// Movement still committed.
	if ship.Coord.Y != 52 {
		t.Errorf("Y = %g, want 52", ship.Coord.Y)
	}
}

func TestStrandedRechargeAlternates(t *testing.T) {
	m := testMover(t, bareGalaxy())
	ship := testShip(0)
	m.recharge = newRechargeState()

	// First threshold is 3: two fuel-free moves, then a credit.
	for i := 0; i < 2; i++ {
		res := m.move(ship, East)
		if res.FuelDelta != 0 {
			t.Fatalf("move %d credited %d fuel before threshold", i+1, res.FuelDelta)
		}
	}
	res := m.move(ship, East)
	if res.FuelDelta < 1 || res.FuelDelta > 2 {
		t.Fatalf("third stranded move credited %d fuel, want 1 or 2", res.FuelDelta)
	}
	if m.recharge.threshold != 4 {
		t.Errorf("threshold = %d after first credit, want 4", m.recharge.threshold)
	}

	// Burn back to zero and confirm the next threshold is 4 moves.
	ship.Fuel = 0
	m.recharge.counter = 0
	for i := 0; i < 3; i++ {
		if res := m.move(ship, East); res.FuelDelta != 0 {
			t.Fatalf("move %d credited fuel before second threshold", i+1)
		}
	}
	res = m.move(ship, East)
	if res.FuelDelta < 1 || res.FuelDelta > 2 {
		t.Fatalf("fourth stranded move credited %d fuel, want 1 or 2", res.FuelDelta)
	}
	if m.recharge.threshold != 3 {
		t.Errorf("threshold = %d after second credit, want 3", m.recharge.threshold)
	}
}

func TestLowFuelFlag(t *testing.T) {
	m := testMover(t, bareGalaxy())
	ship := testShip(12)

	res := m.move(ship, East) // 12 -> 10
	if !res.LowFuel {
		t.Errorf("fuel %d not flagged low", ship.Fuel)
	}
	if res.Stranded {
		t.Error("low fuel flagged as stranded")
	}
}

func TestDirectionDeltas(t *testing.T) {
	cases := []struct {
		dir    Direction
		dx, dy int
	}{
		{North, 0, -1},
		{South, 0, 1},
		{West, -1, 0},
		{East, 1, 0},
	}
	for _, c := range cases {
		dx, dy := c.dir.Delta()
		if dx != c.dx || dy != c.dy {
			t.Errorf("%s delta = (%d,%d), want (%d,%d)", DirectionName(c.dir), dx, dy, c.dx, c.dy)
		}
	}
}
