package game

import (
	"math"
	"math/rand/v2"

	"github.com/etherdrift/etherdrift/internal/galaxy"
	"github.com/etherdrift/etherdrift/internal/view"
)

// Direction is a four-way map movement input.
type Direction uint8

const (
	North Direction = iota
	South
	West
	East
)

// Delta returns the grid-axis sign pair for a direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case West:
		return -1, 0
	case East:
		return 1, 0
	default:
		return 0, 0
	}
}

// DirectionName returns a compass label.
func DirectionName(d Direction) string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case West:
		return "west"
	case East:
		return "east"
	default:
		return "nowhere"
	}
}

// BaseCostFunc converts distance moved into a base fuel cost, before
// the ether friction multiplier. The cost curve belongs to the ship
// outfitting screens; only the friction multiplication is done here.
type BaseCostFunc func(distance float64) float64

// DefaultBaseCost charges two fuel per unit of distance.
func DefaultBaseCost(distance float64) float64 {
	return distance * 2
}

// Fuel warning threshold for the comms log.
const lowFuelThreshold = 10

// MoveResult reports everything a single move did.
type MoveResult struct {
	NewCoord  galaxy.Coordinate
	FuelDelta int // negative when burned, positive when recharged
	Stranded  bool
	LowFuel   bool
	Encounter *Encounter
	Arrival   *Arrival
	Nearby    []NPCInfo
}

// moveController owns the ship's coordinate and fuel transitions. One
// move commits coordinate, fuel and recharge state as a single group.
type moveController struct {
	gal      *galaxy.Galaxy
	proj     view.Projection
	baseCost BaseCostFunc
	recharge rechargeState
	rng      *rand.Rand
}

func newMoveController(gal *galaxy.Galaxy, proj view.Projection, baseCost BaseCostFunc, seed int64) *moveController {
	if baseCost == nil {
		baseCost = DefaultBaseCost
	}
	return &moveController{
		gal:      gal,
		proj:     proj,
		baseCost: baseCost,
		recharge: newRechargeState(),
		rng:      rand.New(rand.NewPCG(uint64(seed), uint64(seed>>4|9))),
	}
}

// stepSizes returns the world-unit distance one grid cell covers,
// never less than one unit per keypress.
func (m *moveController) stepSizes() (stepX, stepY float64) {
	stepX = math.Max(1, math.Round(m.gal.SizeX/float64(m.proj.GridW)))
	stepY = math.Max(1, math.Round(m.gal.SizeY/float64(m.proj.GridH)))
	return stepX, stepY
}

// move applies one directional input to the ship. The coordinate is
// clamped to world bounds and always commits; running dry never stops
// the ship, it only strands it.
func (m *moveController) move(ship *Ship, dir Direction) MoveResult {
	dx, dy := dir.Delta()
	stepX, stepY := m.stepSizes()

	old := ship.Coord
	next := galaxy.Coordinate{
		X: old.X + float64(dx)*stepX,
		Y: old.Y + float64(dy)*stepY,
		Z: old.Z,
	}.Clamped(m.gal.SizeX, m.gal.SizeY, m.gal.SizeZ)

	res := MoveResult{NewCoord: next}
	distance := old.PlanarDistance(next)

	if distance > 0 {
		if ship.Fuel > 0 {
			friction := m.gal.FrictionAt(next)
			needed := int(math.Round(m.baseCost(distance) * friction))
			burned := needed
			if burned > ship.Fuel {
				burned = ship.Fuel
			}
			ship.Fuel -= burned
			res.FuelDelta = -burned
			if ship.Fuel == 0 {
				m.recharge.reset()
			}
		} else {
			credit := m.recharge.step(m.rng)
			if credit > 0 {
				if ship.Fuel+credit > ship.MaxFuel {
					credit = ship.MaxFuel - ship.Fuel
				}
				ship.Fuel += credit
				res.FuelDelta = credit
			}
		}
	}

	ship.Coord = next
	res.Stranded = ship.Fuel == 0
	res.LowFuel = ship.Fuel > 0 && ship.Fuel <= lowFuelThreshold
	return res
}
