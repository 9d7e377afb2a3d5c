package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/mlange-42/ark/ecs"

	"github.com/etherdrift/etherdrift/internal/galaxy"
	"github.com/etherdrift/etherdrift/internal/view"
)

// NPCKind determines an NPC ship's disposition.
type NPCKind uint8

const (
	NPCTrader NPCKind = iota
	NPCPatrol
	NPCPirate
	NPCWanderer
)

// NPCKindLabel returns a display label for an NPC ship type.
func NPCKindLabel(k NPCKind) string {
	switch k {
	case NPCTrader:
		return "Merchant Vessel"
	case NPCPatrol:
		return "Patrol Vessel"
	case NPCPirate:
		return "Pirate Vessel"
	case NPCWanderer:
		return "Drifting Vessel"
	default:
		return "Unknown Vessel"
	}
}

// Position is an NPC's world coordinate component.
type Position struct {
	Coord galaxy.Coordinate
}

// Drift is an NPC's motion component: a per-axis step applied each
// tick, re-aimed when the retarget countdown expires.
type Drift struct {
	DX, DY, DZ float64
	Retarget   int
}

// Identity names an NPC ship.
type Identity struct {
	Name string
	Kind NPCKind
}

// NPCInfo is a read-only snapshot of one NPC, handed to callers.
type NPCInfo struct {
	Name     string
	Kind     NPCKind
	Coord    galaxy.Coordinate
	Distance float64
}

// Drift tuning. Steps are small relative to the player's grid step so
// NPCs wander rather than race.
const (
	npcDriftStep    = 0.8
	npcDriftStepZ   = 0.3
	npcRetargetMin  = 4
	npcRetargetSpan = 6
)

var npcNamePools = map[NPCKind][]string{
	NPCTrader:   {"Star Hauler", "Merchantman", "Cargo Queen", "Lucky Profit", "Silk Road"},
	NPCPatrol:   {"Sentinel VII", "Watchdog", "Iron Law", "Peacekeeper", "Blue Line"},
	NPCPirate:   {"Void Fang", "Black Marlin", "Skull Dancer", "Dread Nail", "Gut Ripper"},
	NPCWanderer: {"Wayfarer", "Silent Echo", "Long Orbit", "Pale Comet", "Last Light"},
}

// Fleet owns all NPC ships as ECS entities. Entities are stored in
// creation order so queries resolve deterministically.
type Fleet struct {
	ECS *ecs.World

	ships  []ecs.Entity
	posMap *ecs.Map[Position]
	drfMap *ecs.Map[Drift]
	idMap  *ecs.Map[Identity]

	gal *galaxy.Galaxy
	rng *rand.Rand
}

// NewFleet spawns count NPC ships at seeded random positions.
func NewFleet(gal *galaxy.Galaxy, seed int64, count int) *Fleet {
	w := ecs.NewWorld(256)
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed>>8|5)))

	f := &Fleet{
		ECS:    w,
		posMap: ecs.NewMap[Position](w),
		drfMap: ecs.NewMap[Drift](w),
		idMap:  ecs.NewMap[Identity](w),
		gal:    gal,
		rng:    rng,
	}

	builder := ecs.NewMap3[Position, Drift, Identity](w)
	for i := 0; i < count; i++ {
		kind := NPCKind(rng.IntN(4))
		pool := npcNamePools[kind]
		name := pool[rng.IntN(len(pool))]
		if n := i / len(pool); n > 0 {
			name = fmt.Sprintf("%s %d", name, n+1)
		}

		pos := Position{Coord: galaxy.Coordinate{
			X: rng.Float64() * gal.SizeX,
			Y: rng.Float64() * gal.SizeY,
			Z: rng.Float64() * gal.SizeZ,
		}}
		drift := f.newDrift()

		e := builder.NewEntity(&pos, &drift, &Identity{Name: name, Kind: kind})
		f.ships = append(f.ships, e)
	}
	return f
}

func (f *Fleet) newDrift() Drift {
	return Drift{
		DX:       uniform(f.rng, npcDriftStep),
		DY:       uniform(f.rng, npcDriftStep),
		DZ:       uniform(f.rng, npcDriftStepZ),
		Retarget: npcRetargetMin + f.rng.IntN(npcRetargetSpan),
	}
}

// Count returns the number of NPC ships.
func (f *Fleet) Count() int { return len(f.ships) }

// Tick drifts every NPC one step, bouncing off world bounds.
func (f *Fleet) Tick() {
	for _, e := range f.ships {
		pos := f.posMap.Get(e)
		drift := f.drfMap.Get(e)

		pos.Coord.X += drift.DX
		pos.Coord.Y += drift.DY
		pos.Coord.Z += drift.DZ

		if pos.Coord.X < 0 || pos.Coord.X > f.gal.SizeX {
			drift.DX = -drift.DX
		}
		if pos.Coord.Y < 0 || pos.Coord.Y > f.gal.SizeY {
			drift.DY = -drift.DY
		}
		if pos.Coord.Z < 0 || pos.Coord.Z > f.gal.SizeZ {
			drift.DZ = -drift.DZ
		}
		pos.Coord = pos.Coord.Clamped(f.gal.SizeX, f.gal.SizeY, f.gal.SizeZ)

		drift.Retarget--
		if drift.Retarget <= 0 {
			*drift = f.newDrift()
		}
	}
}

// Nearby returns NPCs within radius of a point, in fleet order.
func (f *Fleet) Nearby(c galaxy.Coordinate, radius float64) []NPCInfo {
	var out []NPCInfo
	for _, e := range f.ships {
		pos := f.posMap.Get(e)
		d := c.Distance(pos.Coord)
		if d <= radius {
			id := f.idMap.Get(e)
			out = append(out, NPCInfo{Name: id.Name, Kind: id.Kind, Coord: pos.Coord, Distance: d})
		}
	}
	return out
}

// AtCell returns the first NPC whose position projects onto the given
// grid cell, or nil.
func (f *Fleet) AtCell(proj view.Projection, gx, gy int) *NPCInfo {
	for _, e := range f.ships {
		pos := f.posMap.Get(e)
		px, py := proj.Project(pos.Coord)
		if px == gx && py == gy {
			id := f.idMap.Get(e)
			return &NPCInfo{Name: id.Name, Kind: id.Kind, Coord: pos.Coord}
		}
	}
	return nil
}

// uniform draws from [-max, max).
func uniform(rng *rand.Rand, max float64) float64 {
	return (rng.Float64()*2 - 1) * max
}

// Markers returns the fleet as compositor markers.
func (f *Fleet) Markers() []view.NPCMarker {
	out := make([]view.NPCMarker, 0, len(f.ships))
	for _, e := range f.ships {
		pos := f.posMap.Get(e)
		id := f.idMap.Get(e)
		out = append(out, view.NPCMarker{Coord: pos.Coord, Name: id.Name})
	}
	return out
}
