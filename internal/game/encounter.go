package game

import (
	"math/rand/v2"

	"github.com/etherdrift/etherdrift/internal/galaxy"
	"github.com/etherdrift/etherdrift/internal/view"
)

// NPCs within this many world units count as nearby after a move.
const encounterRadius = 10.0

// NPCLocator answers spatial queries about the NPC fleet. Fleet scans
// linearly; a spatial index can replace it without touching callers.
type NPCLocator interface {
	Nearby(c galaxy.Coordinate, radius float64) []NPCInfo
	AtCell(proj view.Projection, gx, gy int) *NPCInfo
}

// Encounter is an NPC sitting on the ship's destination cell.
type Encounter struct {
	NPC      NPCInfo
	Greeting string
}

// Arrival reports entering a star system: the system record plus a
// summary manifest for the HUD.
type Arrival struct {
	System   *galaxy.StarSystem
	Manifest Manifest
}

// Manifest summarizes a system's contents as counts and flags.
type Manifest struct {
	Planets      int
	Habitable    int
	Stations     int
	Belts        int
	MineralBelts int
	ThreatLevel  int
	Faction      galaxy.FactionID
}

// Greeting pools per NPC disposition.
var npcGreetings = map[NPCKind][]string{
	NPCTrader: {
		"Greetings, traveler! Looking to trade?",
		"Well met, pilot. I've got goods if you've got credits.",
		"Ahoy there! Business is slow out here. Care to browse?",
	},
	NPCPatrol: {
		"Unidentified vessel, transmit credentials.",
		"This is sector patrol. State your business.",
		"Routine inspection. Please hold position.",
	},
	NPCPirate: {
		"Cut your engines. Hand over your cargo.",
		"Nice ship. It's ours now. Unless you've got something better to offer.",
		"Resistance is expensive. Surrender is free.",
	},
	NPCWanderer: {
		"...static... anyone out there? ...static...",
		"We've been drifting a long time. Good to see another hull.",
		"No cargo, no quarrel. Safe travels.",
	},
}

// encounterResolver runs the post-move checks: NPC contact first, then
// system arrival. Both scans are linear over small registries.
type encounterResolver struct {
	gal  *galaxy.Galaxy
	npcs NPCLocator
	proj view.Projection
	seed int64
}

// resolveResult is the outcome of the post-move checks.
type resolveResult struct {
	Encounter *Encounter
	Arrival   *Arrival
	Ambiguous bool // two systems at equal distance shared the cell
	Nearby    []NPCInfo
}

// resolve checks the committed position for NPC contact and system
// arrival. An NPC on the destination cell halts arrival processing.
func (r *encounterResolver) resolve(ship *Ship) resolveResult {
	var res resolveResult
	if r.npcs != nil {
		res.Nearby = r.npcs.Nearby(ship.Coord, encounterRadius)

		gx, gy := r.proj.Project(ship.Coord)
		if npc := r.npcs.AtCell(r.proj, gx, gy); npc != nil {
			res.Encounter = &Encounter{NPC: *npc, Greeting: r.greeting(*npc)}
			return res
		}
	}

	res.Arrival, res.Ambiguous = r.resolveArrival(ship)
	return res
}

// resolveArrival finds systems sharing the ship's projected cell and
// enters the nearest by full 3-D distance, ties going to the earliest
// registry entry. The ship snaps onto the system's exact coordinate.
func (r *encounterResolver) resolveArrival(ship *Ship) (*Arrival, bool) {
	gx, gy := r.proj.Project(ship.Coord)

	var best *galaxy.StarSystem
	bestDist := 0.0
	ambiguous := false
	for _, sys := range r.gal.Systems {
		sx, sy := r.proj.Project(sys.Coord)
		if sx != gx || sy != gy {
			continue
		}
		d := ship.Coord.Distance(sys.Coord)
		switch {
		case best == nil || d < bestDist:
			best = sys
			bestDist = d
		case d == bestDist:
			ambiguous = true
		}
	}
	if best == nil {
		return nil, false
	}

	ship.Coord = best.Coord
	best.Visited = true
	return &Arrival{System: best, Manifest: buildManifest(best)}, ambiguous
}

func buildManifest(sys *galaxy.StarSystem) Manifest {
	m := Manifest{
		Stations:    len(sys.Stations),
		ThreatLevel: sys.ThreatLevel,
		Faction:     sys.Faction,
	}
	for _, b := range sys.Bodies {
		switch b.Kind {
		case galaxy.BodyPlanet:
			m.Planets++
			if b.Habitable {
				m.Habitable++
			}
		case galaxy.BodyAsteroidBelt:
			m.Belts++
			if b.MineralRich {
				m.MineralBelts++
			}
		}
	}
	return m
}

// greeting picks a transmission line deterministically from the NPC's
// position, so redisplaying the same contact repeats the same words.
func (r *encounterResolver) greeting(npc NPCInfo) string {
	seed := r.seed*777 + int64(npc.Coord.X)*31 + int64(npc.Coord.Y)*17
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed>>8|3)))
	pool := npcGreetings[npc.Kind]
	if len(pool) == 0 {
		return "..."
	}
	return pool[rng.IntN(len(pool))]
}
