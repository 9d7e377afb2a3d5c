package galaxy

import (
	"fmt"
	"math/rand/v2"
	"sort"
)

// Default galaxy volume.
const (
	DefaultSizeX = 100.0
	DefaultSizeY = 100.0
	DefaultSizeZ = 50.0
)

var systemNames = []string{
	"Alpha Centauri", "Vega Prime", "Rigel Station", "Betelgeuse Sector",
	"Sirius Gate", "Procyon Hub", "Altair Outpost", "Arcturus Base",
	"Capella Nexus", "Aldebaran Port", "Antares Junction", "Spica Terminal",
	"Pollux Settlement", "Regulus Colony", "Deneb Fortress", "Canopus Trade Hub",
	"Bellatrix Mining", "Mintaka Research", "Alnilam Depot", "Alnitak Refinery",
	"Proxima Relay", "Wolf 359", "Barnard's Star", "Lalande 21185",
	"Ross 154", "Epsilon Eridani", "61 Cygni", "Groombridge 1618",
	"DX Cancri", "Tau Ceti", "Gliese 667C", "Kepler-442b",
	"HD 40307g", "Gliese 581g", "Kepler-452b", "TRAPPIST-1",
	"LHS 1140b", "Proxima b", "Ross 128b", "TOI-715b",
}

var systemDescriptions = []string{
	"A bustling hub of interstellar commerce and trade.",
	"Ancient ruins dot the surfaces of several planets here.",
	"Rich asteroid fields provide abundant mining opportunities.",
	"Home to advanced research facilities and universities.",
	"A heavily fortified military stronghold guards this sector.",
	"Lush agricultural worlds supply food across the galaxy.",
	"Mysterious energy readings emanate from this system.",
	"Pirates and smugglers are known to frequent this area.",
	"A peaceful system with beautiful nebula formations.",
	"Industrial megafactories operate around the clock here.",
}

// Galaxy holds the bounded coordinate volume and the static registries:
// star systems, faction zones, ether zones. Only StarSystem.Visited
// mutates after construction.
type Galaxy struct {
	SizeX, SizeY, SizeZ float64

	Systems    []*StarSystem
	Factions   []Faction
	Zones      []FactionZone
	EtherZones []EtherZone

	Seed int64

	driftTicks int
}

// New generates a galaxy of the default size from a seed.
func New(seed int64) (*Galaxy, error) {
	return NewSized(seed, DefaultSizeX, DefaultSizeY, DefaultSizeZ)
}

// NewSized generates a galaxy with explicit extents. All extents must be
// positive; there is no recovery from a zero-volume world.
func NewSized(seed int64, sx, sy, sz float64) (*Galaxy, error) {
	if sx <= 0 || sy <= 0 || sz <= 0 {
		return nil, fmt.Errorf("galaxy extents must be positive, got %gx%gx%g", sx, sy, sz)
	}

	g := &Galaxy{SizeX: sx, SizeY: sy, SizeZ: sz, Seed: seed}
	g.buildFactionZones()

	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed>>16|1)))
	g.generateEtherZones(rng)
	g.generateSystems(rng)
	return g, nil
}

// Center returns the midpoint of the galaxy volume, the traditional
// starting position for a new ship.
func (g *Galaxy) Center() Coordinate {
	return Coordinate{X: g.SizeX / 2, Y: g.SizeY / 2, Z: g.SizeZ / 2}
}

func (g *Galaxy) buildFactionZones() {
	for i, f := range factionTable {
		g.Factions = append(g.Factions, Faction{Name: f.name, Description: f.desc})
		g.Zones = append(g.Zones, FactionZone{
			Faction: FactionID(i),
			Center:  f.center,
			Radius:  f.radius,
		})
	}
}

func (g *Galaxy) generateEtherZones(rng *rand.Rand) {
	numZones := 15 + rng.IntN(11) // 15-25

	marginXY := g.SizeX * 0.1
	marginZ := g.SizeZ * 0.2
	for i := 0; i < numZones; i++ {
		center := Coordinate{
			X: marginXY + rng.Float64()*(g.SizeX-2*marginXY),
			Y: marginXY + rng.Float64()*(g.SizeY-2*marginXY),
			Z: marginZ + rng.Float64()*(g.SizeZ-2*marginZ),
		}
		zt := etherZoneTypes[rng.IntN(len(etherZoneTypes))]
		friction := zt.minFrict + rng.Float64()*(zt.maxFrict-zt.minFrict)
		radius := g.SizeX*0.08 + rng.Float64()*g.SizeX*0.17 // 8%-25% of width

		g.EtherZones = append(g.EtherZones, EtherZone{
			Name:       fmt.Sprintf("%s %s", zt.name, greekSuffix(i)),
			Center:     center,
			Radius:     radius,
			Friction:   friction,
			baseCenter: center,
			baseRadius: radius,
		})
	}
}

var greekLetters = []string{"Alpha", "Beta", "Gamma", "Delta", "Epsilon", "Zeta", "Eta", "Theta"}

func greekSuffix(i int) string {
	s := greekLetters[i%len(greekLetters)]
	if n := i / len(greekLetters); n > 0 {
		s = fmt.Sprintf("%s %d", s, n+1)
	}
	return s
}

func (g *Galaxy) generateSystems(rng *rand.Rand) {
	numSystems := 30 + rng.IntN(11) // 30-40
	if numSystems > len(systemNames) {
		numSystems = len(systemNames)
	}

	names := make([]string, len(systemNames))
	copy(names, systemNames)
	rng.Shuffle(len(names), func(i, j int) {
		names[i], names[j] = names[j], names[i]
	})

	for i := 0; i < numSystems; i++ {
		coord := Coordinate{
			X: 10 + rng.Float64()*(g.SizeX-20),
			Y: 10 + rng.Float64()*(g.SizeY-20),
			Z: 5 + rng.Float64()*(g.SizeZ-10),
		}

		sys := &StarSystem{
			Name:        names[i],
			Coord:       coord,
			Type:        SystemType(rng.IntN(8)),
			Population:  100_000 + rng.IntN(50_000_000),
			ThreatLevel: 1 + rng.IntN(10),
			Resources:   ResourceGrade(rng.IntN(5)),
			Faction:     g.FactionAt(coord),
			Description: systemDescriptions[rng.IntN(len(systemDescriptions))],
		}

		for s := rng.IntN(4); s > 0; s-- {
			sys.Stations = append(sys.Stations, Station{
				Name: fmt.Sprintf("%s Station %d", sys.Name, s),
			})
		}
		sys.Bodies = generateBodies(rng, sys.Name)

		g.Systems = append(g.Systems, sys)
	}
}

var romanNumerals = []string{"I", "II", "III", "IV", "V"}

func generateBodies(rng *rand.Rand, sysName string) []CelestialBody {
	var bodies []CelestialBody

	numPlanets := 1 + rng.IntN(4)
	for i := 0; i < numPlanets; i++ {
		bodies = append(bodies, CelestialBody{
			Kind:      BodyPlanet,
			Name:      sysName + " " + romanNumerals[i%len(romanNumerals)],
			Habitable: rng.IntN(4) == 0, // 25% habitable
		})
	}

	for i := rng.IntN(3); i > 0; i-- {
		bodies = append(bodies, CelestialBody{
			Kind:        BodyAsteroidBelt,
			Name:        fmt.Sprintf("%s Belt %d", sysName, i),
			MineralRich: rng.IntN(3) == 0,
		})
	}
	return bodies
}

// SystemAt returns the system at an exact coordinate, or nil.
func (g *Galaxy) SystemAt(c Coordinate) *StarSystem {
	for _, s := range g.Systems {
		if s.Coord == c {
			return s
		}
	}
	return nil
}

// NearSystem pairs a system with its distance from a query point.
type NearSystem struct {
	System   *StarSystem
	Distance float64
}

// NearbySystems returns systems within rangeLimit of c, nearest first.
// The query point itself is excluded.
func (g *Galaxy) NearbySystems(c Coordinate, rangeLimit float64) []NearSystem {
	var out []NearSystem
	for _, s := range g.Systems {
		d := c.Distance(s.Coord)
		if d > 0 && d <= rangeLimit {
			out = append(out, NearSystem{System: s, Distance: d})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Distance < out[j].Distance
	})
	return out
}

// FactionName resolves an id to a display name, "Independent" for none.
func (g *Galaxy) FactionName(id FactionID) string {
	if id < 0 || int(id) >= len(g.Factions) {
		return "Independent"
	}
	return g.Factions[id].Name
}

// DriftEtherZones wobbles zone centers and radii slightly around their
// generation-time values. Zones stay recognizable: centers move at most
// ±5 units (±2 on Z), radii stay within ±10% of base.
func (g *Galaxy) DriftEtherZones(rng *rand.Rand) {
	g.driftTicks++
	if g.driftTicks%10 != 0 {
		return
	}

	const maxDrift = 2.0
	for i := range g.EtherZones {
		z := &g.EtherZones[i]

		z.Center.X = clampFloat(z.Center.X+uniform(rng, maxDrift), z.baseCenter.X-5, z.baseCenter.X+5)
		z.Center.Y = clampFloat(z.Center.Y+uniform(rng, maxDrift), z.baseCenter.Y-5, z.baseCenter.Y+5)
		z.Center.Z = clampFloat(z.Center.Z+uniform(rng, maxDrift*0.5), z.baseCenter.Z-2, z.baseCenter.Z+2)

		z.Radius = clampFloat(z.Radius+uniform(rng, 1.0), z.baseRadius*0.9, z.baseRadius*1.1)
	}
}

// uniform draws from [-max, max).
func uniform(rng *rand.Rand, max float64) float64 {
	return (rng.Float64()*2 - 1) * max
}
