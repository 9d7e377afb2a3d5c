package galaxy

// FactionID indexes the galaxy's faction table. FactionNone marks
// unclaimed space and independent systems.
type FactionID int

const FactionNone FactionID = -1

// Faction is a political power claiming a region of space. Display and
// flavor only at this layer; reputation and diplomacy live elsewhere.
type Faction struct {
	Name        string
	Description string
}

// FactionZone is the spherical region a faction claims. Static and
// read-only once the galaxy is built.
type FactionZone struct {
	Faction FactionID
	Center  Coordinate
	Radius  float64
}

// Contains reports whether the point lies within the zone.
func (z FactionZone) Contains(c Coordinate) bool {
	return z.Center.Distance(c) <= z.Radius
}

// EtherZone is a region of ether-energy drag. Friction below 1.0 enhances
// fuel efficiency, above 1.0 penalizes it.
type EtherZone struct {
	Name     string
	Center   Coordinate
	Radius   float64
	Friction float64

	// Generation-time values; drift wobbles Center/Radius around these.
	baseCenter Coordinate
	baseRadius float64
}

// Contains reports whether the point lies within the zone.
func (z EtherZone) Contains(c Coordinate) bool {
	return z.Center.Distance(c) <= z.Radius
}

// The eight founding factions and the regions they claim.
// Centers and radii are fixed lore, not generated.
var factionTable = []struct {
	name, desc string
	center     Coordinate
	radius     float64
}{
	{"The Veritas Covenant", "Core research and knowledge preservation sector", Coordinate{50, 50, 25}, 60},
	{"Stellar Nexus Guild", "Major trade corridor between the inner systems", Coordinate{65, 65, 29}, 70},
	{"Ironclad Collective", "Fortified border region", Coordinate{30, 80, 20}, 55},
	{"Scholara Nexus", "Scientific research zone", Coordinate{90, 45, 35}, 65},
	{"Harmonic Vitality Consortium", "Agricultural and bio-diversity sector", Coordinate{40, 40, 22}, 50},
	{"Gearwrights Guild", "Mining and manufacturing region", Coordinate{25, 30, 15}, 55},
	{"Keepers of the Spire", "Archaeological zone protecting ancient sites", Coordinate{48, 52, 24}, 60},
	{"Stellar Cartographers Alliance", "Frontier exploration sector", Coordinate{95, 90, 45}, 65},
}

// Ether zone archetypes: name stem plus the friction band drawn at
// generation time.
var etherZoneTypes = []struct {
	name               string
	minFrict, maxFrict float64
}{
	// Enhancement zones
	{"Void Current", 0.6, 0.7},
	{"Ether Stream", 0.75, 0.85},
	{"Cosmic Breeze", 0.85, 0.95},
	// Drag zones
	{"Flux Storm", 1.3, 1.5},
	{"Etheric Turbulence", 1.5, 1.8},
	{"Void Rift", 1.8, 2.2},
	// Nearly neutral
	{"Stable Ether", 0.95, 1.05},
}
