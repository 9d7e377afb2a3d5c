package galaxy

// SystemType classifies a star system's economy and character.
type SystemType uint8

const (
	SysCoreWorld SystemType = iota
	SysFrontier
	SysIndustrial
	SysMilitary
	SysResearch
	SysTradingHub
	SysMining
	SysAgricultural
)

// ResourceGrade rates a system's extractable wealth.
type ResourceGrade uint8

const (
	ResDepleted ResourceGrade = iota
	ResPoor
	ResModerate
	ResRich
	ResAbundant
)

// BodyKind identifies a celestial body within a system.
type BodyKind uint8

const (
	BodyPlanet BodyKind = iota
	BodyAsteroidBelt
)

// CelestialBody is a planet or asteroid belt orbiting a system's star.
type CelestialBody struct {
	Kind        BodyKind
	Name        string
	Habitable   bool // planets only
	MineralRich bool // asteroid belts only
}

// Station is an orbital installation offering docking services.
type Station struct {
	Name string
}

// StarSystem is a fixed point of interest in the galaxy. Everything except
// Visited is set once at generation time and read-only afterwards.
type StarSystem struct {
	Name        string
	Coord       Coordinate
	Type        SystemType
	Population  int
	ThreatLevel int // 1-10
	Resources   ResourceGrade
	Stations    []Station
	Bodies      []CelestialBody
	Faction     FactionID // FactionNone if independent
	Description string

	Visited bool
}

// Planets returns the system's planetary bodies.
func (s *StarSystem) Planets() []CelestialBody {
	var out []CelestialBody
	for _, b := range s.Bodies {
		if b.Kind == BodyPlanet {
			out = append(out, b)
		}
	}
	return out
}

// AsteroidBelts returns the system's asteroid belts.
func (s *StarSystem) AsteroidBelts() []CelestialBody {
	var out []CelestialBody
	for _, b := range s.Bodies {
		if b.Kind == BodyAsteroidBelt {
			out = append(out, b)
		}
	}
	return out
}

// SystemTypeName returns a human-readable name for a system type.
func SystemTypeName(t SystemType) string {
	switch t {
	case SysCoreWorld:
		return "Core World"
	case SysFrontier:
		return "Frontier"
	case SysIndustrial:
		return "Industrial"
	case SysMilitary:
		return "Military"
	case SysResearch:
		return "Research"
	case SysTradingHub:
		return "Trading Hub"
	case SysMining:
		return "Mining"
	case SysAgricultural:
		return "Agricultural"
	default:
		return "Unknown"
	}
}

// ResourceGradeName returns a label for a resource grade.
func ResourceGradeName(g ResourceGrade) string {
	switch g {
	case ResDepleted:
		return "Depleted"
	case ResPoor:
		return "Poor"
	case ResModerate:
		return "Moderate"
	case ResRich:
		return "Rich"
	case ResAbundant:
		return "Abundant"
	default:
		return "Unknown"
	}
}
