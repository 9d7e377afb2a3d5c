package galaxy

// Friction is clamped to this band regardless of zone archetype.
const (
	MinFriction = 0.5
	MaxFriction = 2.0
)

// FactionAt classifies a point against the faction zone table. When zones
// overlap, the most enclosing one wins: smallest distance-to-radius ratio,
// ties broken by table order. Returns FactionNone outside all zones.
//
// Pure function of the static table; safe to call from anywhere.
func (g *Galaxy) FactionAt(c Coordinate) FactionID {
	best := FactionNone
	bestRatio := 1.0
	found := false
	for _, z := range g.Zones {
		if z.Radius <= 0 {
			continue
		}
		ratio := z.Center.Distance(c) / z.Radius
		if ratio <= 1.0 && (!found || ratio < bestRatio) {
			bestRatio = ratio
			best = z.Faction
			found = true
		}
	}
	return best
}

// FrictionAt samples the ether drag multiplier at a point. Among all zones
// containing the point, the most enclosing one (smallest distance-to-radius
// ratio, ties by table order) supplies the friction; 1.0 outside all zones.
// The result is clamped to [MinFriction, MaxFriction].
func (g *Galaxy) FrictionAt(c Coordinate) float64 {
	friction := 1.0
	bestRatio := 1.0
	found := false
	for _, z := range g.EtherZones {
		if z.Radius <= 0 {
			continue
		}
		ratio := z.Center.Distance(c) / z.Radius
		if ratio <= 1.0 && (!found || ratio < bestRatio) {
			bestRatio = ratio
			friction = z.Friction
			found = true
		}
	}
	return clampFloat(friction, MinFriction, MaxFriction)
}

// EtherZoneAt returns the most enclosing ether zone at a point, or nil.
// Same selection rule as FrictionAt.
func (g *Galaxy) EtherZoneAt(c Coordinate) *EtherZone {
	var best *EtherZone
	bestRatio := 1.0
	for i := range g.EtherZones {
		z := &g.EtherZones[i]
		if z.Radius <= 0 {
			continue
		}
		ratio := z.Center.Distance(c) / z.Radius
		if ratio <= 1.0 && (best == nil || ratio < bestRatio) {
			bestRatio = ratio
			best = z
		}
	}
	return best
}

// DragTier buckets a friction value into one of 8 discrete display tiers.
type DragTier uint8

const (
	DragVeryLow     DragTier = iota // friction < 0.7
	DragLow                         // < 0.85
	DragMildEnhance                 // < 0.95
	DragNeutral                     // < 1.05
	DragMild                        // < 1.3
	DragModerate                    // < 1.6
	DragHigh                        // < 2.0
	DragVeryHigh                    // >= 2.0
)

// TierForFriction maps a friction value to its display tier.
func TierForFriction(f float64) DragTier {
	switch {
	case f < 0.7:
		return DragVeryLow
	case f < 0.85:
		return DragLow
	case f < 0.95:
		return DragMildEnhance
	case f < 1.05:
		return DragNeutral
	case f < 1.3:
		return DragMild
	case f < 1.6:
		return DragModerate
	case f < 2.0:
		return DragHigh
	default:
		return DragVeryHigh
	}
}

// DragTierLabel returns a human-readable description of a drag tier.
func DragTierLabel(t DragTier) string {
	switch t {
	case DragVeryLow:
		return "Very Low Drag"
	case DragLow:
		return "Low Drag"
	case DragMildEnhance:
		return "Mild Enhancement"
	case DragNeutral:
		return "Neutral"
	case DragMild:
		return "Mild Drag"
	case DragModerate:
		return "Moderate Drag"
	case DragHigh:
		return "High Drag"
	default:
		return "Very High Drag"
	}
}
