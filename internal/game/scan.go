package game

import (
	"sort"

	"github.com/etherdrift/etherdrift/internal/galaxy"
)

// ScanKind tags what a scanner contact is.
type ScanKind uint8

const (
	ScanSystem ScanKind = iota
	ScanShip
)

// ScannedObject is one scanner contact, nearest first in scan results.
type ScannedObject struct {
	Kind     ScanKind
	System   *galaxy.StarSystem // set for ScanSystem
	NPC      *NPCInfo           // set for ScanShip
	Distance float64
}

// scanObjects is a pure query: everything within scanRange of the
// ship, sorted by distance. It mutates nothing; the compositor uses it
// to decide which systems get a scan summary icon.
func scanObjects(gal *galaxy.Galaxy, npcs NPCLocator, at galaxy.Coordinate, scanRange float64) []ScannedObject {
	var out []ScannedObject

	for _, sys := range gal.Systems {
		d := at.Distance(sys.Coord)
		if d <= scanRange {
			out = append(out, ScannedObject{Kind: ScanSystem, System: sys, Distance: d})
		}
	}
	if npcs != nil {
		for _, npc := range npcs.Nearby(at, scanRange) {
			npc := npc
			out = append(out, ScannedObject{Kind: ScanShip, NPC: &npc, Distance: npc.Distance})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Distance < out[j].Distance
	})
	return out
}

// scannedSystemNames collects the names of scanned systems for the
// compositor's icon layer.
func scannedSystemNames(objs []ScannedObject) map[string]bool {
	names := make(map[string]bool)
	for _, o := range objs {
		if o.Kind == ScanSystem {
			names[o.System.Name] = true
		}
	}
	return names
}
