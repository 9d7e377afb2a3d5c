package game

import "github.com/etherdrift/etherdrift/internal/galaxy"

// Ship is the player vessel. Coord and fuel are mutated only by the
// movement controller; cargo belongs to outside trade screens.
type Ship struct {
	Name      string
	Class     string
	Coord     galaxy.Coordinate
	Fuel      int
	MaxFuel   int
	JumpRange float64
	ScanRange float64
	Cargo     map[string]int
	MaxCargo  int
}

// NewShip builds a ship of the given class, fully fueled, at the
// galaxy center.
func NewShip(name string, class ShipClass, start galaxy.Coordinate) *Ship {
	return &Ship{
		Name:      name,
		Class:     class.Name,
		Coord:     start,
		Fuel:      class.Fuel,
		MaxFuel:   class.Fuel,
		JumpRange: class.JumpRange,
		ScanRange: class.ScanRange,
		Cargo:     make(map[string]int),
		MaxCargo:  class.Cargo,
	}
}

// Stranded reports whether the ship is out of fuel.
func (s *Ship) Stranded() bool { return s.Fuel <= 0 }

// Refuel fills the tank and returns the amount added. Called by the
// station trade screens, not by the movement controller.
func (s *Ship) Refuel() int {
	added := s.MaxFuel - s.Fuel
	s.Fuel = s.MaxFuel
	return added
}

// CargoUsed returns total cargo units aboard.
func (s *Ship) CargoUsed() int {
	total := 0
	for _, n := range s.Cargo {
		total += n
	}
	return total
}
