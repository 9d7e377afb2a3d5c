package game

import (
	"encoding/json"
	"fmt"
)

// ShipClass is the JSON-serializable definition of a ship class.
type ShipClass struct {
	Name      string  `json:"name"`
	Fuel      int     `json:"fuel"`
	JumpRange float64 `json:"jump_range"`
	Cargo     int     `json:"cargo"`
	ScanRange float64 `json:"scan_range"`
}

// ShipCatalog holds the available ship classes.
type ShipCatalog struct {
	DefaultClass string      `json:"default_class"`
	Classes      []ShipClass `json:"classes"`
}

// LoadShipCatalog parses a ShipCatalog from JSON bytes.
func LoadShipCatalog(data []byte) (*ShipCatalog, error) {
	var cat ShipCatalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parse ship catalog: %w", err)
	}
	if len(cat.Classes) == 0 {
		return nil, fmt.Errorf("ship catalog has no classes")
	}
	for _, c := range cat.Classes {
		if c.Fuel <= 0 || c.JumpRange <= 0 {
			return nil, fmt.Errorf("ship class %q has non-positive fuel or range", c.Name)
		}
	}
	return &cat, nil
}

// Class looks up a class by name, falling back to the catalog default.
func (c *ShipCatalog) Class(name string) ShipClass {
	for _, cl := range c.Classes {
		if cl.Name == name {
			return cl
		}
	}
	for _, cl := range c.Classes {
		if cl.Name == c.DefaultClass {
			return cl
		}
	}
	return c.Classes[0]
}
