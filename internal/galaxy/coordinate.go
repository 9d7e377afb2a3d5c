package galaxy

import "math"

// Coordinate is a continuous position in the galaxy volume.
type Coordinate struct {
	X, Y, Z float64
}

// Distance returns the Euclidean distance to another coordinate.
func (c Coordinate) Distance(o Coordinate) float64 {
	dx := c.X - o.X
	dy := c.Y - o.Y
	dz := c.Z - o.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// PlanarDistance returns the distance ignoring the Z axis.
// Movement on the map is planar; Z only matters for sampling and arrival.
func (c Coordinate) PlanarDistance(o Coordinate) float64 {
	dx := c.X - o.X
	dy := c.Y - o.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Clamped returns the coordinate truncated to [0,sx]×[0,sy]×[0,sz].
func (c Coordinate) Clamped(sx, sy, sz float64) Coordinate {
	return Coordinate{
		X: clampFloat(c.X, 0, sx),
		Y: clampFloat(c.Y, 0, sy),
		Z: clampFloat(c.Z, 0, sz),
	}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
