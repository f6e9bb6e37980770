package geometry

// Coordinate is an absolute position in the projected (ETRS89/UTM) system:
// easting and northing in meters, height in meters above the ellipsoid.
// Double precision, since UTM magnitudes run into the millions of meters.
type Coordinate struct {
	East   float64
	North  float64
	Height float64
}

// NewCoordinate builds a Coordinate from easting, northing and height in meters.
func NewCoordinate(east, north, height float64) Coordinate {
	return Coordinate{
		East:   east,
		North:  north,
		Height: height,
	}
}

// LocalPoint is a position in the engine's local scene space: single
// precision, left-handed with Y up. X carries the east offset, Y the height
// offset and Z the north offset from the configured anchor.
type LocalPoint struct {
	X float32
	Y float32
	Z float32
}

// NewLocalPoint builds a LocalPoint from its three scene components.
func NewLocalPoint(x, y, z float32) LocalPoint {
	return LocalPoint{X: x, Y: y, Z: z}
}

// SwapHandedness permutes a 3-tuple between the projected system's
// right-handed east/north/height order and the engine's left-handed
// east/height/north order. The permutation swaps the second and third
// components only, so it is its own inverse.
func SwapHandedness(a, b, c float64) (float64, float64, float64) {
	return a, c, b
}
