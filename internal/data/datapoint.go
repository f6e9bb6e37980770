package data

// Contains one input record of the batch pipeline. In projected mode A is
// the easting and B the northing, both in meters; in geographic mode A is
// the longitude and B the latitude, in degrees. Height is in meters;
// HasHeight records whether the source row carried a third column, so an
// explicit zero height stays distinguishable from an absent one.
type Point struct {
	A         float64
	B         float64
	Height    float64
	HasHeight bool

	// 1-based line number in the source file, for error reporting
	SourceLine int
}

// Builds a new Point from a two-column record with no height of its own
func NewPoint(a, b float64, sourceLine int) *Point {
	return &Point{
		A:          a,
		B:          b,
		SourceLine: sourceLine,
	}
}

// Builds a new Point from a three-column record carrying an explicit height
func NewPointWithHeight(a, b, height float64, sourceLine int) *Point {
	return &Point{
		A:          a,
		B:          b,
		Height:     height,
		HasHeight:  true,
		SourceLine: sourceLine,
	}
}
