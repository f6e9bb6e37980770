// Package anchor converts absolute projected coordinates to and from
// small-magnitude scene coordinates relative to a fixed anchor point.
// Re-centering on the anchor keeps offsets small enough to survive the
// narrowing to single precision required by the rendering engine.
package anchor

import (
	"fmt"

	"github.com/mapgrid/geoscene/pkg/geometry"
)

// MaxAnchorDistance is the largest per-axis offset from the anchor, in
// meters, that a point may have and still be converted to scene space.
// 100 km keeps the float32 representation error below a centimeter.
const MaxAnchorDistance = 100000.0

// OutOfRangeError reports a coordinate whose offset from the anchor exceeds
// the representable window on one axis.
type OutOfRangeError struct {
	Axis   string
	Value  float64
	Anchor float64
	Limit  float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s coordinate %.3f is further than %.0f m from anchor %s %.3f",
		e.Axis, e.Value, e.Limit, e.Axis, e.Anchor)
}

// Transform maps between absolute projected coordinates and anchor-relative
// scene coordinates. It is immutable after construction and safe for
// concurrent use.
type Transform struct {
	origin    geometry.Coordinate
	maxOffset float64
}

// New returns a Transform centered on the given anchor coordinate with the
// default MaxAnchorDistance window.
func New(origin geometry.Coordinate) *Transform {
	return NewWithMaxOffset(origin, MaxAnchorDistance)
}

// NewWithMaxOffset returns a Transform with a custom per-axis window,
// in meters.
func NewWithMaxOffset(origin geometry.Coordinate, maxOffset float64) *Transform {
	return &Transform{
		origin:    origin,
		maxOffset: maxOffset,
	}
}

// Origin returns the anchor coordinate the transform is centered on.
func (t *Transform) Origin() geometry.Coordinate {
	return t.origin
}

// MaxOffset returns the per-axis window in meters.
func (t *Transform) MaxOffset() float64 {
	return t.maxOffset
}

// ToLocal converts an absolute projected coordinate to an anchor-relative
// scene point. Offsets of MaxOffset meters or more on any axis return an
// *OutOfRangeError naming the offending axis.
func (t *Transform) ToLocal(p geometry.Coordinate) (geometry.LocalPoint, error) {
	east := p.East - t.origin.East
	north := p.North - t.origin.North
	height := p.Height - t.origin.Height

	if err := t.checkOffset("east", east, p.East, t.origin.East); err != nil {
		return geometry.LocalPoint{}, err
	}
	if err := t.checkOffset("north", north, p.North, t.origin.North); err != nil {
		return geometry.LocalPoint{}, err
	}
	if err := t.checkOffset("height", height, p.Height, t.origin.Height); err != nil {
		return geometry.LocalPoint{}, err
	}

	x, y, z := geometry.SwapHandedness(east, north, height)

	return geometry.NewLocalPoint(float32(x), float32(y), float32(z)), nil
}

// ToAbsolute converts an anchor-relative scene point back to an absolute
// projected coordinate. The inverse direction only widens precision, so no
// range check is needed.
func (t *Transform) ToAbsolute(p geometry.LocalPoint) geometry.Coordinate {
	east, north, height := geometry.SwapHandedness(float64(p.X), float64(p.Y), float64(p.Z))

	return geometry.NewCoordinate(
		east+t.origin.East,
		north+t.origin.North,
		height+t.origin.Height,
	)
}

func (t *Transform) checkOffset(axis string, offset, value, origin float64) error {
	if offset >= t.maxOffset || -offset >= t.maxOffset {
		return &OutOfRangeError{
			Axis:   axis,
			Value:  value,
			Anchor: origin,
			Limit:  t.maxOffset,
		}
	}

	return nil
}
