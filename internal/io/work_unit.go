package io

import (
	"github.com/mapgrid/geoscene/internal/data"
	"github.com/mapgrid/geoscene/pkg/geometry"
)

// Contains the minimal data needed to convert a single input record: the
// parsed point and its position in the input, since the converter is fixed
// per run. Seq is the 0-based submission order and drives output ordering.
type WorkUnit struct {
	Seq   int
	Point *data.Point
}

// Result pairs an input record with its scene-space conversion. Seq carries
// over from the WorkUnit so the writer can restore input order.
type Result struct {
	Seq   int
	Point *data.Point
	Local geometry.LocalPoint
}
