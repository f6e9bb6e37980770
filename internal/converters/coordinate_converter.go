package converters

import (
	"github.com/golang/geo/s2"

	"github.com/mapgrid/geoscene/pkg/geometry"
)

// CoordinateConverter maps between geographic (longitude/latitude) and
// projected (easting/northing) coordinates. Implementations are configured
// for a single projected system at construction time.
type CoordinateConverter interface {
	GeographicToProjected(ll s2.LatLng) (geometry.Coordinate, error)
	ProjectedToGeographic(coord geometry.Coordinate) (s2.LatLng, error)
}
