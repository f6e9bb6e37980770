package utm_coordinate_converter

import (
	"fmt"

	"github.com/golang/geo/s2"
	"github.com/tzneal/coordconv"

	"github.com/mapgrid/geoscene/internal/converters"
	"github.com/mapgrid/geoscene/pkg/geometry"
)

// ETRS89 uses the GRS80 ellipsoid.
const (
	grs80SemiMajorAxis = 6378137.0
	grs80Flattening    = 1 / 298.257222101
	grs80EllipsoidCode = "RF"
)

// UTMCoordinateConverter converts between geographic coordinates and a
// single ETRS89/UTM zone. The geodetic math is delegated to the GEOTRANS
// transverse Mercator port in github.com/tzneal/coordconv; the per-zone
// projection tables are built eagerly at construction.
type UTMCoordinateConverter struct {
	utm        *coordconv.UTM
	zone       int
	hemisphere coordconv.Hemisphere
}

// NewUTMCoordinateConverter builds a converter pinned to the given UTM zone.
// southern selects the southern hemisphere false northing.
func NewUTMCoordinateConverter(zone int, southern bool) (converters.CoordinateConverter, error) {
	if zone < 1 || zone > 60 {
		return nil, fmt.Errorf("utm zone %d out of range [1, 60]", zone)
	}

	utm, err := coordconv.NewUTM2(grs80SemiMajorAxis, grs80Flattening, grs80EllipsoidCode, zone)
	if err != nil {
		return nil, fmt.Errorf("building utm converter for zone %d: %w", zone, err)
	}

	hemisphere := coordconv.HemisphereNorth
	if southern {
		hemisphere = coordconv.HemisphereSouth
	}

	return &UTMCoordinateConverter{
		utm:        utm,
		zone:       zone,
		hemisphere: hemisphere,
	}, nil
}

func (c *UTMCoordinateConverter) GeographicToProjected(ll s2.LatLng) (geometry.Coordinate, error) {
	utmCoord, err := c.utm.ConvertFromGeodetic(ll, c.zone)
	if err != nil {
		return geometry.Coordinate{}, fmt.Errorf("projecting %s to utm zone %d: %w", ll, c.zone, err)
	}

	return geometry.NewCoordinate(utmCoord.Easting, utmCoord.Northing, 0), nil
}

func (c *UTMCoordinateConverter) ProjectedToGeographic(coord geometry.Coordinate) (s2.LatLng, error) {
	ll, err := c.utm.ConvertToGeodetic(coordconv.UTMCoord{
		Zone:       c.zone,
		Hemisphere: c.hemisphere,
		Easting:    coord.East,
		Northing:   coord.North,
	})
	if err != nil {
		return s2.LatLng{}, fmt.Errorf("unprojecting (%.3f, %.3f) from utm zone %d: %w",
			coord.East, coord.North, c.zone, err)
	}

	return ll, nil
}
