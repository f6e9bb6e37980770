// Package scene exposes the coordinate-system service the rest of the
// application works against: a converter between geographic, projected and
// engine-local scene coordinates, centered on a configured anchor point.
package scene

import (
	"github.com/golang/geo/s2"
	"github.com/golang/glog"

	"github.com/mapgrid/geoscene/internal/converters"
	"github.com/mapgrid/geoscene/pkg/anchor"
	"github.com/mapgrid/geoscene/pkg/geometry"
)

// Converter composes the anchor-relative transform with a projected
// coordinate converter and an optional terrain elevation sampler. All
// collaborators are injected at construction; the converter holds no
// mutable state and is safe for concurrent use.
type Converter struct {
	transform *anchor.Transform
	coords    converters.CoordinateConverter
	elevation converters.ElevationSampler
}

// NewConverter wires a scene converter. elevation may be nil, in which case
// geographic conversions fall back to height zero.
func NewConverter(transform *anchor.Transform, coords converters.CoordinateConverter, elevation converters.ElevationSampler) *Converter {
	return &Converter{
		transform: transform,
		coords:    coords,
		elevation: elevation,
	}
}

// Anchor returns the anchor coordinate the scene is centered on.
func (c *Converter) Anchor() geometry.Coordinate {
	return c.transform.Origin()
}

// ToLocal converts an absolute projected coordinate to scene space.
func (c *Converter) ToLocal(p geometry.Coordinate) (geometry.LocalPoint, error) {
	return c.transform.ToLocal(p)
}

// ToAbsolute converts a scene point back to an absolute projected coordinate.
func (c *Converter) ToAbsolute(p geometry.LocalPoint) geometry.Coordinate {
	return c.transform.ToAbsolute(p)
}

// GeographicToLocal projects a geographic position into the scene, taking
// the vertical coordinate from the terrain sampler. Where no terrain height
// is available the point is placed at height zero.
func (c *Converter) GeographicToLocal(ll s2.LatLng) (geometry.LocalPoint, error) {
	projected, err := c.coords.GeographicToProjected(ll)
	if err != nil {
		return geometry.LocalPoint{}, err
	}

	projected.Height = c.heightAt(projected.East, projected.North)

	return c.transform.ToLocal(projected)
}

// GeographicToLocalAtHeight is GeographicToLocal for callers that carry
// their own height, in meters, instead of sampling the terrain.
func (c *Converter) GeographicToLocalAtHeight(ll s2.LatLng, height float64) (geometry.LocalPoint, error) {
	projected, err := c.coords.GeographicToProjected(ll)
	if err != nil {
		return geometry.LocalPoint{}, err
	}

	projected.Height = height

	return c.transform.ToLocal(projected)
}

// LocalToGeographic converts a scene point back to a geographic position.
// The vertical component is dropped; it has no geographic equivalent.
func (c *Converter) LocalToGeographic(p geometry.LocalPoint) (s2.LatLng, error) {
	return c.coords.ProjectedToGeographic(c.transform.ToAbsolute(p))
}

func (c *Converter) heightAt(east, north float64) float64 {
	if c.elevation == nil {
		return 0
	}

	height, ok := c.elevation.ElevationAt(east, north)
	if !ok {
		glog.Warningf("no terrain height at (%.3f, %.3f), using 0", east, north)
		return 0
	}

	return height
}
