package offset_elevation_sampler

import "github.com/mapgrid/geoscene/internal/converters"

// OffsetElevationSampler reports the same height everywhere, useful for flat
// test scenes or as a fixed correction applied on top of missing terrain.
type OffsetElevationSampler struct {
	Offset float64
}

func NewOffsetElevationSampler(offset float64) converters.ElevationSampler {
	return &OffsetElevationSampler{
		Offset: offset,
	}
}

func (s *OffsetElevationSampler) ElevationAt(east, north float64) (float64, bool) {
	return s.Offset, true
}
