package converters

// ElevationSampler reports terrain height at a projected position. The bool
// is false where the sampler has no data; that is not an error and callers
// are expected to fall back to a default height.
type ElevationSampler interface {
	ElevationAt(east, north float64) (float64, bool)
}
