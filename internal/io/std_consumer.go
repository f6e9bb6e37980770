package io

import (
	"fmt"
	"sync"

	"github.com/golang/geo/s2"

	"github.com/mapgrid/geoscene/pkg/geometry"
	"github.com/mapgrid/geoscene/pkg/scene"
)

// StandardConsumer converts WorkUnits to scene coordinates through a
// scene.Converter. In geographic mode input records are interpreted as
// longitude/latitude; otherwise as projected easting/northing.
type StandardConsumer struct {
	converter  *scene.Converter
	geographic bool
}

func NewStandardConsumer(converter *scene.Converter, geographic bool) *StandardConsumer {
	return &StandardConsumer{
		converter:  converter,
		geographic: geographic,
	}
}

// Continually consumes WorkUnits submitted to the work channel, emitting
// Results until the channel is closed. The first conversion failure is
// submitted to the error channel; remaining work is drained unprocessed.
func (c *StandardConsumer) Consume(workchan chan *WorkUnit, out chan *Result, errchan chan error, wg *sync.WaitGroup) {
	defer wg.Done()

	failed := false
	for work := range workchan {
		if failed {
			// keep draining so the producer never blocks on a full channel
			continue
		}

		local, err := c.convert(work)
		if err != nil {
			errchan <- fmt.Errorf("line %d: %w", work.Point.SourceLine, err)
			failed = true
			continue
		}

		out <- &Result{Seq: work.Seq, Point: work.Point, Local: local}
	}
}

func (c *StandardConsumer) convert(work *WorkUnit) (geometry.LocalPoint, error) {
	p := work.Point

	if c.geographic {
		// an explicit height column wins over terrain sampling, even when
		// it is zero
		if p.HasHeight {
			return c.converter.GeographicToLocalAtHeight(s2.LatLngFromDegrees(p.B, p.A), p.Height)
		}

		return c.converter.GeographicToLocal(s2.LatLngFromDegrees(p.B, p.A))
	}

	return c.converter.ToLocal(geometry.NewCoordinate(p.A, p.B, p.Height))
}
