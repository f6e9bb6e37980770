package grid_elevation_sampler

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/mapgrid/geoscene/internal/converters"
	"github.com/mapgrid/geoscene/tools"
)

// GridElevationSampler samples terrain height from a regular grid of
// elevation posts in projected coordinates, as produced by gdal_translate
// in ESRI ASCII grid format. Heights between posts are interpolated
// bilinearly. Cells marked with the grid's NODATA value report no height.
type GridElevationSampler struct {
	cols      int
	rows      int
	west      float64 // easting of the west grid edge
	south     float64 // northing of the south grid edge
	cellSize  float64
	noData    float64
	elevation []float64 // row-major, first row is the northernmost
}

// NewGridElevationSampler loads an ESRI ASCII grid file.
func NewGridElevationSampler(path string) (converters.ElevationSampler, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	s := &GridElevationSampler{noData: -9999}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	if err := s.readHeader(scanner); err != nil {
		return nil, fmt.Errorf("reading %s header: %w", path, err)
	}
	if err := s.readPosts(scanner); err != nil {
		return nil, fmt.Errorf("reading %s elevation posts: %w", path, err)
	}

	return s, nil
}

func (s *GridElevationSampler) readHeader(scanner *bufio.Scanner) error {
	// header is a sequence of "key value" lines ending at the first line
	// that starts with a number
	for {
		if !scanner.Scan() {
			return fmt.Errorf("unexpected end of file in header")
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		if v, err := strconv.ParseFloat(fields[0], 64); err == nil {
			if s.cols == 0 || s.rows == 0 {
				return fmt.Errorf("grid has no ncols/nrows header")
			}

			s.elevation = make([]float64, 0, s.cols*s.rows)
			return s.appendRowFields(fields, v)
		}

		if len(fields) != 2 {
			return fmt.Errorf("malformed header line %q", scanner.Text())
		}

		value, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return fmt.Errorf("malformed header value %q: %w", fields[1], err)
		}

		switch strings.ToLower(fields[0]) {
		case "ncols":
			s.cols = int(value)
		case "nrows":
			s.rows = int(value)
		case "xllcorner":
			s.west = value
		case "yllcorner":
			s.south = value
		case "cellsize":
			s.cellSize = value
		case "nodata_value":
			s.noData = value
		default:
			return fmt.Errorf("unknown header key %q", fields[0])
		}
	}
}

func (s *GridElevationSampler) appendRowFields(fields []string, first float64) error {
	s.elevation = append(s.elevation, first)
	for _, f := range fields[1:] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return fmt.Errorf("malformed elevation value %q: %w", f, err)
		}
		s.elevation = append(s.elevation, v)
	}

	return nil
}

func (s *GridElevationSampler) readPosts(scanner *bufio.Scanner) error {
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		v, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return fmt.Errorf("malformed elevation value %q: %w", fields[0], err)
		}

		if err := s.appendRowFields(fields, v); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return err
	}

	if len(s.elevation) != s.cols*s.rows {
		return fmt.Errorf("grid has %d posts, header promises %d", len(s.elevation), s.cols*s.rows)
	}

	return nil
}

// post returns the height at grid column/row indices. Rows count from the
// north edge, matching the file order.
func (s *GridElevationSampler) post(col, row int) float64 {
	return s.elevation[row*s.cols+col]
}

func (s *GridElevationSampler) ElevationAt(east, north float64) (float64, bool) {
	// fractional grid position; posts sit at cell centers
	gx := (east-s.west)/s.cellSize - 0.5
	gy := (north-s.south)/s.cellSize - 0.5

	col := int(math.Floor(gx))
	row := int(math.Floor(gy))

	if col < 0 || row < 0 || col+1 >= s.cols || row+1 >= s.rows {
		return 0, false
	}

	fx := gx - float64(col)
	fy := gy - float64(row)

	// file rows run north to south
	sw := s.post(col, s.rows-1-row)
	se := s.post(col+1, s.rows-1-row)
	nw := s.post(col, s.rows-2-row)
	ne := s.post(col+1, s.rows-2-row)

	for _, v := range []float64{sw, se, nw, ne} {
		if tools.IsFloatEqual(v, s.noData) {
			return 0, false
		}
	}

	south := sw + (se-sw)*fx
	north2 := nw + (ne-nw)*fx

	return south + (north2-south)*fy, true
}
