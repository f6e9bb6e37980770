package grid_elevation_sampler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const asciiGrid = `ncols 3
nrows 3
xllcorner 567000
yllcorner 5932000
cellsize 10
NODATA_value -9999
30 30 30
20 20 -9999
10 10 10
`

func writeGrid(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "terrain.asc")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func TestElevationAtPost(t *testing.T) {
	s, err := NewGridElevationSampler(writeGrid(t, asciiGrid))
	require.NoError(t, err)

	// southwest post sits at the center of the lower left cell
	h, ok := s.ElevationAt(567005, 5932005)
	require.True(t, ok)
	assert.InDelta(t, 10.0, h, 1e-9)
}

func TestElevationAtInterpolates(t *testing.T) {
	s, err := NewGridElevationSampler(writeGrid(t, asciiGrid))
	require.NoError(t, err)

	// halfway between the 10 m and 20 m rows
	h, ok := s.ElevationAt(567005, 5932010)
	require.True(t, ok)
	assert.InDelta(t, 15.0, h, 1e-9)
}

func TestElevationAtOutsideGrid(t *testing.T) {
	s, err := NewGridElevationSampler(writeGrid(t, asciiGrid))
	require.NoError(t, err)

	_, ok := s.ElevationAt(566000, 5932005)
	assert.False(t, ok)

	_, ok = s.ElevationAt(567005, 5933000)
	assert.False(t, ok)
}

func TestElevationAtNoData(t *testing.T) {
	s, err := NewGridElevationSampler(writeGrid(t, asciiGrid))
	require.NoError(t, err)

	// interpolation cell touching the NODATA post
	_, ok := s.ElevationAt(567022, 5932012)
	assert.False(t, ok)
}

func TestTruncatedGrid(t *testing.T) {
	_, err := NewGridElevationSampler(writeGrid(t, "ncols 3\nnrows 3\ncellsize 10\n1 2 3\n"))
	require.Error(t, err)
}

func TestMissingFile(t *testing.T) {
	_, err := NewGridElevationSampler(filepath.Join(t.TempDir(), "nope.asc"))
	require.Error(t, err)
}
