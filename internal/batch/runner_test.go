package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapgrid/geoscene/pkg/anchor"
	"github.com/mapgrid/geoscene/pkg/geometry"
	"github.com/mapgrid/geoscene/pkg/scene"
	"github.com/mapgrid/geoscene/tools"
)

func testConverter() *scene.Converter {
	tr := anchor.New(geometry.NewCoordinate(567475, 5932475, 0))
	return scene.NewConverter(tr, nil, nil)
}

func TestRunConvertsFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "points.csv")
	output := filepath.Join(dir, "out")

	require.NoError(t, os.WriteFile(input, []byte("east,north,height\n567480,5932480,2\n"), 0644))

	runner := NewRunner(tools.NewStandardFileFinder(), testConverter())
	err := runner.Run(&Options{
		Input:       input,
		Output:      output,
		WorkerCount: 1,
	})
	require.NoError(t, err)

	converted, err := os.ReadFile(filepath.Join(output, "points_local.csv"))
	require.NoError(t, err)
	assert.Equal(t, "x,y,z\n5.000,2.000,4.000\n", string(converted))
}

func TestRunKeepsInputOrderWithManyWorkers(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "points.csv")
	output := filepath.Join(dir, "out")

	var in strings.Builder
	in.WriteString("east,north\n")
	for i := 0; i < 2000; i++ {
		fmt.Fprintf(&in, "%d,%d\n", 567475+i, 5932475+i)
	}
	require.NoError(t, os.WriteFile(input, []byte(in.String()), 0644))

	runner := NewRunner(tools.NewStandardFileFinder(), testConverter())
	err := runner.Run(&Options{
		Input:       input,
		Output:      output,
		WorkerCount: 8,
	})
	require.NoError(t, err)

	converted, err := os.ReadFile(filepath.Join(output, "points_local.csv"))
	require.NoError(t, err)

	rows := strings.Split(strings.TrimSuffix(string(converted), "\n"), "\n")
	require.Len(t, rows, 2001)
	require.Equal(t, "x,y,z", rows[0])

	for i := 0; i < 2000; i++ {
		assert.Equal(t, fmt.Sprintf("%d.000,0.000,%d.000", i, i), rows[i+1])
	}
}

func TestRunFolderProcessing(t *testing.T) {
	dir := t.TempDir()
	inputDir := filepath.Join(dir, "in")
	output := filepath.Join(dir, "out")
	require.NoError(t, os.MkdirAll(inputDir, 0755))

	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "a.csv"), []byte("567475,5932475\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "b.csv"), []byte("567476,5932476\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "ignored.txt"), []byte("x"), 0644))

	runner := NewRunner(tools.NewStandardFileFinder(), testConverter())
	err := runner.Run(&Options{
		Input:            inputDir,
		Output:           output,
		FolderProcessing: true,
		WorkerCount:      1,
	})
	require.NoError(t, err)

	for _, name := range []string{"a_local.csv", "b_local.csv"} {
		_, err := os.Stat(filepath.Join(output, name))
		assert.NoError(t, err)
	}
}

func TestRunReportsConversionErrors(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "points.csv")
	output := filepath.Join(dir, "out")

	// 100125 m east of the anchor, outside the window
	require.NoError(t, os.WriteFile(input, []byte("667600,5932475,0\n"), 0644))

	runner := NewRunner(tools.NewStandardFileFinder(), testConverter())
	err := runner.Run(&Options{
		Input:       input,
		Output:      output,
		WorkerCount: 1,
	})
	require.Error(t, err)
}

func TestRunNoInputFiles(t *testing.T) {
	dir := t.TempDir()

	runner := NewRunner(tools.NewStandardFileFinder(), testConverter())
	err := runner.Run(&Options{
		Input:            dir,
		Output:           filepath.Join(dir, "out"),
		FolderProcessing: true,
	})
	require.Error(t, err)
}
