package tools

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFilesToProcessSingleFile(t *testing.T) {
	finder := NewStandardFileFinder()

	files := finder.GetFilesToProcess("points.csv", false, false)
	assert.Equal(t, []string{"points.csv"}, files)
}

func TestGetFilesToProcessFolder(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.MkdirAll(sub, 0755))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.csv"), []byte("1,2\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "c.csv"), []byte("3,4\n"), 0644))

	finder := NewStandardFileFinder()

	flat := finder.GetFilesToProcess(dir, true, false)
	assert.Equal(t, []string{filepath.Join(dir, "a.csv")}, flat)

	recursive := finder.GetFilesToProcess(dir, true, true)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "a.csv"),
		filepath.Join(sub, "c.csv"),
	}, recursive)
}

func TestGetFilesToProcessMissingFolder(t *testing.T) {
	finder := NewStandardFileFinder()

	// an unreadable input folder reports no files instead of panicking
	files := finder.GetFilesToProcess(filepath.Join(t.TempDir(), "nope"), true, false)
	assert.Empty(t, files)
}
