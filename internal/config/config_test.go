package config

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := NewAppConfig()

	require.Equal(t, 32, c.UTMZone())
	require.False(t, c.SouthernHemisphere())
	require.Equal(t, 567475.0, c.Anchor().East)
	require.Equal(t, 100000.0, c.MaxOffset())
	require.Empty(t, c.ElevationGrid())
	require.False(t, c.HasElevationOffset())
}

func TestLoadFile(t *testing.T) {
	f, err := os.CreateTemp("", "geoscene_test")
	require.NoError(t, err)
	defer os.Remove(f.Name())

	fmt.Fprint(f, "---\nanchor:\n    east: 350000\n    north: 6100000\nutm:\n    zone: 33\nelevation:\n    offset: 4.5\n")
	f.Close()

	c := NewAppConfig()
	require.True(t, c.Load(f.Name()))

	require.Equal(t, 33, c.UTMZone())
	require.Equal(t, 350000.0, c.Anchor().East)
	require.Equal(t, 6100000.0, c.Anchor().North)
	// height keeps its default
	require.Equal(t, 0.0, c.Anchor().Height)
	require.True(t, c.HasElevationOffset())
	require.Equal(t, 4.5, c.ElevationOffset())
}

func TestLoadMissingFile(t *testing.T) {
	c := NewAppConfig()

	require.False(t, c.Load("no_such_file.yml"))
	// defaults survive a failed load
	require.Equal(t, 32, c.UTMZone())
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("GEOSCENE_UTM_ZONE", "31")
	t.Setenv("GEOSCENE_ANCHOR_EAST", "600000")

	c := NewAppConfig()
	require.NoError(t, c.LoadEnv("GEOSCENE_"))

	require.Equal(t, 31, c.UTMZone())
	require.Equal(t, 600000.0, c.Anchor().East)
}
