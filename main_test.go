package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mapgrid/geoscene/internal/config"
	"github.com/mapgrid/geoscene/tools"
)

func TestApplyOverridesKeepsUnsetFlags(t *testing.T) {
	cfg := config.NewAppConfig()
	require.NoError(t, cfg.Set("anchor.height", 40.0))

	flags := tools.ParseFlagsForCommandConvert([]string{"-zone", "33"})
	applyOverrides(cfg, flags.SceneFlags)

	require.Equal(t, 33, cfg.UTMZone())
	// untouched flags leave the config alone
	require.Equal(t, 40.0, cfg.Anchor().Height)
	require.Equal(t, 567475.0, cfg.Anchor().East)
}

func TestApplyOverridesExplicitZero(t *testing.T) {
	cfg := config.NewAppConfig()
	require.NoError(t, cfg.Set("anchor.height", 40.0))

	flags := tools.ParseFlagsForCommandConvert([]string{"-anchor-height", "0"})
	applyOverrides(cfg, flags.SceneFlags)

	require.Equal(t, 0.0, cfg.Anchor().Height)
}
