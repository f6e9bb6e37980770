package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangedTracksExplicitFlags(t *testing.T) {
	flags := ParseFlagsForCommandConvert([]string{"-zone", "33", "-anchor-height", "0"})

	require.Equal(t, 33, *flags.Zone)
	require.Equal(t, 0.0, *flags.AnchorHeight)

	// an explicit zero is still a set flag
	assert.True(t, flags.Changed("zone"))
	assert.True(t, flags.Changed("anchor-height"))
	assert.False(t, flags.Changed("anchor-east"))
	assert.False(t, flags.Changed("south"))
}

func TestChangedResolvesShorthand(t *testing.T) {
	flags := ParseFlagsForCommandConvert([]string{"-z", "31"})

	assert.True(t, flags.Changed("zone"))
	assert.Equal(t, 31, *flags.Zone)
}

func TestChangedBatchFlags(t *testing.T) {
	flags := ParseFlagsForCommandBatch([]string{"-i", "in.csv", "-south"})

	assert.True(t, flags.Changed("south"))
	assert.Equal(t, "in.csv", *flags.Input)
	assert.False(t, flags.Changed("workers"))
}
