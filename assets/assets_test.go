package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaygroundLevel(t *testing.T) {
	level, err := LoadLevel("playground")
	require.NoError(t, err)

	assert.Equal(t, 960, level.Width)
	assert.Equal(t, 368, level.Height)
	assert.NotEmpty(t, level.Solids)
	assert.NotEmpty(t, level.Walls)
	assert.Len(t, level.Platforms, 3)
	assert.NotEmpty(t, level.Hazards)
	assert.NotEmpty(t, level.DeadZones)
	assert.NotEmpty(t, level.Goals)
	assert.Equal(t, 48.0, level.Spawn.X)
}

func TestLevelNames(t *testing.T) {
	names, err := LevelNames()
	require.NoError(t, err)
	assert.Contains(t, names, "playground")
}

func TestLoadLevelUnknown(t *testing.T) {
	_, err := LoadLevel("nope")
	assert.Error(t, err)
}
