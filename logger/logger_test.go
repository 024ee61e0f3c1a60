package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skyhop.log")

	require.NoError(t, InitWithFileConfig("debug", FileConfig{Path: path, MaxSizeMB: 1}, false))
	t.Cleanup(func() { Log = zap.NewNop(); Sugar = Log.Sugar() })

	Named("movement").Debug("state change", zap.String("to", "air_rise"))
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "state change")
	assert.Contains(t, string(data), "movement")
}

func TestInitRejectsBadLevel(t *testing.T) {
	err := InitWithFileConfig("loud", FileConfig{}, false)
	assert.Error(t, err)
}

func TestLevelFiltering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warn.log")
	require.NoError(t, InitWithFileConfig("warn", DefaultFileConfig(path), false))
	t.Cleanup(func() { Log = zap.NewNop(); Sugar = Log.Sugar() })

	Info("hidden")
	Warn("shown")
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}
