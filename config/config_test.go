package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTuningOverlaysOnlyGivenKeys(t *testing.T) {
	base := CurrentTuning()
	data := []byte(`
movement:
  jump:
    base_jump_force: 640
  limits:
    max_wall_jumps: 5
physics:
  gravity: 1800
`)

	got, err := ParseTuning(data, base)
	require.NoError(t, err)

	assert.Equal(t, 640.0, got.Movement.Jump.BaseJumpForce)
	assert.Equal(t, 5, got.Movement.Limits.MaxWallJumps)
	assert.Equal(t, 1800.0, got.Physics.Gravity)

	// Untouched keys keep the base values.
	assert.Equal(t, base.Movement.Jump.BaseWallJumpX, got.Movement.Jump.BaseWallJumpX)
	assert.Equal(t, base.Movement.Limits.CoyoteMs, got.Movement.Limits.CoyoteMs)
	assert.Equal(t, base.Player, got.Player)
}

func TestParseTuningRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"zero jump force":   "movement:\n  jump:\n    base_jump_force: 0\n",
		"negative coyote":   "movement:\n  limits:\n    coyote_ms: -1\n",
		"negative cap":      "movement:\n  limits:\n    max_wall_jumps: -2\n",
		"side threshold":    "movement:\n  jump:\n    side_threshold: 1.5\n",
		"zero cell size":    "physics:\n  cell_size: 0\n",
		"zero player width": "player:\n  collision_width: 0\n",
	}

	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			base := CurrentTuning()
			got, err := ParseTuning([]byte(data), base)
			require.ErrorIs(t, err, ErrInvalidTuning)
			assert.Equal(t, base, got)
		})
	}
}

func TestParseTuningRejectsMalformedYAML(t *testing.T) {
	_, err := ParseTuning([]byte("movement: [oops"), CurrentTuning())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidTuning)
}

func TestLoadTuningMissingFile(t *testing.T) {
	_, err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestApplyTuningRoundTrip(t *testing.T) {
	saved := CurrentTuning()
	t.Cleanup(func() { ApplyTuning(saved) })

	next := saved
	next.Movement.Limits.JumpBufferMs = 90
	next.Player.MaxSpeed = 300
	ApplyTuning(next)

	assert.Equal(t, 90.0, Movement.Limits.JumpBufferMs)
	assert.Equal(t, 300.0, Player.MaxSpeed)
	assert.Equal(t, next, CurrentTuning())
}

func TestApplyFlags(t *testing.T) {
	savedDebug := Debug
	t.Cleanup(func() {
		Debug = savedDebug
		for _, name := range []string{"config", "level", "log-level", "log-file", "watch", "debug"} {
			_ = flag.Set(name, flag.Lookup(name).DefValue)
		}
	})

	require.NoError(t, flag.Set("config", "custom.yaml"))
	require.NoError(t, flag.Set("level", "towers"))
	require.NoError(t, flag.Set("debug", "true"))
	require.NoError(t, flag.Set("log-level", "warn"))
	require.NoError(t, flag.Set("watch", "true"))

	cfg := &Config{Level: "playground", LogLevel: "info"}
	applyFlags(cfg)

	assert.Equal(t, "custom.yaml", cfg.TuningPath)
	assert.Equal(t, "towers", cfg.Level)
	// -log-level beats the level implied by -debug.
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.Watch)
	assert.True(t, Debug.Overlay)
}

func TestTickMs(t *testing.T) {
	c := &Config{TPS: 50}
	assert.InDelta(t, 20.0, c.TickMs(), 1e-9)
}

// awaitReload waits for the watcher to deliver the file's new contents.
func awaitReload(t *testing.T, w *Watcher) []byte {
	t.Helper()
	select {
	case data := <-w.Data:
		return data
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
	return nil
}

func TestWatcherDeliversReloadedTuning(t *testing.T) {
	saved := CurrentTuning()
	t.Cleanup(func() { ApplyTuning(saved) })

	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("physics:\n  gravity: 1500\n"), 0o644))

	w, err := WatchTuning(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	require.NoError(t, os.WriteFile(path, []byte("physics:\n  gravity: 2100\n"), 0o644))
	got, err := ReloadTuning(awaitReload(t, w))
	require.NoError(t, err)
	assert.Equal(t, 2100.0, got.Physics.Gravity)
	assert.Equal(t, 2100.0, Physics.Gravity)

	// A second reload while this goroutine keeps writing the globals; the
	// watcher only hands over bytes, so the race detector stays quiet.
	require.NoError(t, os.WriteFile(path, []byte("physics:\n  gravity: 1900\n"), 0o644))
	for i := 0; i < 50; i++ {
		ApplyTuning(CurrentTuning())
		time.Sleep(time.Millisecond)
	}
	got, err = ReloadTuning(awaitReload(t, w))
	require.NoError(t, err)
	assert.Equal(t, 1900.0, got.Physics.Gravity)
	assert.Equal(t, saved.Movement, got.Movement)
}

func TestReloadTuningKeepsGlobalsOnError(t *testing.T) {
	saved := CurrentTuning()
	t.Cleanup(func() { ApplyTuning(saved) })

	_, err := ReloadTuning([]byte("physics:\n  cell_size: 0\n"))
	require.ErrorIs(t, err, ErrInvalidTuning)
	assert.Equal(t, saved, CurrentTuning())
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))

	w, err := WatchTuning(path)
	require.NoError(t, err)

	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())

	_, open := <-w.Data
	assert.False(t, open)
}
