package anim

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	t.Run("load and apply", func(t *testing.T) {
		newHarness()

		path := filepath.Join(t.TempDir(), "motion.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"enabled: false\nframe_duration: 10ms\ntime_scale: 0.5\n",
		), 0o644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		cfg.Apply()
		assert.False(t, AnimationsEnabled().Get())
		assert.Equal(t, 10*time.Millisecond, FrameDuration().Get())
		assert.Equal(t, 0.5, TimeScale().Get())
	})

	t.Run("omitted fields keep current values", func(t *testing.T) {
		newHarness()

		path := filepath.Join(t.TempDir(), "motion.yaml")
		require.NoError(t, os.WriteFile(path, []byte("time_scale: 2.0\n"), 0o644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		cfg.Apply()
		assert.True(t, AnimationsEnabled().Get())
		assert.Equal(t, 2.0, TimeScale().Get())
	})

	t.Run("missing file errors", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml errors", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "motion.yaml")
		require.NoError(t, os.WriteFile(path, []byte("enabled: [broken\n"), 0o644))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("watch delivers reloaded configs", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "motion.yaml")
		require.NoError(t, os.WriteFile(path, []byte("time_scale: 1.0\n"), 0o644))

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		configs, err := WatchConfig(ctx, path, zerolog.Nop())
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(path, []byte("time_scale: 3.0\n"), 0o644))

		select {
		case cfg := <-configs:
			require.NotNil(t, cfg)
			require.NotNil(t, cfg.TimeScale)
			assert.Equal(t, 3.0, *cfg.TimeScale)
		case <-time.After(5 * time.Second):
			t.Fatal("no config delivered")
		}
	})
}
