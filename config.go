package anim

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"go.yaml.in/yaml/v3"

	"github.com/tdaron/anim/internal"
)

// Duration is a time.Duration that unmarshals from YAML strings like "16ms".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Config holds the engine-level motion preferences. Omitted fields keep
// their current value.
type Config struct {
	Enabled       *bool    `yaml:"enabled"`
	FrameDuration Duration `yaml:"frame_duration"`
	TimeScale     *float64 `yaml:"time_scale"`
}

// LoadConfig parses a YAML motion-preferences file.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read animation config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse animation config %s: %w", path, err)
	}
	return &cfg, nil
}

// Apply writes the configured preferences to the engine observables. Call it
// from the goroutine driving the update loop; the engine is bound to it.
func (c *Config) Apply() {
	e := internal.GetEngine()
	if c.Enabled != nil {
		e.Enabled.Set(*c.Enabled)
	}
	if c.FrameDuration > 0 {
		e.FrameDuration.Set(time.Duration(c.FrameDuration))
	}
	if c.TimeScale != nil && *c.TimeScale > 0 {
		e.TimeScale.Set(*c.TimeScale)
	}
}

// WatchConfig watches a motion-preferences file and sends each successfully
// re-parsed Config on the returned channel until ctx is canceled. The caller
// applies received configs from its own update-loop goroutine; the watcher
// never touches the engine itself.
func WatchConfig(ctx context.Context, path string, log zerolog.Logger) (<-chan *Config, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch animation config: %w", err)
	}

	// Watch the directory: editors replace files rather than write in place,
	// which drops a watch on the file itself.
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch animation config dir: %w", err)
	}

	out := make(chan *Config, 1)

	go func() {
		defer w.Close()
		defer close(out)

		target := filepath.Clean(path)
		for {
			select {
			case <-ctx.Done():
				return

			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
					continue
				}

				cfg, err := LoadConfig(path)
				if err != nil {
					log.Warn().Err(err).Str("path", path).Msg("animation config reload failed")
					continue
				}

				select {
				case out <- cfg:
				case <-ctx.Done():
					return
				}

			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn().Err(err).Str("path", path).Msg("animation config watcher error")
			}
		}
	}()

	return out, nil
}
