package tapgate

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-playground/validator/v10"
	"github.com/zoobzio/capitan"
	"gopkg.in/yaml.v3"
)

// validate is the shared validator instance.
var validate = validator.New()

// Settings is the persisted configuration that feeds a gate. This package
// never writes it; the host owns persistence and applies changes through
// the gate's setters.
type Settings struct {
	// Enabled is the persisted user setting backing the enabled intent.
	Enabled bool `yaml:"enabled" json:"enabled"`

	// DebounceMS overrides the debounce window, in milliseconds.
	// Zero means DefaultDebounce.
	DebounceMS int `yaml:"debounce_ms" json:"debounce_ms" validate:"min=0"`
}

// DebounceWindow returns the configured debounce window as a duration,
// falling back to DefaultDebounce when unset.
func (s Settings) DebounceWindow() time.Duration {
	if s.DebounceMS == 0 {
		return DefaultDebounce
	}
	return time.Duration(s.DebounceMS) * time.Millisecond
}

// ParseSettings decodes and validates a raw settings payload. YAML and
// plain JSON are both accepted.
func ParseSettings(data []byte) (Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal failed: %w", err)
	}
	if err := validate.Struct(s); err != nil {
		return Settings{}, fmt.Errorf("validation failed: %w", err)
	}
	return s, nil
}

// LoadSettings reads, decodes and validates a settings file.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
	}
	return ParseSettings(data)
}

// WatchSettings watches a settings file and calls apply with each valid
// payload, starting with the current contents. Payloads that fail to
// decode, validate, or apply are reported via SettingsRejected and the
// previous settings remain in effect.
//
// The watch runs until ctx is canceled. The returned error covers watcher
// setup only: the file must exist to be watched, but invalid contents are
// reported as rejections rather than failing the watch.
func WatchSettings(ctx context.Context, path string, apply func(Settings) error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch settings %s: %w", path, err)
	}

	go func() {
		defer watcher.Close()

		applySettings(ctx, path, apply)

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				applySettings(ctx, path, apply)

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Keep watching despite transient errors.
			}
		}
	}()

	return nil
}

// applySettings loads one payload and reports the outcome.
func applySettings(ctx context.Context, path string, apply func(Settings) error) {
	s, err := LoadSettings(path)
	if err == nil {
		err = apply(s)
	}
	if err != nil {
		capitan.Emit(ctx, SettingsRejected,
			KeyPath.Field(path),
			KeyError.Field(err.Error()),
		)
		return
	}
	capitan.Emit(ctx, SettingsApplied,
		KeyPath.Field(path),
		KeyEnabled.Field(fmt.Sprintf("%t", s.Enabled)),
		KeyDebounce.Field(s.DebounceWindow()),
	)
}
