// Package config loads and saves the app-level configuration: onboarding
// progress, platform notification support, locale and paths. The file format
// is TOML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the persisted app configuration.
type Config struct {
	// OnboardingComplete records whether the user finished the privacy and
	// notifications onboarding. It selects the start route of a fresh
	// navigation stack.
	OnboardingComplete bool `toml:"onboarding_complete"`

	// NotificationsSupported reflects whether the platform can deliver
	// notifications. When false, accepting the onboarding privacy notice
	// skips the notifications screen.
	NotificationsSupported bool `toml:"notifications_supported"`

	// Locale is the BCP 47 language tag used for screen titles.
	Locale string `toml:"locale"`

	// LogPath is the full path of the log file.
	LogPath string `toml:"log_path"`

	// StackStatePath is where the serialized navigation stack is saved
	// between sessions.
	StackStatePath string `toml:"stack_state_path"`
}

// Default returns the configuration used when no file exists yet.
func Default() Config {
	return Config{
		NotificationsSupported: true,
		Locale:                 "en",
		LogPath:                filepath.Join("logs", "sagra.log"),
		StackStatePath:         filepath.Join("state", "stack.json"),
	}
}

// Load reads the configuration from path. A missing file is not an error:
// defaults are returned so first launch works without setup.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: create dir for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: create %s: %w", path, err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("config: encode %s: %w", path, err)
	}
	return nil
}
