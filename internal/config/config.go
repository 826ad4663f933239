package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "SLIDEDECK_"

// Spring tunes the smooth-scroll animation
type Spring struct {
	Frequency float64 `koanf:"frequency"`
	Damping   float64 `koanf:"damping"`
}

// Config holds presenter settings
type Config struct {
	Deck         string `koanf:"deck"` // empty means the built-in deck
	SmoothScroll bool   `koanf:"smooth_scroll"`
	Animations   bool   `koanf:"animations"`
	Mouse        bool   `koanf:"mouse"`
	Watch        bool   `koanf:"watch"`
	Style        string `koanf:"style"` // glamour style for card bodies
	LogFile      string `koanf:"log_file"`
	Verbose      bool   `koanf:"verbose"`
	Spring       Spring `koanf:"spring"`
}

// DefaultConfig returns the settings used when nothing is configured
func DefaultConfig() *Config {
	return &Config{
		SmoothScroll: true,
		Animations:   true,
		Mouse:        true,
		Watch:        true,
		Style:        "auto",
		Spring: Spring{
			Frequency: 7.0,
			Damping:   1.0,
		},
	}
}

// DefaultPath returns ~/.config/slidedeck/config.yaml (or the XDG equivalent)
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "slidedeck", "config.yaml")
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (SLIDEDECK_*). A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	// SLIDEDECK_SMOOTH_SCROLL -> smooth_scroll, SLIDEDECK_SPRING__DAMPING -> spring.damping
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration contains usable values
func (c *Config) Validate() error {
	if c.Spring.Frequency <= 0 {
		return fmt.Errorf("spring.frequency must be positive, got %v", c.Spring.Frequency)
	}
	if c.Spring.Damping <= 0 {
		return fmt.Errorf("spring.damping must be positive, got %v", c.Spring.Damping)
	}
	return nil
}
