// Package config loads SmartSpeak navigation settings from TOML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/jhncrl04/smartspeak-sub001/pkg/smartspeak/constants"
)

// LocalFileName is the per-directory config file, loaded after the XDG one.
const LocalFileName = "smartspeak.toml"

type Config struct {
	Log     LogConfig     `koanf:"log"`
	Locale  string        `koanf:"locale"` // BCP 47 tag, e.g. "en" or "fil"
	Input   InputConfig   `koanf:"input"`
	Session SessionConfig `koanf:"session"`
}

// LogConfig controls the process-wide logger.
type LogConfig struct {
	Level string `koanf:"level"` // "debug", "info", "warn", "error"
	Path  string `koanf:"path"`  // empty means the XDG state directory
}

// InputConfig describes the hardware navigation buttons.
type InputConfig struct {
	Device     string `koanf:"device"`      // evdev device path
	BackKey    uint16 `koanf:"back_key"`    // key code that triggers back navigation
	HomeKey    uint16 `koanf:"home_key"`    // key code that returns to the role's home screen
	DebounceMS int    `koanf:"debounce_ms"` // presses closer than this are dropped
}

// Debounce returns the debounce window as a duration.
func (c InputConfig) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// SessionConfig selects the role and first screen of a navigation session.
type SessionConfig struct {
	Role  string `koanf:"role"`  // "guardian", "teacher", or "learner"
	Start string `koanf:"start"` // empty means the role's home screen
}

// StartScreen returns the configured start screen, falling back to the role's
// home screen.
func (c SessionConfig) StartScreen() string {
	if c.Start != "" {
		return c.Start
	}
	role, _ := constants.ParseRole(c.Role)
	return role.HomeScreen()
}

// Default returns the configuration used when no file sets a value.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Locale: "en",
		Input: InputConfig{
			Device:     constants.DefaultButtonDevice,
			BackKey:    constants.DefaultBackKeyCode,
			HomeKey:    constants.DefaultHomeKeyCode,
			DebounceMS: int(constants.DefaultButtonDebounce / time.Millisecond),
		},
		Session: SessionConfig{
			Role: constants.RoleLearner.String(),
		},
	}
}

// Load reads the config files in priority order (last wins): the XDG config
// file, ./smartspeak.toml, then explicitPath (or $SMARTSPEAK_CONFIG when
// explicitPath is empty). Missing implicit files are skipped; a missing
// explicit file is an error.
func Load(explicitPath string) (*Config, error) {
	if explicitPath == "" {
		explicitPath = os.Getenv(constants.ConfigPathEnvVar)
	}

	paths := getConfigPaths()
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		paths = append(paths, explicitPath)
	}

	return loadPaths(paths)
}

func loadPaths(paths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if cfg.Log.Path != "" {
		cfg.Log.Path = expandPath(cfg.Log.Path)
	}
	cfg.Session.Role = strings.ToLower(strings.TrimSpace(cfg.Session.Role))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cannot be corrected silently.
func (c *Config) Validate() error {
	if _, ok := constants.ParseRole(c.Session.Role); !ok {
		return fmt.Errorf("config: unknown session.role %q", c.Session.Role)
	}
	if c.Input.DebounceMS < 0 {
		return fmt.Errorf("config: input.debounce_ms must not be negative, got %d", c.Input.DebounceMS)
	}
	if c.Input.BackKey != 0 && c.Input.BackKey == c.Input.HomeKey {
		return fmt.Errorf("config: input.back_key and input.home_key are both %d", c.Input.BackKey)
	}
	return nil
}

// Role returns the parsed session role.
func (c *Config) Role() constants.Role {
	role, _ := constants.ParseRole(c.Session.Role)
	return role
}

// DefaultLogPath returns the log file location in the XDG state directory.
func DefaultLogPath() (string, error) {
	return xdg.StateFile(filepath.Join(constants.AppName, constants.AppName+".log"))
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/smartspeak/config.toml (or the first XDG config dir that has one)
	if path, err := xdg.SearchConfigFile(filepath.Join(constants.AppName, "config.toml")); err == nil {
		paths = append(paths, path)
	}

	// 2. ./smartspeak.toml
	paths = append(paths, LocalFileName)

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
