// ABOUTME: Wellness configuration: JSON file at the XDG path plus env overrides.
// ABOUTME: Also builds the charmbracelet logger used by every command.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/charmbracelet/log"

	"github.com/harperreed/wellness/internal/breathing"
	"github.com/harperreed/wellness/internal/models"
)

// Config stores wellness tool configuration.
type Config struct {
	// WaterGoal is the daily water target in millilitres.
	WaterGoal int `json:"water_goal,omitempty" env:"WELLNESS_WATER_GOAL"`

	// BreathingPattern names the preset selected when the breathing view opens.
	BreathingPattern string `json:"breathing_pattern,omitempty" env:"WELLNESS_BREATHING_PATTERN"`

	// Seed fixes the mock data generator. Zero seeds from the clock.
	Seed int64 `json:"seed,omitempty" env:"WELLNESS_SEED"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level,omitempty" env:"WELLNESS_LOG_LEVEL"`

	// LogFile redirects logs to a file. Supports ~ expansion.
	LogFile string `json:"log_file,omitempty" env:"WELLNESS_LOG_FILE"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		WaterGoal:        models.DefaultWaterGoal,
		BreathingPattern: breathing.DefaultPattern.Name,
		LogLevel:         "info",
	}
}

// applyDefaults fills zero fields left empty by the file.
func (c *Config) applyDefaults() {
	d := Default()
	if c.WaterGoal == 0 {
		c.WaterGoal = d.WaterGoal
	}
	if c.BreathingPattern == "" {
		c.BreathingPattern = d.BreathingPattern
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
}

// Validate rejects settings no command can run with.
func (c *Config) Validate() error {
	if c.WaterGoal <= 0 {
		return fmt.Errorf("water_goal must be positive, got %d", c.WaterGoal)
	}
	if _, err := breathing.PatternByName(c.BreathingPattern); err != nil {
		return fmt.Errorf("breathing_pattern: %w", err)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// Keys lists the names accepted by Set, sorted.
func Keys() []string {
	keys := []string{"water_goal", "breathing_pattern", "seed", "log_level", "log_file"}
	sort.Strings(keys)
	return keys
}

// Set assigns a field by its JSON key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "water_goal":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("parse water_goal: %w", err)
		}
		c.WaterGoal = n
	case "breathing_pattern":
		c.BreathingPattern = value
	case "seed":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("parse seed: %w", err)
		}
		c.Seed = n
	case "log_level":
		c.LogLevel = strings.ToLower(value)
	case "log_file":
		c.LogFile = value
	default:
		return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(Keys(), ", "))
	}
	return nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "wellness", "config.json")
}

// LoadFile reads the config file only, without env overrides.
// A missing file yields the defaults.
func LoadFile() (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(GetConfigPath())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Load reads config from disk and applies WELLNESS_* environment overrides.
func Load() (*Config, error) {
	cfg, err := LoadFile()
	if err != nil {
		return nil, err
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}

// NewLogger builds a logger at the configured level. Output goes to LogFile
// when set, otherwise to fallback. The returned close func releases the file.
func (c *Config) NewLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log_level: %w", err)
	}

	w := fallback
	closeFn := func() error { return nil }
	if c.LogFile != "" {
		path := ExpandPath(c.LogFile)
		if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closeFn = f, f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "wellness",
		ReportTimestamp: true,
	})
	return logger, closeFn, nil
}
