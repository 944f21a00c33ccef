// ABOUTME: Tests for wellness configuration management.
// ABOUTME: Covers defaults, load/save, env overrides, validation, and logging.
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setupConfigHome points XDG_CONFIG_HOME at a fresh temp dir.
func setupConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func writeConfigFile(t *testing.T, dir, body string) {
	t.Helper()
	path := filepath.Join(dir, "wellness", "config.json")
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/tmp/foo", "/tmp/foo"},
		{"~", home},
		{"~/logs/wellness.log", filepath.Join(home, "logs/wellness.log")},
		{"logs/wellness.log", "logs/wellness.log"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ExpandPath(tt.in); got != tt.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGetConfigPath(t *testing.T) {
	dir := setupConfigHome(t)
	want := filepath.Join(dir, "wellness", "config.json")
	if got := GetConfigPath(); got != want {
		t.Errorf("GetConfigPath() = %q, want %q", got, want)
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	setupConfigHome(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with no config file should not error: %v", err)
	}
	if cfg.WaterGoal != 2000 {
		t.Errorf("WaterGoal = %d, want 2000", cfg.WaterGoal)
	}
	if cfg.BreathingPattern != "4-7-8 Breathing" {
		t.Errorf("BreathingPattern = %q", cfg.BreathingPattern)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	setupConfigHome(t)

	cfg := &Config{
		WaterGoal:        2500,
		BreathingPattern: "Box Breathing",
		Seed:             42,
		LogLevel:         "debug",
		LogFile:          "/tmp/wellness.log",
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("loaded %+v, want %+v", *loaded, *cfg)
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "nonexistent"))

	if err := Default().Save(); err != nil {
		t.Fatalf("Save() should create directory: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "nonexistent", "wellness")); err != nil {
		t.Errorf("expected config directory to be created: %v", err)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := setupConfigHome(t)
	writeConfigFile(t, dir, "invalid json")

	if _, err := Load(); err == nil {
		t.Error("expected error for invalid JSON config")
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := setupConfigHome(t)
	writeConfigFile(t, dir, `{"seed": 7}`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Seed != 7 || cfg.WaterGoal != 2000 || cfg.LogLevel != "info" {
		t.Errorf("got %+v", *cfg)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := setupConfigHome(t)
	writeConfigFile(t, dir, `{"water_goal": 1500, "log_level": "warn"}`)
	t.Setenv("WELLNESS_WATER_GOAL", "3000")
	t.Setenv("WELLNESS_BREATHING_PATTERN", "Calm Breathing")
	t.Setenv("WELLNESS_SEED", "99")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.WaterGoal != 3000 {
		t.Errorf("WaterGoal = %d, want 3000", cfg.WaterGoal)
	}
	if cfg.BreathingPattern != "Calm Breathing" {
		t.Errorf("BreathingPattern = %q", cfg.BreathingPattern)
	}
	if cfg.Seed != 99 {
		t.Errorf("Seed = %d", cfg.Seed)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, file value should survive", cfg.LogLevel)
	}

	fileOnly, err := LoadFile()
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if fileOnly.WaterGoal != 1500 {
		t.Errorf("LoadFile should ignore env, got %d", fileOnly.WaterGoal)
	}
}

func TestEnvInvalidValue(t *testing.T) {
	setupConfigHome(t)
	t.Setenv("WELLNESS_WATER_GOAL", "a lot")

	if _, err := Load(); err == nil {
		t.Error("expected error for non-numeric env override")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero goal", func(c *Config) { c.WaterGoal = 0 }, true},
		{"negative goal", func(c *Config) { c.WaterGoal = -5 }, true},
		{"unknown pattern", func(c *Config) { c.BreathingPattern = "Fast Breathing" }, true},
		{"unknown level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"box pattern", func(c *Config) { c.BreathingPattern = "Box Breathing" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSet(t *testing.T) {
	cfg := Default()

	for key, value := range map[string]string{
		"water_goal":        "1800",
		"breathing_pattern": "Box Breathing",
		"seed":              "12",
		"log_level":         "DEBUG",
		"log_file":          "~/wellness.log",
	} {
		if err := cfg.Set(key, value); err != nil {
			t.Fatalf("Set(%q) failed: %v", key, err)
		}
	}

	want := Config{
		WaterGoal:        1800,
		BreathingPattern: "Box Breathing",
		Seed:             12,
		LogLevel:         "debug",
		LogFile:          "~/wellness.log",
	}
	if *cfg != want {
		t.Errorf("got %+v, want %+v", *cfg, want)
	}

	if err := cfg.Set("water_goal", "lots"); err == nil {
		t.Error("expected parse error")
	}
	if err := cfg.Set("backend", "sqlite"); err == nil || !strings.Contains(err.Error(), "water_goal") {
		t.Errorf("expected unknown key error listing keys, got %v", err)
	}
}

func TestConfigJSONOmitsEmpty(t *testing.T) {
	data, err := json.Marshal(&Config{})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("expected empty JSON object, got %s", string(data))
	}
}

func TestNewLoggerFallback(t *testing.T) {
	var buf bytes.Buffer
	cfg := Default()
	cfg.LogLevel = "warn"

	logger, closeFn, err := cfg.NewLogger(&buf)
	if err != nil {
		t.Fatalf("NewLogger() failed: %v", err)
	}
	defer closeFn()

	logger.Info("hidden")
	logger.Warn("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn line missing: %q", out)
	}
}

func TestNewLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "wellness.log")
	cfg := Default()
	cfg.LogFile = path

	var buf bytes.Buffer
	logger, closeFn, err := cfg.NewLogger(&buf)
	if err != nil {
		t.Fatalf("NewLogger() failed: %v", err)
	}
	logger.Info("to file", "collection", "water")
	if err := closeFn(); err != nil {
		t.Fatalf("close log file: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Errorf("log file missing line: %q", data)
	}
	if buf.Len() != 0 {
		t.Errorf("fallback should be unused, got %q", buf.String())
	}
}

func TestNewLoggerBadLevel(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "loud"
	if _, _, err := cfg.NewLogger(os.Stderr); err == nil {
		t.Error("expected error for unknown level")
	}
}
