// ABOUTME: Tests for the wellness CLI commands.
// ABOUTME: Executes the root command in-process with a temp config dir.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/harperreed/wellness/internal/config"
	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/stats"
	"github.com/harperreed/wellness/internal/store"
	"github.com/harperreed/wellness/internal/tui"
)

// setupCLI isolates config and speeds up the one-second scheduler.
func setupCLI(t *testing.T, interval time.Duration) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("WELLNESS_LOG_LEVEL", "error")
	color.NoColor = true

	prev := tickInterval
	tickInterval = interval
	t.Cleanup(func() { tickInterval = prev })
}

// execute runs the CLI with fresh flag values and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	flagSeed, flagWaterGoal, flagLogLevel = 0, 0, ""
	for _, name := range []string{"seed", "water-goal", "log-level"} {
		rootCmd.PersistentFlags().Lookup(name).Changed = false
	}
	dashboardView = ""
	listLimit = 20
	breathePattern, breatheCycles, breatheList = "", 3, false
	stretchFrom = 1
	workoutAdd, workoutMoves = "", nil
	exportOutput, exportOnly = "", ""
	summaryJSON, summaryDate = false, ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestListWater(t *testing.T) {
	setupCLI(t, time.Millisecond)

	out, err := execute(t, "--seed", "42", "list", "water", "-n", "3")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	got := lines(out)
	if len(got) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(got), out)
	}
	for _, line := range got {
		if !strings.HasSuffix(line, " ml") {
			t.Errorf("line %q does not end in ml", line)
		}
	}
}

func TestListAcceptsSingularName(t *testing.T) {
	setupCLI(t, time.Millisecond)

	out, err := execute(t, "--seed", "1", "list", "stretch")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(lines(out)) != 6 || !strings.Contains(out, "1. Neck Stretch") {
		t.Errorf("unexpected stretch list: %q", out)
	}
}

func TestListErrors(t *testing.T) {
	setupCLI(t, time.Millisecond)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown tracker", []string{"list", "steps"}, "unknown tracker"},
		{"zero limit", []string{"list", "water", "-n", "0"}, "limit must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestSummaryWaterGoalPrecedence(t *testing.T) {
	setupCLI(t, time.Millisecond)

	summary := func(args ...string) stats.Summary {
		t.Helper()
		out, err := execute(t, append(args, "summary", "--json")...)
		if err != nil {
			t.Fatalf("summary failed: %v", err)
		}
		var s stats.Summary
		if err := json.Unmarshal([]byte(out), &s); err != nil {
			t.Fatalf("bad JSON %q: %v", out, err)
		}
		return s
	}

	if got := summary().WaterGoal; got != models.DefaultWaterGoal {
		t.Errorf("default goal = %d", got)
	}

	t.Setenv("WELLNESS_WATER_GOAL", "3000")
	if got := summary().WaterGoal; got != 3000 {
		t.Errorf("env goal = %d, want 3000", got)
	}
	if got := summary("--water-goal", "2500").WaterGoal; got != 2500 {
		t.Errorf("flag goal = %d, want 2500", got)
	}
}

func TestSummaryText(t *testing.T) {
	setupCLI(t, time.Millisecond)

	out, err := execute(t, "--seed", "3", "summary")
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	for _, want := range []string{"Wellness summary for", "Water", "Meals", "Fitness", "0/6 exercises", "5 entries"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}

	if _, err := execute(t, "summary", "--date", "yesterday"); err == nil {
		t.Error("expected error for bad date")
	}
}

func TestInvalidConfigRejected(t *testing.T) {
	setupCLI(t, time.Millisecond)
	t.Setenv("WELLNESS_WATER_GOAL", "-5")

	_, err := execute(t, "list", "water")
	if err == nil || !strings.Contains(err.Error(), "water_goal") {
		t.Fatalf("expected water_goal error, got %v", err)
	}

	// config commands still work so the setting can be fixed.
	out, err := execute(t, "config", "path")
	if err != nil {
		t.Fatalf("config path failed: %v", err)
	}
	if strings.TrimSpace(out) != config.GetConfigPath() {
		t.Errorf("path = %q, want %q", out, config.GetConfigPath())
	}
}

func TestConfigSetAndShow(t *testing.T) {
	setupCLI(t, time.Millisecond)

	out, err := execute(t, "config", "set", "water_goal", "2600")
	if err != nil {
		t.Fatalf("config set failed: %v", err)
	}
	if !strings.Contains(out, "✓ Set water_goal = 2600") {
		t.Errorf("unexpected output %q", out)
	}

	out, err = execute(t, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	var c config.Config
	if err := json.Unmarshal([]byte(out), &c); err != nil {
		t.Fatalf("bad JSON %q: %v", out, err)
	}
	if c.WaterGoal != 2600 {
		t.Errorf("water_goal = %d, want 2600", c.WaterGoal)
	}

	out, err = execute(t, "summary", "--json")
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if !strings.Contains(out, `"water_goal": 2600`) {
		t.Errorf("summary did not pick up saved goal: %s", out)
	}
}

func TestConfigSetRejectsBadValues(t *testing.T) {
	setupCLI(t, time.Millisecond)

	tests := []struct {
		name string
		args []string
	}{
		{"unknown key", []string{"config", "set", "colour", "blue"}},
		{"not a number", []string{"config", "set", "water_goal", "lots"}},
		{"negative goal", []string{"config", "set", "water_goal", "-1"}},
		{"unknown pattern", []string{"config", "set", "breathing_pattern", "Fast"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := os.Stat(config.GetConfigPath()); !os.IsNotExist(err) {
		t.Errorf("rejected values should not write a config file, stat err = %v", err)
	}
}

func TestExportJSONToFile(t *testing.T) {
	setupCLI(t, time.Millisecond)
	path := filepath.Join(t.TempDir(), "backup.json")

	out, err := execute(t, "--seed", "9", "export", "json", "-o", path)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.Contains(out, "✓ Exported to "+path) {
		t.Errorf("unexpected output %q", out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	var export store.ExportData
	if err := json.Unmarshal(data, &export); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if export.Tool != "wellness" || export.WaterGoal != models.DefaultWaterGoal {
		t.Errorf("unexpected envelope: %+v", export)
	}
	if len(export.Data.Moods) != 14 || len(export.Data.Exercises) != 6 {
		t.Errorf("moods=%d exercises=%d", len(export.Data.Moods), len(export.Data.Exercises))
	}
}

func TestExportMarkdownOnly(t *testing.T) {
	setupCLI(t, time.Millisecond)

	out, err := execute(t, "export", "markdown", "--only", "sleep")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.Contains(out, "## Sleep") || strings.Contains(out, "## Mood") {
		t.Errorf("expected only the sleep table:\n%s", out)
	}

	if _, err := execute(t, "export", "csv"); err == nil {
		t.Error("expected error for unknown format")
	}
	if _, err := execute(t, "export", "markdown", "--only", "steps"); err == nil {
		t.Error("expected error for unknown tracker")
	}
}

func TestBreatheRunsCycles(t *testing.T) {
	setupCLI(t, time.Millisecond)

	out, err := execute(t, "breathe", "--pattern", "Calm Breathing", "--cycles", "1")
	if err != nil {
		t.Fatalf("breathe failed: %v", err)
	}
	got := lines(out)
	// Title, Inhale, Hold, Exhale, completion.
	if len(got) != 5 {
		t.Fatalf("expected 5 lines, got %d:\n%s", len(got), out)
	}
	for i, want := range []string{"Calm Breathing", "Inhale", "Hold", "Exhale", "✓ Completed 1 cycles of Calm Breathing"} {
		if !strings.HasPrefix(got[i], want) {
			t.Errorf("line %d = %q, want prefix %q", i, got[i], want)
		}
	}
}

func TestBreatheUsesConfiguredPattern(t *testing.T) {
	setupCLI(t, time.Millisecond)
	t.Setenv("WELLNESS_BREATHING_PATTERN", "Box Breathing")

	out, err := execute(t, "breathe", "--cycles", "1")
	if err != nil {
		t.Fatalf("breathe failed: %v", err)
	}
	if !strings.Contains(out, "Rest") || !strings.Contains(out, "of Box Breathing") {
		t.Errorf("expected a box breathing cycle:\n%s", out)
	}
}

func TestBreatheErrorsAndList(t *testing.T) {
	setupCLI(t, time.Millisecond)

	if _, err := execute(t, "breathe", "--pattern", "Fast"); err == nil {
		t.Error("expected error for unknown pattern")
	}
	if _, err := execute(t, "breathe", "--cycles", "-1"); err == nil {
		t.Error("expected error for negative cycles")
	}

	out, err := execute(t, "breathe", "--list")
	if err != nil {
		t.Fatalf("breathe --list failed: %v", err)
	}
	if len(lines(out)) != 3 || !strings.Contains(out, "4-4-4-4") {
		t.Errorf("unexpected pattern list:\n%s", out)
	}
}

func TestStretchPlaysSequence(t *testing.T) {
	setupCLI(t, 100*time.Microsecond)

	out, err := execute(t, "stretch", "--from", "5")
	if err != nil {
		t.Fatalf("stretch failed: %v", err)
	}
	want := []string{
		"2 stretches, 1:15 total",
		"▶ 1/2 Quad Stretch (0:45)",
		"▶ 2/2 Lower Back Stretch (0:30)",
		"✓ Stretch sequence complete",
	}
	if got := lines(out); strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("got:\n%s\nwant:\n%s", out, strings.Join(want, "\n"))
	}

	if _, err := execute(t, "stretch", "--from", "7"); err == nil {
		t.Error("expected error for --from past the end")
	}
}

func TestWorkoutMarksExercisesDone(t *testing.T) {
	setupCLI(t, 10*time.Microsecond)

	out, err := execute(t, "workout", "--move", "2:1")
	if err != nil {
		t.Fatalf("workout failed: %v", err)
	}
	if !strings.Contains(out, "▶ 1/6 Plank (1:00)") {
		t.Errorf("moved exercise should play first:\n%s", out)
	}
	if n := strings.Count(out, "[✓]"); n != 6 {
		t.Errorf("expected 6 completed exercises, got %d:\n%s", n, out)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "✓ Workout complete") {
		t.Errorf("missing completion line:\n%s", out)
	}
}

func TestWorkoutListEdits(t *testing.T) {
	setupCLI(t, time.Millisecond)

	out, err := execute(t, "workout", "list", "--add", "Wall Sit 2", "--move", "7:1")
	if err != nil {
		t.Fatalf("workout list failed: %v", err)
	}
	got := lines(out)
	if len(got) != 7 {
		t.Fatalf("expected 7 exercises, got %d:\n%s", len(got), out)
	}
	if !strings.HasPrefix(got[0], "[ ] 1. Wall Sit") {
		t.Errorf("first line = %q", got[0])
	}

	if _, err := execute(t, "workout", "list", "--add", "Wall Sit"); err == nil {
		t.Error("expected error for exercise without minutes")
	}
	if _, err := execute(t, "workout", "list", "--move", "9:1"); err == nil {
		t.Error("expected error for move out of range")
	}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		in       string
		from, to int
		wantErr  bool
	}{
		{"3:1", 2, 0, false},
		{"1:6", 0, 5, false},
		{"3", 0, 0, true},
		{"a:1", 0, 0, true},
		{"1:", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			from, to, err := parseMove(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && (from != tt.from || to != tt.to) {
				t.Errorf("got %d:%d, want %d:%d", from, to, tt.from, tt.to)
			}
		})
	}
}

func TestRouteByName(t *testing.T) {
	tests := []struct {
		in      string
		want    tui.Route
		wantErr bool
	}{
		{"", tui.RouteDashboard, false},
		{"water", tui.RouteWater, false},
		{"Breathing", tui.RouteBreathing, false},
		{"WEIGHT", tui.RouteWeight, false},
		{"steps", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := routeByName(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseCollection(t *testing.T) {
	tests := map[string]store.Collection{
		"moods":   store.CollectionMoods,
		"Mood":    store.CollectionMoods,
		"fitness": store.CollectionExercises,
		"journal": store.CollectionJournal,
		"weight":  store.CollectionWeights,
	}
	for in, want := range tests {
		got, err := parseCollection(in)
		if err != nil || got != want {
			t.Errorf("parseCollection(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
}

func TestTruncateAndPad(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate kept = %q", got)
	}
	if got := truncate("a much longer sentence", 10); got != "a much ..." {
		t.Errorf("truncate cut = %q", got)
	}
	if got := padRight("ab", 4); got != "ab  " {
		t.Errorf("padRight = %q", got)
	}
	if got := padRight("abcdef", 4); got != "abcdef" {
		t.Errorf("padRight long = %q", got)
	}
}

func TestOwnsTerminal(t *testing.T) {
	tests := []struct {
		args []string
		want bool
	}{
		{[]string{}, true},
		{[]string{"dashboard"}, true},
		{[]string{"list"}, false},
		{[]string{"mcp"}, false},
		{[]string{"workout", "list"}, false},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			cmd, _, err := rootCmd.Find(tt.args)
			if err != nil {
				t.Fatalf("find %v: %v", tt.args, err)
			}
			if got := ownsTerminal(cmd); got != tt.want {
				t.Errorf("ownsTerminal(%s) = %v, want %v", cmd.CommandPath(), got, tt.want)
			}
		})
	}
}

func TestCommandLogsGoToLogFile(t *testing.T) {
	setupCLI(t, time.Millisecond)
	logPath := filepath.Join(t.TempDir(), "wellness.log")
	t.Setenv("WELLNESS_LOG_FILE", logPath)
	t.Setenv("WELLNESS_LOG_LEVEL", "debug")

	if _, err := execute(t, "--seed", "5", "list", "water", "-n", "1"); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "store seeded") {
		t.Errorf("expected seed log line, got %q", data)
	}
}
