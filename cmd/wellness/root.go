// ABOUTME: Root Cobra command for the wellness CLI.
// ABOUTME: Loads config, builds the logger, and seeds the in-memory store per run.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/harperreed/wellness/internal/config"
	"github.com/harperreed/wellness/internal/mockdata"
	"github.com/harperreed/wellness/internal/store"
)

// skipStoreAnnotation marks commands that run without config validation or data.
const skipStoreAnnotation = "wellness/skip-store"

var (
	cfg      *config.Config
	logger   *log.Logger
	closeLog func() error
	st       *store.Memory

	flagSeed      int64
	flagWaterGoal int
	flagLogLevel  string
)

var rootCmd = &cobra.Command{
	Use:   "wellness",
	Short: "Personal wellness tracker",
	Long: `Wellness tracks mood, water, sleep, meals, weight, journal entries and a
fitness routine, and guides breathing and stretching sessions.

WHAT IT TRACKS:

  Mood        happy, calm, energetic, neutral, tired, stressed, sad
  Water       millilitres per day against a daily goal (default 2000 ml)
  Sleep       bedtime, wake time, duration and 1-5 quality
  Meals       breakfast, lunch, dinner and snacks with calories
  Weight      kilograms per weigh-in
  Journal     free text with tags
  Fitness     an ordered exercise routine with completion
  Stretch     an ordered stretch sequence

QUICK START:

  $ wellness                      # Open the dashboard
  $ wellness dashboard --view water
  $ wellness breathe --pattern "Box Breathing" --cycles 4
  $ wellness list sleep -n 7
  $ wellness summary

DATA:

  Every run starts from generated sample data and keeps changes in memory
  until the process exits. Use --seed for repeatable data and
  'wellness export' to save a copy.

CONFIGURATION:

  Settings live in $XDG_CONFIG_HOME/wellness/config.json and can be
  overridden with WELLNESS_* environment variables or flags.
  Run 'wellness config show' to see the effective values.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if skipsStore(cmd) {
			return nil
		}

		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyFlags(cmd, c)
		if err := c.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		var fallback io.Writer = os.Stderr
		if ownsTerminal(cmd) {
			fallback = io.Discard
		}
		l, closeFn, err := c.NewLogger(fallback)
		if err != nil {
			return fmt.Errorf("failed to open logger: %w", err)
		}

		cfg, logger, closeLog = c, l, closeFn
		st = newStore(c, time.Now())
		st.Subscribe(func(ch store.Change) {
			logger.Debug("store changed", "collection", ch.Collection, "op", ch.Op)
		})
		logger.Debug("store seeded", "seed", c.Seed, "water_goal", c.WaterGoal)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if closeLog != nil {
			err := closeLog()
			closeLog = nil
			return err
		}
		return nil
	},
}

// ownsTerminal reports whether cmd runs the full-screen dashboard, whose
// logs go to log_file or nowhere.
func ownsTerminal(cmd *cobra.Command) bool {
	return !cmd.HasParent() || cmd.Name() == "dashboard"
}

func skipsStore(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[skipStoreAnnotation] == "true" {
			return true
		}
	}
	return cmd.Name() == "help" || cmd.Name() == "completion"
}

// applyFlags lets explicit global flags win over file and environment.
func applyFlags(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("seed") {
		c.Seed = flagSeed
	}
	if flags.Changed("water-goal") {
		c.WaterGoal = flagWaterGoal
	}
	if flags.Changed("log-level") {
		c.LogLevel = flagLogLevel
	}
}

// newStore seeds a store from the mock data generator. A zero seed uses the clock.
func newStore(c *config.Config, now time.Time) *store.Memory {
	seed := c.Seed
	if seed == 0 {
		seed = now.UnixNano()
	}
	snap := mockdata.New(seed, now).Generate()
	return store.New(snap, store.WithWaterGoal(c.WaterGoal))
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "seed for generated sample data (0 = random)")
	rootCmd.PersistentFlags().IntVar(&flagWaterGoal, "water-goal", 0, "daily water goal in ml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
}
