// ABOUTME: CLI commands for viewing and changing the config file.
// ABOUTME: Runs without loading tracker data so a broken config can be fixed.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/wellness/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or change settings",
	Long: `View or change settings stored in the config file.

KEYS:

  water_goal          daily water goal in ml (default 2000)
  breathing_pattern   "4-7-8 Breathing", "Box Breathing" or "Calm Breathing"
  seed                sample data seed, 0 for a new data set each run
  log_level           debug, info, warn or error
  log_file            write logs to this file instead of stderr

ENVIRONMENT:

  WELLNESS_WATER_GOAL, WELLNESS_BREATHING_PATTERN, WELLNESS_SEED,
  WELLNESS_LOG_LEVEL and WELLNESS_LOG_FILE override the file.

EXAMPLES:

  wellness config show
  wellness config set water_goal 2500
  wellness config set breathing_pattern "Box Breathing"
  wellness config path`,
	Annotations: map[string]string{skipStoreAnnotation: "true"},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective config as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), config.GetConfigPath())
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config key",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// The file alone, so environment overrides are not persisted.
		c, err := config.LoadFile()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := c.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := c.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		if err := c.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Set %s = %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configPathCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}
