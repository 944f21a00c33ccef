// ABOUTME: Dashboard command that opens the interactive terminal views.
// ABOUTME: Also the default action when wellness runs without a subcommand.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harperreed/wellness/internal/breathing"
	"github.com/harperreed/wellness/internal/tui"
)

var dashboardView string

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"ui", "d"},
	Short:   "Open the interactive dashboard",
	Long: `Open the full-screen dashboard with one tab per tracker.

VIEWS:

  0 Dashboard   1 Mood      2 Water    3 Breathing   4 Meals
  5 Sleep       6 Fitness   7 Stretch  8 Journal     9 Weight

KEYS:

  tab / shift+tab   next / previous view
  0-9               jump to a view (mood and water use digits for their own picks)
  a                 add an entry in the current view
  ?                 full help
  q                 quit

EXAMPLES:

  wellness                          # Open on the dashboard
  wellness dashboard --view sleep   # Open on the sleep view
  wellness ui -v breathing`,
	RunE: runDashboard,
}

func runDashboard(cmd *cobra.Command, args []string) error {
	start, err := routeByName(dashboardView)
	if err != nil {
		return err
	}
	pattern, err := breathing.PatternByName(cfg.BreathingPattern)
	if err != nil {
		return err
	}

	m, err := tui.New(st, tui.Options{
		Pattern: pattern,
		Logger:  logger,
		Start:   start,
	})
	if err != nil {
		return fmt.Errorf("failed to build dashboard: %w", err)
	}
	logger.Info("dashboard opened", "view", start)
	return tui.Run(cmd.Context(), m)
}

// routeByName maps a view name to its route. Empty means the dashboard.
func routeByName(name string) (tui.Route, error) {
	if name == "" {
		return tui.RouteDashboard, nil
	}
	names := make([]string, 0, len(tui.Routes()))
	for _, r := range tui.Routes() {
		if strings.EqualFold(r.String(), name) {
			return r, nil
		}
		names = append(names, strings.ToLower(r.String()))
	}
	return 0, fmt.Errorf("unknown view: %s (valid: %s)", name, strings.Join(names, ", "))
}

func init() {
	dashboardCmd.Flags().StringVarP(&dashboardView, "view", "v", "", "view to open first")
	rootCmd.RunE = runDashboard
	rootCmd.Flags().StringVarP(&dashboardView, "view", "v", "", "view to open first")
	rootCmd.AddCommand(dashboardCmd)
}
