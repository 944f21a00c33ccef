// ABOUTME: Summary command printing today's dashboard figures.
// ABOUTME: Human-readable by default, JSON with --json.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/stats"
)

var (
	summaryJSON bool
	summaryDate string
)

var summaryCmd = &cobra.Command{
	Use:     "summary",
	Aliases: []string{"today"},
	Short:   "Show today's summary",
	Long: `Show the dashboard figures for one day: water against the goal, mood,
meals and calories, last night's sleep, latest weight, routine progress and
journal count.

EXAMPLES:

  wellness summary
  wellness summary --date 2025-01-30
  wellness summary --json | jq .water_percent`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date := st.Today()
		if summaryDate != "" {
			if _, err := models.ParseDate(summaryDate); err != nil {
				return fmt.Errorf("invalid date format: %s (use YYYY-MM-DD)", summaryDate)
			}
			date = summaryDate
		}
		sum := stats.Summarize(st, date)

		out := cmd.OutOrStdout()
		if summaryJSON {
			data, err := json.MarshalIndent(sum, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode summary: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		label := color.New(color.Faint)
		row := func(name, value string) {
			fmt.Fprintf(out, "%s %s\n", label.Sprint(padRight(name, 10)), value)
		}

		color.New(color.Bold).Fprintf(out, "Wellness summary for %s\n", sum.Date)

		water := fmt.Sprintf("%s / %s ml (%d%%)",
			humanize.Comma(int64(sum.WaterToday)), humanize.Comma(int64(sum.WaterGoal)), sum.WaterPercent)
		if sum.WaterToday >= sum.WaterGoal {
			water = color.GreenString("%s ✓", water)
		}
		row("Water", water)

		if sum.Mood != "" {
			mood := fmt.Sprintf("%s %s", models.MoodEmoji[sum.Mood], sum.Mood)
			if sum.MoodNote != "" {
				mood += label.Sprintf(" (%s)", sum.MoodNote)
			}
			row("Mood", mood)
		} else {
			row("Mood", label.Sprint("not logged"))
		}

		row("Meals", fmt.Sprintf("%d (%s kcal)", sum.MealsToday, humanize.Comma(int64(sum.CaloriesToday))))

		if sum.LastSleepDate != "" {
			row("Sleep", fmt.Sprintf("%s on %s, week avg %.1fh",
				models.FormatMinutes(sum.LastSleepMinutes), sum.LastSleepDate, sum.SleepAvgHours))
		} else {
			row("Sleep", label.Sprint("no entries"))
		}

		if sum.LatestWeight > 0 {
			row("Weight", fmt.Sprintf("%.1f kg (%+.1f)", sum.LatestWeight, sum.WeightChange))
		}
		row("Fitness", fmt.Sprintf("%d/%d exercises", sum.ExercisesDone, sum.ExercisesTotal))
		row("Journal", fmt.Sprintf("%d entries", sum.JournalEntries))
		return nil
	},
}

func init() {
	summaryCmd.Flags().BoolVar(&summaryJSON, "json", false, "print JSON")
	summaryCmd.Flags().StringVar(&summaryDate, "date", "", "day to summarize (YYYY-MM-DD)")
	rootCmd.AddCommand(summaryCmd)
}
