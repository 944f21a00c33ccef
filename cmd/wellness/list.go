// ABOUTME: CLI command for listing tracker entries.
// ABOUTME: One line per entry, newest first, with a result limit.
package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/store"
)

var listLimit int

// trackerAliases maps the singular names people type to collections.
var trackerAliases = map[string]store.Collection{
	"mood":     store.CollectionMoods,
	"weight":   store.CollectionWeights,
	"meal":     store.CollectionMeals,
	"exercise": store.CollectionExercises,
	"fitness":  store.CollectionExercises,
	"stretch":  store.CollectionStretches,
}

var listCmd = &cobra.Command{
	Use:     "list <tracker>",
	Aliases: []string{"ls", "l"},
	Short:   "List tracker entries",
	Long: `List entries from one tracker.

TRACKERS:

  moods, water, sleep, meals, weights, exercises, journal, stretches
  (singular names such as mood or weight work too)

  Dated trackers list newest first. Exercises and stretches list in
  routine order.

EXAMPLES:

  wellness list water           # Last 20 days of water
  wellness list sleep -n 7      # Last week of sleep
  wellness ls journal -n 3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := parseCollection(args[0])
		if err != nil {
			return err
		}
		if listLimit <= 0 {
			return fmt.Errorf("limit must be positive, got %d", listLimit)
		}
		n := printCollection(cmd.OutOrStdout(), st, c, listLimit)
		if n == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No entries found.")
		}
		return nil
	},
}

func parseCollection(name string) (store.Collection, error) {
	name = strings.ToLower(name)
	if c, ok := trackerAliases[name]; ok {
		return c, nil
	}
	if !store.IsValidCollection(name) {
		return "", fmt.Errorf("unknown tracker: %s", name)
	}
	return store.Collection(name), nil
}

// printCollection writes up to limit lines and returns how many it wrote.
func printCollection(w io.Writer, s store.Store, c store.Collection, limit int) int {
	faint := color.New(color.Faint)
	lines := 0
	emit := func(format string, a ...any) bool {
		if lines >= limit {
			return false
		}
		fmt.Fprintf(w, format, a...)
		lines++
		return true
	}

	switch c {
	case store.CollectionMoods:
		for _, e := range s.Moods() {
			note := ""
			if e.Note != "" {
				note = faint.Sprintf(" (%s)", truncate(e.Note, 40))
			}
			if !emit("%s %s %s%s\n", faint.Sprint(e.Date), models.MoodEmoji[e.Mood], e.Mood, note) {
				break
			}
		}
	case store.CollectionWater:
		for _, e := range s.Water() {
			if !emit("%s %s ml\n", faint.Sprint(e.Date), humanize.Comma(int64(e.Amount))) {
				break
			}
		}
	case store.CollectionSleep:
		for _, e := range s.Sleep() {
			quality := ""
			if e.Quality > 0 {
				quality = faint.Sprintf(" quality %d/5", e.Quality)
			}
			if !emit("%s %s-%s %s%s\n", faint.Sprint(e.Date), e.StartTime, e.EndTime,
				models.FormatMinutes(e.Duration), quality) {
				break
			}
		}
	case store.CollectionMeals:
		for _, e := range s.Meals() {
			if !emit("%s %s %s %s %s kcal\n", faint.Sprint(e.Date), faint.Sprint(e.Time),
				padRight(string(e.Type), 9), padRight(truncate(e.Name, 24), 24),
				humanize.Comma(int64(e.Calories))) {
				break
			}
		}
	case store.CollectionWeights:
		for _, e := range s.Weights() {
			if !emit("%s %.1f kg\n", faint.Sprint(e.Date), e.Weight) {
				break
			}
		}
	case store.CollectionExercises:
		for i, e := range s.Exercises() {
			mark := "[ ]"
			if e.Completed {
				mark = "[✓]"
			}
			if !emit("%s %s %d. %s %d min\n", faint.Sprint(e.ID), mark, i+1, padRight(e.Name, 20), e.Duration) {
				break
			}
		}
	case store.CollectionJournal:
		for _, e := range s.Journal() {
			tags := faint.Sprintf(" #%s", strings.Join(e.Tags, " #"))
			if !emit("%s %s%s\n", faint.Sprint(e.Date), truncate(e.Text, 60), tags) {
				break
			}
		}
	case store.CollectionStretches:
		for i, e := range s.Stretches() {
			if !emit("%s %d. %s %s\n", faint.Sprint(e.ID), i+1, padRight(e.Name, 24), clock(e.Duration)) {
				break
			}
		}
	}
	return lines
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

func padRight(s string, length int) string {
	n := len([]rune(s))
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "max number of results")
	rootCmd.AddCommand(listCmd)
}
