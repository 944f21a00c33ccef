// ABOUTME: Dashboard view: today's figures across every tracker.
// ABOUTME: Read-only; digits and tab move to the tracker views.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/stats"
)

func card(title, value, detail string) string {
	body := labelStyle.Render(title) + "\n" + valueStyle.Render(value) + "\n" + faintStyle.Render(detail)
	return cardStyle.Width(24).Render(body)
}

func comma(n int) string {
	return humanize.Comma(int64(n))
}

func (m Model) viewDashboard() string {
	sum := stats.Summarize(m.store, m.today())

	mood, moodDetail := "not logged", "press 1 then pick"
	if sum.Mood != "" {
		mood = models.MoodEmoji[sum.Mood] + " " + string(sum.Mood)
		moodDetail = sum.MoodNote
	}
	sleep, sleepDetail := "no data", ""
	if sum.LastSleepMinutes > 0 {
		sleep = models.FormatMinutes(sum.LastSleepMinutes)
		sleepDetail = fmt.Sprintf("7-night avg %.1fh", sum.SleepAvgHours)
	}
	weight, weightDetail := "no data", ""
	if sum.LatestWeight > 0 {
		weight = fmt.Sprintf("%.1f kg", sum.LatestWeight)
		weightDetail = fmt.Sprintf("%+.1f kg since last", sum.WeightChange)
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Water", fmt.Sprintf("%s / %s ml", comma(sum.WaterToday), comma(sum.WaterGoal)), fmt.Sprintf("%d%% of goal", sum.WaterPercent)),
		card("Mood", mood, moodDetail),
		card("Meals", comma(sum.CaloriesToday)+" kcal", fmt.Sprintf("%d meals today", sum.MealsToday)),
	)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Sleep", sleep, sleepDetail),
		card("Weight", weight, weightDetail),
		card("Fitness", fmt.Sprintf("%d/%d done", sum.ExercisesDone, sum.ExercisesTotal), fmt.Sprintf("%d journal entries", sum.JournalEntries)),
	)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Today · " + sum.Date))
	b.WriteString("\n")
	b.WriteString(top)
	b.WriteString("\n")
	b.WriteString(bottom)
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Sleep, last 7 nights"))
	b.WriteString("\n")
	b.WriteString(sleepChart(stats.LastWeekSleep(m.store.Sleep())))
	return b.String()
}

func sleepChart(w stats.SleepWeek) string {
	if len(w.Nights) == 0 {
		return faintStyle.Render("No sleep logged yet.")
	}
	bars := make([]Bar, 0, len(w.Nights))
	for _, n := range w.Nights {
		bars = append(bars, Bar{
			Label:     shortDate(n.Date),
			Value:     float64(n.Duration) / 60,
			Text:      models.FormatMinutes(n.Duration),
			Highlight: n.Duration >= 7*60,
		})
	}
	return BarChart(bars, 10, 30)
}

// shortDate trims the year from a YYYY-MM-DD day.
func shortDate(date string) string {
	if len(date) == len(models.DateLayout) {
		return date[5:]
	}
	return date
}
