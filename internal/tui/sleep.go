// ABOUTME: Sleep view: weekly averages, a seven-night chart, and recent nights.
// ABOUTME: Unrated nights count as quality 3 in the average.
package tui

import (
	"fmt"
	"strings"

	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/stats"
)

func (m Model) viewSleep() string {
	entries := m.store.Sleep()
	week := stats.LastWeekSleep(entries)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Sleep"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Weekly average %s · quality %s",
		valueStyle.Render(fmt.Sprintf("%.1fh", week.AverageHours)),
		valueStyle.Render(fmt.Sprintf("%.1f/5", week.AverageQuality))))
	b.WriteString("\n\n")
	b.WriteString(sleepChart(week))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Recent nights"))
	b.WriteString("\n")
	if len(entries) == 0 {
		b.WriteString(faintStyle.Render("No sleep logged yet. Press a to add a night."))
		return b.String()
	}
	for _, e := range entries[:min(3, len(entries))] {
		b.WriteString(fmt.Sprintf("%s  %s → %s  %s  %s\n",
			e.Date, e.StartTime, e.EndTime,
			valueStyle.Render(models.FormatMinutes(e.Duration)),
			stars(e.Quality)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func stars(quality int) string {
	if quality <= 0 {
		return faintStyle.Render("unrated")
	}
	return warnStyle.Render(strings.Repeat("★", quality)) + faintStyle.Render(strings.Repeat("☆", 5-quality))
}
