// ABOUTME: Mood view: one-key mood logging, month strip, and mood counts.
// ABOUTME: Keys 1-7 log today's mood in picker order.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/stats"
)

func (m Model) updateMood(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Pick):
		mood := models.AllMoods[msg.String()[0]-'1']
		m.store.AddMood(models.MoodEntry{Date: m.today(), Mood: mood})
		m.flash = fmt.Sprintf("Logged %s %s", models.MoodEmoji[mood], mood)
		return m, nil, true
	case key.Matches(msg, m.keys.Add):
		next, cmd := m.openForm(formAdd, "")
		return next, cmd, true
	}
	return m, nil, false
}

func (m Model) viewMood() string {
	moods := m.store.Moods()

	var b strings.Builder
	b.WriteString(titleStyle.Render("How are you feeling?"))
	b.WriteString("\n")
	picks := make([]string, 0, len(models.AllMoods))
	for i, mood := range models.AllMoods {
		picks = append(picks, fmt.Sprintf("%d %s %s", i+1, models.MoodEmoji[mood], mood))
	}
	b.WriteString(strings.Join(picks, "  "))
	b.WriteString("\n\n")

	if today, ok := stats.MoodOn(moods, m.today()); ok {
		b.WriteString(labelStyle.Render("Today: "))
		b.WriteString(valueStyle.Render(models.MoodEmoji[today.Mood] + " " + string(today.Mood)))
		if today.Note != "" {
			b.WriteString(faintStyle.Render("  " + today.Note))
		}
		b.WriteString("\n\n")
	}

	b.WriteString(labelStyle.Render("This month"))
	b.WriteString("\n")
	b.WriteString(m.monthStrip(moods))
	b.WriteString("\n\n")

	counts := stats.MoodCounts(moods)
	bars := make([]Bar, 0, len(counts))
	for _, c := range counts {
		bars = append(bars, Bar{
			Label: models.MoodEmoji[c.Mood] + " " + string(c.Mood),
			Value: float64(c.Count),
			Text:  fmt.Sprintf("%d", c.Count),
		})
	}
	b.WriteString(BarChart(bars, 0, 20))
	if common, ok := stats.MostCommonMood(moods); ok {
		b.WriteString("\n\n")
		b.WriteString(labelStyle.Render("Most common: "))
		b.WriteString(valueStyle.Render(models.MoodEmoji[common] + " " + string(common)))
	}
	return b.String()
}

// monthStrip shows one glyph per day of the current month up to today.
func (m Model) monthStrip(moods []models.MoodEntry) string {
	now := m.now()
	cells := make([]string, 0, now.Day())
	for d := 1; d <= now.Day(); d++ {
		date := models.DateOf(time.Date(now.Year(), now.Month(), d, 0, 0, 0, 0, now.Location()))
		if e, ok := stats.MoodOn(moods, date); ok {
			cells = append(cells, models.MoodEmoji[e.Mood])
			continue
		}
		cells = append(cells, faintStyle.Render("·"))
	}
	return strings.Join(cells, " ")
}
