// ABOUTME: Water view: progress toward the daily goal and the last seven days.
// ABOUTME: Keys 1-4 add a cup; a opens a custom amount form.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/stats"
)

func (m Model) updateWater(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, waterCupHelp):
		ml := models.CupSizes[msg.String()[0]-'1']
		m.store.AddWater(ml)
		m.flash = fmt.Sprintf("Added %s ml", comma(ml))
		return m, nil, true
	case key.Matches(msg, m.keys.Add):
		next, cmd := m.openForm(formAdd, "")
		return next, cmd, true
	}
	return m, nil, false
}

func (m Model) viewWater() string {
	goal := m.store.WaterGoal()
	entries := m.store.Water()
	today := stats.WaterOn(entries, m.today())
	pct := stats.Percent(today, goal)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Water"))
	b.WriteString("\n")
	b.WriteString(valueStyle.Render(fmt.Sprintf("%s / %s ml", comma(today), comma(goal))))
	b.WriteString(labelStyle.Render(fmt.Sprintf("  %d%%", pct)))
	b.WriteString("\n")
	b.WriteString(m.water.ViewAs(min(float64(pct)/100, 1)))
	b.WriteString("\n")
	if today >= goal {
		b.WriteString(goodStyle.Render("Goal reached for today."))
	} else {
		b.WriteString(faintStyle.Render(fmt.Sprintf("%s ml to go", comma(goal-today))))
	}
	b.WriteString("\n\n")

	cups := make([]string, 0, len(models.CupSizes))
	for i, ml := range models.CupSizes {
		cups = append(cups, fmt.Sprintf("%d %s ml", i+1, comma(ml)))
	}
	b.WriteString(labelStyle.Render("Quick add: "))
	b.WriteString(strings.Join(cups, "  "))
	b.WriteString("\n\n")

	week := stats.LastWeekWater(entries, goal)
	b.WriteString(labelStyle.Render("Last 7 days"))
	b.WriteString("\n")
	if len(week.Days) == 0 {
		b.WriteString(faintStyle.Render("No water logged yet."))
		return b.String()
	}
	bars := make([]Bar, 0, len(week.Days))
	for _, d := range week.Days {
		bars = append(bars, Bar{
			Label:     shortDate(d.Date),
			Value:     float64(d.Amount),
			Text:      comma(d.Amount) + " ml",
			Highlight: d.Amount >= goal,
		})
	}
	b.WriteString(BarChart(bars, float64(max(goal, maxAmount(week.Days))), 30))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Average %s ml · %d of %d days at goal",
		comma(week.Average), week.DaysAtGoal, len(week.Days)))
	return b.String()
}

func maxAmount(days []models.WaterEntry) int {
	n := 0
	for _, d := range days {
		n = max(n, d.Amount)
	}
	return n
}
