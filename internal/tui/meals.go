// ABOUTME: Meals view: today's meals grouped by type with calorie totals.
// ABOUTME: Read-only apart from the add form, which records a meal.
package tui

import (
	"fmt"
	"strings"

	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/stats"
)

func (m Model) viewMeals() string {
	meals := stats.MealsOn(m.store.Meals(), m.today())
	byType := stats.CaloriesByType(meals)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Meals"))
	b.WriteString(labelStyle.Render(fmt.Sprintf("  %s kcal today", comma(stats.Calories(meals)))))
	b.WriteString("\n")

	if len(meals) == 0 {
		b.WriteString("\n")
		b.WriteString(faintStyle.Render("Nothing logged today. Press a to add a meal."))
		return b.String()
	}

	for _, t := range models.AllMealTypes {
		var rows []string
		for _, meal := range meals {
			if meal.Type != t {
				continue
			}
			rows = append(rows, fmt.Sprintf("  %s  %-28s %s kcal",
				faintStyle.Render(meal.Time), meal.Name, comma(meal.Calories)))
		}
		if len(rows) == 0 {
			continue
		}
		b.WriteString("\n")
		b.WriteString(valueStyle.Render(titleCase(string(t))))
		b.WriteString(labelStyle.Render(fmt.Sprintf("  %s kcal", comma(byType[t]))))
		b.WriteString("\n")
		b.WriteString(strings.Join(rows, "\n"))
		b.WriteString("\n")
	}
	return b.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
