// ABOUTME: One-line entry form shared by the views that add records.
// ABOUTME: Input that fails to parse leaves the store and the form untouched.
package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/harperreed/wellness/internal/forms"
	"github.com/harperreed/wellness/internal/models"
)

var formPrompts = map[Route]string{
	RouteMood:    "mood [note]: ",
	RouteWater:   "ml: ",
	RouteMeals:   "type name calories [HH:MM]: ",
	RouteSleep:   "[date] start end [quality]: ",
	RouteFitness: "name minutes: ",
	RouteJournal: "text #tag: ",
	RouteWeight:  "kg [date]: ",
}

var formPlaceholders = map[Route]string{
	RouteMood:    "calm slow morning",
	RouteWater:   "330",
	RouteMeals:   "lunch chicken salad 450 12:30",
	RouteSleep:   "22:45 06:30 4",
	RouteFitness: "Burpees 3",
	RouteJournal: "Felt strong on the run #exercise",
	RouteWeight:  "70.2",
}

func (m Model) openForm(kind formKind, value string) (Model, tea.Cmd) {
	m.form = kind
	m.flash = ""
	switch kind {
	case formSearch:
		m.input.Prompt = "search: "
		m.input.Placeholder = "words in text or tags"
	case formTags:
		m.input.Prompt = "tags: "
		m.input.Placeholder = "#sleep #work"
	default:
		m.input.Prompt = formPrompts[m.route]
		m.input.Placeholder = formPlaceholders[m.route]
	}
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m Model) closeForm() Model {
	m.form = formNone
	m.input.Reset()
	m.input.Blur()
	return m
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		return m.closeForm(), nil
	case key.Matches(msg, m.keys.Submit):
		value := m.input.Value()
		switch m.form {
		case formSearch:
			m.search = strings.TrimSpace(value)
			return m.closeForm(), nil
		case formTags:
			m.tags = models.NormalizeTags(strings.Fields(strings.ReplaceAll(value, "#", " ")))
			return m.closeForm(), nil
		}
		flash, err := m.submit(value)
		if err != nil {
			m.logger.Debug("form rejected", "view", m.route, "err", err)
			return m, nil
		}
		m = m.closeForm()
		m.flash = flash
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit parses the form for the active view and applies it to the store.
func (m Model) submit(value string) (string, error) {
	now := m.now()
	switch m.route {
	case RouteMood:
		e, err := forms.Mood(now, value)
		if err != nil {
			return "", err
		}
		m.store.AddMood(e)
		return fmt.Sprintf("Logged %s %s", models.MoodEmoji[e.Mood], e.Mood), nil

	case RouteWater:
		ml, err := forms.Water(value)
		if err != nil {
			return "", err
		}
		m.store.AddWater(ml)
		return fmt.Sprintf("Added %s ml", humanize.Comma(int64(ml))), nil

	case RouteMeals:
		e, err := forms.Meal(now, value)
		if err != nil {
			return "", err
		}
		m.store.AddMeal(e)
		return fmt.Sprintf("Logged %s (%s kcal)", e.Name, humanize.Comma(int64(e.Calories))), nil

	case RouteSleep:
		e, err := forms.Sleep(now, value)
		if err != nil {
			return "", err
		}
		m.store.AddSleep(e)
		return fmt.Sprintf("Logged %s of sleep", models.FormatMinutes(e.Duration)), nil

	case RouteFitness:
		e, err := forms.Exercise(value)
		if err != nil {
			return "", err
		}
		m.store.SetExercises(append(slices.Clone(m.store.Exercises()), e))
		return fmt.Sprintf("Added %s", e.Name), nil

	case RouteJournal:
		e, err := forms.Journal(now, value)
		if err != nil {
			return "", err
		}
		m.store.AddJournal(e)
		return "Journal entry saved", nil

	case RouteWeight:
		e, err := forms.Weight(now, value)
		if err != nil {
			return "", err
		}
		m.store.AddWeight(e)
		return fmt.Sprintf("Logged %.1f kg", e.Weight), nil
	}
	return "", fmt.Errorf("no form on %s", m.route)
}
