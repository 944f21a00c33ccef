// ABOUTME: Journal view: entries with text search, tag filtering, and top tags.
// ABOUTME: Keys: / searches, t filters tags, c clears, a adds an entry.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/harperreed/wellness/internal/stats"
)

// journalTopTags is how many tags the sidebar line lists.
const journalTopTags = 6

func (m Model) updateJournal(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Add):
		next, cmd := m.openForm(formAdd, "")
		return next, cmd, true
	case key.Matches(msg, m.keys.Search):
		next, cmd := m.openForm(formSearch, m.search)
		return next, cmd, true
	case key.Matches(msg, m.keys.Tags):
		value := ""
		if len(m.tags) > 0 {
			value = "#" + strings.Join(m.tags, " #")
		}
		next, cmd := m.openForm(formTags, value)
		return next, cmd, true
	case key.Matches(msg, m.keys.Clear):
		m.search, m.tags = "", nil
		return m, nil, true
	}
	return m, nil, false
}

func (m Model) viewJournal() string {
	entries := m.store.Journal()
	shown := stats.FilterJournal(entries, m.search, m.tags)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Journal"))
	b.WriteString(labelStyle.Render(fmt.Sprintf("  %d of %d entries", len(shown), len(entries))))
	b.WriteString("\n")

	top := stats.TopTags(entries, journalTopTags)
	if len(top) > 0 {
		tags := make([]string, 0, len(top))
		for _, t := range top {
			tags = append(tags, fmt.Sprintf("#%s (%d)", t.Tag, t.Count))
		}
		b.WriteString(faintStyle.Render("Top tags: " + strings.Join(tags, " ")))
		b.WriteString("\n")
	}
	if m.search != "" || len(m.tags) > 0 {
		filter := []string{}
		if m.search != "" {
			filter = append(filter, fmt.Sprintf("search %q", m.search))
		}
		if len(m.tags) > 0 {
			filter = append(filter, "tags #"+strings.Join(m.tags, " #"))
		}
		b.WriteString(warnStyle.Render("Filtered by " + strings.Join(filter, ", ")))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(shown) == 0 {
		b.WriteString(faintStyle.Render("No matching entries."))
		return b.String()
	}
	for _, e := range shown {
		b.WriteString(labelStyle.Render(e.Date))
		b.WriteString("  ")
		b.WriteString(e.Text)
		b.WriteString("\n")
		b.WriteString(faintStyle.Render("  #" + strings.Join(e.Tags, " #")))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
