// ABOUTME: Fitness view: the exercise routine with completion and a per-item timer.
// ABOUTME: Reordering replaces the routine through the store's Move command.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/harperreed/wellness/internal/sequence"
	"github.com/harperreed/wellness/internal/stats"
	"github.com/harperreed/wellness/internal/store"
)

func (m Model) updateFitness(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	exercises := m.store.Exercises()
	items := sequence.FromExercises(exercises)

	switch {
	case key.Matches(msg, m.keys.Down):
		m.fitSel = min(m.fitSel+1, max(len(items)-1, 0))
	case key.Matches(msg, m.keys.Up):
		m.fitSel = max(m.fitSel-1, 0)
	case key.Matches(msg, m.keys.Select):
		if len(items) == 0 {
			return m, nil, true
		}
		m.fitSeq = sequence.Select(items, m.fitSel)
		return m.stopTicking(), nil, true
	case key.Matches(msg, m.keys.Toggle):
		m.fitSeq = togglePlayback(m.fitSeq, items)
		return m.follow(m.fitSeq.Running)
	case key.Matches(msg, m.keys.Skip):
		m.fitSeq = sequence.Skip(m.fitSeq, items)
		if !m.fitSeq.Running {
			m = m.stopTicking()
		}
	case key.Matches(msg, m.keys.Reset):
		m.fitSeq = sequence.Reset(m.fitSeq)
		return m.stopTicking(), nil, true
	case key.Matches(msg, m.keys.Complete):
		if m.fitSel < len(exercises) {
			m.store.ToggleExercise(exercises[m.fitSel].ID)
		}
	case key.Matches(msg, m.keys.MoveDown):
		m.fitSel = m.reorder(store.CollectionExercises, m.fitSel, 1, len(items))
	case key.Matches(msg, m.keys.MoveUp):
		m.fitSel = m.reorder(store.CollectionExercises, m.fitSel, -1, len(items))
	case key.Matches(msg, m.keys.Add):
		next, cmd := m.openForm(formAdd, "")
		return next, cmd, true
	default:
		return m, nil, false
	}
	return m, nil, true
}

// togglePlayback pauses a running sequence or resumes a stopped one.
func togglePlayback(s sequence.State, items []sequence.Item) sequence.State {
	if s.Running {
		return sequence.Pause(s)
	}
	return sequence.Resume(s, items)
}

// follow starts or stops the tick chain to match a timer's running flag.
func (m Model) follow(running bool) (Model, tea.Cmd, bool) {
	if !running {
		return m.stopTicking(), nil, true
	}
	next, cmd := m.startTicking()
	return next, cmd, true
}

// reorder moves the selected item by delta and returns the new selection.
func (m Model) reorder(list store.Collection, sel, delta, n int) int {
	to := sel + delta
	if to < 0 || to >= n {
		return sel
	}
	if err := m.store.Reorder(store.Move{List: list, From: sel, To: to}); err != nil {
		m.logger.Warn("reorder failed", "list", list, "from", sel, "to", to, "err", err)
		return sel
	}
	return to
}

// clock renders seconds as m:ss.
func clock(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func playState(s sequence.State) string {
	switch {
	case s.Running:
		return goodStyle.Render("running")
	case s.Active():
		return warnStyle.Render("paused")
	}
	return faintStyle.Render("stopped")
}

func (m Model) viewFitness() string {
	exercises := m.store.Exercises()
	items := sequence.FromExercises(exercises)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Fitness routine"))
	b.WriteString(labelStyle.Render(fmt.Sprintf("  %d/%d done", stats.CompletedExercises(exercises), len(exercises))))
	b.WriteString("\n\n")

	if len(exercises) == 0 {
		b.WriteString(faintStyle.Render("No exercises yet. Press a to add one."))
		return b.String()
	}

	for i, e := range exercises {
		cursor := "  "
		if i == m.fitSel {
			cursor = selectedStyle.Render("› ")
		}
		check := "[ ]"
		name := e.Name
		if e.Completed {
			check = goodStyle.Render("[x]")
			name = doneStyle.Render(name)
		}
		timing := faintStyle.Render(fmt.Sprintf("%d min", e.Duration))
		if m.fitSeq.Active() && m.fitSeq.Cursor == i {
			timing = countdownStyle.Render(clock(m.fitSeq.Remaining))
		}
		b.WriteString(fmt.Sprintf("%s%s %-22s %s\n", cursor, check, name, timing))
	}

	b.WriteString("\n")
	if cur, ok := m.fitSeq.Current(items); ok {
		b.WriteString(fmt.Sprintf("%s %s %s", valueStyle.Render(cur.Name), countdownStyle.Render(clock(m.fitSeq.Remaining)), playState(m.fitSeq)))
	} else {
		b.WriteString(faintStyle.Render("Select an exercise with enter, then space to start."))
	}
	return b.String()
}
