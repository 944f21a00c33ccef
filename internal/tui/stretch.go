// ABOUTME: Stretch view: plays the stretch sequence item by item.
// ABOUTME: The sequence auto-advances and halts after the last stretch.
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

func (m Model) updateStretch(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	items := sequence.FromStretches(m.store.Stretches())

	switch {
	case key.Matches(msg, m.keys.Toggle):
		m.stretchSeq = togglePlayback(m.stretchSeq, items)
		return m.follow(m.stretchSeq.Running)
	case key.Matches(msg, m.keys.Skip):
		m.stretchSeq = sequence.Skip(m.stretchSeq, items)
		if !m.stretchSeq.Running {
			m = m.stopTicking()
		}
	case key.Matches(msg, m.keys.Reset):
		m.stretchSeq = sequence.Reset(m.stretchSeq)
		return m.stopTicking(), nil, true
	case key.Matches(msg, m.keys.Down):
		m.stretchSel = min(m.stretchSel+1, max(len(items)-1, 0))
	case key.Matches(msg, m.keys.Up):
		m.stretchSel = max(m.stretchSel-1, 0)
	case key.Matches(msg, m.keys.MoveDown):
		m.stretchSel = m.reorder(store.CollectionStretches, m.stretchSel, 1, len(items))
	case key.Matches(msg, m.keys.MoveUp):
		m.stretchSel = m.reorder(store.CollectionStretches, m.stretchSel, -1, len(items))
	default:
		return m, nil, false
	}
	return m, nil, true
}

func (m Model) viewStretch() string {
	stretches := m.store.Stretches()
	items := sequence.FromStretches(stretches)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Stretch sequence"))
	b.WriteString(labelStyle.Render(fmt.Sprintf("  %d stretches · %s total", len(stretches), clock(stats.StretchTotal(stretches)))))
	b.WriteString("\n\n")

	if cur, ok := m.stretchSeq.Current(items); ok {
		b.WriteString(cardStyle.Width(36).Render(
			valueStyle.Render(cur.Name) + "\n" +
				countdownStyle.Render(clock(m.stretchSeq.Remaining)) + "  " + playState(m.stretchSeq) + "\n" +
				faintStyle.Render(fmt.Sprintf("%d of %d", m.stretchSeq.Cursor+1, len(items)))))
		b.WriteString("\n\n")
	}

	for i, s := range stretches {
		cursor := "  "
		if i == m.stretchSel {
			cursor = selectedStyle.Render("› ")
		}
		name := s.Name
		if m.stretchSeq.Active() && m.stretchSeq.Cursor == i {
			name = selectedStyle.Render(name)
		} else if m.stretchSeq.Active() && i < m.stretchSeq.Cursor {
			name = doneStyle.Render(name)
		}
		b.WriteString(fmt.Sprintf("%s%-26s %s\n", cursor, name, faintStyle.Render(fmt.Sprintf("%ds", s.Duration))))
	}
	if len(stretches) == 0 {
		b.WriteString(faintStyle.Render("No stretches in the sequence."))
	}
	return strings.TrimRight(b.String(), "\n")
}
