// ABOUTME: Breathing view: guided phases driven by one-second ticks.
// ABOUTME: Leaving the view stops the exercise and drops pending ticks.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/harperreed/wellness/internal/breathing"
)

func (m Model) updateBreathing(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	running := m.breath.Phase != breathing.Idle
	n := len(breathing.Patterns)

	switch {
	case key.Matches(msg, m.keys.Toggle):
		if running {
			m.breath = breathing.Stop(m.breath)
			return m.stopTicking(), nil, true
		}
		m.breath = breathing.Start(m.breath, m.pattern())
		next, cmd := m.startTicking()
		return next, cmd, true

	case key.Matches(msg, m.keys.Reset):
		m.breath = breathing.State{}
		return m.stopTicking(), nil, true

	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Right):
		if key.Matches(msg, m.keys.Left) {
			m.chosen = (m.chosen + n - 1) % n
		} else {
			m.chosen = (m.chosen + 1) % n
		}
		if !running {
			return m, nil, true
		}
		m.breath = breathing.Start(m.breath, m.pattern())
		next, cmd := m.startTicking()
		return next, cmd, true
	}
	return m, nil, false
}

func (m Model) viewBreathing() string {
	p := m.pattern()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Breathing"))
	b.WriteString("\n")
	names := make([]string, 0, len(breathing.Patterns))
	for i, bp := range breathing.Patterns {
		if i == m.chosen {
			names = append(names, selectedStyle.Render("‹ "+bp.Name+" ›"))
			continue
		}
		names = append(names, faintStyle.Render(bp.Name))
	}
	b.WriteString(strings.Join(names, "   "))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("inhale %ds · hold %ds · exhale %ds · hold %ds",
		p.Inhale, p.Hold1, p.Exhale, p.Hold2)))
	b.WriteString("\n\n")

	phase := phaseStyle.Render(m.breath.Phase.String())
	if m.breath.Phase == breathing.Idle {
		b.WriteString(cardStyle.Width(30).Render(phase + "\n" + faintStyle.Render("press space to begin")))
	} else {
		b.WriteString(cardStyle.Width(30).Render(phase + "\n" + countdownStyle.Render(fmt.Sprintf("%d", m.breath.Countdown))))
	}
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("Cycles completed: %d", m.breath.Cycles)))
	return b.String()
}
