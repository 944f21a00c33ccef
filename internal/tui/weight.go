// ABOUTME: Weight view: latest weigh-in, change, range, and a 30-entry sparkline.
// ABOUTME: Read-only apart from the add form, which records a weigh-in.
package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/harperreed/wellness/internal/stats"
)

// weightHistory is how many weigh-ins the sparkline covers.
const weightHistory = 30

func (m Model) viewWeight() string {
	entries := m.store.Weights()
	ws := stats.Weight(entries)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Weight"))
	b.WriteString("\n")
	if ws.Count == 0 {
		b.WriteString(faintStyle.Render("No weigh-ins yet. Press a to add one."))
		return b.String()
	}

	change := goodStyle
	if ws.Change > 0 {
		change = warnStyle
	}
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.1f kg", ws.Latest)))
	b.WriteString("  ")
	b.WriteString(change.Render(fmt.Sprintf("%+.1f kg", ws.Change)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Start %.1f · Avg %.1f · Min %.1f · Max %.1f · %d entries",
		ws.Starting, ws.Average, ws.Min, ws.Max, ws.Count))
	b.WriteString("\n\n")

	sorted := append(entries[:0:0], entries...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })
	if len(sorted) > weightHistory {
		sorted = sorted[len(sorted)-weightHistory:]
	}
	values := make([]float64, 0, len(sorted))
	for _, e := range sorted {
		values = append(values, e.Weight)
	}
	b.WriteString(labelStyle.Render(fmt.Sprintf("Last %d  ", len(values))))
	b.WriteString(Sparkline(values))
	return b.String()
}
