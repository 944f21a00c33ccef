// ABOUTME: Text chart adapters: horizontal bar chart and sparkline.
// ABOUTME: They only render the numbers they are given.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Bar is one row of a bar chart.
type Bar struct {
	Label     string
	Value     float64
	Text      string // shown after the bar; defaults to the value
	Highlight bool
}

// BarChart renders one row per bar, scaled so full fills width cells.
// A non-positive full scales to the largest value.
func BarChart(bars []Bar, full float64, width int) string {
	if len(bars) == 0 || width <= 0 {
		return ""
	}
	if full <= 0 {
		for _, b := range bars {
			full = max(full, b.Value)
		}
	}

	labelWidth := 0
	for _, b := range bars {
		labelWidth = max(labelWidth, lipgloss.Width(b.Label))
	}

	rows := make([]string, 0, len(bars))
	for _, b := range bars {
		n := 0
		if full > 0 && b.Value > 0 {
			n = min(max(int(b.Value/full*float64(width)), 1), width)
		}
		style := barStyle
		if b.Highlight {
			style = barGoalStyle
		}
		text := b.Text
		if text == "" {
			text = fmt.Sprintf("%g", b.Value)
		}
		rows = append(rows, fmt.Sprintf("%-*s %s%s %s",
			labelWidth, b.Label,
			style.Render(strings.Repeat("█", n)),
			strings.Repeat(" ", width-n),
			labelStyle.Render(text)))
	}
	return strings.Join(rows, "\n")
}

var sparkTicks = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders values as one block glyph each, scaled between the
// smallest and largest value. A flat series renders at mid height.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo, hi = min(lo, v), max(hi, v)
	}

	var b strings.Builder
	for _, v := range values {
		i := len(sparkTicks) / 2
		if hi > lo {
			i = int((v - lo) / (hi - lo) * float64(len(sparkTicks)-1))
		}
		b.WriteRune(sparkTicks[i])
	}
	return barStyle.Render(b.String())
}
