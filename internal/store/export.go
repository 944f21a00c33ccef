// ABOUTME: Export functionality for tracker data.
// ABOUTME: Supports JSON, YAML, and Markdown renderings of a Snapshot.
package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/wellness/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData is the envelope written by every export format.
type ExportData struct {
	Version    string    `json:"version" yaml:"version"`
	ExportedAt time.Time `json:"exported_at" yaml:"exported_at"`
	Tool       string    `json:"tool" yaml:"tool"`
	WaterGoal  int       `json:"water_goal" yaml:"water_goal"`
	Data       Snapshot  `json:"data" yaml:"data"`
}

// NewExportData wraps a snapshot for export.
func NewExportData(s Store, now time.Time) *ExportData {
	return &ExportData{
		Version:    "1.0",
		ExportedAt: now,
		Tool:       "wellness",
		WaterGoal:  s.WaterGoal(),
		Data:       s.Snapshot(),
	}
}

// ExportJSON exports all data as JSON.
func (d *ExportData) ExportJSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// ExportYAML exports all data as YAML, in the same layout as the JSON export.
func (d *ExportData) ExportYAML() ([]byte, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("marshal yaml: %w", err)
	}
	return data, nil
}

// ExportMarkdown renders one table per non-empty collection.
// A non-nil only restricts output to that collection.
func (d *ExportData) ExportMarkdown(only *Collection) string {
	var sb strings.Builder

	sb.WriteString("# Wellness Export\n\n")
	sb.WriteString(fmt.Sprintf("Exported: %s\n\n", d.ExportedAt.Format("2006-01-02 15:04")))

	want := func(c Collection) bool {
		return only == nil || *only == c
	}

	if want(CollectionMoods) && len(d.Data.Moods) > 0 {
		sb.WriteString("## Mood\n\n| Date | Mood | Note |\n|------|------|------|\n")
		for _, e := range d.Data.Moods {
			sb.WriteString(fmt.Sprintf("| %s | %s %s | %s |\n", e.Date, models.MoodEmoji[e.Mood], e.Mood, e.Note))
		}
		sb.WriteString("\n")
	}

	if want(CollectionWater) && len(d.Data.Water) > 0 {
		sb.WriteString(fmt.Sprintf("## Water (goal %d ml)\n\n| Date | Amount (ml) |\n|------|-------------|\n", d.WaterGoal))
		for _, e := range d.Data.Water {
			sb.WriteString(fmt.Sprintf("| %s | %d |\n", e.Date, e.Amount))
		}
		sb.WriteString("\n")
	}

	if want(CollectionSleep) && len(d.Data.Sleep) > 0 {
		sb.WriteString("## Sleep\n\n| Date | Start | End | Duration | Quality |\n|------|-------|-----|----------|---------|\n")
		for _, e := range d.Data.Sleep {
			quality := "-"
			if e.Quality > 0 {
				quality = fmt.Sprintf("%d/5", e.Quality)
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s |\n",
				e.Date, e.StartTime, e.EndTime, models.FormatMinutes(e.Duration), quality))
		}
		sb.WriteString("\n")
	}

	if want(CollectionMeals) && len(d.Data.Meals) > 0 {
		sb.WriteString("## Meals\n\n| Date | Time | Type | Name | Calories |\n|------|------|------|------|----------|\n")
		for _, e := range d.Data.Meals {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %d |\n", e.Date, e.Time, e.Type, e.Name, e.Calories))
		}
		sb.WriteString("\n")
	}

	if want(CollectionWeights) && len(d.Data.Weights) > 0 {
		sb.WriteString("## Weight\n\n| Date | Weight (kg) |\n|------|-------------|\n")
		for _, e := range d.Data.Weights {
			sb.WriteString(fmt.Sprintf("| %s | %.1f |\n", e.Date, e.Weight))
		}
		sb.WriteString("\n")
	}

	if want(CollectionExercises) && len(d.Data.Exercises) > 0 {
		sb.WriteString("## Fitness Routine\n\n| # | Exercise | Minutes | Done |\n|---|----------|---------|------|\n")
		for i, e := range d.Data.Exercises {
			done := ""
			if e.Completed {
				done = "✓"
			}
			sb.WriteString(fmt.Sprintf("| %d | %s | %d | %s |\n", i+1, e.Name, e.Duration, done))
		}
		sb.WriteString("\n")
	}

	if want(CollectionJournal) && len(d.Data.Journal) > 0 {
		sb.WriteString("## Journal\n\n")
		for _, e := range d.Data.Journal {
			sb.WriteString(fmt.Sprintf("### %s\n\n%s\n\n", e.Date, e.Text))
			if len(e.Tags) > 0 {
				sb.WriteString("Tags: " + strings.Join(e.Tags, ", ") + "\n\n")
			}
		}
	}

	if want(CollectionStretches) && len(d.Data.Stretches) > 0 {
		sb.WriteString("## Stretch Sequence\n\n| # | Stretch | Seconds |\n|---|---------|---------|\n")
		for i, e := range d.Data.Stretches {
			sb.WriteString(fmt.Sprintf("| %d | %s | %d |\n", i+1, e.Name, e.Duration))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
