// ABOUTME: Dashboard summary assembled from a Store for one day.
// ABOUTME: Shared by the dashboard view, the summary command, and MCP.
package stats

import (
	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/store"
)

// Summary is the at-a-glance state for a day.
type Summary struct {
	Date string `json:"date"`

	WaterToday   int `json:"water_today"`
	WaterGoal    int `json:"water_goal"`
	WaterPercent int `json:"water_percent"`

	Mood     models.Mood `json:"mood,omitempty"`
	MoodNote string      `json:"mood_note,omitempty"`

	MealsToday    int `json:"meals_today"`
	CaloriesToday int `json:"calories_today"`

	LastSleepDate    string  `json:"last_sleep_date,omitempty"`
	LastSleepMinutes int     `json:"last_sleep_minutes"`
	SleepAvgHours    float64 `json:"sleep_avg_hours"`

	LatestWeight float64 `json:"latest_weight"`
	WeightChange float64 `json:"weight_change"`

	ExercisesDone  int `json:"exercises_done"`
	ExercisesTotal int `json:"exercises_total"`

	JournalEntries int `json:"journal_entries"`
}

// Summarize reads the store once and computes the summary for date.
func Summarize(s store.Store, date string) Summary {
	snap := s.Snapshot()

	water := WaterOn(snap.Water, date)
	meals := MealsOn(snap.Meals, date)
	weight := Weight(snap.Weights)

	sum := Summary{
		Date:           date,
		WaterToday:     water,
		WaterGoal:      s.WaterGoal(),
		WaterPercent:   Percent(water, s.WaterGoal()),
		MealsToday:     len(meals),
		CaloriesToday:  Calories(meals),
		SleepAvgHours:  LastWeekSleep(snap.Sleep).AverageHours,
		LatestWeight:   weight.Latest,
		WeightChange:   weight.Change,
		ExercisesDone:  CompletedExercises(snap.Exercises),
		ExercisesTotal: len(snap.Exercises),
		JournalEntries: len(snap.Journal),
	}
	if mood, ok := MoodOn(snap.Moods, date); ok {
		sum.Mood = mood.Mood
		sum.MoodNote = mood.Note
	}
	if len(snap.Sleep) > 0 {
		sum.LastSleepDate = snap.Sleep[0].Date
		sum.LastSleepMinutes = snap.Sleep[0].Duration
	}
	return sum
}
