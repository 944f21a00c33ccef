// ABOUTME: Tests for derived tracker figures and the dashboard summary.
// ABOUTME: Includes empty-input cases that must not divide by zero.
package stats

import (
	"math"
	"testing"
	"time"

	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/store"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPercent(t *testing.T) {
	tests := []struct {
		amount, goal, want int
	}{
		{1000, 2000, 50},
		{2500, 2000, 125},
		{333, 1000, 33},
		{100, 0, 0},
	}
	for _, tt := range tests {
		if got := Percent(tt.amount, tt.goal); got != tt.want {
			t.Errorf("Percent(%d, %d) = %d, want %d", tt.amount, tt.goal, got, tt.want)
		}
	}
}

func TestLastWeekWater(t *testing.T) {
	entries := []models.WaterEntry{
		{Date: "2025-01-09", Amount: 2000},
		{Date: "2025-01-08", Amount: 1000},
		{Date: "2025-01-07", Amount: 2500},
		{Date: "2025-01-06", Amount: 1500},
		{Date: "2025-01-05", Amount: 1000},
		{Date: "2025-01-04", Amount: 1000},
		{Date: "2025-01-03", Amount: 1000},
		{Date: "2025-01-02", Amount: 9000},
	}

	w := LastWeekWater(entries, 2000)
	if len(w.Days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(w.Days))
	}
	if w.Days[0].Date != "2025-01-03" || w.Days[6].Date != "2025-01-09" {
		t.Errorf("days not oldest first: %s..%s", w.Days[0].Date, w.Days[6].Date)
	}
	if w.Average != 1429 {
		t.Errorf("Average = %d, want 1429", w.Average)
	}
	if w.DaysAtGoal != 2 {
		t.Errorf("DaysAtGoal = %d, want 2", w.DaysAtGoal)
	}
	if entries[0].Date != "2025-01-09" {
		t.Error("LastWeekWater reordered the input")
	}

	if empty := LastWeekWater(nil, 2000); empty.Average != 0 || len(empty.Days) != 0 {
		t.Errorf("unexpected empty result: %+v", empty)
	}
}

func TestLastWeekSleep(t *testing.T) {
	entries := []models.SleepEntry{
		{Date: "2025-01-03", Duration: 480, Quality: 5},
		{Date: "2025-01-02", Duration: 420},
		{Date: "2025-01-01", Duration: 360, Quality: 1},
	}
	w := LastWeekSleep(entries)
	if !almostEqual(w.AverageHours, 7) {
		t.Errorf("AverageHours = %v, want 7", w.AverageHours)
	}
	if !almostEqual(w.AverageQuality, 3) {
		t.Errorf("AverageQuality = %v, want 3", w.AverageQuality)
	}
	if w.Nights[0].Date != "2025-01-01" {
		t.Errorf("nights not oldest first: %+v", w.Nights)
	}

	if empty := LastWeekSleep(nil); empty.AverageHours != 0 {
		t.Errorf("unexpected empty result: %+v", empty)
	}
}

func TestMeals(t *testing.T) {
	meals := []models.MealEntry{
		{ID: "1", Date: "2025-01-31", Type: models.MealBreakfast, Calories: 400},
		{ID: "2", Date: "2025-01-31", Type: models.MealSnack, Calories: 150},
		{ID: "3", Date: "2025-01-30", Type: models.MealDinner, Calories: 800},
		{ID: "4", Date: "2025-01-31", Type: models.MealSnack, Calories: 100},
	}
	today := MealsOn(meals, "2025-01-31")
	if len(today) != 3 {
		t.Fatalf("expected 3 meals today, got %d", len(today))
	}
	if got := Calories(today); got != 650 {
		t.Errorf("Calories = %d, want 650", got)
	}
	byType := CaloriesByType(today)
	if byType[models.MealSnack] != 250 || byType[models.MealDinner] != 0 {
		t.Errorf("unexpected CaloriesByType: %v", byType)
	}
}

func TestWeight(t *testing.T) {
	entries := []models.WeightEntry{
		{Date: "2025-01-02", Weight: 71},
		{Date: "2025-01-03", Weight: 70.5},
		{Date: "2025-01-01", Weight: 72},
	}
	s := Weight(entries)
	if s.Latest != 70.5 || s.Starting != 72 {
		t.Errorf("Latest/Starting = %v/%v", s.Latest, s.Starting)
	}
	if !almostEqual(s.Change, -0.5) {
		t.Errorf("Change = %v, want -0.5", s.Change)
	}
	if !almostEqual(s.Average, 71.166666666666667) {
		t.Errorf("Average = %v", s.Average)
	}
	if s.Min != 70.5 || s.Max != 72 {
		t.Errorf("Min/Max = %v/%v", s.Min, s.Max)
	}
	if entries[0].Date != "2025-01-02" {
		t.Error("Weight reordered the input")
	}

	if single := Weight(entries[:1]); single.Change != 0 {
		t.Errorf("single entry Change = %v, want 0", single.Change)
	}
	if empty := Weight(nil); empty != (WeightStats{}) {
		t.Errorf("unexpected empty result: %+v", empty)
	}
}

func TestMoodCounts(t *testing.T) {
	entries := []models.MoodEntry{
		{Date: "2025-01-03", Mood: models.MoodTired},
		{Date: "2025-01-02", Mood: models.MoodCalm},
		{Date: "2025-01-01", Mood: models.MoodTired},
	}
	mood, ok := MostCommonMood(entries)
	if !ok || mood != models.MoodTired {
		t.Errorf("MostCommonMood = %s, %v", mood, ok)
	}
	counts := MoodCounts(entries)
	if len(counts) != 7 {
		t.Errorf("expected a count per mood, got %d", len(counts))
	}

	if _, ok := MostCommonMood(nil); ok {
		t.Error("expected no mood for empty input")
	}

	if e, ok := MoodOn(entries, "2025-01-02"); !ok || e.Mood != models.MoodCalm {
		t.Errorf("MoodOn = %+v, %v", e, ok)
	}
}

func TestTopTagsAndFilter(t *testing.T) {
	entries := []models.JournalEntry{
		{Date: "2025-01-03", Text: "Long walk outside", Tags: []string{"nature", "walking"}},
		{Date: "2025-01-02", Text: "Stressful meeting", Tags: []string{"work", "stressed"}},
		{Date: "2025-01-01", Text: "Quiet day in the park", Tags: []string{"nature", "calm"}},
	}

	top := TopTags(entries, 2)
	if len(top) != 2 || top[0].Tag != "nature" || top[0].Count != 2 || top[1].Tag != "calm" {
		t.Errorf("unexpected TopTags: %+v", top)
	}
	if all := TopTags(entries, 0); len(all) != 5 {
		t.Errorf("expected 5 tags, got %d", len(all))
	}

	tests := []struct {
		name   string
		search string
		tags   []string
		want   int
	}{
		{"no filter", "", nil, 3},
		{"text search", "PARK", nil, 1},
		{"tag search", "stress", nil, 1},
		{"tag filter", "", []string{"nature"}, 2},
		{"all tags required", "", []string{"nature", "calm"}, 1},
		{"search and tag", "walk", []string{"calm"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FilterJournal(entries, tt.search, tt.tags); len(got) != tt.want {
				t.Errorf("FilterJournal returned %d entries, want %d", len(got), tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	now := time.Date(2025, 1, 31, 12, 0, 0, 0, time.UTC)
	s := store.New(store.Snapshot{
		Moods:     []models.MoodEntry{{Date: "2025-01-31", Mood: models.MoodCalm, Note: "fine"}},
		Water:     []models.WaterEntry{{Date: "2025-01-31", Amount: 500}},
		Meals:     []models.MealEntry{{ID: "m", Date: "2025-01-31", Calories: 420}},
		Sleep:     []models.SleepEntry{{Date: "2025-01-31", Duration: 450}},
		Weights:   []models.WeightEntry{{Date: "2025-01-31", Weight: 70}, {Date: "2025-01-30", Weight: 70.4}},
		Exercises: []models.ExerciseEntry{{ID: "a", Completed: true}, {ID: "b"}},
	}, store.WithClock(func() time.Time { return now }))

	s.AddWater(500)
	sum := Summarize(s, "2025-01-31")

	if sum.WaterToday != 1000 || sum.WaterPercent != 50 {
		t.Errorf("water = %d (%d%%)", sum.WaterToday, sum.WaterPercent)
	}
	if sum.Mood != models.MoodCalm || sum.MoodNote != "fine" {
		t.Errorf("mood = %s %q", sum.Mood, sum.MoodNote)
	}
	if sum.MealsToday != 1 || sum.CaloriesToday != 420 {
		t.Errorf("meals = %d / %d kcal", sum.MealsToday, sum.CaloriesToday)
	}
	if sum.LastSleepMinutes != 450 || !almostEqual(sum.SleepAvgHours, 7.5) {
		t.Errorf("sleep = %d min, avg %v", sum.LastSleepMinutes, sum.SleepAvgHours)
	}
	if sum.LatestWeight != 70 || !almostEqual(sum.WeightChange, -0.4) {
		t.Errorf("weight = %v (%v)", sum.LatestWeight, sum.WeightChange)
	}
	if sum.ExercisesDone != 1 || sum.ExercisesTotal != 2 {
		t.Errorf("exercises = %d/%d", sum.ExercisesDone, sum.ExercisesTotal)
	}
}
