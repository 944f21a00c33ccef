// ABOUTME: Derived figures shown by the views and the summary command.
// ABOUTME: Pure functions over collections; empty inputs give zero values.
package stats

import (
	"math"
	"sort"
	"strings"

	"github.com/harperreed/wellness/internal/models"
)

// DefaultQuality stands in for sleep entries without a rating.
const DefaultQuality = 3

// WaterOn returns the amount logged for date.
func WaterOn(entries []models.WaterEntry, date string) int {
	for _, e := range entries {
		if e.Date == date {
			return e.Amount
		}
	}
	return 0
}

// Percent returns amount as a whole percentage of goal.
func Percent(amount, goal int) int {
	if goal <= 0 {
		return 0
	}
	return int(math.Round(float64(amount) / float64(goal) * 100))
}

// WaterWeek summarizes the most recent seven water entries.
type WaterWeek struct {
	Days       []models.WaterEntry // oldest first
	Average    int
	DaysAtGoal int
}

// LastWeekWater takes the first seven entries and orders them oldest first.
func LastWeekWater(entries []models.WaterEntry, goal int) WaterWeek {
	days := recent(entries, 7)
	sort.SliceStable(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	w := WaterWeek{Days: days}
	if len(days) == 0 {
		return w
	}
	total := 0
	for _, d := range days {
		total += d.Amount
		if d.Amount >= goal {
			w.DaysAtGoal++
		}
	}
	w.Average = int(math.Round(float64(total) / float64(len(days))))
	return w
}

// SleepWeek summarizes the most recent seven nights.
type SleepWeek struct {
	Nights         []models.SleepEntry // oldest first
	AverageHours   float64
	AverageQuality float64
}

// LastWeekSleep averages duration and quality over the first seven entries.
func LastWeekSleep(entries []models.SleepEntry) SleepWeek {
	nights := recent(entries, 7)
	sort.SliceStable(nights, func(i, j int) bool { return nights[i].Date < nights[j].Date })

	w := SleepWeek{Nights: nights}
	if len(nights) == 0 {
		return w
	}
	minutes, quality := 0, 0
	for _, n := range nights {
		minutes += n.Duration
		if n.Quality > 0 {
			quality += n.Quality
		} else {
			quality += DefaultQuality
		}
	}
	w.AverageHours = float64(minutes) / float64(len(nights)) / 60
	w.AverageQuality = float64(quality) / float64(len(nights))
	return w
}

// MealsOn returns the meals logged on date in collection order.
func MealsOn(entries []models.MealEntry, date string) []models.MealEntry {
	var out []models.MealEntry
	for _, e := range entries {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out
}

// Calories sums the calories of meals.
func Calories(meals []models.MealEntry) int {
	total := 0
	for _, m := range meals {
		total += m.Calories
	}
	return total
}

// CaloriesByType groups calories per meal type.
func CaloriesByType(meals []models.MealEntry) map[models.MealType]int {
	out := make(map[models.MealType]int, len(models.AllMealTypes))
	for _, m := range meals {
		out[m.Type] += m.Calories
	}
	return out
}

// WeightStats are the figures of the weight view.
type WeightStats struct {
	Count    int
	Latest   float64
	Change   float64 // latest minus the previous entry by date
	Starting float64 // oldest entry by date
	Average  float64
	Min      float64
	Max      float64
}

// Weight computes weight figures with entries ordered by date.
func Weight(entries []models.WeightEntry) WeightStats {
	if len(entries) == 0 {
		return WeightStats{}
	}
	sorted := make([]models.WeightEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date > sorted[j].Date })

	s := WeightStats{
		Count:    len(sorted),
		Latest:   sorted[0].Weight,
		Starting: sorted[len(sorted)-1].Weight,
		Min:      sorted[0].Weight,
		Max:      sorted[0].Weight,
	}
	if len(sorted) > 1 {
		s.Change = sorted[0].Weight - sorted[1].Weight
	}
	total := 0.0
	for _, e := range sorted {
		total += e.Weight
		s.Min = math.Min(s.Min, e.Weight)
		s.Max = math.Max(s.Max, e.Weight)
	}
	s.Average = total / float64(len(sorted))
	return s
}

// MoodCount is how often a mood was logged.
type MoodCount struct {
	Mood  models.Mood
	Count int
}

// MoodCounts counts entries per mood in picker order.
func MoodCounts(entries []models.MoodEntry) []MoodCount {
	counts := make(map[models.Mood]int)
	for _, e := range entries {
		counts[e.Mood]++
	}
	out := make([]MoodCount, 0, len(models.AllMoods))
	for _, m := range models.AllMoods {
		out = append(out, MoodCount{Mood: m, Count: counts[m]})
	}
	return out
}

// MostCommonMood returns the most logged mood; ties go to picker order.
// ok is false when there are no entries.
func MostCommonMood(entries []models.MoodEntry) (models.Mood, bool) {
	best := MoodCount{}
	for _, c := range MoodCounts(entries) {
		if c.Count > best.Count {
			best = c
		}
	}
	return best.Mood, best.Count > 0
}

// MoodOn returns the first mood logged for date.
func MoodOn(entries []models.MoodEntry, date string) (models.MoodEntry, bool) {
	for _, e := range entries {
		if e.Date == date {
			return e, true
		}
	}
	return models.MoodEntry{}, false
}

// TagCount is how many journal entries carry a tag.
type TagCount struct {
	Tag   string
	Count int
}

// TopTags counts tags across entries, most used first, then by name.
// limit <= 0 returns all.
func TopTags(entries []models.JournalEntry, limit int) []TagCount {
	counts := make(map[string]int)
	for _, e := range entries {
		for _, t := range e.Tags {
			counts[t]++
		}
	}
	out := make([]TagCount, 0, len(counts))
	for tag, n := range counts {
		out = append(out, TagCount{Tag: tag, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// FilterJournal keeps entries whose text or tags contain search
// (case-insensitive) and that carry every tag in tags.
func FilterJournal(entries []models.JournalEntry, search string, tags []string) []models.JournalEntry {
	search = strings.ToLower(strings.TrimSpace(search))
	var out []models.JournalEntry
	for _, e := range entries {
		if search != "" && !matchesSearch(e, search) {
			continue
		}
		if !hasAllTags(e, tags) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matchesSearch(e models.JournalEntry, search string) bool {
	if strings.Contains(strings.ToLower(e.Text), search) {
		return true
	}
	for _, t := range e.Tags {
		if strings.Contains(t, search) {
			return true
		}
	}
	return false
}

func hasAllTags(e models.JournalEntry, tags []string) bool {
	for _, t := range tags {
		if !e.HasTag(t) {
			return false
		}
	}
	return true
}

// StretchTotal sums the stretch sequence in seconds.
func StretchTotal(stretches []models.StretchEntry) int {
	total := 0
	for _, s := range stretches {
		total += s.Duration
	}
	return total
}

// CompletedExercises counts exercises marked completed.
func CompletedExercises(exercises []models.ExerciseEntry) int {
	n := 0
	for _, e := range exercises {
		if e.Completed {
			n++
		}
	}
	return n
}

// recent copies up to n leading items; collections are newest first.
func recent[T any](items []T, n int) []T {
	if len(items) < n {
		n = len(items)
	}
	out := make([]T, n)
	copy(out, items[:n])
	return out
}
