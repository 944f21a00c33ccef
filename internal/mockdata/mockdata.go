// ABOUTME: Seed data generators for every tracker collection.
// ABOUTME: Bounded random values from an injected rand source and clock.
package mockdata

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/store"
)

// Generator produces seed collections relative to a fixed "now".
type Generator struct {
	rng *rand.Rand
	now time.Time
}

// New creates a generator. The same seed and now give the same data.
func New(seed int64, now time.Time) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		now: now,
	}
}

// Generate builds every collection, newest first.
func (g *Generator) Generate() store.Snapshot {
	return store.Snapshot{
		Moods:     g.Moods(),
		Water:     g.Water(),
		Sleep:     g.Sleep(),
		Meals:     g.Meals(),
		Weights:   g.Weights(),
		Exercises: Exercises(),
		Journal:   g.Journal(),
		Stretches: Stretches(),
	}
}

func (g *Generator) daysAgo(n int) string {
	return models.DaysAgo(g.now, n)
}

// between returns an int in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

var moodRotation = []models.Mood{
	models.MoodHappy, models.MoodNeutral, models.MoodHappy, models.MoodEnergetic,
	models.MoodTired, models.MoodNeutral, models.MoodCalm, models.MoodStressed,
	models.MoodHappy, models.MoodSad, models.MoodNeutral, models.MoodEnergetic,
	models.MoodTired, models.MoodCalm,
}

// Moods returns two weeks of moods, a note on every third day.
func (g *Generator) Moods() []models.MoodEntry {
	out := make([]models.MoodEntry, 0, len(moodRotation))
	for i, m := range moodRotation {
		e := models.MoodEntry{Date: g.daysAgo(i), Mood: m}
		if i%3 == 0 {
			e.Note = "Had a great day!"
		}
		out = append(out, e)
	}
	return out
}

// Water returns two weeks of intake between 1000 and 1999 ml.
func (g *Generator) Water() []models.WaterEntry {
	out := make([]models.WaterEntry, 0, 14)
	for i := 0; i < 14; i++ {
		out = append(out, models.WaterEntry{
			Date:   g.daysAgo(i),
			Amount: g.between(1000, 1999),
		})
	}
	return out
}

// Sleep returns two weeks of nights of 6h00 to 8h59 starting at 22:xx or 23:xx.
func (g *Generator) Sleep() []models.SleepEntry {
	out := make([]models.SleepEntry, 0, 14)
	for i := 0; i < 14; i++ {
		duration := g.between(6, 8)*60 + g.between(0, 59)
		hour := g.between(22, 23)
		minute := g.between(0, 59)

		start := hour*60 + minute
		end := (start + duration) % (24 * 60)

		out = append(out, models.SleepEntry{
			Date:      g.daysAgo(i),
			StartTime: fmt.Sprintf("%02d:%02d", hour, minute),
			EndTime:   fmt.Sprintf("%02d:%02d", end/60, end%60),
			Duration:  duration,
			Quality:   g.between(1, 5),
		})
	}
	return out
}

type mealSpec struct {
	names        []string
	minCal, span int
	hour         int
}

var mealSpecs = map[models.MealType]mealSpec{
	models.MealBreakfast: {[]string{"Oatmeal", "Eggs & Toast", "Yogurt & Granola", "Smoothie Bowl"}, 300, 300, 8},
	models.MealLunch:     {[]string{"Salad", "Sandwich", "Soup & Bread", "Leftovers"}, 400, 400, 12},
	models.MealDinner:    {[]string{"Chicken & Veggies", "Pasta", "Stir Fry", "Fish & Rice"}, 500, 500, 18},
	models.MealSnack:     {[]string{"Apple", "Nuts", "Protein Bar", "Chips"}, 100, 200, 15},
}

// Meals returns three or four meals a day for the last week.
func (g *Generator) Meals() []models.MealEntry {
	var out []models.MealEntry
	for i := 0; i < 7; i++ {
		date := g.daysAgo(i)
		perDay := g.between(3, 4)
		for j := 0; j < perDay; j++ {
			mt := models.AllMealTypes[min(j, 3)]
			spec := mealSpecs[mt]
			out = append(out, models.MealEntry{
				ID:       fmt.Sprintf("meal-%d-%d", i, j),
				Date:     date,
				Name:     spec.names[g.rng.Intn(len(spec.names))],
				Calories: spec.minCal + g.rng.Intn(spec.span),
				Type:     mt,
				Time:     fmt.Sprintf("%02d:%02d", spec.hour, g.rng.Intn(60)),
			})
		}
	}
	return out
}

// Weights returns 30 days of weigh-ins within 1 kg of 70 kg.
func (g *Generator) Weights() []models.WeightEntry {
	const base = 70.0
	out := make([]models.WeightEntry, 0, 30)
	for i := 0; i < 30; i++ {
		out = append(out, models.WeightEntry{
			Date:   g.daysAgo(i),
			Weight: base + (g.rng.Float64()*2 - 1),
		})
	}
	return out
}

// Exercises returns the default routine.
func Exercises() []models.ExerciseEntry {
	return []models.ExerciseEntry{
		{ID: "ex1", Name: "Push-ups", Duration: 5},
		{ID: "ex2", Name: "Plank", Duration: 1},
		{ID: "ex3", Name: "Squats", Duration: 5},
		{ID: "ex4", Name: "Jumping Jacks", Duration: 3},
		{ID: "ex5", Name: "Lunges", Duration: 5},
		{ID: "ex6", Name: "Mountain Climbers", Duration: 2},
	}
}

// Journal returns five entries spread over the last week.
func (g *Generator) Journal() []models.JournalEntry {
	return []models.JournalEntry{
		{
			Date: g.daysAgo(0),
			Text: "Feeling great today! Had a productive morning workout and meal prepped for the week.",
			Tags: []string{"productive", "energetic", "happy"},
		},
		{
			Date: g.daysAgo(1),
			Text: "Work was stressful, but I managed to take short breaks and practice deep breathing.",
			Tags: []string{"stressed", "managing", "breathing"},
		},
		{
			Date: g.daysAgo(3),
			Text: "Had trouble sleeping last night. Need to cut back on screen time before bed.",
			Tags: []string{"tired", "sleep", "screen time"},
		},
		{
			Date: g.daysAgo(5),
			Text: "Went for a long walk in the park. Nature always helps clear my mind.",
			Tags: []string{"relaxed", "nature", "walking"},
		},
		{
			Date: g.daysAgo(7),
			Text: "Feeling a bit down today. Weather is gloomy which doesn't help.",
			Tags: []string{"sad", "low energy", "weather"},
		},
	}
}

const pexels = "https://images.pexels.com/photos/%d/pexels-photo-%d.jpeg?auto=compress&cs=tinysrgb&w=300"

// Stretches returns the default stretch sequence.
func Stretches() []models.StretchEntry {
	stretch := func(id, name string, seconds, photo int) models.StretchEntry {
		return models.StretchEntry{
			ID:       id,
			Name:     name,
			Duration: seconds,
			ImageURL: fmt.Sprintf(pexels, photo, photo),
		}
	}
	return []models.StretchEntry{
		stretch("stretch1", "Neck Stretch", 30, 4056535),
		stretch("stretch2", "Shoulder Stretch", 30, 4498482),
		stretch("stretch3", "Side Bend", 30, 4386467),
		stretch("stretch4", "Hamstring Stretch", 45, 6111616),
		stretch("stretch5", "Quad Stretch", 45, 4386432),
		stretch("stretch6", "Lower Back Stretch", 30, 6111611),
	}
}
