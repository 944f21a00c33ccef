// ABOUTME: Parses one-line quick-entry input into validated tracker entries.
// ABOUTME: Shared by the dashboard forms and the MCP tools.
package forms

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/harperreed/wellness/internal/models"
)

// ErrEmpty is returned when the input has nothing to parse.
var ErrEmpty = errors.New("empty input")

func fields(input string) ([]string, error) {
	f := strings.Fields(input)
	if len(f) == 0 {
		return nil, ErrEmpty
	}
	return f, nil
}

func isClock(s string) bool {
	_, err := time.Parse(models.TimeLayout, s)
	return err == nil
}

func isDate(s string) bool {
	_, err := time.Parse(models.DateLayout, s)
	return err == nil
}

// Mood parses "mood [note...]" where mood is a name or its 1-7 picker number.
func Mood(now time.Time, input string) (models.MoodEntry, error) {
	f, err := fields(input)
	if err != nil {
		return models.MoodEntry{}, err
	}

	mood := models.Mood(strings.ToLower(f[0]))
	if n, err := strconv.Atoi(f[0]); err == nil {
		if n < 1 || n > len(models.AllMoods) {
			return models.MoodEntry{}, fmt.Errorf("mood number %d out of range 1-%d", n, len(models.AllMoods))
		}
		mood = models.AllMoods[n-1]
	}

	e := models.MoodEntry{
		Date: models.DateOf(now),
		Mood: mood,
		Note: strings.Join(f[1:], " "),
	}
	if err := e.Validate(); err != nil {
		return models.MoodEntry{}, err
	}
	return e, nil
}

// Water parses a positive millilitre amount; a trailing "ml" is allowed.
func Water(input string) (int, error) {
	f, err := fields(input)
	if err != nil {
		return 0, err
	}
	raw := strings.TrimSuffix(strings.ToLower(strings.Join(f, "")), "ml")
	amount, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse water amount %q: %w", input, err)
	}
	if amount <= 0 {
		return 0, fmt.Errorf("water amount must be positive, got %d", amount)
	}
	return amount, nil
}

// Sleep parses "date start end [quality]". The date may be omitted, in which
// case the entry is for now's day. Duration wraps past midnight.
func Sleep(now time.Time, input string) (models.SleepEntry, error) {
	f, err := fields(input)
	if err != nil {
		return models.SleepEntry{}, err
	}

	date := models.DateOf(now)
	if isDate(f[0]) {
		date, f = f[0], f[1:]
	}
	if len(f) < 2 || len(f) > 3 {
		return models.SleepEntry{}, fmt.Errorf("sleep wants start and end times, got %q", input)
	}

	duration, err := models.SleepDuration(f[0], f[1])
	if err != nil {
		return models.SleepEntry{}, err
	}

	e := models.SleepEntry{
		Date:      date,
		StartTime: f[0],
		EndTime:   f[1],
		Duration:  duration,
	}
	if len(f) == 3 {
		q, err := strconv.Atoi(f[2])
		if err != nil {
			return models.SleepEntry{}, fmt.Errorf("parse sleep quality %q: %w", f[2], err)
		}
		e.Quality = q
	}
	if err := e.Validate(); err != nil {
		return models.SleepEntry{}, err
	}
	return e, nil
}

// Meal parses "type name calories [HH:MM]". The name may span several words;
// the time defaults to now.
func Meal(now time.Time, input string) (models.MealEntry, error) {
	f, err := fields(input)
	if err != nil {
		return models.MealEntry{}, err
	}

	at := now.Format(models.TimeLayout)
	if last := f[len(f)-1]; isClock(last) {
		at, f = last, f[:len(f)-1]
	}
	if len(f) < 3 {
		return models.MealEntry{}, fmt.Errorf("meal wants type, name and calories, got %q", input)
	}

	mealType := strings.ToLower(f[0])
	if !models.IsValidMealType(mealType) {
		return models.MealEntry{}, fmt.Errorf("unknown meal type %q", f[0])
	}
	calories, err := strconv.Atoi(f[len(f)-1])
	if err != nil {
		return models.MealEntry{}, fmt.Errorf("parse calories %q: %w", f[len(f)-1], err)
	}
	name := strings.Join(f[1:len(f)-1], " ")

	e := models.NewMeal(models.DateOf(now), name, calories, models.MealType(mealType), at)
	if err := e.Validate(); err != nil {
		return models.MealEntry{}, err
	}
	return e, nil
}

// Weight parses "kg [date]".
func Weight(now time.Time, input string) (models.WeightEntry, error) {
	f, err := fields(input)
	if err != nil {
		return models.WeightEntry{}, err
	}
	if len(f) > 2 {
		return models.WeightEntry{}, fmt.Errorf("weight wants kg and an optional date, got %q", input)
	}

	kg, err := strconv.ParseFloat(strings.TrimSuffix(strings.ToLower(f[0]), "kg"), 64)
	if err != nil {
		return models.WeightEntry{}, fmt.Errorf("parse weight %q: %w", f[0], err)
	}

	e := models.WeightEntry{Date: models.DateOf(now), Weight: kg}
	if len(f) == 2 {
		e.Date = f[1]
	}
	if err := e.Validate(); err != nil {
		return models.WeightEntry{}, err
	}
	return e, nil
}

// Journal parses "text #tag #tag". Words starting with # become tags and at
// least one is required.
func Journal(now time.Time, input string) (models.JournalEntry, error) {
	f, err := fields(input)
	if err != nil {
		return models.JournalEntry{}, err
	}

	var words, tags []string
	for _, w := range f {
		if tag, ok := strings.CutPrefix(w, "#"); ok {
			tags = append(tags, tag)
			continue
		}
		words = append(words, w)
	}

	e := models.NewJournalEntry(models.DateOf(now), strings.Join(words, " "), tags)
	if err := e.Validate(); err != nil {
		return models.JournalEntry{}, err
	}
	return e, nil
}

// Exercise parses "name minutes". The name may span several words.
func Exercise(input string) (models.ExerciseEntry, error) {
	f, err := fields(input)
	if err != nil {
		return models.ExerciseEntry{}, err
	}
	if len(f) < 2 {
		return models.ExerciseEntry{}, fmt.Errorf("exercise wants name and minutes, got %q", input)
	}

	minutes, err := strconv.Atoi(f[len(f)-1])
	if err != nil {
		return models.ExerciseEntry{}, fmt.Errorf("parse minutes %q: %w", f[len(f)-1], err)
	}

	e := models.NewExercise(strings.Join(f[:len(f)-1], " "), minutes)
	if err := e.Validate(); err != nil {
		return models.ExerciseEntry{}, err
	}
	return e, nil
}
