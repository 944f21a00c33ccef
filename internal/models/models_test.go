// ABOUTME: Tests for tracker entry models.
// ABOUTME: Validates enums, validation tags, sleep duration math, and tags.
package models

import (
	"strings"
	"testing"
	"time"
)

func TestIsValidMood(t *testing.T) {
	for _, m := range AllMoods {
		if !IsValidMood(string(m)) {
			t.Errorf("IsValidMood(%s) = false, want true", m)
		}
		if _, ok := MoodEmoji[m]; !ok {
			t.Errorf("mood %s has no emoji", m)
		}
	}
	if IsValidMood("grumpy") {
		t.Error("IsValidMood(grumpy) = true, want false")
	}
	if len(AllMoods) != 7 {
		t.Errorf("len(AllMoods) = %d, want 7", len(AllMoods))
	}
}

func TestIsValidMealType(t *testing.T) {
	if !IsValidMealType("snack") {
		t.Error("expected snack to be valid")
	}
	if IsValidMealType("brunch") {
		t.Error("expected brunch to be invalid")
	}
}

func TestEntryValidate(t *testing.T) {
	tests := []struct {
		name      string
		entry     interface{ Validate() error }
		wantErr   bool
		errSubstr string
	}{
		{"valid mood", MoodEntry{Date: "2025-01-31", Mood: MoodHappy}, false, ""},
		{"mood bad value", MoodEntry{Date: "2025-01-31", Mood: "grumpy"}, true, "mood"},
		{"mood bad date", MoodEntry{Date: "31-01-2025", Mood: MoodCalm}, true, "date"},
		{"valid water", WaterEntry{Date: "2025-01-31", Amount: 250}, false, ""},
		{"water zero", WaterEntry{Date: "2025-01-31", Amount: 0}, true, "amount"},
		{"valid sleep", SleepEntry{Date: "2025-01-31", StartTime: "23:00", EndTime: "07:00", Duration: 480}, false, ""},
		{"sleep quality out of range", SleepEntry{Date: "2025-01-31", StartTime: "23:00", EndTime: "07:00", Duration: 480, Quality: 6}, true, "quality"},
		{"sleep bad time", SleepEntry{Date: "2025-01-31", StartTime: "25:00", EndTime: "07:00", Duration: 480}, true, "starttime"},
		{"valid meal", NewMeal("2025-01-31", "Salad", 450, MealLunch, "12:30"), false, ""},
		{"meal missing name", NewMeal("2025-01-31", "", 450, MealLunch, "12:30"), true, "name"},
		{"meal bad type", NewMeal("2025-01-31", "Salad", 450, "brunch", "12:30"), true, "type"},
		{"valid weight", WeightEntry{Date: "2025-01-31", Weight: 71.2}, false, ""},
		{"weight zero", WeightEntry{Date: "2025-01-31", Weight: 0}, true, "weight"},
		{"valid exercise", NewExercise("Burpees", 3), false, ""},
		{"exercise no duration", NewExercise("Burpees", 0), true, "duration"},
		{"valid journal", NewJournalEntry("2025-01-31", "ok day", []string{"calm"}), false, ""},
		{"journal without tags", NewJournalEntry("2025-01-31", "ok day", nil), true, "tags"},
		{"journal without text", NewJournalEntry("2025-01-31", "  ", []string{"calm"}), true, "text"},
		{"valid stretch", NewStretch("Cat Cow", 30), false, ""},
		{"stretch bad url", StretchEntry{ID: "s", Name: "x", Duration: 30, ImageURL: "not a url"}, true, "imageurl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errSubstr) {
					t.Errorf("error %q does not mention %q", err, tt.errSubstr)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSleepDuration(t *testing.T) {
	tests := []struct {
		start, end string
		want       int
		wantErr    bool
	}{
		{"23:00", "07:00", 480, false},
		{"22:15", "06:45", 510, false},
		{"01:00", "08:30", 450, false},
		{"07:00", "07:00", 1440, false},
		{"7am", "08:00", 0, true},
		{"23:00", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.start+"-"+tt.end, func(t *testing.T) {
			got, err := SleepDuration(tt.start, tt.end)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SleepDuration err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("SleepDuration = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	if got := FormatMinutes(425); got != "7h 05m" {
		t.Errorf("FormatMinutes(425) = %q, want 7h 05m", got)
	}
}

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{" Calm", "calm", "", "Sleep ", "work"})
	want := []string{"calm", "sleep", "work"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("NormalizeTags = %v, want %v", got, want)
	}

	e := NewJournalEntry("2025-01-31", "text", []string{"Calm"})
	if !e.HasTag("calm") || e.HasTag("Calm") {
		t.Errorf("HasTag mismatch for tags %v", e.Tags)
	}
}

func TestDaysAgo(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	if got := DaysAgo(now, 1); got != "2025-02-28" {
		t.Errorf("DaysAgo = %s, want 2025-02-28", got)
	}
	if got := DateOf(now); got != "2025-03-01" {
		t.Errorf("DateOf = %s, want 2025-03-01", got)
	}
}
