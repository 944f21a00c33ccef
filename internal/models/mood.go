// ABOUTME: Mood entry model and the seven-value Mood enum.
// ABOUTME: One mood per log action, prepended newest first by the store.
package models

// Mood is how the user felt on a given day.
type Mood string

const (
	MoodHappy     Mood = "happy"
	MoodSad       Mood = "sad"
	MoodNeutral   Mood = "neutral"
	MoodEnergetic Mood = "energetic"
	MoodTired     Mood = "tired"
	MoodStressed  Mood = "stressed"
	MoodCalm      Mood = "calm"
)

// AllMoods lists the moods in picker order.
var AllMoods = []Mood{
	MoodHappy, MoodCalm, MoodEnergetic, MoodNeutral,
	MoodTired, MoodStressed, MoodSad,
}

// MoodEmoji maps each mood to the glyph shown in views.
var MoodEmoji = map[Mood]string{
	MoodHappy:     "😊",
	MoodCalm:      "😌",
	MoodEnergetic: "⚡",
	MoodNeutral:   "😐",
	MoodTired:     "😴",
	MoodStressed:  "😰",
	MoodSad:       "😢",
}

// IsValidMood checks if a string names a mood.
func IsValidMood(s string) bool {
	for _, m := range AllMoods {
		if string(m) == s {
			return true
		}
	}
	return false
}

// MoodEntry records the mood for a day.
type MoodEntry struct {
	Date string `json:"date" yaml:"date" validate:"required,datetime=2006-01-02"`
	Mood Mood   `json:"mood" yaml:"mood" validate:"required,oneof=happy sad neutral energetic tired stressed calm"`
	Note string `json:"note,omitempty" yaml:"note,omitempty"`
}

// Validate checks required fields and the mood value.
func (e MoodEntry) Validate() error {
	return validateStruct("mood entry", e)
}
