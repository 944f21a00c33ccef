// ABOUTME: Store interface for the in-memory tracker collections.
// ABOUTME: Defines getters, mutators, the reorder command, and change events.
package store

import (
	"errors"

	"github.com/harperreed/wellness/internal/models"
)

// Store holds every tracker collection for the life of the process.
// Mutators are the only way to change state; each one swaps in a new
// collection value instead of editing the old one.
type Store interface {
	// Reads
	Moods() []models.MoodEntry
	Water() []models.WaterEntry
	Sleep() []models.SleepEntry
	Meals() []models.MealEntry
	Weights() []models.WeightEntry
	Exercises() []models.ExerciseEntry
	Journal() []models.JournalEntry
	Stretches() []models.StretchEntry
	WaterGoal() int

	// Mutators
	AddMood(e models.MoodEntry)
	AddWater(amount int)
	AddWaterOn(date string, amount int)
	AddSleep(e models.SleepEntry)
	AddMeal(e models.MealEntry)
	AddWeight(e models.WeightEntry)
	SetExercises(exercises []models.ExerciseEntry)
	ToggleExercise(id string)
	AddJournal(e models.JournalEntry)
	SetStretches(stretches []models.StretchEntry)

	// Reorder moves one item of an ordered list.
	Reorder(m Move) error

	// Subscribe registers fn for change events and returns its cancel func.
	Subscribe(fn func(Change)) (cancel func())

	// Snapshot returns every collection at once.
	Snapshot() Snapshot
}

// Collection names a tracker collection in change events.
type Collection string

const (
	CollectionMoods     Collection = "moods"
	CollectionWater     Collection = "water"
	CollectionSleep     Collection = "sleep"
	CollectionMeals     Collection = "meals"
	CollectionWeights   Collection = "weights"
	CollectionExercises Collection = "exercises"
	CollectionJournal   Collection = "journal"
	CollectionStretches Collection = "stretches"
)

// AllCollections lists collections in navigation order.
var AllCollections = []Collection{
	CollectionMoods, CollectionWater, CollectionSleep, CollectionMeals,
	CollectionWeights, CollectionExercises, CollectionJournal, CollectionStretches,
}

// IsValidCollection checks if a string names a collection.
func IsValidCollection(s string) bool {
	for _, c := range AllCollections {
		if string(c) == s {
			return true
		}
	}
	return false
}

// Op is the kind of mutation that produced a change.
type Op string

const (
	OpAdd     Op = "add"
	OpMerge   Op = "merge"
	OpReplace Op = "replace"
	OpToggle  Op = "toggle"
	OpReorder Op = "reorder"
)

// Change describes one applied mutation.
type Change struct {
	Collection Collection
	Op         Op
}

// Move is the reorder command: take the item at From and insert it at To.
// List must be CollectionExercises or CollectionStretches.
type Move struct {
	List Collection `json:"list"`
	From int        `json:"from"`
	To   int        `json:"to"`
}

var (
	// ErrUnknownList is returned when a Move names a list that cannot be reordered.
	ErrUnknownList = errors.New("unknown reorderable list")
	// ErrIndexOutOfRange is returned when a Move index is outside the list.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Snapshot is a point-in-time copy of all collections.
type Snapshot struct {
	Moods     []models.MoodEntry     `json:"moods" yaml:"moods"`
	Water     []models.WaterEntry    `json:"water" yaml:"water"`
	Sleep     []models.SleepEntry    `json:"sleep" yaml:"sleep"`
	Meals     []models.MealEntry     `json:"meals" yaml:"meals"`
	Weights   []models.WeightEntry   `json:"weights" yaml:"weights"`
	Exercises []models.ExerciseEntry `json:"exercises" yaml:"exercises"`
	Journal   []models.JournalEntry  `json:"journal" yaml:"journal"`
	Stretches []models.StretchEntry  `json:"stretches" yaml:"stretches"`
}
