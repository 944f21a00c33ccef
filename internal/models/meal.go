// ABOUTME: Meal entry model and the MealType enum.
// ABOUTME: Meals carry their own ID so several can share a date.
package models

import "github.com/google/uuid"

// MealType is the slot a meal belongs to.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// AllMealTypes lists meal types in day order.
var AllMealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

// IsValidMealType checks if a string names a meal type.
func IsValidMealType(s string) bool {
	for _, mt := range AllMealTypes {
		if string(mt) == s {
			return true
		}
	}
	return false
}

// MealEntry is one logged meal.
type MealEntry struct {
	ID       string   `json:"id" yaml:"id" validate:"required"`
	Date     string   `json:"date" yaml:"date" validate:"required,datetime=2006-01-02"`
	Name     string   `json:"name" yaml:"name" validate:"required"`
	Calories int      `json:"calories" yaml:"calories" validate:"gt=0"`
	Type     MealType `json:"type" yaml:"type" validate:"required,oneof=breakfast lunch dinner snack"`
	Time     string   `json:"time" yaml:"time" validate:"required,datetime=15:04"`
}

// NewMeal creates a meal with a generated ID.
func NewMeal(date, name string, calories int, mealType MealType, at string) MealEntry {
	return MealEntry{
		ID:       uuid.NewString(),
		Date:     date,
		Name:     name,
		Calories: calories,
		Type:     mealType,
		Time:     at,
	}
}

// Validate checks all meal fields.
func (e MealEntry) Validate() error {
	return validateStruct("meal entry", e)
}
