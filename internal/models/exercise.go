// ABOUTME: Exercise routine entry model.
// ABOUTME: The routine is an ordered list replaced wholesale by the store.
package models

import "github.com/google/uuid"

// ExerciseEntry is one item of the fitness routine. Duration is in minutes.
type ExerciseEntry struct {
	ID        string `json:"id" yaml:"id" validate:"required"`
	Name      string `json:"name" yaml:"name" validate:"required"`
	Duration  int    `json:"duration" yaml:"duration" validate:"gt=0"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// NewExercise creates a not-yet-completed exercise with a generated ID.
func NewExercise(name string, minutes int) ExerciseEntry {
	return ExerciseEntry{
		ID:       uuid.NewString(),
		Name:     name,
		Duration: minutes,
	}
}

// Validate checks the name and a positive duration.
func (e ExerciseEntry) Validate() error {
	return validateStruct("exercise", e)
}
