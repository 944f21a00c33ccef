// ABOUTME: Stretch sequence entry model.
// ABOUTME: Durations are seconds; the sequence order is user-arranged.
package models

import "github.com/google/uuid"

// StretchEntry is one stretch of the sequence.
type StretchEntry struct {
	ID       string `json:"id" yaml:"id" validate:"required"`
	Name     string `json:"name" yaml:"name" validate:"required"`
	Duration int    `json:"duration" yaml:"duration" validate:"gt=0"`
	ImageURL string `json:"image_url,omitempty" yaml:"image_url,omitempty" validate:"omitempty,url"`
}

// NewStretch creates a stretch with a generated ID.
func NewStretch(name string, seconds int) StretchEntry {
	return StretchEntry{
		ID:       uuid.NewString(),
		Name:     name,
		Duration: seconds,
	}
}

// Validate checks the name, a positive duration, and the image URL if set.
func (e StretchEntry) Validate() error {
	return validateStruct("stretch", e)
}
