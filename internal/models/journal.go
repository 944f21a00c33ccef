// ABOUTME: Journal entry model with a normalized tag set.
// ABOUTME: Tags are trimmed, lower-cased, and deduplicated in input order.
package models

import "strings"

// JournalEntry is a free-text note for a day.
type JournalEntry struct {
	Date string   `json:"date" yaml:"date" validate:"required,datetime=2006-01-02"`
	Text string   `json:"text" yaml:"text" validate:"required"`
	Tags []string `json:"tags" yaml:"tags" validate:"min=1,dive,required"`
}

// NewJournalEntry builds an entry with normalized tags.
func NewJournalEntry(date, text string, tags []string) JournalEntry {
	return JournalEntry{
		Date: date,
		Text: strings.TrimSpace(text),
		Tags: NormalizeTags(tags),
	}
}

// Validate checks the text and that at least one tag is set.
func (e JournalEntry) Validate() error {
	return validateStruct("journal entry", e)
}

// HasTag reports whether the entry carries tag.
func (e JournalEntry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// NormalizeTags trims and lower-cases tags, dropping empties and repeats.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
