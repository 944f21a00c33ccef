// ABOUTME: Body weight entry model.
// ABOUTME: Weights are kilograms; duplicates per date are allowed.
package models

// WeightEntry is a weigh-in in kilograms.
type WeightEntry struct {
	Date   string  `json:"date" yaml:"date" validate:"required,datetime=2006-01-02"`
	Weight float64 `json:"weight" yaml:"weight" validate:"gt=0,lt=500"`
}

// Validate checks the date and a plausible weight.
func (e WeightEntry) Validate() error {
	return validateStruct("weight entry", e)
}
