// ABOUTME: Water intake model.
// ABOUTME: The store keeps one entry per date and sums repeated additions.
package models

// DefaultWaterGoal is the daily target in millilitres.
const DefaultWaterGoal = 2000

// CupSizes are the quick-add amounts offered by the water view, in ml.
var CupSizes = []int{250, 500, 750, 1000}

// WaterEntry is the total water drunk on a date, in millilitres.
type WaterEntry struct {
	Date   string `json:"date" yaml:"date" validate:"required,datetime=2006-01-02"`
	Amount int    `json:"amount" yaml:"amount" validate:"gt=0"`
}

// Validate checks the date and that the amount is positive.
func (e WaterEntry) Validate() error {
	return validateStruct("water entry", e)
}
