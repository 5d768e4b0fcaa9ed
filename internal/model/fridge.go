package model

import (
	"time"

	"github.com/google/uuid"
)

// FridgeTemperature is one unit's reading in a daily report, degrees
// Fahrenheit.
type FridgeTemperature struct {
	Name        string  `json:"name"`
	Temperature float64 `json:"temperature"`
}

// FridgeStockReport is the daily fridge-temperature compliance log for
// a branch.
type FridgeStockReport struct {
	ID           uuid.UUID           `json:"id"`
	BranchID     uuid.UUID           `json:"branch_id"`
	Date         time.Time           `json:"date"` // day granularity
	Temperatures []FridgeTemperature `json:"temperatures"`
	Notes        string              `json:"notes,omitempty"`
	SubmittedBy  string              `json:"submitted_by"`
	CreatedAt    time.Time           `json:"created_at"`
}
