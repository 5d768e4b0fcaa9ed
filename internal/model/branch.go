package model

import (
	"time"

	"github.com/google/uuid"
)

// DayHours is a single day's opening window, "HH:MM" local times.
type DayHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed,omitempty"`
}

// Branch is a single coffee-shop location, the multi-tenancy boundary
// for data visibility.
type Branch struct {
	ID           uuid.UUID           `json:"id"`
	Name         string              `json:"name"`
	Address      string              `json:"address"`
	Phone        string              `json:"phone"`
	Email        string              `json:"email"`
	IsOpen       bool                `json:"is_open"`
	OpeningHours map[string]DayHours `json:"opening_hours"`
	UberEatsURL  string              `json:"uber_eats_url,omitempty"`
	DoorDashURL  string              `json:"doordash_url,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}
