package model

import (
	"time"

	"github.com/caffissimo/admin-api/internal/enum"
	"github.com/google/uuid"
)

// AuditLog is an immutable append-only record of an admin action.
// Entries are never mutated or deleted.
type AuditLog struct {
	ID         uuid.UUID        `json:"id"`
	Action     enum.AuditAction `json:"action"`
	EntityType string           `json:"entity_type"`
	EntityID   string           `json:"entity_id"`
	UserID     uuid.UUID        `json:"user_id"`
	UserName   string           `json:"user_name"`
	BranchID   uuid.UUID        `json:"branch_id,omitempty"` // uuid.Nil for global actions
	Details    map[string]any   `json:"details,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
}
