package model

import (
	"time"

	"github.com/caffissimo/admin-api/internal/enum"
	"github.com/google/uuid"
)

// AttendanceEntry is one user's attendance record for one day.
// CheckIn/CheckOut are "HH:MM" local times, empty when absent.
type AttendanceEntry struct {
	ID        uuid.UUID             `json:"id"`
	BranchID  uuid.UUID             `json:"branch_id"`
	UserID    uuid.UUID             `json:"user_id"`
	UserName  string                `json:"user_name"`
	Date      time.Time             `json:"date"` // day granularity
	Status    enum.AttendanceStatus `json:"status"`
	CheckIn   string                `json:"check_in,omitempty"`
	CheckOut  string                `json:"check_out,omitempty"`
	Notes     string                `json:"notes,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
}

// POSSession is one raw POS login/logout pair. LastActivityAt is the
// terminal's last recorded interaction before logout; whether the
// logout was idle-triggered is derived at read time, never stored.
type POSSession struct {
	ID             uuid.UUID `json:"id"`
	BranchID       uuid.UUID `json:"branch_id"`
	UserID         uuid.UUID `json:"user_id"`
	UserName       string    `json:"user_name"`
	LoginAt        time.Time `json:"login_at"`
	LogoutAt       time.Time `json:"logout_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
}
