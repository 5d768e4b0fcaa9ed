package service

import (
	"sort"
	"time"

	"github.com/caffissimo/admin-api/internal/model"
	"github.com/caffissimo/admin-api/internal/scope"
	"github.com/google/uuid"
)

// AutoLogoutIdle is how long a POS terminal waits with no activity
// before logging the cashier out.
const AutoLogoutIdle = 10 * time.Minute

// SessionView is one login/logout pair in a day record. AutoLogout is
// derived, never stored: true when the logout fired at or past the
// idle cutoff after the session's last activity.
type SessionView struct {
	LoginAt    time.Time `json:"login_at"`
	LogoutAt   time.Time `json:"logout_at"`
	AutoLogout bool      `json:"auto_logout"`
}

// POSDayRecord is the per-user per-day view of POS logins: first login
// of the day, last logout, and every session in between.
type POSDayRecord struct {
	UserID     uuid.UUID     `json:"user_id"`
	UserName   string        `json:"user_name"`
	BranchID   uuid.UUID     `json:"branch_id"`
	Date       time.Time     `json:"date"` // day granularity
	FirstLogin time.Time     `json:"first_login"`
	LastLogout time.Time     `json:"last_logout"`
	Sessions   []SessionView `json:"sessions"`
}

// IsAutoLogout reports whether a session ended by the idle cutoff.
func IsAutoLogout(s model.POSSession) bool {
	return !s.LogoutAt.Before(s.LastActivityAt.Add(AutoLogoutIdle))
}

// DerivePOSDayRecords groups raw sessions into per-user per-day
// records, ordered by date descending then user name, with sessions
// inside a record ordered by login time. This is a pure view over the
// session log; nothing here is stored.
func DerivePOSDayRecords(sessions []model.POSSession) []POSDayRecord {
	type key struct {
		userID uuid.UUID
		day    time.Time
	}

	grouped := make(map[key][]model.POSSession)
	var order []key
	for _, s := range sessions {
		k := key{userID: s.UserID, day: scope.StartOfDay(s.LoginAt)}
		if _, seen := grouped[k]; !seen {
			order = append(order, k)
		}
		grouped[k] = append(grouped[k], s)
	}

	records := make([]POSDayRecord, 0, len(order))
	for _, k := range order {
		group := grouped[k]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].LoginAt.Before(group[j].LoginAt)
		})

		rec := POSDayRecord{
			UserID:     k.userID,
			UserName:   group[0].UserName,
			BranchID:   group[0].BranchID,
			Date:       k.day,
			FirstLogin: group[0].LoginAt,
			LastLogout: group[len(group)-1].LogoutAt,
			Sessions:   make([]SessionView, len(group)),
		}
		for i, s := range group {
			rec.Sessions[i] = SessionView{
				LoginAt:    s.LoginAt,
				LogoutAt:   s.LogoutAt,
				AutoLogout: IsAutoLogout(s),
			}
		}
		records = append(records, rec)
	}

	sort.SliceStable(records, func(i, j int) bool {
		if !records[i].Date.Equal(records[j].Date) {
			return records[i].Date.After(records[j].Date)
		}
		return records[i].UserName < records[j].UserName
	})
	return records
}
