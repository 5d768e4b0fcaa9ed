// Package scope computes the effective data scope for a session: which
// branch (or all branches) and which date window it may see. Every
// data-reading caller resolves its scope here instead of trusting
// client-supplied filters directly.
package scope

import (
	"time"

	"github.com/caffissimo/admin-api/internal/enum"
	"github.com/caffissimo/admin-api/internal/rbac"
	"github.com/google/uuid"
)

// Preset selects a relative date window anchored on "today".
type Preset string

const (
	PresetToday  Preset = "today"
	Preset7Days  Preset = "7d"
	Preset30Days Preset = "30d"
	PresetCustom Preset = "custom"
)

// Interval is a closed date window. Membership is inclusive on both
// ends; an interval with From after To matches nothing.
type Interval struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Contains reports whether t falls inside the interval, inclusive.
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.From) && !t.After(i.To)
}

// IsEmpty reports whether the interval matches nothing.
func (i Interval) IsEmpty() bool {
	return i.From.After(i.To)
}

// Days returns the start of each calendar day covered by the interval,
// inclusive on both ends. An empty interval yields no days.
func (i Interval) Days() []time.Time {
	if i.IsEmpty() {
		return nil
	}
	var days []time.Time
	for d := StartOfDay(i.From); !d.After(i.To); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// ResolveBranchScope reconciles the caller's assigned branch with an
// explicit branch selection. uuid.Nil means "all branches".
//
// A role without all-branch access ALWAYS gets its assigned branch,
// regardless of what selectedBranchID holds: a branch-scoped session
// must not be able to widen or redirect its own scope through a stale
// or tampered selection, even when the UI forgot to hide the selector.
func ResolveBranchScope(role enum.Role, assignedBranchID, selectedBranchID uuid.UUID) uuid.UUID {
	if !rbac.CanAccessAllBranches(role) {
		return assignedBranchID
	}
	return selectedBranchID
}

// ResolveDateInterval resolves a preset (or a custom range) against a
// reference instant. Presets span startOfDay(now-N) through
// endOfDay(now). Custom ranges pass through, except From is floored to
// start of day so that picking a date means picking the whole day; To
// is used as given. Unknown presets fall back to the 7-day window, the
// dashboard default.
func ResolveDateInterval(preset Preset, custom Interval, now time.Time) Interval {
	switch preset {
	case PresetToday:
		return Interval{From: StartOfDay(now), To: EndOfDay(now)}
	case Preset30Days:
		return Interval{From: StartOfDay(now.AddDate(0, 0, -29)), To: EndOfDay(now)}
	case PresetCustom:
		return Interval{From: StartOfDay(custom.From), To: custom.To}
	default: // Preset7Days
		return Interval{From: StartOfDay(now.AddDate(0, 0, -6)), To: EndOfDay(now)}
	}
}

// StartOfDay floors t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
