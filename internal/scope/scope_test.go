package scope_test

import (
	"testing"
	"time"

	"github.com/caffissimo/admin-api/internal/enum"
	"github.com/caffissimo/admin-api/internal/scope"
	"github.com/google/uuid"
)

var (
	branchA = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	branchB = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

func TestResolveBranchScope(t *testing.T) {
	tests := []struct {
		name     string
		role     enum.Role
		assigned uuid.UUID
		selected uuid.UUID
		want     uuid.UUID
	}{
		{"super admin all branches", enum.RoleSuperAdmin, uuid.Nil, uuid.Nil, uuid.Nil},
		{"super admin picks a branch", enum.RoleSuperAdmin, uuid.Nil, branchA, branchA},
		{"branch owner ignores selection", enum.RoleBranchOwner, branchA, branchB, branchA},
		{"branch owner ignores wildcard selection", enum.RoleBranchOwner, branchA, uuid.Nil, branchA},
		{"supervisor pinned", enum.RoleSupervisor, branchB, branchA, branchB},
		{"cashier pinned", enum.RoleCashier, branchA, branchB, branchA},
		{"unknown role gets assigned branch", enum.Role("intern"), branchA, uuid.Nil, branchA},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scope.ResolveBranchScope(tt.role, tt.assigned, tt.selected)
			if got != tt.want {
				t.Errorf("ResolveBranchScope() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveDateIntervalPresets(t *testing.T) {
	now := time.Date(2026, 2, 5, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		preset   scope.Preset
		wantFrom time.Time
		wantDays int
	}{
		{"today", scope.PresetToday, time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC), 1},
		{"7d", scope.Preset7Days, time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC), 7},
		{"30d", scope.Preset30Days, time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC), 30},
		{"unknown preset falls back to 7d", scope.Preset("fortnight"), time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC), 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scope.ResolveDateInterval(tt.preset, scope.Interval{}, now)
			if !got.From.Equal(tt.wantFrom) {
				t.Errorf("From = %v, want %v", got.From, tt.wantFrom)
			}
			if !got.To.After(now) && !got.To.Equal(now) {
				// Presets always run through end of today.
				t.Errorf("To = %v, should not be before now %v", got.To, now)
			}
			if days := len(got.Days()); days != tt.wantDays {
				t.Errorf("Days() = %d, want %d", days, tt.wantDays)
			}
		})
	}
}

func TestResolveDateIntervalCustom(t *testing.T) {
	now := time.Date(2026, 2, 5, 15, 30, 0, 0, time.UTC)
	custom := scope.Interval{
		From: time.Date(2026, 1, 10, 14, 45, 0, 0, time.UTC),
		To:   time.Date(2026, 1, 20, 23, 59, 59, 0, time.UTC),
	}

	got := scope.ResolveDateInterval(scope.PresetCustom, custom, now)

	// Picking a start date means picking the whole day.
	wantFrom := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	if !got.From.Equal(wantFrom) {
		t.Errorf("From = %v, want %v", got.From, wantFrom)
	}
	if !got.To.Equal(custom.To) {
		t.Errorf("To = %v, want %v", got.To, custom.To)
	}
}

func TestIntervalContainsInclusive(t *testing.T) {
	i := scope.Interval{
		From: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 2, 3, 23, 59, 59, 0, time.UTC),
	}

	if !i.Contains(i.From) {
		t.Error("interval should contain its From bound")
	}
	if !i.Contains(i.To) {
		t.Error("interval should contain its To bound")
	}
	if i.Contains(i.From.Add(-time.Nanosecond)) {
		t.Error("interval should not contain instants before From")
	}
	if i.Contains(i.To.Add(time.Nanosecond)) {
		t.Error("interval should not contain instants after To")
	}
}

func TestIntervalFromAfterToIsEmpty(t *testing.T) {
	i := scope.Interval{
		From: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	}

	if !i.IsEmpty() {
		t.Error("From after To should be empty")
	}
	if i.Contains(time.Date(2026, 2, 5, 12, 0, 0, 0, time.UTC)) {
		t.Error("empty interval should contain nothing")
	}
	if days := i.Days(); days != nil {
		t.Errorf("empty interval should have no days, got %d", len(days))
	}
}

func TestDaysCoversBothEnds(t *testing.T) {
	i := scope.Interval{
		From: time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 2, 2, 23, 59, 59, 0, time.UTC),
	}

	days := i.Days()
	if len(days) != 4 {
		t.Fatalf("Days() = %d, want 4", len(days))
	}
	if !days[0].Equal(time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("first day = %v", days[0])
	}
	if !days[3].Equal(time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("last day = %v", days[3])
	}
}
