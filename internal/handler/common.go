package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/caffissimo/admin-api/internal/auth"
	"github.com/caffissimo/admin-api/internal/report"
	"github.com/caffissimo/admin-api/internal/scope"
	"github.com/google/uuid"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorJSON(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// resolveScope turns the session claims plus query parameters into the
// effective (branch, window) pair. The branch selection and any custom
// range come from the client; the branch the caller is actually allowed
// to see is decided server-side.
//
// Query parameters: branch_id (uuid), preset (today|7d|30d|custom),
// from/to (2006-01-02, custom preset only).
func resolveScope(r *http.Request, claims *auth.Claims, now time.Time) report.Scope {
	q := r.URL.Query()

	selected := uuid.Nil
	if s := q.Get("branch_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			selected = id
		}
	}
	branchID := scope.ResolveBranchScope(claims.Role, claims.BranchID, selected)

	preset := scope.Preset(q.Get("preset"))
	var custom scope.Interval
	if preset == scope.PresetCustom {
		if from, err := time.Parse("2006-01-02", q.Get("from")); err == nil {
			custom.From = from
		}
		if to, err := time.Parse("2006-01-02", q.Get("to")); err == nil {
			custom.To = scope.EndOfDay(to)
		}
	}
	interval := scope.ResolveDateInterval(preset, custom, now)

	return report.Scope{BranchID: branchID, Interval: interval}
}
