package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/caffissimo/admin-api/internal/middleware"
	"github.com/caffissimo/admin-api/internal/model"
	"github.com/caffissimo/admin-api/internal/service"
	"github.com/caffissimo/admin-api/internal/store"
	"github.com/go-chi/chi/v5"
)

// AttendanceStore defines the store methods needed by attendance
// handlers. Satisfied by *store.Memory; narrow interface for
// testability.
type AttendanceStore interface {
	ListAttendance(ctx context.Context, f store.DayFilter) ([]model.AttendanceEntry, error)
	ListPOSSessions(ctx context.Context, f store.DayFilter) ([]model.POSSession, error)
}

// AttendanceHandler handles attendance and POS login report endpoints.
type AttendanceHandler struct {
	store AttendanceStore
	now   func() time.Time
}

// NewAttendanceHandler creates a new AttendanceHandler.
func NewAttendanceHandler(store AttendanceStore) *AttendanceHandler {
	return &AttendanceHandler{store: store, now: time.Now}
}

// RegisterRoutes registers attendance endpoints on the given Chi
// router. Mounted behind the view-attendance permission.
func (h *AttendanceHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/pos-logins", h.POSLogins)
}

// List returns attendance entries for the caller's scope.
func (h *AttendanceHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	s := resolveScope(r, claims, h.now())

	entries, err := h.store.ListAttendance(r.Context(), store.DayFilter{
		BranchID: s.BranchID,
		From:     s.Interval.From,
		To:       s.Interval.To,
	})
	if err != nil {
		log.Printf("ERROR: list attendance: %v", err)
		errorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// POSLogins returns the POS login report: raw sessions grouped per
// user per day, with idle-timeout logouts flagged.
func (h *AttendanceHandler) POSLogins(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	s := resolveScope(r, claims, h.now())

	sessions, err := h.store.ListPOSSessions(r.Context(), store.DayFilter{
		BranchID: s.BranchID,
		From:     s.Interval.From,
		To:       s.Interval.To,
	})
	if err != nil {
		log.Printf("ERROR: list pos sessions: %v", err)
		errorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, service.DerivePOSDayRecords(sessions))
}
