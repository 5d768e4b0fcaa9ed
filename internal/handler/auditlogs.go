package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/caffissimo/admin-api/internal/enum"
	"github.com/caffissimo/admin-api/internal/middleware"
	"github.com/caffissimo/admin-api/internal/model"
	"github.com/caffissimo/admin-api/internal/store"
	"github.com/go-chi/chi/v5"
)

// AuditLogStore defines the store methods needed by audit log handlers.
// Satisfied by *store.Memory; narrow interface for testability.
type AuditLogStore interface {
	ListAuditLogs(ctx context.Context, f store.AuditLogFilter) ([]model.AuditLog, error)
}

// AuditLogHandler handles the audit trail endpoints.
type AuditLogHandler struct {
	store AuditLogStore
	now   func() time.Time
}

// NewAuditLogHandler creates a new AuditLogHandler.
func NewAuditLogHandler(store AuditLogStore) *AuditLogHandler {
	return &AuditLogHandler{store: store, now: time.Now}
}

// RegisterRoutes registers audit log endpoints on the given Chi router.
// Mounted behind the view-audit-logs permission.
func (h *AuditLogHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
}

// List returns audit entries for the caller's scope, newest first.
// Optional filter: action.
func (h *AuditLogHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	s := resolveScope(r, claims, h.now())

	logs, err := h.store.ListAuditLogs(r.Context(), store.AuditLogFilter{
		BranchID: s.BranchID,
		From:     s.Interval.From,
		To:       s.Interval.To,
		Action:   enum.AuditAction(r.URL.Query().Get("action")),
	})
	if err != nil {
		log.Printf("ERROR: list audit logs: %v", err)
		errorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, logs)
}
