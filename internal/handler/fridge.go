package handler

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/caffissimo/admin-api/internal/enum"
	"github.com/caffissimo/admin-api/internal/middleware"
	"github.com/caffissimo/admin-api/internal/model"
	"github.com/caffissimo/admin-api/internal/scope"
	"github.com/caffissimo/admin-api/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// FridgeStore defines the store methods needed by fridge handlers.
// Satisfied by *store.Memory; narrow interface for testability.
type FridgeStore interface {
	ListFridgeReports(ctx context.Context, f store.DayFilter) ([]model.FridgeStockReport, error)
	AddFridgeReport(ctx context.Context, r model.FridgeStockReport) error
	AppendAuditLog(ctx context.Context, l model.AuditLog) error
}

// FridgeHandler handles daily fridge-temperature compliance reports.
type FridgeHandler struct {
	store FridgeStore
	now   func() time.Time
}

// NewFridgeHandler creates a new FridgeHandler.
func NewFridgeHandler(store FridgeStore) *FridgeHandler {
	return &FridgeHandler{store: store, now: time.Now}
}

// RegisterRoutes registers fridge report endpoints on the given Chi
// router. Mounted behind the submit-fridge-report permission.
func (h *FridgeHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Submit)
}

type submitFridgeRequest struct {
	Temperatures []model.FridgeTemperature `json:"temperatures"`
	Notes        string                    `json:"notes"`
	SubmittedBy  string                    `json:"submitted_by"`
}

// List returns fridge reports for the caller's scope, newest first.
func (h *FridgeHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	s := resolveScope(r, claims, h.now())

	reports, err := h.store.ListFridgeReports(r.Context(), store.DayFilter{
		BranchID: s.BranchID,
		From:     s.Interval.From,
		To:       s.Interval.To,
	})
	if err != nil {
		log.Printf("ERROR: list fridge reports: %v", err)
		errorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, reports)
}

// Submit records today's temperature readings for the caller's branch.
func (h *FridgeHandler) Submit(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())

	var req submitFridgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Temperatures) == 0 {
		errorJSON(w, http.StatusBadRequest, "at least one temperature reading is required")
		return
	}

	branchID := scope.ResolveBranchScope(claims.Role, claims.BranchID, uuid.Nil)
	if branchID == uuid.Nil {
		// All-branch roles must say which branch they are reporting for.
		id, err := uuid.Parse(r.URL.Query().Get("branch_id"))
		if err != nil {
			errorJSON(w, http.StatusBadRequest, "branch_id is required")
			return
		}
		branchID = id
	}

	now := h.now()
	report := model.FridgeStockReport{
		ID:           uuid.New(),
		BranchID:     branchID,
		Date:         scope.StartOfDay(now.UTC()),
		Temperatures: req.Temperatures,
		Notes:        req.Notes,
		SubmittedBy:  req.SubmittedBy,
		CreatedAt:    now,
	}
	if err := h.store.AddFridgeReport(r.Context(), report); err != nil {
		log.Printf("ERROR: add fridge report: %v", err)
		errorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}

	entry := model.AuditLog{
		ID:         uuid.New(),
		Action:     enum.AuditStockReport,
		EntityType: "FridgeStockReport",
		EntityID:   report.ID.String(),
		UserID:     claims.UserID,
		BranchID:   branchID,
		Details:    map[string]any{"readings": len(req.Temperatures)},
		CreatedAt:  now,
	}
	if err := h.store.AppendAuditLog(r.Context(), entry); err != nil {
		log.Printf("ERROR: append audit log: %v", err)
	}

	writeJSON(w, http.StatusCreated, report)
}
