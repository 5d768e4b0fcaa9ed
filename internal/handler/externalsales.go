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
	"github.com/caffissimo/admin-api/internal/rbac"
	"github.com/caffissimo/admin-api/internal/scope"
	"github.com/caffissimo/admin-api/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExternalSalesStore defines the store methods needed by external
// sales handlers. Satisfied by *store.Memory; narrow interface for
// testability.
type ExternalSalesStore interface {
	ListExternalSales(ctx context.Context, f store.ExternalSalesFilter) ([]model.ExternalSalesEntry, error)
	AddExternalSalesEntry(ctx context.Context, e model.ExternalSalesEntry) error
	AppendAuditLog(ctx context.Context, l model.AuditLog) error
}

// ExternalSalesHandler handles the bulk revenue figures reported by
// delivery platforms. Individually tracked platform orders live under
// /orders; these entries are the imported and manually keyed-in
// remainder.
type ExternalSalesHandler struct {
	store ExternalSalesStore
	now   func() time.Time
}

// NewExternalSalesHandler creates a new ExternalSalesHandler.
func NewExternalSalesHandler(store ExternalSalesStore) *ExternalSalesHandler {
	return &ExternalSalesHandler{store: store, now: time.Now}
}

// RegisterRoutes registers external sales endpoints on the given Chi
// router.
func (h *ExternalSalesHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
}

type createExternalSalesRequest struct {
	Platform   enum.ExternalPlatform `json:"platform"`
	BranchID   uuid.UUID             `json:"branch_id"`
	Date       string                `json:"date"` // 2006-01-02
	TotalSales decimal.Decimal       `json:"total_sales"`
	OrderCount int                   `json:"order_count"`
}

func validPlatform(p enum.ExternalPlatform) bool {
	return p == enum.PlatformUberEats || p == enum.PlatformDoorDash
}

// List returns raw external sales entries for the caller's scope,
// optionally filtered by platform.
func (h *ExternalSalesHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	s := resolveScope(r, claims, h.now())

	platform := enum.ExternalPlatform(r.URL.Query().Get("platform"))
	if platform != "" && !validPlatform(platform) {
		errorJSON(w, http.StatusBadRequest, "invalid platform")
		return
	}

	entries, err := h.store.ListExternalSales(r.Context(), store.ExternalSalesFilter{
		BranchID: s.BranchID,
		From:     s.Interval.From,
		To:       s.Interval.To,
		Platform: platform,
	})
	if err != nil {
		log.Printf("ERROR: list external sales: %v", err)
		errorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// Create records a manually keyed-in sales figure for one platform,
// branch and day. Entering revenue requires report access.
func (h *ExternalSalesHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	if !rbac.CanViewReports(claims.Role) {
		errorJSON(w, http.StatusForbidden, "insufficient permissions")
		return
	}

	var req createExternalSalesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !validPlatform(req.Platform) {
		errorJSON(w, http.StatusBadRequest, "invalid platform")
		return
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}
	if req.TotalSales.IsNegative() || req.OrderCount < 0 {
		errorJSON(w, http.StatusBadRequest, "total_sales and order_count must not be negative")
		return
	}

	branchID := scope.ResolveBranchScope(claims.Role, claims.BranchID, req.BranchID)
	if branchID == uuid.Nil {
		// All-branch roles must say which branch the figure belongs to.
		errorJSON(w, http.StatusBadRequest, "branch_id is required")
		return
	}

	now := h.now()
	entry := model.ExternalSalesEntry{
		ID:         uuid.New(),
		BranchID:   branchID,
		Platform:   req.Platform,
		Date:       date,
		TotalSales: req.TotalSales,
		OrderCount: req.OrderCount,
		Source:     enum.EntrySourceManual,
		CreatedAt:  now,
	}
	if err := h.store.AddExternalSalesEntry(r.Context(), entry); err != nil {
		log.Printf("ERROR: add external sales entry: %v", err)
		errorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}

	audit := model.AuditLog{
		ID:         uuid.New(),
		Action:     enum.AuditExternalSales,
		EntityType: "ExternalSalesEntry",
		EntityID:   entry.ID.String(),
		UserID:     claims.UserID,
		BranchID:   branchID,
		Details: map[string]any{
			"platform":    string(req.Platform),
			"date":        req.Date,
			"total_sales": req.TotalSales.String(),
		},
		CreatedAt: now,
	}
	if err := h.store.AppendAuditLog(r.Context(), audit); err != nil {
		log.Printf("ERROR: append audit log: %v", err)
	}

	writeJSON(w, http.StatusCreated, entry)
}
