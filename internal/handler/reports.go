package handler

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/caffissimo/admin-api/internal/middleware"
	"github.com/caffissimo/admin-api/internal/model"
	"github.com/caffissimo/admin-api/internal/rbac"
	"github.com/caffissimo/admin-api/internal/report"
	"github.com/caffissimo/admin-api/internal/store"
	"github.com/go-chi/chi/v5"
)

const defaultTopProductsLimit = 5

// ReportsStore defines the store methods needed by report handlers.
// Satisfied by *store.Memory; narrow interface for testability.
type ReportsStore interface {
	ListBranches(ctx context.Context) ([]model.Branch, error)
	ListOrders(ctx context.Context, f store.OrderFilter) ([]model.Order, error)
	ListExternalSales(ctx context.Context, f store.ExternalSalesFilter) ([]model.ExternalSalesEntry, error)
}

// ReportsHandler handles dashboard and report endpoints.
type ReportsHandler struct {
	store ReportsStore
	now   func() time.Time
}

// NewReportsHandler creates a new ReportsHandler.
func NewReportsHandler(store ReportsStore) *ReportsHandler {
	return &ReportsHandler{store: store, now: time.Now}
}

// RegisterRoutes registers report endpoints on the given Chi router.
func (h *ReportsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/summary", h.Summary)
	r.Get("/daily-sales", h.DailySales)
	r.Get("/top-products", h.TopProducts)
	r.Get("/branch-comparison", h.BranchComparison)
}

func (h *ReportsHandler) load(r *http.Request) (report.Scope, []model.Order, []model.ExternalSalesEntry, error) {
	claims := middleware.ClaimsFromContext(r.Context())
	s := resolveScope(r, claims, h.now())

	orders, err := h.store.ListOrders(r.Context(), store.OrderFilter{
		BranchID: s.BranchID,
		From:     s.Interval.From,
		To:       s.Interval.To,
	})
	if err != nil {
		return report.Scope{}, nil, nil, err
	}
	entries, err := h.store.ListExternalSales(r.Context(), store.ExternalSalesFilter{
		BranchID: s.BranchID,
		From:     s.Interval.From,
		To:       s.Interval.To,
	})
	if err != nil {
		return report.Scope{}, nil, nil, err
	}
	return s, orders, entries, nil
}

// --- Handlers ---

// Summary returns the KPI block for the resolved scope.
func (h *ReportsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	s, orders, entries, err := h.load(r)
	if err != nil {
		log.Printf("ERROR: load report data: %v", err)
		errorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, report.ComputeSummary(s, orders, entries))
}

// DailySales returns the per-day revenue series for the resolved scope.
func (h *ReportsHandler) DailySales(w http.ResponseWriter, r *http.Request) {
	s, orders, entries, err := h.load(r)
	if err != nil {
		log.Printf("ERROR: load report data: %v", err)
		errorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, report.ComputeDailySeries(s, orders, entries))
}

// TopProducts returns the best-selling products for the resolved scope.
func (h *ReportsHandler) TopProducts(w http.ResponseWriter, r *http.Request) {
	limit := defaultTopProductsLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			errorJSON(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	s, orders, _, err := h.load(r)
	if err != nil {
		log.Printf("ERROR: load report data: %v", err)
		errorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, report.ComputeTopProducts(s, orders, limit))
}

// BranchComparison ranks all branches by revenue over the resolved
// window. Branch-pinned roles are limited to their own branch
// everywhere else, so this endpoint requires all-branch access.
func (h *ReportsHandler) BranchComparison(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	if !rbac.CanAccessAllBranches(claims.Role) {
		errorJSON(w, http.StatusForbidden, "insufficient permissions")
		return
	}

	s := resolveScope(r, claims, h.now())

	branches, err := h.store.ListBranches(r.Context())
	if err != nil {
		log.Printf("ERROR: list branches: %v", err)
		errorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}
	orders, err := h.store.ListOrders(r.Context(), store.OrderFilter{
		From: s.Interval.From,
		To:   s.Interval.To,
	})
	if err != nil {
		log.Printf("ERROR: list orders: %v", err)
		errorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}
	entries, err := h.store.ListExternalSales(r.Context(), store.ExternalSalesFilter{
		From: s.Interval.From,
		To:   s.Interval.To,
	})
	if err != nil {
		log.Printf("ERROR: list external sales: %v", err)
		errorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, report.ComputeBranchComparison(s.Interval, branches, orders, entries))
}
