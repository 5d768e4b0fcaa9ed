package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/caffissimo/admin-api/internal/auth"
	"github.com/caffissimo/admin-api/internal/enum"
	"github.com/caffissimo/admin-api/internal/middleware"
	"github.com/caffissimo/admin-api/internal/model"
	"github.com/caffissimo/admin-api/internal/rbac"
	"github.com/caffissimo/admin-api/internal/service"
	"github.com/caffissimo/admin-api/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// OrderStore defines the store methods needed by order handlers.
// Satisfied by *store.Memory; narrow interface for testability.
type OrderStore interface {
	ListOrders(ctx context.Context, f store.OrderFilter) ([]model.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (model.Order, error)
	ReplaceOrder(ctx context.Context, o model.Order) error
	AppendAuditLog(ctx context.Context, l model.AuditLog) error
}

// OrderHandler handles order endpoints.
type OrderHandler struct {
	store OrderStore
	now   func() time.Time
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(store OrderStore) *OrderHandler {
	return &OrderHandler{store: store, now: time.Now}
}

// RegisterRoutes registers order endpoints on the given Chi router.
func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Patch("/{id}/status", h.UpdateStatus)
	r.Delete("/{id}", h.Cancel)
}

// --- Request types ---

type updateStatusRequest struct {
	Status enum.OrderStatus `json:"status"`
	Note   string           `json:"note"`
}

type cancelOrderRequest struct {
	Reason string `json:"reason"`
}

// --- Handlers ---

// List returns orders visible to the caller, newest first. Optional
// filters: source, status, q (order number or customer name), plus the
// usual scope parameters.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	s := resolveScope(r, claims, h.now())

	q := r.URL.Query()
	filter := store.OrderFilter{
		BranchID: s.BranchID,
		From:     s.Interval.From,
		To:       s.Interval.To,
		Source:   enum.OrderSource(q.Get("source")),
		Status:   enum.OrderStatus(q.Get("status")),
		Search:   q.Get("q"),
	}
	if filter.Status != "" && !service.IsValidOrderStatus(filter.Status) {
		errorJSON(w, http.StatusBadRequest, "invalid status filter")
		return
	}

	orders, err := h.store.ListOrders(r.Context(), filter)
	if err != nil {
		log.Printf("ERROR: list orders: %v", err)
		errorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

// Get returns a single order with its full status history.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	order, ok := h.fetchVisible(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// UpdateStatus advances an order along the status machine. Orders from
// delivery platforms are read-only mirrors and cannot be moved.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	order, ok := h.fetchVisible(w, r)
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !service.IsValidOrderStatus(req.Status) {
		errorJSON(w, http.StatusBadRequest, "invalid status")
		return
	}

	claims := middleware.ClaimsFromContext(r.Context())
	if req.Status == enum.OrderStatusCancelled && !rbac.CanCancelOrders(claims.Role) {
		errorJSON(w, http.StatusForbidden, "insufficient permissions")
		return
	}

	updated, err := service.TransitionOrder(order, req.Status, req.Note, h.now())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderReadOnly):
			errorJSON(w, http.StatusConflict, "order is read-only")
		case errors.Is(err, service.ErrInvalidStatus):
			errorJSON(w, http.StatusConflict, err.Error())
		default:
			log.Printf("ERROR: transition order: %v", err)
			errorJSON(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	if err := h.store.ReplaceOrder(r.Context(), updated); err != nil {
		log.Printf("ERROR: replace order: %v", err)
		errorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if req.Status == enum.OrderStatusCancelled {
		h.auditCancel(r.Context(), claims, updated, req.Note)
	}

	writeJSON(w, http.StatusOK, updated)
}

// Cancel is shorthand for a transition to cancelled.
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	if !rbac.CanCancelOrders(claims.Role) {
		errorJSON(w, http.StatusForbidden, "insufficient permissions")
		return
	}

	order, ok := h.fetchVisible(w, r)
	if !ok {
		return
	}

	var req cancelOrderRequest
	if r.Body != nil {
		// A missing or empty body is fine; the reason is optional.
		json.NewDecoder(r.Body).Decode(&req)
	}

	updated, err := service.TransitionOrder(order, enum.OrderStatusCancelled, req.Reason, h.now())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderReadOnly):
			errorJSON(w, http.StatusConflict, "order is read-only")
		case errors.Is(err, service.ErrInvalidStatus):
			errorJSON(w, http.StatusConflict, err.Error())
		default:
			log.Printf("ERROR: cancel order: %v", err)
			errorJSON(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	if err := h.store.ReplaceOrder(r.Context(), updated); err != nil {
		log.Printf("ERROR: replace order: %v", err)
		errorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.auditCancel(r.Context(), claims, updated, req.Reason)

	writeJSON(w, http.StatusOK, updated)
}

// fetchVisible loads the order and enforces branch visibility: a
// branch-pinned caller only ever sees its own branch's orders, and a
// foreign order reads as not found rather than forbidden.
func (h *OrderHandler) fetchVisible(w http.ResponseWriter, r *http.Request) (model.Order, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid order ID")
		return model.Order{}, false
	}

	order, err := h.store.GetOrder(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			errorJSON(w, http.StatusNotFound, "order not found")
			return model.Order{}, false
		}
		log.Printf("ERROR: get order: %v", err)
		errorJSON(w, http.StatusInternalServerError, "internal server error")
		return model.Order{}, false
	}

	claims := middleware.ClaimsFromContext(r.Context())
	if !rbac.CanAccessAllBranches(claims.Role) && order.BranchID != claims.BranchID {
		errorJSON(w, http.StatusNotFound, "order not found")
		return model.Order{}, false
	}
	return order, true
}

func (h *OrderHandler) auditCancel(ctx context.Context, claims *auth.Claims, o model.Order, reason string) {
	entry := model.AuditLog{
		ID:         uuid.New(),
		Action:     enum.AuditOrderCancelled,
		EntityType: "Order",
		EntityID:   o.ID.String(),
		UserID:     claims.UserID,
		BranchID:   o.BranchID,
		Details: map[string]any{
			"order_number": o.OrderNumber,
			"reason":       reason,
		},
		CreatedAt: h.now(),
	}
	if err := h.store.AppendAuditLog(ctx, entry); err != nil {
		// The cancellation itself already succeeded; log and move on.
		log.Printf("ERROR: append audit log: %v", err)
	}
}
