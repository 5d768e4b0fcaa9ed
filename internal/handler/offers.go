package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/caffissimo/admin-api/internal/middleware"
	"github.com/caffissimo/admin-api/internal/model"
	"github.com/caffissimo/admin-api/internal/scope"
	"github.com/caffissimo/admin-api/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// OfferStore defines the store methods needed by offer handlers.
// Satisfied by *store.Memory; narrow interface for testability.
type OfferStore interface {
	ListOffers(ctx context.Context) ([]model.Offer, error)
}

// OfferHandler handles offer endpoints.
type OfferHandler struct {
	store OfferStore
	now   func() time.Time
}

// NewOfferHandler creates a new OfferHandler.
func NewOfferHandler(store OfferStore) *OfferHandler {
	return &OfferHandler{store: store, now: time.Now}
}

// RegisterRoutes registers offer endpoints on the given Chi router.
func (h *OfferHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
}

// offerResponse is an offer plus its effective status, which is always
// derived against the current clock and never stored.
type offerResponse struct {
	model.Offer
	Status service.OfferStatus `json:"status"`
}

// List returns offers visible to the caller with their derived status.
// Branch-pinned callers only see offers covering their branch.
func (h *OfferHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())

	selected := uuid.Nil
	if s := r.URL.Query().Get("branch_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			selected = id
		}
	}
	branchID := scope.ResolveBranchScope(claims.Role, claims.BranchID, selected)

	offers, err := h.store.ListOffers(r.Context())
	if err != nil {
		log.Printf("ERROR: list offers: %v", err)
		errorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}

	now := h.now()
	resp := make([]offerResponse, 0, len(offers))
	for _, o := range offers {
		if branchID != uuid.Nil && !o.AppliesToBranch(branchID) {
			continue
		}
		resp = append(resp, offerResponse{Offer: o, Status: service.DeriveOfferStatus(o, now)})
	}
	writeJSON(w, http.StatusOK, resp)
}
