package handler

import (
	"context"
	"log"
	"net/http"

	"github.com/caffissimo/admin-api/internal/middleware"
	"github.com/caffissimo/admin-api/internal/model"
	"github.com/caffissimo/admin-api/internal/scope"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ProductStore defines the store methods needed by product handlers.
// Satisfied by *store.Memory; narrow interface for testability.
type ProductStore interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	ListBranchProducts(ctx context.Context, branchID uuid.UUID) ([]model.BranchProduct, error)
}

// ProductHandler handles catalog endpoints.
type ProductHandler struct {
	store ProductStore
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(store ProductStore) *ProductHandler {
	return &ProductHandler{store: store}
}

// RegisterRoutes registers catalog endpoints on the given Chi router.
func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Get("/categories", h.Categories)
	r.Get("/products", h.Products)
	r.Get("/branch-products", h.BranchProducts)
}

// Categories returns the catalog categories in sort order.
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.store.ListCategories(r.Context())
	if err != nil {
		log.Printf("ERROR: list categories: %v", err)
		errorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, cats)
}

// Products returns the global catalog. Pricing and availability are
// per-branch and live on the branch-products endpoint.
func (h *ProductHandler) Products(w http.ResponseWriter, r *http.Request) {
	products, err := h.store.ListProducts(r.Context())
	if err != nil {
		log.Printf("ERROR: list products: %v", err)
		errorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// BranchProducts returns per-branch pricing and availability for the
// branch the caller is scoped to (or an explicit branch_id selection
// for all-branch roles).
func (h *ProductHandler) BranchProducts(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())

	selected := uuid.Nil
	if s := r.URL.Query().Get("branch_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			errorJSON(w, http.StatusBadRequest, "invalid branch ID")
			return
		}
		selected = id
	}
	branchID := scope.ResolveBranchScope(claims.Role, claims.BranchID, selected)

	bps, err := h.store.ListBranchProducts(r.Context(), branchID)
	if err != nil {
		log.Printf("ERROR: list branch products: %v", err)
		errorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, bps)
}
