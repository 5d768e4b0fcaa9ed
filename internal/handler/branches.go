package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/caffissimo/admin-api/internal/middleware"
	"github.com/caffissimo/admin-api/internal/model"
	"github.com/caffissimo/admin-api/internal/rbac"
	"github.com/caffissimo/admin-api/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// BranchStore defines the store methods needed by branch handlers.
// Satisfied by *store.Memory; narrow interface for testability.
type BranchStore interface {
	ListBranches(ctx context.Context) ([]model.Branch, error)
	GetBranch(ctx context.Context, id uuid.UUID) (model.Branch, error)
	CreateBranch(ctx context.Context, b model.Branch) error
}

// BranchHandler handles branch endpoints.
type BranchHandler struct {
	store BranchStore
	now   func() time.Time
}

// NewBranchHandler creates a new BranchHandler.
func NewBranchHandler(store BranchStore) *BranchHandler {
	return &BranchHandler{store: store, now: time.Now}
}

// RegisterRoutes registers branch endpoints on the given Chi router.
func (h *BranchHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Post("/", h.Create)
}

type createBranchRequest struct {
	Name         string                    `json:"name"`
	Address      string                    `json:"address"`
	Phone        string                    `json:"phone"`
	Email        string                    `json:"email"`
	OpeningHours map[string]model.DayHours `json:"opening_hours"`
	UberEatsURL  string                    `json:"uber_eats_url"`
	DoorDashURL  string                    `json:"doordash_url"`
}

// List returns every branch. The branch directory itself is not scoped;
// branch-pinned roles still see the full list for context, data under a
// branch is what scoping protects.
func (h *BranchHandler) List(w http.ResponseWriter, r *http.Request) {
	branches, err := h.store.ListBranches(r.Context())
	if err != nil {
		log.Printf("ERROR: list branches: %v", err)
		errorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, branches)
}

// Get returns a single branch.
func (h *BranchHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid branch ID")
		return
	}

	branch, err := h.store.GetBranch(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			errorJSON(w, http.StatusNotFound, "branch not found")
			return
		}
		log.Printf("ERROR: get branch: %v", err)
		errorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, branch)
}

// Create adds a new branch.
func (h *BranchHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	if !rbac.CanCreateBranch(claims.Role) {
		errorJSON(w, http.StatusForbidden, "insufficient permissions")
		return
	}

	var req createBranchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Address == "" {
		errorJSON(w, http.StatusBadRequest, "name and address are required")
		return
	}

	now := h.now()
	branch := model.Branch{
		ID:           uuid.New(),
		Name:         req.Name,
		Address:      req.Address,
		Phone:        req.Phone,
		Email:        req.Email,
		IsOpen:       true,
		OpeningHours: req.OpeningHours,
		UberEatsURL:  req.UberEatsURL,
		DoorDashURL:  req.DoorDashURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := h.store.CreateBranch(r.Context(), branch); err != nil {
		log.Printf("ERROR: create branch: %v", err)
		errorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusCreated, branch)
}
