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

// UserStore defines the store methods needed by user handlers.
// Satisfied by *store.Memory; narrow interface for testability.
type UserStore interface {
	ListUsers(ctx context.Context, branchID uuid.UUID) ([]model.User, error)
}

// UserHandler handles user administration endpoints.
type UserHandler struct {
	store UserStore
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(store UserStore) *UserHandler {
	return &UserHandler{store: store}
}

// RegisterRoutes registers user endpoints on the given Chi router.
// Mounted behind the manage-users permission.
func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
}

// List returns the accounts the caller may administer. Branch owners
// see their own branch's staff; super admins see everyone, optionally
// narrowed by branch_id.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())

	selected := uuid.Nil
	if s := r.URL.Query().Get("branch_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			selected = id
		}
	}
	branchID := scope.ResolveBranchScope(claims.Role, claims.BranchID, selected)

	users, err := h.store.ListUsers(r.Context(), branchID)
	if err != nil {
		log.Printf("ERROR: list users: %v", err)
		errorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := make([]userResponse, len(users))
	for i, u := range users {
		resp[i] = toUserResponse(u)
	}
	writeJSON(w, http.StatusOK, resp)
}
