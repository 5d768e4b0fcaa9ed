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
	"github.com/caffissimo/admin-api/internal/model"
	"github.com/caffissimo/admin-api/internal/rbac"
	"github.com/caffissimo/admin-api/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthStore defines the store methods needed by auth handlers.
// Satisfied by *store.Memory; narrow interface for testability.
type AuthStore interface {
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
}

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	store     AuthStore
	jwtSecret string
	tokenTTL  time.Duration
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(store AuthStore, jwtSecret string, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{store: store, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// RegisterRoutes registers auth endpoints on the given Chi router.
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.Login)
}

// --- Request / Response types ---

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string       `json:"access_token"`
	User        userResponse `json:"user"`
}

type userResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     enum.Role `json:"role"`
	BranchID uuid.UUID `json:"branch_id,omitempty"`
	IsActive bool      `json:"is_active"`
}

func toUserResponse(u model.User) userResponse {
	return userResponse{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Role:     u.Role,
		BranchID: u.BranchID,
		IsActive: u.IsActive,
	}
}

// --- Handlers ---

// Login handles email + password authentication. Only roles with admin
// access get a token; cashiers authenticate against the POS, not here.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		errorJSON(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.store.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			errorJSON(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		log.Printf("ERROR: get user by email: %v", err)
		errorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if !user.IsActive {
		errorJSON(w, http.StatusUnauthorized, "account is disabled")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		errorJSON(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if !rbac.CanAccessAdmin(user.Role) {
		errorJSON(w, http.StatusForbidden, "admin access required")
		return
	}

	token, err := auth.GenerateToken(h.jwtSecret, user.ID, user.BranchID, user.Role, h.tokenTTL)
	if err != nil {
		log.Printf("ERROR: generate token: %v", err)
		errorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{
		AccessToken: token,
		User:        toUserResponse(user),
	})
}
