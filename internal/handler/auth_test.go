package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/caffissimo/admin-api/internal/enum"
	"github.com/caffissimo/admin-api/internal/handler"
	"github.com/caffissimo/admin-api/internal/model"
	"github.com/caffissimo/admin-api/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type mockAuthStore struct {
	users map[string]model.User
}

func (m *mockAuthStore) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	u, ok := m.users[email]
	if !ok {
		return model.User{}, store.ErrNotFound
	}
	return u, nil
}

func setupAuthRouter(st handler.AuthStore) http.Handler {
	h := handler.NewAuthHandler(st, testJWTSecret, time.Hour)
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r
}

func authUser(t *testing.T, role enum.Role, password string, active bool) model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return model.User{
		ID:           uuid.New(),
		Name:         "Test User",
		Email:        "user@caffissimo.com",
		PasswordHash: string(hash),
		Role:         role,
		BranchID:     testBranchA,
		IsActive:     active,
	}
}

func postLogin(srv http.Handler, email, password string) *httptest.ResponseRecorder {
	body := bytes.NewBufferString(fmt.Sprintf(`{"email":%q,"password":%q}`, email, password))
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestLogin(t *testing.T) {
	user := authUser(t, enum.RoleBranchOwner, "caffissimo123", true)
	srv := setupAuthRouter(&mockAuthStore{users: map[string]model.User{user.Email: user}})

	rec := postLogin(srv, user.Email, "caffissimo123")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		AccessToken string `json:"access_token"`
		User        struct {
			Email string    `json:"email"`
			Role  enum.Role `json:"role"`
		} `json:"user"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.AccessToken == "" {
		t.Error("empty access token")
	}
	if resp.User.Role != enum.RoleBranchOwner {
		t.Errorf("role = %s, want branch_owner", resp.User.Role)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	user := authUser(t, enum.RoleBranchOwner, "caffissimo123", true)
	srv := setupAuthRouter(&mockAuthStore{users: map[string]model.User{user.Email: user}})

	rec := postLogin(srv, user.Email, "wrong")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	srv := setupAuthRouter(&mockAuthStore{users: map[string]model.User{}})

	rec := postLogin(srv, "ghost@caffissimo.com", "whatever")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestLoginDisabledAccount(t *testing.T) {
	user := authUser(t, enum.RoleBranchOwner, "caffissimo123", false)
	srv := setupAuthRouter(&mockAuthStore{users: map[string]model.User{user.Email: user}})

	rec := postLogin(srv, user.Email, "caffissimo123")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestLoginCashierDenied(t *testing.T) {
	user := authUser(t, enum.RoleCashier, "caffissimo123", true)
	srv := setupAuthRouter(&mockAuthStore{users: map[string]model.User{user.Email: user}})

	rec := postLogin(srv, user.Email, "caffissimo123")
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestLoginMissingFields(t *testing.T) {
	srv := setupAuthRouter(&mockAuthStore{users: map[string]model.User{}})

	rec := postLogin(srv, "", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
