package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/caffissimo/admin-api/internal/enum"
	"github.com/caffissimo/admin-api/internal/handler"
	"github.com/caffissimo/admin-api/internal/middleware"
	"github.com/caffissimo/admin-api/internal/model"
	"github.com/caffissimo/admin-api/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type mockSearchStore struct {
	orders    []model.Order
	products  []model.Product
	users     []model.User
	branches  []model.Branch
	auditLogs []model.AuditLog

	ordersFilter store.OrderFilter
	usersBranch  uuid.UUID
}

func (m *mockSearchStore) ListOrders(ctx context.Context, f store.OrderFilter) ([]model.Order, error) {
	m.ordersFilter = f
	var out []model.Order
	for _, o := range m.orders {
		if f.BranchID != uuid.Nil && o.BranchID != f.BranchID {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(o.OrderNumber), strings.ToLower(f.Search)) {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (m *mockSearchStore) ListProducts(ctx context.Context) ([]model.Product, error) {
	return m.products, nil
}

func (m *mockSearchStore) ListUsers(ctx context.Context, branchID uuid.UUID) ([]model.User, error) {
	m.usersBranch = branchID
	return m.users, nil
}

func (m *mockSearchStore) ListBranches(ctx context.Context) ([]model.Branch, error) {
	return m.branches, nil
}

func (m *mockSearchStore) ListAuditLogs(ctx context.Context, f store.AuditLogFilter) ([]model.AuditLog, error) {
	var out []model.AuditLog
	for _, l := range m.auditLogs {
		if f.BranchID != uuid.Nil && l.BranchID != f.BranchID {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func setupSearchRouter(st handler.SearchStore) http.Handler {
	h := handler.NewSearchHandler(st)
	r := chi.NewRouter()
	r.Use(middleware.Authenticate(testJWTSecret))
	r.Get("/search", h.Search)
	return r
}

func searchAs(t *testing.T, srv http.Handler, role enum.Role, branchID uuid.UUID, q string) (int, searchResult) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/search?q="+q, nil)
	req.Header.Set("Authorization", authToken(t, role, branchID))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	var res searchResult
	if rec.Code == http.StatusOK {
		if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return rec.Code, res
}

type searchResult struct {
	Orders    []model.Order    `json:"orders"`
	Products  []model.Product  `json:"products"`
	Users     []model.User     `json:"users"`
	Branches  []model.Branch   `json:"branches"`
	AuditLogs []model.AuditLog `json:"audit_logs"`
}

func TestSearchRequiresQuery(t *testing.T) {
	srv := setupSearchRouter(&mockSearchStore{})

	req := httptest.NewRequest(http.MethodGet, "/search", nil)
	req.Header.Set("Authorization", authToken(t, enum.RoleSuperAdmin, uuid.Nil))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestSearchMatchesAcrossEntities(t *testing.T) {
	st := &mockSearchStore{
		orders: []model.Order{testOrder(testBranchA, enum.OrderStatusCompleted)},
		products: []model.Product{
			{ID: uuid.New(), Name: "Espresso Doppio"},
			{ID: uuid.New(), Name: "Cold Brew", Description: "slow-steeped espresso alternative"},
			{ID: uuid.New(), Name: "Matcha Latte"},
		},
		users: []model.User{
			{ID: uuid.New(), Name: "Espen Larsen", Email: "espen@example.com", Role: enum.RoleSupervisor},
		},
		branches: []model.Branch{
			{ID: testBranchA, Name: "Caffissimo Espresso Bar", Address: "12 Bean St"},
			{ID: testBranchB, Name: "Caffissimo Harbor", Address: "3 Dock Rd"},
		},
		auditLogs: []model.AuditLog{
			{ID: uuid.New(), Action: enum.AuditPriceChange, EntityType: "BranchProduct", UserName: "Espen Larsen", BranchID: testBranchA, CreatedAt: time.Now()},
		},
	}
	srv := setupSearchRouter(st)

	code, res := searchAs(t, srv, enum.RoleSuperAdmin, uuid.Nil, "esp")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want %d", code, http.StatusOK)
	}
	if len(res.Products) != 2 {
		t.Errorf("len(products) = %d, want 2", len(res.Products))
	}
	if len(res.Branches) != 1 {
		t.Errorf("len(branches) = %d, want 1", len(res.Branches))
	}
	if len(res.Users) != 1 {
		t.Errorf("len(users) = %d, want 1", len(res.Users))
	}
	if len(res.AuditLogs) != 1 {
		t.Errorf("len(auditLogs) = %d, want 1", len(res.AuditLogs))
	}
}

func TestSearchHidesRestrictedSectionsFromSupervisor(t *testing.T) {
	st := &mockSearchStore{
		users: []model.User{
			{ID: uuid.New(), Name: "Espen Larsen", Email: "espen@example.com", Role: enum.RoleSupervisor},
		},
		auditLogs: []model.AuditLog{
			{ID: uuid.New(), Action: enum.AuditPriceChange, EntityType: "BranchProduct", UserName: "Espen Larsen", BranchID: testBranchA, CreatedAt: time.Now()},
		},
	}
	srv := setupSearchRouter(st)

	code, res := searchAs(t, srv, enum.RoleSupervisor, testBranchA, "espen")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want %d", code, http.StatusOK)
	}
	if len(res.Users) != 0 {
		t.Errorf("len(users) = %d, want 0 for supervisor", len(res.Users))
	}
	if len(res.AuditLogs) != 0 {
		t.Errorf("len(auditLogs) = %d, want 0 for supervisor", len(res.AuditLogs))
	}
}

func TestSearchScopesOrdersToCallerBranch(t *testing.T) {
	st := &mockSearchStore{
		orders: []model.Order{
			testOrder(testBranchA, enum.OrderStatusCompleted),
			testOrder(testBranchB, enum.OrderStatusCompleted),
		},
	}
	srv := setupSearchRouter(st)

	code, res := searchAs(t, srv, enum.RoleBranchOwner, testBranchA, "ORD-")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want %d", code, http.StatusOK)
	}
	if st.ordersFilter.BranchID != testBranchA {
		t.Errorf("order filter branch = %s, want %s", st.ordersFilter.BranchID, testBranchA)
	}
	if len(res.Orders) != 1 {
		t.Errorf("len(orders) = %d, want 1", len(res.Orders))
	}
}

func TestSearchCapsEachSection(t *testing.T) {
	st := &mockSearchStore{}
	for i := 0; i < 8; i++ {
		st.products = append(st.products, model.Product{
			ID:   uuid.New(),
			Name: fmt.Sprintf("Espresso Blend %d", i),
		})
	}
	srv := setupSearchRouter(st)

	code, res := searchAs(t, srv, enum.RoleSuperAdmin, uuid.Nil, "espresso")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want %d", code, http.StatusOK)
	}
	if len(res.Products) != 5 {
		t.Errorf("len(products) = %d, want 5", len(res.Products))
	}
}
