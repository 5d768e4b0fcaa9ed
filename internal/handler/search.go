package handler

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/caffissimo/admin-api/internal/enum"
	"github.com/caffissimo/admin-api/internal/middleware"
	"github.com/caffissimo/admin-api/internal/model"
	"github.com/caffissimo/admin-api/internal/rbac"
	"github.com/caffissimo/admin-api/internal/scope"
	"github.com/caffissimo/admin-api/internal/store"
	"github.com/google/uuid"
)

// maxSearchResults caps each result section.
const maxSearchResults = 5

// SearchStore defines the store methods needed by the global search
// handler. Satisfied by *store.Memory; narrow interface for
// testability.
type SearchStore interface {
	ListOrders(ctx context.Context, f store.OrderFilter) ([]model.Order, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	ListUsers(ctx context.Context, branchID uuid.UUID) ([]model.User, error)
	ListBranches(ctx context.Context) ([]model.Branch, error)
	ListAuditLogs(ctx context.Context, f store.AuditLogFilter) ([]model.AuditLog, error)
}

// SearchHandler answers the top-bar search across orders, products,
// users, branches and the audit trail in one call.
type SearchHandler struct {
	store SearchStore
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(store SearchStore) *SearchHandler {
	return &SearchHandler{store: store}
}

type searchResponse struct {
	Orders    []model.Order    `json:"orders"`
	Products  []model.Product  `json:"products"`
	Users     []userResponse   `json:"users"`
	Branches  []model.Branch   `json:"branches"`
	AuditLogs []model.AuditLog `json:"audit_logs"`
}

// auditActionLabels are the human-readable names shown in the admin
// UI; search matches against them as well as the raw action value.
var auditActionLabels = map[enum.AuditAction]string{
	enum.AuditPriceChange:       "Price Changed",
	enum.AuditOfferChange:       "Offer Modified",
	enum.AuditOrderCancelled:    "Order Cancelled",
	enum.AuditUserCreated:       "User Created",
	enum.AuditUserUpdated:       "User Updated",
	enum.AuditBranchUpdated:     "Branch Updated",
	enum.AuditProductCreated:    "Product Created",
	enum.AuditProductUpdated:    "Product Updated",
	enum.AuditStockReport:       "Stock Report",
	enum.AuditAttendanceUpdated: "Attendance Updated",
	enum.AuditSettingsUpdated:   "Settings Updated",
	enum.AuditExternalSales:     "External Sales Entry",
}

// Search runs one case-insensitive substring query over every entity
// type the caller may see. Orders, users and audit logs respect branch
// scoping; users and audit logs additionally require their screen
// permission, callers without it get those sections empty rather than
// a refusal. Each section holds at most five matches.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())

	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		errorJSON(w, http.StatusBadRequest, "q is required")
		return
	}
	needle := strings.ToLower(q)

	branchID := scope.ResolveBranchScope(claims.Role, claims.BranchID, uuid.Nil)

	resp := searchResponse{
		Orders:    []model.Order{},
		Products:  []model.Product{},
		Users:     []userResponse{},
		Branches:  []model.Branch{},
		AuditLogs: []model.AuditLog{},
	}

	orders, err := h.store.ListOrders(r.Context(), store.OrderFilter{BranchID: branchID, Search: q})
	if err != nil {
		log.Printf("ERROR: search orders: %v", err)
		errorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if len(orders) > maxSearchResults {
		orders = orders[:maxSearchResults]
	}
	resp.Orders = append(resp.Orders, orders...)

	products, err := h.store.ListProducts(r.Context())
	if err != nil {
		log.Printf("ERROR: search products: %v", err)
		errorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}
	for _, p := range products {
		if contains(needle, p.Name, p.Description) {
			resp.Products = append(resp.Products, p)
			if len(resp.Products) == maxSearchResults {
				break
			}
		}
	}

	branches, err := h.store.ListBranches(r.Context())
	if err != nil {
		log.Printf("ERROR: search branches: %v", err)
		errorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}
	for _, b := range branches {
		if contains(needle, b.Name, b.Address) {
			resp.Branches = append(resp.Branches, b)
			if len(resp.Branches) == maxSearchResults {
				break
			}
		}
	}

	if rbac.CanManageUsers(claims.Role) {
		users, err := h.store.ListUsers(r.Context(), branchID)
		if err != nil {
			log.Printf("ERROR: search users: %v", err)
			errorJSON(w, http.StatusInternalServerError, "internal server error")
			return
		}
		for _, u := range users {
			if contains(needle, u.Name, u.Email) {
				resp.Users = append(resp.Users, toUserResponse(u))
				if len(resp.Users) == maxSearchResults {
					break
				}
			}
		}
	}

	if rbac.CanViewAuditLogs(claims.Role) {
		logs, err := h.store.ListAuditLogs(r.Context(), store.AuditLogFilter{BranchID: branchID})
		if err != nil {
			log.Printf("ERROR: search audit logs: %v", err)
			errorJSON(w, http.StatusInternalServerError, "internal server error")
			return
		}
		for _, l := range logs {
			if contains(needle, l.UserName, l.EntityType, string(l.Action), auditActionLabels[l.Action]) {
				resp.AuditLogs = append(resp.AuditLogs, l)
				if len(resp.AuditLogs) == maxSearchResults {
					break
				}
			}
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func contains(needle string, haystacks ...string) bool {
	for _, s := range haystacks {
		if s != "" && strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}
