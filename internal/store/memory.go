// Package store is the data layer behind the admin API. The current
// build holds a deterministic seed dataset in memory; a real
// deployment swaps this package's Memory for an actual database while
// keeping the same method set.
package store

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/caffissimo/admin-api/internal/enum"
	"github.com/caffissimo/admin-api/internal/model"
	"github.com/google/uuid"
)

// ErrNotFound is returned when a lookup matches nothing.
var ErrNotFound = errors.New("not found")

// OrderFilter narrows ListOrders. Zero values mean "no constraint".
type OrderFilter struct {
	BranchID uuid.UUID
	From, To time.Time
	Source   enum.OrderSource
	Status   enum.OrderStatus
	Search   string // matches order number or customer name, case-insensitive
}

// ExternalSalesFilter narrows ListExternalSales.
type ExternalSalesFilter struct {
	BranchID uuid.UUID
	From, To time.Time
	Platform enum.ExternalPlatform
}

// DayFilter narrows the per-day collections (fridge reports,
// attendance, POS sessions).
type DayFilter struct {
	BranchID uuid.UUID
	From, To time.Time
}

// AuditLogFilter narrows ListAuditLogs.
type AuditLogFilter struct {
	BranchID uuid.UUID
	From, To time.Time
	Action   enum.AuditAction
}

// Memory is the in-memory store. Reads hand out copies of the backing
// slices so callers always see a consistent snapshot; the only
// mutations are whole-record replacement and append, under the lock.
type Memory struct {
	mu sync.RWMutex

	branches       []model.Branch
	categories     []model.Category
	products       []model.Product
	branchProducts []model.BranchProduct
	users          []model.User
	orders         []model.Order
	externalSales  []model.ExternalSalesEntry
	offers         []model.Offer
	fridgeReports  []model.FridgeStockReport
	attendance     []model.AttendanceEntry
	posSessions    []model.POSSession
	auditLogs      []model.AuditLog
	settings       model.Settings
}

// NewMemory builds a store over the given dataset.
func NewMemory(ds *Dataset) *Memory {
	return &Memory{
		branches:       ds.Branches,
		categories:     ds.Categories,
		products:       ds.Products,
		branchProducts: ds.BranchProducts,
		users:          ds.Users,
		orders:         ds.Orders,
		externalSales:  ds.ExternalSales,
		offers:         ds.Offers,
		fridgeReports:  ds.FridgeReports,
		attendance:     ds.Attendance,
		posSessions:    ds.POSSessions,
		auditLogs:      ds.AuditLogs,
		settings:       ds.Settings,
	}
}

func inWindow(t, from, to time.Time) bool {
	if !from.IsZero() && t.Before(from) {
		return false
	}
	if !to.IsZero() && t.After(to) {
		return false
	}
	return true
}

// --- Branches ---

func (m *Memory) ListBranches(ctx context.Context) ([]model.Branch, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Branch, len(m.branches))
	copy(out, m.branches)
	return out, nil
}

func (m *Memory) GetBranch(ctx context.Context, id uuid.UUID) (model.Branch, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, b := range m.branches {
		if b.ID == id {
			return b, nil
		}
	}
	return model.Branch{}, ErrNotFound
}

func (m *Memory) CreateBranch(ctx context.Context, b model.Branch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.branches = append(m.branches, b)
	return nil
}

// --- Catalog ---

func (m *Memory) ListCategories(ctx context.Context) ([]model.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Category, len(m.categories))
	copy(out, m.categories)
	return out, nil
}

func (m *Memory) ListProducts(ctx context.Context) ([]model.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

// ListBranchProducts returns the pricing records for one branch, or
// for every branch when branchID is uuid.Nil.
func (m *Memory) ListBranchProducts(ctx context.Context, branchID uuid.UUID) ([]model.BranchProduct, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []model.BranchProduct
	for _, bp := range m.branchProducts {
		if branchID == uuid.Nil || bp.BranchID == branchID {
			out = append(out, bp)
		}
	}
	return out, nil
}

// --- Users ---

func (m *Memory) ListUsers(ctx context.Context, branchID uuid.UUID) ([]model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []model.User
	for _, u := range m.users {
		if branchID == uuid.Nil || u.BranchID == branchID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *Memory) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return model.User{}, ErrNotFound
}

// --- Orders ---

func (m *Memory) ListOrders(ctx context.Context, f OrderFilter) ([]model.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []model.Order
	for _, o := range m.orders {
		if f.BranchID != uuid.Nil && o.BranchID != f.BranchID {
			continue
		}
		if !inWindow(o.CreatedAt, f.From, f.To) {
			continue
		}
		if f.Source != "" && o.Source != f.Source {
			continue
		}
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		if f.Search != "" && !matchesOrderSearch(o, f.Search) {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func matchesOrderSearch(o model.Order, q string) bool {
	q = strings.ToLower(q)
	return strings.Contains(strings.ToLower(o.OrderNumber), q) ||
		strings.Contains(strings.ToLower(o.CustomerName), q)
}

func (m *Memory) GetOrder(ctx context.Context, id uuid.UUID) (model.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, o := range m.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return model.Order{}, ErrNotFound
}

// ReplaceOrder swaps the stored record for its replacement. Orders are
// value records; there is no in-place mutation path.
func (m *Memory) ReplaceOrder(ctx context.Context, o model.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.orders {
		if m.orders[i].ID == o.ID {
			m.orders[i] = o
			return nil
		}
	}
	return ErrNotFound
}

// --- External sales ---

func (m *Memory) ListExternalSales(ctx context.Context, f ExternalSalesFilter) ([]model.ExternalSalesEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []model.ExternalSalesEntry
	for _, e := range m.externalSales {
		if f.BranchID != uuid.Nil && e.BranchID != f.BranchID {
			continue
		}
		if !inWindow(e.Date, f.From, f.To) {
			continue
		}
		if f.Platform != "" && e.Platform != f.Platform {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (m *Memory) AddExternalSalesEntry(ctx context.Context, e model.ExternalSalesEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.externalSales = append(m.externalSales, e)
	return nil
}

// --- Offers ---

func (m *Memory) ListOffers(ctx context.Context) ([]model.Offer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Offer, len(m.offers))
	copy(out, m.offers)
	return out, nil
}

// --- Fridge reports ---

func (m *Memory) ListFridgeReports(ctx context.Context, f DayFilter) ([]model.FridgeStockReport, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []model.FridgeStockReport
	for _, r := range m.fridgeReports {
		if f.BranchID != uuid.Nil && r.BranchID != f.BranchID {
			continue
		}
		if !inWindow(r.Date, f.From, f.To) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *Memory) AddFridgeReport(ctx context.Context, r model.FridgeStockReport) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fridgeReports = append(m.fridgeReports, r)
	return nil
}

// --- Attendance / POS sessions ---

func (m *Memory) ListAttendance(ctx context.Context, f DayFilter) ([]model.AttendanceEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []model.AttendanceEntry
	for _, a := range m.attendance {
		if f.BranchID != uuid.Nil && a.BranchID != f.BranchID {
			continue
		}
		if !inWindow(a.Date, f.From, f.To) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (m *Memory) ListPOSSessions(ctx context.Context, f DayFilter) ([]model.POSSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []model.POSSession
	for _, s := range m.posSessions {
		if f.BranchID != uuid.Nil && s.BranchID != f.BranchID {
			continue
		}
		if !inWindow(s.LoginAt, f.From, f.To) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

// --- Audit logs ---

func (m *Memory) ListAuditLogs(ctx context.Context, f AuditLogFilter) ([]model.AuditLog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []model.AuditLog
	for _, l := range m.auditLogs {
		if f.BranchID != uuid.Nil && l.BranchID != f.BranchID {
			continue
		}
		if !inWindow(l.CreatedAt, f.From, f.To) {
			continue
		}
		if f.Action != "" && l.Action != f.Action {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

// AppendAuditLog adds an entry to the append-only log. Entries are
// never updated or removed.
func (m *Memory) AppendAuditLog(ctx context.Context, l model.AuditLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.auditLogs = append(m.auditLogs, l)
	return nil
}

// --- Settings ---

func (m *Memory) GetSettings(ctx context.Context) (model.Settings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings, nil
}

func (m *Memory) UpdateSettings(ctx context.Context, s model.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = s
	return nil
}
