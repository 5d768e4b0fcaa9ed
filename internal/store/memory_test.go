package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/caffissimo/admin-api/internal/enum"
	"github.com/caffissimo/admin-api/internal/model"
	"github.com/caffissimo/admin-api/internal/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func newStore(t *testing.T) (*store.Memory, *store.Dataset) {
	t.Helper()
	ds := store.NewDataset()
	return store.NewMemory(ds), ds
}

func TestListOrdersBranchFilter(t *testing.T) {
	st, ds := newStore(t)
	ctx := context.Background()
	branch := ds.Branches[0].ID

	orders, err := st.ListOrders(ctx, store.OrderFilter{BranchID: branch})
	if err != nil {
		t.Fatalf("ListOrders() error = %v", err)
	}
	if len(orders) == 0 {
		t.Fatal("expected seeded orders for the first branch")
	}
	for _, o := range orders {
		if o.BranchID != branch {
			t.Errorf("order %s leaked from branch %s", o.OrderNumber, o.BranchID)
		}
	}
}

func TestListOrdersWindowFilter(t *testing.T) {
	st, _ := newStore(t)
	ctx := context.Background()

	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 5, 23, 59, 59, 0, time.UTC)

	orders, err := st.ListOrders(ctx, store.OrderFilter{From: from, To: to})
	if err != nil {
		t.Fatalf("ListOrders() error = %v", err)
	}
	for _, o := range orders {
		if o.CreatedAt.Before(from) || o.CreatedAt.After(to) {
			t.Errorf("order %s at %v outside window", o.OrderNumber, o.CreatedAt)
		}
	}

	all, _ := st.ListOrders(ctx, store.OrderFilter{})
	if len(orders) >= len(all) {
		t.Errorf("window filter removed nothing: %d of %d", len(orders), len(all))
	}
}

func TestListOrdersSearch(t *testing.T) {
	st, _ := newStore(t)
	ctx := context.Background()

	all, _ := st.ListOrders(ctx, store.OrderFilter{})
	var target model.Order
	for _, o := range all {
		if o.CustomerName != "" {
			target = o
			break
		}
	}
	if target.ID == uuid.Nil {
		t.Skip("no seeded order with a customer name")
	}

	got, err := st.ListOrders(ctx, store.OrderFilter{Search: target.CustomerName})
	if err != nil {
		t.Fatalf("ListOrders() error = %v", err)
	}
	found := false
	for _, o := range got {
		if o.ID == target.ID {
			found = true
		}
	}
	if !found {
		t.Errorf("search %q did not return order %s", target.CustomerName, target.OrderNumber)
	}
}

func TestReplaceOrderSwapsWholeRecord(t *testing.T) {
	st, _ := newStore(t)
	ctx := context.Background()

	all, _ := st.ListOrders(ctx, store.OrderFilter{})
	o := all[0]
	o.InternalNotes = "swapped"

	if err := st.ReplaceOrder(ctx, o); err != nil {
		t.Fatalf("ReplaceOrder() error = %v", err)
	}
	got, err := st.GetOrder(ctx, o.ID)
	if err != nil {
		t.Fatalf("GetOrder() error = %v", err)
	}
	if got.InternalNotes != "swapped" {
		t.Errorf("InternalNotes = %q, want swapped", got.InternalNotes)
	}
}

func TestGetOrderNotFound(t *testing.T) {
	st, _ := newStore(t)
	_, err := st.GetOrder(context.Background(), uuid.New())
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestAppendAuditLogIsAppendOnly(t *testing.T) {
	st, _ := newStore(t)
	ctx := context.Background()

	before, _ := st.ListAuditLogs(ctx, store.AuditLogFilter{})
	entry := model.AuditLog{
		ID:        uuid.New(),
		Action:    enum.AuditOrderCancelled,
		CreatedAt: time.Now(),
	}
	if err := st.AppendAuditLog(ctx, entry); err != nil {
		t.Fatalf("AppendAuditLog() error = %v", err)
	}
	after, _ := st.ListAuditLogs(ctx, store.AuditLogFilter{})
	if len(after) != len(before)+1 {
		t.Errorf("log length = %d, want %d", len(after), len(before)+1)
	}
}

func TestAddExternalSalesEntry(t *testing.T) {
	st, ds := newStore(t)
	ctx := context.Background()
	branch := ds.Branches[0].ID

	entry := model.ExternalSalesEntry{
		ID:         uuid.New(),
		BranchID:   branch,
		Platform:   enum.PlatformDoorDash,
		Date:       time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC),
		TotalSales: decimal.RequireFromString("188.00"),
		OrderCount: 14,
		Source:     enum.EntrySourceManual,
		CreatedAt:  time.Now(),
	}
	if err := st.AddExternalSalesEntry(ctx, entry); err != nil {
		t.Fatalf("AddExternalSalesEntry() error = %v", err)
	}

	got, err := st.ListExternalSales(ctx, store.ExternalSalesFilter{
		BranchID: branch,
		From:     entry.Date,
		To:       entry.Date,
		Platform: enum.PlatformDoorDash,
	})
	if err != nil {
		t.Fatalf("ListExternalSales() error = %v", err)
	}
	found := false
	for _, e := range got {
		if e.ID == entry.ID {
			found = true
		}
	}
	if !found {
		t.Error("added entry not returned by ListExternalSales")
	}
}
