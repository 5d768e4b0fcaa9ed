package model

import (
	"time"

	"github.com/caffissimo/admin-api/internal/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExternalSalesEntry is a bulk revenue figure reported by a delivery
// platform for one branch and one day. Entries supplement, and never
// overlap with, individually tracked Orders from the same platform:
// platform revenue for a day is order totals plus entry totals.
type ExternalSalesEntry struct {
	ID         uuid.UUID             `json:"id"`
	BranchID   uuid.UUID             `json:"branch_id"`
	Platform   enum.ExternalPlatform `json:"platform"`
	Date       time.Time             `json:"date"` // day granularity, midnight UTC
	TotalSales decimal.Decimal       `json:"total_sales"`
	OrderCount int                   `json:"order_count"`
	Source     enum.EntrySource      `json:"source"`
	ImportedAt time.Time             `json:"imported_at,omitempty"`
	CreatedAt  time.Time             `json:"created_at"`
}
