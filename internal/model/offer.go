package model

import (
	"time"

	"github.com/caffissimo/admin-api/internal/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Offer is a discount rule optionally scoped to categories, products,
// or branches. Its effective status (active/scheduled/expired/inactive)
// is derived at read time from IsActive and the validity window, never
// stored.
type Offer struct {
	ID            uuid.UUID         `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	DiscountType  enum.DiscountType `json:"discount_type"`
	DiscountValue decimal.Decimal   `json:"discount_value"`
	StartDate     time.Time         `json:"start_date"`
	EndDate       time.Time         `json:"end_date"`
	ProductIDs    []uuid.UUID       `json:"product_ids,omitempty"`
	CategoryIDs   []uuid.UUID       `json:"category_ids,omitempty"`
	BranchIDs     []uuid.UUID       `json:"branch_ids,omitempty"`
	IsActive      bool              `json:"is_active"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// AppliesToBranch reports whether the offer covers the given branch.
// An offer with no branch list covers every branch.
func (o Offer) AppliesToBranch(branchID uuid.UUID) bool {
	if len(o.BranchIDs) == 0 {
		return true
	}
	for _, id := range o.BranchIDs {
		if id == branchID {
			return true
		}
	}
	return false
}
