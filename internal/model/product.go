package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	SortOrder   int       `json:"sort_order"`
}

// Product is the global catalog entry; per-branch price and
// availability live on BranchProduct.
type Product struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	CategoryID   uuid.UUID `json:"category_id"`
	Images       []string  `json:"images"`
	Tags         []string  `json:"tags"`
	TastingNotes string    `json:"tasting_notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BranchProduct is the per-branch pricing/visibility record for a
// catalog product.
type BranchProduct struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	BranchID    uuid.UUID       `json:"branch_id"`
	Price       decimal.Decimal `json:"price"`
	IsAvailable bool            `json:"is_available"`
	IsVisible   bool            `json:"is_visible"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
