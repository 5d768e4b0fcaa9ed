package model

import (
	"time"

	"github.com/caffissimo/admin-api/internal/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItem is a single line on an order. TotalPrice is stored for
// display but is always Quantity x UnitPrice; validation happens at
// the ingestion boundary.
type OrderItem struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int32           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// StatusChange is one entry in an order's append-only status history.
type StatusChange struct {
	Status    enum.OrderStatus `json:"status"`
	Timestamp time.Time        `json:"timestamp"`
	Note      string           `json:"note,omitempty"`
}

// Order is an individually tracked transaction from any channel.
// Orders are immutable value records; a status update produces a
// whole-record replacement with an extended StatusHistory.
type Order struct {
	ID              uuid.UUID          `json:"id"`
	OrderNumber     string             `json:"order_number"`
	BranchID        uuid.UUID          `json:"branch_id"`
	Source          enum.OrderSource   `json:"source"`
	Status          enum.OrderStatus   `json:"status"`
	Items           []OrderItem        `json:"items"`
	Subtotal        decimal.Decimal    `json:"subtotal"`
	Tax             decimal.Decimal    `json:"tax"`
	Discount        decimal.Decimal    `json:"discount"`
	Total           decimal.Decimal    `json:"total"`
	PaymentMethod   enum.PaymentMethod `json:"payment_method"`
	CustomerName    string             `json:"customer_name,omitempty"`
	CustomerEmail   string             `json:"customer_email,omitempty"`
	Notes           string             `json:"notes,omitempty"`
	InternalNotes   string             `json:"internal_notes,omitempty"`
	ExternalOrderID string             `json:"external_order_id,omitempty"`
	IsReadOnly      bool               `json:"is_read_only"`
	StatusHistory   []StatusChange     `json:"status_history"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}
