package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/caffissimo/admin-api/internal/enum"
	"github.com/caffissimo/admin-api/internal/model"
	"github.com/shopspring/decimal"
)

// Errors returned by order lifecycle operations.
var (
	ErrInvalidStatus     = errors.New("invalid status")
	ErrOrderReadOnly     = errors.New("order is read-only")
	ErrMalformedTotals   = errors.New("order totals do not reconcile")
	ErrMalformedLineItem = errors.New("line item total does not match quantity x unit price")
)

// allowedTransitions defines valid status transitions.
// Key is current status, value is the set of statuses it can move to.
// The happy path is linear; cancelled is reachable from every
// non-terminal state and is itself terminal.
var allowedTransitions = map[enum.OrderStatus][]enum.OrderStatus{
	enum.OrderStatusPending:   {enum.OrderStatusConfirmed, enum.OrderStatusCancelled},
	enum.OrderStatusConfirmed: {enum.OrderStatusPreparing, enum.OrderStatusCancelled},
	enum.OrderStatusPreparing: {enum.OrderStatusReady, enum.OrderStatusCancelled},
	enum.OrderStatusReady:     {enum.OrderStatusCompleted, enum.OrderStatusCancelled},
}

// IsValidOrderStatus reports whether s is one of the known statuses.
func IsValidOrderStatus(s enum.OrderStatus) bool {
	switch s {
	case enum.OrderStatusPending, enum.OrderStatusConfirmed,
		enum.OrderStatusPreparing, enum.OrderStatusReady,
		enum.OrderStatusCompleted, enum.OrderStatusCancelled:
		return true
	}
	return false
}

// ValidateStatusTransition checks if moving from current to next is allowed.
func ValidateStatusTransition(current, next enum.OrderStatus) error {
	allowed, ok := allowedTransitions[current]
	if !ok {
		return fmt.Errorf("%w: cannot transition from %s", ErrInvalidStatus, current)
	}
	for _, s := range allowed {
		if s == next {
			return nil
		}
	}
	return fmt.Errorf("%w: cannot transition from %s to %s", ErrInvalidStatus, current, next)
}

// TransitionOrder returns a replacement order with the new status and
// an extended status history. The input order is not mutated; callers
// swap the whole record, keeping order values immutable in place.
// Read-only orders (delivery platform mirrors) refuse every transition.
func TransitionOrder(o model.Order, next enum.OrderStatus, note string, now time.Time) (model.Order, error) {
	if o.IsReadOnly {
		return model.Order{}, ErrOrderReadOnly
	}
	if !IsValidOrderStatus(next) {
		return model.Order{}, ErrInvalidStatus
	}
	if err := ValidateStatusTransition(o.Status, next); err != nil {
		return model.Order{}, err
	}

	history := make([]model.StatusChange, len(o.StatusHistory), len(o.StatusHistory)+1)
	copy(history, o.StatusHistory)
	history = append(history, model.StatusChange{Status: next, Timestamp: now, Note: note})

	o.Status = next
	o.StatusHistory = history
	o.UpdatedAt = now
	return o, nil
}

// ValidateOrderTotals checks the stored money fields against the
// pricing invariants: each line's total is quantity x unit price and
// the order total is subtotal + tax - discount. Stored totals are
// trusted at read time; this runs at the ingestion boundary.
func ValidateOrderTotals(o model.Order) error {
	for i, item := range o.Items {
		want := item.UnitPrice.Mul(decimal.NewFromInt32(item.Quantity))
		if !item.TotalPrice.Equal(want) {
			return fmt.Errorf("item[%d]: %w", i, ErrMalformedLineItem)
		}
	}
	want := o.Subtotal.Add(o.Tax).Sub(o.Discount)
	if !o.Total.Equal(want) {
		return ErrMalformedTotals
	}
	return nil
}
