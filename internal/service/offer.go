package service

import (
	"time"

	"github.com/caffissimo/admin-api/internal/model"
)

// OfferStatus is an offer's effective state at a point in time.
// It is always derived from IsActive and the validity window; a
// persisted copy would go stale the moment the window rolls over.
type OfferStatus string

const (
	OfferStatusActive    OfferStatus = "active"
	OfferStatusScheduled OfferStatus = "scheduled"
	OfferStatusExpired   OfferStatus = "expired"
	OfferStatusInactive  OfferStatus = "inactive"
)

// DeriveOfferStatus evaluates an offer's state at the given instant.
// The inactive flag wins over the window.
func DeriveOfferStatus(o model.Offer, now time.Time) OfferStatus {
	if !o.IsActive {
		return OfferStatusInactive
	}
	if now.Before(o.StartDate) {
		return OfferStatusScheduled
	}
	if now.After(o.EndDate) {
		return OfferStatusExpired
	}
	return OfferStatusActive
}
