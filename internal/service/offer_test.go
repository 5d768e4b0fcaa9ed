package service_test

import (
	"testing"
	"time"

	"github.com/caffissimo/admin-api/internal/model"
	"github.com/caffissimo/admin-api/internal/service"
)

func TestDeriveOfferStatus(t *testing.T) {
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 28, 23, 59, 59, 0, time.UTC)

	tests := []struct {
		name   string
		active bool
		now    time.Time
		want   service.OfferStatus
	}{
		{"inside window", true, time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC), service.OfferStatusActive},
		{"at start", true, start, service.OfferStatusActive},
		{"at end", true, end, service.OfferStatusActive},
		{"before window", true, time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC), service.OfferStatusScheduled},
		{"after window", true, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), service.OfferStatusExpired},
		{"disabled inside window", false, time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), service.OfferStatusInactive},
		{"disabled flag wins over expired", false, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), service.OfferStatusInactive},
		{"disabled flag wins over scheduled", false, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), service.OfferStatusInactive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := model.Offer{StartDate: start, EndDate: end, IsActive: tt.active}
			if got := service.DeriveOfferStatus(o, tt.now); got != tt.want {
				t.Errorf("DeriveOfferStatus() = %s, want %s", got, tt.want)
			}
		})
	}
}
