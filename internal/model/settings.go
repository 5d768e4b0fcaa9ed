package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settings holds the global rates applied when pricing orders.
type Settings struct {
	TaxRate        decimal.Decimal `json:"tax_rate"`
	ServiceFeeRate decimal.Decimal `json:"service_fee_rate"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
