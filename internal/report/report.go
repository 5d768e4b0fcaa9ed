// Package report produces the sales rollups behind the dashboard and
// report screens: per-source revenue, daily series, branch comparison,
// and top products.
//
// Orders and ExternalSalesEntries are additive by construction: orders
// model individually tracked transactions, entries model bulk revenue
// the platform reported without per-order detail, and the same
// real-world transaction never appears in both. Rollups therefore sum
// the two collections and never attempt deduplication between them.
package report

import (
	"sort"
	"time"

	"github.com/caffissimo/admin-api/internal/enum"
	"github.com/caffissimo/admin-api/internal/model"
	"github.com/caffissimo/admin-api/internal/scope"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Scope is a resolved (branch, window) pair. BranchID uuid.Nil means
// all branches.
type Scope struct {
	BranchID uuid.UUID
	Interval scope.Interval
}

// ContainsOrder reports whether the order is in scope: created inside
// the window (inclusive) and in the scoped branch, if any.
func (s Scope) ContainsOrder(o model.Order) bool {
	return s.Interval.Contains(o.CreatedAt) &&
		(s.BranchID == uuid.Nil || o.BranchID == s.BranchID)
}

// ContainsEntry applies the identical rule to an external sales entry
// using its day-granularity date.
func (s Scope) ContainsEntry(e model.ExternalSalesEntry) bool {
	return s.Interval.Contains(e.Date) &&
		(s.BranchID == uuid.Nil || e.BranchID == s.BranchID)
}

// SourceBreakdown is revenue split across the four order channels.
type SourceBreakdown struct {
	POS       decimal.Decimal `json:"pos"`
	Ecommerce decimal.Decimal `json:"ecommerce"`
	UberEats  decimal.Decimal `json:"uber_eats"`
	DoorDash  decimal.Decimal `json:"doordash"`
}

// Total sums the four buckets.
func (b SourceBreakdown) Total() decimal.Decimal {
	return b.POS.Add(b.Ecommerce).Add(b.UberEats).Add(b.DoorDash)
}

func (b *SourceBreakdown) add(source enum.OrderSource, amount decimal.Decimal) {
	switch source {
	case enum.SourcePOS:
		b.POS = b.POS.Add(amount)
	case enum.SourceEcommerce:
		b.Ecommerce = b.Ecommerce.Add(amount)
	case enum.SourceUberEats:
		b.UberEats = b.UberEats.Add(amount)
	case enum.SourceDoorDash:
		b.DoorDash = b.DoorDash.Add(amount)
	}
	// Unknown sources fall through: the record stays out of every
	// per-source bucket. Rejecting such records is the ingestion
	// layer's job.
}

func (b *SourceBreakdown) addEntry(platform enum.ExternalPlatform, amount decimal.Decimal) {
	switch platform {
	case enum.PlatformUberEats:
		b.UberEats = b.UberEats.Add(amount)
	case enum.PlatformDoorDash:
		b.DoorDash = b.DoorDash.Add(amount)
	}
}

// Summary is the KPI block at the top of the dashboard.
type Summary struct {
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	BySource       SourceBreakdown `json:"by_source"`
	OrderCount     int             `json:"order_count"`
	CancelledCount int             `json:"cancelled_count"`
	AvgOrderValue  decimal.Decimal `json:"avg_order_value"`
}

// ComputeSummary aggregates in-scope orders and external entries into
// the dashboard KPIs. Cancelled orders never contribute to revenue or
// averages; they are surfaced only through CancelledCount. TotalRevenue
// is by definition the sum of the four per-source buckets.
func ComputeSummary(s Scope, orders []model.Order, entries []model.ExternalSalesEntry) Summary {
	var sum Summary
	for _, o := range orders {
		if !s.ContainsOrder(o) {
			continue
		}
		if o.Status == enum.OrderStatusCancelled {
			sum.CancelledCount++
			continue
		}
		sum.OrderCount++
		sum.BySource.add(o.Source, o.Total)
	}
	for _, e := range entries {
		if !s.ContainsEntry(e) {
			continue
		}
		sum.BySource.addEntry(e.Platform, e.TotalSales)
	}
	sum.TotalRevenue = sum.BySource.Total()
	if sum.OrderCount > 0 {
		sum.AvgOrderValue = sum.TotalRevenue.Div(decimal.NewFromInt(int64(sum.OrderCount)))
	}
	return sum
}

// DailyBucket is one calendar day in the sales time series.
type DailyBucket struct {
	Date       time.Time       `json:"date"`
	BySource   SourceBreakdown `json:"by_source"`
	Total      decimal.Decimal `json:"total"`
	OrderCount int             `json:"order_count"`
}

// ComputeDailySeries buckets in-scope revenue per calendar day across
// the whole window, one bucket per day even when nothing matched.
// OrderCount counts orders only: external entries are aggregates
// already and have no drill-down transactions behind them.
func ComputeDailySeries(s Scope, orders []model.Order, entries []model.ExternalSalesEntry) []DailyBucket {
	days := s.Interval.Days()
	buckets := make([]DailyBucket, len(days))
	for i, day := range days {
		buckets[i].Date = day
	}

	index := func(t time.Time) int {
		for i, day := range days {
			if scope.SameDay(day, t) {
				return i
			}
		}
		return -1
	}

	for _, o := range orders {
		if !s.ContainsOrder(o) || o.Status == enum.OrderStatusCancelled {
			continue
		}
		i := index(o.CreatedAt)
		if i < 0 {
			continue
		}
		buckets[i].BySource.add(o.Source, o.Total)
		buckets[i].OrderCount++
	}
	for _, e := range entries {
		if !s.ContainsEntry(e) {
			continue
		}
		i := index(e.Date)
		if i < 0 {
			continue
		}
		buckets[i].BySource.addEntry(e.Platform, e.TotalSales)
	}

	for i := range buckets {
		buckets[i].Total = buckets[i].BySource.Total()
	}
	return buckets
}

// BranchRollup is one branch's standing in the comparison table.
type BranchRollup struct {
	BranchID      uuid.UUID       `json:"branch_id"`
	BranchName    string          `json:"branch_name"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	OrderCount    int             `json:"order_count"`
	AvgOrderValue decimal.Decimal `json:"avg_order_value"`
}

// ComputeBranchComparison ranks every branch by total revenue over the
// window, descending. The sort is stable: branches with equal revenue
// keep their input order. Source is irrelevant here, so every
// non-cancelled order counts even if its source value is unrecognized.
func ComputeBranchComparison(interval scope.Interval, branches []model.Branch, orders []model.Order, entries []model.ExternalSalesEntry) []BranchRollup {
	rollups := make([]BranchRollup, len(branches))
	for i, b := range branches {
		s := Scope{BranchID: b.ID, Interval: interval}
		r := BranchRollup{BranchID: b.ID, BranchName: b.Name}
		for _, o := range orders {
			if !s.ContainsOrder(o) || o.Status == enum.OrderStatusCancelled {
				continue
			}
			r.TotalRevenue = r.TotalRevenue.Add(o.Total)
			r.OrderCount++
		}
		for _, e := range entries {
			if !s.ContainsEntry(e) {
				continue
			}
			r.TotalRevenue = r.TotalRevenue.Add(e.TotalSales)
		}
		if r.OrderCount > 0 {
			r.AvgOrderValue = r.TotalRevenue.Div(decimal.NewFromInt(int64(r.OrderCount)))
		}
		rollups[i] = r
	}

	sort.SliceStable(rollups, func(i, j int) bool {
		return rollups[i].TotalRevenue.GreaterThan(rollups[j].TotalRevenue)
	})
	return rollups
}

// ProductRollup is one product's accumulated line-item sales.
type ProductRollup struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Revenue     decimal.Decimal `json:"revenue"`
	UnitsSold   int64           `json:"units_sold"`
}

// ComputeTopProducts accumulates revenue and units per product across
// in-scope non-cancelled orders' line items, ranked by revenue
// descending. Ties keep first-seen order; the result is truncated to
// limit entries.
func ComputeTopProducts(s Scope, orders []model.Order, limit int) []ProductRollup {
	var rollups []ProductRollup
	byProduct := make(map[uuid.UUID]int)

	for _, o := range orders {
		if !s.ContainsOrder(o) || o.Status == enum.OrderStatusCancelled {
			continue
		}
		for _, item := range o.Items {
			i, ok := byProduct[item.ProductID]
			if !ok {
				i = len(rollups)
				byProduct[item.ProductID] = i
				rollups = append(rollups, ProductRollup{
					ProductID:   item.ProductID,
					ProductName: item.ProductName,
				})
			}
			rollups[i].Revenue = rollups[i].Revenue.Add(item.TotalPrice)
			rollups[i].UnitsSold += int64(item.Quantity)
		}
	}

	sort.SliceStable(rollups, func(i, j int) bool {
		return rollups[i].Revenue.GreaterThan(rollups[j].Revenue)
	})
	if limit >= 0 && len(rollups) > limit {
		rollups = rollups[:limit]
	}
	return rollups
}
