package report_test

import (
	"testing"
	"time"

	"github.com/caffissimo/admin-api/internal/enum"
	"github.com/caffissimo/admin-api/internal/model"
	"github.com/caffissimo/admin-api/internal/report"
	"github.com/caffissimo/admin-api/internal/scope"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	branchA = uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	branchB = uuid.MustParse("bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb")
)

func week() scope.Interval {
	return scope.Interval{
		From: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 2, 7, 23, 59, 59, 0, time.UTC),
	}
}

func order(branchID uuid.UUID, source enum.OrderSource, status enum.OrderStatus, total string, createdAt time.Time) model.Order {
	return model.Order{
		ID:        uuid.New(),
		BranchID:  branchID,
		Source:    source,
		Status:    status,
		Total:     decimal.RequireFromString(total),
		CreatedAt: createdAt,
	}
}

func entry(branchID uuid.UUID, platform enum.ExternalPlatform, total string, date time.Time) model.ExternalSalesEntry {
	return model.ExternalSalesEntry{
		ID:         uuid.New(),
		BranchID:   branchID,
		Platform:   platform,
		Date:       date,
		TotalSales: decimal.RequireFromString(total),
	}
}

func TestSummaryTotalEqualsSourceBuckets(t *testing.T) {
	s := report.Scope{Interval: week()}
	day := time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)

	orders := []model.Order{
		order(branchA, enum.SourcePOS, enum.OrderStatusCompleted, "12.50", day),
		order(branchA, enum.SourceEcommerce, enum.OrderStatusCompleted, "20.00", day),
		order(branchB, enum.SourceUberEats, enum.OrderStatusCompleted, "18.25", day),
	}
	entries := []model.ExternalSalesEntry{
		entry(branchA, enum.PlatformUberEats, "150.00", time.Date(2026, 2, 4, 0, 0, 0, 0, time.UTC)),
		entry(branchB, enum.PlatformDoorDash, "90.00", time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)),
	}

	sum := report.ComputeSummary(s, orders, entries)

	if got := sum.BySource.Total(); !sum.TotalRevenue.Equal(got) {
		t.Errorf("TotalRevenue %s != sum of buckets %s", sum.TotalRevenue, got)
	}
	if want := decimal.RequireFromString("290.75"); !sum.TotalRevenue.Equal(want) {
		t.Errorf("TotalRevenue = %s, want %s", sum.TotalRevenue, want)
	}
	if sum.OrderCount != 3 {
		t.Errorf("OrderCount = %d, want 3", sum.OrderCount)
	}
	if want := decimal.RequireFromString("168.25"); !sum.BySource.UberEats.Equal(want) {
		t.Errorf("UberEats bucket = %s, want %s (orders plus entries, never deduped)", sum.BySource.UberEats, want)
	}
}

func TestSummaryExcludesCancelledOrders(t *testing.T) {
	s := report.Scope{Interval: week()}
	day := time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)

	orders := []model.Order{
		order(branchA, enum.SourcePOS, enum.OrderStatusCompleted, "10.00", day),
		order(branchA, enum.SourcePOS, enum.OrderStatusCancelled, "20.00", day),
	}

	sum := report.ComputeSummary(s, orders, nil)

	if want := decimal.RequireFromString("10.00"); !sum.TotalRevenue.Equal(want) {
		t.Errorf("TotalRevenue = %s, want %s", sum.TotalRevenue, want)
	}
	if sum.OrderCount != 1 {
		t.Errorf("OrderCount = %d, want 1", sum.OrderCount)
	}
	if sum.CancelledCount != 1 {
		t.Errorf("CancelledCount = %d, want 1", sum.CancelledCount)
	}
	if want := decimal.RequireFromString("10.00"); !sum.AvgOrderValue.Equal(want) {
		t.Errorf("AvgOrderValue = %s, want %s", sum.AvgOrderValue, want)
	}
}

func TestSummaryUnknownSourceStaysOutOfBuckets(t *testing.T) {
	s := report.Scope{Interval: week()}
	day := time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)

	orders := []model.Order{
		order(branchA, enum.SourcePOS, enum.OrderStatusCompleted, "10.00", day),
		order(branchA, enum.OrderSource("grubhub"), enum.OrderStatusCompleted, "99.00", day),
	}

	sum := report.ComputeSummary(s, orders, nil)

	// The unrecognized order is still an order, but its revenue has no
	// bucket to land in, and the headline total is the bucket sum.
	if sum.OrderCount != 2 {
		t.Errorf("OrderCount = %d, want 2", sum.OrderCount)
	}
	if want := decimal.RequireFromString("10.00"); !sum.TotalRevenue.Equal(want) {
		t.Errorf("TotalRevenue = %s, want %s", sum.TotalRevenue, want)
	}
	if got := sum.BySource.Total(); !sum.TotalRevenue.Equal(got) {
		t.Errorf("TotalRevenue %s != bucket sum %s", sum.TotalRevenue, got)
	}
}

func TestSummaryZeroOrdersHasZeroAverage(t *testing.T) {
	sum := report.ComputeSummary(report.Scope{Interval: week()}, nil, nil)
	if !sum.AvgOrderValue.IsZero() {
		t.Errorf("AvgOrderValue = %s, want 0", sum.AvgOrderValue)
	}
	if !sum.TotalRevenue.IsZero() {
		t.Errorf("TotalRevenue = %s, want 0", sum.TotalRevenue)
	}
}

func TestSummaryBranchScopeFilters(t *testing.T) {
	s := report.Scope{BranchID: branchA, Interval: week()}
	day := time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)

	orders := []model.Order{
		order(branchA, enum.SourcePOS, enum.OrderStatusCompleted, "10.00", day),
		order(branchB, enum.SourcePOS, enum.OrderStatusCompleted, "50.00", day),
	}
	entries := []model.ExternalSalesEntry{
		entry(branchB, enum.PlatformUberEats, "200.00", time.Date(2026, 2, 4, 0, 0, 0, 0, time.UTC)),
	}

	sum := report.ComputeSummary(s, orders, entries)
	if want := decimal.RequireFromString("10.00"); !sum.TotalRevenue.Equal(want) {
		t.Errorf("TotalRevenue = %s, want %s", sum.TotalRevenue, want)
	}
}

func TestSummaryIsIdempotent(t *testing.T) {
	s := report.Scope{Interval: week()}
	day := time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)
	orders := []model.Order{
		order(branchA, enum.SourcePOS, enum.OrderStatusCompleted, "12.34", day),
		order(branchB, enum.SourceDoorDash, enum.OrderStatusCancelled, "5.00", day),
	}
	entries := []model.ExternalSalesEntry{
		entry(branchA, enum.PlatformDoorDash, "77.00", time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)),
	}

	first := report.ComputeSummary(s, orders, entries)
	second := report.ComputeSummary(s, orders, entries)

	if !first.TotalRevenue.Equal(second.TotalRevenue) ||
		first.OrderCount != second.OrderCount ||
		first.CancelledCount != second.CancelledCount {
		t.Errorf("repeated aggregation differs: %+v vs %+v", first, second)
	}
}

func TestDailySeriesZeroFills(t *testing.T) {
	s := report.Scope{Interval: week()}

	orders := []model.Order{
		order(branchA, enum.SourcePOS, enum.OrderStatusCompleted, "10.00", time.Date(2026, 2, 3, 9, 0, 0, 0, time.UTC)),
	}

	buckets := report.ComputeDailySeries(s, orders, nil)
	if len(buckets) != 7 {
		t.Fatalf("buckets = %d, want 7 (one per day, empty days included)", len(buckets))
	}
	for i, b := range buckets {
		want := time.Date(2026, 2, 1+i, 0, 0, 0, 0, time.UTC)
		if !b.Date.Equal(want) {
			t.Errorf("bucket[%d].Date = %v, want %v", i, b.Date, want)
		}
	}
	if buckets[2].OrderCount != 1 || !buckets[2].Total.Equal(decimal.RequireFromString("10.00")) {
		t.Errorf("Feb 3 bucket = %+v", buckets[2])
	}
	if !buckets[0].Total.IsZero() || buckets[0].OrderCount != 0 {
		t.Errorf("empty day should be zero, got %+v", buckets[0])
	}
}

func TestDailySeriesEntriesDoNotCountAsOrders(t *testing.T) {
	s := report.Scope{Interval: week()}
	entries := []model.ExternalSalesEntry{
		entry(branchA, enum.PlatformUberEats, "120.00", time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)),
	}

	buckets := report.ComputeDailySeries(s, nil, entries)
	if !buckets[1].Total.Equal(decimal.RequireFromString("120.00")) {
		t.Errorf("Feb 2 total = %s, want 120.00", buckets[1].Total)
	}
	if buckets[1].OrderCount != 0 {
		t.Errorf("bulk entries have no transactions behind them, OrderCount = %d", buckets[1].OrderCount)
	}
}

func TestBranchComparisonRanksByRevenue(t *testing.T) {
	branches := []model.Branch{
		{ID: branchA, Name: "Downtown"},
		{ID: branchB, Name: "Westside"},
	}
	day := time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)
	orders := []model.Order{
		order(branchA, enum.SourcePOS, enum.OrderStatusCompleted, "10.00", day),
		order(branchB, enum.SourcePOS, enum.OrderStatusCompleted, "30.00", day),
		order(branchB, enum.SourcePOS, enum.OrderStatusCancelled, "500.00", day),
	}
	entries := []model.ExternalSalesEntry{
		entry(branchA, enum.PlatformDoorDash, "5.00", time.Date(2026, 2, 4, 0, 0, 0, 0, time.UTC)),
	}

	rollups := report.ComputeBranchComparison(week(), branches, orders, entries)
	if len(rollups) != 2 {
		t.Fatalf("rollups = %d, want 2", len(rollups))
	}
	if rollups[0].BranchID != branchB {
		t.Errorf("top branch = %s, want Westside", rollups[0].BranchName)
	}
	if want := decimal.RequireFromString("30.00"); !rollups[0].TotalRevenue.Equal(want) {
		t.Errorf("Westside revenue = %s, want %s (cancelled excluded)", rollups[0].TotalRevenue, want)
	}
	if want := decimal.RequireFromString("15.00"); !rollups[1].TotalRevenue.Equal(want) {
		t.Errorf("Downtown revenue = %s, want %s", rollups[1].TotalRevenue, want)
	}
	if rollups[1].OrderCount != 1 {
		t.Errorf("Downtown OrderCount = %d, want 1 (entries are not orders)", rollups[1].OrderCount)
	}
}

func TestBranchComparisonTieKeepsInputOrder(t *testing.T) {
	branches := []model.Branch{
		{ID: branchA, Name: "Downtown"},
		{ID: branchB, Name: "Westside"},
	}
	day := time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)
	orders := []model.Order{
		order(branchA, enum.SourcePOS, enum.OrderStatusCompleted, "50.00", day),
		order(branchB, enum.SourcePOS, enum.OrderStatusCompleted, "50.00", day),
	}

	rollups := report.ComputeBranchComparison(week(), branches, orders, nil)
	if rollups[0].BranchID != branchA || rollups[1].BranchID != branchB {
		t.Errorf("tied branches reordered: %s before %s", rollups[0].BranchName, rollups[1].BranchName)
	}
}

func TestTopProducts(t *testing.T) {
	s := report.Scope{Interval: week()}
	day := time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)

	latte := uuid.MustParse("cccccccc-cccc-cccc-cccc-cccccccccccc")
	espresso := uuid.MustParse("dddddddd-dddd-dddd-dddd-dddddddddddd")
	muffin := uuid.MustParse("eeeeeeee-eeee-eeee-eeee-eeeeeeeeeeee")

	o1 := order(branchA, enum.SourcePOS, enum.OrderStatusCompleted, "0", day)
	o1.Items = []model.OrderItem{
		{ProductID: latte, ProductName: "Latte", Quantity: 2, TotalPrice: decimal.RequireFromString("9.00")},
		{ProductID: espresso, ProductName: "Espresso", Quantity: 1, TotalPrice: decimal.RequireFromString("3.50")},
	}
	o2 := order(branchA, enum.SourcePOS, enum.OrderStatusCompleted, "0", day)
	o2.Items = []model.OrderItem{
		{ProductID: latte, ProductName: "Latte", Quantity: 1, TotalPrice: decimal.RequireFromString("4.50")},
		{ProductID: muffin, ProductName: "Muffin", Quantity: 3, TotalPrice: decimal.RequireFromString("11.25")},
	}
	cancelled := order(branchA, enum.SourcePOS, enum.OrderStatusCancelled, "0", day)
	cancelled.Items = []model.OrderItem{
		{ProductID: espresso, ProductName: "Espresso", Quantity: 10, TotalPrice: decimal.RequireFromString("35.00")},
	}

	rollups := report.ComputeTopProducts(s, []model.Order{o1, o2, cancelled}, 2)
	if len(rollups) != 2 {
		t.Fatalf("rollups = %d, want 2 (truncated to limit)", len(rollups))
	}
	if rollups[0].ProductID != latte {
		t.Errorf("top product = %s, want Latte", rollups[0].ProductName)
	}
	if want := decimal.RequireFromString("13.50"); !rollups[0].Revenue.Equal(want) {
		t.Errorf("Latte revenue = %s, want %s", rollups[0].Revenue, want)
	}
	if rollups[0].UnitsSold != 3 {
		t.Errorf("Latte units = %d, want 3", rollups[0].UnitsSold)
	}
	if rollups[1].ProductID != muffin {
		t.Errorf("second product = %s, want Muffin", rollups[1].ProductName)
	}
}

func TestTopProductsTieKeepsFirstSeen(t *testing.T) {
	s := report.Scope{Interval: week()}
	day := time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)

	first := uuid.MustParse("11111111-0000-0000-0000-000000000001")
	second := uuid.MustParse("11111111-0000-0000-0000-000000000002")

	o := order(branchA, enum.SourcePOS, enum.OrderStatusCompleted, "0", day)
	o.Items = []model.OrderItem{
		{ProductID: first, ProductName: "First", Quantity: 1, TotalPrice: decimal.RequireFromString("5.00")},
		{ProductID: second, ProductName: "Second", Quantity: 1, TotalPrice: decimal.RequireFromString("5.00")},
	}

	rollups := report.ComputeTopProducts(s, []model.Order{o}, 5)
	if rollups[0].ProductID != first || rollups[1].ProductID != second {
		t.Errorf("tied products reordered: %s before %s", rollups[0].ProductName, rollups[1].ProductName)
	}
}
