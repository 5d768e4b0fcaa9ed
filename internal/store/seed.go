package store

import (
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/caffissimo/admin-api/internal/enum"
	"github.com/caffissimo/admin-api/internal/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// The dataset is generated, not loaded: every entity derives from a
// fixed base date, a fixed LCG seed, and stable id keys, so two builds
// of the dataset are identical (password hashes aside, which carry a
// random bcrypt salt).

// seedBaseDate anchors all relative dates in the dataset.
var seedBaseDate = time.Date(2026, time.February, 5, 12, 0, 0, 0, time.UTC)

// seedNamespace is the fixed namespace for deterministic entity ids.
var seedNamespace = uuid.MustParse("6a7a12d4-91f3-4a3e-bc6b-78f3a2f4d9c1")

// SeedPassword is the shared dev password for every seeded user.
const SeedPassword = "caffissimo123"

func seedID(key string) uuid.UUID {
	return uuid.NewSHA1(seedNamespace, []byte(key))
}

// lcg is a linear congruential generator. A fixed seed makes the
// order/attendance data reproducible run to run.
type lcg struct {
	state int64
}

func (r *lcg) next() float64 {
	r.state = (r.state*1103515245 + 12345) & 0x7fffffff
	return float64(r.state) / float64(0x7fffffff)
}

func (r *lcg) intn(n int) int {
	return int(r.next() * float64(n))
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func day(t time.Time) time.Time {
	y, m, dd := t.Date()
	return time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)
}

// Dataset is the full seeded state of the system.
type Dataset struct {
	Branches       []model.Branch             `json:"branches"`
	Categories     []model.Category           `json:"categories"`
	Products       []model.Product            `json:"products"`
	BranchProducts []model.BranchProduct      `json:"branch_products"`
	Users          []model.User               `json:"users"`
	Orders         []model.Order              `json:"orders"`
	ExternalSales  []model.ExternalSalesEntry `json:"external_sales"`
	Offers         []model.Offer              `json:"offers"`
	FridgeReports  []model.FridgeStockReport  `json:"fridge_reports"`
	Attendance     []model.AttendanceEntry    `json:"attendance"`
	POSSessions    []model.POSSession         `json:"pos_sessions"`
	AuditLogs      []model.AuditLog           `json:"audit_logs"`
	Settings       model.Settings             `json:"settings"`
}

// NewDataset generates the seed data.
func NewDataset() *Dataset {
	ds := &Dataset{}
	ds.Branches = seedBranches()
	ds.Categories = seedCategories()
	ds.Products = seedProducts(ds.Categories)
	ds.BranchProducts = seedBranchProducts(ds.Branches, ds.Products)
	ds.Users = seedUsers(ds.Branches)
	ds.Orders = seedOrders(ds.Branches, ds.Products, ds.BranchProducts)
	ds.ExternalSales = seedExternalSales(ds.Branches)
	ds.Offers = seedOffers(ds.Branches, ds.Categories)
	ds.FridgeReports = seedFridgeReports(ds.Branches, ds.Users)
	ds.Attendance = seedAttendance(ds.Users)
	ds.POSSessions = seedPOSSessions(ds.Users)
	ds.AuditLogs = seedAuditLogs(ds.Users)
	ds.Settings = model.Settings{
		TaxRate:        d("0.0875"),
		ServiceFeeRate: d("0.02"),
		UpdatedAt:      seedBaseDate,
	}
	return ds
}

func seedBranches() []model.Branch {
	weekdays := func(open, close, friClose, satOpen, satClose, sunOpen, sunClose string) map[string]model.DayHours {
		return map[string]model.DayHours{
			"monday":    {Open: open, Close: close},
			"tuesday":   {Open: open, Close: close},
			"wednesday": {Open: open, Close: close},
			"thursday":  {Open: open, Close: close},
			"friday":    {Open: open, Close: friClose},
			"saturday":  {Open: satOpen, Close: satClose},
			"sunday":    {Open: sunOpen, Close: sunClose},
		}
	}

	return []model.Branch{
		{
			ID:           seedID("branch-1"),
			Name:         "Downtown Caffissimo",
			Address:      "123 Main Street, Downtown, CA 90001",
			Phone:        "(555) 123-4567",
			Email:        "downtown@caffissimo.com",
			IsOpen:       true,
			OpeningHours: weekdays("06:00", "20:00", "21:00", "07:00", "21:00", "07:00", "18:00"),
			UberEatsURL:  "https://ubereats.com/caffissimo-downtown",
			DoorDashURL:  "https://doordash.com/caffissimo-downtown",
			CreatedAt:    mustTime("2024-01-15T08:00:00Z"),
			UpdatedAt:    mustTime("2024-01-15T08:00:00Z"),
		},
		{
			ID:           seedID("branch-2"),
			Name:         "Westside Caffissimo",
			Address:      "456 Ocean Boulevard, Westside, CA 90002",
			Phone:        "(555) 234-5678",
			Email:        "westside@caffissimo.com",
			IsOpen:       true,
			OpeningHours: weekdays("07:00", "19:00", "20:00", "08:00", "20:00", "08:00", "17:00"),
			UberEatsURL:  "https://ubereats.com/caffissimo-westside",
			DoorDashURL:  "https://doordash.com/caffissimo-westside",
			CreatedAt:    mustTime("2024-03-01T08:00:00Z"),
			UpdatedAt:    mustTime("2024-03-01T08:00:00Z"),
		},
		{
			ID:           seedID("branch-3"),
			Name:         "University Caffissimo",
			Address:      "789 College Ave, University District, CA 90003",
			Phone:        "(555) 345-6789",
			Email:        "university@caffissimo.com",
			IsOpen:       false,
			OpeningHours: weekdays("06:30", "22:00", "23:00", "08:00", "23:00", "09:00", "20:00"),
			UberEatsURL:  "https://ubereats.com/caffissimo-university",
			DoorDashURL:  "https://doordash.com/caffissimo-university",
			CreatedAt:    mustTime("2024-06-15T08:00:00Z"),
			UpdatedAt:    mustTime("2024-06-15T08:00:00Z"),
		},
	}
}

func seedCategories() []model.Category {
	specs := []struct {
		name, desc string
	}{
		{"Espresso Drinks", "Classic espresso-based beverages"},
		{"Cold Brew & Iced", "Refreshing cold coffee drinks"},
		{"Tea & Specialty", "Premium teas and specialty drinks"},
		{"Pastries", "Fresh baked goods"},
		{"Sandwiches", "Fresh made sandwiches"},
		{"Merchandise", "Coffee beans and merchandise"},
	}
	cats := make([]model.Category, len(specs))
	for i, s := range specs {
		cats[i] = model.Category{
			ID:          seedID(fmt.Sprintf("cat-%d", i+1)),
			Name:        s.name,
			Description: s.desc,
			SortOrder:   i + 1,
		}
	}
	return cats
}

func seedProducts(cats []model.Category) []model.Product {
	specs := []struct {
		name, desc string
		cat        int // 1-based category index
		tags       []string
		notes      string
	}{
		{"Classic Espresso", "Rich, bold single or double shot of espresso", 1, []string{"hot", "classic", "strong"}, "Bold, rich, with hints of dark chocolate"},
		{"Caffissimo Latte", "Smooth espresso with steamed milk and light foam", 1, []string{"hot", "popular", "creamy"}, "Smooth, creamy, balanced sweetness"},
		{"Cappuccino", "Equal parts espresso, steamed milk, and foam", 1, []string{"hot", "classic", "frothy"}, "Light, airy, with rich espresso notes"},
		{"Americano", "Espresso diluted with hot water", 1, []string{"hot", "classic", "strong"}, "Bold yet smooth, full-bodied flavor"},
		{"Flat White", "Velvety microfoam with ristretto shots", 1, []string{"hot", "smooth", "popular"}, "Silky, intense coffee flavor"},
		{"Mocha", "Espresso with chocolate and steamed milk", 1, []string{"hot", "sweet", "chocolate"}, "Rich chocolate meets bold espresso"},
		{"Caramel Macchiato", "Vanilla-flavored latte with caramel drizzle", 1, []string{"hot", "sweet", "popular"}, "Sweet vanilla with caramel finish"},
		{"Signature Cold Brew", "20-hour steeped cold brew coffee", 2, []string{"cold", "popular", "smooth"}, "Naturally sweet, low acidity, chocolatey"},
		{"Iced Latte", "Espresso poured over cold milk and ice", 2, []string{"cold", "refreshing", "creamy"}, "Crisp, refreshing, balanced"},
		{"Nitro Cold Brew", "Cold brew infused with nitrogen for a creamy texture", 2, []string{"cold", "premium", "smooth"}, "Cascading bubbles, velvety mouthfeel"},
		{"Vanilla Sweet Cream Cold Brew", "Cold brew topped with vanilla sweet cream", 2, []string{"cold", "sweet", "popular"}, "Sweet cream swirls with bold coffee"},
		{"Iced Americano", "Espresso with cold water over ice", 2, []string{"cold", "refreshing", "strong"}, "Bold, crisp, refreshing"},
		{"Chai Latte", "Spiced black tea with steamed milk", 3, []string{"hot", "spiced", "sweet"}, "Warm spices, creamy, comforting"},
		{"Matcha Latte", "Premium Japanese matcha with steamed milk", 3, []string{"hot", "earthy", "healthy"}, "Earthy, smooth, slightly sweet"},
		{"London Fog", "Earl Grey tea with vanilla and steamed milk", 3, []string{"hot", "aromatic", "calming"}, "Bergamot, vanilla, creamy finish"},
		{"Golden Turmeric Latte", "Anti-inflammatory turmeric blend with milk", 3, []string{"hot", "healthy", "spiced"}, "Warm, earthy, hints of ginger"},
		{"Hot Chocolate", "Rich Belgian chocolate with steamed milk", 3, []string{"hot", "sweet", "indulgent"}, "Rich, creamy, deeply chocolatey"},
		{"Butter Croissant", "Flaky, buttery French croissant", 4, []string{"bakery", "classic", "buttery"}, ""},
		{"Almond Croissant", "Croissant filled with almond cream", 4, []string{"bakery", "sweet", "nutty"}, ""},
		{"Blueberry Muffin", "Moist muffin loaded with fresh blueberries", 4, []string{"bakery", "fruity", "breakfast"}, ""},
		{"Chocolate Chip Cookie", "Freshly baked with Belgian chocolate", 4, []string{"bakery", "sweet", "chocolate"}, ""},
		{"Cinnamon Roll", "Warm, gooey cinnamon roll with cream cheese frosting", 4, []string{"bakery", "sweet", "warm"}, ""},
		{"Banana Bread", "Moist banana bread with walnuts", 4, []string{"bakery", "classic", "nutty"}, ""},
		{"Avocado Toast", "Smashed avocado on artisan sourdough", 5, []string{"savory", "healthy", "breakfast"}, ""},
		{"Turkey Club", "Roasted turkey, bacon, lettuce, tomato", 5, []string{"savory", "lunch", "protein"}, ""},
		{"Caprese Panini", "Fresh mozzarella, tomato, basil, balsamic", 5, []string{"savory", "vegetarian", "lunch"}, ""},
		{"Breakfast Burrito", "Eggs, cheese, salsa, choice of protein", 5, []string{"savory", "breakfast", "filling"}, ""},
		{"House Blend Beans (12oz)", "Our signature medium roast blend", 6, []string{"beans", "merchandise"}, "Balanced, nutty, chocolate undertones"},
		{"Single Origin Ethiopia (12oz)", "Bright, fruity Ethiopian beans", 6, []string{"beans", "single-origin"}, "Bright, floral, berry notes"},
		{"Caffissimo Travel Mug", "16oz insulated stainless steel mug", 6, []string{"merchandise", "drinkware"}, ""},
	}

	created := mustTime("2024-01-15T08:00:00Z")
	products := make([]model.Product, len(specs))
	for i, s := range specs {
		products[i] = model.Product{
			ID:           seedID(fmt.Sprintf("prod-%d", i+1)),
			Name:         s.name,
			Description:  s.desc,
			CategoryID:   cats[s.cat-1].ID,
			Images:       []string{},
			Tags:         s.tags,
			TastingNotes: s.notes,
			CreatedAt:    created,
			UpdatedAt:    created,
		}
	}
	return products
}

// categoryBasePrices keyed by 1-based category index.
var categoryBasePrices = map[int]decimal.Decimal{
	1: d("4.50"),
	2: d("5.25"),
	3: d("5.00"),
	4: d("3.75"),
	5: d("9.50"),
	6: d("16.00"),
}

func seedBranchProducts(branches []model.Branch, products []model.Product) []model.BranchProduct {
	// Branch price variation relative to the downtown base price.
	variations := []decimal.Decimal{d("0"), d("0.25"), d("-0.25")}

	basePrice := func(categoryID uuid.UUID) decimal.Decimal {
		for i := 1; i <= len(categoryBasePrices); i++ {
			if seedID(fmt.Sprintf("cat-%d", i)) == categoryID {
				return categoryBasePrices[i]
			}
		}
		return d("5.00")
	}

	created := mustTime("2024-01-15T08:00:00Z")
	var out []model.BranchProduct
	id := 1
	for bi, branch := range branches {
		for _, p := range products {
			out = append(out, model.BranchProduct{
				ID:          seedID(fmt.Sprintf("bp-%d", id)),
				ProductID:   p.ID,
				BranchID:    branch.ID,
				Price:       basePrice(p.CategoryID).Add(variations[bi]),
				IsAvailable: id%10 != 0,
				IsVisible:   id%20 != 0,
				CreatedAt:   created,
				UpdatedAt:   created,
			})
			id++
		}
	}
	return out
}

func seedUsers(branches []model.Branch) []model.User {
	specs := []struct {
		name, email string
		role        enum.Role
		branch      int // 1-based branch index, 0 = none
		active      bool
		created     string
	}{
		{"Alex Johnson", "alex@caffissimo.com", enum.RoleSuperAdmin, 0, true, "2024-01-01T08:00:00Z"},
		{"Maria Garcia", "maria@caffissimo.com", enum.RoleBranchOwner, 1, true, "2024-01-15T08:00:00Z"},
		{"James Wilson", "james@caffissimo.com", enum.RoleBranchOwner, 2, true, "2024-03-01T08:00:00Z"},
		{"Sarah Chen", "sarah@caffissimo.com", enum.RoleBranchOwner, 3, true, "2024-06-15T08:00:00Z"},
		{"Michael Brown", "michael@caffissimo.com", enum.RoleSupervisor, 1, true, "2024-02-01T08:00:00Z"},
		{"Emily Davis", "emily@caffissimo.com", enum.RoleSupervisor, 2, true, "2024-04-01T08:00:00Z"},
		{"David Lee", "david@caffissimo.com", enum.RoleCashier, 1, true, "2024-02-15T08:00:00Z"},
		{"Jessica Martinez", "jessica@caffissimo.com", enum.RoleCashier, 1, true, "2024-02-15T08:00:00Z"},
		{"Chris Taylor", "chris@caffissimo.com", enum.RoleCashier, 2, true, "2024-04-15T08:00:00Z"},
		{"Amanda White", "amanda@caffissimo.com", enum.RoleCashier, 3, false, "2024-07-01T08:00:00Z"},
	}

	// MinCost keeps dataset construction fast; this is dev seed data,
	// not a credential store.
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.MinCost)
	if err != nil {
		log.Fatalf("seed: hash password: %v", err)
	}

	users := make([]model.User, len(specs))
	for i, s := range specs {
		branchID := uuid.Nil
		if s.branch > 0 {
			branchID = branches[s.branch-1].ID
		}
		created := mustTime(s.created)
		users[i] = model.User{
			ID:           seedID(fmt.Sprintf("user-%d", i+1)),
			Name:         s.name,
			Email:        s.email,
			PasswordHash: string(hash),
			Role:         s.role,
			BranchID:     branchID,
			IsActive:     s.active,
			CreatedAt:    created,
			UpdatedAt:    created,
		}
	}
	return users
}

func seedOrders(branches []model.Branch, products []model.Product, bps []model.BranchProduct) []model.Order {
	sources := []enum.OrderSource{
		enum.SourcePOS, enum.SourcePOS, enum.SourcePOS,
		enum.SourceEcommerce, enum.SourceUberEats, enum.SourceDoorDash,
	}
	statuses := []enum.OrderStatus{
		enum.OrderStatusCompleted, enum.OrderStatusCompleted,
		enum.OrderStatusCompleted, enum.OrderStatusCompleted,
		enum.OrderStatusCancelled, enum.OrderStatusReady,
		enum.OrderStatusPreparing,
	}
	payments := []enum.PaymentMethod{
		enum.PaymentCash, enum.PaymentCard, enum.PaymentCard,
		enum.PaymentCard, enum.PaymentOnline,
	}
	customerNames := []string{
		"John D.", "Sarah M.", "Mike T.", "Emma R.", "Alex K.",
		"Lisa P.", "Tom H.", "Jane S.", "", "",
	}

	branchPrice := func(productID, branchID uuid.UUID) decimal.Decimal {
		for _, bp := range bps {
			if bp.ProductID == productID && bp.BranchID == branchID {
				return bp.Price
			}
		}
		return d("5.00")
	}

	r := &lcg{state: 12345}
	var orders []model.Order

	for i := 0; i < 120; i++ {
		daysAgo := r.intn(30)
		hoursAgo := r.intn(14) + 6
		orderDate := seedBaseDate.AddDate(0, 0, -daysAgo).Add(-time.Duration(hoursAgo) * time.Hour)

		source := sources[r.intn(len(sources))]
		branch := branches[r.intn(len(branches))]
		status := statuses[r.intn(len(statuses))]

		itemCount := r.intn(4) + 1
		items := make([]model.OrderItem, 0, itemCount)
		subtotal := decimal.Zero
		for j := 0; j < itemCount; j++ {
			product := products[r.intn(len(products))]
			quantity := int32(r.intn(2) + 1)
			unitPrice := branchPrice(product.ID, branch.ID)
			totalPrice := unitPrice.Mul(decimal.NewFromInt32(quantity))
			subtotal = subtotal.Add(totalPrice)
			items = append(items, model.OrderItem{
				ID:          seedID(fmt.Sprintf("item-%d-%d", i, j)),
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    quantity,
				UnitPrice:   unitPrice,
				TotalPrice:  totalPrice,
			})
		}

		tax := subtotal.Mul(d("0.0875")).Round(2)
		discount := decimal.Zero
		if r.next() > 0.8 {
			discount = subtotal.Mul(d("0.1")).Round(2)
		}
		total := subtotal.Add(tax).Sub(discount)

		var payment enum.PaymentMethod
		switch {
		case source == enum.SourceUberEats || source == enum.SourceDoorDash:
			payment = enum.PaymentExternal
		case source == enum.SourceEcommerce:
			payment = enum.PaymentOnline
		default:
			payment = payments[r.intn(len(payments))]
		}

		customerName := ""
		if source != enum.SourcePOS || r.next() <= 0.5 {
			customerName = customerNames[r.intn(len(customerNames))]
		}
		customerEmail := ""
		if customerName != "" {
			customerEmail = emailFor(customerName)
		}

		notes := ""
		if i%5 == 0 {
			notes = "Extra hot please"
		}
		internalNotes := ""
		if status == enum.OrderStatusCancelled {
			internalNotes = "Customer requested cancellation"
		}

		external := source == enum.SourceUberEats || source == enum.SourceDoorDash
		externalOrderID := ""
		if external {
			externalOrderID = fmt.Sprintf("EXT-%d", i+1000)
		}

		history := []model.StatusChange{
			{Status: enum.OrderStatusPending, Timestamp: orderDate},
			{Status: enum.OrderStatusConfirmed, Timestamp: orderDate.Add(3 * time.Minute)},
		}
		if status != enum.OrderStatusPending && status != enum.OrderStatusConfirmed {
			history = append(history, model.StatusChange{Status: status, Timestamp: orderDate.Add(30 * time.Minute)})
		}

		orders = append(orders, model.Order{
			ID:              seedID(fmt.Sprintf("order-%d", i+1)),
			OrderNumber:     fmt.Sprintf("ORD-%s-%04d", orderDate.Format("20060102"), i+1),
			BranchID:        branch.ID,
			Source:          source,
			Status:          status,
			Items:           items,
			Subtotal:        subtotal,
			Tax:             tax,
			Discount:        discount,
			Total:           total,
			PaymentMethod:   payment,
			CustomerName:    customerName,
			CustomerEmail:   customerEmail,
			Notes:           notes,
			InternalNotes:   internalNotes,
			ExternalOrderID: externalOrderID,
			IsReadOnly:      external,
			StatusHistory:   history,
			CreatedAt:       orderDate,
			UpdatedAt:       orderDate.Add(30 * time.Minute),
		})
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders
}

func emailFor(name string) string {
	email := make([]rune, 0, len(name))
	for _, c := range name {
		switch {
		case c == ' ':
			email = append(email, '.')
		case c >= 'A' && c <= 'Z':
			email = append(email, c+('a'-'A'))
		default:
			email = append(email, c)
		}
	}
	return string(email) + "@email.com"
}

func seedExternalSales(branches []model.Branch) []model.ExternalSalesEntry {
	var entries []model.ExternalSalesEntry
	n := 1

	add := func(branchID uuid.UUID, platform enum.ExternalPlatform, date time.Time, sales int64, orderBase, orderMod int) {
		key := fmt.Sprintf("ext-%d", n)
		n++
		source := enum.EntrySourceManual
		if n%2 == 0 {
			source = enum.EntrySourceImport
		}
		entry := model.ExternalSalesEntry{
			ID:         seedID(key),
			BranchID:   branchID,
			Platform:   platform,
			Date:       day(date),
			TotalSales: decimal.NewFromInt(sales),
			OrderCount: orderBase + (n % orderMod),
			Source:     source,
			CreatedAt:  date,
		}
		if source == enum.EntrySourceImport {
			entry.ImportedAt = date
		}
		entries = append(entries, entry)
	}

	for daysAgo := 0; daysAgo < 30; daysAgo++ {
		date := seedBaseDate.AddDate(0, 0, -daysAgo)
		for _, branch := range branches {
			// Platforms skip reporting on a deterministic cadence so
			// some days have gaps, like real imports do.
			if daysAgo%5 != 0 {
				add(branch.ID, enum.PlatformUberEats, date, int64(100+((n*37)%300)), 5, 15)
			}
			if daysAgo%4 != 0 {
				add(branch.ID, enum.PlatformDoorDash, date, int64(80+((n*23)%250)), 4, 12)
			}
		}
	}
	return entries
}

func seedOffers(branches []model.Branch, cats []model.Category) []model.Offer {
	allBranches := []uuid.UUID{branches[0].ID, branches[1].ID, branches[2].ID}
	return []model.Offer{
		{
			ID:            seedID("offer-1"),
			Name:          "Morning Rush 20% Off",
			Description:   "20% off all espresso drinks before 9am",
			DiscountType:  enum.DiscountPercent,
			DiscountValue: d("20"),
			StartDate:     seedBaseDate.AddDate(0, 0, -5),
			EndDate:       seedBaseDate.AddDate(0, 0, 30),
			CategoryIDs:   []uuid.UUID{cats[0].ID},
			BranchIDs:     allBranches,
			IsActive:      true,
			CreatedAt:     seedBaseDate.AddDate(0, 0, -5),
			UpdatedAt:     seedBaseDate.AddDate(0, 0, -5),
		},
		{
			ID:            seedID("offer-2"),
			Name:          "$2 Off Cold Brew",
			Description:   "$2 off any cold brew on Fridays",
			DiscountType:  enum.DiscountFixed,
			DiscountValue: d("2"),
			StartDate:     seedBaseDate.AddDate(0, 0, -10),
			EndDate:       seedBaseDate.AddDate(0, 0, 20),
			CategoryIDs:   []uuid.UUID{cats[1].ID},
			BranchIDs:     []uuid.UUID{branches[0].ID},
			IsActive:      true,
			CreatedAt:     seedBaseDate.AddDate(0, 0, -10),
			UpdatedAt:     seedBaseDate.AddDate(0, 0, -10),
		},
		{
			ID:            seedID("offer-3"),
			Name:          "Student Discount",
			Description:   "15% off with valid student ID",
			DiscountType:  enum.DiscountPercent,
			DiscountValue: d("15"),
			StartDate:     seedBaseDate.AddDate(0, 0, -60),
			EndDate:       seedBaseDate.AddDate(0, 0, 90),
			BranchIDs:     []uuid.UUID{branches[2].ID},
			IsActive:      true,
			CreatedAt:     seedBaseDate.AddDate(0, 0, -60),
			UpdatedAt:     seedBaseDate.AddDate(0, 0, -60),
		},
	}
}

var fridgeUnits = []string{
	"Main Fridge",
	"Milk Fridge",
	"Pastry Display Fridge",
	"Walk-in Cooler",
}

func seedFridgeReports(branches []model.Branch, users []model.User) []model.FridgeStockReport {
	supervisorFor := func(branchID uuid.UUID) string {
		for _, u := range users {
			if u.BranchID == branchID && u.Role == enum.RoleSupervisor {
				return u.Name
			}
		}
		return "Staff"
	}

	var reports []model.FridgeStockReport
	tempSeed := 100
	for daysAgo := 0; daysAgo < 14; daysAgo++ {
		date := seedBaseDate.AddDate(0, 0, -daysAgo)
		for _, branch := range branches {
			temps := make([]model.FridgeTemperature, len(fridgeUnits))
			for idx, name := range fridgeUnits {
				temps[idx] = model.FridgeTemperature{
					Name:        name,
					Temperature: 34 + float64((tempSeed*7+idx)%10)*0.5,
				}
				tempSeed++
			}
			notes := ""
			if daysAgo%3 == 0 {
				notes = "Walk-in cooler running slightly warm"
			}
			reports = append(reports, model.FridgeStockReport{
				ID:           seedID(fmt.Sprintf("fridge-%s-%s", branch.ID, date.Format("2006-01-02"))),
				BranchID:     branch.ID,
				Date:         day(date),
				Temperatures: temps,
				Notes:        notes,
				SubmittedBy:  supervisorFor(branch.ID),
				CreatedAt:    date,
			})
		}
	}
	return reports
}

func seedAttendance(users []model.User) []model.AttendanceEntry {
	var staff []model.User
	for _, u := range users {
		if u.Role == enum.RoleCashier || u.Role == enum.RoleSupervisor {
			staff = append(staff, u)
		}
	}

	var entries []model.AttendanceEntry
	attSeed := 200
	for daysAgo := 0; daysAgo < 14; daysAgo++ {
		date := seedBaseDate.AddDate(0, 0, -daysAgo)
		for _, u := range staff {
			statusVal := (attSeed * 13) % 100
			attSeed++
			status := enum.AttendancePresent
			switch {
			case statusVal < 5:
				status = enum.AttendanceAbsent
			case statusVal < 15:
				status = enum.AttendanceLate
			}

			checkIn, checkOut := "", ""
			if status != enum.AttendanceAbsent {
				inHour := "08"
				if status == enum.AttendanceLate {
					inHour = "09"
				}
				checkIn = fmt.Sprintf("%s:%02d", inHour, (attSeed*3)%30)
				checkOut = fmt.Sprintf("%d:%02d", 16+(attSeed*5)%3, (attSeed*7)%60)
			}

			entries = append(entries, model.AttendanceEntry{
				ID:        seedID(fmt.Sprintf("att-%s-%s", u.ID, date.Format("2006-01-02"))),
				BranchID:  u.BranchID,
				UserID:    u.ID,
				UserName:  u.Name,
				Date:      day(date),
				Status:    status,
				CheckIn:   checkIn,
				CheckOut:  checkOut,
				CreatedAt: date,
			})
		}
	}
	return entries
}

func seedPOSSessions(users []model.User) []model.POSSession {
	var cashiers []model.User
	for _, u := range users {
		if u.Role == enum.RoleCashier && u.IsActive {
			cashiers = append(cashiers, u)
		}
	}

	var sessions []model.POSSession
	posSeed := 300
	for daysAgo := 0; daysAgo < 14; daysAgo++ {
		dayStart := day(seedBaseDate.AddDate(0, 0, -daysAgo))
		for _, u := range cashiers {
			login := dayStart.Add(8*time.Hour + time.Duration((posSeed*3)%45)*time.Minute)
			midLogout := dayStart.Add(12*time.Hour + time.Duration((posSeed*7)%50)*time.Minute)

			// Every third morning shift ends by idle timeout rather
			// than an explicit logout.
			lastActivity := midLogout
			if posSeed%3 == 0 {
				lastActivity = midLogout.Add(-10 * time.Minute)
			}
			sessions = append(sessions, model.POSSession{
				ID:             seedID(fmt.Sprintf("pos-%s-%d-am", u.ID, daysAgo)),
				BranchID:       u.BranchID,
				UserID:         u.ID,
				UserName:       u.Name,
				LoginAt:        login,
				LogoutAt:       midLogout,
				LastActivityAt: lastActivity,
			})

			afternoonLogin := midLogout.Add(20 * time.Minute)
			logout := dayStart.Add(17*time.Hour + time.Duration((posSeed*11)%60)*time.Minute)
			sessions = append(sessions, model.POSSession{
				ID:             seedID(fmt.Sprintf("pos-%s-%d-pm", u.ID, daysAgo)),
				BranchID:       u.BranchID,
				UserID:         u.ID,
				UserName:       u.Name,
				LoginAt:        afternoonLogin,
				LogoutAt:       logout,
				LastActivityAt: logout,
			})
			posSeed++
		}
	}
	return sessions
}

func seedAuditLogs(users []model.User) []model.AuditLog {
	actions := []struct {
		action     enum.AuditAction
		entityType string
	}{
		{enum.AuditPriceChange, "BranchProduct"},
		{enum.AuditOfferChange, "Offer"},
		{enum.AuditOrderCancelled, "Order"},
		{enum.AuditProductUpdated, "Product"},
		{enum.AuditBranchUpdated, "Branch"},
		{enum.AuditUserCreated, "User"},
	}

	var logs []model.AuditLog
	for i := 0; i < 50; i++ {
		daysAgo := (i * 17) % 30
		date := seedBaseDate.AddDate(0, 0, -daysAgo)
		act := actions[i%len(actions)]
		user := users[i%4]

		var details map[string]any
		switch act.action {
		case enum.AuditPriceChange:
			details = map[string]any{"old_price": "4.50", "new_price": "4.75", "product_name": "Caffissimo Latte"}
		case enum.AuditOrderCancelled:
			details = map[string]any{"order_id": fmt.Sprintf("order-%d", i), "reason": "Customer request"}
		default:
			details = map[string]any{"note": "Updated via admin panel"}
		}

		logs = append(logs, model.AuditLog{
			ID:         seedID(fmt.Sprintf("log-%d", i+1)),
			Action:     act.action,
			EntityType: act.entityType,
			EntityID:   fmt.Sprintf("%s-%d", act.entityType, (i%10)+1),
			UserID:     user.ID,
			UserName:   user.Name,
			BranchID:   user.BranchID,
			Details:    details,
			CreatedAt:  date,
		})
	}

	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].CreatedAt.After(logs[j].CreatedAt)
	})
	return logs
}
