package enum

// ── Roles (four-tier access model) ──

type Role string

const (
	RoleSuperAdmin  Role = "super_admin"
	RoleBranchOwner Role = "branch_owner"
	RoleSupervisor  Role = "supervisor"
	RoleCashier     Role = "cashier"
)

// ── Order state machine ──

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// ── Order channels ──

type OrderSource string

const (
	SourcePOS       OrderSource = "pos"
	SourceEcommerce OrderSource = "ecommerce"
	SourceUberEats  OrderSource = "uber_eats"
	SourceDoorDash  OrderSource = "doordash"
)

// ExternalPlatform is the subset of order sources that also report
// bulk (non-order-level) revenue figures.
type ExternalPlatform string

const (
	PlatformUberEats ExternalPlatform = "uber_eats"
	PlatformDoorDash ExternalPlatform = "doordash"
)

// EntrySource marks how an external sales figure arrived.
type EntrySource string

const (
	EntrySourceManual EntrySource = "manual"
	EntrySourceImport EntrySource = "import"
)

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentOnline   PaymentMethod = "online"
	PaymentExternal PaymentMethod = "external"
)

// ── Attendance ──

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceHalfDay AttendanceStatus = "half_day"
)

// ── Audit log actions ──

type AuditAction string

const (
	AuditPriceChange       AuditAction = "price_change"
	AuditOfferChange       AuditAction = "offer_change"
	AuditOrderCancelled    AuditAction = "order_cancelled"
	AuditUserCreated       AuditAction = "user_created"
	AuditUserUpdated       AuditAction = "user_updated"
	AuditBranchUpdated     AuditAction = "branch_updated"
	AuditProductCreated    AuditAction = "product_created"
	AuditProductUpdated    AuditAction = "product_updated"
	AuditStockReport       AuditAction = "stock_report"
	AuditAttendanceUpdated AuditAction = "attendance_updated"
	AuditSettingsUpdated   AuditAction = "settings_updated"
	AuditExternalSales     AuditAction = "external_sales_entry"
)

// ── Offers ──

type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountFixed   DiscountType = "fixed"
)
