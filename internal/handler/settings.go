package handler

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/caffissimo/admin-api/internal/enum"
	"github.com/caffissimo/admin-api/internal/middleware"
	"github.com/caffissimo/admin-api/internal/model"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SettingsStore defines the store methods needed by settings handlers.
// Satisfied by *store.Memory; narrow interface for testability.
type SettingsStore interface {
	GetSettings(ctx context.Context) (model.Settings, error)
	UpdateSettings(ctx context.Context, s model.Settings) error
	AppendAuditLog(ctx context.Context, l model.AuditLog) error
}

// SettingsHandler handles the global settings endpoints.
type SettingsHandler struct {
	store SettingsStore
	now   func() time.Time
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(store SettingsStore) *SettingsHandler {
	return &SettingsHandler{store: store, now: time.Now}
}

// RegisterRoutes registers settings endpoints on the given Chi router.
// Mounted behind the manage-settings permission.
func (h *SettingsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Get)
	r.Put("/", h.Update)
}

type updateSettingsRequest struct {
	TaxRate        decimal.Decimal `json:"tax_rate"`
	ServiceFeeRate decimal.Decimal `json:"service_fee_rate"`
}

// Get returns the global settings.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.store.GetSettings(r.Context())
	if err != nil {
		log.Printf("ERROR: get settings: %v", err)
		errorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// Update replaces the global rates.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.TaxRate.IsNegative() || req.ServiceFeeRate.IsNegative() {
		errorJSON(w, http.StatusBadRequest, "rates must not be negative")
		return
	}

	now := h.now()
	settings := model.Settings{
		TaxRate:        req.TaxRate,
		ServiceFeeRate: req.ServiceFeeRate,
		UpdatedAt:      now,
	}
	if err := h.store.UpdateSettings(r.Context(), settings); err != nil {
		log.Printf("ERROR: update settings: %v", err)
		errorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}

	claims := middleware.ClaimsFromContext(r.Context())
	entry := model.AuditLog{
		ID:         uuid.New(),
		Action:     enum.AuditSettingsUpdated,
		EntityType: "Settings",
		EntityID:   "global",
		UserID:     claims.UserID,
		Details: map[string]any{
			"tax_rate":         req.TaxRate.String(),
			"service_fee_rate": req.ServiceFeeRate.String(),
		},
		CreatedAt: now,
	}
	if err := h.store.AppendAuditLog(r.Context(), entry); err != nil {
		log.Printf("ERROR: append audit log: %v", err)
	}

	writeJSON(w, http.StatusOK, settings)
}
