package router

import (
	"log"
	"net/http"

	"github.com/caffissimo/admin-api/internal/config"
	"github.com/caffissimo/admin-api/internal/handler"
	mw "github.com/caffissimo/admin-api/internal/middleware"
	"github.com/caffissimo/admin-api/internal/rbac"
	"github.com/caffissimo/admin-api/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// New creates a Chi router with all application routes wired up.
// Every protected route group is gated by the permission predicate its
// screen requires; branch scoping happens inside the handlers.
func New(cfg *config.Config, st *store.Memory) chi.Router {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:3000", // Next.js dev server
			"https://admin.caffissimo.com",
		},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","version":"1.0.0"}`))
	})

	// Auth routes (public)
	authHandler := handler.NewAuthHandler(st, cfg.JWTSecret, cfg.TokenTTL)
	authHandler.RegisterRoutes(r)

	// Protected routes (require authentication)
	r.Group(func(r chi.Router) {
		r.Use(mw.Authenticate(cfg.JWTSecret))
		r.Use(mw.Require(rbac.CanAccessAdmin))

		// Branch directory and catalog are readable by every admin
		// role; writes check their own permission inside the handler.
		branchHandler := handler.NewBranchHandler(st)
		r.Route("/branches", branchHandler.RegisterRoutes)

		productHandler := handler.NewProductHandler(st)
		productHandler.RegisterRoutes(r)

		orderHandler := handler.NewOrderHandler(st)
		r.Route("/orders", orderHandler.RegisterRoutes)

		offerHandler := handler.NewOfferHandler(st)
		r.Route("/offers", offerHandler.RegisterRoutes)

		// Platform integrations screen: raw imported figures plus
		// manual entry. The write checks report access inside the
		// handler.
		externalSalesHandler := handler.NewExternalSalesHandler(st)
		r.Route("/external-sales", externalSalesHandler.RegisterRoutes)

		searchHandler := handler.NewSearchHandler(st)
		r.Get("/search", searchHandler.Search)

		r.Group(func(r chi.Router) {
			r.Use(mw.Require(rbac.CanViewReports))
			reportsHandler := handler.NewReportsHandler(st)
			r.Route("/reports", reportsHandler.RegisterRoutes)
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.Require(rbac.CanManageUsers))
			userHandler := handler.NewUserHandler(st)
			r.Route("/users", userHandler.RegisterRoutes)
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.Require(rbac.CanSubmitFridgeReport))
			fridgeHandler := handler.NewFridgeHandler(st)
			r.Route("/fridge-reports", fridgeHandler.RegisterRoutes)
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.Require(rbac.CanViewAttendance))
			attendanceHandler := handler.NewAttendanceHandler(st)
			r.Route("/attendance", attendanceHandler.RegisterRoutes)
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.Require(rbac.CanViewAuditLogs))
			auditHandler := handler.NewAuditLogHandler(st)
			r.Route("/audit-logs", auditHandler.RegisterRoutes)
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.Require(rbac.CanManageSettings))
			settingsHandler := handler.NewSettingsHandler(st)
			r.Route("/settings", settingsHandler.RegisterRoutes)
		})
	})

	log.Println("Router initialized with all handlers")
	return r
}
