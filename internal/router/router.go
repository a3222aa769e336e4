package router

import (
	"net/http"

	"github.com/beanery-pos/api/internal/config"
	"github.com/beanery-pos/api/internal/enum"
	"github.com/beanery-pos/api/internal/handler"
	mw "github.com/beanery-pos/api/internal/middleware"
	"github.com/beanery-pos/api/internal/service"
	"github.com/beanery-pos/api/internal/staff"
	"github.com/beanery-pos/api/internal/ws"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// New creates a Chi router with all application routes wired up.
func New(cfg *config.Config, registry *staff.Registry, svc *service.OrderService, hub *ws.Hub) chi.Router {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173"}, // register UI dev server
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
	authHandler := handler.NewAuthHandler(registry, cfg.JWTSecret)
	authHandler.RegisterRoutes(r)

	// WebSocket route (handles auth internally via query param)
	r.Get("/ws/orders", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWS(hub, cfg.JWTSecret, w, r)
	})

	// Protected routes (require authentication)
	r.Group(func(r chi.Router) {
		r.Use(mw.Authenticate(cfg.JWTSecret))

		menuHandler := handler.NewMenuHandler(svc)
		r.Route("/menu", menuHandler.RegisterRoutes)

		currentHandler := handler.NewCurrentOrderHandler(svc)
		r.Route("/current-order", currentHandler.RegisterRoutes)

		ordersHandler := handler.NewOrdersHandler(svc, hub, cfg.ExportPath)
		r.Route("/orders", func(r chi.Router) {
			ordersHandler.RegisterRoutes(r)

			// Owner-only: cancelling placed orders and exporting the ledger
			r.Group(func(r chi.Router) {
				r.Use(mw.RequireRole(enum.RoleOwner))
				ordersHandler.RegisterOwnerRoutes(r)
			})
		})
	})

	return r
}
