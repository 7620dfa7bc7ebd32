package api

import (
	"net/http"

	"github.com/buildbridge/dashboard/internal/api/handler"
	customMiddleware "github.com/buildbridge/dashboard/internal/api/middleware"
	"github.com/buildbridge/dashboard/internal/config"
	"github.com/buildbridge/dashboard/internal/notify"
	"github.com/buildbridge/dashboard/internal/repository/sqlite"
	"github.com/buildbridge/dashboard/internal/security"
	"github.com/buildbridge/dashboard/internal/service"
	"github.com/buildbridge/dashboard/internal/view"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Deps holds the constructed stores and services the router serves. They
// are built once in main and passed down, never looked up ambiently.
type Deps struct {
	SessionService    *service.SessionService
	WorkspaceService  *service.WorkspaceService
	SimulationService *service.SimulationService
	ViewRouter        *view.Router
	Notifications     *notify.Ring
	SlotStore         *sqlite.SlotStore
	JWTManager        *security.JWTManager
}

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, deps Deps) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	authHandler := handler.NewAuthHandler(deps.SessionService, deps.ViewRouter)
	projectHandler := handler.NewProjectHandler(deps.WorkspaceService)
	memberHandler := handler.NewMemberHandler(deps.WorkspaceService)
	documentHandler := handler.NewDocumentHandler(deps.WorkspaceService)
	navigationHandler := handler.NewNavigationHandler(deps.ViewRouter)
	simulationHandler := handler.NewSimulationHandler(deps.SimulationService, deps.ViewRouter)

	authMiddleware := customMiddleware.NewAuthMiddleware(deps.JWTManager)

	r.Route("/api/v1", func(r chi.Router) {
		// Health check
		r.Get("/health", handler.HealthCheck)
		r.Get("/ready", handler.ReadyCheck(deps.SlotStore))

		// Auth routes (public)
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
		})

		// Protected routes: the authenticated shell
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Post("/auth/logout", authHandler.Logout)
			r.Get("/auth/session", authHandler.Session)

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", projectHandler.List)
				r.Post("/", projectHandler.Create)

				r.Route("/{projectID}", func(r chi.Router) {
					r.Get("/", projectHandler.Get)
					r.Patch("/", projectHandler.Update)
					r.Delete("/", projectHandler.Delete)
				})
			})

			r.Route("/members", func(r chi.Router) {
				r.Get("/", memberHandler.List)
				r.Post("/", memberHandler.Create)

				r.Route("/{memberID}", func(r chi.Router) {
					r.Get("/", memberHandler.Get)
					r.Patch("/", memberHandler.Update)
				})
			})

			r.Route("/documents", func(r chi.Router) {
				r.Get("/", documentHandler.List)
				r.Post("/", documentHandler.Create)

				r.Route("/{documentID}", func(r chi.Router) {
					r.Get("/", documentHandler.Get)
					r.Delete("/", documentHandler.Delete)
				})
			})

			r.Route("/navigation", func(r chi.Router) {
				r.Get("/", navigationHandler.Current)
				r.Post("/", navigationHandler.Navigate)
				r.Get("/resolve", navigationHandler.Resolve)
			})

			r.Get("/notifications", handler.ListNotifications(deps.Notifications))

			r.Route("/simulations", func(r chi.Router) {
				r.Post("/", simulationHandler.Start)
				r.Get("/{simulationID}", simulationHandler.Get)
			})
		})
	})

	return r
}
