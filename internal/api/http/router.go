package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ticketflow/ticketflow/internal/api/http/handlers"
	"github.com/ticketflow/ticketflow/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health            *handlers.HealthHandler
	Auth              *handlers.AuthHandler
	Navigation        *handlers.NavigationHandler
	Tickets           *handlers.TicketsHandler
	SessionMiddleware *auth.SessionMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api", serialEvents())
	api.Get("/state", cfg.Navigation.State)
	api.Post("/navigate", cfg.Navigation.Navigate)
	api.Get("/notice", cfg.Navigation.Notice)
	api.Delete("/notice", cfg.Navigation.DismissNotice)

	authGroup := api.Group("/auth")
	authGroup.Post("/signup", cfg.Auth.Signup)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Get("/last-email", cfg.Auth.LastEmail)

	// per route, so unknown /api paths still answer 404
	requireSession := cfg.SessionMiddleware.Handle
	api.Get("/dashboard", requireSession, cfg.Tickets.Dashboard)
	api.Get("/tickets", requireSession, cfg.Tickets.ListTickets)
	api.Get("/tickets/:id", requireSession, cfg.Tickets.GetTicket)
	api.Post("/tickets", requireSession, cfg.Tickets.CreateTicket)
	api.Put("/tickets/:id", requireSession, cfg.Tickets.UpdateTicket)
	api.Delete("/tickets/:id", requireSession, cfg.Tickets.DeleteTicket)
}
