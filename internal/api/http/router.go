package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/trip-booking-service/internal/api/http/handlers"
	"github.com/spec-kit/trip-booking-service/internal/auth"
	"github.com/spec-kit/trip-booking-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Trips          *handlers.TripsHandler
	Bookings       *handlers.BookingsHandler
	Contacts       *handlers.ContactsHandler
	Dashboard      *handlers.DashboardHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")
	authn := cfg.AuthMiddleware.Handle
	adminOnly := auth.RequireRole(domain.RoleAdmin)

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/me", authn, cfg.Auth.Me)

	trips := api.Group("/trips")
	trips.Get("/", cfg.Trips.ListTrips)
	trips.Get("/:id", cfg.Trips.GetTrip)
	trips.Post("/", authn, adminOnly, cfg.Trips.CreateTrip)
	trips.Put("/:id", authn, adminOnly, cfg.Trips.UpdateTrip)
	trips.Delete("/:id", authn, adminOnly, cfg.Trips.DeleteTrip)

	bookings := api.Group("/bookings", authn)
	bookings.Post("/", cfg.Bookings.CreateBooking)
	bookings.Get("/my", cfg.Bookings.ListMyBookings)
	bookings.Get("/", adminOnly, cfg.Bookings.ListAllBookings)
	bookings.Patch("/:id/status", adminOnly, cfg.Bookings.UpdateBookingStatus)

	contact := api.Group("/contact")
	contact.Post("/", cfg.Contacts.SubmitContact)
	contact.Get("/", authn, adminOnly, cfg.Contacts.ListContacts)
	contact.Patch("/:id/reply", authn, adminOnly, cfg.Contacts.ReplyToContact)

	api.Get("/dashboard/stats", authn, adminOnly, cfg.Dashboard.GetStats)
}
