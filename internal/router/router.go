// Package router maps the HTTP surface onto handlers and applies the
// auth and rate-limit middleware per route group.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/airline-reservation/internal/config"
	"github.com/iliyamo/airline-reservation/internal/handler"
	"github.com/iliyamo/airline-reservation/internal/middleware"
)

// Handlers bundles every handler the router wires up.
type Handlers struct {
	Auth    *handler.AuthHandler
	Flight  *handler.FlightHandler
	Booking *handler.BookingHandler
	Fleet   *handler.FleetHandler
	Report  *handler.ReportHandler
}

// Register wires all routes.  Public endpoints carry only the rate
// limiter; customer and staff groups additionally require a JWT with
// the matching role claim.
func Register(e *echo.Echo, h Handlers, jwtSecret string, rlCfg config.RateLimitConfig, rdb *redis.Client) {
	limiter := middleware.NewTokenBucket(rlCfg, rdb)

	e.GET("/healthz", handler.Health)

	// Public: anyone may check availability before registering.
	e.GET("/v1/flights/:fnum/seats", h.Flight.RemainingSeats, limiter)

	// Auth: no session required.
	authGroup := e.Group("/v1/auth", limiter)
	authGroup.POST("/register", h.Auth.Register)
	authGroup.POST("/login", h.Auth.Login)
	authGroup.POST("/refresh", h.Auth.Refresh)
	authGroup.POST("/logout", h.Auth.Logout)

	// Any authenticated account.
	me := e.Group("/v1", middleware.JWTAuth(jwtSecret), middleware.RequireRole("CUSTOMER", "STAFF"))
	me.GET("/me", h.Auth.Me)
	me.POST("/auth/logout-all", h.Auth.LogoutAll)

	// Customer: booking and own reservations.  Staff may book too.
	customer := e.Group("/v1", limiter, middleware.JWTAuth(jwtSecret), middleware.RequireRole("CUSTOMER", "STAFF"))
	customer.POST("/flights/:fnum/reservations", h.Booking.Book)
	customer.GET("/my-reservations", h.Booking.MyReservations)

	// Staff: fleet registration, flight assembly and reports.
	staff := e.Group("/v1", middleware.JWTAuth(jwtSecret), middleware.RequireRole("STAFF"))
	staff.POST("/planes", h.Fleet.AddPlane)
	staff.POST("/pilots", h.Fleet.AddPilot)
	staff.POST("/technicians", h.Fleet.AddTechnician)
	staff.POST("/flights", h.Flight.CreateFlight)
	staff.GET("/reports/repairs-per-plane", h.Report.RepairsPerPlane)
	staff.GET("/reports/repairs-per-year", h.Report.RepairsPerYear)
	staff.GET("/reports/reservations-by-status", h.Report.ReservationsByStatus)
}
