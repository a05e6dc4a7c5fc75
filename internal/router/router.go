// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/metro-ticket-booking/internal/config"
	"github.com/iliyamo/metro-ticket-booking/internal/handler"
	"github.com/iliyamo/metro-ticket-booking/internal/middleware"
)

// RegisterRoutes wires up the health check endpoint.  Load balancers
// and monitoring probe this path, so it carries no middleware.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterCatalog registers the public reference-data listings under
// /v1.  Both routes sit behind the Redis response cache; when rdb is
// nil the cache middleware is a no-op and requests hit the database.
func RegisterCatalog(e *echo.Echo, h *handler.CatalogHandler, cacheCfg config.CacheConfig, rdb *redis.Client) {
	cache := middleware.NewCatalogCache(cacheCfg, rdb)
	e.GET("/v1/stations", h.ListStations, cache)
	e.GET("/v1/prices", h.ListPrices, cache)
}

// RegisterBookings registers the booking lifecycle routes under /v1.
func RegisterBookings(e *echo.Echo, h *handler.BookingHandler) {
	g := e.Group("/v1/bookings")
	g.POST("", h.CreateBooking)
	g.GET("", h.ListBookings)
	g.GET("/:id", h.GetBooking)
	g.DELETE("/:id", h.CancelBooking)
}

// RegisterTickets registers ticket scanning under /v1.
func RegisterTickets(e *echo.Echo, h *handler.TicketHandler) {
	e.GET("/v1/tickets/:id/validate", h.ValidateTicket)
}
