package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/metro-ticket-booking/internal/model"
)

// StationLister provides the active station catalog, position-ascending.
type StationLister interface {
	ListActive(ctx context.Context) ([]model.Station, error)
}

// PriceLister provides the active ticket price catalog.
type PriceLister interface {
	ListActive(ctx context.Context) ([]model.Price, error)
}

// CatalogHandler serves the read-only reference data: the station list
// riders pick journeys from and the ticket price list.  Both endpoints
// are unauthenticated and sit behind the Redis response cache.
type CatalogHandler struct {
	Stations StationLister
	Prices   PriceLister
}

// NewCatalogHandler constructs a CatalogHandler over the given catalogs.
func NewCatalogHandler(stations StationLister, prices PriceLister) *CatalogHandler {
	if stations == nil || prices == nil {
		panic("nil catalog passed to NewCatalogHandler")
	}
	return &CatalogHandler{Stations: stations, Prices: prices}
}

// PublicStation is a station as exposed via the public API.  The active
// flag is omitted: only active stations are listed at all.
type PublicStation struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Position uint32 `json:"position"`
}

// PublicPrice is a price catalog entry as exposed via the public API,
// with the amount converted from cents to decimal units.
type PublicPrice struct {
	TicketType  string  `json:"ticket_type"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// ListStations handles GET /v1/stations.  It returns all active
// stations ordered by position ascending.
func (h *CatalogHandler) ListStations(c echo.Context) error {
	stations, err := h.Stations.ListActive(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	items := make([]PublicStation, 0, len(stations))
	for _, s := range stations {
		items = append(items, PublicStation{Code: s.Code, Name: s.Name, Position: s.Position})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// ListPrices handles GET /v1/prices.  It returns all active ticket
// prices with decimal amounts.
func (h *CatalogHandler) ListPrices(c echo.Context) error {
	prices, err := h.Prices.ListActive(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	items := make([]PublicPrice, 0, len(prices))
	for _, p := range prices {
		items = append(items, PublicPrice{TicketType: p.TicketType, Price: p.Amount(), Description: p.Description})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
