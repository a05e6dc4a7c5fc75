package ticket

import (
	"context"

	"github.com/iliyamo/metro-ticket-booking/internal/model"
)

// StationSource looks up a single active station by code.
type StationSource interface {
	ActiveByCode(ctx context.Context, code string) (*model.Station, error)
}

// PriceSource looks up a single active price by ticket type.
type PriceSource interface {
	ActiveByType(ctx context.Context, ticketType string) (*model.Price, error)
}

// repoCatalog joins the two reference-data repositories into the single
// Catalog the validator and fare calculator consume.
type repoCatalog struct {
	stations StationSource
	prices   PriceSource
}

// CatalogFromRepos combines a station source and a price source into a
// Catalog.
func CatalogFromRepos(stations StationSource, prices PriceSource) Catalog {
	return &repoCatalog{stations: stations, prices: prices}
}

func (c *repoCatalog) ActiveByCode(ctx context.Context, code string) (*model.Station, error) {
	return c.stations.ActiveByCode(ctx, code)
}

func (c *repoCatalog) ActiveByType(ctx context.Context, ticketType string) (*model.Price, error) {
	return c.prices.ActiveByType(ctx, ticketType)
}
