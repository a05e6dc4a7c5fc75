package database

import (
	"context"
	"fmt"

	"github.com/iliyamo/metro-ticket-booking/internal/model"
	"github.com/iliyamo/metro-ticket-booking/internal/repository"
)

// DefaultStations returns the fixed metro network in display order.
func DefaultStations() []model.Station {
	return []model.Station{
		{Code: "central", Name: "Central Station", Position: 1, IsActive: true},
		{Code: "riverside", Name: "Riverside", Position: 2, IsActive: true},
		{Code: "university", Name: "University", Position: 3, IsActive: true},
		{Code: "airport", Name: "Airport Terminal", Position: 4, IsActive: true},
		{Code: "stadium", Name: "Stadium Park", Position: 5, IsActive: true},
		{Code: "harbor", Name: "Harbor Front", Position: 6, IsActive: true},
	}
}

// DefaultPrices returns the ticket price catalog.  The day pass is flat
// per booking; every other type is priced per passenger.
func DefaultPrices() []model.Price {
	return []model.Price{
		{TicketType: "regular", AmountCents: 250, Description: "Standard single journey", IsActive: true},
		{TicketType: "child", AmountCents: 125, Description: "Ages 5-15, single journey", IsActive: true},
		{TicketType: "senior", AmountCents: 150, Description: "Ages 65+, single journey", IsActive: true},
		{TicketType: "day-pass", AmountCents: 800, Description: "Unlimited travel for one day", IsActive: true},
	}
}

// SeedCatalog loads the default stations and prices through the
// repositories.  Seeding is idempotent: rows that already exist are
// skipped, so restarts never duplicate or overwrite the catalog.
func SeedCatalog(ctx context.Context, stations *repository.StationRepo, prices *repository.PriceRepo) error {
	if err := stations.Seed(ctx, DefaultStations()); err != nil {
		return fmt.Errorf("seed stations: %w", err)
	}
	if err := prices.Seed(ctx, DefaultPrices()); err != nil {
		return fmt.Errorf("seed prices: %w", err)
	}
	return nil
}
