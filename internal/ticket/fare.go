// Package ticket holds the booking business rules: fare computation,
// request validation, booking ID generation, QR payload encoding and
// ticket validation.  The package reads reference data through the
// Catalog interface and holds no mutable state of its own.
package ticket

import (
	"context"

	"github.com/iliyamo/metro-ticket-booking/internal/model"
)

// TicketTypeDayPass is priced flat per booking instead of per passenger.
const TicketTypeDayPass = "day-pass"

// Catalog provides read access to the station and price reference data.
// Lookups cover active entries only; absent entries surface the
// repository sentinel errors.
type Catalog interface {
	ActiveByCode(ctx context.Context, code string) (*model.Station, error)
	ActiveByType(ctx context.Context, ticketType string) (*model.Price, error)
}

// FareCalculator computes booking totals from the price catalog.  The
// computation is deterministic and carried out in integer cents, so
// results are exact at two decimal places.
type FareCalculator struct {
	catalog Catalog
}

// NewFareCalculator returns a FareCalculator reading from the given catalog.
func NewFareCalculator(catalog Catalog) *FareCalculator {
	return &FareCalculator{catalog: catalog}
}

// Total returns the total fare in cents for the given ticket type and
// passenger count.  A day pass costs its unit price once per booking
// regardless of passenger count; every other type scales linearly.  An
// unknown or inactive ticket type surfaces repository.ErrPriceNotFound
// from the catalog.
func (f *FareCalculator) Total(ctx context.Context, ticketType string, passengerCount uint32) (uint32, error) {
	price, err := f.catalog.ActiveByType(ctx, ticketType)
	if err != nil {
		return 0, err
	}
	if ticketType == TicketTypeDayPass {
		return price.AmountCents, nil
	}
	return price.AmountCents * passengerCount, nil
}
