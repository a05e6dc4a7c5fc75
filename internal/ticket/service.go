package ticket

import (
	"context"
	"errors"
	"time"

	"github.com/iliyamo/metro-ticket-booking/internal/model"
	"github.com/iliyamo/metro-ticket-booking/internal/repository"
)

// Validation outcomes for a scanned ticket.
const (
	ResultValid    = "valid"
	ResultExpired  = "expired"
	ResultNotFound = "not_found"
)

// BookingSource provides read access to bookings for ticket validation.
type BookingSource interface {
	ByID(ctx context.Context, id string) (*model.Booking, error)
}

// Summary is the rider-facing slice of a booking returned on a
// successful scan.  Internal fields such as the QR payload and
// timestamps are deliberately excluded.
type Summary struct {
	BookingID      string `json:"booking_id"`
	FromStation    string `json:"from_station"`
	ToStation      string `json:"to_station"`
	TravelDate     string `json:"travel_date"`
	TravelTime     string `json:"travel_time"`
	PassengerCount uint32 `json:"passenger_count"`
	TicketType     string `json:"ticket_type"`
}

// ValidationResult is the outcome of scanning a ticket.  Booking is
// populated only when Result is ResultValid.
type ValidationResult struct {
	Result  string
	Booking *Summary
}

// Service decides whether a ticket is currently usable.  The state
// machine: an active booking travelling today or later is valid; an
// active booking whose travel date has passed is expired; a cancelled
// booking answers exactly like one that never existed.
type Service struct {
	bookings BookingSource
	now      func() time.Time
}

// NewService returns a ticket validation Service reading bookings from
// the given source.  The clock defaults to time.Now.
func NewService(bookings BookingSource) *Service {
	return &Service{bookings: bookings, now: time.Now}
}

// WithNow overrides the service clock and returns the service.
func (s *Service) WithNow(now func() time.Time) *Service {
	s.now = now
	return s
}

// Validate looks up the booking and classifies it.  A missing booking
// and a cancelled one both yield ResultNotFound — the distinction is
// deliberately not exposed to scanners.  Store failures are returned
// as errors, never misreported as an invalid ticket.
func (s *Service) Validate(ctx context.Context, id string) (*ValidationResult, error) {
	b, err := s.bookings.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return &ValidationResult{Result: ResultNotFound}, nil
		}
		return nil, err
	}
	if b.Status != model.BookingStatusActive {
		return &ValidationResult{Result: ResultNotFound}, nil
	}
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	travel := b.TravelDate.UTC()
	travelDay := time.Date(travel.Year(), travel.Month(), travel.Day(), 0, 0, 0, 0, time.UTC)
	if travelDay.Before(today) {
		return &ValidationResult{Result: ResultExpired}, nil
	}
	return &ValidationResult{
		Result: ResultValid,
		Booking: &Summary{
			BookingID:      b.ID,
			FromStation:    b.FromStation,
			ToStation:      b.ToStation,
			TravelDate:     travelDay.Format(DateLayout),
			TravelTime:     b.TravelTime,
			PassengerCount: b.PassengerCount,
			TicketType:     b.TicketType,
		},
	}, nil
}
