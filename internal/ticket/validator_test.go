package ticket

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/metro-ticket-booking/internal/model"
	"github.com/iliyamo/metro-ticket-booking/internal/repository"
)

// fakeCatalog serves a fixed set of active stations and prices from
// memory, answering with the repository sentinels for anything else.
type fakeCatalog struct {
	stations map[string]model.Station
	prices   map[string]model.Price
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		stations: map[string]model.Station{
			"central":   {Code: "central", Name: "Central Station", Position: 1, IsActive: true},
			"riverside": {Code: "riverside", Name: "Riverside", Position: 2, IsActive: true},
			"airport":   {Code: "airport", Name: "Airport Terminal", Position: 4, IsActive: true},
		},
		prices: map[string]model.Price{
			"regular":  {TicketType: "regular", AmountCents: 250, Description: "Standard single journey", IsActive: true},
			"child":    {TicketType: "child", AmountCents: 125, Description: "Ages 5-15, single journey", IsActive: true},
			"day-pass": {TicketType: "day-pass", AmountCents: 800, Description: "Unlimited travel for one day", IsActive: true},
		},
	}
}

func (f *fakeCatalog) ActiveByCode(_ context.Context, code string) (*model.Station, error) {
	s, ok := f.stations[code]
	if !ok {
		return nil, repository.ErrStationNotFound
	}
	return &s, nil
}

func (f *fakeCatalog) ActiveByType(_ context.Context, ticketType string) (*model.Price, error) {
	p, ok := f.prices[ticketType]
	if !ok {
		return nil, repository.ErrPriceNotFound
	}
	return &p, nil
}

// testToday is the pinned "now" used across validator tests.
var testToday = time.Date(2026, time.August, 28, 15, 30, 0, 0, time.UTC)

func newTestValidator() *Validator {
	return NewValidator(newFakeCatalog()).WithNow(func() time.Time { return testToday })
}

func validRequest() *BookingRequest {
	return &BookingRequest{
		FromStation:    "central",
		ToStation:      "airport",
		TravelDate:     "2026-08-29",
		TravelTime:     "09:00",
		PassengerCount: 2,
		TicketType:     "regular",
	}
}

func validationCode(t *testing.T, err error) *ValidationError {
	t.Helper()
	require.Error(t, err)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve), "expected a *ValidationError, got %v", err)
	return ve
}

func TestValidator_ValidRequest(t *testing.T) {
	v := newTestValidator()
	require.NoError(t, v.Validate(context.Background(), validRequest()))
}

func TestValidator_TravelDateTodayIsAllowed(t *testing.T) {
	v := newTestValidator()
	req := validRequest()
	req.TravelDate = "2026-08-28"
	require.NoError(t, v.Validate(context.Background(), req))
}

func TestValidator_MissingFields(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(*BookingRequest)
	}{
		{"from_station", func(r *BookingRequest) { r.FromStation = "" }},
		{"to_station", func(r *BookingRequest) { r.ToStation = "" }},
		{"travel_date", func(r *BookingRequest) { r.TravelDate = "" }},
		{"travel_time", func(r *BookingRequest) { r.TravelTime = "" }},
		{"passenger_count", func(r *BookingRequest) { r.PassengerCount = 0 }},
		{"ticket_type", func(r *BookingRequest) { r.TicketType = "" }},
	}
	v := newTestValidator()
	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)
			ve := validationCode(t, v.Validate(context.Background(), req))
			assert.Equal(t, CodeMissingField, ve.Code)
			assert.Equal(t, tc.field, ve.Field)
		})
	}
}

func TestValidator_SameStation(t *testing.T) {
	v := newTestValidator()
	req := validRequest()
	req.ToStation = req.FromStation
	ve := validationCode(t, v.Validate(context.Background(), req))
	assert.Equal(t, CodeSameStation, ve.Code)
}

func TestValidator_SameStationBeatsPastDate(t *testing.T) {
	v := newTestValidator()
	req := validRequest()
	req.ToStation = req.FromStation
	req.TravelDate = "2020-01-01"
	ve := validationCode(t, v.Validate(context.Background(), req))
	assert.Equal(t, CodeSameStation, ve.Code)
}

func TestValidator_PastDate(t *testing.T) {
	v := newTestValidator()
	for _, date := range []string{"2026-08-27", "2020-01-01", "not-a-date", "28/08/2026"} {
		req := validRequest()
		req.TravelDate = date
		ve := validationCode(t, v.Validate(context.Background(), req))
		assert.Equal(t, CodePastDate, ve.Code, "date %q", date)
	}
}

func TestValidator_UnknownStation(t *testing.T) {
	v := newTestValidator()

	req := validRequest()
	req.FromStation = "atlantis"
	ve := validationCode(t, v.Validate(context.Background(), req))
	assert.Equal(t, CodeUnknownStation, ve.Code)
	assert.Equal(t, "atlantis", ve.Field)

	req = validRequest()
	req.ToStation = "atlantis"
	ve = validationCode(t, v.Validate(context.Background(), req))
	assert.Equal(t, CodeUnknownStation, ve.Code)
	assert.Equal(t, "atlantis", ve.Field)
}

func TestValidator_UnknownTicketType(t *testing.T) {
	v := newTestValidator()
	req := validRequest()
	req.TicketType = "platinum"
	ve := validationCode(t, v.Validate(context.Background(), req))
	assert.Equal(t, CodeUnknownTicketType, ve.Code)
}

func TestValidator_NegativePassengerCount(t *testing.T) {
	v := newTestValidator()
	req := validRequest()
	req.PassengerCount = -3
	ve := validationCode(t, v.Validate(context.Background(), req))
	assert.Equal(t, CodeInvalidPassengerCount, ve.Code)
}
