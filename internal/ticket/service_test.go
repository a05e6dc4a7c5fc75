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

// fakeBookings is an in-memory BookingSource.  A non-nil err is
// returned from every lookup to simulate a broken store.
type fakeBookings struct {
	byID map[string]*model.Booking
	err  error
}

func (f *fakeBookings) ByID(_ context.Context, id string) (*model.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	b, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrBookingNotFound
	}
	return b, nil
}

func testBooking(id, status string, travelDate time.Time) *model.Booking {
	return &model.Booking{
		ID:             id,
		FromStation:    "central",
		ToStation:      "airport",
		TravelDate:     travelDate,
		TravelTime:     "09:00",
		PassengerCount: 2,
		TicketType:     "regular",
		TotalCents:     500,
		Status:         status,
	}
}

func newTestService(bookings ...*model.Booking) *Service {
	byID := make(map[string]*model.Booking, len(bookings))
	for _, b := range bookings {
		byID[b.ID] = b
	}
	return NewService(&fakeBookings{byID: byID}).
		WithNow(func() time.Time { return testToday })
}

func TestService_ValidToday(t *testing.T) {
	s := newTestService(testBooking("AAAAAAAAAA", model.BookingStatusActive, testToday))
	res, err := s.Validate(context.Background(), "AAAAAAAAAA")
	require.NoError(t, err)
	assert.Equal(t, ResultValid, res.Result)
	require.NotNil(t, res.Booking)
	assert.Equal(t, "2026-08-28", res.Booking.TravelDate)
}

func TestService_ValidFutureDate(t *testing.T) {
	s := newTestService(testBooking("AAAAAAAAAA", model.BookingStatusActive, testToday.AddDate(0, 0, 7)))
	res, err := s.Validate(context.Background(), "AAAAAAAAAA")
	require.NoError(t, err)
	assert.Equal(t, ResultValid, res.Result)
	assert.Equal(t, &Summary{
		BookingID:      "AAAAAAAAAA",
		FromStation:    "central",
		ToStation:      "airport",
		TravelDate:     "2026-09-04",
		TravelTime:     "09:00",
		PassengerCount: 2,
		TicketType:     "regular",
	}, res.Booking)
}

func TestService_ExpiredWhenTravelDatePassed(t *testing.T) {
	s := newTestService(testBooking("AAAAAAAAAA", model.BookingStatusActive, testToday.AddDate(0, 0, -1)))
	res, err := s.Validate(context.Background(), "AAAAAAAAAA")
	require.NoError(t, err)
	assert.Equal(t, ResultExpired, res.Result)
	assert.Nil(t, res.Booking)
}

func TestService_CancelledLooksLikeMissing(t *testing.T) {
	s := newTestService(testBooking("AAAAAAAAAA", model.BookingStatusCancelled, testToday.AddDate(0, 0, 7)))

	cancelled, err := s.Validate(context.Background(), "AAAAAAAAAA")
	require.NoError(t, err)
	missing, err2 := s.Validate(context.Background(), "ZZZZZZZZZZ")
	require.NoError(t, err2)

	assert.Equal(t, ResultNotFound, cancelled.Result)
	assert.Equal(t, missing, cancelled)
}

func TestService_StoreFailureIsAnError(t *testing.T) {
	s := NewService(&fakeBookings{err: errors.New("connection refused")})
	res, err := s.Validate(context.Background(), "AAAAAAAAAA")
	assert.Error(t, err)
	assert.Nil(t, res)
}
