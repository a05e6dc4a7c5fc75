package handler

import (
	"context"
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/metro-ticket-booking/internal/model"
	"github.com/iliyamo/metro-ticket-booking/internal/queue"
	"github.com/iliyamo/metro-ticket-booking/internal/repository"
	"github.com/iliyamo/metro-ticket-booking/internal/ticket"
)

// createAttempts bounds how often a colliding booking ID is regenerated
// before the create is surfaced as a server error.
const createAttempts = 3

// Default pagination applied when the query parameters are absent or
// non-numeric.
const (
	defaultPage     = 1
	defaultPageSize = 10
)

// BookingStore is the durable booking collection as the handlers see
// it.  *repository.BookingRepo satisfies it in production.
type BookingStore interface {
	Create(ctx context.Context, b *model.Booking) error
	ByID(ctx context.Context, id string) (*model.Booking, error)
	List(ctx context.Context, page, pageSize int) (*repository.BookingPage, error)
	Cancel(ctx context.Context, id string) error
}

// BookingHandler implements the booking lifecycle endpoints: create,
// fetch, paginated list and cancel.  PublishTicket, when set, is
// invoked fire-and-forget after a successful create; a nil value or a
// publish failure never affects the response.
type BookingHandler struct {
	Bookings      BookingStore
	Validator     *ticket.Validator
	Fare          *ticket.FareCalculator
	PublishTicket func(ctx context.Context, ev queue.TicketIssuedEvent) error
}

// NewBookingHandler constructs a BookingHandler.  The store, validator
// and fare calculator must be non-nil; the publisher is optional.
func NewBookingHandler(store BookingStore, validator *ticket.Validator, fare *ticket.FareCalculator) *BookingHandler {
	if store == nil || validator == nil || fare == nil {
		panic("nil dependency passed to NewBookingHandler")
	}
	return &BookingHandler{Bookings: store, Validator: validator, Fare: fare}
}

// BookingView is a booking as rendered in API responses: dates in
// YYYY-MM-DD form, money in decimal units, timestamps in RFC3339.
type BookingView struct {
	ID             string  `json:"id"`
	FromStation    string  `json:"from_station"`
	ToStation      string  `json:"to_station"`
	TravelDate     string  `json:"travel_date"`
	TravelTime     string  `json:"travel_time"`
	PassengerCount uint32  `json:"passenger_count"`
	TicketType     string  `json:"ticket_type"`
	TotalPrice     float64 `json:"total_price"`
	QRPayload      *string `json:"qr_payload"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

func newBookingView(b *model.Booking) BookingView {
	return BookingView{
		ID:             b.ID,
		FromStation:    b.FromStation,
		ToStation:      b.ToStation,
		TravelDate:     b.TravelDate.UTC().Format(ticket.DateLayout),
		TravelTime:     b.TravelTime,
		PassengerCount: b.PassengerCount,
		TicketType:     b.TicketType,
		TotalPrice:     b.TotalPrice(),
		QRPayload:      b.QRPayload,
		Status:         b.Status,
		CreatedAt:      b.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      b.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// CreateBooking handles POST /v1/bookings.  The request is validated,
// the fare computed unless the caller supplied a total, a booking ID
// generated and the record persisted.  QR payload encoding failure is
// logged and leaves the payload NULL; it never aborts the create.  On
// an ID collision the insert is retried with a fresh ID a bounded
// number of times.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req ticket.BookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	ctx := c.Request().Context()

	if err := h.Validator.Validate(ctx, &req); err != nil {
		var ve *ticket.ValidationError
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, ve)
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	// Exactly one fare computation path: a supplied total bypasses the
	// calculator entirely, otherwise the calculator decides.
	var totalCents uint32
	if req.TotalPrice != nil {
		if *req.TotalPrice < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "total_price must be non-negative"})
		}
		totalCents = uint32(math.Round(*req.TotalPrice * 100))
	} else {
		cents, err := h.Fare.Total(ctx, req.TicketType, uint32(req.PassengerCount))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		totalCents = cents
	}

	travelDate, err := time.Parse(ticket.DateLayout, req.TravelDate)
	if err != nil {
		// Unreachable after validation; kept so a refactor cannot
		// silently persist a zero date.
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "travel date must be a valid date not in the past"})
	}

	var booking *model.Booking
	for attempt := 0; attempt < createAttempts; attempt++ {
		b := &model.Booking{
			ID:             ticket.NewBookingID(),
			FromStation:    req.FromStation,
			ToStation:      req.ToStation,
			TravelDate:     travelDate,
			TravelTime:     req.TravelTime,
			PassengerCount: uint32(req.PassengerCount),
			TicketType:     req.TicketType,
			TotalCents:     totalCents,
		}
		if payload, encErr := ticket.EncodeQRPayload(b); encErr != nil {
			log.Printf("booking: qr payload encode failed for %s: %v", b.ID, encErr)
		} else {
			b.QRPayload = &payload
		}
		createErr := h.Bookings.Create(ctx, b)
		if createErr == nil {
			booking = b
			break
		}
		if errors.Is(createErr, repository.ErrDuplicateBookingID) {
			continue
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if booking == nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to allocate booking id"})
	}

	if h.PublishTicket != nil {
		ev := queue.TicketIssuedEvent{
			BookingID:      booking.ID,
			FromStation:    booking.FromStation,
			ToStation:      booking.ToStation,
			TravelDate:     booking.TravelDate.UTC().Format(ticket.DateLayout),
			TravelTime:     booking.TravelTime,
			PassengerCount: booking.PassengerCount,
			TicketType:     booking.TicketType,
			TotalCents:     booking.TotalCents,
			IssuedAt:       time.Now().UTC().Format(time.RFC3339),
		}
		publish := h.PublishTicket
		go func() { _ = publish(context.Background(), ev) }()
	}

	return c.JSON(http.StatusCreated, newBookingView(booking))
}

// GetBooking handles GET /v1/bookings/:id.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	id := c.Param("id")
	b, err := h.Bookings.ByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": newBookingView(b)})
}

// ListBookings handles GET /v1/bookings.  Query parameters page and
// limit default to 1 and 10 when absent or non-numeric.  Results are
// ordered newest-created first.
func (h *BookingHandler) ListBookings(c echo.Context) error {
	page := intParam(c.QueryParam("page"), defaultPage)
	limit := intParam(c.QueryParam("limit"), defaultPageSize)
	result, err := h.Bookings.List(c.Request().Context(), page, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	items := make([]BookingView, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, newBookingView(&result.Items[i]))
	}
	return c.JSON(http.StatusOK, echo.Map{
		"items":       items,
		"page":        result.Page,
		"page_size":   result.PageSize,
		"total_count": result.TotalCount,
		"total_pages": result.TotalPages,
	})
}

// CancelBooking handles DELETE /v1/bookings/:id.  The transition is a
// single conditional update in the store; a booking that is missing or
// already cancelled yields the same 404.
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	id := c.Param("id")
	if err := h.Bookings.Cancel(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrBookingNotActive) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found or already cancelled"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// intParam parses a positive integer query parameter, falling back to
// def when the value is absent, non-numeric or less than one.
func intParam(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}
