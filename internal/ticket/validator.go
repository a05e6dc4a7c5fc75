package ticket

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iliyamo/metro-ticket-booking/internal/repository"
)

// DateLayout is the wire format for travel dates.
const DateLayout = "2006-01-02"

// Validation error codes, one per check.  The checks run in a fixed
// order and the first failure wins.
const (
	CodeMissingField          = "missing_field"
	CodeSameStation           = "same_station"
	CodePastDate              = "past_date"
	CodeUnknownStation        = "unknown_station"
	CodeUnknownTicketType     = "unknown_ticket_type"
	CodeInvalidPassengerCount = "invalid_passenger_count"
)

// BookingRequest is the inbound payload for creating a booking.  A nil
// TotalPrice means the fare is computed server-side; a supplied value
// is used as-is after validation.
type BookingRequest struct {
	FromStation    string   `json:"from_station"`
	ToStation      string   `json:"to_station"`
	TravelDate     string   `json:"travel_date"`
	TravelTime     string   `json:"travel_time"`
	PassengerCount int      `json:"passenger_count"`
	TicketType     string   `json:"ticket_type"`
	TotalPrice     *float64 `json:"total_price,omitempty"`
}

// ValidationError describes exactly which check a booking request
// failed.  Code identifies the check, Field names the offending input
// where one applies, and Message is safe to surface to the client.
type ValidationError struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"error"`
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// Validator enforces the booking input invariants against the reference
// catalog.  It is a pure predicate: no side effects beyond catalog reads.
type Validator struct {
	catalog Catalog
	now     func() time.Time
}

// NewValidator returns a Validator reading from the given catalog.  The
// clock defaults to time.Now and exists so tests can pin "today".
func NewValidator(catalog Catalog) *Validator {
	return &Validator{catalog: catalog, now: time.Now}
}

// WithNow overrides the validator's clock and returns the validator.
func (v *Validator) WithNow(now func() time.Time) *Validator {
	v.now = now
	return v
}

// Validate runs the booking checks in order and returns the first
// failure as a *ValidationError.  Any non-validation failure (catalog
// unavailable) is returned as-is so callers can distinguish a rejected
// request from a broken store.
//
// Order: required fields, same station, past or unparseable date,
// unknown stations, unknown ticket type, invalid passenger count.
func (v *Validator) Validate(ctx context.Context, req *BookingRequest) error {
	if ve := v.checkRequired(req); ve != nil {
		return ve
	}
	if req.FromStation == req.ToStation {
		return &ValidationError{Code: CodeSameStation, Message: "origin and destination stations must differ"}
	}
	travelDate, err := time.Parse(DateLayout, req.TravelDate)
	if err != nil || travelDate.Before(v.today()) {
		return &ValidationError{Code: CodePastDate, Field: "travel_date", Message: "travel date must be a valid date not in the past"}
	}
	for _, code := range []string{req.FromStation, req.ToStation} {
		if _, err := v.catalog.ActiveByCode(ctx, code); err != nil {
			if errors.Is(err, repository.ErrStationNotFound) {
				return &ValidationError{Code: CodeUnknownStation, Field: code, Message: "unknown station"}
			}
			return err
		}
	}
	if _, err := v.catalog.ActiveByType(ctx, req.TicketType); err != nil {
		if errors.Is(err, repository.ErrPriceNotFound) {
			return &ValidationError{Code: CodeUnknownTicketType, Field: req.TicketType, Message: "unknown ticket type"}
		}
		return err
	}
	if req.PassengerCount < 1 {
		return &ValidationError{Code: CodeInvalidPassengerCount, Field: "passenger_count", Message: "passenger count must be a positive integer"}
	}
	return nil
}

// checkRequired reports the first absent field.  Over JSON an omitted
// passenger_count arrives as zero, which counts as missing here;
// negative values fall through to the invalid_passenger_count check.
func (v *Validator) checkRequired(req *BookingRequest) *ValidationError {
	required := []struct {
		name    string
		present bool
	}{
		{"from_station", req.FromStation != ""},
		{"to_station", req.ToStation != ""},
		{"travel_date", req.TravelDate != ""},
		{"travel_time", req.TravelTime != ""},
		{"passenger_count", req.PassengerCount != 0},
		{"ticket_type", req.TicketType != ""},
	}
	for _, f := range required {
		if !f.present {
			return &ValidationError{Code: CodeMissingField, Field: f.name, Message: f.name + " is required"}
		}
	}
	return nil
}

// today returns the current date at day granularity in UTC.  Travel
// dates are compared at this granularity, ignoring time of day.
func (v *Validator) today() time.Time {
	now := v.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
