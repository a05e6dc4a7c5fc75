// Package repository defines sentinel errors shared by the individual
// repositories. Handlers and domain services compare against these
// values with errors.Is to decide which response a failure maps to,
// without inspecting driver-specific error types themselves.
package repository

import "errors"

// ErrStationNotFound is returned when no active station exists for a
// given code. Inactive stations are treated as absent.
var ErrStationNotFound = errors.New("station not found")

// ErrPriceNotFound is returned when no active price exists for a given
// ticket type. Inactive prices are treated as absent.
var ErrPriceNotFound = errors.New("price not found")

// ErrBookingNotFound is returned when a booking lookup matches no row.
var ErrBookingNotFound = errors.New("booking not found")

// ErrDuplicateBookingID is returned when an insert collides with an
// existing booking ID. The create flow regenerates the ID and retries
// a bounded number of times before giving up.
var ErrDuplicateBookingID = errors.New("duplicate booking id")

// ErrBookingNotActive is returned by Cancel when the conditional update
// matched no row, either because the booking does not exist or because
// it was already cancelled. The two causes are deliberately not
// distinguished.
var ErrBookingNotActive = errors.New("booking not found or already cancelled")
