package model

import "time"

// Booking statuses.  A booking is created active and may only ever move
// to cancelled; the transition is never reversed and rows are never
// physically deleted.
const (
	BookingStatusActive    = "active"
	BookingStatusCancelled = "cancelled"
)

// Booking records a reserved trip between two stations for one or more
// passengers on a given date and time.  All timestamp fields are stored
// in UTC.
//
// Fields:
//  ID             – fixed-length 10-character identifier (primary key).
//  FromStation    – origin station code.
//  ToStation      – destination station code (never equal to FromStation).
//  TravelDate     – calendar date of travel; never before the creation date.
//  TravelTime     – time of day in "HH:MM" form.
//  PassengerCount – number of travellers, always >= 1.
//  TicketType     – references the price catalog.
//  TotalCents     – total fare in cents.
//  QRPayload      – canonical QR data, nil when encoding failed at creation.
//  Status         – active or cancelled.
//  CreatedAt      – creation timestamp.
//  UpdatedAt      – last update timestamp (touched by cancellation).
type Booking struct {
	ID             string     // bookings.id
	FromStation    string     // bookings.from_station
	ToStation      string     // bookings.to_station
	TravelDate     time.Time  // bookings.travel_date (DATE)
	TravelTime     string     // bookings.travel_time ("HH:MM")
	PassengerCount uint32     // bookings.passenger_count
	TicketType     string     // bookings.ticket_type
	TotalCents     uint32     // bookings.total_cents
	QRPayload      *string    // bookings.qr_payload (nullable)
	Status         string     // bookings.status
	CreatedAt      time.Time  // bookings.created_at
	UpdatedAt      time.Time  // bookings.updated_at
}

// TotalPrice returns the total fare in decimal currency units.
func (b Booking) TotalPrice() float64 { return float64(b.TotalCents) / 100 }
