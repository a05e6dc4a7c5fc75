// Package queue defines message payloads exchanged over the message broker.
package queue

// TicketIssuedEvent is published after a booking has been persisted.
// It carries enough information for downstream consumers to log, notify
// or feed analytics without querying the primary database.  EventID is
// a UUID assigned at publish time for deduplication.
type TicketIssuedEvent struct {
	EventID        string `json:"event_id"`
	BookingID      string `json:"booking_id"`
	FromStation    string `json:"from_station"`
	ToStation      string `json:"to_station"`
	TravelDate     string `json:"travel_date"`
	TravelTime     string `json:"travel_time"`
	PassengerCount uint32 `json:"passenger_count"`
	TicketType     string `json:"ticket_type"`
	TotalCents     uint32 `json:"total_cents"`
	IssuedAt       string `json:"issued_at"`
}
