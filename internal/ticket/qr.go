package ticket

import (
	"encoding/json"

	"github.com/iliyamo/metro-ticket-booking/internal/model"
)

// QRPayload is the canonical data embedded in a ticket's QR code.  An
// external renderer turns this payload into a scannable image; this
// package only produces the data it encodes.
type QRPayload struct {
	BookingID  string `json:"booking_id"`
	From       string `json:"from"`
	To         string `json:"to"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Passengers uint32 `json:"passengers"`
	TicketType string `json:"ticket_type"`
}

// EncodeQRPayload builds the canonical QR payload for a booking.  A
// failure here must never abort booking creation: callers log the error
// and persist the booking with a NULL payload instead.
func EncodeQRPayload(b *model.Booking) (string, error) {
	payload := QRPayload{
		BookingID:  b.ID,
		From:       b.FromStation,
		To:         b.ToStation,
		Date:       b.TravelDate.UTC().Format(DateLayout),
		Time:       b.TravelTime,
		Passengers: b.PassengerCount,
		TicketType: b.TicketType,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
