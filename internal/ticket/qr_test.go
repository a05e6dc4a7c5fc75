package ticket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/metro-ticket-booking/internal/model"
)

func TestEncodeQRPayload(t *testing.T) {
	b := &model.Booking{
		ID:             "K3J9XQ7B2M",
		FromStation:    "central",
		ToStation:      "airport",
		TravelDate:     time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC),
		TravelTime:     "09:00",
		PassengerCount: 2,
		TicketType:     "regular",
		TotalCents:     500,
	}
	payload, err := EncodeQRPayload(b)
	require.NoError(t, err)

	var decoded QRPayload
	require.NoError(t, json.Unmarshal([]byte(payload), &decoded))
	assert.Equal(t, QRPayload{
		BookingID:  "K3J9XQ7B2M",
		From:       "central",
		To:         "airport",
		Date:       "2026-08-29",
		Time:       "09:00",
		Passengers: 2,
		TicketType: "regular",
	}, decoded)
}

func TestEncodeQRPayload_ExcludesInternalFields(t *testing.T) {
	qr := "should-not-leak"
	b := &model.Booking{
		ID:         "K3J9XQ7B2M",
		TravelDate: time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC),
		QRPayload:  &qr,
		TotalCents: 500,
	}
	payload, err := EncodeQRPayload(b)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(payload), &m))
	assert.NotContains(t, m, "qr_payload")
	assert.NotContains(t, m, "total_cents")
	assert.NotContains(t, m, "status")
}
