package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/metro-ticket-booking/internal/ticket"
)

// TicketHandler exposes ticket scanning.  The decision logic lives in
// ticket.Service; the handler only maps outcomes onto HTTP responses.
type TicketHandler struct {
	Tickets *ticket.Service
}

// NewTicketHandler constructs a TicketHandler over the given service.
func NewTicketHandler(tickets *ticket.Service) *TicketHandler {
	if tickets == nil {
		panic("nil service passed to NewTicketHandler")
	}
	return &TicketHandler{Tickets: tickets}
}

// ValidateTicket handles GET /v1/tickets/:id/validate.  A missing or
// cancelled booking answers 404 with the same body, so scanners cannot
// tell the two apart.  An active booking whose travel date has passed
// answers 200 with valid=false and an expired reason.
func (h *TicketHandler) ValidateTicket(c echo.Context) error {
	res, err := h.Tickets.Validate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	switch res.Result {
	case ticket.ResultExpired:
		return c.JSON(http.StatusOK, echo.Map{"valid": false, "reason": "expired"})
	case ticket.ResultValid:
		return c.JSON(http.StatusOK, echo.Map{"valid": true, "booking": res.Booking})
	default:
		return c.JSON(http.StatusNotFound, echo.Map{"valid": false, "error": "invalid or expired ticket"})
	}
}
