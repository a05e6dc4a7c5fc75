package model

// Price is the catalog entry for one ticket type.  Exactly one active
// price exists per ticket type.  Amounts are stored in integer cents so
// fare arithmetic stays exact at two decimal places.
//
// Fields:
//  TicketType  – unique ticket type identifier (primary key).
//  AmountCents – unit price in cents.
//  Description – rider-facing description of the ticket type.
//  IsActive    – whether this price is currently in effect.
type Price struct {
	TicketType  string // prices.ticket_type
	AmountCents uint32 // prices.amount_cents
	Description string // prices.description
	IsActive    bool   // prices.is_active
}

// Amount returns the unit price in decimal currency units.
func (p Price) Amount() float64 { return float64(p.AmountCents) / 100 }
