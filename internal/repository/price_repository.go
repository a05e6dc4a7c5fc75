package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/metro-ticket-booking/internal/model"
)

// PriceRepo manages persistence for the ticket price catalog.  Like
// stations, prices are seeded once and read-only at request time; the
// schema guarantees at most one row per ticket type.
type PriceRepo struct {
	db *sql.DB
}

// NewPriceRepo returns a new PriceRepo bound to the given database.
func NewPriceRepo(db *sql.DB) *PriceRepo { return &PriceRepo{db: db} }

// ListActive returns all active prices ordered by ticket type so output
// is deterministic.
func (r *PriceRepo) ListActive(ctx context.Context) ([]model.Price, error) {
	const q = `SELECT ticket_type, amount_cents, description, is_active
	           FROM prices
	           WHERE is_active = 1
	           ORDER BY ticket_type ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	prices := make([]model.Price, 0)
	for rows.Next() {
		var p model.Price
		if err := rows.Scan(&p.TicketType, &p.AmountCents, &p.Description, &p.IsActive); err != nil {
			return nil, err
		}
		prices = append(prices, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return prices, nil
}

// ActiveByType returns the active price for the given ticket type.  It
// returns ErrPriceNotFound when the type is unknown or inactive.
func (r *PriceRepo) ActiveByType(ctx context.Context, ticketType string) (*model.Price, error) {
	const q = `SELECT ticket_type, amount_cents, description, is_active
	           FROM prices
	           WHERE ticket_type = ? AND is_active = 1`
	var p model.Price
	err := r.db.QueryRowContext(ctx, q, ticketType).Scan(&p.TicketType, &p.AmountCents, &p.Description, &p.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPriceNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Seed inserts the given prices, skipping any ticket type that already
// exists.  Re-seeding is a no-op for existing rows.
func (r *PriceRepo) Seed(ctx context.Context, prices []model.Price) error {
	const q = `INSERT IGNORE INTO prices (ticket_type, amount_cents, description, is_active) VALUES (?, ?, ?, ?)`
	for _, p := range prices {
		if _, err := r.db.ExecContext(ctx, q, p.TicketType, p.AmountCents, p.Description, p.IsActive); err != nil {
			return err
		}
	}
	return nil
}
