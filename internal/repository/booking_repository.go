package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"github.com/iliyamo/metro-ticket-booking/internal/model"
)

// mysqlDuplicateEntry is the MySQL error number for a unique-key
// violation (ER_DUP_ENTRY).
const mysqlDuplicateEntry = 1062

// BookingRepo provides CRUD operations for bookings.  It is the sole
// mutator of booking rows: bookings are created by the creation flow,
// transitioned to cancelled by the cancellation flow, and never
// physically deleted.  All timestamp fields are stored in UTC.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// BookingPage is one page of bookings plus pagination metadata, ordered
// newest-created first.
type BookingPage struct {
	Items      []model.Booking
	Page       int
	PageSize   int
	TotalCount int
	TotalPages int
}

// Create inserts a new booking with status active.  The insert relies
// on the primary key for uniqueness: a collision with an existing ID is
// reported as ErrDuplicateBookingID so the caller can regenerate and
// retry.  On success the row is read back to populate the DB-assigned
// status and timestamps.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	const q = `INSERT INTO bookings
	           (id, from_station, to_station, travel_date, travel_time, passenger_count, ticket_type, total_cents, qr_payload)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	var qr sql.NullString
	if b.QRPayload != nil {
		qr = sql.NullString{String: *b.QRPayload, Valid: true}
	}
	_, err := r.db.ExecContext(ctx, q,
		b.ID, b.FromStation, b.ToStation,
		b.TravelDate.UTC().Format("2006-01-02"), b.TravelTime,
		b.PassengerCount, b.TicketType, b.TotalCents, qr,
	)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == mysqlDuplicateEntry {
			return ErrDuplicateBookingID
		}
		return err
	}
	// Query back the full row to populate status and timestamps.
	fresh, err := r.ByID(ctx, b.ID)
	if err != nil {
		return err
	}
	*b = *fresh
	return nil
}

// ByID returns the booking with the given ID regardless of status.  It
// returns ErrBookingNotFound when no row matches.
func (r *BookingRepo) ByID(ctx context.Context, id string) (*model.Booking, error) {
	const q = `SELECT id, from_station, to_station, travel_date, travel_time,
	                  passenger_count, ticket_type, total_cents, qr_payload, status,
	                  created_at, updated_at
	           FROM bookings
	           WHERE id = ?`
	var b model.Booking
	var qr sql.NullString
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&b.ID, &b.FromStation, &b.ToStation, &b.TravelDate, &b.TravelTime,
		&b.PassengerCount, &b.TicketType, &b.TotalCents, &qr, &b.Status,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if qr.Valid {
		payload := qr.String
		b.QRPayload = &payload
	}
	return &b, nil
}

// List returns one page of bookings ordered by creation time descending
// (newest first).  Page and pageSize are clamped to sane minimums; the
// caller is responsible for applying its own defaults before calling.
func (r *BookingRepo) List(ctx context.Context, page, pageSize int) (*BookingPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	const countQ = `SELECT COUNT(*) FROM bookings`
	var total int
	if err := r.db.QueryRowContext(ctx, countQ).Scan(&total); err != nil {
		return nil, err
	}
	const q = `SELECT id, from_station, to_station, travel_date, travel_time,
	                  passenger_count, ticket_type, total_cents, qr_payload, status,
	                  created_at, updated_at
	           FROM bookings
	           ORDER BY created_at DESC, id DESC
	           LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, q, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := make([]model.Booking, 0, pageSize)
	for rows.Next() {
		var b model.Booking
		var qr sql.NullString
		if err := rows.Scan(
			&b.ID, &b.FromStation, &b.ToStation, &b.TravelDate, &b.TravelTime,
			&b.PassengerCount, &b.TicketType, &b.TotalCents, &qr, &b.Status,
			&b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if qr.Valid {
			payload := qr.String
			b.QRPayload = &payload
		}
		items = append(items, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &BookingPage{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
		TotalPages: pageCount(total, pageSize),
	}, nil
}

// Cancel transitions a booking from active to cancelled in a single
// conditional UPDATE.  The status guard makes the operation atomic:
// there is no read-then-write window, so concurrent cancel attempts
// cannot both succeed.  When no row is affected the booking either does
// not exist or is already cancelled, and ErrBookingNotActive is
// returned for both.
func (r *BookingRepo) Cancel(ctx context.Context, id string) error {
	const q = `UPDATE bookings
	           SET status = 'cancelled', updated_at = CURRENT_TIMESTAMP
	           WHERE id = ? AND status = 'active'`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrBookingNotActive
	}
	return nil
}

// pageCount returns ceil(total / pageSize) for positive pageSize.
func pageCount(total, pageSize int) int {
	if total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
