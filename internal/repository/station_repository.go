package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/metro-ticket-booking/internal/model"
)

// StationRepo manages persistence for the station catalog.  Stations are
// reference data: seeded once at startup and read-only at request time.
type StationRepo struct {
	db *sql.DB
}

// NewStationRepo returns a new StationRepo bound to the given database.
func NewStationRepo(db *sql.DB) *StationRepo { return &StationRepo{db: db} }

// ListActive returns all active stations ordered by position ascending.
// Position defines the display order of the network; inactive stations
// are excluded entirely.
func (r *StationRepo) ListActive(ctx context.Context) ([]model.Station, error) {
	const q = `SELECT code, name, position, is_active
	           FROM stations
	           WHERE is_active = 1
	           ORDER BY position ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	stations := make([]model.Station, 0)
	for rows.Next() {
		var s model.Station
		if err := rows.Scan(&s.Code, &s.Name, &s.Position, &s.IsActive); err != nil {
			return nil, err
		}
		stations = append(stations, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return stations, nil
}

// ActiveByCode returns the active station with the given code.  It
// returns ErrStationNotFound when the code is unknown or the station
// has been deactivated.
func (r *StationRepo) ActiveByCode(ctx context.Context, code string) (*model.Station, error) {
	const q = `SELECT code, name, position, is_active
	           FROM stations
	           WHERE code = ? AND is_active = 1`
	var s model.Station
	err := r.db.QueryRowContext(ctx, q, code).Scan(&s.Code, &s.Name, &s.Position, &s.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStationNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Seed inserts the given stations, skipping any code that already
// exists.  INSERT IGNORE keys on the primary key, so re-seeding the
// same catalog is a no-op and never overwrites administrative changes
// such as deactivation.
func (r *StationRepo) Seed(ctx context.Context, stations []model.Station) error {
	const q = `INSERT IGNORE INTO stations (code, name, position, is_active) VALUES (?, ?, ?, ?)`
	for _, s := range stations {
		if _, err := r.db.ExecContext(ctx, q, s.Code, s.Name, s.Position, s.IsActive); err != nil {
			return err
		}
	}
	return nil
}
