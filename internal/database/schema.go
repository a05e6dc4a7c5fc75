package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Bootstrap creates the three durable collections when they do not yet
// exist: bookings keyed by id, stations keyed by code and prices keyed
// by ticket_type.  Every statement is idempotent, so running Bootstrap
// on every startup is safe.  A real migration tool is overkill for a
// fixed three-table schema.
func Bootstrap(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS stations (
			code      VARCHAR(32)  NOT NULL PRIMARY KEY,
			name      VARCHAR(100) NOT NULL,
			position  INT UNSIGNED NOT NULL,
			is_active TINYINT(1)   NOT NULL DEFAULT 1
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS prices (
			ticket_type  VARCHAR(32)  NOT NULL PRIMARY KEY,
			amount_cents INT UNSIGNED NOT NULL,
			description  VARCHAR(255) NOT NULL DEFAULT '',
			is_active    TINYINT(1)   NOT NULL DEFAULT 1
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id              CHAR(10)     NOT NULL PRIMARY KEY,
			from_station    VARCHAR(32)  NOT NULL,
			to_station      VARCHAR(32)  NOT NULL,
			travel_date     DATE         NOT NULL,
			travel_time     VARCHAR(5)   NOT NULL,
			passenger_count INT UNSIGNED NOT NULL,
			ticket_type     VARCHAR(32)  NOT NULL,
			total_cents     INT UNSIGNED NOT NULL,
			qr_payload      TEXT         NULL,
			status          ENUM('active','cancelled') NOT NULL DEFAULT 'active',
			created_at      DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at      DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			KEY idx_bookings_created_at (created_at)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}
	return nil
}
