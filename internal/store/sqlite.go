package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"fairway/internal/models"
)

// SQLite is the durable Store. The schema is created on open and the
// table only ever grows, matching the append-only contract.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens the reservation database at path, creating the schema
// if needed.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS reservations (
		id TEXT PRIMARY KEY,
		resource_type TEXT NOT NULL,
		date TEXT NOT NULL,
		start_hour INTEGER NOT NULL,
		duration_hours INTEGER NOT NULL,
		total_cents INTEGER NOT NULL,
		customer_name TEXT NOT NULL,
		customer_email TEXT NOT NULL,
		customer_phone TEXT NOT NULL,
		created_at DATETIME NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create reservations table: %w", err)
	}

	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_reservations_date_type
		ON reservations(date, resource_type)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create reservations index: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// LoadAll reads the full reservation log in insertion order.
func (s *SQLite) LoadAll(ctx context.Context) ([]models.Reservation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, resource_type, date, start_hour, duration_hours,
		       total_cents, customer_name, customer_email, customer_phone, created_at
		FROM reservations
		ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("%w: load reservations: %v", ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var out []models.Reservation
	for rows.Next() {
		var r models.Reservation
		if err := rows.Scan(
			&r.ID, &r.ResourceType, &r.Date, &r.StartHour, &r.DurationHours,
			&r.TotalCents, &r.Customer.Name, &r.Customer.Email, &r.Customer.Phone, &r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scan reservation: %v", ErrStorageUnavailable, err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read reservations: %v", ErrStorageUnavailable, err)
	}
	return out, nil
}

// Append writes one reservation. Records are never touched afterwards.
func (s *SQLite) Append(ctx context.Context, r models.Reservation) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO reservations (id, resource_type, date, start_hour, duration_hours,
		                          total_cents, customer_name, customer_email, customer_phone, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, string(r.ResourceType), r.Date, r.StartHour, r.DurationHours,
		r.TotalCents, r.Customer.Name, r.Customer.Email, r.Customer.Phone, r.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: append reservation: %v", ErrStorageUnavailable, err)
	}
	return nil
}
