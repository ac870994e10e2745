// Package store persists reservations. The store is an append-only log
// with two operations: load everything, append one record. There are no
// updates or deletes.
package store

import (
	"context"
	"errors"

	"fairway/internal/models"
)

// ErrStorageUnavailable marks persistence failures. Once a write has
// failed, in-memory state is no longer authoritative.
var ErrStorageUnavailable = errors.New("reservation storage unavailable")

// Store is the persistence collaborator for the booking service.
type Store interface {
	LoadAll(ctx context.Context) ([]models.Reservation, error)
	Append(ctx context.Context, r models.Reservation) error
}
