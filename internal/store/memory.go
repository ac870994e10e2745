package store

import (
	"context"
	"sync"

	"fairway/internal/models"
)

// Memory is an in-process Store for tests and ephemeral runs.
type Memory struct {
	mu           sync.RWMutex
	reservations []models.Reservation
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// LoadAll returns a copy of every stored reservation in insertion order.
func (m *Memory) LoadAll(ctx context.Context) ([]models.Reservation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Reservation, len(m.reservations))
	copy(out, m.reservations)
	return out, nil
}

// Append adds one reservation to the log.
func (m *Memory) Append(ctx context.Context, r models.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.reservations = append(m.reservations, r)
	return nil
}
