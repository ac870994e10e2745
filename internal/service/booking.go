// Package service wires the availability engine to the reservation store
// and the side-effect consumers (events, metrics, cache).
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"fairway/internal/events"
	"fairway/internal/metrics"
	"fairway/internal/models"
	"fairway/internal/schedule"
	"fairway/internal/store"
)

// EventPublisher publishes domain events.
type EventPublisher interface {
	PublishJSON(eventType string, payload any) error
}

// GridCache caches rendered day grids keyed by date.
type GridCache interface {
	GetGrid(ctx context.Context, date string) (*schedule.DayGrid, bool)
	SetGrid(ctx context.Context, grid *schedule.DayGrid)
	Invalidate(ctx context.Context, date string)
}

// BookingService validates, prices and persists booking drafts and
// renders day schedules. bus and cache may be nil.
type BookingService struct {
	store  store.Store
	clock  schedule.Clock
	bus    EventPublisher
	cache  GridCache
	logger *zerolog.Logger

	// Guards the check-then-append sequence so two callers cannot both
	// pass the conflict check for the same slot before either writes.
	mu sync.Mutex
}

// NewBookingService creates a booking service.
func NewBookingService(st store.Store, clock schedule.Clock, bus EventPublisher, cache GridCache, logger *zerolog.Logger) *BookingService {
	return &BookingService{
		store:  st,
		clock:  clock,
		bus:    bus,
		cache:  cache,
		logger: logger,
	}
}

// Submit runs the full booking pipeline: field validation, conflict
// check, pricing, persistence. A rejected draft leaves the store
// untouched. On success the returned reservation carries its assigned
// ID and computed total.
func (s *BookingService) Submit(ctx context.Context, draft models.Draft) (*models.Reservation, error) {
	if err := draft.Validate(); err != nil {
		metrics.IncBookingRejected(rejectReason(err))
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load reservations: %w", err)
	}

	conflict, err := schedule.FindConflict(&draft, existing)
	if err != nil {
		metrics.IncBookingRejected(rejectReason(err))
		return nil, err
	}
	if conflict != nil {
		metrics.IncBookingRejected("conflict")
		return nil, &schedule.ConflictError{Hour: conflict.StartHour}
	}

	res := models.Reservation{
		ID:            uuid.NewString(),
		ResourceType:  draft.ResourceType,
		Date:          draft.Date,
		StartHour:     draft.StartHour,
		DurationHours: draft.DurationHours,
		TotalCents:    models.Price(draft.ResourceType, draft.DurationHours),
		Customer:      draft.Customer,
		CreatedAt:     s.clock.Now(),
	}

	if err := s.store.Append(ctx, res); err != nil {
		return nil, fmt.Errorf("append reservation: %w", err)
	}

	metrics.IncBookingAccepted(string(res.ResourceType))
	if s.cache != nil {
		s.cache.Invalidate(ctx, res.Date)
	}
	if s.bus != nil {
		if err := s.bus.PublishJSON(events.BookingCreated, res); err != nil {
			s.logger.Error().Err(err).Str("booking_id", res.ID).Msg("publish booking event")
		}
	}

	s.logger.Info().
		Str("booking_id", res.ID).
		Str("resource", string(res.ResourceType)).
		Str("date", res.Date).
		Int("start_hour", res.StartHour).
		Int("duration_hours", res.DurationHours).
		Msg("booking accepted")

	return &res, nil
}

// DaySchedule renders both bay grids for a date. The clock is sampled
// once so the whole render pass sees one "now".
func (s *BookingService) DaySchedule(ctx context.Context, date string) (*schedule.DayGrid, error) {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, models.ErrInvalidDate
	}

	if s.cache != nil {
		if grid, ok := s.cache.GetGrid(ctx, date); ok {
			metrics.IncCacheLookup("hit")
			return grid, nil
		}
		metrics.IncCacheLookup("miss")
	}

	reservations, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load reservations: %w", err)
	}

	grid := schedule.BuildDayGrid(s.clock.Now(), date, reservations)
	if s.cache != nil {
		s.cache.SetGrid(ctx, &grid)
	}
	return &grid, nil
}

// Reservations returns the full reservation log, oldest first.
func (s *BookingService) Reservations(ctx context.Context) ([]models.Reservation, error) {
	return s.store.LoadAll(ctx)
}

// Quote returns the price preview in cents for a prospective booking.
// The same rate table backs the persisted total at submission.
func (s *BookingService) Quote(rt models.ResourceType, hours int) (int64, error) {
	if !rt.Valid() {
		return 0, models.ErrUnknownResource
	}
	if hours <= 0 {
		return 0, models.ErrInvalidDuration
	}
	return models.Price(rt, hours), nil
}

func rejectReason(err error) string {
	var missing *models.MissingFieldError
	switch {
	case errors.As(err, &missing):
		return "missing_field"
	case errors.Is(err, models.ErrInvalidDuration):
		return "invalid_duration"
	case errors.Is(err, models.ErrOutsideHours):
		return "outside_hours"
	case errors.Is(err, models.ErrInvalidDate):
		return "invalid_date"
	case errors.Is(err, models.ErrUnknownResource):
		return "unknown_resource"
	}
	return "invalid"
}
