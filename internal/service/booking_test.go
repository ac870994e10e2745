package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fairway/internal/events"
	"fairway/internal/models"
	"fairway/internal/schedule"
	"fairway/internal/store"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) LoadAll(ctx context.Context) ([]models.Reservation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Reservation), args.Error(1)
}

func (m *mockStore) Append(ctx context.Context, r models.Reservation) error {
	return m.Called(ctx, r).Error(0)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishJSON(eventType string, payload any) error {
	return m.Called(eventType, payload).Error(0)
}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

// stubCache is a map-backed GridCache for exercising the cache path.
type stubCache struct {
	grids map[string]*schedule.DayGrid
}

func newStubCache() *stubCache {
	return &stubCache{grids: make(map[string]*schedule.DayGrid)}
}

func (c *stubCache) GetGrid(ctx context.Context, date string) (*schedule.DayGrid, bool) {
	g, ok := c.grids[date]
	return g, ok
}

func (c *stubCache) SetGrid(ctx context.Context, grid *schedule.DayGrid) {
	c.grids[grid.Date] = grid
}

func (c *stubCache) Invalidate(ctx context.Context, date string) {
	delete(c.grids, date)
}

func testLogger() *zerolog.Logger {
	logger := zerolog.New(io.Discard)
	return &logger
}

func draft(rt models.ResourceType, date string, start, hours int, name string) models.Draft {
	return models.Draft{
		ResourceType:  rt,
		Date:          date,
		StartHour:     start,
		DurationHours: hours,
		Customer:      models.Customer{Name: name, Email: name + "@example.com", Phone: "555-0100"},
	}
}

func TestSubmitValidation(t *testing.T) {
	ctx := context.Background()
	clock := fixedClock{time.Date(2024, time.June, 1, 10, 30, 0, 0, time.UTC)}

	t.Run("invalid duration never touches the store", func(t *testing.T) {
		st := new(mockStore)
		svc := NewBookingService(st, clock, nil, nil, testLogger())

		d := draft(models.ResourceSimulator, "2024-06-02", 10, 0, "Alice")
		_, err := svc.Submit(ctx, d)
		assert.ErrorIs(t, err, models.ErrInvalidDuration)
		st.AssertExpectations(t)
	})

	t.Run("missing field rejected before anything else", func(t *testing.T) {
		st := new(mockStore)
		svc := NewBookingService(st, clock, nil, nil, testLogger())

		d := draft(models.ResourceSimulator, "2024-06-02", 10, 1, "Alice")
		d.Customer.Email = ""
		_, err := svc.Submit(ctx, d)

		var missing *models.MissingFieldError
		assert.ErrorAs(t, err, &missing)
		st.AssertExpectations(t)
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		st := new(mockStore)
		st.On("LoadAll", ctx).Return(nil, store.ErrStorageUnavailable).Once()
		svc := NewBookingService(st, clock, nil, nil, testLogger())

		_, err := svc.Submit(ctx, draft(models.ResourceSimulator, "2024-06-02", 10, 1, "Alice"))
		assert.ErrorIs(t, err, store.ErrStorageUnavailable)
		st.AssertExpectations(t)
	})
}

func TestSubmitPublishesEvent(t *testing.T) {
	ctx := context.Background()
	clock := fixedClock{time.Date(2024, time.June, 1, 10, 30, 0, 0, time.UTC)}

	bus := new(mockPublisher)
	bus.On("PublishJSON", events.BookingCreated, mock.Anything).Return(nil).Once()

	svc := NewBookingService(store.NewMemory(), clock, bus, nil, testLogger())
	_, err := svc.Submit(ctx, draft(models.ResourceSimulator, "2024-06-02", 10, 1, "Alice"))
	require.NoError(t, err)
	bus.AssertExpectations(t)
}

func TestBookingScenario(t *testing.T) {
	ctx := context.Background()
	clock := fixedClock{time.Date(2024, time.June, 1, 10, 30, 0, 0, time.UTC)}
	const day = "2030-06-01"

	st := store.NewMemory()
	svc := NewBookingService(st, clock, nil, nil, testLogger())

	// Empty store: first simulator booking at 9 is accepted.
	first, err := svc.Submit(ctx, draft(models.ResourceSimulator, day, 9, 1, "Xavier"))
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, models.Price(models.ResourceSimulator, 1), first.TotalCents)

	stored, err := st.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 1)

	// Same slot, same bay: rejected with the conflicting hour.
	_, err = svc.Submit(ctx, draft(models.ResourceSimulator, day, 9, 1, "Yvonne"))
	var conflict *schedule.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, 9, conflict.Hour)

	stored, err = st.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 1, "rejected booking must not be persisted")

	// Same slot on the other bay: independent conflict domain.
	second, err := svc.Submit(ctx, draft(models.ResourceNet, day, 9, 1, "Yvonne"))
	require.NoError(t, err)
	assert.Equal(t, models.Price(models.ResourceNet, 1), second.TotalCents)

	// Adjacent interval after an existing [10,12) booking is accepted.
	_, err = svc.Submit(ctx, draft(models.ResourceSimulator, day, 10, 2, "Alice"))
	require.NoError(t, err)
	_, err = svc.Submit(ctx, draft(models.ResourceSimulator, day, 11, 1, "Bob"))
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, 10, conflict.Hour)
	_, err = svc.Submit(ctx, draft(models.ResourceSimulator, day, 12, 1, "Bob"))
	require.NoError(t, err)

	// Rendered grids reflect the bookings per bay.
	grid, err := svc.DaySchedule(ctx, day)
	require.NoError(t, err)
	require.Len(t, grid.Simulator, models.SlotsPerDay)
	require.Len(t, grid.Net, models.SlotsPerDay)

	assert.Equal(t, schedule.StateBooked, grid.Simulator[0].State)
	assert.Equal(t, "Xavier", grid.Simulator[0].Label)
	assert.Equal(t, schedule.StateBooked, grid.Net[0].State)
	assert.Equal(t, "Yvonne", grid.Net[0].Label)

	for _, s := range grid.Net[1:] {
		assert.Equal(t, schedule.StateAvailable, s.State)
	}
}

func TestDaySchedule(t *testing.T) {
	ctx := context.Background()
	clock := fixedClock{time.Date(2024, time.June, 1, 10, 30, 0, 0, time.UTC)}

	t.Run("invalid date", func(t *testing.T) {
		svc := NewBookingService(store.NewMemory(), clock, nil, nil, testLogger())
		_, err := svc.DaySchedule(ctx, "June 1st")
		assert.ErrorIs(t, err, models.ErrInvalidDate)
	})

	t.Run("cache hit and invalidation", func(t *testing.T) {
		cache := newStubCache()
		svc := NewBookingService(store.NewMemory(), clock, nil, cache, testLogger())

		first, err := svc.DaySchedule(ctx, "2024-06-02")
		require.NoError(t, err)
		assert.Contains(t, cache.grids, "2024-06-02")

		cached, err := svc.DaySchedule(ctx, "2024-06-02")
		require.NoError(t, err)
		assert.Same(t, cache.grids["2024-06-02"], cached)
		assert.Equal(t, first.Date, cached.Date)

		// A booking on the date drops the cached grid.
		_, err = svc.Submit(ctx, draft(models.ResourceSimulator, "2024-06-02", 9, 1, "Alice"))
		require.NoError(t, err)
		assert.NotContains(t, cache.grids, "2024-06-02")

		rebuilt, err := svc.DaySchedule(ctx, "2024-06-02")
		require.NoError(t, err)
		assert.Equal(t, schedule.StateBooked, rebuilt.Simulator[0].State)
	})
}

func TestQuote(t *testing.T) {
	svc := NewBookingService(store.NewMemory(), fixedClock{time.Now()}, nil, nil, testLogger())

	total, err := svc.Quote(models.ResourceSimulator, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(7500), total)

	total, err = svc.Quote(models.ResourceNet, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), total)

	_, err = svc.Quote("driving-range", 1)
	assert.ErrorIs(t, err, models.ErrUnknownResource)

	_, err = svc.Quote(models.ResourceSimulator, 0)
	assert.ErrorIs(t, err, models.ErrInvalidDuration)
}

func TestRejectReason(t *testing.T) {
	assert.Equal(t, "missing_field", rejectReason(&models.MissingFieldError{Field: "name"}))
	assert.Equal(t, "invalid_duration", rejectReason(models.ErrInvalidDuration))
	assert.Equal(t, "outside_hours", rejectReason(models.ErrOutsideHours))
	assert.Equal(t, "invalid", rejectReason(errors.New("other")))
}
