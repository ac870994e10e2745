// Package schedule implements the slot-conflict and availability engine:
// overlap arithmetic on hour intervals, conflict detection against the
// reservation log, and rendering of per-bay day grids.
package schedule

import (
	"fmt"
	"time"

	"fairway/internal/models"
)

// SlotState classifies one hour in a rendered day grid. Priority order is
// past, then booked, then available; an elapsed slot is never offered
// regardless of bookings.
type SlotState string

const (
	StatePast      SlotState = "past"
	StateBooked    SlotState = "booked"
	StateAvailable SlotState = "available"
)

// Slot is one bookable hour in a day grid. Label carries the customer
// name of the covering reservation for booked slots.
type Slot struct {
	Hour  int       `json:"hour"`
	State SlotState `json:"state"`
	Label string    `json:"label,omitempty"`
}

// DayGrid holds the two per-bay views for one date. The grids share the
// hour axis and the past/future classification but are computed
// independently; a simulator booking never appears in the net grid.
type DayGrid struct {
	Date      string `json:"date"`
	Simulator []Slot `json:"simulator"`
	Net       []Slot `json:"net"`
}

// ConflictError reports a candidate overlapping an existing reservation.
// Hour is the start hour of the reservation already holding the slot.
type ConflictError struct {
	Hour int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("slot conflicts with an existing booking starting at %02d:00", e.Hour)
}

// Clock supplies the render-pass timestamp. It is read once per pass so
// a single grid sees a consistent "now".
type Clock interface {
	Now() time.Time
}

// SystemClock reads the local wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Overlaps reports whether the half-open hour intervals
// [aStart, aStart+aDur) and [bStart, bStart+bDur) intersect. Durations
// must be positive; callers reject non-positive durations first.
func Overlaps(aStart, aDur, bStart, bDur int) bool {
	return aStart < bStart+bDur && bStart < aStart+aDur
}

// FindConflict returns the first existing reservation whose interval
// overlaps the candidate on the same date and resource type, or nil if
// the slot is free. Both the slot picker and the submission guard go
// through here, so the two can never disagree about availability.
func FindConflict(candidate *models.Draft, existing []models.Reservation) (*models.Reservation, error) {
	if candidate.DurationHours <= 0 {
		return nil, models.ErrInvalidDuration
	}

	for i := range existing {
		r := &existing[i]
		if r.Date != candidate.Date || r.ResourceType != candidate.ResourceType {
			continue
		}
		if Overlaps(candidate.StartHour, candidate.DurationHours, r.StartHour, r.DurationHours) {
			return r, nil
		}
	}
	return nil, nil
}

// EnumerateSlots renders the bookable hours of one date for one bay.
// Hours on a wholly past date are all past; on a future date none are.
// ISO dates compare lexicographically, so plain string comparison against
// the formatted "today" is sufficient.
func EnumerateSlots(now time.Time, date string, rt models.ResourceType, existing []models.Reservation) []Slot {
	today := now.Format(models.DateLayout)
	slots := make([]Slot, 0, models.SlotsPerDay)

	for hour := models.OpenHour; hour <= models.LastStartHour; hour++ {
		isPast := date < today || (date == today && hour < now.Hour())

		booked := false
		label := ""
		for i := range existing {
			r := &existing[i]
			if r.Date != date || r.ResourceType != rt {
				continue
			}
			// Same predicate as the submission guard: an hour is booked
			// iff its one-hour interval overlaps the reservation.
			if Overlaps(hour, 1, r.StartHour, r.DurationHours) {
				booked = true
				label = r.Customer.Name
				break
			}
		}

		slot := Slot{Hour: hour}
		switch {
		case isPast:
			slot.State = StatePast
		case booked:
			slot.State = StateBooked
			slot.Label = label
		default:
			slot.State = StateAvailable
		}
		slots = append(slots, slot)
	}
	return slots
}

// BuildDayGrid computes both bay views for a date. Pure fan-out of
// EnumerateSlots with no shared state between the two computations.
func BuildDayGrid(now time.Time, date string, reservations []models.Reservation) DayGrid {
	return DayGrid{
		Date:      date,
		Simulator: EnumerateSlots(now, date, models.ResourceSimulator, reservations),
		Net:       EnumerateSlots(now, date, models.ResourceNet, reservations),
	}
}
