package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ResourceType identifies one of the two bookable bays. The two bays are
// independent conflict domains: a simulator booking never blocks a net slot.
type ResourceType string

const (
	ResourceSimulator ResourceType = "simulator"
	ResourceNet       ResourceType = "net"
)

// Valid reports whether rt names a known bay.
func (rt ResourceType) Valid() bool {
	return rt == ResourceSimulator || rt == ResourceNet
}

// DisplayName returns the customer-facing bay name.
func (rt ResourceType) DisplayName() string {
	switch rt {
	case ResourceSimulator:
		return "Full Simulator"
	case ResourceNet:
		return "Net & Mat"
	}
	return string(rt)
}

// Business day boundaries in local wall-clock hours. The last bookable
// start is 21:00 and nothing may extend past 22:00.
const (
	OpenHour      = 9
	LastStartHour = 21
	CloseHour     = 22
	SlotsPerDay   = LastStartHour - OpenHour + 1
)

// DateLayout is the wire format for reservation dates.
const DateLayout = "2006-01-02"

// Hourly rates in cents. The same table backs the live price preview and
// the total persisted at submission.
const (
	simulatorRateCents int64 = 2500
	netRateCents       int64 = 1000
)

// RateCents returns the hourly rate for a bay in cents.
func RateCents(rt ResourceType) int64 {
	switch rt {
	case ResourceSimulator:
		return simulatorRateCents
	case ResourceNet:
		return netRateCents
	}
	return 0
}

// Price returns the total in cents for booking a bay for hours.
func Price(rt ResourceType, hours int) int64 {
	return RateCents(rt) * int64(hours)
}

// FormatCents renders a cent amount with two decimal places.
func FormatCents(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

// Customer holds the contact details captured with a booking.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Reservation is an accepted, persisted booking. The record set is
// append-only: reservations are never mutated or deleted once created.
type Reservation struct {
	ID            string       `json:"id"`
	ResourceType  ResourceType `json:"resource_type"`
	Date          string       `json:"date"` // YYYY-MM-DD
	StartHour     int          `json:"start_hour"`
	DurationHours int          `json:"duration_hours"`
	TotalCents    int64        `json:"total_cents"`
	Customer      Customer     `json:"customer"`
	CreatedAt     time.Time    `json:"created_at"`
}

// EndHour returns the exclusive end of the [StartHour, EndHour) interval.
func (r *Reservation) EndHour() int {
	return r.StartHour + r.DurationHours
}

// Draft is a candidate reservation undergoing validation. The resource
// type travels with the draft; there is no ambient selection state.
type Draft struct {
	ResourceType  ResourceType `json:"resource_type"`
	Date          string       `json:"date"`
	StartHour     int          `json:"start_hour"`
	DurationHours int          `json:"duration_hours"`
	Customer      Customer     `json:"customer"`
}

var (
	ErrInvalidDuration = errors.New("duration must be a positive number of hours")
	ErrOutsideHours    = errors.New("booking falls outside business hours")
	ErrInvalidDate     = errors.New("invalid date; expected YYYY-MM-DD")
	ErrUnknownResource = errors.New("unknown resource type")
)

// MissingFieldError reports an empty required customer field.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("required field %q is empty", e.Field)
}

// Validate checks the draft before any conflict checking is attempted.
// Field presence is checked first (cheapest), then duration, then the
// business-hours window.
func (d *Draft) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"name", d.Customer.Name},
		{"email", d.Customer.Email},
		{"phone", d.Customer.Phone},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return &MissingFieldError{Field: f.name}
		}
	}

	if !d.ResourceType.Valid() {
		return ErrUnknownResource
	}
	if _, err := time.Parse(DateLayout, d.Date); err != nil {
		return ErrInvalidDate
	}
	if d.DurationHours <= 0 {
		return ErrInvalidDuration
	}
	if d.StartHour < OpenHour || d.StartHour > LastStartHour {
		return ErrOutsideHours
	}
	if d.StartHour+d.DurationHours > CloseHour {
		return ErrOutsideHours
	}
	return nil
}
