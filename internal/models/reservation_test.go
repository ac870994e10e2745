package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() Draft {
	return Draft{
		ResourceType:  ResourceSimulator,
		Date:          "2024-06-01",
		StartHour:     10,
		DurationHours: 2,
		Customer:      Customer{Name: "Alice", Email: "alice@example.com", Phone: "555-0100"},
	}
}

func TestDraftValidate(t *testing.T) {
	t.Run("valid draft passes", func(t *testing.T) {
		d := validDraft()
		assert.NoError(t, d.Validate())
	})

	t.Run("missing fields are reported by name", func(t *testing.T) {
		for _, field := range []string{"name", "email", "phone"} {
			d := validDraft()
			switch field {
			case "name":
				d.Customer.Name = "  "
			case "email":
				d.Customer.Email = ""
			case "phone":
				d.Customer.Phone = ""
			}

			err := d.Validate()
			var missing *MissingFieldError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, field, missing.Field)
		}
	})

	t.Run("missing field wins over other problems", func(t *testing.T) {
		d := validDraft()
		d.Customer.Name = ""
		d.DurationHours = -3

		var missing *MissingFieldError
		assert.ErrorAs(t, d.Validate(), &missing)
	})

	t.Run("unknown resource type", func(t *testing.T) {
		d := validDraft()
		d.ResourceType = "driving-range"
		assert.ErrorIs(t, d.Validate(), ErrUnknownResource)
	})

	t.Run("malformed date", func(t *testing.T) {
		d := validDraft()
		d.Date = "06/01/2024"
		assert.ErrorIs(t, d.Validate(), ErrInvalidDate)
	})

	t.Run("non-positive duration", func(t *testing.T) {
		for _, dur := range []int{0, -1} {
			d := validDraft()
			d.DurationHours = dur
			assert.ErrorIs(t, d.Validate(), ErrInvalidDuration)
		}
	})

	t.Run("start outside business hours", func(t *testing.T) {
		for _, start := range []int{8, 22} {
			d := validDraft()
			d.StartHour = start
			d.DurationHours = 1
			assert.ErrorIs(t, d.Validate(), ErrOutsideHours)
		}
	})

	t.Run("booking may not extend past closing", func(t *testing.T) {
		d := validDraft()
		d.StartHour = 21
		d.DurationHours = 2
		assert.ErrorIs(t, d.Validate(), ErrOutsideHours)

		d.DurationHours = 1
		assert.NoError(t, d.Validate())
	})
}

func TestPrice(t *testing.T) {
	assert.Equal(t, int64(7500), Price(ResourceSimulator, 3))
	assert.Equal(t, int64(2000), Price(ResourceNet, 2))
	assert.Equal(t, int64(2500), RateCents(ResourceSimulator))
	assert.Equal(t, int64(1000), RateCents(ResourceNet))
}

func TestFormatCents(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{7500, "75.00"},
		{1000, "10.00"},
		{2550, "25.50"},
		{5, "0.05"},
		{0, "0.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCents(tt.cents))
	}
}

func TestReservationEndHour(t *testing.T) {
	r := Reservation{StartHour: 10, DurationHours: 2}
	assert.Equal(t, 12, r.EndHour())
}

func TestResourceTypeDisplayName(t *testing.T) {
	assert.Equal(t, "Full Simulator", ResourceSimulator.DisplayName())
	assert.Equal(t, "Net & Mat", ResourceNet.DisplayName())
}

func TestMissingFieldErrorIsNotSentinel(t *testing.T) {
	err := (&Draft{}).Validate()
	assert.False(t, errors.Is(err, ErrInvalidDuration))
}
