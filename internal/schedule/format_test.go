package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatHour(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "12:00 AM"},
		{9, "9:00 AM"},
		{11, "11:00 AM"},
		{12, "12:00 PM"},
		{13, "1:00 PM"},
		{21, "9:00 PM"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatHour(tt.hour))
	}
}

func TestFormatDate(t *testing.T) {
	now := time.Date(2024, time.June, 1, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		date string
		want string
	}{
		{"today", "2024-06-01", "Today"},
		{"tomorrow", "2024-06-02", "Tomorrow"},
		{"later date", "2024-06-08", "Saturday, June 8, 2024"},
		{"unparseable input passes through", "not-a-date", "not-a-date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(now, tt.date))
		})
	}
}
