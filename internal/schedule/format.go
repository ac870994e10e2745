package schedule

import (
	"fmt"
	"time"

	"fairway/internal/models"
)

// FormatHour renders an hour on the 12-hour clock, e.g. "9:00 AM".
func FormatHour(hour int) string {
	switch {
	case hour == 0:
		return "12:00 AM"
	case hour < 12:
		return fmt.Sprintf("%d:00 AM", hour)
	case hour == 12:
		return "12:00 PM"
	default:
		return fmt.Sprintf("%d:00 PM", hour-12)
	}
}

// FormatDate renders a friendly date label relative to now: "Today",
// "Tomorrow", or a long form like "Saturday, June 1, 2024". Unparseable
// input is returned as-is.
func FormatDate(now time.Time, date string) string {
	d, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return date
	}

	switch date {
	case now.Format(models.DateLayout):
		return "Today"
	case now.AddDate(0, 0, 1).Format(models.DateLayout):
		return "Tomorrow"
	}
	return d.Format("Monday, January 2, 2006")
}
