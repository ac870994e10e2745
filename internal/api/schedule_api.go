package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"fairway/internal/metrics"
	"fairway/internal/models"
	"fairway/internal/schedule"
)

// ScheduleResponse is the dual-grid response for GET /api/schedule.
// The two grids share the hour axis but are independent views.
type ScheduleResponse struct {
	Date      string            `json:"date"`
	DateLabel string            `json:"date_label"`
	Rates     map[string]string `json:"hourly_rates"`
	Simulator []schedule.Slot   `json:"simulator"`
	Net       []schedule.Slot   `json:"net"`
}

// BayScheduleResponse is the single-bay response when ?type= is given.
type BayScheduleResponse struct {
	Date      string          `json:"date"`
	DateLabel string          `json:"date_label"`
	Resource  string          `json:"resource"`
	Slots     []schedule.Slot `json:"slots"`
}

// handleSchedule returns the day grid for a date.
// GET /api/schedule?date=YYYY-MM-DD[&type=simulator|net]
func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("schedule")

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed; use GET")
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format(models.DateLayout)
	}

	grid, err := s.svc.DaySchedule(r.Context(), date)
	if err != nil {
		if errors.Is(err, models.ErrInvalidDate) {
			writeError(w, http.StatusBadRequest, "invalid date; expected YYYY-MM-DD")
			return
		}
		s.logger.Error().Err(err).Str("date", date).Msg("render schedule")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	label := schedule.FormatDate(time.Now(), grid.Date)

	switch models.ResourceType(r.URL.Query().Get("type")) {
	case "":
		writeJSON(w, http.StatusOK, ScheduleResponse{
			Date:      grid.Date,
			DateLabel: label,
			Rates: map[string]string{
				string(models.ResourceSimulator): models.FormatCents(models.RateCents(models.ResourceSimulator)),
				string(models.ResourceNet):       models.FormatCents(models.RateCents(models.ResourceNet)),
			},
			Simulator: grid.Simulator,
			Net:       grid.Net,
		})
	case models.ResourceSimulator:
		writeJSON(w, http.StatusOK, BayScheduleResponse{
			Date: grid.Date, DateLabel: label,
			Resource: string(models.ResourceSimulator), Slots: grid.Simulator,
		})
	case models.ResourceNet:
		writeJSON(w, http.StatusOK, BayScheduleResponse{
			Date: grid.Date, DateLabel: label,
			Resource: string(models.ResourceNet), Slots: grid.Net,
		})
	default:
		writeError(w, http.StatusBadRequest, "unknown type; expected simulator or net")
	}
}

// handlePrice returns the live price preview.
// GET /api/price?type=simulator&hours=2
func (s *Server) handlePrice(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("price")

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed; use GET")
		return
	}

	hours, err := strconv.Atoi(r.URL.Query().Get("hours"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid hours; expected an integer")
		return
	}

	total, err := s.svc.Quote(models.ResourceType(r.URL.Query().Get("type")), hours)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"total": models.FormatCents(total)})
}
