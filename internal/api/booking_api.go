package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"fairway/internal/metrics"
	"fairway/internal/models"
	"fairway/internal/schedule"
)

// BookingRequest is the request body for POST /api/bookings.
type BookingRequest struct {
	ResourceType  string `json:"resource_type"` // "simulator" or "net"
	Date          string `json:"date"`          // Format: YYYY-MM-DD
	StartHour     int    `json:"start_hour"`
	DurationHours int    `json:"duration_hours"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
}

// BookingResponse reports the outcome of a booking attempt.
type BookingResponse struct {
	Success   bool   `json:"success"`
	BookingID string `json:"booking_id,omitempty"`
	Total     string `json:"total,omitempty"`
	Error     string `json:"error,omitempty"`
}

// handleBookings lists reservations or accepts a booking draft.
// GET /api/bookings | POST /api/bookings
func (s *Server) handleBookings(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("bookings")

	switch r.Method {
	case http.MethodGet:
		s.listBookings(w, r)
	case http.MethodPost:
		s.createBooking(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) listBookings(w http.ResponseWriter, r *http.Request) {
	reservations, err := s.svc.Reservations(r.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("list reservations")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"reservations": reservations})
}

func (s *Server) createBooking(w http.ResponseWriter, r *http.Request) {
	var req BookingRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, BookingResponse{Error: "invalid JSON body"})
		return
	}

	draft := models.Draft{
		ResourceType:  models.ResourceType(req.ResourceType),
		Date:          req.Date,
		StartHour:     req.StartHour,
		DurationHours: req.DurationHours,
		Customer: models.Customer{
			Name:  req.Name,
			Email: req.Email,
			Phone: req.Phone,
		},
	}

	res, err := s.svc.Submit(r.Context(), draft)
	if err != nil {
		var conflict *schedule.ConflictError
		var missing *models.MissingFieldError
		switch {
		case errors.As(err, &conflict):
			writeJSON(w, http.StatusConflict, BookingResponse{Error: conflict.Error()})
		case errors.As(err, &missing),
			errors.Is(err, models.ErrInvalidDuration),
			errors.Is(err, models.ErrOutsideHours),
			errors.Is(err, models.ErrInvalidDate),
			errors.Is(err, models.ErrUnknownResource):
			writeJSON(w, http.StatusBadRequest, BookingResponse{Error: err.Error()})
		default:
			s.logger.Error().Err(err).Msg("submit booking")
			writeJSON(w, http.StatusInternalServerError, BookingResponse{Error: "internal error"})
		}
		return
	}

	writeJSON(w, http.StatusCreated, BookingResponse{
		Success:   true,
		BookingID: res.ID,
		Total:     models.FormatCents(res.TotalCents),
	})
}
