// Package api exposes the booking scheduler over HTTP JSON.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"fairway/internal/service"
)

// Server holds the API handlers.
type Server struct {
	svc    *service.BookingService
	logger *zerolog.Logger
}

// NewServer creates an API server over the booking service.
func NewServer(svc *service.BookingService, logger *zerolog.Logger) *Server {
	return &Server{svc: svc, logger: logger}
}

// Routes returns the handler with all API routes attached.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/schedule", s.handleSchedule)
	mux.HandleFunc("/api/bookings", s.handleBookings)
	mux.HandleFunc("/api/price", s.handlePrice)
	mux.HandleFunc("/healthz", s.handleHealth)
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
