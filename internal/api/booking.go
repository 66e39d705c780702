package api

import (
	"context"
	"net/http"

	"github.com/Freeeeeet/admin_bot/internal/model"
	"github.com/Freeeeeet/admin_bot/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type reviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type responseRequest struct {
	Response string `json:"response"`
}

// handleListAppointments отдаёт все записи или записи на ?date=YYYY-MM-DD
func (s *Server) handleListAppointments(w http.ResponseWriter, r *http.Request) {
	var (
		appointments []model.Appointment
		err          error
	)
	if date := r.URL.Query().Get("date"); date != "" {
		appointments, err = s.booking.ListAppointmentsByDate(r.Context(), date)
	} else {
		appointments, err = s.booking.ListAppointments(r.Context())
	}
	if err != nil {
		s.writeServiceError(w, r, err, "list appointments")
		return
	}
	writeJSON(w, http.StatusOK, appointments)
}

func (s *Server) handleGetAppointment(w http.ResponseWriter, r *http.Request) {
	appointment, err := s.booking.GetAppointment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, r, err, "get appointment")
		return
	}
	writeJSON(w, http.StatusOK, appointment)
}

func (s *Server) handleCreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req service.AppointmentInput
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	created, err := s.booking.CreateAppointment(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, r, err, "create appointment")
		return
	}

	w.Header().Set("Location", "/appointments/"+created.ID)
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleConfirmAppointment(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, "confirm appointment", s.booking.ConfirmAppointment)
}

func (s *Server) handleCompleteAppointment(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, "complete appointment", s.booking.CompleteAppointment)
}

func (s *Server) handleCancelAppointment(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, "cancel appointment", s.booking.CancelAppointment)
}

func (s *Server) transition(
	w http.ResponseWriter,
	r *http.Request,
	operation string,
	apply func(ctx context.Context, id string) (*model.Appointment, error),
) {
	updated, err := apply(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, r, err, operation)
		return
	}

	s.logger.Info("Appointment status changed via API",
		zap.String("appointment_id", updated.ID),
		zap.String("status", string(updated.Status)))
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleAddReview(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	review, err := s.booking.AddReview(r.Context(), chi.URLParam(r, "id"), req.Rating, req.Comment)
	if err != nil {
		s.writeServiceError(w, r, err, "add review")
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

func (s *Server) handleListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := s.booking.ListReviews(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err, "list reviews")
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (s *Server) handleRespondToReview(w http.ResponseWriter, r *http.Request) {
	var req responseRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	review, err := s.booking.RespondToReview(r.Context(), chi.URLParam(r, "id"), req.Response)
	if err != nil {
		s.writeServiceError(w, r, err, "respond to review")
		return
	}
	writeJSON(w, http.StatusOK, review)
}
