package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Freeeeeet/admin_bot/internal/availability"
	"github.com/Freeeeeet/admin_bot/internal/examgen"
	"github.com/Freeeeeet/admin_bot/internal/model"
	"github.com/Freeeeeet/admin_bot/internal/service"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

type apiError struct {
	Error   string      `json:"error"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if v == nil {
		return
	}

	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string, details interface{}) {
	writeJSON(w, status, apiError{
		Error:   code,
		Message: message,
		Details: details,
	})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid json body", map[string]any{"error": err.Error()})
		return false
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid json body", map[string]any{"error": "extra data after json"})
		return false
	}

	return true
}

type rejectionDetails struct {
	StaffID       string `json:"staffId"`
	ServiceID     string `json:"serviceId"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	WorkingFrom   string `json:"workingFrom,omitempty"`
	WorkingTo     string `json:"workingTo,omitempty"`
	Limit         int    `json:"limit,omitempty"`
	ConflictID    string `json:"conflictId,omitempty"`
	ConflictStart string `json:"conflictStart,omitempty"`
	ConflictEnd   string `json:"conflictEnd,omitempty"`
}

type insufficientDetails struct {
	Difficulty     model.Difficulty `json:"difficulty"`
	KnowledgeBlock string           `json:"knowledgeBlock"`
	Requested      int              `json:"requested"`
	Available      int              `json:"available"`
}

type invalidDetails struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Param string `json:"param,omitempty"`
}

// errorStatus сопоставляет ошибку сервисов с HTTP статусом и кодом
func errorStatus(err error) (int, string, interface{}) {
	var (
		rejection    *availability.Rejection
		insufficient *examgen.InsufficientQuestionsError
		invalid      *service.ValidationError
	)

	switch {
	case errors.As(err, &rejection):
		return http.StatusConflict, rejection.Code(), rejectionDetails{
			StaffID:       rejection.StaffID,
			ServiceID:     rejection.ServiceID,
			Date:          rejection.Date,
			Time:          rejection.Time,
			WorkingFrom:   rejection.WorkingFrom,
			WorkingTo:     rejection.WorkingTo,
			Limit:         rejection.Limit,
			ConflictID:    rejection.ConflictID,
			ConflictStart: rejection.ConflictStart,
			ConflictEnd:   rejection.ConflictEnd,
		}
	case errors.As(err, &insufficient):
		return http.StatusUnprocessableEntity, "insufficient_questions", insufficientDetails{
			Difficulty:     insufficient.Difficulty,
			KnowledgeBlock: insufficient.KnowledgeBlock,
			Requested:      insufficient.Requested,
			Available:      insufficient.Available,
		}
	case errors.As(err, &invalid):
		return http.StatusBadRequest, "invalid_input", invalidDetails{
			Field: invalid.Field,
			Tag:   invalid.Tag,
			Param: invalid.Param,
		}
	case errors.Is(err, examgen.ErrInvalidCount),
		errors.Is(err, service.ErrDuplicateWorkingDay),
		errors.Is(err, service.ErrInvalidWorkingHours),
		errors.Is(err, service.ErrUnknownKnowledgeBlock):
		return http.StatusBadRequest, "invalid_input", nil
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "not_found", nil
	case errors.Is(err, model.ErrInvalidTransition):
		return http.StatusConflict, "invalid_transition", nil
	case errors.Is(err, service.ErrAppointmentNotCompleted):
		return http.StatusConflict, "appointment_not_completed", nil
	case errors.Is(err, service.ErrReviewExists):
		return http.StatusConflict, "review_exists", nil
	case errors.Is(err, service.ErrSubjectCodeTaken):
		return http.StatusConflict, "subject_code_taken", nil
	case errors.Is(err, service.ErrSubjectInUse):
		return http.StatusConflict, "subject_in_use", nil
	case errors.Is(err, service.ErrCourseNameTaken):
		return http.StatusConflict, "course_name_taken", nil
	case errors.Is(err, service.ErrCourseHasStudents):
		return http.StatusConflict, "course_has_students", nil
	case errors.Is(err, service.ErrInstructorInUse):
		return http.StatusConflict, "instructor_in_use", nil
	case errors.Is(err, service.ErrGoalExists):
		return http.StatusConflict, "goal_exists", nil
	default:
		return http.StatusInternalServerError, "internal_error", nil
	}
}

// writeServiceError отвечает ошибкой сервиса. Внутренние ошибки логируются, текст наружу не уходит.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	status, code, details := errorStatus(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("Request failed",
			zap.String("operation", operation),
			zap.String("path", r.URL.Path),
			zap.Error(err))
		writeError(w, status, code, "failed to "+operation, nil)
		return
	}

	writeError(w, status, code, err.Error(), details)
}
