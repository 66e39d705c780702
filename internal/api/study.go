package api

import (
	"net/http"

	"github.com/Freeeeeet/admin_bot/internal/model"
	"github.com/Freeeeeet/admin_bot/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func (s *Server) handleListStudySubjects(w http.ResponseWriter, r *http.Request) {
	subjects, err := s.study.ListSubjects(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err, "list study subjects")
		return
	}
	writeJSON(w, http.StatusOK, subjects)
}

func (s *Server) handleGetStudySubject(w http.ResponseWriter, r *http.Request) {
	subject, err := s.study.GetSubject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, r, err, "get study subject")
		return
	}
	writeJSON(w, http.StatusOK, subject)
}

func (s *Server) handleCreateStudySubject(w http.ResponseWriter, r *http.Request) {
	var req service.StudySubjectInput
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	created, err := s.study.CreateSubject(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, r, err, "create study subject")
		return
	}

	w.Header().Set("Location", "/study/subjects/"+created.ID)
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateStudySubject(w http.ResponseWriter, r *http.Request) {
	var req service.StudySubjectInput
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	updated, err := s.study.UpdateSubject(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		s.writeServiceError(w, r, err, "update study subject")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// handleDeleteStudySubject удаляет предмет вместе с занятиями и целями
func (s *Server) handleDeleteStudySubject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.study.DeleteSubject(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err, "delete study subject")
		return
	}

	s.logger.Info("Study subject deleted via API", zap.String("subject_id", id))
	writeJSON(w, http.StatusNoContent, nil)
}

// handleListStudySessions поддерживает ?subjectId= и ?month=YYYY-MM
func (s *Server) handleListStudySessions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sessions, err := s.study.ListSessions(r.Context(), service.SessionFilter{
		SubjectID: q.Get("subjectId"),
		Month:     q.Get("month"),
	})
	if err != nil {
		s.writeServiceError(w, r, err, "list study sessions")
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}

func (s *Server) handleGetStudySession(w http.ResponseWriter, r *http.Request) {
	session, err := s.study.GetSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, r, err, "get study session")
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (s *Server) handleCreateStudySession(w http.ResponseWriter, r *http.Request) {
	var req service.StudySessionInput
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	created, err := s.study.CreateSession(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, r, err, "create study session")
		return
	}

	w.Header().Set("Location", "/study/sessions/"+created.ID)
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateStudySession(w http.ResponseWriter, r *http.Request) {
	var req service.StudySessionInput
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	updated, err := s.study.UpdateSession(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		s.writeServiceError(w, r, err, "update study session")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteStudySession(w http.ResponseWriter, r *http.Request) {
	if err := s.study.DeleteSession(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeServiceError(w, r, err, "delete study session")
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// handleListGoals поддерживает ?month=YYYY-MM
func (s *Server) handleListGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := s.study.ListGoals(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		s.writeServiceError(w, r, err, "list goals")
		return
	}
	writeJSON(w, http.StatusOK, goals)
}

func (s *Server) handleGetGoal(w http.ResponseWriter, r *http.Request) {
	goal, err := s.study.GetGoal(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, r, err, "get goal")
		return
	}
	writeJSON(w, http.StatusOK, goal)
}

func (s *Server) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	var req service.MonthlyGoalInput
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	created, err := s.study.CreateGoal(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, r, err, "create goal")
		return
	}

	w.Header().Set("Location", "/study/goals/"+created.ID)
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	var req service.MonthlyGoalInput
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	updated, err := s.study.UpdateGoal(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		s.writeServiceError(w, r, err, "update goal")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	if err := s.study.DeleteGoal(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeServiceError(w, r, err, "delete goal")
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// handleStudyProgress выполнение целей за ?month=YYYY-MM, по умолчанию текущий месяц
func (s *Server) handleStudyProgress(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		month = s.study.CurrentMonth()
	}
	if _, err := model.ParseMonth(month); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", "month must be YYYY-MM", invalidDetails{Field: "month", Tag: "month"})
		return
	}

	progress, err := s.study.MonthProgress(r.Context(), month)
	if err != nil {
		s.writeServiceError(w, r, err, "study progress")
		return
	}
	writeJSON(w, http.StatusOK, progress)
}
