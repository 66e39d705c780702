package api

import (
	"net/http"

	"github.com/Freeeeeet/admin_bot/internal/model"
	"github.com/Freeeeeet/admin_bot/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type generateExamRequest struct {
	Name      string                    `json:"name"`
	SubjectID string                    `json:"subjectId"`
	Structure []model.ExamStructureItem `json:"structure"`
}

type examResponse struct {
	model.Exam
	// Вопросы в порядке выдачи. Удалённые из банка пропускаются.
	QuestionDetails []model.Question `json:"questionDetails"`
}

func (s *Server) handleListSubjects(w http.ResponseWriter, r *http.Request) {
	subjects, err := s.bank.ListSubjects(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err, "list subjects")
		return
	}
	writeJSON(w, http.StatusOK, subjects)
}

func (s *Server) handleGetSubject(w http.ResponseWriter, r *http.Request) {
	subject, err := s.bank.GetSubject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, r, err, "get subject")
		return
	}
	writeJSON(w, http.StatusOK, subject)
}

func (s *Server) handleCreateSubject(w http.ResponseWriter, r *http.Request) {
	var req service.SubjectInput
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	created, err := s.bank.CreateSubject(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, r, err, "create subject")
		return
	}

	w.Header().Set("Location", "/subjects/"+created.ID)
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateSubject(w http.ResponseWriter, r *http.Request) {
	var req service.SubjectInput
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	updated, err := s.bank.UpdateSubject(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		s.writeServiceError(w, r, err, "update subject")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteSubject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.bank.DeleteSubject(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err, "delete subject")
		return
	}

	s.logger.Info("Subject deleted via API", zap.String("subject_id", id))
	writeJSON(w, http.StatusNoContent, nil)
}

// handleListQuestions отдаёт весь банк или вопросы предмета ?subjectId=
func (s *Server) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	var (
		questions []model.Question
		err       error
	)
	if subjectID := r.URL.Query().Get("subjectId"); subjectID != "" {
		questions, err = s.bank.ListQuestionsBySubject(r.Context(), subjectID)
	} else {
		questions, err = s.bank.ListQuestions(r.Context())
	}
	if err != nil {
		s.writeServiceError(w, r, err, "list questions")
		return
	}
	writeJSON(w, http.StatusOK, questions)
}

func (s *Server) handleGetQuestion(w http.ResponseWriter, r *http.Request) {
	question, err := s.bank.GetQuestion(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, r, err, "get question")
		return
	}
	writeJSON(w, http.StatusOK, question)
}

func (s *Server) handleCreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req service.QuestionInput
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	created, err := s.bank.CreateQuestion(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, r, err, "create question")
		return
	}

	w.Header().Set("Location", "/questions/"+created.ID)
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateQuestion(w http.ResponseWriter, r *http.Request) {
	var req service.QuestionInput
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	updated, err := s.bank.UpdateQuestion(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		s.writeServiceError(w, r, err, "update question")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.bank.DeleteQuestion(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err, "delete question")
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleListExams(w http.ResponseWriter, r *http.Request) {
	exams, err := s.bank.ListExams(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err, "list exams")
		return
	}
	writeJSON(w, http.StatusOK, exams)
}

func (s *Server) handleGenerateExam(w http.ResponseWriter, r *http.Request) {
	var req generateExamRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	exam, err := s.bank.GenerateExam(r.Context(), req.Name, req.SubjectID, req.Structure)
	if err != nil {
		s.writeServiceError(w, r, err, "generate exam")
		return
	}

	w.Header().Set("Location", "/exams/"+exam.ID)
	writeJSON(w, http.StatusCreated, exam)
}

func (s *Server) handleGetExam(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	exam, err := s.bank.GetExam(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err, "get exam")
		return
	}
	questions, err := s.bank.ExamQuestions(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err, "get exam questions")
		return
	}

	writeJSON(w, http.StatusOK, examResponse{Exam: *exam, QuestionDetails: questions})
}

func (s *Server) handleDeleteExam(w http.ResponseWriter, r *http.Request) {
	if err := s.bank.DeleteExam(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeServiceError(w, r, err, "delete exam")
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
