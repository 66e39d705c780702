package api

import (
	"net/http"

	"github.com/Freeeeeet/admin_bot/internal/model"
	"github.com/Freeeeeet/admin_bot/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func (s *Server) handleListInstructors(w http.ResponseWriter, r *http.Request) {
	instructors, err := s.courses.ListInstructors(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err, "list instructors")
		return
	}
	writeJSON(w, http.StatusOK, instructors)
}

func (s *Server) handleGetInstructor(w http.ResponseWriter, r *http.Request) {
	instructor, err := s.courses.GetInstructor(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, r, err, "get instructor")
		return
	}
	writeJSON(w, http.StatusOK, instructor)
}

func (s *Server) handleCreateInstructor(w http.ResponseWriter, r *http.Request) {
	var req service.InstructorInput
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	created, err := s.courses.CreateInstructor(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, r, err, "create instructor")
		return
	}

	w.Header().Set("Location", "/instructors/"+created.ID)
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateInstructor(w http.ResponseWriter, r *http.Request) {
	var req service.InstructorInput
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	updated, err := s.courses.UpdateInstructor(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		s.writeServiceError(w, r, err, "update instructor")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteInstructor(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.courses.DeleteInstructor(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err, "delete instructor")
		return
	}

	s.logger.Info("Instructor deleted via API", zap.String("instructor_id", id))
	writeJSON(w, http.StatusNoContent, nil)
}

// handleListCourses поддерживает ?search=, ?instructorId= и ?status=
func (s *Server) handleListCourses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	courses, err := s.courses.ListCourses(r.Context(), service.CourseFilter{
		Search:       q.Get("search"),
		InstructorID: q.Get("instructorId"),
		Status:       model.CourseStatus(q.Get("status")),
	})
	if err != nil {
		s.writeServiceError(w, r, err, "list courses")
		return
	}
	writeJSON(w, http.StatusOK, courses)
}

func (s *Server) handleGetCourse(w http.ResponseWriter, r *http.Request) {
	course, err := s.courses.GetCourse(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, r, err, "get course")
		return
	}
	writeJSON(w, http.StatusOK, course)
}

func (s *Server) handleCreateCourse(w http.ResponseWriter, r *http.Request) {
	var req service.CourseInput
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	created, err := s.courses.CreateCourse(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, r, err, "create course")
		return
	}

	w.Header().Set("Location", "/courses/"+created.ID)
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateCourse(w http.ResponseWriter, r *http.Request) {
	var req service.CourseInput
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	updated, err := s.courses.UpdateCourse(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		s.writeServiceError(w, r, err, "update course")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteCourse(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.courses.DeleteCourse(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err, "delete course")
		return
	}

	s.logger.Info("Course deleted via API", zap.String("course_id", id))
	writeJSON(w, http.StatusNoContent, nil)
}
