// Package api админский JSON API поверх тех же сервисов, что и бот.
package api

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/Freeeeeet/admin_bot/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Server struct {
	catalog  *service.CatalogService
	booking  *service.BookingService
	bank     *service.QuestionBankService
	courses  *service.CourseService
	study    *service.StudyService
	logger   *zap.Logger
	apiToken string
}

// NewServer создаёт API. Непустой apiToken требуется в заголовке Authorization: Bearer.
func NewServer(
	catalog *service.CatalogService,
	booking *service.BookingService,
	bank *service.QuestionBankService,
	courses *service.CourseService,
	study *service.StudyService,
	apiToken string,
	logger *zap.Logger,
) *Server {
	return &Server{
		catalog:  catalog,
		booking:  booking,
		bank:     bank,
		courses:  courses,
		study:    study,
		logger:   logger,
		apiToken: apiToken,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		r.Use(s.authMiddleware)

		r.Route("/services", func(r chi.Router) {
			r.Get("/", s.handleListServices)
			r.Post("/", s.handleCreateService)
			r.Get("/{id}", s.handleGetService)
			r.Put("/{id}", s.handleUpdateService)
			r.Delete("/{id}", s.handleDeleteService)
		})

		r.Route("/staff", func(r chi.Router) {
			r.Get("/", s.handleListStaff)
			r.Post("/", s.handleCreateStaff)
			r.Get("/{id}", s.handleGetStaff)
			r.Put("/{id}", s.handleUpdateStaff)
			r.Delete("/{id}", s.handleDeleteStaff)
		})

		r.Route("/appointments", func(r chi.Router) {
			r.Get("/", s.handleListAppointments)
			r.Post("/", s.handleCreateAppointment)
			r.Get("/{id}", s.handleGetAppointment)
			r.Post("/{id}/confirm", s.handleConfirmAppointment)
			r.Post("/{id}/complete", s.handleCompleteAppointment)
			r.Post("/{id}/cancel", s.handleCancelAppointment)
			r.Post("/{id}/review", s.handleAddReview)
		})

		r.Get("/reviews", s.handleListReviews)
		r.Put("/reviews/{id}/response", s.handleRespondToReview)

		r.Route("/subjects", func(r chi.Router) {
			r.Get("/", s.handleListSubjects)
			r.Post("/", s.handleCreateSubject)
			r.Get("/{id}", s.handleGetSubject)
			r.Put("/{id}", s.handleUpdateSubject)
			r.Delete("/{id}", s.handleDeleteSubject)
		})

		r.Route("/questions", func(r chi.Router) {
			r.Get("/", s.handleListQuestions)
			r.Post("/", s.handleCreateQuestion)
			r.Get("/{id}", s.handleGetQuestion)
			r.Put("/{id}", s.handleUpdateQuestion)
			r.Delete("/{id}", s.handleDeleteQuestion)
		})

		r.Route("/exams", func(r chi.Router) {
			r.Get("/", s.handleListExams)
			r.Post("/generate", s.handleGenerateExam)
			r.Get("/{id}", s.handleGetExam)
			r.Delete("/{id}", s.handleDeleteExam)
		})

		r.Route("/instructors", func(r chi.Router) {
			r.Get("/", s.handleListInstructors)
			r.Post("/", s.handleCreateInstructor)
			r.Get("/{id}", s.handleGetInstructor)
			r.Put("/{id}", s.handleUpdateInstructor)
			r.Delete("/{id}", s.handleDeleteInstructor)
		})

		r.Route("/courses", func(r chi.Router) {
			r.Get("/", s.handleListCourses)
			r.Post("/", s.handleCreateCourse)
			r.Get("/{id}", s.handleGetCourse)
			r.Put("/{id}", s.handleUpdateCourse)
			r.Delete("/{id}", s.handleDeleteCourse)
		})

		r.Route("/study", func(r chi.Router) {
			r.Route("/subjects", func(r chi.Router) {
				r.Get("/", s.handleListStudySubjects)
				r.Post("/", s.handleCreateStudySubject)
				r.Get("/{id}", s.handleGetStudySubject)
				r.Put("/{id}", s.handleUpdateStudySubject)
				r.Delete("/{id}", s.handleDeleteStudySubject)
			})
			r.Route("/sessions", func(r chi.Router) {
				r.Get("/", s.handleListStudySessions)
				r.Post("/", s.handleCreateStudySession)
				r.Get("/{id}", s.handleGetStudySession)
				r.Put("/{id}", s.handleUpdateStudySession)
				r.Delete("/{id}", s.handleDeleteStudySession)
			})
			r.Route("/goals", func(r chi.Router) {
				r.Get("/", s.handleListGoals)
				r.Post("/", s.handleCreateGoal)
				r.Get("/{id}", s.handleGetGoal)
				r.Put("/{id}", s.handleUpdateGoal)
				r.Delete("/{id}", s.handleDeleteGoal)
			})
			r.Get("/progress", s.handleStudyProgress)
		})
	})

	return r
}

// requestLogger пишет каждый запрос в zap
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.Info("HTTP request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.apiToken == "" {
			next.ServeHTTP(w, r)
			return
		}
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if subtle.ConstantTimeCompare([]byte(token), []byte(s.apiToken)) != 1 {
			writeError(w, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}
