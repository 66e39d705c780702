package api

import (
	"net/http"

	"github.com/Freeeeeet/admin_bot/internal/model"
	"github.com/Freeeeeet/admin_bot/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func (s *Server) handleListServices(w http.ResponseWriter, r *http.Request) {
	services, err := s.catalog.ListServices(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err, "list services")
		return
	}
	writeJSON(w, http.StatusOK, services)
}

func (s *Server) handleGetService(w http.ResponseWriter, r *http.Request) {
	svc, err := s.catalog.GetService(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, r, err, "get service")
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

func (s *Server) handleCreateService(w http.ResponseWriter, r *http.Request) {
	var req service.ServiceInput
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	created, err := s.catalog.CreateService(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, r, err, "create service")
		return
	}

	w.Header().Set("Location", "/services/"+created.ID)
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateService(w http.ResponseWriter, r *http.Request) {
	var req service.ServiceInput
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	updated, err := s.catalog.UpdateService(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		s.writeServiceError(w, r, err, "update service")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteService(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.catalog.DeleteService(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err, "delete service")
		return
	}

	s.logger.Info("Service deleted via API", zap.String("service_id", id))
	writeJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleListStaff(w http.ResponseWriter, r *http.Request) {
	var (
		staff []model.Staff
		err   error
	)
	// ?serviceId= отбирает сотрудников, оказывающих услугу
	if serviceID := r.URL.Query().Get("serviceId"); serviceID != "" {
		staff, err = s.catalog.StaffForService(r.Context(), serviceID)
	} else {
		staff, err = s.catalog.ListStaff(r.Context())
	}
	if err != nil {
		s.writeServiceError(w, r, err, "list staff")
		return
	}
	writeJSON(w, http.StatusOK, staff)
}

func (s *Server) handleGetStaff(w http.ResponseWriter, r *http.Request) {
	member, err := s.catalog.GetStaff(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, r, err, "get staff")
		return
	}
	writeJSON(w, http.StatusOK, member)
}

func (s *Server) handleCreateStaff(w http.ResponseWriter, r *http.Request) {
	var req service.StaffInput
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	created, err := s.catalog.CreateStaff(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, r, err, "create staff")
		return
	}

	w.Header().Set("Location", "/staff/"+created.ID)
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateStaff(w http.ResponseWriter, r *http.Request) {
	var req service.StaffInput
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	updated, err := s.catalog.UpdateStaff(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		s.writeServiceError(w, r, err, "update staff")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteStaff(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.catalog.DeleteStaff(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err, "delete staff")
		return
	}

	s.logger.Info("Staff deleted via API", zap.String("staff_id", id))
	writeJSON(w, http.StatusNoContent, nil)
}
