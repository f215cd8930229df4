package httpapi

import (
	"net/http"
	"time"

	"github.com/mkalvins/taskboard/internal/common"
	"github.com/mkalvins/taskboard/internal/server/models"
)

type projectCreateRequest struct {
	Name   string        `json:"name"`
	Status models.Status `json:"status"`
	Due    time.Time     `json:"due"`
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		s.writeError(w, r, common.ErrMissingCredentials)
		return
	}

	list, err := s.projects.List(r.Context(), claims.UserID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		s.writeError(w, r, common.ErrMissingCredentials)
		return
	}

	var req projectCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	project, err := s.projects.Create(r.Context(), claims.UserID, req.Name, req.Status, req.Due)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, project)
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		s.writeError(w, r, common.ErrMissingCredentials)
		return
	}

	var patch models.ProjectPatch
	if err := decodeJSON(r, &patch); err != nil {
		s.writeError(w, r, err)
		return
	}

	project, err := s.projects.Update(r.Context(), claims.UserID, r.PathValue("id"), &patch)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, project)
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		s.writeError(w, r, common.ErrMissingCredentials)
		return
	}

	if err := s.projects.Delete(r.Context(), claims.UserID, r.PathValue("id")); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"message": "project deleted"})
}
