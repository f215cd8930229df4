package httpapi

import (
	"net/http"
	"time"

	"github.com/mkalvins/taskboard/internal/common"
	"github.com/mkalvins/taskboard/internal/server/models"
)

type taskCreateRequest struct {
	Title  string        `json:"title"`
	Status models.Status `json:"status"`
	Due    time.Time     `json:"due"`
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		s.writeError(w, r, common.ErrMissingCredentials)
		return
	}

	list, err := s.tasks.List(r.Context(), claims.UserID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		s.writeError(w, r, common.ErrMissingCredentials)
		return
	}

	var req taskCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	task, err := s.tasks.Create(r.Context(), claims.UserID, req.Title, req.Status, req.Due)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, task)
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		s.writeError(w, r, common.ErrMissingCredentials)
		return
	}

	var patch models.TaskPatch
	if err := decodeJSON(r, &patch); err != nil {
		s.writeError(w, r, err)
		return
	}

	task, err := s.tasks.Update(r.Context(), claims.UserID, r.PathValue("id"), &patch)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, task)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		s.writeError(w, r, common.ErrMissingCredentials)
		return
	}

	if err := s.tasks.Delete(r.Context(), claims.UserID, r.PathValue("id")); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"message": "task deleted"})
}
