package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mkalvins/taskboard/internal/common"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// writeError maps taxonomy sentinels to HTTP statuses. Anything outside the
// taxonomy is logged and surfaced as a generic 500 so internal details never
// reach the client.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	var msg string

	switch {
	case errors.Is(err, common.ErrorValidation):
		status, msg = http.StatusBadRequest, "missing or invalid fields"
	case errors.Is(err, common.ErrorAlreadyExists):
		status, msg = http.StatusConflict, "user already exists"
	case errors.Is(err, common.ErrorUnauthorized):
		status, msg = http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, common.ErrMissingCredentials):
		status, msg = http.StatusForbidden, "missing credentials"
	case errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrRefreshTokenExpired),
		errors.Is(err, common.ErrInvalidToken):
		status, msg = http.StatusUnauthorized, "invalid token"
	case errors.Is(err, common.ErrorNotFound):
		status, msg = http.StatusNotFound, "not found"
	default:
		s.logger.Error(r.Context(), "internal error", "path", r.URL.Path, "err", err.Error())
		status, msg = http.StatusInternalServerError, "internal error"
	}

	s.writeJSON(w, status, errorResponse{Error: msg})
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return common.ErrorValidation
	}
	return nil
}
