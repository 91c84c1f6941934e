package api

import (
	"encoding/json"
	"net/http"

	"github.com/electron-shaders/sc2002-proj/pkg/types"
)

// errorResponse is the JSON shape of every error reply.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Kind    string `json:"kind,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.WithError(err).Error("Failed to encode response")
	}
}

// writeDomainError maps a domain error to an HTTP status by its kind.
func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	de, ok := err.(*types.DomainError)
	if !ok {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	status := http.StatusInternalServerError
	switch de.Kind {
	case types.ErrorKindNotFound:
		status = http.StatusNotFound
	case types.ErrorKindValidation:
		status = http.StatusBadRequest
	case types.ErrorKindNotAuthorized:
		status = http.StatusForbidden
	case types.ErrorKindInvalidState, types.ErrorKindUnavailable:
		status = http.StatusConflict
	}

	s.writeJSON(w, status, errorResponse{Error: errorBody{
		Kind:    string(de.Kind),
		Code:    de.Code,
		Message: de.Message,
	}})
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorResponse{Error: errorBody{Message: message}})
}

// decodeJSON decodes a request body, replying 400 on malformed input. The
// bool result reports whether decoding succeeded.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
