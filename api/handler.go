// Package api - Error serialization
package api

import (
	"encoding/json"
	"net/http"

	"logirate/internal/errors"
)

// writeCoreError maps the engine's error taxonomy onto HTTP statuses. Every
// error stays typed and distinguishable so the presentation layer can render
// field-specific feedback.
func (s *Server) writeCoreError(w http.ResponseWriter, err error) {
	e, ok := err.(*errors.Error)
	if !ok {
		s.writeError(w, string(errors.TypeInternal), err.Error(), http.StatusInternalServerError, "")
		return
	}

	status := http.StatusInternalServerError
	switch e.Type {
	case errors.TypeNotFound:
		status = http.StatusNotFound
	case errors.TypeInvalidRequest, errors.TypeValidation:
		status = http.StatusBadRequest
	case errors.TypePersistence:
		status = http.StatusBadGateway
	}

	s.writeError(w, string(e.Type), e.Message, status, errors.Field(e))
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int, field string) {
	body := map[string]string{
		"code":    code,
		"message": message,
	}
	if field != "" {
		body["field"] = field
	}
	s.writeJSON(w, map[string]interface{}{"error": body}, status)
}
