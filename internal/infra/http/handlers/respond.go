package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/smallbizdoctor/backend/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError emits the {error: message} shape every endpoint uses. The
// admin dashboard shows the message verbatim, so provider detail goes
// through here unredacted.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// statusForError maps the usecase error taxonomy to HTTP status codes.
func statusForError(err error) int {
	switch {
	case usecase.IsValidationError(err), usecase.IsInvalidTargetError(err):
		return http.StatusBadRequest
	case usecase.IsNotFoundError(err):
		return http.StatusNotFound
	default:
		// StorageError, DispatchError, ConfigurationError
		return http.StatusInternalServerError
	}
}
