package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/smallbizdoctor/backend/internal/usecase"
)

type StatusHandler struct {
	UpdateStatusUC *usecase.UpdateContactStatusUseCase
}

func NewStatusHandler(uc *usecase.UpdateContactStatusUseCase) *StatusHandler {
	return &StatusHandler{UpdateStatusUC: uc}
}

// HandleUpdate (POST /api/update-status)
func (h *StatusHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateContactStatusInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.UpdateStatusUC.Execute(r.Context(), input); err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
