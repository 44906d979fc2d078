package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/smallbizdoctor/backend/internal/infra/http/middleware"
	"github.com/smallbizdoctor/backend/internal/usecase"
)

// DispatchHandler triggers the one-off consultation email from the admin
// dashboard. Sends are synchronous and never retried server-side; the
// operator re-triggers manually on failure.
type DispatchHandler struct {
	DispatchUC *usecase.DispatchConsultationUseCase
	Configured bool
}

func NewDispatchHandler(uc *usecase.DispatchConsultationUseCase, configured bool) *DispatchHandler {
	return &DispatchHandler{
		DispatchUC: uc,
		Configured: configured,
	}
}

// HandleSendCalendly (POST /api/send-calendly)
func (h *DispatchHandler) HandleSendCalendly(w http.ResponseWriter, r *http.Request) {
	// Credential check comes first, before the body is even read.
	if !h.Configured {
		writeError(w, http.StatusInternalServerError, "Email service not configured - missing API key")
		return
	}

	var input usecase.DispatchConsultationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	output, err := h.DispatchUC.Execute(r.Context(), input)
	if err != nil {
		if usecase.IsDispatchError(err) {
			middleware.RecordEmailDispatched("error")
			middleware.RecordIntegrationError("email")
		}
		if output != nil && output.MessageID != "" {
			// Sent, but the contacted flag didn't stick. The operator
			// needs to know which half failed.
			writeError(w, http.StatusInternalServerError, output.Message)
			return
		}
		writeError(w, statusForError(err), err.Error())
		return
	}

	middleware.RecordEmailDispatched("success")
	writeJSON(w, http.StatusOK, output)
}
