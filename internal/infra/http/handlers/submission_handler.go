package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/smallbizdoctor/backend/internal/entity"
	"github.com/smallbizdoctor/backend/internal/infra/http/middleware"
)

// SubmissionHandler covers the public lead intake form and the admin
// dashboard's submissions listing.
type SubmissionHandler struct {
	LeadRepo    entity.LeadRepositoryInterface
	rateLimiter *RateLimiter
}

func NewSubmissionHandler(leadRepo entity.LeadRepositoryInterface, rateLimiter *RateLimiter) *SubmissionHandler {
	return &SubmissionHandler{
		LeadRepo:    leadRepo,
		rateLimiter: rateLimiter,
	}
}

// The form posts "scaling-challenge" with a hyphen; the stored column is
// scaling_challenge.
type SubmitRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Business         string `json:"business"`
	ScalingChallenge string `json:"scaling-challenge"`
}

type SubmitResponse struct {
	Success bool         `json:"success"`
	Data    *entity.Lead `json:"data"`
}

// HandleSubmit (POST /api/submit)
func (h *SubmissionHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.rateLimiter != nil && !h.rateLimiter.Allow(getClientIP(r)) {
		writeError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		return
	}

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" || req.Email == "" || req.Business == "" || req.ScalingChallenge == "" {
		writeError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	lead, err := entity.NewLead(req.Name, req.Email, req.Business, req.ScalingChallenge)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.LeadRepo.Create(ctx, lead); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save submission")
		return
	}

	middleware.RecordLeadCaptured()
	writeJSON(w, http.StatusOK, SubmitResponse{Success: true, Data: lead})
}

// HandleList (GET /api/submissions) returns every row, newest first. An
// error response means "data unavailable", never "zero rows".
func (h *SubmissionHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	leads, err := h.LeadRepo.FindAll(r.Context())
	if err != nil {
		log.Printf("Error fetching submissions: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch submissions")
		return
	}

	writeJSON(w, http.StatusOK, leads)
}
