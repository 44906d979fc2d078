package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/smallbizdoctor/backend/internal/entity"
	"github.com/smallbizdoctor/backend/internal/infra/http/middleware"
	"github.com/smallbizdoctor/backend/internal/usecase"
)

// NewsletterHandler covers subscriber signup/listing plus the AI-drafted
// newsletter review queue.
type NewsletterHandler struct {
	SubscribeUC *usecase.SubscribeNewsletterUseCase
	GenerateUC  *usecase.GenerateNewsletterUseCase
	SubRepo     entity.NewsletterSubscriberRepositoryInterface
	DraftRepo   entity.NewsletterDraftRepositoryInterface
	rateLimiter *RateLimiter
}

func NewNewsletterHandler(
	subscribeUC *usecase.SubscribeNewsletterUseCase,
	generateUC *usecase.GenerateNewsletterUseCase,
	subRepo entity.NewsletterSubscriberRepositoryInterface,
	draftRepo entity.NewsletterDraftRepositoryInterface,
	rateLimiter *RateLimiter,
) *NewsletterHandler {
	return &NewsletterHandler{
		SubscribeUC: subscribeUC,
		GenerateUC:  generateUC,
		SubRepo:     subRepo,
		DraftRepo:   draftRepo,
		rateLimiter: rateLimiter,
	}
}

// HandleSignup (POST /api/newsletter-signup)
func (h *NewsletterHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	if h.rateLimiter != nil && !h.rateLimiter.Allow(getClientIP(r)) {
		writeError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		return
	}

	var input usecase.SubscribeNewsletterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	output, err := h.SubscribeUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, output)
}

// HandleListSubscribers (GET /api/newsletter-signup)
func (h *NewsletterHandler) HandleListSubscribers(w http.ResponseWriter, r *http.Request) {
	subs, err := h.SubRepo.FindAll(r.Context())
	if err != nil {
		log.Printf("Error fetching subscribers: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch subscribers")
		return
	}

	writeJSON(w, http.StatusOK, subs)
}

// HandleGenerate (POST /api/newsletter-generate) runs the drafting flow
// and stores the result for review. Synchronous; the admin UI waits.
func (h *NewsletterHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	draft, err := h.GenerateUC.Execute(r.Context())
	if err != nil {
		if usecase.IsConfigurationError(err) {
			writeError(w, http.StatusInternalServerError, "OpenAI API key not configured")
			return
		}
		if usecase.IsDispatchError(err) {
			middleware.RecordIntegrationError("openai")
		}
		log.Printf("Error generating newsletter: %v", err)
		writeError(w, statusForError(err), err.Error())
		return
	}

	middleware.RecordNewsletterDraftGenerated()
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "data": draft})
}

// HandleListDrafts (GET /api/newsletter-drafts)
func (h *NewsletterHandler) HandleListDrafts(w http.ResponseWriter, r *http.Request) {
	drafts, err := h.DraftRepo.FindAll(r.Context())
	if err != nil {
		log.Printf("Error fetching drafts: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch drafts")
		return
	}

	writeJSON(w, http.StatusOK, drafts)
}

type updateDraftRequest struct {
	ID string `json:"id"`
	entity.NewsletterDraftUpdate
}

// HandleUpdateDraft (PUT /api/newsletter-drafts)
func (h *NewsletterHandler) HandleUpdateDraft(w http.ResponseWriter, r *http.Request) {
	var req updateDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ID == "" {
		writeError(w, http.StatusBadRequest, "Draft ID is required")
		return
	}

	draft, err := h.DraftRepo.Update(r.Context(), req.ID, req.NewsletterDraftUpdate)
	if errors.Is(err, entity.ErrNotFound) {
		writeError(w, http.StatusNotFound, "record not found")
		return
	}
	if err != nil {
		log.Printf("Error updating draft: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to update draft")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "data": draft})
}
