package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/smallbizdoctor/backend/internal/entity"
)

// PromptHandler is full CRUD over the admin prompt library. Updates and
// deletes carry the id in the body, not the path.
type PromptHandler struct {
	PromptRepo entity.PromptRepositoryInterface
}

func NewPromptHandler(repo entity.PromptRepositoryInterface) *PromptHandler {
	return &PromptHandler{PromptRepo: repo}
}

type createPromptRequest struct {
	Title       string   `json:"title"`
	Icon        string   `json:"icon"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Content     string   `json:"content"`
}

type updatePromptRequest struct {
	ID string `json:"id"`
	entity.PromptUpdate
}

// HandleList (GET /api/prompts)
func (h *PromptHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	prompts, err := h.PromptRepo.FindAll(r.Context())
	if err != nil {
		log.Printf("Error fetching prompts: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch prompts")
		return
	}

	writeJSON(w, http.StatusOK, prompts)
}

// HandleCreate (POST /api/prompts)
func (h *PromptHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createPromptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Title == "" || req.Description == "" || req.Content == "" {
		writeError(w, http.StatusBadRequest, "Title, description, and content are required")
		return
	}

	prompt, err := entity.NewPrompt(req.Title, req.Icon, req.Description, req.Content, req.Tags)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.PromptRepo.Create(r.Context(), prompt); err != nil {
		log.Printf("Error creating prompt: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create prompt")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"success": true, "data": prompt})
}

// HandleUpdate (PUT /api/prompts) applies a partial update by id.
func (h *PromptHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updatePromptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ID == "" {
		writeError(w, http.StatusBadRequest, "Prompt ID is required")
		return
	}

	prompt, err := h.PromptRepo.Update(r.Context(), req.ID, req.PromptUpdate)
	if errors.Is(err, entity.ErrNotFound) {
		writeError(w, http.StatusNotFound, "record not found")
		return
	}
	if err != nil {
		log.Printf("Error updating prompt: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to update prompt")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "data": prompt})
}

// HandleDelete (DELETE /api/prompts)
func (h *PromptHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ID == "" {
		writeError(w, http.StatusBadRequest, "Prompt ID is required")
		return
	}

	err := h.PromptRepo.Delete(r.Context(), req.ID)
	if errors.Is(err, entity.ErrNotFound) {
		writeError(w, http.StatusNotFound, "record not found")
		return
	}
	if err != nil {
		log.Printf("Error deleting prompt: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete prompt")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "message": "Prompt deleted"})
}
