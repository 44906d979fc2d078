package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/smallbizdoctor/backend/internal/entity"
)

// BusinessHandler is full CRUD over the portfolio entries shown on the
// small-businesses page.
type BusinessHandler struct {
	BusinessRepo entity.BusinessRepositoryInterface
}

func NewBusinessHandler(repo entity.BusinessRepositoryInterface) *BusinessHandler {
	return &BusinessHandler{BusinessRepo: repo}
}

type createBusinessRequest struct {
	Name             string   `json:"name"`
	Thumbnail        string   `json:"thumbnail"`
	WebsiteURL       string   `json:"website_url"`
	Description      string   `json:"description"`
	ValueDelivered   float64  `json:"value_delivered"`
	RevenueGenerated float64  `json:"revenue_generated"`
	Color            string   `json:"color"`
	VideoLinks       []string `json:"video_links"`
	GithubLinks      []string `json:"github_links"`
	AdditionalLinks  []string `json:"additional_links"`
	Featured         bool     `json:"featured"`
	DisplayOrder     int      `json:"display_order"`
}

type updateBusinessRequest struct {
	ID string `json:"id"`
	entity.BusinessUpdate
}

// HandleList (GET /api/businesses) returns the portfolio in manual order.
func (h *BusinessHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	businesses, err := h.BusinessRepo.FindAll(r.Context())
	if err != nil {
		log.Printf("Error fetching businesses: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch businesses")
		return
	}

	writeJSON(w, http.StatusOK, businesses)
}

// HandleCreate (POST /api/businesses)
func (h *BusinessHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createBusinessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Business name is required")
		return
	}

	business, err := entity.NewBusiness(req.Name)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	business.Thumbnail = req.Thumbnail
	business.WebsiteURL = req.WebsiteURL
	business.Description = req.Description
	business.ValueDelivered = req.ValueDelivered
	business.RevenueGenerated = req.RevenueGenerated
	business.Featured = req.Featured
	business.DisplayOrder = req.DisplayOrder
	if req.Color != "" {
		business.Color = req.Color
	}
	if req.VideoLinks != nil {
		business.VideoLinks = req.VideoLinks
	}
	if req.GithubLinks != nil {
		business.GithubLinks = req.GithubLinks
	}
	if req.AdditionalLinks != nil {
		business.AdditionalLinks = req.AdditionalLinks
	}

	if err := business.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.BusinessRepo.Create(r.Context(), business); err != nil {
		log.Printf("Error creating business: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create business")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"success": true, "data": business})
}

// HandleUpdate (PUT /api/businesses)
func (h *BusinessHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateBusinessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ID == "" {
		writeError(w, http.StatusBadRequest, "Business ID is required")
		return
	}

	business, err := h.BusinessRepo.Update(r.Context(), req.ID, req.BusinessUpdate)
	if errors.Is(err, entity.ErrNotFound) {
		writeError(w, http.StatusNotFound, "record not found")
		return
	}
	if err != nil {
		log.Printf("Error updating business: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to update business")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "data": business})
}

// HandleDelete (DELETE /api/businesses)
func (h *BusinessHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ID == "" {
		writeError(w, http.StatusBadRequest, "Business ID is required")
		return
	}

	err := h.BusinessRepo.Delete(r.Context(), req.ID)
	if errors.Is(err, entity.ErrNotFound) {
		writeError(w, http.StatusNotFound, "record not found")
		return
	}
	if err != nil {
		log.Printf("Error deleting business: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete business")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "message": "Business deleted"})
}
