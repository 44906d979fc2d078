package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/smallbizdoctor/backend/internal/entity"
	"github.com/smallbizdoctor/backend/internal/infra/http/middleware"
)

type ClassSignupHandler struct {
	SignupRepo  entity.ClassSignupRepositoryInterface
	rateLimiter *RateLimiter
}

func NewClassSignupHandler(signupRepo entity.ClassSignupRepositoryInterface, rateLimiter *RateLimiter) *ClassSignupHandler {
	return &ClassSignupHandler{
		SignupRepo:  signupRepo,
		rateLimiter: rateLimiter,
	}
}

// Field names match the class signup form inputs.
type ClassSignupRequest struct {
	Name       string `json:"class-name"`
	Email      string `json:"class-email"`
	Phone      string `json:"class-phone"`
	Business   string `json:"class-business"`
	Format     string `json:"format"`
	Experience string `json:"experience"`
}

type ClassSignupResponse struct {
	Success bool                `json:"success"`
	Data    *entity.ClassSignup `json:"data"`
}

// HandleSignup (POST /api/class-signup)
func (h *ClassSignupHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.rateLimiter != nil && !h.rateLimiter.Allow(getClientIP(r)) {
		writeError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		return
	}

	var req ClassSignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" || req.Email == "" || req.Phone == "" || req.Format == "" || req.Experience == "" {
		writeError(w, http.StatusBadRequest, "Required fields are missing")
		return
	}

	signup, err := entity.NewClassSignup(req.Name, req.Email, req.Phone, req.Business, req.Format, req.Experience)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.SignupRepo.Create(ctx, signup); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save signup")
		return
	}

	middleware.RecordClassSignup()
	writeJSON(w, http.StatusOK, ClassSignupResponse{Success: true, Data: signup})
}

// HandleList (GET /api/class-signups)
func (h *ClassSignupHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	signups, err := h.SignupRepo.FindAll(r.Context())
	if err != nil {
		log.Printf("Error fetching class signups: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch class signups")
		return
	}

	writeJSON(w, http.StatusOK, signups)
}
