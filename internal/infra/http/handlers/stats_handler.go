package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/smallbizdoctor/backend/internal/entity"
)

// StatsHandler computes the dashboard's today / last-7-days counters in
// SQL. The dashboard can still derive them from the full listings; this
// is the path for when the tables outgrow a full scan in the browser.
type StatsHandler struct {
	LeadRepo   entity.LeadRepositoryInterface
	SignupRepo entity.ClassSignupRepositoryInterface
}

func NewStatsHandler(leadRepo entity.LeadRepositoryInterface, signupRepo entity.ClassSignupRepositoryInterface) *StatsHandler {
	return &StatsHandler{
		LeadRepo:   leadRepo,
		SignupRepo: signupRepo,
	}
}

type entityStats struct {
	Today    int `json:"today"`
	ThisWeek int `json:"this_week"`
}

type StatsResponse struct {
	Submissions  entityStats `json:"submissions"`
	ClassSignups entityStats `json:"class_signups"`
}

// HandleStats (GET /api/stats)
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := now.AddDate(0, 0, -7)

	var resp StatsResponse
	counts := []struct {
		dest  *int
		count func() (int, error)
	}{
		{&resp.Submissions.Today, func() (int, error) { return h.LeadRepo.CountCreatedSince(ctx, startOfDay) }},
		{&resp.Submissions.ThisWeek, func() (int, error) { return h.LeadRepo.CountCreatedSince(ctx, weekAgo) }},
		{&resp.ClassSignups.Today, func() (int, error) { return h.SignupRepo.CountCreatedSince(ctx, startOfDay) }},
		{&resp.ClassSignups.ThisWeek, func() (int, error) { return h.SignupRepo.CountCreatedSince(ctx, weekAgo) }},
	}

	for _, c := range counts {
		n, err := c.count()
		if err != nil {
			log.Printf("Error computing stats: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to compute stats")
			return
		}
		*c.dest = n
	}

	writeJSON(w, http.StatusOK, resp)
}
