package usecase

import (
	"context"
	"errors"

	"github.com/smallbizdoctor/backend/internal/entity"
)

type UpdateContactStatusInput struct {
	ID        string `json:"id"`
	Contacted *bool  `json:"contacted"`
	Table     string `json:"table"`
}

// UpdateContactStatusUseCase flips the contacted flag on a submission or
// class signup. It never touches any other column, and it is idempotent:
// writing the same value twice is observably the same as writing it once.
type UpdateContactStatusUseCase struct {
	StatusRepo ContactStatusRepository
}

func NewUpdateContactStatusUseCase(statusRepo ContactStatusRepository) *UpdateContactStatusUseCase {
	return &UpdateContactStatusUseCase{StatusRepo: statusRepo}
}

func (uc *UpdateContactStatusUseCase) Execute(ctx context.Context, input UpdateContactStatusInput) error {
	if input.ID == "" || input.Contacted == nil || input.Table == "" {
		return &ValidationError{Message: "ID, contacted status, and table are required"}
	}

	// Allow-list check happens before any storage call.
	if input.Table != TableSubmissions && input.Table != TableClassSignups {
		return &InvalidTargetError{Table: input.Table}
	}

	err := uc.StatusRepo.SetContacted(ctx, input.Table, input.ID, *input.Contacted)
	if errors.Is(err, entity.ErrNotFound) {
		// The old behavior swallowed unmatched ids; an explicit not-found
		// keeps operator typos visible.
		return &NotFoundError{ID: input.ID}
	}
	if err != nil {
		return &StorageError{Message: "failed to update status", Cause: err}
	}

	return nil
}
