package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned by repositories when an id matches zero rows.
var ErrNotFound = errors.New("record not found")

// Lead is a prospective client captured by the public intake form.
type Lead struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Business         string    `json:"business"`
	ScalingChallenge string    `json:"scaling_challenge"`
	Contacted        bool      `json:"contacted"`
	CreatedAt        time.Time `json:"created_at"`
}

// Factory
func NewLead(name, email, business, scalingChallenge string) (*Lead, error) {
	lead := &Lead{
		ID:               uuid.New().String(),
		Name:             name,
		Email:            email,
		Business:         business,
		ScalingChallenge: scalingChallenge,
		Contacted:        false,
		CreatedAt:        time.Now(),
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

func (l *Lead) Validate() error {
	if l.Name == "" {
		return errors.New("name is required")
	}
	if l.Email == "" {
		return errors.New("email is required")
	}
	if l.Business == "" {
		return errors.New("business is required")
	}
	if l.ScalingChallenge == "" {
		return errors.New("scaling challenge is required")
	}
	return nil
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *Lead) error
	FindAll(ctx context.Context) ([]*Lead, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int, error)
}
