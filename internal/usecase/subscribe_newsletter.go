package usecase

import (
	"context"
	"errors"

	"github.com/smallbizdoctor/backend/internal/entity"
)

type SubscribeNewsletterInput struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
	Name  string `json:"name"`
}

type SubscribeNewsletterOutput struct {
	Success    bool                         `json:"success"`
	Message    string                       `json:"message,omitempty"`
	Subscriber *entity.NewsletterSubscriber `json:"data,omitempty"`
}

// SubscribeNewsletterUseCase inserts a new subscriber, or flips an
// unsubscribed row back on. A row that is already subscribed is rejected.
type SubscribeNewsletterUseCase struct {
	Repo entity.NewsletterSubscriberRepositoryInterface
}

func NewSubscribeNewsletterUseCase(repo entity.NewsletterSubscriberRepositoryInterface) *SubscribeNewsletterUseCase {
	return &SubscribeNewsletterUseCase{Repo: repo}
}

func (uc *SubscribeNewsletterUseCase) Execute(ctx context.Context, input SubscribeNewsletterInput) (*SubscribeNewsletterOutput, error) {
	if input.Email == "" {
		return nil, &ValidationError{Message: "Email is required"}
	}

	existing, err := uc.Repo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, entity.ErrNotFound) {
		return nil, &StorageError{Message: "failed to subscribe", Cause: err}
	}

	if existing != nil {
		if existing.Subscribed {
			return nil, &ValidationError{Message: "Already subscribed"}
		}
		if err := uc.Repo.Resubscribe(ctx, existing.ID, input.Phone, input.Name); err != nil {
			return nil, &StorageError{Message: "failed to subscribe", Cause: err}
		}
		return &SubscribeNewsletterOutput{Success: true, Message: "Resubscribed successfully"}, nil
	}

	sub, err := entity.NewNewsletterSubscriber(input.Email, input.Phone, input.Name)
	if err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	if err := uc.Repo.Create(ctx, sub); err != nil {
		return nil, &StorageError{Message: "failed to subscribe", Cause: err}
	}

	return &SubscribeNewsletterOutput{Success: true, Subscriber: sub}, nil
}
