package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrAlreadySubscribed = errors.New("already subscribed")

// Draft lifecycle states.
const (
	DraftStatusDraft    = "draft"
	DraftStatusApproved = "approved"
)

// NewsletterSubscriber is a recipient of the bi-weekly newsletter.
type NewsletterSubscriber struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Name       string    `json:"name,omitempty"`
	Subscribed bool      `json:"subscribed"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewNewsletterSubscriber(email, phone, name string) (*NewsletterSubscriber, error) {
	if email == "" {
		return nil, errors.New("email is required")
	}

	return &NewsletterSubscriber{
		ID:         uuid.New().String(),
		Email:      email,
		Phone:      phone,
		Name:       name,
		Subscribed: true,
		CreatedAt:  time.Now(),
	}, nil
}

// NewsletterDraft is a generated newsletter awaiting review.
type NewsletterDraft struct {
	ID         string     `json:"id"`
	Subject    string     `json:"subject"`
	Content    string     `json:"content"`
	SMSContent string     `json:"sms_content,omitempty"`
	Status     string     `json:"status"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func NewNewsletterDraft(subject, content, smsContent string) *NewsletterDraft {
	return &NewsletterDraft{
		ID:         uuid.New().String(),
		Subject:    subject,
		Content:    content,
		SMSContent: smsContent,
		Status:     DraftStatusDraft,
		CreatedAt:  time.Now(),
	}
}

// NewsletterDraftUpdate carries a partial update; nil fields are left untouched.
type NewsletterDraftUpdate struct {
	Status     *string `json:"status"`
	Subject    *string `json:"subject"`
	Content    *string `json:"content"`
	SMSContent *string `json:"sms_content"`
}

type NewsletterSubscriberRepositoryInterface interface {
	Create(ctx context.Context, sub *NewsletterSubscriber) error
	FindAll(ctx context.Context) ([]*NewsletterSubscriber, error)
	FindByEmail(ctx context.Context, email string) (*NewsletterSubscriber, error)
	Resubscribe(ctx context.Context, id, phone, name string) error
}

type NewsletterDraftRepositoryInterface interface {
	Create(ctx context.Context, draft *NewsletterDraft) error
	FindAll(ctx context.Context) ([]*NewsletterDraft, error)
	Update(ctx context.Context, id string, update NewsletterDraftUpdate) (*NewsletterDraft, error)
}
