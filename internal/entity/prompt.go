package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Prompt is an entry in the admin-curated AI prompt library.
type Prompt struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Icon        string    `json:"icon"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewPrompt(title, icon, description, content string, tags []string) (*Prompt, error) {
	if icon == "" {
		icon = "📝"
	}
	if tags == nil {
		tags = []string{}
	}

	prompt := &Prompt{
		ID:          uuid.New().String(),
		Title:       title,
		Icon:        icon,
		Description: description,
		Tags:        tags,
		Content:     content,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := prompt.Validate(); err != nil {
		return nil, err
	}

	return prompt, nil
}

func (p *Prompt) Validate() error {
	if p.Title == "" {
		return errors.New("title is required")
	}
	if p.Description == "" {
		return errors.New("description is required")
	}
	if p.Content == "" {
		return errors.New("content is required")
	}
	return nil
}

// PromptUpdate carries a partial update; nil fields are left untouched.
type PromptUpdate struct {
	Title       *string  `json:"title"`
	Icon        *string  `json:"icon"`
	Description *string  `json:"description"`
	Tags        []string `json:"tags"`
	Content     *string  `json:"content"`
}

type PromptRepositoryInterface interface {
	Create(ctx context.Context, prompt *Prompt) error
	FindAll(ctx context.Context) ([]*Prompt, error)
	Update(ctx context.Context, id string, update PromptUpdate) (*Prompt, error)
	Delete(ctx context.Context, id string) error
}
