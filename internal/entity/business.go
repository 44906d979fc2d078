package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Business is a portfolio entry shown on the "small businesses" page.
type Business struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Thumbnail        string    `json:"thumbnail,omitempty"`
	WebsiteURL       string    `json:"website_url,omitempty"`
	Description      string    `json:"description,omitempty"`
	ValueDelivered   float64   `json:"value_delivered"`
	RevenueGenerated float64   `json:"revenue_generated"`
	Color            string    `json:"color"`
	VideoLinks       []string  `json:"video_links"`
	GithubLinks      []string  `json:"github_links"`
	AdditionalLinks  []string  `json:"additional_links"`
	Featured         bool      `json:"featured"`
	DisplayOrder     int       `json:"display_order"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func NewBusiness(name string) (*Business, error) {
	if name == "" {
		return nil, errors.New("business name is required")
	}

	return &Business{
		ID:              uuid.New().String(),
		Name:            name,
		Color:           "#3B82F6",
		VideoLinks:      []string{},
		GithubLinks:     []string{},
		AdditionalLinks: []string{},
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}, nil
}

func (b *Business) Validate() error {
	if b.Name == "" {
		return errors.New("business name is required")
	}
	if b.ValueDelivered < 0 {
		return errors.New("value delivered must not be negative")
	}
	if b.RevenueGenerated < 0 {
		return errors.New("revenue generated must not be negative")
	}
	return nil
}

// BusinessUpdate carries a partial update; nil fields are left untouched.
type BusinessUpdate struct {
	Name             *string  `json:"name"`
	Thumbnail        *string  `json:"thumbnail"`
	WebsiteURL       *string  `json:"website_url"`
	Description      *string  `json:"description"`
	ValueDelivered   *float64 `json:"value_delivered"`
	RevenueGenerated *float64 `json:"revenue_generated"`
	Color            *string  `json:"color"`
	VideoLinks       []string `json:"video_links"`
	GithubLinks      []string `json:"github_links"`
	AdditionalLinks  []string `json:"additional_links"`
	Featured         *bool    `json:"featured"`
	DisplayOrder     *int     `json:"display_order"`
}

type BusinessRepositoryInterface interface {
	Create(ctx context.Context, business *Business) error
	FindAll(ctx context.Context) ([]*Business, error)
	Update(ctx context.Context, id string, update BusinessUpdate) (*Business, error)
	Delete(ctx context.Context, id string) error
}
