package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ClassSignup is a registrant for the free AI class.
type ClassSignup struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Business   string    `json:"business,omitempty"` // optional
	Format     string    `json:"format"`             // in-person, virtual, either
	Experience string    `json:"experience"`         // none, beginner, intermediate
	Contacted  bool      `json:"contacted"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewClassSignup(name, email, phone, business, format, experience string) (*ClassSignup, error) {
	signup := &ClassSignup{
		ID:         uuid.New().String(),
		Name:       name,
		Email:      email,
		Phone:      phone,
		Business:   business,
		Format:     format,
		Experience: experience,
		Contacted:  false,
		CreatedAt:  time.Now(),
	}

	if err := signup.Validate(); err != nil {
		return nil, err
	}

	return signup, nil
}

func (s *ClassSignup) Validate() error {
	if s.Name == "" {
		return errors.New("name is required")
	}
	if s.Email == "" {
		return errors.New("email is required")
	}
	if s.Phone == "" {
		return errors.New("phone is required")
	}
	if s.Format == "" {
		return errors.New("format is required")
	}
	if s.Experience == "" {
		return errors.New("experience is required")
	}
	return nil
}

type ClassSignupRepositoryInterface interface {
	Create(ctx context.Context, signup *ClassSignup) error
	FindAll(ctx context.Context) ([]*ClassSignup, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int, error)
}
