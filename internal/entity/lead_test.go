package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLead(t *testing.T) {
	lead, err := NewLead("Jane", "jane@x.com", "Jane's Bakery", "too many manual orders")

	assert.NoError(t, err)
	assert.NotEmpty(t, lead.ID)
	assert.False(t, lead.Contacted)
	assert.False(t, lead.CreatedAt.IsZero())
}

func TestNewLeadRequiresAllFields(t *testing.T) {
	cases := []struct {
		name, email, business, challenge string
	}{
		{"", "jane@x.com", "Bakery", "orders"},
		{"Jane", "", "Bakery", "orders"},
		{"Jane", "jane@x.com", "", "orders"},
		{"Jane", "jane@x.com", "Bakery", ""},
	}

	for _, c := range cases {
		_, err := NewLead(c.name, c.email, c.business, c.challenge)
		assert.Error(t, err)
	}
}

func TestNewClassSignupBusinessOptional(t *testing.T) {
	signup, err := NewClassSignup("Sam", "sam@x.com", "555-0100", "", "virtual", "beginner")

	assert.NoError(t, err)
	assert.Empty(t, signup.Business)
	assert.False(t, signup.Contacted)
}

func TestNewClassSignupRequiredFields(t *testing.T) {
	_, err := NewClassSignup("Sam", "sam@x.com", "555-0100", "", "", "beginner")
	assert.Error(t, err)

	_, err = NewClassSignup("Sam", "sam@x.com", "", "", "virtual", "beginner")
	assert.Error(t, err)
}

func TestNewPromptDefaults(t *testing.T) {
	prompt, err := NewPrompt("Title", "", "Desc", "Content", nil)

	assert.NoError(t, err)
	assert.Equal(t, "📝", prompt.Icon)
	assert.NotNil(t, prompt.Tags)
	assert.Empty(t, prompt.Tags)
}

func TestNewBusinessDefaults(t *testing.T) {
	business, err := NewBusiness("Jane's Bakery")

	assert.NoError(t, err)
	assert.Equal(t, "#3B82F6", business.Color)
	assert.False(t, business.Featured)
	assert.Equal(t, 0, business.DisplayOrder)
	assert.NotNil(t, business.VideoLinks)

	_, err = NewBusiness("")
	assert.Error(t, err)
}
