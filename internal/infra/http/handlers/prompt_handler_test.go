package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/smallbizdoctor/backend/internal/entity"
)

type MockPromptRepository struct {
	mock.Mock
}

func (m *MockPromptRepository) Create(ctx context.Context, prompt *entity.Prompt) error {
	args := m.Called(ctx, prompt)
	return args.Error(0)
}

func (m *MockPromptRepository) FindAll(ctx context.Context) ([]*entity.Prompt, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Prompt), args.Error(1)
}

func (m *MockPromptRepository) Update(ctx context.Context, id string, update entity.PromptUpdate) (*entity.Prompt, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Prompt), args.Error(1)
}

func (m *MockPromptRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestHandleCreatePrompt(t *testing.T) {
	mockRepo := new(MockPromptRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	handler := NewPromptHandler(mockRepo)

	body, _ := json.Marshal(map[string]interface{}{
		"title":       "Email rewriter",
		"description": "Rewrites customer emails",
		"content":     "You are a helpful assistant...",
		"tags":        []string{"email", "writing"},
	})
	req := httptest.NewRequest("POST", "/api/prompts", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.HandleCreate(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		Success bool           `json:"success"`
		Data    *entity.Prompt `json:"data"`
	}
	json.NewDecoder(w.Body).Decode(&response)

	assert.True(t, response.Success)
	assert.Equal(t, "📝", response.Data.Icon) // default icon
	assert.Equal(t, []string{"email", "writing"}, response.Data.Tags)
}

func TestHandleCreatePromptMissingFields(t *testing.T) {
	mockRepo := new(MockPromptRepository)
	handler := NewPromptHandler(mockRepo)

	body, _ := json.Marshal(map[string]string{"title": "Only a title"})
	req := httptest.NewRequest("POST", "/api/prompts", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.HandleCreate(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var errResponse map[string]string
	json.NewDecoder(w.Body).Decode(&errResponse)
	assert.Equal(t, "Title, description, and content are required", errResponse["error"])
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestHandleUpdatePromptRequiresID(t *testing.T) {
	handler := NewPromptHandler(new(MockPromptRepository))

	body, _ := json.Marshal(map[string]string{"title": "New title"})
	req := httptest.NewRequest("PUT", "/api/prompts", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.HandleUpdate(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleDeletePromptUnknownID(t *testing.T) {
	mockRepo := new(MockPromptRepository)
	mockRepo.On("Delete", mock.Anything, "ghost").Return(entity.ErrNotFound)

	handler := NewPromptHandler(mockRepo)

	body, _ := json.Marshal(map[string]string{"id": "ghost"})
	req := httptest.NewRequest("DELETE", "/api/prompts", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.HandleDelete(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
