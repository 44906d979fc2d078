package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/smallbizdoctor/backend/internal/entity"
)

type MockClassSignupRepository struct {
	mock.Mock
}

func (m *MockClassSignupRepository) Create(ctx context.Context, signup *entity.ClassSignup) error {
	args := m.Called(ctx, signup)
	return args.Error(0)
}

func (m *MockClassSignupRepository) FindAll(ctx context.Context) ([]*entity.ClassSignup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ClassSignup), args.Error(1)
}

func (m *MockClassSignupRepository) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	args := m.Called(ctx, since)
	return args.Int(0), args.Error(1)
}

func TestHandleSignupSuccess(t *testing.T) {
	mockRepo := new(MockClassSignupRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	handler := NewClassSignupHandler(mockRepo, nil)

	body, _ := json.Marshal(map[string]string{
		"class-name":     "Sam",
		"class-email":    "sam@x.com",
		"class-phone":    "555-0100",
		"class-business": "Sam's Plumbing",
		"format":         "virtual",
		"experience":     "beginner",
	})
	req := httptest.NewRequest("POST", "/api/class-signup", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.HandleSignup(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response ClassSignupResponse
	json.NewDecoder(w.Body).Decode(&response)

	assert.True(t, response.Success)
	assert.NotEmpty(t, response.Data.ID)
	assert.Equal(t, "virtual", response.Data.Format)
	assert.False(t, response.Data.Contacted)
}

func TestHandleSignupOptionalBusiness(t *testing.T) {
	mockRepo := new(MockClassSignupRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	handler := NewClassSignupHandler(mockRepo, nil)

	body, _ := json.Marshal(map[string]string{
		"class-name":  "Sam",
		"class-email": "sam@x.com",
		"class-phone": "555-0100",
		"format":      "either",
		"experience":  "none",
	})
	req := httptest.NewRequest("POST", "/api/class-signup", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.HandleSignup(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandleSignupMissingFormat(t *testing.T) {
	mockRepo := new(MockClassSignupRepository)
	handler := NewClassSignupHandler(mockRepo, nil)

	body, _ := json.Marshal(map[string]string{
		"class-name":  "Sam",
		"class-email": "sam@x.com",
		"class-phone": "555-0100",
		"experience":  "beginner",
	})
	req := httptest.NewRequest("POST", "/api/class-signup", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.HandleSignup(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var errResponse map[string]string
	json.NewDecoder(w.Body).Decode(&errResponse)
	assert.Equal(t, "Required fields are missing", errResponse["error"])
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
