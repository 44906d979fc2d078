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
	"github.com/smallbizdoctor/backend/internal/usecase"
)

type MockContactStatusRepository struct {
	mock.Mock
}

func (m *MockContactStatusRepository) SetContacted(ctx context.Context, table, id string, contacted bool) error {
	args := m.Called(ctx, table, id, contacted)
	return args.Error(0)
}

func newStatusHandler(repo usecase.ContactStatusRepository) *StatusHandler {
	return NewStatusHandler(usecase.NewUpdateContactStatusUseCase(repo))
}

func TestHandleUpdateStatusSuccess(t *testing.T) {
	mockRepo := new(MockContactStatusRepository)
	mockRepo.On("SetContacted", mock.Anything, "submissions", "lead-1", true).Return(nil)

	handler := newStatusHandler(mockRepo)

	body, _ := json.Marshal(map[string]interface{}{
		"id":        "lead-1",
		"contacted": true,
		"table":     "submissions",
	})
	req := httptest.NewRequest("POST", "/api/update-status", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.HandleUpdate(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]bool
	json.NewDecoder(w.Body).Decode(&response)
	assert.True(t, response["success"])
	mockRepo.AssertExpectations(t)
}

func TestHandleUpdateStatusInvalidTable(t *testing.T) {
	mockRepo := new(MockContactStatusRepository)
	handler := newStatusHandler(mockRepo)

	body, _ := json.Marshal(map[string]interface{}{
		"id":        "lead-1",
		"contacted": true,
		"table":     "customers",
	})
	req := httptest.NewRequest("POST", "/api/update-status", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.HandleUpdate(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var errResponse map[string]string
	json.NewDecoder(w.Body).Decode(&errResponse)
	assert.Equal(t, "Invalid table name", errResponse["error"])
	mockRepo.AssertNotCalled(t, "SetContacted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleUpdateStatusMissingFields(t *testing.T) {
	handler := newStatusHandler(new(MockContactStatusRepository))

	body, _ := json.Marshal(map[string]interface{}{
		"id": "lead-1",
		// contacted and table missing
	})
	req := httptest.NewRequest("POST", "/api/update-status", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.HandleUpdate(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleUpdateStatusUnknownID(t *testing.T) {
	mockRepo := new(MockContactStatusRepository)
	mockRepo.On("SetContacted", mock.Anything, "class_signups", "ghost", false).Return(entity.ErrNotFound)

	handler := newStatusHandler(mockRepo)

	body, _ := json.Marshal(map[string]interface{}{
		"id":        "ghost",
		"contacted": false,
		"table":     "class_signups",
	})
	req := httptest.NewRequest("POST", "/api/update-status", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.HandleUpdate(w, req)

	// Unmatched ids are an explicit not-found, not a silent success.
	assert.Equal(t, http.StatusNotFound, w.Code)

	var errResponse map[string]string
	json.NewDecoder(w.Body).Decode(&errResponse)
	assert.Equal(t, "record not found", errResponse["error"])
}
