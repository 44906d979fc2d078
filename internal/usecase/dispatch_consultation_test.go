package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockConsultationMailer struct {
	mock.Mock
}

func (m *MockConsultationMailer) SendConsultationInvite(ctx context.Context, to, name string) (string, error) {
	args := m.Called(ctx, to, name)
	return args.String(0), args.Error(1)
}

func TestDispatchConsultationSuccessMarksContacted(t *testing.T) {
	mockMailer := new(MockConsultationMailer)
	mockMailer.On("SendConsultationInvite", mock.Anything, "jane@x.com", "Jane").Return("msg-123", nil)

	mockRepo := new(MockContactStatusRepository)
	mockRepo.On("SetContacted", mock.Anything, "submissions", "lead-1", true).Return(nil).Once()

	uc := NewDispatchConsultationUseCase(mockMailer, NewUpdateContactStatusUseCase(mockRepo))

	output, err := uc.Execute(context.Background(), DispatchConsultationInput{
		Email: "jane@x.com",
		Name:  "Jane",
		ID:    "lead-1",
		Table: "submissions",
	})

	assert.NoError(t, err)
	assert.True(t, output.Success)
	assert.Equal(t, "msg-123", output.MessageID)
	mockRepo.AssertExpectations(t)
	mockRepo.AssertNumberOfCalls(t, "SetContacted", 1)
}

func TestDispatchConsultationFailureSkipsStatusUpdate(t *testing.T) {
	mockMailer := new(MockConsultationMailer)
	mockMailer.On("SendConsultationInvite", mock.Anything, "bad@x.com", "Jane").
		Return("", errors.New("invalid sender domain"))

	mockRepo := new(MockContactStatusRepository)

	uc := NewDispatchConsultationUseCase(mockMailer, NewUpdateContactStatusUseCase(mockRepo))

	output, err := uc.Execute(context.Background(), DispatchConsultationInput{
		Email: "bad@x.com",
		Name:  "Jane",
		ID:    "lead-1",
		Table: "submissions",
	})

	assert.Nil(t, output)
	assert.True(t, IsDispatchError(err))
	assert.Contains(t, err.Error(), "invalid sender domain")
	mockRepo.AssertNotCalled(t, "SetContacted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatchConsultationWithoutRowReference(t *testing.T) {
	mockMailer := new(MockConsultationMailer)
	mockMailer.On("SendConsultationInvite", mock.Anything, "jane@x.com", "Jane").Return("msg-123", nil)

	mockRepo := new(MockContactStatusRepository)

	uc := NewDispatchConsultationUseCase(mockMailer, NewUpdateContactStatusUseCase(mockRepo))

	output, err := uc.Execute(context.Background(), DispatchConsultationInput{
		Email: "jane@x.com",
		Name:  "Jane",
	})

	assert.NoError(t, err)
	assert.Equal(t, "msg-123", output.MessageID)
	mockRepo.AssertNotCalled(t, "SetContacted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatchConsultationMissingFields(t *testing.T) {
	uc := NewDispatchConsultationUseCase(new(MockConsultationMailer), nil)

	_, err := uc.Execute(context.Background(), DispatchConsultationInput{Email: "jane@x.com"})
	assert.True(t, IsValidationError(err))

	_, err = uc.Execute(context.Background(), DispatchConsultationInput{Name: "Jane"})
	assert.True(t, IsValidationError(err))
}

func TestDispatchConsultationNotConfigured(t *testing.T) {
	uc := NewDispatchConsultationUseCase(nil, nil)

	_, err := uc.Execute(context.Background(), DispatchConsultationInput{
		Email: "jane@x.com",
		Name:  "Jane",
	})

	assert.True(t, IsConfigurationError(err))
}

func TestDispatchConsultationStatusFailureAfterSend(t *testing.T) {
	mockMailer := new(MockConsultationMailer)
	mockMailer.On("SendConsultationInvite", mock.Anything, "jane@x.com", "Jane").Return("msg-123", nil)

	mockRepo := new(MockContactStatusRepository)
	mockRepo.On("SetContacted", mock.Anything, "submissions", "lead-1", true).
		Return(errors.New("connection reset"))

	uc := NewDispatchConsultationUseCase(mockMailer, NewUpdateContactStatusUseCase(mockRepo))

	output, err := uc.Execute(context.Background(), DispatchConsultationInput{
		Email: "jane@x.com",
		Name:  "Jane",
		ID:    "lead-1",
		Table: "submissions",
	})

	assert.Error(t, err)
	// The message went out; the output must say so even though the
	// status write failed.
	assert.NotNil(t, output)
	assert.Equal(t, "msg-123", output.MessageID)
}
