package usecase

import (
	"context"
	"log"
)

type DispatchConsultationInput struct {
	Email string `json:"email"`
	Name  string `json:"name"`

	// Optional: when both are set, a successful send also marks the row
	// contacted so the dashboard does not depend on the browser for it.
	ID    string `json:"id,omitempty"`
	Table string `json:"table,omitempty"`
}

type DispatchConsultationOutput struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	MessageID string `json:"message_id,omitempty"`
}

// DispatchConsultationUseCase sends the scheduling-link email and, when a
// row reference is supplied, persists contacted=true afterwards. The send
// is synchronous and never retried; a failed send performs no status
// update at all.
type DispatchConsultationUseCase struct {
	Mailer   ConsultationMailer
	StatusUC *UpdateContactStatusUseCase
}

func NewDispatchConsultationUseCase(mailer ConsultationMailer, statusUC *UpdateContactStatusUseCase) *DispatchConsultationUseCase {
	return &DispatchConsultationUseCase{
		Mailer:   mailer,
		StatusUC: statusUC,
	}
}

func (uc *DispatchConsultationUseCase) Execute(ctx context.Context, input DispatchConsultationInput) (*DispatchConsultationOutput, error) {
	if input.Email == "" || input.Name == "" {
		return nil, &ValidationError{Message: "Email and name are required"}
	}

	if uc.Mailer == nil {
		return nil, &ConfigurationError{Service: "email service"}
	}

	log.Printf("Sending consultation email to %s (%s)", input.Email, input.Name)

	messageID, err := uc.Mailer.SendConsultationInvite(ctx, input.Email, input.Name)
	if err != nil {
		return nil, &DispatchError{Detail: err.Error(), Cause: err}
	}

	output := &DispatchConsultationOutput{
		Success:   true,
		Message:   "Email sent successfully",
		MessageID: messageID,
	}

	if input.ID != "" && input.Table != "" {
		contacted := true
		err := uc.StatusUC.Execute(ctx, UpdateContactStatusInput{
			ID:        input.ID,
			Contacted: &contacted,
			Table:     input.Table,
		})
		if err != nil {
			// The email is already out; surface the half-failure instead
			// of pretending the row was updated.
			log.Printf("Email sent but status update failed for %s: %v", input.ID, err)
			output.Message = "Email sent but failed to update contact status"
			return output, err
		}
	}

	return output, nil
}
