package mail

import (
	"context"
	"fmt"
	"log"

	"github.com/resend/resend-go/v2"
)

// ResendSender delivers through the Resend HTTP API.
type ResendSender struct {
	client       *resend.Client
	from         string
	calendlyLink string
}

func NewResendSender(apiKey, from, calendlyLink string) *ResendSender {
	return &ResendSender{
		client:       resend.NewClient(apiKey),
		from:         from,
		calendlyLink: calendlyLink,
	}
}

func (s *ResendSender) SendConsultationInvite(ctx context.Context, to, name string) (string, error) {
	html, err := ConsultationBody(name, s.calendlyLink)
	if err != nil {
		return "", fmt.Errorf("failed to render email template: %w", err)
	}

	sent, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: ConsultationSubject,
		Html:    html,
	})
	if err != nil {
		log.Printf("Resend API error: %v", err)
		return "", fmt.Errorf("resend send failed: %w", err)
	}

	return sent.Id, nil
}
