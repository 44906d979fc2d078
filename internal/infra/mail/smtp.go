package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPSender is the fallback transport for deployments without a Resend
// key, wired to whatever SMTP relay MAIL_HOST points at. SMTP assigns no
// message id we can report back.
type SMTPSender struct {
	Host         string
	Port         int
	User         string
	Password     string
	From         string
	CalendlyLink string
}

func NewSMTPSender(host string, port int, user, password, from, calendlyLink string) *SMTPSender {
	return &SMTPSender{
		Host:         host,
		Port:         port,
		User:         user,
		Password:     password,
		From:         from,
		CalendlyLink: calendlyLink,
	}
}

func (s *SMTPSender) SendConsultationInvite(_ context.Context, to, name string) (string, error) {
	html, err := ConsultationBody(name, s.CalendlyLink)
	if err != nil {
		return "", fmt.Errorf("failed to render email template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", ConsultationSubject)
	m.SetBody("text/html", html)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return "", fmt.Errorf("smtp send failed: %w", err)
	}

	return "", nil
}
