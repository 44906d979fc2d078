package mail

import (
	"bytes"
	"context"
	"html/template"
)

const ConsultationSubject = "Schedule Your Free Tech Consultation"

// The scheduling-link email body. Kept identical across every transport
// so the operator sees one email regardless of how it left the building.
var consultationTmpl = template.Must(template.New("consultation").Parse(`
      <h2>Hi {{.Name}},</h2>
      <p>Thank you for your interest in scaling your business with AI and technology!</p>
      <p>I'd love to discuss how I can help you overcome the challenges you're facing.</p>
      <p>Please schedule a free consultation using the link below:</p>
      <p><a href="{{.CalendlyLink}}" style="display: inline-block; padding: 12px 24px; background-color: #0071e3; color: white; text-decoration: none; border-radius: 5px;">Schedule a Meeting</a></p>
      <p>Looking forward to speaking with you!</p>
      <p>Best regards,<br>Ryan</p>
`))

type consultationData struct {
	Name         string
	CalendlyLink string
}

// ConsultationBody renders the scheduling email HTML for one recipient.
func ConsultationBody(name, calendlyLink string) (string, error) {
	var body bytes.Buffer
	err := consultationTmpl.Execute(&body, consultationData{
		Name:         name,
		CalendlyLink: calendlyLink,
	})
	if err != nil {
		return "", err
	}
	return body.String(), nil
}

// Sender delivers the consultation invite through an external provider
// and returns the provider-assigned message id (empty when the transport
// has none, as with plain SMTP).
type Sender interface {
	SendConsultationInvite(ctx context.Context, to, name string) (string, error)
}
