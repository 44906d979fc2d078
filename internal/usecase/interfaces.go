package usecase

import (
	"context"
)

// Trackable tables for the contact-status workflow. Anything else is
// rejected before storage is touched.
const (
	TableSubmissions  = "submissions"
	TableClassSignups = "class_signups"
)

// ContactStatusRepository updates the contacted flag on one of the
// trackable tables. Implementations must report entity.ErrNotFound when
// the id matches zero rows.
type ContactStatusRepository interface {
	SetContacted(ctx context.Context, table, id string, contacted bool) error
}

// ConsultationMailer sends the scheduling-link email through an external
// provider and returns the provider-assigned message id.
type ConsultationMailer interface {
	SendConsultationInvite(ctx context.Context, to, name string) (string, error)
}

// TextGenerator produces completion text from a system/user prompt pair.
type TextGenerator interface {
	Complete(ctx context.Context, system, user string, temperature float64, maxTokens int) (string, error)
}
