package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/lib/pq"
	"github.com/smallbizdoctor/backend/internal/entity"
)

var ErrEmailAlreadyExists = errors.New("email already exists")

type NewsletterSubscriberRepository struct {
	DB *sql.DB
}

func NewNewsletterSubscriberRepository(db *sql.DB) *NewsletterSubscriberRepository {
	return &NewsletterSubscriberRepository{DB: db}
}

func (r *NewsletterSubscriberRepository) Create(ctx context.Context, sub *entity.NewsletterSubscriber) error {
	query := `
		INSERT INTO newsletter_subscribers (id, email, phone, name, subscribed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.DB.ExecContext(ctx, query,
		sub.ID,
		sub.Email,
		nullString(sub.Phone),
		nullString(sub.Name),
		sub.Subscribed,
		sub.CreatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrEmailAlreadyExists
		}
		log.Printf("Error inserting subscriber: %v", err)
		return err
	}

	return nil
}

func (r *NewsletterSubscriberRepository) FindAll(ctx context.Context) ([]*entity.NewsletterSubscriber, error) {
	query := `
		SELECT id, email, phone, name, subscribed, created_at
		FROM newsletter_subscribers
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subs := []*entity.NewsletterSubscriber{}
	for rows.Next() {
		sub, err := scanSubscriber(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}

	return subs, rows.Err()
}

func (r *NewsletterSubscriberRepository) FindByEmail(ctx context.Context, email string) (*entity.NewsletterSubscriber, error) {
	query := `
		SELECT id, email, phone, name, subscribed, created_at
		FROM newsletter_subscribers
		WHERE email = $1
	`

	sub, err := scanSubscriber(r.DB.QueryRowContext(ctx, query, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return sub, nil
}

func (r *NewsletterSubscriberRepository) Resubscribe(ctx context.Context, id, phone, name string) error {
	query := `
		UPDATE newsletter_subscribers
		SET subscribed = TRUE, phone = $2, name = $3
		WHERE id = $1
	`

	_, err := r.DB.ExecContext(ctx, query, id, nullString(phone), nullString(name))
	return err
}

func scanSubscriber(row rowScanner) (*entity.NewsletterSubscriber, error) {
	var sub entity.NewsletterSubscriber
	var phone, name sql.NullString

	err := row.Scan(&sub.ID, &sub.Email, &phone, &name, &sub.Subscribed, &sub.CreatedAt)
	if err != nil {
		return nil, err
	}

	sub.Phone = phone.String
	sub.Name = name.String
	return &sub, nil
}

type NewsletterDraftRepository struct {
	DB *sql.DB
}

func NewNewsletterDraftRepository(db *sql.DB) *NewsletterDraftRepository {
	return &NewsletterDraftRepository{DB: db}
}

func (r *NewsletterDraftRepository) Create(ctx context.Context, draft *entity.NewsletterDraft) error {
	query := `
		INSERT INTO newsletter_drafts (id, subject, content, sms_content, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.DB.ExecContext(ctx, query,
		draft.ID,
		draft.Subject,
		draft.Content,
		nullString(draft.SMSContent),
		draft.Status,
		draft.CreatedAt,
	)
	return err
}

func (r *NewsletterDraftRepository) FindAll(ctx context.Context) ([]*entity.NewsletterDraft, error) {
	query := `
		SELECT id, subject, content, sms_content, status, approved_at, created_at
		FROM newsletter_drafts
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drafts := []*entity.NewsletterDraft{}
	for rows.Next() {
		draft, err := scanDraft(rows)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, draft)
	}

	return drafts, rows.Err()
}

// Update applies a partial update. Moving a draft to "approved" stamps
// approved_at; any other status change leaves the stamp alone.
func (r *NewsletterDraftRepository) Update(ctx context.Context, id string, update entity.NewsletterDraftUpdate) (*entity.NewsletterDraft, error) {
	query := `
		UPDATE newsletter_drafts SET
			status = COALESCE($2, status),
			subject = COALESCE($3, subject),
			content = COALESCE($4, content),
			sms_content = COALESCE($5, sms_content),
			approved_at = CASE WHEN $2 = 'approved' THEN NOW() ELSE approved_at END
		WHERE id = $1
		RETURNING id, subject, content, sms_content, status, approved_at, created_at
	`

	draft, err := scanDraft(r.DB.QueryRowContext(ctx, query,
		id,
		update.Status,
		update.Subject,
		update.Content,
		update.SMSContent,
	))

	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return draft, nil
}

func scanDraft(row rowScanner) (*entity.NewsletterDraft, error) {
	var draft entity.NewsletterDraft
	var smsContent sql.NullString
	var approvedAt sql.NullTime

	err := row.Scan(
		&draft.ID,
		&draft.Subject,
		&draft.Content,
		&smsContent,
		&draft.Status,
		&approvedAt,
		&draft.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	draft.SMSContent = smsContent.String
	if approvedAt.Valid {
		draft.ApprovedAt = &approvedAt.Time
	}
	return &draft, nil
}
