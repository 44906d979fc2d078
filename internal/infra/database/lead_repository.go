package database

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/smallbizdoctor/backend/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO submissions (id, name, email, business, scaling_challenge, contacted, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.Name,
		lead.Email,
		lead.Business,
		lead.ScalingChallenge,
		lead.Contacted,
		lead.CreatedAt,
	)

	if err != nil {
		log.Printf("Error inserting submission: %v", err)
		return err
	}

	return nil
}

func (r *LeadRepository) FindAll(ctx context.Context) ([]*entity.Lead, error) {
	query := `
		SELECT id, name, email, business, scaling_challenge, contacted, created_at
		FROM submissions
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := []*entity.Lead{}
	for rows.Next() {
		var lead entity.Lead
		if err := rows.Scan(
			&lead.ID,
			&lead.Name,
			&lead.Email,
			&lead.Business,
			&lead.ScalingChallenge,
			&lead.Contacted,
			&lead.CreatedAt,
		); err != nil {
			return nil, err
		}
		leads = append(leads, &lead)
	}

	return leads, rows.Err()
}

func (r *LeadRepository) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM submissions WHERE created_at >= $1`, since,
	).Scan(&count)
	return count, err
}
