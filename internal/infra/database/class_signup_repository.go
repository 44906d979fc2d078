package database

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/smallbizdoctor/backend/internal/entity"
)

type ClassSignupRepository struct {
	DB *sql.DB
}

func NewClassSignupRepository(db *sql.DB) *ClassSignupRepository {
	return &ClassSignupRepository{DB: db}
}

func (r *ClassSignupRepository) Create(ctx context.Context, signup *entity.ClassSignup) error {
	query := `
		INSERT INTO class_signups (id, name, email, phone, business, format, experience, contacted, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.DB.ExecContext(ctx, query,
		signup.ID,
		signup.Name,
		signup.Email,
		signup.Phone,
		nullString(signup.Business),
		signup.Format,
		signup.Experience,
		signup.Contacted,
		signup.CreatedAt,
	)

	if err != nil {
		log.Printf("Error inserting class signup: %v", err)
		return err
	}

	return nil
}

func (r *ClassSignupRepository) FindAll(ctx context.Context) ([]*entity.ClassSignup, error) {
	query := `
		SELECT id, name, email, phone, business, format, experience, contacted, created_at
		FROM class_signups
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	signups := []*entity.ClassSignup{}
	for rows.Next() {
		var signup entity.ClassSignup
		var business sql.NullString
		if err := rows.Scan(
			&signup.ID,
			&signup.Name,
			&signup.Email,
			&signup.Phone,
			&business,
			&signup.Format,
			&signup.Experience,
			&signup.Contacted,
			&signup.CreatedAt,
		); err != nil {
			return nil, err
		}
		signup.Business = business.String
		signups = append(signups, &signup)
	}

	return signups, rows.Err()
}

func (r *ClassSignupRepository) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM class_signups WHERE created_at >= $1`, since,
	).Scan(&count)
	return count, err
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
