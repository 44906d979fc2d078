package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/smallbizdoctor/backend/internal/entity"
)

type PromptRepository struct {
	DB *sql.DB
}

func NewPromptRepository(db *sql.DB) *PromptRepository {
	return &PromptRepository{DB: db}
}

func (r *PromptRepository) Create(ctx context.Context, prompt *entity.Prompt) error {
	query := `
		INSERT INTO prompts (id, title, icon, description, tags, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.DB.ExecContext(ctx, query,
		prompt.ID,
		prompt.Title,
		prompt.Icon,
		prompt.Description,
		pq.Array(prompt.Tags),
		prompt.Content,
		prompt.CreatedAt,
		prompt.UpdatedAt,
	)
	return err
}

func (r *PromptRepository) FindAll(ctx context.Context) ([]*entity.Prompt, error) {
	query := `
		SELECT id, title, icon, description, tags, content, created_at, updated_at
		FROM prompts
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prompts := []*entity.Prompt{}
	for rows.Next() {
		var p entity.Prompt
		if err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Icon,
			&p.Description,
			pq.Array(&p.Tags),
			&p.Content,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		prompts = append(prompts, &p)
	}

	return prompts, rows.Err()
}

// Update applies only the fields present in the partial update; NULL
// parameters fall through to the current column value.
func (r *PromptRepository) Update(ctx context.Context, id string, update entity.PromptUpdate) (*entity.Prompt, error) {
	query := `
		UPDATE prompts SET
			title = COALESCE($2, title),
			icon = COALESCE($3, icon),
			description = COALESCE($4, description),
			tags = COALESCE($5, tags),
			content = COALESCE($6, content),
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, title, icon, description, tags, content, created_at, updated_at
	`

	var tags interface{}
	if update.Tags != nil {
		tags = pq.Array(update.Tags)
	}

	var p entity.Prompt
	err := r.DB.QueryRowContext(ctx, query,
		id,
		update.Title,
		update.Icon,
		update.Description,
		tags,
		update.Content,
	).Scan(
		&p.ID,
		&p.Title,
		&p.Icon,
		&p.Description,
		pq.Array(&p.Tags),
		&p.Content,
		&p.CreatedAt,
		&p.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *PromptRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM prompts WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrNotFound
	}

	return nil
}
