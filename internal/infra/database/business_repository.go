package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/smallbizdoctor/backend/internal/entity"
)

type BusinessRepository struct {
	DB *sql.DB
}

func NewBusinessRepository(db *sql.DB) *BusinessRepository {
	return &BusinessRepository{DB: db}
}

func (r *BusinessRepository) Create(ctx context.Context, b *entity.Business) error {
	query := `
		INSERT INTO businesses (
			id, name, thumbnail, website_url, description,
			value_delivered, revenue_generated, color,
			video_links, github_links, additional_links,
			featured, display_order, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.DB.ExecContext(ctx, query,
		b.ID,
		b.Name,
		nullString(b.Thumbnail),
		nullString(b.WebsiteURL),
		nullString(b.Description),
		b.ValueDelivered,
		b.RevenueGenerated,
		b.Color,
		pq.Array(b.VideoLinks),
		pq.Array(b.GithubLinks),
		pq.Array(b.AdditionalLinks),
		b.Featured,
		b.DisplayOrder,
		b.CreatedAt,
		b.UpdatedAt,
	)
	return err
}

// FindAll returns the portfolio in manual sort order, not recency.
func (r *BusinessRepository) FindAll(ctx context.Context) ([]*entity.Business, error) {
	query := `
		SELECT id, name, thumbnail, website_url, description,
			value_delivered, revenue_generated, color,
			video_links, github_links, additional_links,
			featured, display_order, created_at, updated_at
		FROM businesses
		ORDER BY display_order ASC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	businesses := []*entity.Business{}
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			return nil, err
		}
		businesses = append(businesses, b)
	}

	return businesses, rows.Err()
}

func (r *BusinessRepository) Update(ctx context.Context, id string, update entity.BusinessUpdate) (*entity.Business, error) {
	query := `
		UPDATE businesses SET
			name = COALESCE($2, name),
			thumbnail = COALESCE($3, thumbnail),
			website_url = COALESCE($4, website_url),
			description = COALESCE($5, description),
			value_delivered = COALESCE($6, value_delivered),
			revenue_generated = COALESCE($7, revenue_generated),
			color = COALESCE($8, color),
			video_links = COALESCE($9, video_links),
			github_links = COALESCE($10, github_links),
			additional_links = COALESCE($11, additional_links),
			featured = COALESCE($12, featured),
			display_order = COALESCE($13, display_order),
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, thumbnail, website_url, description,
			value_delivered, revenue_generated, color,
			video_links, github_links, additional_links,
			featured, display_order, created_at, updated_at
	`

	var videoLinks, githubLinks, additionalLinks interface{}
	if update.VideoLinks != nil {
		videoLinks = pq.Array(update.VideoLinks)
	}
	if update.GithubLinks != nil {
		githubLinks = pq.Array(update.GithubLinks)
	}
	if update.AdditionalLinks != nil {
		additionalLinks = pq.Array(update.AdditionalLinks)
	}

	row := r.DB.QueryRowContext(ctx, query,
		id,
		update.Name,
		update.Thumbnail,
		update.WebsiteURL,
		update.Description,
		update.ValueDelivered,
		update.RevenueGenerated,
		update.Color,
		videoLinks,
		githubLinks,
		additionalLinks,
		update.Featured,
		update.DisplayOrder,
	)

	b, err := scanBusiness(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return b, nil
}

func (r *BusinessRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM businesses WHERE id = $1`, id)
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

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBusiness(row rowScanner) (*entity.Business, error) {
	var b entity.Business
	var thumbnail, websiteURL, description sql.NullString

	err := row.Scan(
		&b.ID,
		&b.Name,
		&thumbnail,
		&websiteURL,
		&description,
		&b.ValueDelivered,
		&b.RevenueGenerated,
		&b.Color,
		pq.Array(&b.VideoLinks),
		pq.Array(&b.GithubLinks),
		pq.Array(&b.AdditionalLinks),
		&b.Featured,
		&b.DisplayOrder,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.Thumbnail = thumbnail.String
	b.WebsiteURL = websiteURL.String
	b.Description = description.String
	return &b, nil
}
