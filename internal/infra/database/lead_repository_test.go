package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/smallbizdoctor/backend/internal/entity"
)

func TestLeadRepositoryCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	lead, err := entity.NewLead("Jane", "jane@x.com", "Jane's Bakery", "too many manual orders")
	assert.NoError(t, err)

	mock.ExpectExec(`INSERT INTO submissions`).
		WithArgs(lead.ID, lead.Name, lead.Email, lead.Business, lead.ScalingChallenge, false, lead.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewLeadRepository(db)

	assert.NoError(t, repo.Create(context.Background(), lead))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadRepositoryFindAllOrdersByRecency(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "email", "business", "scaling_challenge", "contacted", "created_at"}).
		AddRow("lead-2", "New", "new@x.com", "Biz", "growth", false, now).
		AddRow("lead-1", "Old", "old@x.com", "Biz", "growth", true, now.Add(-time.Hour))

	mock.ExpectQuery(`SELECT (.+) FROM submissions ORDER BY created_at DESC`).
		WillReturnRows(rows)

	repo := NewLeadRepository(db)

	leads, err := repo.FindAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, leads, 2)
	assert.Equal(t, "lead-2", leads[0].ID)
	assert.True(t, leads[1].Contacted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadRepositoryFindAllStorageFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM submissions`).
		WillReturnError(errors.New("connection refused"))

	repo := NewLeadRepository(db)

	leads, err := repo.FindAll(context.Background())

	assert.Error(t, err)
	assert.Nil(t, leads)
}

func TestLeadRepositoryCountCreatedSince(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	since := time.Now().AddDate(0, 0, -7)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM submissions WHERE created_at >= \$1`).
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	repo := NewLeadRepository(db)

	count, err := repo.CountCreatedSince(context.Background(), since)

	assert.NoError(t, err)
	assert.Equal(t, 3, count)
}
