package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/smallbizdoctor/backend/internal/entity"
)

func TestSetContactedMatchesOneRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE submissions SET contacted = \$1 WHERE id = \$2`).
		WithArgs(true, "lead-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewContactStatusRepository(db)

	err = repo.SetContacted(context.Background(), "submissions", "lead-1", true)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetContactedUnknownIDReportsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE class_signups SET contacted = \$1 WHERE id = \$2`).
		WithArgs(false, "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewContactStatusRepository(db)

	err = repo.SetContacted(context.Background(), "class_signups", "ghost", false)

	assert.ErrorIs(t, err, entity.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetContactedRejectsUntrackedTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewContactStatusRepository(db)

	err = repo.SetContacted(context.Background(), "businesses", "b-1", true)

	assert.Error(t, err)
	// Nothing may hit the database for a table outside the allow-list.
	assert.NoError(t, mock.ExpectationsWereMet())
}
