package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/smallbizdoctor/backend/internal/entity"
)

// trackedTables maps allow-listed table names to themselves. The table
// name is interpolated into SQL, so only values from this map may pass.
var trackedTables = map[string]string{
	"submissions":   "submissions",
	"class_signups": "class_signups",
}

// ContactStatusRepository writes the contacted flag on the two tracked
// tables. Only that one column is ever touched here.
type ContactStatusRepository struct {
	DB *sql.DB
}

func NewContactStatusRepository(db *sql.DB) *ContactStatusRepository {
	return &ContactStatusRepository{DB: db}
}

func (r *ContactStatusRepository) SetContacted(ctx context.Context, table, id string, contacted bool) error {
	tableName, ok := trackedTables[table]
	if !ok {
		return fmt.Errorf("table %q is not tracked", table)
	}

	query := fmt.Sprintf(`UPDATE %s SET contacted = $1 WHERE id = $2`, tableName)

	result, err := r.DB.ExecContext(ctx, query, contacted, id)
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
