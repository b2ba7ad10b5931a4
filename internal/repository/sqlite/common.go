package sqlite

import (
	"context"
	"database/sql"

	"ttb/internal/errors"
)

// HandleReadError converts database read errors to structured load errors
func HandleReadError(operation string, err error) error {
	return errors.NewLoadError(operation, err)
}

// HandleWriteError converts database write errors to structured persistence errors
func HandleWriteError(operation string, err error) error {
	return errors.NewPersistenceError(operation, err)
}

// ExecuteWithLastInsertID executes a write query and returns the last insert ID
func ExecuteWithLastInsertID(ctx context.Context, db *sql.DB, query string, operation string, args ...interface{}) (int64, error) {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, HandleWriteError(operation, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, HandleWriteError(operation, err)
	}

	return id, nil
}

// QueryMultiple executes a query that returns multiple rows and scans them
func QueryMultiple[T any](ctx context.Context, db *sql.DB, query string, scanFunc func(Rows) ([]*T, error), entityType string, args ...interface{}) ([]*T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, HandleReadError("query "+entityType, err)
	}
	defer rows.Close()

	results, err := scanFunc(rows)
	if err != nil {
		return nil, HandleReadError("scan "+entityType, err)
	}

	return results, nil
}
