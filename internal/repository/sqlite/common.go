package sqlite

import (
	"context"
	"database/sql"

	"tasklist/internal/errors"
)

// HandlePersistenceError converts database errors to structured app errors
func HandlePersistenceError(operation string, err error) error {
	return errors.NewPersistenceError(operation, err)
}

// ExecuteWithLastInsertID executes a query inside a transaction and returns
// the last insert ID
func ExecuteWithLastInsertID(ctx context.Context, tx *sql.Tx, query string, args ...interface{}) (int64, error) {
	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, HandlePersistenceError("execute query", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, HandlePersistenceError("get last insert ID", err)
	}

	return id, nil
}

// QueryMultiple executes a query that returns multiple rows and scans them
func QueryMultiple[T any](ctx context.Context, db *sql.DB, query string, scanFunc func(Rows) ([]*T, error), entityType string, args ...interface{}) ([]*T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, HandlePersistenceError("query "+entityType, err)
	}
	defer rows.Close()

	results, err := scanFunc(rows)
	if err != nil {
		return nil, HandlePersistenceError("scan "+entityType, err)
	}

	return results, nil
}
