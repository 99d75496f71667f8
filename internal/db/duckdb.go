package db

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/marcboeker/go-duckdb"
)

var (
	dbInstance *sql.DB
	dbOnce     sync.Once
	dbErr      error
)

const schema = `
	CREATE TABLE IF NOT EXISTS registrations (
		program      VARCHAR NOT NULL,
		path         VARCHAR NOT NULL,
		app_name     VARCHAR,
		content_type VARCHAR,
		modified     TIMESTAMP
	)
`

// GetDB returns a singleton in-memory DuckDB connection. Nothing is written
// to disk; the data lives for one process only.
func GetDB() (*sql.DB, error) {
	dbOnce.Do(func() {
		dbInstance, dbErr = initializeDuckDB()
	})
	return dbInstance, dbErr
}

// initializeDuckDB opens an in-memory database and creates the schema
func initializeDuckDB() (*sql.DB, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("failed to open DuckDB: %w", err)
	}

	// the registrations table only exists on this connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return db, nil
}

// Reset empties the registrations table
func Reset(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, "DELETE FROM registrations"); err != nil {
		return fmt.Errorf("failed to reset registrations: %w", err)
	}
	return nil
}
