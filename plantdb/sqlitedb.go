package plantdb

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"

	"energymap.ch/internal/appconf"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

//go:embed schema.sql
var ddl string

const memoryPath = ":memory:"

// createDB opens the SQLite database and creates the plant table.
func createDB(ctx context.Context, config Config) (*sql.DB, error) {
	if config.Env == appconf.Test && config.DBPath != memoryPath {
		return nil, fmt.Errorf("refusing to create a database file in test environment: %s", config.DBPath)
	}

	db, err := sql.Open("sqlite", config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	configureConnectionPool(db, config)

	if err := performDatabaseMigration(ctx, db); err != nil {
		db.Close() // nolint:errcheck
		return nil, fmt.Errorf("error performing database migration: %w", err)
	}

	return db, nil
}

// configureConnectionPool sizes the pool. Every connection to ":memory:"
// opens its own empty database, so an in-memory store uses exactly one.
func configureConnectionPool(db *sql.DB, config Config) {
	if config.DBPath == memoryPath {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
		return
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
}

func performDatabaseMigration(ctx context.Context, db *sql.DB) error {
	statements := strings.Split(ddl, "-- migrate") // Split DDL into individual statements
	for _, stmt := range statements {
		trimmedStmt := strings.TrimSpace(stmt)
		if trimmedStmt == "" {
			continue // Skip empty statements
		}
		if _, err := db.ExecContext(ctx, trimmedStmt); err != nil {
			return fmt.Errorf("error executing DDL statement [%s]: %w", trimmedStmt, err)
		}
	}
	return nil
}
