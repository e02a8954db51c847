package db

import (
	"database/sql"
	"fmt"
)

// CreateTables brings up the schema on a fresh database. Every statement
// is idempotent so this is safe to run on each startup.
func CreateTables(dbConn *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			username TEXT NOT NULL UNIQUE,
			first TEXT NOT NULL,
			last TEXT NOT NULL,
			budget REAL NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS stocks (
			date TEXT NOT NULL,
			username TEXT NOT NULL,
			symbol TEXT NOT NULL,
			action TEXT NOT NULL,
			qty REAL NOT NULL,
			price REAL NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_stocks_username_symbol ON stocks (username, symbol)`,
	}

	for _, statement := range statements {
		if _, err := dbConn.Exec(statement); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	return nil
}
