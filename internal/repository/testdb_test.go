package repository

import (
	"database/sql"
	"testing"

	"papertrade/internal/db"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

func newTestDb(t *testing.T) *sql.DB {
	t.Helper()

	dbConn, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	dbConn.SetMaxOpenConns(1)
	t.Cleanup(func() { dbConn.Close() })

	require.NoError(t, db.CreateTables(dbConn))

	return dbConn
}
