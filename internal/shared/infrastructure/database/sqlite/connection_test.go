package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/semestra/semestra/internal/shared/infrastructure/database"
	"github.com/semestra/semestra/internal/shared/infrastructure/database/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConnection(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	conn, err := sqlite.NewConnection(ctx, database.Config{SQLitePath: path})
	require.NoError(t, err)
	defer conn.Close()

	assert.Equal(t, database.DriverSQLite, conn.Driver())
	assert.NoError(t, conn.Ping(ctx))
}

func TestConnection_ExecAndQuery(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	conn, err := sqlite.NewConnection(ctx, database.Config{SQLitePath: path})
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Exec(ctx, `CREATE TABLE notes (id INTEGER PRIMARY KEY, body TEXT NOT NULL)`)
	require.NoError(t, err)

	result, err := conn.Exec(ctx, `INSERT INTO notes (body) VALUES (?)`, "hello")
	require.NoError(t, err)
	affected, err := result.RowsAffected()
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	var body string
	err = conn.QueryRow(ctx, `SELECT body FROM notes WHERE id = ?`, 1).Scan(&body)
	require.NoError(t, err)
	assert.Equal(t, "hello", body)
}

func TestConnection_TransactionRollback(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	conn, err := sqlite.NewConnection(ctx, database.Config{SQLitePath: path})
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Exec(ctx, `CREATE TABLE notes (id INTEGER PRIMARY KEY, body TEXT NOT NULL)`)
	require.NoError(t, err)

	tx, err := conn.BeginTx(ctx)
	require.NoError(t, err)
	_, err = tx.Exec(ctx, `INSERT INTO notes (body) VALUES (?)`, "discarded")
	require.NoError(t, err)
	require.NoError(t, tx.Rollback(ctx))

	var count int
	err = conn.QueryRow(ctx, `SELECT COUNT(*) FROM notes`).Scan(&count)
	require.NoError(t, err)
	assert.Zero(t, count)
}
