package database

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &DB{DB: sqlx.NewDb(db, "sqlmock"), logger: logger}, mock
}

func TestRunMigrations(t *testing.T) {
	t.Run("applies file", func(t *testing.T) {
		db, mock := newMockDB(t)
		path := filepath.Join(t.TempDir(), "001.sql")
		require.NoError(t, os.WriteFile(path, []byte("CREATE TABLE IF NOT EXISTS posts (id UUID)"), 0o600))

		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS posts`).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, db.RunMigrations(path))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing file", func(t *testing.T) {
		db, _ := newMockDB(t)

		err := db.RunMigrations(filepath.Join(t.TempDir(), "nope.sql"))

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "migration file not found")
	})

	t.Run("exec error", func(t *testing.T) {
		db, mock := newMockDB(t)
		path := filepath.Join(t.TempDir(), "001.sql")
		require.NoError(t, os.WriteFile(path, []byte("BROKEN"), 0o600))

		mock.ExpectExec(`BROKEN`).WillReturnError(errors.New("syntax error"))

		err := db.RunMigrations(path)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "execute migrations")
	})
}

func TestHealthCheck(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectPing()

	assert.NoError(t, db.HealthCheck())

	var nilDB *DB
	assert.Error(t, nilDB.HealthCheck())
}
