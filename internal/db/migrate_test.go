package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"user_location", "user_profile"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}

	var idx string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name='idx_user_profile_updated'`).Scan(&idx)
	require.NoError(t, err)
}

func TestMigrate_AddsSourceColumn(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO user_location (latitude, longitude, time_zone, updated_at)
		VALUES (21.4225, 39.8262, 'Asia/Riyadh', '2024-06-21T00:00:00Z')`)
	require.NoError(t, err)

	var source string
	require.NoError(t, db.QueryRow(`SELECT source FROM user_location WHERE id = 'default'`).Scan(&source))
	assert.Equal(t, "manual", source)
}

func TestMigrate_ElementConstraint(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO user_profile (id, element, created_at, updated_at)
		VALUES ('p1', 'aether', '2024-06-21T00:00:00Z', '2024-06-21T00:00:00Z')`)
	assert.Error(t, err)
}

func TestOpenDB_CreatesDirectory(t *testing.T) {
	path := t.TempDir() + "/nested/asrar.db"
	db, err := OpenDB(path)
	require.NoError(t, err)
	defer db.Close()

	var mode string
	require.NoError(t, db.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "wal", mode)
}
