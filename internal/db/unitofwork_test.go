package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zaibaitech/asrar-sub000/internal/db"
)

func openUoW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

func saveCity(ctx context.Context, tx db.DBTX, city string) error {
	_, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO user_location
		(id, latitude, longitude, city_name, time_zone, updated_at)
		VALUES ('default', 0, 0, ?, 'UTC', '2024-06-21T00:00:00Z')`, city)
	return err
}

// savedCity reads the stored city through a fresh transaction.
func savedCity(t *testing.T, uow *db.SQLiteUnitOfWork) (string, bool) {
	t.Helper()
	var city string
	var found bool
	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := tx.QueryRowContext(ctx, `SELECT city_name FROM user_location WHERE id = 'default'`).Scan(&city); err != nil {
			return nil
		}
		found = true
		return nil
	})
	require.NoError(t, err)
	return city, found
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return saveCity(ctx, tx, "Mecca")
	})
	require.NoError(t, err)

	city, found := savedCity(t, uow)
	assert.True(t, found)
	assert.Equal(t, "Mecca", city)
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := openUoW(t)
	boom := errors.New("lookup failed after save")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := saveCity(ctx, tx, "Medina"); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, found := savedCity(t, uow)
	assert.False(t, found, "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := openUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = saveCity(ctx, tx, "Cairo")
			panic("boom")
		})
	})

	_, found := savedCity(t, uow)
	assert.False(t, found, "row should not exist after panic rollback")
}

func TestWithinTx_LastCommitWins(t *testing.T) {
	uow := openUoW(t)
	ctx := context.Background()

	for _, city := range []string{"Mecca", "Istanbul"} {
		require.NoError(t, uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			return saveCity(ctx, tx, city)
		}))
	}

	city, _ := savedCity(t, uow)
	assert.Equal(t, "Istanbul", city)
}
