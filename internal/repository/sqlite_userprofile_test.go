package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zaibaitech/asrar-sub000/internal/domain"
	"github.com/zaibaitech/asrar-sub000/internal/testutil"
)

func TestUserProfileRepo_Get_NotFoundWhenEmpty(t *testing.T) {
	repo := NewSQLiteUserProfileRepo(testutil.NewTestDB(t))

	_, err := repo.Get(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserProfileRepo_Upsert_CreatesAndUpdates(t *testing.T) {
	repo := NewSQLiteUserProfileRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := testutil.NewTestProfile(domain.ElementWater, testutil.WithProfileName("Amina"))
	require.NoError(t, repo.Upsert(ctx, p))

	p.Element = domain.ElementEarth
	p.UpdatedAt = p.UpdatedAt.Add(time.Minute)
	require.NoError(t, repo.Upsert(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Amina", got.Name)
	assert.Equal(t, domain.ElementEarth, got.Element)
	assert.True(t, p.UpdatedAt.Equal(got.UpdatedAt))
}

func TestUserProfileRepo_Get_ReturnsMostRecent(t *testing.T) {
	repo := NewSQLiteUserProfileRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	base := time.Date(2024, 6, 21, 8, 0, 0, 0, time.UTC)

	older := testutil.NewTestProfile(domain.ElementFire, testutil.WithUpdatedAt(base))
	newer := testutil.NewTestProfile(domain.ElementAir, testutil.WithUpdatedAt(base.Add(90*time.Second)))
	require.NoError(t, repo.Upsert(ctx, newer))
	require.NoError(t, repo.Upsert(ctx, older))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, newer.ID, got.ID)
	assert.Equal(t, domain.ElementAir, got.Element)
}

func TestUserProfileRepo_Upsert_RejectsUnknownElement(t *testing.T) {
	repo := NewSQLiteUserProfileRepo(testutil.NewTestDB(t))

	err := repo.Upsert(context.Background(), testutil.NewTestProfile(domain.Element("aether")))
	assert.Error(t, err)
}
