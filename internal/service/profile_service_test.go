package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zaibaitech/asrar-sub000/internal/domain"
	"github.com/zaibaitech/asrar-sub000/internal/repository"
)

func TestProfileService_SaveCreatesThenUpdates(t *testing.T) {
	f := newFixture(t, noon)
	ctx := context.Background()
	svc := NewProfileService(f.profiles, f.uow, f.clock.Now, f.observer)

	_, err := svc.Get(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	first, err := svc.Save(ctx, "  Amina ", domain.ElementWater)
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "Amina", first.Name)

	f.clock.Advance(time.Minute)
	second, err := svc.Save(ctx, "", domain.ElementFire)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Amina", second.Name, "blank name keeps the old one")

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ElementFire, got.Element)
	assert.True(t, noon.Add(time.Minute).Equal(got.UpdatedAt))

	ev, ok := f.observer.last("save-profile")
	require.True(t, ok)
	assert.Equal(t, "fire", ev.Fields["element"])
}

func TestProfileService_SaveRejectsUnknownElement(t *testing.T) {
	f := newFixture(t, noon)
	svc := NewProfileService(f.profiles, f.uow, f.clock.Now, f.observer)

	_, err := svc.Save(context.Background(), "x", domain.Element("aether"))
	assert.Error(t, err)

	ev, ok := f.observer.last("save-profile")
	require.True(t, ok)
	assert.False(t, ev.Success)
}
