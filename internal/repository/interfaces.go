package repository

import (
	"context"
	"errors"

	"github.com/zaibaitech/asrar-sub000/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// LocationRepo stores the single saved observer location.
type LocationRepo interface {
	Get(ctx context.Context) (*domain.UserLocation, error)
	Save(ctx context.Context, l *domain.UserLocation) error
	Clear(ctx context.Context) error
}

// UserProfileRepo stores user profiles. Get returns the most recently
// updated one.
type UserProfileRepo interface {
	Get(ctx context.Context) (*domain.UserProfile, error)
	GetByID(ctx context.Context, id string) (*domain.UserProfile, error)
	Upsert(ctx context.Context, p *domain.UserProfile) error
}
