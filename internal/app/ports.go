package app

import (
	"context"

	"github.com/zaibaitech/asrar-sub000/internal/domain"
)

// NowUseCase reports the current planetary hour for the user.
type NowUseCase interface {
	Now(ctx context.Context, req NowRequest) (*NowResponse, error)
}

// HoursUseCase lists the full table of a civil date.
type HoursUseCase interface {
	Hours(ctx context.Context, req HoursRequest) (*HoursResponse, error)
}

// LocationUseCase decides which observer location the hours are built for.
type LocationUseCase interface {
	// Resolve returns the saved location, or acquires and saves one, or
	// falls back to the configured default.
	Resolve(ctx context.Context) (*LocationResult, error)
	// Refresh always asks the geolocation provider.
	Refresh(ctx context.Context) (*LocationResult, error)
	// Current never touches the network.
	Current(ctx context.Context) (*LocationResult, error)
	Set(ctx context.Context, loc domain.UserLocation) (*LocationResult, error)
	Clear(ctx context.Context) error
}

// ProfileUseCase manages the user's element.
type ProfileUseCase interface {
	Get(ctx context.Context) (*domain.UserProfile, error)
	Save(ctx context.Context, name string, element domain.Element) (*domain.UserProfile, error)
}
