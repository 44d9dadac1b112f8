package app

import "github.com/zaibaitech/asrar-sub000/internal/domain"

type LocationResult struct {
	Location domain.UserLocation
	// Saved is true when Location is the persisted row.
	Saved    bool
	Warnings []string
}
