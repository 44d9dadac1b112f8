package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/zaibaitech/asrar-sub000/internal/domain"
)

// Location options
type LocationOption func(*domain.UserLocation)

func WithCoordinates(lat, lon float64) LocationOption {
	return func(l *domain.UserLocation) {
		l.Latitude = lat
		l.Longitude = lon
	}
}

func WithCity(name string) LocationOption {
	return func(l *domain.UserLocation) {
		l.CityName = name
	}
}

func WithTimeZone(tz string) LocationOption {
	return func(l *domain.UserLocation) {
		l.TimeZone = tz
	}
}

func WithAccuracy(accurate bool) LocationOption {
	return func(l *domain.UserLocation) {
		l.IsAccurate = accurate
	}
}

func WithSource(s domain.LocationSource) LocationOption {
	return func(l *domain.UserLocation) {
		l.Source = s
	}
}

// NewTestLocation returns Mecca unless options say otherwise.
func NewTestLocation(opts ...LocationOption) *domain.UserLocation {
	l := &domain.UserLocation{
		Latitude:   21.4225,
		Longitude:  39.8262,
		CityName:   "Mecca",
		TimeZone:   "Asia/Riyadh",
		IsAccurate: true,
		Source:     domain.SourceManual,
		UpdatedAt:  time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Cupertino is a second fixture location in a western time zone.
func Cupertino() *domain.UserLocation {
	return NewTestLocation(
		WithCoordinates(37.3230, -122.0322),
		WithCity("Cupertino"),
		WithTimeZone("America/Los_Angeles"),
	)
}

// Profile options
type ProfileOption func(*domain.UserProfile)

func WithProfileName(name string) ProfileOption {
	return func(p *domain.UserProfile) {
		p.Name = name
	}
}

func WithUpdatedAt(t time.Time) ProfileOption {
	return func(p *domain.UserProfile) {
		p.UpdatedAt = t
	}
}

func NewTestProfile(element domain.Element, opts ...ProfileOption) *domain.UserProfile {
	p := &domain.UserProfile{
		ID:        uuid.New().String(),
		Name:      "Test User",
		Element:   element,
		UpdatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
