package domain

import (
	"fmt"
	"math"
	"time"
)

// UserLocation is the observer position. IsAccurate is false when the
// position is a configured fallback rather than an acquired one.
type UserLocation struct {
	Latitude   float64
	Longitude  float64
	CityName   string
	TimeZone   string
	IsAccurate bool
	Source     LocationSource
	UpdatedAt  time.Time
}

// Validate checks that coordinates are finite and in range and that the
// time zone is a known IANA name.
func (l *UserLocation) Validate() error {
	if math.IsNaN(l.Latitude) || math.IsInf(l.Latitude, 0) || l.Latitude < -90 || l.Latitude > 90 {
		return fmt.Errorf("latitude %v must be between -90 and 90", l.Latitude)
	}
	if math.IsNaN(l.Longitude) || math.IsInf(l.Longitude, 0) || l.Longitude < -180 || l.Longitude > 180 {
		return fmt.Errorf("longitude %v must be between -180 and 180", l.Longitude)
	}
	if l.TimeZone == "" {
		return fmt.Errorf("time zone is required")
	}
	if _, err := time.LoadLocation(l.TimeZone); err != nil {
		return fmt.Errorf("time zone %q: %w", l.TimeZone, err)
	}
	return nil
}

// TimeLocation resolves TimeZone, falling back to UTC when it is unknown.
func (l *UserLocation) TimeLocation() *time.Location {
	if l.TimeZone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(l.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Key identifies the position for change detection; accuracy and city
// name do not affect the computed table.
func (l *UserLocation) Key() string {
	return fmt.Sprintf("%.4f,%.4f,%s", l.Latitude, l.Longitude, l.TimeZone)
}

// DisplayName prefers the city name and falls back to coordinates.
func (l *UserLocation) DisplayName() string {
	return CoalesceStr(l.CityName, fmt.Sprintf("%.4f, %.4f", l.Latitude, l.Longitude))
}
