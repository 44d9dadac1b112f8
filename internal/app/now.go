package app

import (
	"time"

	"github.com/zaibaitech/asrar-sub000/internal/domain"
)

// NowRequest asks for the hour in effect at Now. Nil fields are filled
// from the clock, the saved location and the saved profile.
type NowRequest struct {
	Now      *time.Time
	Location *domain.UserLocation
	Element  *domain.Element
}

type NowResponse struct {
	GeneratedAt time.Time
	Location    domain.UserLocation
	Element     domain.Element
	Current     domain.PlanetaryHour
	Sequence    *domain.HourSequence
	Alignment   domain.ElementAlignment
	Window      domain.TimeWindow

	// FavorableLeft counts hours of the user's element still ahead in
	// Sequence.
	FavorableLeft int
	Rebuilt       bool
	Warnings      []string
}

type NowErrorCode string

const (
	ErrNoCurrentHour   NowErrorCode = "NO_CURRENT_HOUR"
	ErrNoElement       NowErrorCode = "NO_ELEMENT"
	ErrInvalidElement  NowErrorCode = "INVALID_ELEMENT"
	ErrInvalidLocation NowErrorCode = "INVALID_LOCATION"
	ErrInternalError   NowErrorCode = "INTERNAL_ERROR"
)

type NowError struct {
	Code    NowErrorCode
	Message string
}

func (e *NowError) Error() string {
	return string(e.Code) + ": " + e.Message
}
