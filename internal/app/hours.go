package app

import (
	"time"

	"github.com/zaibaitech/asrar-sub000/internal/domain"
)

// HoursRequest asks for the table of Date, defaulting to the civil date of
// Now in the observer's zone. Element is optional; when known every hour
// is scored against it.
type HoursRequest struct {
	Date     *domain.CivilDate
	Now      *time.Time
	Location *domain.UserLocation
	Element  *domain.Element
}

type HoursResponse struct {
	GeneratedAt time.Time
	Location    domain.UserLocation
	Sequence    *domain.HourSequence

	// CurrentIndex is -1 when Now falls outside Sequence.
	CurrentIndex int
	Element      domain.Element
	Alignments   []domain.ElementAlignment
	Warnings     []string
}
