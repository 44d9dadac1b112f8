package planetary

import (
	"time"

	"github.com/zaibaitech/asrar-sub000/internal/domain"
)

// RebuildInterval bounds how long a table is reused without recomputation.
const RebuildInterval = time.Hour

// State is the caller-owned cache of the last computed table. It is
// replaced as a whole, never patched.
type State struct {
	Sequence        *domain.HourSequence
	LastCalculation time.Time
	LocationKey     string
}

// ShouldRebuild decides on each tick whether the full table must be
// recomputed or whether re-resolving the current hour is enough. Calendar
// dates are compared in the table's own location.
func ShouldRebuild(s State, now time.Time, locationKey string) bool {
	if s.Sequence == nil || s.LastCalculation.IsZero() {
		return true
	}
	if locationKey != s.LocationKey {
		return true
	}
	loc := s.Sequence.Location
	if loc == nil {
		loc = now.Location()
	}
	if domain.DateOf(now.In(loc)) != domain.DateOf(s.LastCalculation.In(loc)) {
		return true
	}
	elapsed := now.Sub(s.LastCalculation)
	return elapsed > RebuildInterval || elapsed < 0
}
