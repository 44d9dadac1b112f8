package domain

import "time"

type ElementAlignment struct {
	Quality              AlignmentQuality
	Description          string
	LocalizedDescription string
	HarmonyScore         int
}

// TimeWindow is the countdown view of the current hour. NextOptimal is nil
// when no hour of the user's element starts within the search horizon.
type TimeWindow struct {
	ClosesIn      string
	ClosesInDur   time.Duration
	Urgency       Urgency
	NextOptimal   *PlanetaryHour
	NextWindowIn  string
	NextWindowDur time.Duration
}
