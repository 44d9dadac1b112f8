package domain

import "time"

// PlanetaryHour is one of the 24 unequal hours of a solar day, covering
// [Start, End).
type PlanetaryHour struct {
	Index     int
	Planet    Planet
	Start     time.Time
	End       time.Time
	IsDayHour bool
	IsCurrent bool
}

func (h PlanetaryHour) Duration() time.Duration {
	return h.End.Sub(h.Start)
}

func (h PlanetaryHour) DurationMinutes() float64 {
	return h.Duration().Minutes()
}

// Contains reports whether t lies in [Start, End).
func (h PlanetaryHour) Contains(t time.Time) bool {
	return !t.Before(h.Start) && t.Before(h.End)
}

// HoursPerDay is the length of every HourSequence.
const HoursPerDay = 24

// HourSequence is the ordered table of planetary hours for one civil date,
// tiling [sunrise, next sunrise) without gaps. Degenerate tables use fixed
// sixty-minute blocks instead of solar times.
type HourSequence struct {
	Date       CivilDate
	Weekday    time.Weekday
	Location   *time.Location
	Degenerate bool
	Hours      []PlanetaryHour
}

// Start returns the start of the first hour, or the zero time if empty.
func (s *HourSequence) Start() time.Time {
	if s == nil || len(s.Hours) == 0 {
		return time.Time{}
	}
	return s.Hours[0].Start
}

// End returns the end of the last hour, or the zero time if empty.
func (s *HourSequence) End() time.Time {
	if s == nil || len(s.Hours) == 0 {
		return time.Time{}
	}
	return s.Hours[len(s.Hours)-1].End
}

// Current returns the hour flagged as current, if any.
func (s *HourSequence) Current() (PlanetaryHour, bool) {
	if s == nil {
		return PlanetaryHour{}, false
	}
	for _, h := range s.Hours {
		if h.IsCurrent {
			return h, true
		}
	}
	return PlanetaryHour{}, false
}

// DayHourLength is the length of one day-hour; zero if the table is short.
func (s *HourSequence) DayHourLength() time.Duration {
	if s == nil || len(s.Hours) < HoursPerDay {
		return 0
	}
	return s.Hours[0].Duration()
}

// NightHourLength is the length of one night-hour; zero if the table is short.
func (s *HourSequence) NightHourLength() time.Duration {
	if s == nil || len(s.Hours) < HoursPerDay {
		return 0
	}
	return s.Hours[HoursPerDay/2].Duration()
}

// Clone returns a deep copy so callers can hand the table out while the
// original keeps being re-marked.
func (s *HourSequence) Clone() *HourSequence {
	if s == nil {
		return nil
	}
	out := *s
	out.Hours = append([]PlanetaryHour(nil), s.Hours...)
	return &out
}
