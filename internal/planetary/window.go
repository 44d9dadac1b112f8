package planetary

import (
	"fmt"
	"time"

	"github.com/zaibaitech/asrar-sub000/internal/domain"
)

const (
	HighUrgencyBelow   = 15 * time.Minute
	MediumUrgencyBelow = 30 * time.Minute

	// SearchHorizon limits how far ahead the next window is looked for.
	SearchHorizon = 24 * time.Hour
)

// UrgencyFor classifies how soon the current hour ends.
func UrgencyFor(remaining time.Duration) domain.Urgency {
	switch {
	case remaining < HighUrgencyBelow:
		return domain.UrgencyHigh
	case remaining < MediumUrgencyBelow:
		return domain.UrgencyMedium
	default:
		return domain.UrgencyLow
	}
}

// FormatDuration renders d as "{h}h {m}min" from one hour up and "{m} min"
// below. Minutes are truncated; negative durations render as "0 min".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Minute)
	h, m := total/60, total%60
	if h > 0 {
		return fmt.Sprintf("%dh %dmin", h, m)
	}
	return fmt.Sprintf("%d min", m)
}

// Upcoming returns the hours after index in seq followed by every hour of
// next, which may be nil.
func Upcoming(seq *domain.HourSequence, index int, next *domain.HourSequence) []domain.PlanetaryHour {
	var out []domain.PlanetaryHour
	if seq != nil && index+1 < len(seq.Hours) {
		out = append(out, seq.Hours[index+1:]...)
	}
	if next != nil {
		out = append(out, next.Hours...)
	}
	return out
}

// NextOptimal returns the first upcoming hour ruled by a planet of the
// given element that starts after now and within SearchHorizon.
func NextOptimal(now time.Time, upcoming []domain.PlanetaryHour, element domain.Element) (domain.PlanetaryHour, bool) {
	limit := now.Add(SearchHorizon)
	for _, h := range upcoming {
		if h.Start.Before(now) {
			continue
		}
		if h.Start.After(limit) {
			break
		}
		if h.Planet.Element == element {
			return h, true
		}
	}
	return domain.PlanetaryHour{}, false
}

// CountElement counts the hours ruled by a planet of the given element.
func CountElement(hours []domain.PlanetaryHour, element domain.Element) int {
	n := 0
	for _, h := range hours {
		if h.Planet.Element == element {
			n++
		}
	}
	return n
}

// Window computes the countdown for current and the next hour of the
// user's element among upcoming.
func Window(now time.Time, current domain.PlanetaryHour, upcoming []domain.PlanetaryHour, user domain.Element) domain.TimeWindow {
	remaining := current.End.Sub(now)
	if remaining < 0 {
		remaining = 0
	}
	w := domain.TimeWindow{
		ClosesIn:    FormatDuration(remaining),
		ClosesInDur: remaining,
		Urgency:     UrgencyFor(remaining),
	}
	if next, ok := NextOptimal(now, upcoming, user); ok {
		w.NextOptimal = &next
		w.NextWindowDur = next.Start.Sub(now)
		w.NextWindowIn = FormatDuration(w.NextWindowDur)
	}
	return w
}
