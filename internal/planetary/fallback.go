package planetary

import (
	"time"

	"github.com/zaibaitech/asrar-sub000/internal/domain"
)

// DefaultFallbackStartHour is the local clock hour at which a degenerate
// table begins.
const DefaultFallbackStartHour = 6

// FallbackStart returns startHour on date in loc. Hours outside 0..23 use
// DefaultFallbackStartHour.
func FallbackStart(date domain.CivilDate, loc *time.Location, startHour int) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	if startHour < 0 || startHour > 23 {
		startHour = DefaultFallbackStartHour
	}
	return date.At(startHour, 0, loc)
}

// Fallback builds a degenerate table of 24 equal blocks over [start, end),
// for use when solar data is unusable. Between two fallback start hours the
// blocks are sixty minutes; next to a real table the span is pinned to that
// table's sunrise so consecutive tables still meet. An empty or inverted
// span becomes 24 hours from start.
func Fallback(date domain.CivilDate, seq WeekdaySequence, loc *time.Location, start, end time.Time) *domain.HourSequence {
	if loc == nil {
		loc = time.UTC
	}
	if !start.Before(end) {
		end = start.Add(domain.HoursPerDay * time.Hour)
	}
	start, end = start.In(loc), end.In(loc)
	length := end.Sub(start) / domain.HoursPerDay

	out := &domain.HourSequence{
		Date:       date,
		Weekday:    date.Weekday(),
		Location:   loc,
		Degenerate: true,
		Hours:      make([]domain.PlanetaryHour, 0, domain.HoursPerDay),
	}
	for i := 0; i < domain.HoursPerDay; i++ {
		hourEnd := start.Add(time.Duration(i+1) * length)
		if i == domain.HoursPerDay-1 {
			hourEnd = end
		}
		out.Hours = append(out.Hours, domain.PlanetaryHour{
			Index:     i,
			Planet:    seq.Planet(i),
			Start:     start.Add(time.Duration(i) * length),
			End:       hourEnd,
			IsDayHour: i < hoursPerHalf,
		})
	}
	return out
}
