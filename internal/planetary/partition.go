package planetary

import (
	"errors"
	"fmt"
	"time"

	"github.com/zaibaitech/asrar-sub000/internal/domain"
)

// ErrInvalidSpan is returned when solar instants are not strictly increasing.
var ErrInvalidSpan = errors.New("invalid solar span")

const hoursPerHalf = domain.HoursPerDay / 2

// Partition divides [sunrise, sunset) into 12 equal day-hours and
// [sunset, nextSunrise) into 12 equal night-hours, ruled in order by seq.
// The last hour of each half ends exactly on the half's boundary so the 24
// intervals tile [sunrise, nextSunrise).
func Partition(
	date domain.CivilDate,
	sunrise, sunset, nextSunrise time.Time,
	seq WeekdaySequence,
	loc *time.Location,
) (*domain.HourSequence, error) {
	if !sunrise.Before(sunset) || !sunset.Before(nextSunrise) {
		return nil, fmt.Errorf("%w: sunrise %s, sunset %s, next sunrise %s", ErrInvalidSpan,
			sunrise.Format(time.RFC3339), sunset.Format(time.RFC3339), nextSunrise.Format(time.RFC3339))
	}
	if loc == nil {
		loc = time.UTC
	}

	out := &domain.HourSequence{
		Date:     date,
		Weekday:  date.Weekday(),
		Location: loc,
		Hours:    make([]domain.PlanetaryHour, 0, domain.HoursPerDay),
	}
	out.Hours = appendHalf(out.Hours, sunrise.In(loc), sunset.In(loc), seq, 0, true)
	out.Hours = appendHalf(out.Hours, sunset.In(loc), nextSunrise.In(loc), seq, hoursPerHalf, false)
	return out, nil
}

func appendHalf(hours []domain.PlanetaryHour, from, to time.Time, seq WeekdaySequence, offset int, day bool) []domain.PlanetaryHour {
	length := to.Sub(from) / hoursPerHalf
	for i := 0; i < hoursPerHalf; i++ {
		start := from.Add(time.Duration(i) * length)
		end := from.Add(time.Duration(i+1) * length)
		if i == hoursPerHalf-1 {
			end = to
		}
		hours = append(hours, domain.PlanetaryHour{
			Index:     offset + i,
			Planet:    seq.Planet(offset + i),
			Start:     start,
			End:       end,
			IsDayHour: day,
		})
	}
	return hours
}
