// Package solar supplies sunrise and sunset instants for a civil date and
// coordinate.
package solar

import (
	"math"
	"time"

	"github.com/nathan-osman/go-sunrise"
	"github.com/zaibaitech/asrar-sub000/internal/domain"
)

// SunTimes holds one day's sunrise and sunset. Either may be the zero time
// when the sun does not rise or set on that date.
type SunTimes struct {
	Sunrise time.Time
	Sunset  time.Time
}

// Valid reports whether both instants exist and sunrise precedes sunset.
// Callers must check Valid before partitioning.
func (s SunTimes) Valid() bool {
	if s.Sunrise.IsZero() || s.Sunset.IsZero() {
		return false
	}
	return s.Sunrise.Before(s.Sunset)
}

// Provider computes sun times for a date at a coordinate, expressed in loc.
type Provider interface {
	SunTimes(date domain.CivilDate, lat, lon float64, loc *time.Location) SunTimes
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(date domain.CivilDate, lat, lon float64, loc *time.Location) SunTimes

func (f ProviderFunc) SunTimes(date domain.CivilDate, lat, lon float64, loc *time.Location) SunTimes {
	return f(date, lat, lon, loc)
}

// SunriseProvider is the production Provider backed by go-sunrise.
type SunriseProvider struct{}

// maxDateShift bounds how far the query date may move to land the sunrise
// on the requested local date.
const maxDateShift = 2

// SunTimes returns the sunrise that falls on date in loc. go-sunrise keys
// its answer to the solar day at lon, which zones far ahead of or behind
// their longitude see as the neighbouring local date, so the query date is
// shifted until the local sunrise date matches.
func (SunriseProvider) SunTimes(date domain.CivilDate, lat, lon float64, loc *time.Location) SunTimes {
	if !finite(lat) || !finite(lon) {
		return SunTimes{}
	}
	if loc == nil {
		loc = time.UTC
	}
	query := date
	for i := 0; i <= maxDateShift; i++ {
		rise, set := sunrise.SunriseSunset(lat, lon, query.Year, query.Month, query.Day)
		if rise.IsZero() || set.IsZero() {
			return SunTimes{}
		}
		got := domain.DateOf(rise.In(loc))
		switch {
		case got == date:
			return SunTimes{Sunrise: rise.In(loc), Sunset: set.In(loc)}
		case got.Before(date):
			query = query.AddDays(1)
		default:
			query = query.AddDays(-1)
		}
	}
	return SunTimes{}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Day is the solar input of one planetary-hour table: the date's sun
// times and the following date's.
type Day struct {
	Date  domain.CivilDate
	Today SunTimes
	Next  SunTimes
}

// ForDay queries p for date and date+1.
func ForDay(p Provider, date domain.CivilDate, lat, lon float64, loc *time.Location) Day {
	return Day{
		Date:  date,
		Today: p.SunTimes(date, lat, lon, loc),
		Next:  Next(p, date, lat, lon, loc),
	}
}

// Next returns the sun times of the day after date.
func Next(p Provider, date domain.CivilDate, lat, lon float64, loc *time.Location) SunTimes {
	return p.SunTimes(date.AddDays(1), lat, lon, loc)
}
