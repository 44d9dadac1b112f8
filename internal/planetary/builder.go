package planetary

import (
	"time"

	"github.com/zaibaitech/asrar-sub000/internal/domain"
	"github.com/zaibaitech/asrar-sub000/internal/solar"
)

// Builder turns solar data into planetary-hour tables, falling back to
// fixed blocks when the data is unusable.
type Builder struct {
	provider          solar.Provider
	fallbackStartHour int
}

func NewBuilder(provider solar.Provider, fallbackStartHour int) *Builder {
	if provider == nil {
		provider = solar.SunriseProvider{}
	}
	return &Builder{provider: provider, fallbackStartHour: fallbackStartHour}
}

// Build returns the table for date at the observer location. The result is
// always a full 24-hour table; Degenerate marks the fallback.
//
// A table runs from its date's boundary to the next date's boundary, so the
// table for date ends exactly where the table for date+1 begins whether
// either of them is real or degenerate.
func (b *Builder) Build(date domain.CivilDate, at *domain.UserLocation) *domain.HourSequence {
	loc := at.TimeLocation()
	seq := SequenceFor(date.Weekday())

	day := solar.ForDay(b.provider, date, at.Latitude, at.Longitude, loc)
	start := b.boundary(date, day.Today, loc)
	end := b.boundary(date.AddDays(1), day.Next, loc)

	if day.Today.Valid() {
		out, err := Partition(date, day.Today.Sunrise, day.Today.Sunset, end, seq, loc)
		if err == nil {
			return out
		}
	}
	return Fallback(date, seq, loc, start, end)
}

// boundary is where the table for date begins: sunrise when the sun both
// rises and sets that day, otherwise the fallback start hour.
func (b *Builder) boundary(date domain.CivilDate, st solar.SunTimes, loc *time.Location) time.Time {
	if st.Valid() {
		return st.Sunrise
	}
	return FallbackStart(date, loc, b.fallbackStartHour)
}

// BuildFunc binds Build to a location for ResolveWithBoundary.
func (b *Builder) BuildFunc(at *domain.UserLocation) BuildFunc {
	return func(date domain.CivilDate) *domain.HourSequence {
		return b.Build(date, at)
	}
}
