package planetary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/zaibaitech/asrar-sub000/internal/domain"
	"github.com/zaibaitech/asrar-sub000/internal/solar"
)

var (
	solstice = domain.CivilDate{Year: 2024, Month: time.June, Day: 21}

	mecca = &domain.UserLocation{
		Latitude:  21.4225,
		Longitude: 39.8262,
		CityName:  "Mecca",
		TimeZone:  "Asia/Riyadh",
	}
)

// steadyProvider rises at 06:00 and sets at 18:00 every day.
var steadyProvider = solar.ProviderFunc(func(date domain.CivilDate, lat, lon float64, loc *time.Location) solar.SunTimes {
	return solar.SunTimes{Sunrise: date.At(6, 0, loc), Sunset: date.At(18, 0, loc)}
})

// polarProvider never rises.
var polarProvider = solar.ProviderFunc(func(domain.CivilDate, float64, float64, *time.Location) solar.SunTimes {
	return solar.SunTimes{}
})

func riyadh(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Riyadh")
	require.NoError(t, err)
	return loc
}

func mustPartition(t *testing.T, date domain.CivilDate, sunrise, sunset, next time.Time) *domain.HourSequence {
	t.Helper()
	seq, err := Partition(date, sunrise, sunset, next, SequenceFor(date.Weekday()), sunrise.Location())
	require.NoError(t, err)
	return seq
}
