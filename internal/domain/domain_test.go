package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseElement_AcceptsAnyCase(t *testing.T) {
	for _, in := range []string{"fire", "FIRE", " Water ", "Air", "earth"} {
		_, err := ParseElement(in)
		assert.NoError(t, err, "should accept %q", in)
	}
}

func TestParseElement_RejectsUnknown(t *testing.T) {
	_, err := ParseElement("aether")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fire, water, air, earth")
}

func TestPlanetByID_AllSevenHaveElements(t *testing.T) {
	ids := []PlanetID{PlanetSun, PlanetMoon, PlanetMars, PlanetMercury, PlanetJupiter, PlanetVenus, PlanetSaturn}
	for _, id := range ids {
		p, ok := PlanetByID(id)
		require.True(t, ok, "planet %s", id)
		assert.True(t, p.Element.Valid(), "planet %s element", id)
		assert.NotEmpty(t, p.LocalizedName)
		assert.Equal(t, p.Element.LocalizedName(), p.LocalizedElementName)
	}
	_, ok := PlanetByID("pluto")
	assert.False(t, ok)
}

func TestCivilDate_AddDaysCrossesMonthAndYear(t *testing.T) {
	d := CivilDate{Year: 2024, Month: time.December, Day: 31}
	assert.Equal(t, CivilDate{Year: 2025, Month: time.January, Day: 1}, d.AddDays(1))
	assert.Equal(t, CivilDate{Year: 2024, Month: time.February, Day: 29}, CivilDate{Year: 2024, Month: time.March, Day: 1}.AddDays(-1))
}

func TestCivilDate_Weekday(t *testing.T) {
	assert.Equal(t, time.Friday, CivilDate{Year: 2024, Month: time.June, Day: 21}.Weekday())
}

func TestCivilDate_Before(t *testing.T) {
	a := CivilDate{Year: 2024, Month: time.June, Day: 21}
	assert.True(t, a.Before(a.AddDays(1)))
	assert.False(t, a.Before(a))
	assert.False(t, a.AddDays(1).Before(a))
}

func TestParseCivilDate(t *testing.T) {
	d, err := ParseCivilDate("2024-06-21")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-21", d.String())

	_, err = ParseCivilDate("21/06/2024")
	assert.Error(t, err)
}

func TestUserLocation_Validate(t *testing.T) {
	ok := &UserLocation{Latitude: 21.4225, Longitude: 39.8262, TimeZone: "Asia/Riyadh"}
	assert.NoError(t, ok.Validate())

	cases := map[string]*UserLocation{
		"lat range":  {Latitude: 91, Longitude: 0, TimeZone: "UTC"},
		"lon range":  {Latitude: 0, Longitude: -181, TimeZone: "UTC"},
		"nan":        {Latitude: math.NaN(), Longitude: 0, TimeZone: "UTC"},
		"no zone":    {Latitude: 0, Longitude: 0},
		"bogus zone": {Latitude: 0, Longitude: 0, TimeZone: "Mars/Olympus"},
	}
	for name, loc := range cases {
		assert.Error(t, loc.Validate(), name)
	}
}

func TestUserLocation_KeyIgnoresAccuracyAndCity(t *testing.T) {
	a := &UserLocation{Latitude: 21.4225, Longitude: 39.8262, TimeZone: "Asia/Riyadh", CityName: "Mecca"}
	b := &UserLocation{Latitude: 21.4225, Longitude: 39.8262, TimeZone: "Asia/Riyadh", IsAccurate: true}
	assert.Equal(t, a.Key(), b.Key())
	assert.Equal(t, "Mecca", a.DisplayName())
	assert.Equal(t, "21.4225, 39.8262", b.DisplayName())
}

func TestHourSequence_EmptyIsSafe(t *testing.T) {
	var s *HourSequence
	assert.True(t, s.Start().IsZero())
	_, ok := s.Current()
	assert.False(t, ok)
	assert.Zero(t, s.DayHourLength())
}

func TestHourSequence_CloneIsIndependent(t *testing.T) {
	start := time.Date(2024, 6, 21, 6, 0, 0, 0, time.UTC)
	s := &HourSequence{Hours: []PlanetaryHour{{Index: 0, Start: start, End: start.Add(time.Hour)}}}

	c := s.Clone()
	c.Hours[0].IsCurrent = true

	assert.False(t, s.Hours[0].IsCurrent)
	assert.Nil(t, (*HourSequence)(nil).Clone())
}

func TestElement_Names(t *testing.T) {
	assert.Equal(t, "Earth", ElementEarth.Title())
	assert.Equal(t, "تراب", ElementEarth.LocalizedName())
	assert.Empty(t, Element("").Title())
	assert.Empty(t, Element("aether").LocalizedName())
}

func TestCoalesceStr(t *testing.T) {
	assert.Equal(t, "b", CoalesceStr("", "b", "c"))
	assert.Empty(t, CoalesceStr("", ""))
}
