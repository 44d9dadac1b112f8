package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zaibaitech/asrar-sub000/internal/app"
	"github.com/zaibaitech/asrar-sub000/internal/domain"
	"github.com/zaibaitech/asrar-sub000/internal/planetary"
)

var solstice = domain.CivilDate{Year: 2024, Month: time.June, Day: 21}

func meccaLocation(accurate bool) domain.UserLocation {
	return domain.UserLocation{
		Latitude:   21.4225,
		Longitude:  39.8262,
		CityName:   "Mecca",
		TimeZone:   "Asia/Riyadh",
		IsAccurate: accurate,
		Source:     domain.SourceGeo,
	}
}

// fixedTable is a Friday of sixty-minute hours from 06:00 Riyadh time.
func fixedTable(t *testing.T) (*domain.HourSequence, *time.Location) {
	t.Helper()
	zone, err := time.LoadLocation("Asia/Riyadh")
	require.NoError(t, err)
	start := solstice.At(6, 0, zone)
	return planetary.Fallback(solstice, planetary.SequenceFor(time.Friday), zone, start, start.Add(24*time.Hour)), zone
}

func nowResponse(t *testing.T, user domain.Element, accurate bool) *app.NowResponse {
	t.Helper()
	seq, zone := fixedTable(t)
	now := solstice.At(12, 30, zone)
	idx, ok := planetary.MarkCurrent(seq, now)
	require.True(t, ok)
	cur := seq.Hours[idx]
	upcoming := planetary.Upcoming(seq, idx, nil)

	return &app.NowResponse{
		GeneratedAt:   now,
		Location:      meccaLocation(accurate),
		Element:       user,
		Current:       cur,
		Sequence:      seq,
		Alignment:     planetary.Align(user, cur.Planet.Element),
		Window:        planetary.Window(now, cur, upcoming, user),
		FavorableLeft: planetary.CountElement(seq.Hours[idx+1:], user),
	}
}

func TestFormatNow_ShowsCurrentHour(t *testing.T) {
	out := stripANSI(FormatNow(nowResponse(t, domain.ElementEarth, true)))

	assert.Contains(t, out, "Mecca")
	assert.Contains(t, out, "HOUR 7 OF 24")
	assert.Contains(t, out, "Sun الشمس")
	assert.Contains(t, out, "12:00–13:00")
	assert.Contains(t, out, "☀ day")
	assert.Contains(t, out, "60.0 min")
	assert.Contains(t, out, "● WEAK (40)")
	assert.Contains(t, out, "Closes in: 30 min")
	assert.Contains(t, out, "Next window: Venus at 13:00 (in 30 min)")
	assert.NotContains(t, out, "approximate")
}

func TestFormatNow_ApproximateLocationAndWarnings(t *testing.T) {
	resp := nowResponse(t, domain.ElementFire, false)
	resp.Warnings = []string{"using approximate location Mecca"}

	out := stripANSI(FormatNow(resp))

	assert.Contains(t, out, "(approximate)")
	assert.Contains(t, out, "WARNING: using approximate location Mecca")
	assert.Contains(t, out, "● PERFECT (100)")
}

func TestFormatNow_NoNextWindow(t *testing.T) {
	resp := nowResponse(t, domain.ElementWater, true)
	resp.Window.NextOptimal = nil
	resp.Window.NextWindowIn = ""

	out := stripANSI(FormatNow(resp))

	assert.Contains(t, out, "No hour of your element in the next 24h")
	assert.NotContains(t, out, "Next window:")
}
