package cli

import (
	"bytes"
	"context"
	"regexp"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/zaibaitech/asrar-sub000/internal/app"
	"github.com/zaibaitech/asrar-sub000/internal/config"
	"github.com/zaibaitech/asrar-sub000/internal/domain"
	"github.com/zaibaitech/asrar-sub000/internal/geo"
	"github.com/zaibaitech/asrar-sub000/internal/planetary"
	"github.com/zaibaitech/asrar-sub000/internal/repository"
	"github.com/zaibaitech/asrar-sub000/internal/service"
	"github.com/zaibaitech/asrar-sub000/internal/solar"
	"github.com/zaibaitech/asrar-sub000/internal/testutil"
)

var meccaCoords = geo.Coordinates{Latitude: 21.4225, Longitude: 39.8262, City: "Mecca", TimeZone: "Asia/Riyadh"}

type fakeLocator struct {
	coords geo.Coordinates
	err    error
	calls  atomic.Int32
}

func (f *fakeLocator) Locate(context.Context) (geo.Coordinates, error) {
	f.calls.Add(1)
	if f.err != nil {
		return geo.Coordinates{}, f.err
	}
	return f.coords, nil
}

// steadyProvider rises at 06:00 and sets at 18:00 every day, so every
// hour is exactly sixty minutes.
var steadyProvider = solar.ProviderFunc(func(date domain.CivilDate, _, _ float64, loc *time.Location) solar.SunTimes {
	return solar.SunTimes{Sunrise: date.At(6, 0, loc), Sunset: date.At(18, 0, loc)}
})

var solstice = domain.CivilDate{Year: 2024, Month: time.June, Day: 21}

func riyadh(t *testing.T) *time.Location {
	t.Helper()
	zone, err := time.LoadLocation("Asia/Riyadh")
	require.NoError(t, err)
	return zone
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

type testEnv struct {
	app     *App
	locator *fakeLocator
	clock   *testutil.Clock
}

// newTestEnv wires the real services over an in-memory database with the
// clock at 12:30 Riyadh time on Friday 2024-06-21.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	clock := testutil.NewClock(solstice.At(12, 30, riyadh(t)))
	locator := &fakeLocator{coords: meccaCoords}
	locations := repository.NewSQLiteLocationRepo(database)
	profiles := repository.NewSQLiteUserProfileRepo(database)

	locSvc := service.NewLocationService(locations, uow, locator, config.Default().FallbackLocation(), clock.Now)
	hourSvc := service.NewHourService(planetary.NewBuilder(steadyProvider, planetary.DefaultFallbackStartHour), locSvc, profiles, clock.Now)

	return &testEnv{
		app: &App{
			Now:          hourSvc,
			Hours:        hourSvc,
			Location:     locSvc,
			Profile:      service.NewProfileService(profiles, uow, clock.Now),
			TickInterval: time.Hour,
			Clock:        clock.Now,
		},
		locator: locator,
		clock:   clock,
	}
}

func (e *testEnv) saveElement(t *testing.T, element domain.Element) {
	t.Helper()
	_, err := e.app.Profile.Save(context.Background(), "", element)
	require.NoError(t, err)
}

// executeCmd runs args through a fresh command tree and returns its output.
func executeCmd(t *testing.T, a *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(a)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// stubLocation answers Resolve and Refresh with fixed results.
type stubLocation struct {
	app.LocationUseCase

	resolve *app.LocationResult
	refresh *app.LocationResult
	err     error
}

func (s *stubLocation) Resolve(context.Context) (*app.LocationResult, error) {
	return s.resolve, s.err
}

func (s *stubLocation) Refresh(context.Context) (*app.LocationResult, error) {
	return s.refresh, s.err
}

type stubNow struct {
	err   error
	calls int
}

func (s *stubNow) Now(context.Context, app.NowRequest) (*app.NowResponse, error) {
	s.calls++
	return nil, s.err
}

func locationResult(c geo.Coordinates) *app.LocationResult {
	return &app.LocationResult{Location: c.UserLocation(time.Time{}), Saved: true}
}
