package service

import (
	"context"
	"database/sql"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/zaibaitech/asrar-sub000/internal/db"
	"github.com/zaibaitech/asrar-sub000/internal/domain"
	"github.com/zaibaitech/asrar-sub000/internal/geo"
	"github.com/zaibaitech/asrar-sub000/internal/planetary"
	"github.com/zaibaitech/asrar-sub000/internal/repository"
	"github.com/zaibaitech/asrar-sub000/internal/solar"
	"github.com/zaibaitech/asrar-sub000/internal/testutil"
)

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

var istanbul = geo.Coordinates{Latitude: 41.0082, Longitude: 28.9784, City: "Istanbul", TimeZone: "Europe/Istanbul"}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last(name string) (UseCaseEvent, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i := len(o.events) - 1; i >= 0; i-- {
		if o.events[i].Name == name {
			return o.events[i], true
		}
	}
	return UseCaseEvent{}, false
}

// steadyProvider rises at 06:00 and sets at 18:00 every day.
var steadyProvider = solar.ProviderFunc(func(date domain.CivilDate, _, _ float64, loc *time.Location) solar.SunTimes {
	return solar.SunTimes{Sunrise: date.At(6, 0, loc), Sunset: date.At(18, 0, loc)}
})

var polarProvider = solar.ProviderFunc(func(domain.CivilDate, float64, float64, *time.Location) solar.SunTimes {
	return solar.SunTimes{}
})

func riyadh(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Riyadh")
	if err != nil {
		t.Fatalf("loading zone: %v", err)
	}
	return loc
}

type fixture struct {
	db        *sql.DB
	clock     *testutil.Clock
	locator   *fakeLocator
	observer  *recordingObserver
	locations repository.LocationRepo
	profiles  repository.UserProfileRepo
	uow       db.UnitOfWork
}

func newFixture(t *testing.T, now time.Time) *fixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &fixture{
		db:        database,
		clock:     testutil.NewClock(now),
		locator:   &fakeLocator{coords: istanbul},
		observer:  &recordingObserver{},
		locations: repository.NewSQLiteLocationRepo(database),
		profiles:  repository.NewSQLiteUserProfileRepo(database),
		uow:       testutil.NewTestUoW(database),
	}
}

func (f *fixture) fallback() domain.UserLocation {
	return domain.UserLocation{Latitude: 21.4225, Longitude: 39.8262, CityName: "Mecca", TimeZone: "Asia/Riyadh"}
}

func (f *fixture) locationService() *locationService {
	return NewLocationService(f.locations, f.uow, f.locator, f.fallback(), f.clock.Now, f.observer).(*locationService)
}

func (f *fixture) hourService(provider solar.Provider) *hourService {
	builder := planetary.NewBuilder(provider, planetary.DefaultFallbackStartHour)
	return NewHourService(builder, f.locationService(), f.profiles, f.clock.Now, f.observer).(*hourService)
}
