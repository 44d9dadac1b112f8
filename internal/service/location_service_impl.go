package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zaibaitech/asrar-sub000/internal/app"
	"github.com/zaibaitech/asrar-sub000/internal/db"
	"github.com/zaibaitech/asrar-sub000/internal/domain"
	"github.com/zaibaitech/asrar-sub000/internal/geo"
	"github.com/zaibaitech/asrar-sub000/internal/repository"
)

type locationService struct {
	locations repository.LocationRepo
	uow       db.UnitOfWork
	locator   geo.Locator
	fallback  domain.UserLocation
	clock     Clock
	observer  UseCaseObserver
}

// NewLocationService resolves the observer location from the saved row,
// then locator, then fallback. A nil locator disables acquisition.
func NewLocationService(
	locations repository.LocationRepo,
	uow db.UnitOfWork,
	locator geo.Locator,
	fallback domain.UserLocation,
	clock Clock,
	observers ...UseCaseObserver,
) app.LocationUseCase {
	if locator == nil {
		locator = geo.DisabledLocator{}
	}
	fallback.IsAccurate = false
	fallback.Source = domain.SourceFallback
	return &locationService{
		locations: locations,
		uow:       uow,
		locator:   locator,
		fallback:  fallback,
		clock:     clockOrDefault(clock),
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *locationService) Resolve(ctx context.Context) (res *app.LocationResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		if res != nil {
			fields["source"] = string(res.Location.Source)
			fields["accurate"] = res.Location.IsAccurate
		}
		observe(ctx, s.observer, "resolve-location", startedAt, fields, err)
	}()

	var warnings []string
	saved, err := s.saved(ctx, &warnings)
	if err != nil {
		return nil, err
	}
	if saved != nil {
		return &app.LocationResult{Location: *saved, Saved: true, Warnings: warnings}, nil
	}

	acquired, lookupErr := s.acquire(ctx)
	if lookupErr != nil {
		fields["lookup_error"] = lookupErr.Error()
		return s.fallbackResult(lookupErr, warnings), nil
	}
	if err = s.save(ctx, acquired); err != nil {
		return nil, err
	}
	return &app.LocationResult{Location: *acquired, Saved: true, Warnings: warnings}, nil
}

func (s *locationService) Refresh(ctx context.Context) (res *app.LocationResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		if res != nil {
			fields["source"] = string(res.Location.Source)
			fields["accurate"] = res.Location.IsAccurate
		}
		observe(ctx, s.observer, "refresh-location", startedAt, fields, err)
	}()

	acquired, lookupErr := s.acquire(ctx)
	if lookupErr == nil {
		if err = s.save(ctx, acquired); err != nil {
			return nil, err
		}
		return &app.LocationResult{Location: *acquired, Saved: true}, nil
	}
	fields["lookup_error"] = lookupErr.Error()

	var warnings []string
	saved, err := s.saved(ctx, &warnings)
	if err != nil {
		return nil, err
	}
	if saved != nil {
		warnings = append(warnings, fmt.Sprintf("location refresh failed (%s); keeping saved location", describeLookupError(lookupErr)))
		return &app.LocationResult{Location: *saved, Saved: true, Warnings: warnings}, nil
	}
	return s.fallbackResult(lookupErr, warnings), nil
}

func (s *locationService) Current(ctx context.Context) (*app.LocationResult, error) {
	var warnings []string
	saved, err := s.saved(ctx, &warnings)
	if err != nil {
		return nil, err
	}
	if saved != nil {
		return &app.LocationResult{Location: *saved, Saved: true, Warnings: warnings}, nil
	}
	warnings = append(warnings, fmt.Sprintf("no saved location; using %s", s.fallback.DisplayName()))
	return &app.LocationResult{Location: s.fallback, Warnings: warnings}, nil
}

func (s *locationService) Set(ctx context.Context, loc domain.UserLocation) (res *app.LocationResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"city": loc.CityName}
	defer func() {
		observe(ctx, s.observer, "set-location", startedAt, fields, err)
	}()

	if err = loc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid location: %w", err)
	}
	loc.IsAccurate = true
	loc.Source = domain.SourceManual
	loc.UpdatedAt = s.clock().UTC()
	if err = s.save(ctx, &loc); err != nil {
		return nil, err
	}
	return &app.LocationResult{Location: loc, Saved: true}, nil
}

func (s *locationService) Clear(ctx context.Context) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteLocationRepo(tx).Clear(ctx)
	})
}

// saved returns the persisted location, or nil when there is none or it
// fails validation.
func (s *locationService) saved(ctx context.Context, warnings *[]string) (*domain.UserLocation, error) {
	loc, err := s.locations.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading saved location: %w", err)
	}
	if verr := loc.Validate(); verr != nil {
		*warnings = append(*warnings, fmt.Sprintf("ignoring malformed saved location: %v", verr))
		return nil, nil
	}
	return loc, nil
}

func (s *locationService) acquire(ctx context.Context) (*domain.UserLocation, error) {
	coords, err := s.locator.Locate(ctx)
	if err != nil {
		return nil, err
	}
	loc := coords.UserLocation(s.clock().UTC())
	if err := loc.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", geo.ErrInvalidResponse, err)
	}
	return &loc, nil
}

func (s *locationService) save(ctx context.Context, loc *domain.UserLocation) error {
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteLocationRepo(tx).Save(ctx, loc)
	})
	if err != nil {
		return fmt.Errorf("saving location: %w", err)
	}
	return nil
}

func (s *locationService) fallbackResult(lookupErr error, warnings []string) *app.LocationResult {
	warnings = append(warnings, fmt.Sprintf("location %s; using %s (approximate)",
		describeLookupError(lookupErr), s.fallback.DisplayName()))
	return &app.LocationResult{Location: s.fallback, Warnings: warnings}
}

func describeLookupError(err error) string {
	switch {
	case errors.Is(err, geo.ErrDisabled):
		return "lookup disabled"
	case errors.Is(err, geo.ErrDenied):
		return "lookup denied"
	case errors.Is(err, geo.ErrTimeout):
		return "lookup timed out"
	case errors.Is(err, geo.ErrInvalidResponse):
		return "lookup returned an invalid position"
	default:
		return "unavailable"
	}
}
