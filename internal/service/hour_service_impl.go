package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/zaibaitech/asrar-sub000/internal/app"
	"github.com/zaibaitech/asrar-sub000/internal/domain"
	"github.com/zaibaitech/asrar-sub000/internal/planetary"
	"github.com/zaibaitech/asrar-sub000/internal/repository"
)

type hourService struct {
	builder   *planetary.Builder
	locations app.LocationUseCase
	profiles  repository.UserProfileRepo
	clock     Clock
	observer  UseCaseObserver

	mu    sync.Mutex
	state planetary.State
}

func NewHourService(
	builder *planetary.Builder,
	locations app.LocationUseCase,
	profiles repository.UserProfileRepo,
	clock Clock,
	observers ...UseCaseObserver,
) HourService {
	if builder == nil {
		builder = planetary.NewBuilder(nil, planetary.DefaultFallbackStartHour)
	}
	return &hourService{
		builder:   builder,
		locations: locations,
		profiles:  profiles,
		clock:     clockOrDefault(clock),
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *hourService) Now(ctx context.Context, req app.NowRequest) (resp *app.NowResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		observe(ctx, s.observer, "hour-tick", startedAt, fields, err)
	}()

	now := s.now(req.Now)
	loc, warnings, err := s.location(ctx, req.Location)
	if err != nil {
		return nil, err
	}
	element, err := s.element(ctx, req.Element, true)
	if err != nil {
		return nil, err
	}

	res, rebuilt := s.resolve(now, &loc)
	fields["rebuilt"] = rebuilt
	current, ok := res.Current()
	if !ok {
		return nil, &app.NowError{
			Code:    app.ErrNoCurrentHour,
			Message: fmt.Sprintf("no planetary hour contains %s", now.Format(time.RFC3339)),
		}
	}
	seq, index := res.Sequence, res.Index
	fields["planet"] = string(current.Planet.ID)
	fields["degenerate"] = seq.Degenerate

	next := s.builder.Build(seq.Date.AddDays(1), &loc)
	upcoming := planetary.Upcoming(seq, index, next)

	if seq.Degenerate {
		warnings = append(warnings, degenerateWarning(seq))
	}

	return &app.NowResponse{
		GeneratedAt:   now,
		Location:      loc,
		Element:       element,
		Current:       current,
		Sequence:      seq,
		Alignment:     planetary.Align(element, current.Planet.Element),
		Window:        planetary.Window(now, current, upcoming, element),
		FavorableLeft: planetary.CountElement(seq.Hours[index+1:], element),
		Rebuilt:       rebuilt,
		Warnings:      warnings,
	}, nil
}

func (s *hourService) Hours(ctx context.Context, req app.HoursRequest) (resp *app.HoursResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		observe(ctx, s.observer, "list-hours", startedAt, fields, err)
	}()

	now := s.now(req.Now)
	loc, warnings, err := s.location(ctx, req.Location)
	if err != nil {
		return nil, err
	}
	element, err := s.element(ctx, req.Element, false)
	if err != nil {
		return nil, err
	}

	// Without a date the listing is the table that contains now, which
	// before sunrise is still the previous date's.
	var (
		seq *domain.HourSequence
		idx = -1
	)
	switch {
	case req.Date != nil:
		seq = s.builder.Build(*req.Date, &loc)
		if i, ok := planetary.MarkCurrent(seq, now); ok {
			idx = i
		}
	default:
		res, _ := s.resolve(now, &loc)
		if res.Found {
			seq, idx = res.Sequence, res.Index
		} else {
			seq = s.builder.Build(domain.DateOf(now.In(loc.TimeLocation())), &loc)
		}
	}
	fields["date"] = seq.Date.String()
	if seq.Degenerate {
		warnings = append(warnings, degenerateWarning(seq))
	}

	resp = &app.HoursResponse{
		GeneratedAt:  now,
		Location:     loc,
		Sequence:     seq,
		CurrentIndex: idx,
		Element:      element,
		Warnings:     warnings,
	}
	if element != "" {
		resp.Alignments = make([]domain.ElementAlignment, len(seq.Hours))
		for i, h := range seq.Hours {
			resp.Alignments[i] = planetary.Align(element, h.Planet.Element)
		}
	}
	return resp, nil
}

// resolve applies the recalculation policy and finds the hour containing
// now. The returned Sequence is a copy so callers never see later marks.
func (s *hourService) resolve(now time.Time, loc *domain.UserLocation) (planetary.Resolution, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := loc.Key()
	rebuilt := false
	if planetary.ShouldRebuild(s.state, now, key) {
		s.rebuild(now, loc, key)
		rebuilt = true
	}

	res := planetary.ResolveWithBoundary(now, s.state.Sequence, s.builder.BuildFunc(loc))
	if !res.Found && !rebuilt {
		s.rebuild(now, loc, key)
		rebuilt = true
		res = planetary.ResolveWithBoundary(now, s.state.Sequence, s.builder.BuildFunc(loc))
	}
	if !res.Found {
		return planetary.Resolution{Index: -1}, rebuilt
	}
	res.Sequence = res.Sequence.Clone()
	return res, rebuilt
}

func (s *hourService) rebuild(now time.Time, loc *domain.UserLocation, key string) {
	date := domain.DateOf(now.In(loc.TimeLocation()))
	s.state = planetary.State{
		Sequence:        s.builder.Build(date, loc),
		LastCalculation: now,
		LocationKey:     key,
	}
}

func (s *hourService) now(override *time.Time) time.Time {
	if override != nil {
		return *override
	}
	return s.clock()
}

func (s *hourService) location(ctx context.Context, override *domain.UserLocation) (domain.UserLocation, []string, error) {
	if override != nil {
		if err := override.Validate(); err != nil {
			return domain.UserLocation{}, nil, &app.NowError{Code: app.ErrInvalidLocation, Message: err.Error()}
		}
		var warnings []string
		if !override.IsAccurate {
			warnings = append(warnings, fmt.Sprintf("using approximate location %s", override.DisplayName()))
		}
		return *override, warnings, nil
	}
	res, err := s.locations.Resolve(ctx)
	if err != nil {
		return domain.UserLocation{}, nil, fmt.Errorf("resolving location: %w", err)
	}
	return res.Location, res.Warnings, nil
}

// element returns the override or the saved profile's element. When
// required is false a missing profile yields the empty element.
func (s *hourService) element(ctx context.Context, override *domain.Element, required bool) (domain.Element, error) {
	if override != nil {
		if !override.Valid() {
			return "", &app.NowError{Code: app.ErrInvalidElement, Message: fmt.Sprintf("unknown element %q", *override)}
		}
		return *override, nil
	}
	p, err := s.profiles.Get(ctx)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		if !required {
			return "", nil
		}
		return "", &app.NowError{Code: app.ErrNoElement, Message: "no element saved; run 'asrar profile set <element>'"}
	case err != nil:
		return "", fmt.Errorf("loading profile: %w", err)
	}
	if !p.Element.Valid() {
		return "", &app.NowError{Code: app.ErrInvalidElement, Message: fmt.Sprintf("saved element %q is not recognised", p.Element)}
	}
	return p.Element, nil
}

func degenerateWarning(seq *domain.HourSequence) string {
	return fmt.Sprintf("no sunrise or sunset on %s at this location; showing fixed %.0f-minute hours from %s",
		seq.Date, seq.Hours[0].DurationMinutes(), seq.Start().Format("15:04"))
}
