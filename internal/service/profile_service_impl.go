package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zaibaitech/asrar-sub000/internal/app"
	"github.com/zaibaitech/asrar-sub000/internal/db"
	"github.com/zaibaitech/asrar-sub000/internal/domain"
	"github.com/zaibaitech/asrar-sub000/internal/repository"
)

type profileService struct {
	profiles repository.UserProfileRepo
	uow      db.UnitOfWork
	clock    Clock
	observer UseCaseObserver
}

func NewProfileService(profiles repository.UserProfileRepo, uow db.UnitOfWork, clock Clock, observers ...UseCaseObserver) app.ProfileUseCase {
	return &profileService{
		profiles: profiles,
		uow:      uow,
		clock:    clockOrDefault(clock),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *profileService) Get(ctx context.Context) (*domain.UserProfile, error) {
	return s.profiles.Get(ctx)
}

// Save updates the current profile in place, creating one on first use.
func (s *profileService) Save(ctx context.Context, name string, element domain.Element) (p *domain.UserProfile, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"element": string(element)}
	defer func() {
		observe(ctx, s.observer, "save-profile", startedAt, fields, err)
	}()

	if !element.Valid() {
		return nil, fmt.Errorf("unknown element %q", element)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProfiles := repository.NewSQLiteUserProfileRepo(tx)

		existing, getErr := txProfiles.Get(ctx)
		switch {
		case errors.Is(getErr, repository.ErrNotFound):
			p = &domain.UserProfile{ID: uuid.New().String()}
			fields["created"] = true
		case getErr != nil:
			return getErr
		default:
			p = existing
		}

		if n := strings.TrimSpace(name); n != "" {
			p.Name = n
		}
		p.Element = element
		p.UpdatedAt = s.clock().UTC()
		return txProfiles.Upsert(ctx, p)
	})
	if err != nil {
		return nil, fmt.Errorf("saving profile: %w", err)
	}
	return p, nil
}
