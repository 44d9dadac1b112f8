package service

import (
	"time"

	"github.com/zaibaitech/asrar-sub000/internal/app"
)

// HourService answers both the single-hour and the full-table questions
// from one shared recalculation state.
type HourService interface {
	app.NowUseCase
	app.HoursUseCase
}

// Clock returns the current instant.
type Clock func() time.Time

func clockOrDefault(c Clock) Clock {
	if c == nil {
		return time.Now
	}
	return c
}
