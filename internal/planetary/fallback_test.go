package planetary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zaibaitech/asrar-sub000/internal/domain"
)

func fridayFallback(t *testing.T, start, end time.Time) *domain.HourSequence {
	t.Helper()
	return Fallback(solstice, SequenceFor(time.Friday), riyadh(t), start, end)
}

func TestFallback_TwentyFourHourBlocks(t *testing.T) {
	loc := riyadh(t)
	seq := fridayFallback(t, solstice.At(6, 0, loc), solstice.AddDays(1).At(6, 0, loc))

	require.Len(t, seq.Hours, domain.HoursPerDay)
	assert.True(t, seq.Degenerate)
	assert.True(t, seq.Start().Equal(solstice.At(6, 0, loc)))
	assert.True(t, seq.End().Equal(solstice.AddDays(1).At(6, 0, loc)))
	for i, h := range seq.Hours {
		assert.Equal(t, time.Hour, h.Duration(), "hour %d", i)
		assert.Equal(t, i < 12, h.IsDayHour, "hour %d", i)
		assert.Equal(t, SequenceFor(time.Friday)[i], h.Planet.ID, "hour %d", i)
	}
}

func TestFallback_PinnedSpanIsTiled(t *testing.T) {
	loc := riyadh(t)
	start := solstice.At(6, 0, loc)
	end := solstice.AddDays(1).At(11, 0, loc)

	seq := fridayFallback(t, start, end)

	require.Len(t, seq.Hours, domain.HoursPerDay)
	assert.True(t, seq.Start().Equal(start))
	assert.True(t, seq.End().Equal(end))
	for i := 1; i < len(seq.Hours); i++ {
		assert.True(t, seq.Hours[i].Start.Equal(seq.Hours[i-1].End), "gap before hour %d", i)
	}
	assert.InDelta(t, (29 * time.Hour / 24).Minutes(), seq.Hours[0].DurationMinutes(), 0.01)
}

func TestFallback_InvertedSpanUsesTwentyFourHours(t *testing.T) {
	loc := riyadh(t)
	start := solstice.At(6, 0, loc)

	seq := fridayFallback(t, start, start)
	assert.True(t, seq.End().Equal(start.Add(24*time.Hour)))
}

func TestFallbackStart_CustomAndInvalidHour(t *testing.T) {
	loc := riyadh(t)

	assert.True(t, FallbackStart(solstice, loc, 0).Equal(solstice.At(0, 0, loc)))
	assert.True(t, FallbackStart(solstice, loc, 24).Equal(solstice.At(DefaultFallbackStartHour, 0, loc)))
	assert.True(t, FallbackStart(solstice, loc, -1).Equal(solstice.At(DefaultFallbackStartHour, 0, loc)))
	assert.Equal(t, time.UTC, FallbackStart(solstice, nil, 6).Location())
}

func TestFallback_NilLocation(t *testing.T) {
	start := solstice.At(6, 0, time.UTC)
	seq := Fallback(solstice, SequenceFor(time.Friday), nil, start, start.Add(24*time.Hour))
	assert.Equal(t, time.UTC, seq.Location)
}
