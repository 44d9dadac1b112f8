package planetary

import (
	"sort"
	"time"

	"github.com/zaibaitech/asrar-sub000/internal/domain"
)

// Resolve returns the index of the hour containing now. Hours are sorted
// and non-overlapping, so a binary search on End suffices.
func Resolve(seq *domain.HourSequence, now time.Time) (int, bool) {
	if seq == nil || len(seq.Hours) == 0 {
		return -1, false
	}
	i := sort.Search(len(seq.Hours), func(i int) bool {
		return seq.Hours[i].End.After(now)
	})
	if i < len(seq.Hours) && seq.Hours[i].Contains(now) {
		return i, true
	}
	return -1, false
}

// MarkCurrent flags the hour containing now and clears every other flag.
// Calling it again with the same now is a no-op.
func MarkCurrent(seq *domain.HourSequence, now time.Time) (int, bool) {
	if seq == nil {
		return -1, false
	}
	idx, ok := Resolve(seq, now)
	for i := range seq.Hours {
		seq.Hours[i].IsCurrent = ok && i == idx
	}
	return idx, ok
}

// BuildFunc produces the table for a civil date.
type BuildFunc func(date domain.CivilDate) *domain.HourSequence

// Resolution is the outcome of ResolveWithBoundary. Sequence is the table
// that contains now, which may be the previous or next day's table.
type Resolution struct {
	Sequence *domain.HourSequence
	Index    int
	Found    bool
	Shifted  int
}

// Current returns the resolved hour.
func (r Resolution) Current() (domain.PlanetaryHour, bool) {
	if !r.Found {
		return domain.PlanetaryHour{}, false
	}
	return r.Sequence.Hours[r.Index], true
}

// ResolveWithBoundary resolves now against seq. Before the first sunrise
// of seq the night of the previous date is still running, so the previous
// date's table is built and used instead. Past the end of seq the next
// date's table is used. When nothing contains now, Found is false.
func ResolveWithBoundary(now time.Time, seq *domain.HourSequence, build BuildFunc) Resolution {
	if seq == nil {
		return Resolution{Index: -1}
	}
	candidate, shifted := seq, 0
	switch {
	case len(seq.Hours) > 0 && now.Before(seq.Start()) && build != nil:
		candidate, shifted = build(seq.Date.AddDays(-1)), -1
	case len(seq.Hours) > 0 && !now.Before(seq.End()) && build != nil:
		candidate, shifted = build(seq.Date.AddDays(1)), 1
	}
	if candidate == nil {
		return Resolution{Sequence: seq, Index: -1}
	}
	if candidate != seq {
		MarkCurrent(seq, now)
	}
	idx, ok := MarkCurrent(candidate, now)
	return Resolution{Sequence: candidate, Index: idx, Found: ok, Shifted: shifted}
}
