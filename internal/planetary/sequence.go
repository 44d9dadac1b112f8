package planetary

import (
	"fmt"
	"time"

	"github.com/zaibaitech/asrar-sub000/internal/domain"
)

// WeekdaySequence lists the rulers of the 24 hours of one weekday, day-hours
// first.
type WeekdaySequence [domain.HoursPerDay]domain.PlanetID

// Planet returns the ruling planet of hour i.
func (s WeekdaySequence) Planet(i int) domain.Planet {
	return domain.MustPlanet(s[i])
}

const (
	su = domain.PlanetSun
	mo = domain.PlanetMoon
	ma = domain.PlanetMars
	me = domain.PlanetMercury
	ju = domain.PlanetJupiter
	ve = domain.PlanetVenus
	sa = domain.PlanetSaturn
)

// chaldeanOrder runs from the slowest planet to the fastest. Each hour is
// ruled by the entry following the previous hour's ruler.
var chaldeanOrder = [7]domain.PlanetID{sa, ju, ma, su, ve, me, mo}

// dayRulers is the ruler of each weekday's first hour.
var dayRulers = [7]domain.PlanetID{
	time.Sunday:    su,
	time.Monday:    mo,
	time.Tuesday:   ma,
	time.Wednesday: me,
	time.Thursday:  ju,
	time.Friday:    ve,
	time.Saturday:  sa,
}

var weekdaySequences = [7]WeekdaySequence{
	time.Sunday: {
		su, ve, me, mo, sa, ju, ma,
		su, ve, me, mo, sa, ju, ma,
		su, ve, me, mo, sa, ju, ma,
		su, ve, me,
	},
	time.Monday: {
		mo, sa, ju, ma, su, ve, me,
		mo, sa, ju, ma, su, ve, me,
		mo, sa, ju, ma, su, ve, me,
		mo, sa, ju,
	},
	time.Tuesday: {
		ma, su, ve, me, mo, sa, ju,
		ma, su, ve, me, mo, sa, ju,
		ma, su, ve, me, mo, sa, ju,
		ma, su, ve,
	},
	time.Wednesday: {
		me, mo, sa, ju, ma, su, ve,
		me, mo, sa, ju, ma, su, ve,
		me, mo, sa, ju, ma, su, ve,
		me, mo, sa,
	},
	time.Thursday: {
		ju, ma, su, ve, me, mo, sa,
		ju, ma, su, ve, me, mo, sa,
		ju, ma, su, ve, me, mo, sa,
		ju, ma, su,
	},
	time.Friday: {
		ve, me, mo, sa, ju, ma, su,
		ve, me, mo, sa, ju, ma, su,
		ve, me, mo, sa, ju, ma, su,
		ve, me, mo,
	},
	time.Saturday: {
		sa, ju, ma, su, ve, me, mo,
		sa, ju, ma, su, ve, me, mo,
		sa, ju, ma, su, ve, me, mo,
		sa, ju, ma,
	},
}

func init() {
	if err := ValidateSequences(); err != nil {
		panic(err)
	}
}

// SequenceFor returns the hour rulers for weekday wd.
func SequenceFor(wd time.Weekday) WeekdaySequence {
	return weekdaySequences[(int(wd)%7+7)%7]
}

// DayRuler returns the traditional ruler of weekday wd.
func DayRuler(wd time.Weekday) domain.Planet {
	return domain.MustPlanet(dayRulers[(int(wd)%7+7)%7])
}

// ValidateSequences checks the weekday table against the Chaldean
// succession: every row starts with its day ruler, each hour follows the
// previous one in Chaldean order, and the hour after a row's last hour is
// the next weekday's ruler.
func ValidateSequences() error {
	next := make(map[domain.PlanetID]domain.PlanetID, len(chaldeanOrder))
	for i, p := range chaldeanOrder {
		next[p] = chaldeanOrder[(i+1)%len(chaldeanOrder)]
	}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		seq := weekdaySequences[wd]
		for i, id := range seq {
			if _, ok := domain.PlanetByID(id); !ok {
				return fmt.Errorf("%s hour %d: unknown planet %q", wd, i+1, id)
			}
		}
		if seq[0] != dayRulers[wd] {
			return fmt.Errorf("%s starts with %s, want %s", wd, seq[0], dayRulers[wd])
		}
		for i := 1; i < len(seq); i++ {
			if want := next[seq[i-1]]; seq[i] != want {
				return fmt.Errorf("%s hour %d is %s, want %s", wd, i+1, seq[i], want)
			}
		}
		following := dayRulers[(wd+1)%7]
		if got := next[seq[len(seq)-1]]; got != following {
			return fmt.Errorf("%s does not roll over into %s (got %s)", wd, following, got)
		}
	}
	return nil
}
