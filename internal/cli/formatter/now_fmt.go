package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/zaibaitech/asrar-sub000/internal/app"
	"github.com/zaibaitech/asrar-sub000/internal/domain"
)

// FormatNow renders the current hour dashboard.
func FormatNow(resp *app.NowResponse) string {
	var b strings.Builder
	cur := resp.Current
	zone := resp.Location.TimeLocation()
	now := resp.GeneratedAt.In(zone)

	b.WriteString(locationLine(resp.Location, now))
	b.WriteString("\n\n")

	title := fmt.Sprintf("Hour %d of %d", cur.Index+1, domain.HoursPerDay)
	b.WriteString(Header(title))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(PlanetLabel(cur.Planet)), ElementBadge(cur.Planet.Element)))
	b.WriteString(fmt.Sprintf("%s  %s  %s\n",
		Dim(TimeSpan(cur.Start.In(zone), cur.End.In(zone))),
		DayNight(cur.IsDayHour),
		Dim(HourLength(cur.Duration())),
	))
	b.WriteString(HourProgress(cur, resp.GeneratedAt, 24))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Your element:"), ElementBadge(resp.Element)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Alignment:   "), QualityIndicator(resp.Alignment)))
	if resp.Alignment.Description != "" {
		b.WriteString(fmt.Sprintf("   %s\n", Dim(resp.Alignment.Description)))
	}
	b.WriteString("\n")

	b.WriteString(formatWindow(resp.Window, zone))

	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%d more %s hours before next sunrise", resp.FavorableLeft, resp.Element)))
	b.WriteString("\n")

	if w := Warnings(resp.Warnings); w != "" {
		b.WriteString("\n")
		b.WriteString(w)
	}
	return b.String()
}

func formatWindow(w domain.TimeWindow, zone *time.Location) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Closes in:"), UrgencyStyle(w.Urgency).Render(w.ClosesIn)))
	if w.NextOptimal == nil {
		b.WriteString(Dim("No hour of your element in the next 24h") + "\n")
		return b.String()
	}
	next := w.NextOptimal
	b.WriteString(fmt.Sprintf("%s %s %s %s\n",
		Dim("Next window:"),
		StyleFg.Render(next.Planet.Name),
		Dim("at "+ClockTime(next.Start.In(zone))),
		StyleBlue.Render("(in "+w.NextWindowIn+")"),
	))
	return b.String()
}

func locationLine(loc domain.UserLocation, now time.Time) string {
	line := fmt.Sprintf("%s  %s", StylePurple.Render(loc.DisplayName()), Dim(now.Format("Mon Jan 2 15:04 MST")))
	if !loc.IsAccurate {
		line += "  " + StyleYellow.Render("(approximate)")
	}
	return line
}
