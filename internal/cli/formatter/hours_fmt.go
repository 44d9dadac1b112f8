package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zaibaitech/asrar-sub000/internal/app"
	"github.com/zaibaitech/asrar-sub000/internal/domain"
	"github.com/zaibaitech/asrar-sub000/internal/planetary"
)

// FormatHours renders the 24-row table of one date, highlighting the
// current hour when it belongs to the table.
func FormatHours(resp *app.HoursResponse) string {
	var b strings.Builder
	seq := resp.Sequence
	zone := resp.Location.TimeLocation()
	today := domain.DateOf(resp.GeneratedAt.In(zone))

	b.WriteString(locationLine(resp.Location, resp.GeneratedAt.In(zone)))
	b.WriteString("\n\n")
	b.WriteString(Header(fmt.Sprintf("%s · %s · %s · day of %s",
		DayLabel(seq.Date, today), seq.Date, seq.Weekday, planetary.DayRuler(seq.Weekday).Name)))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("Day hours %s · Night hours %s",
		HourLength(seq.DayHourLength()), HourLength(seq.NightHourLength()))))
	b.WriteString("\n\n")

	headers := []string{"#", "TIME", "PLANET", "ELEMENT", ""}
	if len(resp.Alignments) > 0 {
		headers = append(headers, "ALIGNMENT")
	}
	rows := make([][]string, 0, len(seq.Hours))
	for i, h := range seq.Hours {
		row := []string{
			strconv.Itoa(h.Index + 1),
			TimeSpan(h.Start.In(zone), h.End.In(zone)),
			PlanetLabel(h.Planet),
			ElementBadge(h.Planet.Element),
			DayNight(h.IsDayHour),
		}
		if i < len(resp.Alignments) {
			row = append(row, QualityIndicator(resp.Alignments[i]))
		}
		rows = append(rows, row)
	}
	b.WriteString(RenderTable(headers, rows, resp.CurrentIndex))

	if resp.Element != "" {
		b.WriteString("\n")
		b.WriteString(Dim(fmt.Sprintf("%d of 24 hours belong to your element (%s)",
			planetary.CountElement(seq.Hours, resp.Element), resp.Element)))
		b.WriteString("\n")
	}

	if w := Warnings(resp.Warnings); w != "" {
		b.WriteString("\n")
		b.WriteString(w)
	}
	return b.String()
}
