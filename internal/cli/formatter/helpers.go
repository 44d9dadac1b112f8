package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/zaibaitech/asrar-sub000/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// DayLabel names date relative to today: "Today", "Tomorrow",
// "Yesterday" or "Mon, Jan 2".
func DayLabel(date, today domain.CivilDate) string {
	switch date {
	case today:
		return "Today"
	case today.AddDays(1):
		return "Tomorrow"
	case today.AddDays(-1):
		return "Yesterday"
	}
	return date.At(0, 0, time.UTC).Format("Mon, Jan 2")
}

// ClockTime formats t as HH:MM in its own zone.
func ClockTime(t time.Time) string {
	if t.IsZero() {
		return "--:--"
	}
	return t.Format("15:04")
}

// TimeSpan renders "05:33–06:40".
func TimeSpan(from, to time.Time) string {
	return ClockTime(from) + "–" + ClockTime(to)
}

// HourLength renders a planetary hour length with one decimal, e.g. "67.4 min".
func HourLength(d time.Duration) string {
	if d <= 0 {
		return "--"
	}
	return fmt.Sprintf("%.1f min", d.Minutes())
}

// PlanetLabel renders "Venus الزهرة".
func PlanetLabel(p domain.Planet) string {
	if p.LocalizedName == "" {
		return p.Name
	}
	return p.Name + " " + StyleDim.Render(p.LocalizedName)
}

// DayNight renders "☀ day" or "☾ night".
func DayNight(isDay bool) string {
	if isDay {
		return StyleYellow.Render("☀ day")
	}
	return StyleBlue.Render("☾ night")
}

// Warnings renders each warning on its own line, or "" when there are none.
func Warnings(ws []string) string {
	if len(ws) == 0 {
		return ""
	}
	var b strings.Builder
	for _, w := range ws {
		b.WriteString(fmt.Sprintf("%s %s\n", StyleYellow.Render("WARNING:"), Dim(w)))
	}
	return b.String()
}
