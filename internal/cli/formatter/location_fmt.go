package formatter

import (
	"fmt"
	"strings"

	"github.com/zaibaitech/asrar-sub000/internal/app"
	"github.com/zaibaitech/asrar-sub000/internal/domain"
)

// FormatLocation renders a location result with its provenance.
func FormatLocation(res *app.LocationResult) string {
	var b strings.Builder
	loc := res.Location

	b.WriteString(Header("Location"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("City:     "), StylePurple.Render(loc.DisplayName())))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Position: "), StyleFg.Render(fmt.Sprintf("%.4f, %.4f", loc.Latitude, loc.Longitude))))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Time zone:"), StyleFg.Render(domain.CoalesceStr(loc.TimeZone, "UTC"))))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Source:   "), sourceLabel(loc, res.Saved)))
	if !loc.UpdatedAt.IsZero() {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Updated:  "), Dim(loc.UpdatedAt.In(loc.TimeLocation()).Format("2006-01-02 15:04 MST"))))
	}

	if w := Warnings(res.Warnings); w != "" {
		b.WriteString("\n")
		b.WriteString(w)
	}
	return b.String()
}

func sourceLabel(loc domain.UserLocation, saved bool) string {
	var label string
	switch loc.Source {
	case domain.SourceGeo:
		label = StyleGreen.Render("● detected")
	case domain.SourceManual:
		label = StyleBlue.Render("● set manually")
	default:
		label = StyleYellow.Render("○ default (approximate)")
	}
	if !saved {
		label += " " + Dim("· not saved")
	}
	return label
}

// FormatProfile renders the saved user profile.
func FormatProfile(p *domain.UserProfile) string {
	var b strings.Builder
	b.WriteString(Header("Profile"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Name:   "), StyleFg.Render(domain.CoalesceStr(p.Name, "--"))))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Element:"), ElementBadge(p.Element)))
	if !p.UpdatedAt.IsZero() {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Updated:"), Dim(p.UpdatedAt.Local().Format("2006-01-02 15:04"))))
	}
	return b.String()
}
