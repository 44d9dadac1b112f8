package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/zaibaitech/asrar-sub000/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorOrange = lipgloss.Color("#fe8019")
	ColorAqua   = lipgloss.Color("#689d6a")
	ColorBrown  = lipgloss.Color("#d79921")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = ColorOrange
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// QualityStyle maps an alignment tier to a color, best to worst.
func QualityStyle(q domain.AlignmentQuality) lipgloss.Style {
	switch q {
	case domain.QualityPerfect:
		return StyleGreen.Bold(true)
	case domain.QualityStrong:
		return StyleGreen
	case domain.QualityModerate:
		return StyleYellow
	case domain.QualityWeak:
		return StyleDim
	case domain.QualityOpposing:
		return StyleRed
	default:
		return StyleDim
	}
}

// QualityIndicator renders a tier as "● STRONG (80)".
func QualityIndicator(a domain.ElementAlignment) string {
	if a.Quality == "" {
		return StyleDim.Render("--")
	}
	label := fmt.Sprintf("● %s (%d)", strings.ToUpper(string(a.Quality)), a.HarmonyScore)
	return QualityStyle(a.Quality).Render(label)
}

// UrgencyStyle colors the countdown of the current hour.
func UrgencyStyle(u domain.Urgency) lipgloss.Style {
	switch u {
	case domain.UrgencyHigh:
		return StyleRed.Bold(true)
	case domain.UrgencyMedium:
		return StyleYellow
	default:
		return StyleGreen
	}
}

// ElementBadge renders an element in its own color, e.g. "Fire نار".
func ElementBadge(e domain.Element) string {
	if e == "" {
		return StyleDim.Render("--")
	}
	var color lipgloss.Color
	switch e {
	case domain.ElementFire:
		color = ColorRed
	case domain.ElementWater:
		color = ColorBlue
	case domain.ElementAir:
		color = ColorAqua
	case domain.ElementEarth:
		color = ColorBrown
	default:
		return StyleDim.Render(string(e))
	}
	label := e.Title()
	if l := e.LocalizedName(); l != "" {
		label += " " + l
	}
	return lipgloss.NewStyle().Foreground(color).Render(label)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
