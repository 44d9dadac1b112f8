package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/zaibaitech/asrar-sub000/internal/cli/formatter"
	"github.com/zaibaitech/asrar-sub000/internal/domain"
)

// asrarHuhTheme styles forms with the formatter palette.
func asrarHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// locationInput collects the raw strings of a manual location.
type locationInput struct {
	Latitude  string
	Longitude string
	City      string
	TimeZone  string
}

func (in locationInput) location() (domain.UserLocation, error) {
	lat, err := parseCoordinate(in.Latitude, 90)
	if err != nil {
		return domain.UserLocation{}, fmt.Errorf("latitude: %w", err)
	}
	lon, err := parseCoordinate(in.Longitude, 180)
	if err != nil {
		return domain.UserLocation{}, fmt.Errorf("longitude: %w", err)
	}
	return domain.UserLocation{
		Latitude:  lat,
		Longitude: lon,
		CityName:  strings.TrimSpace(in.City),
		TimeZone:  strings.TrimSpace(in.TimeZone),
	}, nil
}

func locationForm(in *locationInput) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Latitude").
				Placeholder("21.4225").
				Value(&in.Latitude).
				Validate(validateCoordinate(90)),
			huh.NewInput().
				Title("Longitude").
				Placeholder("39.8262").
				Value(&in.Longitude).
				Validate(validateCoordinate(180)),
			huh.NewInput().
				Title("City (optional)").
				Placeholder("Mecca").
				Value(&in.City),
			huh.NewInput().
				Title("Time Zone").
				Description("IANA name such as Asia/Riyadh").
				Placeholder("Asia/Riyadh").
				Value(&in.TimeZone).
				Validate(validateTimeZone),
		),
	).WithTheme(asrarHuhTheme()).WithShowHelp(false)
}

// profileInput collects the user's name and element.
type profileInput struct {
	Name    string
	Element domain.Element
}

func profileForm(in *profileInput) *huh.Form {
	options := make([]huh.Option[domain.Element], 0, len(domain.Elements))
	for _, e := range domain.Elements {
		options = append(options, huh.NewOption(e.Title()+" "+e.LocalizedName(), e))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("optional").
				Value(&in.Name),
			huh.NewSelect[domain.Element]().
				Title("Your Element").
				Description("From your name's numerology").
				Options(options...).
				Value(&in.Element),
		),
	).WithTheme(asrarHuhTheme()).WithShowHelp(false)
}

func parseCoordinate(s string, limit float64) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("enter a number")
	}
	if v < -limit || v > limit {
		return 0, fmt.Errorf("must be between %v and %v", -limit, limit)
	}
	return v, nil
}

func validateCoordinate(limit float64) func(string) error {
	return func(s string) error {
		_, err := parseCoordinate(s, limit)
		return err
	}
}

func validateTimeZone(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("time zone is required")
	}
	if _, err := time.LoadLocation(s); err != nil {
		return fmt.Errorf("unknown time zone")
	}
	return nil
}
