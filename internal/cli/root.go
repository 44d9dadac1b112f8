package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/zaibaitech/asrar-sub000/internal/app"
)

// App holds the use cases the commands run against.
type App struct {
	Now      app.NowUseCase
	Hours    app.HoursUseCase
	Location app.LocationUseCase
	Profile  app.ProfileUseCase

	// TickInterval paces the watch loop; zero means one minute.
	TickInterval time.Duration
	// IsInteractive reports whether stdin is a terminal. Nil means it is not.
	IsInteractive func() bool
	Clock         func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Clock != nil {
		return a.Clock()
	}
	return time.Now()
}

func (a *App) tickInterval() time.Duration {
	if a.TickInterval <= 0 {
		return time.Minute
	}
	return a.TickInterval
}

// NewRootCmd creates the top-level "asrar" command. Run without a
// subcommand on a terminal it starts the live watch view.
func NewRootCmd(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "asrar",
		Short:         "Planetary hours for your location and element",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.interactive() {
				return runWatch(cmd, a)
			}
			return cmd.Help()
		},
	}
	root.PersistentFlags().AddFlagSet(globalFlags())

	root.AddCommand(
		newNowCmd(a),
		newHoursCmd(a),
		newWatchCmd(a),
		newLocationCmd(a),
		newProfileCmd(a),
	)
	return root
}

// globalFlags are shared by every command. --config is consumed before
// the command tree is built; see ConfigPath.
func globalFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("asrar", pflag.ContinueOnError)
	fs.String("config", "", "path to the YAML config file")
	fs.String("at", "", "evaluate at this instant (RFC3339, \"YYYY-MM-DD HH:MM\" or \"HH:MM\" local)")
	return fs
}

// ConfigPath extracts --config from raw command-line arguments, returning
// fallback when it is absent.
func ConfigPath(args []string, fallback string) string {
	var picked []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		if strings.HasPrefix(arg, "--config=") {
			picked = append(picked, arg)
			continue
		}
		if arg == "--config" && i+1 < len(args) {
			picked = append(picked, arg, args[i+1])
			i++
		}
	}

	fs := globalFlags()
	fs.SetOutput(io.Discard)
	if err := fs.Parse(picked); err != nil {
		return fallback
	}
	path, err := fs.GetString("config")
	if err != nil || path == "" {
		return fallback
	}
	return path
}

var atLayouts = []string{"2006-01-02 15:04", "2006-01-02T15:04"}

// parseAt reads an --at value. Instants without an offset are taken in
// zone; a bare HH:MM is placed on ref's date in zone.
func parseAt(s string, zone *time.Location, ref time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range atLayouts {
		if t, err := time.ParseInLocation(layout, s, zone); err == nil {
			return t, nil
		}
	}
	if clock, err := time.Parse("15:04", s); err == nil {
		y, m, d := ref.In(zone).Date()
		return time.Date(y, m, d, clock.Hour(), clock.Minute(), 0, 0, zone), nil
	}
	return time.Time{}, fmt.Errorf("--at %q: use RFC3339, \"YYYY-MM-DD HH:MM\" or \"HH:MM\"", s)
}

// hasZone reports whether an --at value fixes its own offset.
func hasZone(s string) bool {
	_, err := time.Parse(time.RFC3339, strings.TrimSpace(s))
	return err == nil
}
