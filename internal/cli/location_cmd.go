package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/zaibaitech/asrar-sub000/internal/cli/formatter"
)

func newLocationCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "location",
		Short: "Show or change the location hours are computed for",
	}
	cmd.AddCommand(
		newLocationShowCmd(a),
		newLocationSetCmd(a),
		newLocationRefreshCmd(a),
		newLocationClearCmd(a),
	)
	return cmd
}

func newLocationShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the saved location without contacting the network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.Location.Current(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLocation(res))
			return nil
		},
	}
}

func newLocationSetCmd(a *App) *cobra.Command {
	var (
		lat, lon float64
		in       locationInput
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Save a location by hand",
		Long:  "Save a location by hand. Without flags on a terminal an interactive form is shown.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			anyFlag := f.Changed("lat") || f.Changed("lon") || f.Changed("city") || f.Changed("tz")

			switch {
			case anyFlag:
				if !f.Changed("lat") || !f.Changed("lon") || !f.Changed("tz") {
					return fmt.Errorf("--lat, --lon and --tz are required")
				}
				in.Latitude = strconv.FormatFloat(lat, 'f', -1, 64)
				in.Longitude = strconv.FormatFloat(lon, 'f', -1, 64)
			case a.interactive():
				if err := locationForm(&in).Run(); err != nil {
					return err
				}
			default:
				return fmt.Errorf("--lat, --lon and --tz are required")
			}

			loc, err := in.location()
			if err != nil {
				return err
			}
			res, err := a.Location.Set(cmd.Context(), loc)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLocation(res))
			return nil
		},
	}
	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude in degrees, north positive")
	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude in degrees, east positive")
	cmd.Flags().StringVar(&in.City, "city", "", "city name shown in output")
	cmd.Flags().StringVar(&in.TimeZone, "tz", "", "IANA time zone, e.g. Asia/Riyadh")
	return cmd
}

func newLocationRefreshCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Detect the location again and save it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := func() {}
			if a.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Detecting location…")
			}
			res, err := a.Location.Refresh(cmd.Context())
			stop()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLocation(res))
			return nil
		},
	}
}

func newLocationClearCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forget the saved location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Location.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("Saved location cleared."))
			return nil
		},
	}
}
