package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/zaibaitech/asrar-sub000/internal/app"
	"github.com/zaibaitech/asrar-sub000/internal/cli/formatter"
	"github.com/zaibaitech/asrar-sub000/internal/domain"
)

func newNowCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "now",
		Short: "Show the planetary hour in effect and how it suits your element",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			element, err := elementFlag(cmd)
			if err != nil {
				return err
			}
			at, resolved, err := evalPoint(cmd, a)
			if err != nil {
				return err
			}

			req := app.NowRequest{Now: at, Element: element}
			if resolved != nil {
				req.Location = &resolved.Location
			}
			resp, err := a.Now.Now(cmd.Context(), req)
			if err != nil {
				return err
			}
			if resolved != nil {
				resp.Warnings = append(resolved.Warnings, resp.Warnings...)
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatNow(resp))
			return nil
		},
	}
	cmd.Flags().String("element", "", "score against this element instead of the saved one (fire, water, air, earth)")
	return cmd
}

func elementFlag(cmd *cobra.Command) (*domain.Element, error) {
	if !cmd.Flags().Changed("element") {
		return nil, nil
	}
	raw, _ := cmd.Flags().GetString("element")
	e, err := domain.ParseElement(raw)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// evalPoint reads --at. A value without its own offset needs the
// observer's zone, so the location is resolved here and handed back for
// the use case to reuse.
func evalPoint(cmd *cobra.Command, a *App) (*time.Time, *app.LocationResult, error) {
	raw, _ := cmd.Flags().GetString("at")
	if raw == "" {
		return nil, nil, nil
	}
	if hasZone(raw) {
		t, err := parseAt(raw, time.UTC, a.now())
		return &t, nil, err
	}

	res, err := a.Location.Resolve(cmd.Context())
	if err != nil {
		return nil, nil, err
	}
	t, err := parseAt(raw, res.Location.TimeLocation(), a.now())
	if err != nil {
		return nil, nil, err
	}
	return &t, res, nil
}
