package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zaibaitech/asrar-sub000/internal/app"
	"github.com/zaibaitech/asrar-sub000/internal/cli/formatter"
	"github.com/zaibaitech/asrar-sub000/internal/domain"
)

func newHoursCmd(a *App) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "hours",
		Short: "List the 24 planetary hours of a day",
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

			req := app.HoursRequest{Now: at, Element: element}
			if cmd.Flags().Changed("date") {
				date, err := domain.ParseCivilDate(dateFlag)
				if err != nil {
					return err
				}
				req.Date = &date
			}
			if resolved != nil {
				req.Location = &resolved.Location
			}

			resp, err := a.Hours.Hours(cmd.Context(), req)
			if err != nil {
				return err
			}
			if resolved != nil {
				resp.Warnings = append(resolved.Warnings, resp.Warnings...)
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHours(resp))
			return nil
		},
	}
	cmd.Flags().StringVar(&dateFlag, "date", "", "day to list (YYYY-MM-DD, default today)")
	cmd.Flags().String("element", "", "score every hour against this element")
	return cmd
}
