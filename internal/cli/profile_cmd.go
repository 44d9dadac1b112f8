package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zaibaitech/asrar-sub000/internal/cli/formatter"
	"github.com/zaibaitech/asrar-sub000/internal/domain"
	"github.com/zaibaitech/asrar-sub000/internal/repository"
)

func newProfileCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or change your element",
	}
	cmd.AddCommand(
		newProfileShowCmd(a),
		newProfileSetCmd(a),
		newProfileSetupCmd(a),
	)
	return cmd
}

func newProfileShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the saved profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.Profile.Get(cmd.Context())
			if errors.Is(err, repository.ErrNotFound) {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No profile saved. Run 'asrar profile set <element>'."))
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfile(p))
			return nil
		},
	}
}

func newProfileSetCmd(a *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:       "set <element>",
		Short:     "Save your element (fire, water, air, earth)",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"fire", "water", "air", "earth"},
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := domain.ParseElement(args[0])
			if err != nil {
				return err
			}
			p, err := a.Profile.Save(cmd.Context(), name, e)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfile(p))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "your name, kept for display")
	return cmd
}

func newProfileSetupCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Choose your element interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.interactive() {
				return fmt.Errorf("profile setup needs a terminal; use 'asrar profile set <element>'")
			}

			in := profileInput{Element: domain.ElementFire}
			if p, err := a.Profile.Get(cmd.Context()); err == nil {
				in.Name = p.Name
				in.Element = p.Element
			}
			if err := profileForm(&in).Run(); err != nil {
				return err
			}

			p, err := a.Profile.Save(cmd.Context(), in.Name, in.Element)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfile(p))
			return nil
		},
	}
}
