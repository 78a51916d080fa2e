package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhncrl04/smartspeak-sub001/pkg/smartspeak"
	"github.com/jhncrl04/smartspeak-sub001/pkg/smartspeak/constants"
)

func newMenuCmd(a *app) *cobra.Command {
	var roleName string

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Print the navigation menu a role sees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if roleName == "" {
				roleName = a.cfg.Session.Role
			}
			role, ok := constants.ParseRole(roleName)
			if !ok {
				return fmt.Errorf("unknown role %q (want guardian, teacher, or learner)", roleName)
			}

			catalog, err := smartspeak.Catalog()
			if err != nil {
				return err
			}

			r := smartspeak.DefaultRouter(role.HomeScreen())
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s menu (%s)\n", role, catalog.Language())
			for _, item := range smartspeak.Menu(r, role, catalog) {
				marker := " "
				if item.Focused {
					marker = ">"
				}
				fmt.Fprintf(out, "%s %s [%s]\n", marker, item.Text, item.Screen)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&roleName, "role", "", "role to show the menu for (default: session.role from config)")
	return cmd
}
