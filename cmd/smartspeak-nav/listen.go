package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jhncrl04/smartspeak-sub001/pkg/smartspeak"
	"github.com/jhncrl04/smartspeak-sub001/pkg/smartspeak/constants"
	"github.com/jhncrl04/smartspeak-sub001/pkg/smartspeak/router"
)

func newListenCmd(a *app) *cobra.Command {
	var device string

	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Drive a navigation session from the hardware back and home buttons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := a.cfg.Input
			if device != "" {
				input.Device = device
			}

			catalog, err := smartspeak.Catalog()
			if err != nil {
				return err
			}

			logger := smartspeak.GetLogger()
			role := a.cfg.Role()
			r := smartspeak.DefaultRouter(a.cfg.Session.StartScreen(), router.WithLogger(logger))
			session := smartspeak.NewSession(r)
			defer session.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			listener, err := smartspeak.StartButtons(ctx, input)
			if err != nil {
				return err
			}
			defer listener.Stop()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "listening on %s as %s, on %s\n", input.Device, role, catalog.Title(session.CurrentScreen()))

			for press := range listener.Presses() {
				switch press.Button {
				case constants.HardwareButtonBack:
					r.GoBack()
				case constants.HardwareButtonHome:
					if err := session.NavigateTo(role.HomeScreen()); err != nil {
						return err
					}
				}
				fmt.Fprintf(out, "%s: %s %v\n", press.Button.GetName(), catalog.Title(session.CurrentScreen()), session.History())
			}

			logger.Info("button listener stopped", "presses", listener.Count(), "session", session.ID())
			return nil
		},
	}

	cmd.Flags().StringVar(&device, "device", "", "evdev input device (default: input.device from config)")
	return cmd
}
