package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhncrl04/smartspeak-sub001/pkg/smartspeak"
	"github.com/jhncrl04/smartspeak-sub001/pkg/smartspeak/navhistory"
	"github.com/jhncrl04/smartspeak-sub001/pkg/smartspeak/router"
	"github.com/jhncrl04/smartspeak-sub001/pkg/smartspeak/scenario"
)

func newReplayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "replay FILE",
		Short: "Replay a scripted navigation flow and print the history after each step",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scenario.Load(args[0])
			if err != nil {
				return err
			}

			logger := smartspeak.GetLogger()
			r := smartspeak.DefaultRouter(s.Start, router.WithLogger(logger))

			res, err := scenario.Replay(cmd.Context(), s, r, logger)
			if err != nil {
				return err
			}
			return printReplay(cmd.OutOrStdout(), res)
		},
	}
}

func printReplay(out io.Writer, res *scenario.Result) error {
	name := res.Name
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Fprintf(out, "scenario: %s\n", name)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tACTION\tSCREEN\tDECISION\tHISTORY\tROUTER")
	for i, sr := range res.Steps {
		decision := "-"
		if sr.Step.Action == scenario.StepNavigate {
			decision = sr.Decision.Action.String()
			if sr.Decision.Action == navhistory.ActionBack {
				decision = fmt.Sprintf("back x%d", sr.Decision.Steps)
			}
		}
		screen := "-"
		if sr.Step.Screen != nil {
			screen = fmt.Sprintf("%q", sr.Step.Target())
		}
		routerCol := fmt.Sprint(sr.Stack)
		if !sr.InSync() {
			routerCol += " (differs)"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%v\t%s\n", i+1, sr.Step.Action, screen, decision, sr.History, routerCol)
	}
	return w.Flush()
}
