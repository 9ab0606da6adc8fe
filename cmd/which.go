package cmd

import (
	"github.com/spf13/cobra"
)

const whichLongDescription = `Show how the arguments would be routed without running anything: every
candidate file in probe order, which of them exist, the winner, the type
declared in it and the words left for method dispatch.

` + routingHelp

// whichCmd represents the which command.
var whichCmd = newWhichCmd()

func newWhichCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "which [words...] [--key[=value]...]",
		Short:              "Explain how arguments resolve to a task handler",
		Long:               whichLongDescription,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if wantsHelp(args) {
				return cmd.Help()
			}

			router, err := newRouter()
			if err != nil {
				return err
			}

			ui := newUI(cmd)

			candidates, present, err := router.Probe(cmd.Context(), args)
			if err != nil {
				return err
			}

			if err := ui.DisplayCandidates(cmd.Context(), candidates, present); err != nil {
				return err
			}

			res, err := router.Resolve(cmd.Context(), args)
			if err != nil {
				reportNotFound(cmd, ui, err)
				return err
			}

			return ui.DisplayResolution(cmd.Context(), res)
		},
	}
}

func init() {
	rootCmd.AddCommand(whichCmd)
}
