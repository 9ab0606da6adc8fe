package cmd

import (
	"github.com/spf13/cobra"
)

const runLongDescription = `Resolve the arguments to a task handler and run one of its methods.

Flag parsing is disabled so keyed arguments reach the task untouched; set
global options through thintasks.yaml or THINTASKS_* environment variables.

` + routingHelp

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "run [words...] [--key[=value]...]",
		Short:              "Route arguments to a task handler and run it",
		Long:               runLongDescription,
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

			err = router.Route(cmd.Context(), args)
			reportNotFound(cmd, newUI(cmd), err)

			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
}
