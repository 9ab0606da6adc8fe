package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"thintasks.dev/pkg/thintasks/internal/controller"
)

const listLongDescription = `List the handler files under the tasks directory with the words that
route to them, the type each one declares and whether a handler is
registered for that type in this binary.`

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "list",
		Short:        "List task handler files",
		Long:         listLongDescription,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := controller.ParseFormat(viper.GetString(listFormatKey))
			if err != nil {
				return err
			}

			catalog, err := newCatalog()
			if err != nil {
				return err
			}

			entries, err := catalog.List(cmd.Context())
			if err != nil {
				return err
			}

			return newUI(cmd).DisplayTasks(cmd.Context(), entries, format)
		},
	}

	configureListFlags(cmd)

	return cmd
}

func configureListFlags(cmd *cobra.Command) {
	cmd.Flags().String(formatFlagName, viper.GetString(listFormatKey), "output format (table, yaml)")
	bindFlagToConfig(cmd.Flags().Lookup(formatFlagName), listFormatKey)
}

func init() {
	rootCmd.AddCommand(listCmd)
}
