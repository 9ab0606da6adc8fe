package cmd

import (
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"thintasks.dev/pkg/thintasks/internal/domain/scanner"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the build version, the Go version and the supported source dialects.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			version := "unknown"
			goVersion := "unknown"

			if info, ok := debug.ReadBuildInfo(); ok {
				goVersion = info.GoVersion
				if info.Main.Version != "" {
					version = info.Main.Version
				}
			}

			cmd.Println("thintasks version\t", version)
			cmd.Println("go version\t", goVersion)
			cmd.Println("dialects\t", strings.Join(scanner.DialectNames(), ", "))
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
