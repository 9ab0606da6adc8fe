// Package cmd provides the root command and CLI setup for thintasks.
//
// Programs that ship tasks import their task packages for side effects and
// call Execute:
//
//	import (
//		"thintasks.dev/pkg/thintasks/cmd"
//		_ "example.com/project/tasks/db"
//	)
//
//	func main() { cmd.Execute() }
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"thintasks.dev/pkg/thintasks/internal/adapter"
	"thintasks.dev/pkg/thintasks/internal/controller"
	"thintasks.dev/pkg/thintasks/internal/domain"
	"thintasks.dev/pkg/thintasks/internal/domain/scanner"
	m "thintasks.dev/pkg/thintasks/internal/model"
	"thintasks.dev/pkg/thintasks/pkg/task"
)

// Shared dependencies. Tests swap them for in-memory ones.
var (
	fsAdapter    adapter.TaskFSAdapter = adapter.NewLocalTaskFSAdapter()
	taskRegistry                       = task.Default
)

const routingHelp = `Positional words select a handler file under the tasks directory. For
"db migrate up" the files below are probed in order, first match wins:

  db/migrate/up/main.go  db/migrate/up.go
  db/migrate/main.go     db/migrate.go
  db/main.go             db.go
  main.go

Words left over pick a method of the handler type declared in that file.
Arguments starting with -, / or \ are passed as keyed values (--key=value).`

const rootLongDescription = `Thintasks routes command-line words to task handlers found on disk.

` + routingHelp

func init() {
	configureRootFlags(rootCmd)
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "thintasks",
		Short: "Route command-line words to task handlers",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringP(tasksDirFlagName, "d", viper.GetString(tasksDirKey), "directory holding the task handler files")
	bindFlagToConfig(flags.Lookup(tasksDirFlagName), tasksDirKey)

	flags.String(defaultNameFlagName, viper.GetString(tasksDefaultNameKey), "file name tried at every directory level")
	bindFlagToConfig(flags.Lookup(defaultNameFlagName), tasksDefaultNameKey)

	flags.String(extensionFlagName, viper.GetString(tasksExtensionKey), "handler file extension (default: the dialect's)")
	bindFlagToConfig(flags.Lookup(extensionFlagName), tasksExtensionKey)

	flags.String(dialectFlagName, viper.GetString(tasksDialectKey), "source dialect of handler files (go, brace)")
	bindFlagToConfig(flags.Lookup(dialectFlagName), tasksDialectKey)

	flags.String(logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)

	flags.BoolP(verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(exitCodeFor(err))
	}
}

// loadRouterConfig builds the router configuration from viper.
func loadRouterConfig() (domain.Config, error) {
	dialect, err := scanner.LookupDialect(viper.GetString(tasksDialectKey))
	if err != nil {
		return domain.Config{}, err
	}

	root, err := resolveTasksRoot(viper.GetString(tasksDirKey))
	if err != nil {
		return domain.Config{}, err
	}

	return domain.Config{
		Root:        root,
		DefaultName: viper.GetString(tasksDefaultNameKey),
		Extension:   viper.GetString(tasksExtensionKey),
		Dialect:     dialect,
		ChunkSize:   viper.GetInt(scanChunkSizeKey),
	}, nil
}

// resolveTasksRoot looks for a relative tasks directory in the working
// directory and its parents. A directory that is not found anywhere is
// returned as given so lookups report not found.
func resolveTasksRoot(dir string) (m.Path, error) {
	if dir == "" {
		return "", errors.New("tasks directory is empty")
	}

	if filepath.IsAbs(dir) {
		return m.Path(dir), nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	root, err := fsAdapter.FindTasksRoot(m.Path(wd), dir)
	if err != nil {
		slog.Debug("tasks directory not found", "dir", dir, "error", err)
		return m.Path(dir), nil
	}

	return root, nil
}

func newRouter() (domain.Router, error) {
	cfg, err := loadRouterConfig()
	if err != nil {
		return nil, err
	}

	return domain.NewRouter(fsAdapter, taskRegistry, cfg), nil
}

func newCatalog() (domain.Catalog, error) {
	cfg, err := loadRouterConfig()
	if err != nil {
		return nil, err
	}

	return domain.NewCatalog(fsAdapter, taskRegistry, cfg), nil
}

func newUI(cmd *cobra.Command) controller.UI {
	return controller.NewSimpleUI(cmd)
}

// reportNotFound shows suggestions when err is a not-found error.
func reportNotFound(cmd *cobra.Command, ui controller.UI, err error) {
	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		ui.DisplayNotFound(cmd.Context(), notFound.Positional, notFound.Suggestions)
	}
}

// wantsHelp reports whether raw arguments of a command with flag parsing
// disabled ask for help only.
func wantsHelp(args []string) bool {
	return len(args) == 1 && (args[0] == "-h" || args[0] == "--help")
}
