package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "thintasks.dev/pkg/thintasks/internal/model"
	"thintasks.dev/pkg/thintasks/pkg/task"
)

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "thintasks", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)

	for _, name := range []string{tasksDirFlagName, defaultNameFlagName, extensionFlagName, dialectFlagName, logFileFlagName, verboseFlagName} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}

	assert.Equal(t, "d", cmd.PersistentFlags().Lookup(tasksDirFlagName).Shorthand)
	assert.Equal(t, "v", cmd.PersistentFlags().Lookup(verboseFlagName).Shorthand)
}

func TestRootCmd_HelpOutput(t *testing.T) {
	t.Setenv("THINTASKS_LOG_FILENAME", filepath.Join(t.TempDir(), "thintasks.log"))

	stdout, _, err := executeCommand()

	require.NoError(t, err)
	assert.Contains(t, stdout, "Usage:")
	assert.Contains(t, stdout, "db/migrate/up/main.go")
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	for _, want := range []string{"run", "which", "list", "init", "version"} {
		assert.True(t, names[want], want)
	}
}

func TestResolveTasksRoot(t *testing.T) {
	t.Run("absolute path is kept", func(t *testing.T) {
		abs := filepath.Join(t.TempDir(), "tasks")
		got, err := resolveTasksRoot(abs)
		require.NoError(t, err)
		assert.Equal(t, m.Path(abs), got)
	})

	t.Run("found in a parent directory", func(t *testing.T) {
		base := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(base, "tasks"), 0o755))
		nested := filepath.Join(base, "a", "b")
		require.NoError(t, os.MkdirAll(nested, 0o755))

		originalWD, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(nested))
		t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

		got, err := resolveTasksRoot("tasks")
		require.NoError(t, err)

		want, err := filepath.EvalSymlinks(filepath.Join(base, "tasks"))
		require.NoError(t, err)
		gotResolved, err := filepath.EvalSymlinks(string(got))
		require.NoError(t, err)
		assert.Equal(t, want, gotResolved)
	})

	t.Run("missing directory is returned as given", func(t *testing.T) {
		got, err := resolveTasksRoot("no-such-tasks-dir-xyz")
		require.NoError(t, err)
		assert.Equal(t, m.Path("no-such-tasks-dir-xyz"), got)
	})

	t.Run("empty is an error", func(t *testing.T) {
		_, err := resolveTasksRoot("")
		assert.Error(t, err)
	})
}

func TestLoadRouterConfig_UnknownDialect(t *testing.T) {
	withTasks(t, nil)
	t.Setenv("THINTASKS_TASKS_DIALECT", "cobol")

	_, err := loadRouterConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cobol")
}

func TestWantsHelp(t *testing.T) {
	assert.True(t, wantsHelp([]string{"--help"}))
	assert.True(t, wantsHelp([]string{"-h"}))
	assert.False(t, wantsHelp([]string{"db", "--help"}))
	assert.False(t, wantsHelp(nil))
}

func TestExecute(t *testing.T) {
	originalRootCmd := rootCmd
	defer func() {
		rootCmd = originalRootCmd
	}()

	mockCmd := &cobra.Command{
		Use: "test",
		RunE: func(_ *cobra.Command, _ []string) error {
			return nil
		},
	}
	mockCmd.SetOut(&bytes.Buffer{})
	mockCmd.SetErr(&bytes.Buffer{})
	mockCmd.SetArgs([]string{})

	rootCmd = mockCmd

	// Execute should not exit on success.
	Execute()
}

func TestExecute_ProcessLevel_Success(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS") == "1" {
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(_ *cobra.Command, _ []string) error {
				fmt.Println("success")
				return nil
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		mockCmd.SetArgs([]string{})
		rootCmd = mockCmd

		Execute()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Success")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS=1")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, string(output), "success")
}

func TestExecute_ProcessLevel_ExitCodes(t *testing.T) {
	if code := os.Getenv("TEST_EXECUTE_SUBPROCESS_CODE"); code != "" {
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(_ *cobra.Command, _ []string) error {
				fmt.Fprintln(os.Stderr, "error occurred")

				switch code {
				case "notfound":
					return fmt.Errorf("route: %w", &notFoundForTest)
				case "exit":
					return &task.ExitError{Code: 7, Err: fmt.Errorf("custom")}
				default:
					return fmt.Errorf("command failed")
				}
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		mockCmd.SetArgs([]string{})
		rootCmd = mockCmd

		Execute()
		return
	}

	tests := []struct {
		code string
		want int
	}{
		{"generic", exitCodeError},
		{"notfound", exitCodeNotFound},
		{"exit", 7},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_ExitCodes")
			cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_CODE="+tt.code)
			output, err := cmd.CombinedOutput()

			require.Error(t, err)

			var exitErr *exec.ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, tt.want, exitErr.ExitCode())
			assert.Contains(t, string(output), "error occurred")
		})
	}
}
