package cmd

import (
	"bytes"
	"path"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"thintasks.dev/pkg/thintasks/internal/adapter"
	"thintasks.dev/pkg/thintasks/pkg/task"
)

const testTasksRoot = "/work/tasks"

// withTasks installs an in-memory tasks tree and an empty registry for the
// duration of the test.
func withTasks(t *testing.T, files map[string]string) *task.Registry {
	t.Helper()

	fs := afero.NewMemMapFs()
	for rel, contents := range files {
		full := path.Join(testTasksRoot, rel)
		require.NoError(t, fs.MkdirAll(path.Dir(full), 0o755))
		require.NoError(t, afero.WriteFile(fs, full, []byte(contents), 0o644))
	}

	registry := task.NewRegistry()

	originalFS, originalRegistry := fsAdapter, taskRegistry
	fsAdapter, taskRegistry = adapter.NewTaskFSAdapter(fs), registry

	t.Cleanup(func() {
		fsAdapter, taskRegistry = originalFS, originalRegistry
	})

	t.Setenv("THINTASKS_TASKS_DIR", testTasksRoot)
	t.Setenv("THINTASKS_LOG_FILENAME", filepath.Join(t.TempDir(), "thintasks.log"))

	return registry
}

func executeCommand(args ...string) (string, string, error) {
	root := newRootCmd()
	root.AddCommand(newRunCmd(), newWhichCmd(), newListCmd(), newInitCmd(), newVersionCmd())

	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

var sampleTasks = map[string]string{
	"main.go":       "package tasks\n\ntype Root struct{}\n",
	"db/migrate.go": "package db\n\nimport \"fmt\"\n\n// Migrate applies schema changes.\ntype Migrate struct{}\n\nfunc (Migrate) run() { fmt.Println() }\n",
	"db/seed.go":    "package db\n\ntype Seed struct{}\n",
	"db/util.go":    "package db\n\nfunc helper() {}\n",
}
