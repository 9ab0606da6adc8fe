package controller

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	m "thintasks.dev/pkg/thintasks/internal/model"
)

func newTestUI() (*SimpleUI, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	return NewSimpleUI(cmd), &stdout, &stderr
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatTable, false},
		{"table", FormatTable, false},
		{" YAML ", FormatYAML, false},
		{"json", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSimpleUI_NotStyledOffTerminal(t *testing.T) {
	ui, _, _ := newTestUI()
	assert.False(t, ui.styled)
	assert.Equal(t, "plain", ui.render(errorStyle, "plain"))
}

func TestSimpleUI_DisplayCandidates(t *testing.T) {
	ui, stdout, _ := newTestUI()

	candidates := []m.CandidatePath{
		{Segments: []string{"foo", "main"}, Default: true},
		{Segments: []string{"foo"}},
		{Segments: []string{"main"}, Default: true},
	}

	require.NoError(t, ui.DisplayCandidates(context.Background(), candidates, map[int]bool{1: true}))

	out := stdout.String()
	assert.Contains(t, out, "Candidates")
	assert.Contains(t, out, "foo/main")
	assert.Contains(t, out, "yes")
	assert.Contains(t, out, "TOTAL 3")
}

func TestSimpleUI_DisplayResolution(t *testing.T) {
	ui, stdout, _ := newTestUI()

	res := m.Resolution{
		Args: m.Arguments{
			Positional: []string{"db", "up", "1"},
			Keyword:    map[string]any{"force": true, "env": "prod"},
		},
		Winner:    m.CandidatePath{Segments: []string{"db", "main"}, Default: true},
		Path:      "tasks/db/main.go",
		Location:  m.TypeLocation{Namespace: []string{"db"}, Name: "Main"},
		Remaining: []string{"up", "1"},
	}

	require.NoError(t, ui.DisplayResolution(context.Background(), res))

	out := stdout.String()
	assert.Contains(t, out, "Winner:    db/main")
	assert.Contains(t, out, "Path:      tasks/db/main.go")
	assert.Contains(t, out, "Type:      db.Main")
	assert.Contains(t, out, "Remaining: up 1")
	assert.Contains(t, out, "Keyword:   env=prod force=true")
}

func TestSimpleUI_DisplayTasksTable(t *testing.T) {
	ui, stdout, _ := newTestUI()

	entries := []m.TaskEntry{
		{Command: "", Path: "tasks/main.go", Type: "tasks.Root", Registered: true},
		{Command: "db helpers", Path: "tasks/db/helpers.go", Error: "no type declaration"},
	}

	require.NoError(t, ui.DisplayTasks(context.Background(), entries, FormatTable))

	out := stdout.String()
	assert.Contains(t, out, rootCommandLabel)
	assert.Contains(t, out, "tasks.Root")
	assert.Contains(t, out, "error: no type declaration")
	assert.Contains(t, out, "TOTAL 2")
}

func TestSimpleUI_DisplayTasksYAML(t *testing.T) {
	ui, stdout, _ := newTestUI()

	entries := []m.TaskEntry{
		{Command: "db migrate", Path: "tasks/db/migrate.go", Type: "db.Migrate", Registered: true},
	}

	require.NoError(t, ui.DisplayTasks(context.Background(), entries, FormatYAML))

	var decoded []map[string]any
	require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "db migrate", decoded[0]["command"])
	assert.Equal(t, "db.Migrate", decoded[0]["type"])
	assert.Equal(t, true, decoded[0]["registered"])
	assert.NotContains(t, decoded[0], "error")
}

func TestSimpleUI_DisplayNotFound(t *testing.T) {
	t.Run("with suggestions", func(t *testing.T) {
		ui, stdout, stderr := newTestUI()

		ui.DisplayNotFound(context.Background(), []string{"db", "migrat"}, []string{"db migrate"})

		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), "No task for db migrat")
		assert.Contains(t, stderr.String(), "Did you mean this?")
		assert.Contains(t, stderr.String(), "\tdb migrate\n")
	})

	t.Run("without suggestions", func(t *testing.T) {
		ui, _, stderr := newTestUI()

		ui.DisplayNotFound(context.Background(), nil, nil)

		assert.Contains(t, stderr.String(), "No task for (root)")
		assert.Contains(t, stderr.String(), "thintasks list")
	})
}

func TestSimpleUI_CanceledContext(t *testing.T) {
	ui, stdout, _ := newTestUI()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, ui.DisplayTasks(ctx, nil, FormatTable), context.Canceled)
	assert.Empty(t, stdout.String())
}
