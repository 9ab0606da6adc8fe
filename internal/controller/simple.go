package controller

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "thintasks.dev/pkg/thintasks/internal/model"
)

const rootCommandLabel = "(root)"

// SimpleUI implements UI by writing to the cobra command's output.
type SimpleUI struct {
	cmd    *cobra.Command
	styled bool
}

// NewSimpleUI creates a new SimpleUI. Styling is enabled only when the
// command writes to a terminal.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, styled: IsTTY(cmd.OutOrStdout())}
}

// DisplayCandidates prints the candidate table.
func (s *SimpleUI) DisplayCandidates(ctx context.Context, candidates []m.CandidatePath, present map[int]bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s\n%s", s.render(headingStyle, "Candidates"), renderCandidateTable(candidates, present))

	return nil
}

func renderCandidateTable(candidates []m.CandidatePath, present map[int]bool) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "Candidate", "Exists"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	found := 0

	for i, candidate := range candidates {
		mark := ""
		if present[i] {
			mark = "yes"
			found++
		}

		table.Append([]string{strconv.Itoa(i + 1), candidate.String(), mark})
	}

	table.SetFooter([]string{"", fmt.Sprintf("Total %d", len(candidates)), strconv.Itoa(found)})
	table.Render()

	return tableBuffer.String()
}

// DisplayResolution prints the winner and the scanned type.
func (s *SimpleUI) DisplayResolution(ctx context.Context, res m.Resolution) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s %s\n", s.render(headingStyle, "Winner:   "), s.render(commandStyle, res.Winner.String()))
	s.printf("Path:      %s\n", res.Path)
	s.printf("Type:      %s\n", res.Location)
	s.printf("Remaining: %s\n", strings.Join(res.Remaining, " "))

	if len(res.Args.Keyword) > 0 {
		s.printf("Keyword:   %s\n", formatKeywords(res.Args.Keyword))
	}

	return nil
}

func formatKeywords(keyword map[string]any) string {
	keys := make([]string, 0, len(keyword))
	for key := range keyword {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%v", key, keyword[key]))
	}

	return strings.Join(pairs, " ")
}

// DisplayTasks prints the task listing as a table or YAML.
func (s *SimpleUI) DisplayTasks(ctx context.Context, entries []m.TaskEntry, format Format) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if format == FormatYAML {
		encoder := yaml.NewEncoder(s.cmd.OutOrStdout())
		encoder.SetIndent(2)

		if err := encoder.Encode(entries); err != nil {
			return fmt.Errorf("encode tasks: %w", err)
		}

		return encoder.Close()
	}

	s.printf("%s", renderTaskTable(entries))

	return nil
}

func renderTaskTable(entries []m.TaskEntry) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Command", "Type", "Registered", "Path"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT,
	})

	registered := 0

	for _, entry := range entries {
		command := entry.Command
		if command == "" {
			command = rootCommandLabel
		}

		typ := entry.Type
		if entry.Error != "" {
			typ = "error: " + entry.Error
		}

		mark := "no"
		if entry.Registered {
			mark = "yes"
			registered++
		}

		table.Append([]string{command, typ, mark, string(entry.Path)})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(entries)), "", strconv.Itoa(registered), ""})
	table.Render()

	return tableBuffer.String()
}

// DisplayNotFound prints the failed command and close matches.
func (s *SimpleUI) DisplayNotFound(ctx context.Context, positional []string, suggestions []string) {
	if err := ctx.Err(); err != nil {
		return
	}

	out := s.cmd.ErrOrStderr()

	command := strings.Join(positional, " ")
	if command == "" {
		command = rootCommandLabel
	}

	_, _ = fmt.Fprintf(out, "%s %s\n", s.render(errorStyle, "No task for"), s.render(commandStyle, command))

	if len(suggestions) == 0 {
		_, _ = fmt.Fprintln(out, s.render(mutedStyle, "Run 'thintasks list' to see available tasks."))
		return
	}

	_, _ = fmt.Fprintln(out, "\nDid you mean this?")
	for _, suggestion := range suggestions {
		_, _ = fmt.Fprintf(out, "\t%s\n", s.render(commandStyle, suggestion))
	}
}

func (s *SimpleUI) render(style lipgloss.Style, text string) string {
	if !s.styled {
		return text
	}

	return style.Render(text)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
