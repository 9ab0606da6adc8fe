// Package controller provides output adapters for displaying routing results.
package controller

import (
	"context"
	"fmt"
	"strings"

	m "thintasks.dev/pkg/thintasks/internal/model"
)

// Format selects how task listings are rendered.
type Format string

// Available Format values.
const (
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a user supplied format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatTable, FormatYAML:
		return f, nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown format %q (want %s or %s)", name, FormatTable, FormatYAML)
	}
}

// UI defines the interface for displaying routing results.
// Implementations can use different output methods.
type UI interface {
	// DisplayCandidates shows the probe order and which candidates exist.
	DisplayCandidates(ctx context.Context, candidates []m.CandidatePath, present map[int]bool) error
	// DisplayResolution shows the winning candidate and what it resolved to.
	DisplayResolution(ctx context.Context, res m.Resolution) error
	// DisplayTasks lists the handler files found under the tasks root.
	DisplayTasks(ctx context.Context, entries []m.TaskEntry, format Format) error
	// DisplayNotFound reports a command that matched no candidate.
	DisplayNotFound(ctx context.Context, positional []string, suggestions []string)
}
