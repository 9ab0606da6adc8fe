// Package model defines the data structures shared by the router, the
// scanner and the CLI.
package model

import (
	"path/filepath"

	"thintasks.dev/pkg/thintasks/pkg/task"
)

// Path represents a file system path.
type Path string

// TypeLocation is the identity of a handler type discovered in a source file.
type TypeLocation = task.Location

// Arguments holds positional and keyed arguments of one invocation.
type Arguments = task.Arguments

// CandidatePath is one hypothesized handler location, relative to the tasks
// root and without extension.
type CandidatePath struct {
	Segments []string
	// Default is set when the last segment is the default name rather than a
	// positional argument.
	Default bool
}

// Consumed returns how many positional arguments the candidate accounts for.
func (c CandidatePath) Consumed() int {
	if c.Default {
		return len(c.Segments) - 1
	}

	return len(c.Segments)
}

// Rel joins the segments with the OS separator and appends ext.
func (c CandidatePath) Rel(ext string) string {
	return filepath.Join(c.Segments...) + ext
}

// String returns the slash-joined form used in output and logs.
func (c CandidatePath) String() string {
	return filepath.ToSlash(filepath.Join(c.Segments...))
}

// TaskEntry describes one handler file found under the tasks root.
type TaskEntry struct {
	Command    string       `yaml:"command"`
	Path       Path         `yaml:"path"`
	Location   TypeLocation `yaml:"-"`
	Type       string       `yaml:"type,omitempty"`
	Registered bool         `yaml:"registered"`
	Err        error        `yaml:"-"`
	Error      string       `yaml:"error,omitempty"`
}

// Resolution is the outcome of resolving an argument vector to a handler.
type Resolution struct {
	Args       Arguments
	Candidates []CandidatePath
	Winner     CandidatePath
	Path       Path
	Location   TypeLocation
	// Remaining are the positional arguments left for method dispatch.
	Remaining []string
}
