// Package adapter contains infrastructure adapters for the thintasks CLI.
package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	m "thintasks.dev/pkg/thintasks/internal/model"
)

// TaskFSAdapter abstracts the filesystem operations the router relies on when
// probing and reading handler files. It hides direct `os` access so routing
// can be tested against an in-memory tree.
type TaskFSAdapter interface {
	// Exists reports whether path names an existing non-directory entry.
	Exists(path m.Path) bool

	// Walk traverses root recursively.
	Walk(root m.Path, fn FilepathWalkFunc) error

	// FindTasksRoot searches for a directory named dir in start and its
	// parents and returns its path.
	FindTasksRoot(start m.Path, dir string) (m.Path, error)

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path

	// FS exposes the underlying filesystem for readers such as the scanner.
	FS() afero.Fs
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type into the domain.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalTaskFSAdapter implements TaskFSAdapter on top of an afero filesystem.
type LocalTaskFSAdapter struct {
	fs afero.Fs
}

// NewLocalTaskFSAdapter constructs an adapter backed by the OS filesystem.
func NewLocalTaskFSAdapter() *LocalTaskFSAdapter {
	return NewTaskFSAdapter(afero.NewOsFs())
}

// NewTaskFSAdapter constructs an adapter over fs.
func NewTaskFSAdapter(fs afero.Fs) *LocalTaskFSAdapter {
	return &LocalTaskFSAdapter{fs: fs}
}

// Exists stats path and reports whether it is a file.
func (a *LocalTaskFSAdapter) Exists(path m.Path) bool {
	info, err := a.fs.Stat(string(path))
	if err != nil {
		return false
	}

	return !info.IsDir()
}

// Walk iterates over every entry under root.
func (a *LocalTaskFSAdapter) Walk(root m.Path, fn FilepathWalkFunc) error {
	return afero.Walk(a.fs, string(root), func(path string, info os.FileInfo, err error) error {
		return fn(path, info, err)
	})
}

// FindTasksRoot walks up from start looking for a directory named dir.
func (a *LocalTaskFSAdapter) FindTasksRoot(start m.Path, dir string) (m.Path, error) {
	current := filepath.Clean(string(start))

	for {
		candidate := filepath.Join(current, dir)
		if ok, err := afero.DirExists(a.fs, candidate); err == nil && ok {
			return m.Path(candidate), nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", fmt.Errorf("%s not found in %s or any parent directory", dir, start)
		}

		current = parent
	}
}

// RelPath returns the relative path from base to target.
func (a *LocalTaskFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalTaskFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

// FS returns the underlying filesystem.
func (a *LocalTaskFSAdapter) FS() afero.Fs {
	return a.fs
}
