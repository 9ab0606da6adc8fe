package domain

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"thintasks.dev/pkg/thintasks/internal/adapter"
	"thintasks.dev/pkg/thintasks/internal/domain/scanner"
	m "thintasks.dev/pkg/thintasks/internal/model"
	"thintasks.dev/pkg/thintasks/pkg/task"
)

// Catalog enumerates the handler files under the tasks root.
type Catalog interface {
	// Commands returns the command paths available under the root, without
	// reading any file.
	Commands(ctx context.Context) ([]string, error)
	// List scans every handler file and reports its type location and
	// whether a handler is registered for it.
	List(ctx context.Context) ([]m.TaskEntry, error)
}

type catalog struct {
	fsAdapter adapter.TaskFSAdapter
	registry  *task.Registry
	cfg       Config
}

// NewCatalog constructs a Catalog over the tasks root in cfg.
func NewCatalog(fsAdapter adapter.TaskFSAdapter, registry *task.Registry, cfg Config) Catalog {
	return &catalog{fsAdapter: fsAdapter, registry: registry, cfg: cfg.withDefaults()}
}

func (c *catalog) Commands(ctx context.Context) ([]string, error) {
	files, err := c.files(ctx)
	if err != nil {
		return nil, err
	}

	commands := make([]string, 0, len(files))
	for _, file := range files {
		commands = append(commands, c.commandFor(file))
	}

	return commands, nil
}

func (c *catalog) List(ctx context.Context) ([]m.TaskEntry, error) {
	files, err := c.files(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]m.TaskEntry, len(files))
	s := &scanner.Scanner{FS: c.fsAdapter.FS(), Dialect: c.cfg.Dialect, ChunkSize: c.cfg.ChunkSize}

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.NumCPU())

	for i, file := range files {
		i, file := i, file
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			entry := m.TaskEntry{
				Command: c.commandFor(file),
				Path:    c.fsAdapter.JoinPath(string(c.cfg.Root), string(file)),
			}

			loc, err := s.Scan(entry.Path)
			if err != nil {
				entry.Err = err
				entry.Error = err.Error()
			} else {
				entry.Location = loc
				entry.Type = loc.Key()
				_, entry.Registered = c.registry.Lookup(loc)
			}

			entries[i] = entry

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return entries, nil
}

// files returns the handler files relative to the root, sorted.
func (c *catalog) files(ctx context.Context) ([]m.Path, error) {
	var files []m.Path

	root := c.cfg.Root
	err := c.fsAdapter.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if info.IsDir() || filepath.Ext(path) != c.cfg.Extension {
			return nil
		}

		rel, err := c.fsAdapter.RelPath(root, m.Path(path))
		if err != nil {
			return err
		}

		files = append(files, rel)

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i] < files[j] })

	return files, nil
}

// commandFor maps a relative handler file to the words that route to it. A
// trailing default name is dropped since the directory alone reaches it.
func (c *catalog) commandFor(rel m.Path) string {
	trimmed := strings.TrimSuffix(filepath.ToSlash(string(rel)), c.cfg.Extension)
	segments := strings.Split(trimmed, "/")

	if segments[len(segments)-1] == c.cfg.DefaultName {
		segments = segments[:len(segments)-1]
	}

	return joinCommand(segments)
}

func joinCommand(segments []string) string {
	return strings.Join(segments, " ")
}
