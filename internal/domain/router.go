package domain

import (
	"context"
	"fmt"
	"log/slog"

	"thintasks.dev/pkg/thintasks/internal/adapter"
	"thintasks.dev/pkg/thintasks/internal/domain/scanner"
	m "thintasks.dev/pkg/thintasks/internal/model"
	"thintasks.dev/pkg/thintasks/pkg/task"
)

// DefaultName is the fallback leaf tried at every directory level.
const DefaultName = "main"

// Config controls where and how handlers are looked up.
type Config struct {
	Root        m.Path
	DefaultName string
	// Extension is appended to every candidate. Empty means the dialect's.
	Extension string
	Dialect   scanner.Dialect
	ChunkSize int
}

func (c Config) withDefaults() Config {
	if c.DefaultName == "" {
		c.DefaultName = DefaultName
	}

	if c.Dialect.Name == "" {
		c.Dialect = scanner.GoDialect
	}

	if c.Extension == "" {
		c.Extension = c.Dialect.Extension
	}

	if c.ChunkSize <= 0 {
		c.ChunkSize = scanner.DefaultChunkSize
	}

	return c
}

// Router turns an argument vector into a handler invocation.
type Router interface {
	// Resolve finds and scans the handler file for args without running it.
	Resolve(ctx context.Context, args []string) (m.Resolution, error)
	// Route resolves args and dispatches to the handler method.
	Route(ctx context.Context, args []string) error
	// Probe reports the candidate order for args and which candidates exist.
	Probe(ctx context.Context, args []string) ([]m.CandidatePath, map[int]bool, error)
}

type router struct {
	fsAdapter adapter.TaskFSAdapter
	registry  *task.Registry
	catalog   Catalog
	scanner   *scanner.Scanner
	cfg       Config
}

// NewRouter constructs a Router backed by the provided filesystem adapter and
// handler registry.
func NewRouter(fsAdapter adapter.TaskFSAdapter, registry *task.Registry, cfg Config) Router {
	cfg = cfg.withDefaults()

	return &router{
		fsAdapter: fsAdapter,
		registry:  registry,
		catalog:   NewCatalog(fsAdapter, registry, cfg),
		scanner: &scanner.Scanner{
			FS:        fsAdapter.FS(),
			Dialect:   cfg.Dialect,
			ChunkSize: cfg.ChunkSize,
		},
		cfg: cfg,
	}
}

func (r *router) Resolve(ctx context.Context, raw []string) (m.Resolution, error) {
	if err := ctx.Err(); err != nil {
		return m.Resolution{}, err
	}

	args := ClassifyArguments(raw)
	candidates := GenerateCandidates(args.Positional, r.cfg.DefaultName)

	winner, err := ResolvePath(candidates, r.exists)
	if err != nil {
		return m.Resolution{Args: args, Candidates: candidates}, r.notFound(ctx, args.Positional, candidates)
	}

	path := r.pathOf(winner)
	slog.Debug("resolved handler file", "candidate", winner.String(), "path", path)

	loc, err := r.scanner.Scan(path)
	if err != nil {
		return m.Resolution{Args: args, Candidates: candidates, Winner: winner, Path: path}, err
	}

	return m.Resolution{
		Args:       args,
		Candidates: candidates,
		Winner:     winner,
		Path:       path,
		Location:   loc,
		Remaining:  clone(args.Positional[winner.Consumed():]),
	}, nil
}

func (r *router) Route(ctx context.Context, raw []string) error {
	res, err := r.Resolve(ctx, raw)
	if err != nil {
		return err
	}

	factory, ok := r.registry.Lookup(res.Location)
	if !ok {
		return fmt.Errorf("%s (%s): %w", res.Location, res.Path, ErrHandlerNotRegistered)
	}

	slog.Info("dispatching", "type", res.Location.Key(), "remaining", res.Remaining)

	return task.Dispatch(ctx, factory(), r.cfg.DefaultName, res.Args, res.Remaining)
}

func (r *router) Probe(ctx context.Context, raw []string) ([]m.CandidatePath, map[int]bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	candidates := GenerateCandidates(ClassifyArguments(raw).Positional, r.cfg.DefaultName)
	present := make(map[int]bool, len(candidates))

	for i, candidate := range candidates {
		present[i] = r.exists(candidate)
	}

	return candidates, present, nil
}

func (r *router) exists(candidate m.CandidatePath) bool {
	return r.fsAdapter.Exists(r.pathOf(candidate))
}

func (r *router) pathOf(candidate m.CandidatePath) m.Path {
	return r.fsAdapter.JoinPath(string(r.cfg.Root), candidate.Rel(r.cfg.Extension))
}

func (r *router) notFound(ctx context.Context, positional []string, candidates []m.CandidatePath) error {
	notFound := &NotFoundError{Positional: positional, Candidates: candidates}

	commands, err := r.catalog.Commands(ctx)
	if err != nil {
		slog.Warn("could not list commands for suggestions", "root", r.cfg.Root, "error", err)
		return notFound
	}

	notFound.Suggestions = Suggest(joinCommand(positional), commands)

	return notFound
}
