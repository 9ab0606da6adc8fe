package domain

import (
	"errors"
	"log/slog"

	m "thintasks.dev/pkg/thintasks/internal/model"
)

// GenerateCandidates returns the probe order for positional arguments, most
// specific first:
//
//	[full+default, full, full-1+default, full-1, ..., default]
//
// Each exact form follows the default-suffixed form of the same prefix. An
// empty positional list yields only [default].
func GenerateCandidates(positional []string, defaultName string) []m.CandidatePath {
	n := len(positional)
	candidates := make([]m.CandidatePath, 0, 2*n+1)

	candidates = append(candidates, withDefault(positional, defaultName))

	for size := n; size > 0; size-- {
		candidates = append(candidates, m.CandidatePath{Segments: clone(positional[:size])})
		candidates = append(candidates, withDefault(positional[:size-1], defaultName))
	}

	return candidates
}

func withDefault(prefix []string, defaultName string) m.CandidatePath {
	segments := make([]string, 0, len(prefix)+1)
	segments = append(segments, prefix...)
	segments = append(segments, defaultName)

	return m.CandidatePath{Segments: segments, Default: true}
}

func clone(s []string) []string {
	return append([]string(nil), s...)
}

// ResolvePath returns the first candidate for which exists holds.
func ResolvePath(candidates []m.CandidatePath, exists func(m.CandidatePath) bool) (m.CandidatePath, error) {
	for _, candidate := range candidates {
		if exists(candidate) {
			return candidate, nil
		}

		slog.Debug("candidate missing", "candidate", candidate.String())
	}

	return m.CandidatePath{}, ErrCommandNotFound
}

// IsNotFound reports whether err means no handler file matched.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCommandNotFound)
}
