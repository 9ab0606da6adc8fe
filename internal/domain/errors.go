package domain

import (
	"errors"
	"strings"

	"thintasks.dev/pkg/thintasks/internal/domain/scanner"
	m "thintasks.dev/pkg/thintasks/internal/model"
)

var (
	// ErrCommandNotFound is returned when no candidate path exists.
	ErrCommandNotFound = errors.New("command not found")
	// ErrHandlerNotRegistered is returned when a scanned location has no factory.
	ErrHandlerNotRegistered = errors.New("handler not registered")
	// ErrNoTypeDeclaration is returned when a handler file declares no type.
	ErrNoTypeDeclaration = scanner.ErrNoTypeDeclaration
	// ErrInvalidHandlerPath is returned when a resolved file cannot be opened.
	ErrInvalidHandlerPath = scanner.ErrInvalidHandlerPath
)

// NotFoundError carries the probe sequence that failed and any close matches
// among the commands available under the tasks root.
type NotFoundError struct {
	Positional  []string
	Candidates  []m.CandidatePath
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	if len(e.Positional) == 0 {
		return ErrCommandNotFound.Error()
	}

	return ErrCommandNotFound.Error() + ": " + strings.Join(e.Positional, " ")
}

// Unwrap lets errors.Is match ErrCommandNotFound.
func (e *NotFoundError) Unwrap() error {
	return ErrCommandNotFound
}
