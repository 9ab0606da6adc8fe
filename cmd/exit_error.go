package cmd

import (
	"errors"

	"thintasks.dev/pkg/thintasks/internal/domain"
	"thintasks.dev/pkg/thintasks/pkg/task"
)

// Process exit codes.
const (
	exitCodeError      = 1
	exitCodeNotFound   = 2
	exitCodeBadHandler = 3
)

// exitCodeFor maps an error returned by a command to a process exit code.
// A task method picks its own code by returning a *task.ExitError.
func exitCodeFor(err error) int {
	var exitErr *task.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case domain.IsNotFound(err):
		return exitCodeNotFound
	case errors.Is(err, domain.ErrNoTypeDeclaration),
		errors.Is(err, domain.ErrInvalidHandlerPath),
		errors.Is(err, domain.ErrHandlerNotRegistered):
		return exitCodeBadHandler
	default:
		return exitCodeError
	}
}
