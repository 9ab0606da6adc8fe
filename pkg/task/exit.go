package task

import "fmt"

// ExitError lets a method choose the process exit code. The CLI exits with
// Code when a method returns it, possibly wrapped.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}

	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
