package task

import (
	"context"
	"fmt"
)

// ArityError reports a parameter count that does not match the method.
type ArityError struct {
	Method   string
	Expected int
	Got      int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s: expects %d argument(s), got %d", e.Method, e.Expected, e.Got)
}

// Unwrap lets errors.Is match ErrArityMismatch.
func (e *ArityError) Unwrap() error {
	return ErrArityMismatch
}

// Dispatch picks a method of h and runs it.
//
// When the first remaining positional names a method, that method receives
// the rest as parameters. Otherwise the fallback method receives all of them.
func Dispatch(ctx context.Context, h Handler, fallback string, args Arguments, remaining []string) error {
	method, params, err := selectMethod(h.Methods(), fallback, remaining)
	if err != nil {
		return err
	}

	if len(params) != method.Arity {
		return &ArityError{Method: method.Name, Expected: method.Arity, Got: len(params)}
	}

	return method.Run(ctx, Call{Args: args, Params: params})
}

func selectMethod(methods []Method, fallback string, remaining []string) (Method, []string, error) {
	table := make(map[string]Method, len(methods))
	for _, method := range methods {
		table[method.Name] = method
	}

	if len(remaining) > 0 {
		if method, ok := table[remaining[0]]; ok {
			return method, remaining[1:], nil
		}
	}

	if method, ok := table[fallback]; ok {
		return method, remaining, nil
	}

	name := fallback
	if len(remaining) > 0 {
		name = remaining[0]
	}

	return Method{}, nil, fmt.Errorf("%q: %w", name, ErrMethodNotFound)
}
