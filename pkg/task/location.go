// Package task is the public surface for task authors: handler identity,
// argument values, the handler registry and method dispatch.
package task

import "strings"

// Location identifies a handler type by the namespace it is declared in and
// its declared name, as discovered by scanning the handler's source file.
type Location struct {
	Namespace []string
	Name      string
}

// NewLocation builds a Location from a dotted key such as "db.Migrate".
func NewLocation(key string) Location {
	parts := strings.Split(key, ".")

	return Location{
		Namespace: parts[:len(parts)-1],
		Name:      parts[len(parts)-1],
	}
}

// Key returns the dotted form used to index the registry.
func (l Location) Key() string {
	if len(l.Namespace) == 0 {
		return l.Name
	}

	return strings.Join(l.Namespace, ".") + "." + l.Name
}

// String implements fmt.Stringer.
func (l Location) String() string {
	return l.Key()
}

// Arguments holds the classified command-line arguments for one invocation.
// Keyword values are either a string (from key=value) or the boolean true.
type Arguments struct {
	Positional []string
	Keyword    map[string]any
}

// Has reports whether a keyed argument was given.
func (a Arguments) Has(key string) bool {
	_, ok := a.Keyword[key]
	return ok
}

// String returns the string value of a keyed argument. Bare flags have no
// string value.
func (a Arguments) String(key string) (string, bool) {
	v, ok := a.Keyword[key].(string)
	return v, ok
}

// Bool reports whether a keyed argument was given as a bare flag.
func (a Arguments) Bool(key string) bool {
	v, ok := a.Keyword[key].(bool)
	return ok && v
}
