package domain

import (
	"strings"

	m "thintasks.dev/pkg/thintasks/internal/model"
)

// FlagMarkers are the leading characters that make an argument keyed.
const FlagMarkers = `-/\`

// ClassifyArguments splits raw arguments into positional and keyed ones.
// Keyed arguments lose their markers and split on the first '='; a key
// without a value maps to true. Later duplicates win.
func ClassifyArguments(raw []string) m.Arguments {
	args := m.Arguments{
		Positional: make([]string, 0, len(raw)),
		Keyword:    make(map[string]any),
	}

	for _, arg := range raw {
		if arg == "" || !strings.ContainsRune(FlagMarkers, rune(arg[0])) {
			args.Positional = append(args.Positional, arg)
			continue
		}

		key, value, ok := strings.Cut(strings.TrimLeft(arg, FlagMarkers), "=")
		if ok {
			args.Keyword[key] = value
		} else {
			args.Keyword[key] = true
		}
	}

	return args
}
