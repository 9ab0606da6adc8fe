package domain

import "sort"

// maxSuggestDistance is the largest edit distance still worth suggesting.
const maxSuggestDistance = 3

// maxSuggestions caps how many commands Suggest returns.
const maxSuggestions = 3

// Suggest returns the commands closest to unknown, nearest first.
func Suggest(unknown string, commands []string) []string {
	type scored struct {
		command  string
		distance int
	}

	var matches []scored

	seen := make(map[string]bool, len(commands))
	for _, command := range commands {
		if command == "" || command == unknown || seen[command] {
			continue
		}

		seen[command] = true

		if distance := levenshtein(unknown, command); distance <= maxSuggestDistance {
			matches = append(matches, scored{command: command, distance: distance})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].distance != matches[j].distance {
			return matches[i].distance < matches[j].distance
		}

		return matches[i].command < matches[j].command
	})

	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}

	suggestions := make([]string, 0, len(matches))
	for _, match := range matches {
		suggestions = append(suggestions, match.command)
	}

	return suggestions
}

// levenshtein computes the edit distance between a and b over runes.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	previous := make([]int, len(rb)+1)
	current := make([]int, len(rb)+1)

	for j := range previous {
		previous[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		current[0] = i

		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			current[j] = min(previous[j]+1, current[j-1]+1, previous[j-1]+cost)
		}

		previous, current = current, previous
	}

	return previous[len(rb)]
}
