package scanner

import (
	"fmt"
	"sort"
	"strings"
)

// Dialect describes the handful of lexical rules the scanner needs for one
// family of source files.
type Dialect struct {
	Name      string
	Extension string

	// NamespaceKeywords start a namespace capture.
	NamespaceKeywords []string
	// TypeKeywords start a type declaration.
	TypeKeywords []string
	// Reserved words are never taken as a type name.
	Reserved []string

	// AutoTerminate inserts a statement terminator at a newline that follows
	// an identifier, literal or closing bracket.
	AutoTerminate bool
	// FoldCase matches keywords case-insensitively.
	FoldCase bool
	// HashComments treats '#' as the start of a line comment.
	HashComments bool
	// Sigils prefix variable names, e.g. "$" so that $class is not a keyword.
	Sigils string
	// AngleBrackets treats '<' and '>' as brackets around type parameters.
	// Go uses '[' for those, and '<' only appears in operators.
	AngleBrackets bool
}

// GoDialect scans Go sources: package clause, then "type Name struct {".
var GoDialect = Dialect{
	Name:              "go",
	Extension:         ".go",
	NamespaceKeywords: []string{"package"},
	TypeKeywords:      []string{"type"},
	Reserved: []string{
		"break", "case", "chan", "const", "continue", "default", "defer", "else",
		"fallthrough", "for", "func", "go", "goto", "if", "import", "interface",
		"map", "range", "return", "select", "struct", "switch", "var",
	},
	AutoTerminate: true,
}

// BraceDialect scans PHP, C#, Java and similar curly-brace sources.
var BraceDialect = Dialect{
	Name:              "brace",
	Extension:         ".php",
	NamespaceKeywords: []string{"namespace", "package", "module"},
	TypeKeywords:      []string{"class", "interface", "trait", "struct", "enum"},
	Reserved: []string{
		"abstract", "final", "public", "private", "protected", "internal",
		"static", "readonly", "sealed", "partial", "extends", "implements",
	},
	FoldCase:      true,
	HashComments:  true,
	Sigils:        "$",
	AngleBrackets: true,
}

var dialects = map[string]Dialect{
	GoDialect.Name:    GoDialect,
	BraceDialect.Name: BraceDialect,
}

// LookupDialect returns the dialect registered under name.
func LookupDialect(name string) (Dialect, error) {
	d, ok := dialects[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Dialect{}, fmt.Errorf("unknown dialect %q (available: %s)", name, strings.Join(DialectNames(), ", "))
	}

	return d, nil
}

// DialectNames lists the known dialect names.
func DialectNames() []string {
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func (d Dialect) keywordKinds() map[string]Kind {
	kinds := make(map[string]Kind, len(d.NamespaceKeywords)+len(d.TypeKeywords)+len(d.Reserved))

	for _, word := range d.Reserved {
		kinds[d.fold(word)] = KindReserved
	}

	for _, word := range d.NamespaceKeywords {
		kinds[d.fold(word)] = KindNamespace
	}

	for _, word := range d.TypeKeywords {
		kinds[d.fold(word)] = KindType
	}

	return kinds
}

func (d Dialect) fold(word string) string {
	if d.FoldCase {
		return strings.ToLower(word)
	}

	return word
}
