// Package scanner discovers the namespace and name of the first type declared
// in a source file without parsing the file. It reads the file in bounded
// chunks, tokenizes only what it has read, and stops at the first type
// declaration.
package scanner

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/afero"

	m "thintasks.dev/pkg/thintasks/internal/model"
)

// DefaultChunkSize is the number of bytes read per step.
const DefaultChunkSize = 512

var (
	// ErrNoTypeDeclaration is returned when EOF is reached before a type declaration.
	ErrNoTypeDeclaration = errors.New("no type declaration found")
	// ErrInvalidHandlerPath is returned when a handler file cannot be opened.
	ErrInvalidHandlerPath = errors.New("invalid handler path")
)

// Scanner reads handler files from FS.
type Scanner struct {
	FS        afero.Fs
	Dialect   Dialect
	ChunkSize int
}

// New constructs a Scanner with the default chunk size.
func New(fs afero.Fs, dialect Dialect) *Scanner {
	return &Scanner{FS: fs, Dialect: dialect, ChunkSize: DefaultChunkSize}
}

// Scan opens path and returns the location of the first type declared in it.
func (s *Scanner) Scan(path m.Path) (m.TypeLocation, error) {
	// #nosec G304 - path is a resolved candidate under the tasks root
	file, err := s.FS.Open(string(path))
	if err != nil {
		return m.TypeLocation{}, fmt.Errorf("%w: %s: %w", ErrInvalidHandlerPath, path, err)
	}

	defer func() {
		_ = file.Close()
	}()

	loc, err := s.ScanReader(file)
	if err != nil {
		return m.TypeLocation{}, fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("scanned handler", "path", path, "namespace", loc.Namespace, "type", loc.Name)

	return loc, nil
}

// ScanReader is Scan over an already opened reader.
func (s *Scanner) ScanReader(r io.Reader) (m.TypeLocation, error) {
	size := s.ChunkSize
	if size <= 0 {
		size = DefaultChunkSize
	}

	state := newScanState(s.Dialect)
	chunk := make([]byte, size)

	for {
		n, err := r.Read(chunk)

		eof := errors.Is(err, io.EOF)
		if err != nil && !eof {
			return m.TypeLocation{}, fmt.Errorf("read: %w", err)
		}

		if state.feed(chunk[:n], eof) {
			return state.location(), nil
		}

		if eof {
			return m.TypeLocation{}, ErrNoTypeDeclaration
		}
	}
}

// scanState is the incremental state machine behind ScanReader. The lexer
// owns the append-only buffer; cursor indexes the first token that has not
// been classified yet and never moves backwards.
type scanState struct {
	lex       *lexer
	cursor    int
	namespace []string
	name      string
	found     bool
	sawBlock  bool
}

func newScanState(d Dialect) *scanState {
	return &scanState{lex: newLexer(d)}
}

// feed appends a chunk and classifies whatever became available. It reports
// true once the first type declaration has been found.
func (s *scanState) feed(chunk []byte, eof bool) bool {
	if s.found {
		return true
	}

	s.lex.write(chunk)
	s.lex.eof = eof

	if !s.sawBlock {
		s.sawBlock = bytes.IndexByte(chunk, '{') >= 0
	}

	// Neither a namespace clause nor a type header can be complete before
	// the first block opener has been read.
	if !s.sawBlock && !eof {
		return false
	}

	s.lex.run()
	s.classify(eof)

	return s.found
}

func (s *scanState) classify(eof bool) {
	tokens := s.lex.tokens

	for ; s.cursor < len(tokens); s.cursor++ {
		switch tokens[s.cursor].Kind {
		case KindNamespace:
			segments, end, ok := captureNamespace(tokens, s.cursor+1, eof)
			if !ok {
				return
			}

			s.namespace = append(s.namespace, segments...)
			s.cursor = end
		case KindType:
			if s.cursor > 0 && isAccessor(tokens[s.cursor-1]) {
				continue
			}

			end, block := headerEnd(tokens, s.cursor+1)
			if end < 0 {
				if !eof {
					return
				}

				continue
			}

			if block {
				if name := nameBefore(tokens, s.cursor, end); name != "" {
					s.name = name
					s.found = true

					return
				}
			}

			s.cursor = end
		}
	}
}

func (s *scanState) location() m.TypeLocation {
	namespace := s.namespace
	if namespace == nil {
		namespace = []string{}
	}

	return m.TypeLocation{Namespace: namespace, Name: s.name}
}

// captureNamespace collects the identifiers following a namespace keyword up
// to the block opener or terminator that ends the clause. It returns the
// index of that closing token. Without one the capture is incomplete unless
// the input is exhausted.
func captureNamespace(tokens []Token, from int, eof bool) ([]string, int, bool) {
	var segments []string

	for i := from; i < len(tokens); i++ {
		switch tokens[i].Kind {
		case KindIdent:
			segments = append(segments, tokens[i].Text)
		case KindBlockOpen, KindTerminator:
			return segments, i, true
		}
	}

	if !eof {
		return nil, 0, false
	}

	return segments, len(tokens) - 1, true
}

// headerEnd finds the token that ends a type header: the block opener, or a
// terminator outside brackets for declarations without a body such as
// "type Mode int". block reports which one it was; -1 means neither has been
// read yet.
func headerEnd(tokens []Token, from int) (end int, block bool) {
	depth := 0

	for i := from; i < len(tokens); i++ {
		switch tokens[i].Kind {
		case KindBlockOpen:
			return i, true
		case KindOpenBracket:
			depth++
		case KindCloseBracket:
			depth--
		case KindTerminator:
			if depth <= 0 {
				return i, false
			}
		}
	}

	return -1, false
}

// nameBefore walks back from the block opener to the type keyword and returns
// the nearest identifier outside brackets.
func nameBefore(tokens []Token, keyword, open int) string {
	depth := 0

	for i := open - 1; i > keyword; i-- {
		switch tokens[i].Kind {
		case KindCloseBracket:
			depth++
		case KindOpenBracket:
			depth--
		case KindIdent:
			if depth == 0 {
				return tokens[i].Text
			}
		}
	}

	return ""
}

// isAccessor reports whether tok makes a following type keyword a member
// reference, as in Foo::class.
func isAccessor(tok Token) bool {
	return tok.Text == "::" || tok.Text == "->"
}
