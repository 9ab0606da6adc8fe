package scanner

import (
	"bytes"
	"strings"
)

// lexer turns an append-only byte buffer into tokens. It stops in front of
// any lexeme that could continue past the end of the buffer and resumes from
// that offset once more bytes have been written. Emitted tokens are final.
type lexer struct {
	dialect  Dialect
	keywords map[string]Kind

	src []byte
	pos int
	eof bool

	tokens  []Token
	last    Kind
	hasLast bool
}

func newLexer(d Dialect) *lexer {
	return &lexer{
		dialect:  d,
		keywords: d.keywordKinds(),
	}
}

func (l *lexer) write(p []byte) {
	l.src = append(l.src, p...)
}

// run lexes the pending suffix of the buffer as far as it can.
func (l *lexer) run() {
	for l.pos < len(l.src) {
		if !l.scanToken() {
			return
		}
	}
}

// scanToken consumes one lexeme, whitespace run or comment starting at pos.
// It reports false when the lexeme may be incomplete; pos is left unchanged.
func (l *lexer) scanToken() bool {
	start := l.pos
	ch := l.src[start]

	switch {
	case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\f':
		l.pos++
		return true
	case ch == '\n':
		if l.terminates() {
			l.emit(KindTerminator, start, start+1)
			return true
		}

		l.pos++

		return true
	case ch == '/':
		next, ok := l.peek(start + 1)
		if !ok {
			return l.eof && l.emit(KindSeparator, start, start+1)
		}

		switch next {
		case '/':
			return l.lineComment(start + 2)
		case '*':
			return l.blockComment(start)
		}

		return l.emit(KindSeparator, start, start+1)
	case ch == '#' && l.dialect.HashComments:
		return l.lineComment(start + 1)
	case ch == '"' || ch == '\'':
		return l.quoted(start, ch, true)
	case ch == '`':
		return l.quoted(start, ch, false)
	case ch == '{':
		return l.emit(KindBlockOpen, start, start+1)
	case ch == '}':
		return l.emit(KindBlockClose, start, start+1)
	case ch == ';':
		return l.emit(KindTerminator, start, start+1)
	case ch == '(' || ch == '[' || (ch == '<' && l.dialect.AngleBrackets):
		return l.emit(KindOpenBracket, start, start+1)
	case ch == ')' || ch == ']' || (ch == '>' && l.dialect.AngleBrackets):
		return l.emit(KindCloseBracket, start, start+1)
	case ch == '.' || ch == '\\':
		return l.emit(KindSeparator, start, start+1)
	case ch == ':':
		return l.pair(start, ':', KindSeparator, KindOther)
	case ch == '-':
		return l.pair(start, '>', KindOther, KindOther)
	case strings.IndexByte(l.dialect.Sigils, ch) >= 0:
		end, ok := l.run1(start+1, isIdentByte)
		return ok && l.emit(KindOther, start, end)
	case isIdentStart(ch):
		end, ok := l.run1(start, isIdentByte)
		if !ok {
			return false
		}

		kind, reserved := l.keywords[l.dialect.fold(string(l.src[start:end]))]
		if !reserved {
			kind = KindIdent
		}

		return l.emit(kind, start, end)
	case isDigit(ch):
		end, ok := l.run1(start, isIdentByte)
		return ok && l.emit(KindLiteral, start, end)
	}

	return l.emit(KindOther, start, start+1)
}

func (l *lexer) emit(kind Kind, start, end int) bool {
	l.tokens = append(l.tokens, Token{Kind: kind, Text: string(l.src[start:end]), Offset: start})
	l.last = kind
	l.hasLast = true
	l.pos = end

	return true
}

func (l *lexer) peek(i int) (byte, bool) {
	if i >= len(l.src) {
		return 0, false
	}

	return l.src[i], true
}

// terminates reports whether a newline at pos ends a statement.
func (l *lexer) terminates() bool {
	if !l.dialect.AutoTerminate || !l.hasLast {
		return false
	}

	switch l.last {
	case KindIdent, KindLiteral, KindCloseBracket, KindBlockClose:
		return true
	}

	return false
}

// pair emits a two-byte token when src[start+1] == second, a one-byte token
// otherwise.
func (l *lexer) pair(start int, second byte, double, single Kind) bool {
	next, ok := l.peek(start + 1)
	if !ok {
		return l.eof && l.emit(single, start, start+1)
	}

	if next == second {
		return l.emit(double, start, start+2)
	}

	return l.emit(single, start, start+1)
}

// run1 returns the end of the run of bytes matching fn starting at from.
// A run that reaches the end of the buffer is complete only at EOF.
func (l *lexer) run1(from int, fn func(byte) bool) (int, bool) {
	end := from
	for end < len(l.src) && fn(l.src[end]) {
		end++
	}

	if end == len(l.src) && !l.eof {
		return end, false
	}

	return end, true
}

// lineComment skips to the next newline and leaves it in place so that it
// can still terminate the statement before the comment.
func (l *lexer) lineComment(from int) bool {
	idx := bytes.IndexByte(l.src[from:], '\n')
	if idx < 0 {
		if !l.eof {
			return false
		}

		l.pos = len(l.src)

		return true
	}

	l.pos = from + idx

	return true
}

func (l *lexer) blockComment(start int) bool {
	idx := bytes.Index(l.src[start+2:], []byte("*/"))
	if idx < 0 {
		if !l.eof {
			return false
		}

		l.pos = len(l.src)

		return true
	}

	end := start + 2 + idx + 2
	if bytes.IndexByte(l.src[start:end], '\n') >= 0 && l.terminates() {
		l.tokens = append(l.tokens, Token{Kind: KindTerminator, Text: "\n", Offset: start})
		l.last = KindTerminator
	}

	l.pos = end

	return true
}

// quoted consumes a string or character literal. An unterminated literal is
// closed by EOF.
func (l *lexer) quoted(start int, quote byte, escapes bool) bool {
	for i := start + 1; i < len(l.src); i++ {
		switch l.src[i] {
		case '\\':
			if escapes {
				i++
			}
		case quote:
			return l.emit(KindLiteral, start, i+1)
		}
	}

	if !l.eof {
		return false
	}

	return l.emit(KindLiteral, start, len(l.src))
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isIdentStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' || b >= 0x80
}

func isIdentByte(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}
