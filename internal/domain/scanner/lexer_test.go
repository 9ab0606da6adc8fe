package scanner

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func lexAll(d Dialect, src string) []Token {
	l := newLexer(d)
	l.write([]byte(src))
	l.eof = true
	l.run()

	return l.tokens
}

func lexBytewise(d Dialect, src string) []Token {
	l := newLexer(d)
	for i := 0; i < len(src); i++ {
		l.write([]byte{src[i]})
		l.eof = i == len(src)-1
		l.run()
	}

	return l.tokens
}

func kinds(tokens []Token) []Kind {
	out := make([]Kind, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.Kind)
	}

	return out
}

func TestLexer_GoKinds(t *testing.T) {
	src := "// Package deploy ships things.\npackage deploy\n\nimport \"context\"\n\ntype Staging struct {\n}\n"
	want := []Kind{
		KindNamespace, KindIdent, KindTerminator,
		KindReserved, KindLiteral, KindTerminator,
		KindType, KindIdent, KindReserved, KindBlockOpen,
		KindBlockClose, KindTerminator,
	}

	if diff := cmp.Diff(want, kinds(lexAll(GoDialect, src))); diff != "" {
		t.Fatalf("kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestLexer_BraceKinds(t *testing.T) {
	src := "<?php\nnamespace App\\Tasks;\n# class Hidden {\n$class = Foo::class;\nclass Run {"
	want := []Kind{
		KindOpenBracket, KindOther, KindIdent,
		KindNamespace, KindIdent, KindSeparator, KindIdent, KindTerminator,
		KindOther, KindOther, KindIdent, KindSeparator, KindType, KindTerminator,
		KindType, KindIdent, KindBlockOpen,
	}

	if diff := cmp.Diff(want, kinds(lexAll(BraceDialect, src))); diff != "" {
		t.Fatalf("kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestLexer_CommentsAndStringsHideKeywords(t *testing.T) {
	src := "/* type A struct { */ x := `type B struct {` + \"type C {\" + 'c'"
	for _, tok := range lexAll(GoDialect, src) {
		if tok.Kind == KindType || tok.Kind == KindBlockOpen {
			t.Fatalf("unexpected %s token %q at %d", tok.Kind, tok.Text, tok.Offset)
		}
	}
}

func TestLexer_NewlineTerminatesOnlyInGo(t *testing.T) {
	src := "package main // trailing\n"

	goKinds := kinds(lexAll(GoDialect, src))
	if diff := cmp.Diff([]Kind{KindNamespace, KindIdent, KindTerminator}, goKinds); diff != "" {
		t.Fatalf("go kinds mismatch (-want +got):\n%s", diff)
	}

	braceKinds := kinds(lexAll(BraceDialect, "namespace main\n"))
	if diff := cmp.Diff([]Kind{KindNamespace, KindIdent}, braceKinds); diff != "" {
		t.Fatalf("brace kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestLexer_IncrementalMatchesWhole(t *testing.T) {
	samples := []struct {
		dialect Dialect
		src     string
	}{
		{GoDialect, "package a\n\n/* multi\nline */\ntype List[T any] struct {\n\tname string `json:\"name\"`\n}\n"},
		{GoDialect, "package b // c\nvar x = 'q'\ntype (\n\tMode int\n)\n"},
		{BraceDialect, "<?php\nnamespace red\\herring { }\nnamespace xyzzy {\n    class plugh {}\n}\n"},
		{BraceDialect, "<?php $classy = \"a\\\"b\"; // c\n/* d */ Foo::class; $x->y; class Z extends Y {}"},
		{BraceDialect, "unterminated \"string"},
		{GoDialect, "package p /* open comment"},
	}

	for _, sample := range samples {
		whole := lexAll(sample.dialect, sample.src)
		pieces := lexBytewise(sample.dialect, sample.src)

		if diff := cmp.Diff(whole, pieces); diff != "" {
			t.Errorf("%s: bytewise lexing differs (-whole +bytewise):\n%s", sample.src, diff)
		}
	}
}

func TestLexer_AngleBrackets(t *testing.T) {
	tests := []struct {
		name    string
		dialect Dialect
		src     string
		want    []Kind
	}{
		{
			name:    "go operators are not brackets",
			dialect: GoDialect,
			src:     "<-a >> 1\n",
			want:    []Kind{KindOther, KindOther, KindIdent, KindOther, KindOther, KindLiteral, KindTerminator},
		},
		{
			name:    "brace generics are brackets",
			dialect: BraceDialect,
			src:     "List<T>",
			want:    []Kind{KindIdent, KindOpenBracket, KindIdent, KindCloseBracket},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, kinds(lexAll(tt.dialect, tt.src))); diff != "" {
				t.Fatalf("kinds mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	if got := KindNamespace.String(); got != "namespace" {
		t.Fatalf("KindNamespace.String() = %q", got)
	}

	if got := Kind(99).String(); got != "unknown" {
		t.Fatalf("Kind(99).String() = %q", got)
	}
}
