package scanner

// Kind classifies a token for the purposes of the scanner. Anything that is
// not relevant to finding a namespace or a type name is KindOther.
type Kind int

const (
	KindOther Kind = iota
	KindIdent
	KindLiteral
	KindNamespace
	KindType
	KindReserved
	KindBlockOpen
	KindBlockClose
	KindTerminator
	KindSeparator
	KindOpenBracket
	KindCloseBracket
)

var kindNames = [...]string{
	KindOther:        "other",
	KindIdent:        "ident",
	KindLiteral:      "literal",
	KindNamespace:    "namespace",
	KindType:         "type",
	KindReserved:     "reserved",
	KindBlockOpen:    "{",
	KindBlockClose:   "}",
	KindTerminator:   ";",
	KindSeparator:    "separator",
	KindOpenBracket:  "open",
	KindCloseBracket: "close",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "unknown"
}

// Token is a lexeme together with its byte offset in the scanned file.
type Token struct {
	Kind   Kind
	Text   string
	Offset int
}
