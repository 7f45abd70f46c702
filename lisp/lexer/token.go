package lexer

import "fmt"

// Kind identifies the lexical class of a Token.
type Kind int

const (
	LParen Kind = iota
	RParen
	Ident
	Int
	Float
)

func (k Kind) String() string {
	switch k {
	case LParen:
		return "("
	case RParen:
		return ")"
	case Ident:
		return "identifier"
	case Int:
		return "integer"
	case Float:
		return "float"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Token is a single lexical unit. Int and Float hold the parsed value of numeric literals and
// are zero for every other kind.
type Token struct {
	Kind      Kind
	Text      string
	Int       int64
	Float     float64
	Line, Col int
}

func (t Token) String() string {
	return fmt.Sprintf("%d:%d: %v %q", t.Line, t.Col, t.Kind, t.Text)
}
