package lexer

import "fmt"

// LexError is returned when the lexer encounters input it cannot turn into a token. It contains
// the line, column, any other error encountered, and a description of the problem.
type LexError struct {
	Line, Col int
	Err       error
	Desc      string
}

func (e *LexError) Error() string {
	if e.Desc == "" {
		return fmt.Sprintf("elements: lex error at %d:%d: %v", e.Line, e.Col, e.Err)
	}
	return fmt.Sprintf("elements: lex error at %d:%d: %v -- %s", e.Line, e.Col, e.Err, e.Desc)
}

func (e *LexError) Unwrap() error { return e.Err }

// BadCharError is an error describing an invalid character encountered during lexing. It is
// typically set as the Err field of a LexError.
type BadCharError rune

func (r BadCharError) Error() string {
	return fmt.Sprintf("elements: encountered invalid character %q", rune(r))
}

// NumberError describes a run that starts like a numeric literal but is not one, such as 12abc
// or 1.5.2.
type NumberError string

func (n NumberError) Error() string {
	return fmt.Sprintf("elements: invalid numeric literal %q", string(n))
}
