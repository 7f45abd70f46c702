package parser

import (
	"errors"
	"fmt"
)

// ParseError is returned when the token stream does not form a valid program: unbalanced
// parentheses or a malformed form. Line and Col locate the offending token and are zero when
// the error was found in an already built expression tree.
type ParseError struct {
	Line, Col int
	Err       error
	Desc      string
}

func (p *ParseError) Error() string {
	where := "parse error"
	if p.Line > 0 {
		where = fmt.Sprintf("parse error at %d:%d", p.Line, p.Col)
	}
	if p.Desc == "" {
		return fmt.Sprintf("elements: %s: %v", where, p.Err)
	}
	return fmt.Sprintf("elements: %s: %v -- %s", where, p.Err, p.Desc)
}

func (p *ParseError) Unwrap() error { return p.Err }

// UnclosedError is an error describing an unclosed parenthesis. It is typically set as the Err
// field of a ParseError.
//
// Its value is expected to be an opening parenthesis.
type UnclosedError rune

// Expecting returns the rune that was expected but not found for the UnclosedError's rune value.
func (u UnclosedError) Expecting() rune {
	switch u := rune(u); u {
	case '(':
		return ')'
	default:
		return u
	}
}

func (u UnclosedError) Error() string {
	return fmt.Sprintf("elements: unclosed %c, expecting %c", rune(u), u.Expecting())
}

// UnexpectedCloseError describes a closing parenthesis with no matching opening one.
type UnexpectedCloseError rune

func (u UnexpectedCloseError) Error() string {
	return fmt.Sprintf("elements: unexpected %c", rune(u))
}

var (
	ErrEmptyForm     = errors.New("empty form cannot be evaluated")
	ErrHeadNotSymbol = errors.New("form must begin with an identifier")
	ErrSetqShape     = errors.New("setq must be of the form (setq name value)")
	ErrSetqName      = errors.New("setq: name must be an identifier")
	ErrSetqNested    = errors.New("setq is only allowed at top level")
)
