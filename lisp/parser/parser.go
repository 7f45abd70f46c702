// Package parser groups lexer tokens into top-level forms.
//
// A program is a sequence of forms. A form is either a bare atom or a parenthesised list whose
// head is an identifier. The result of parsing is a single list holding every top-level form in
// order.
package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/Injng/elements/internal/debug"
	"github.com/Injng/elements/lisp/lexer"
	"github.com/Injng/elements/lisp/sexp"
)

type scope struct {
	up    *scope
	open  lexer.Token // the ( token that opened the scope
	items []sexp.Atom
}

func newScope(up *scope, open lexer.Token) *scope {
	return &scope{up: up, open: open}
}

// cons returns the scope's items as a list. An empty scope is the empty list.
func (s *scope) cons() *sexp.Cons {
	return sexp.List(s.items...).(*sexp.Cons)
}

func (s *scope) append(tip sexp.Atom) {
	s.items = append(s.items, tip)
}

type parser struct {
	root scope
	last *scope
}

// Read lexes and parses all of r.
func Read(r io.Reader) (*sexp.Cons, error) {
	tokens, err := lexer.Lex(r)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

// ReadString is Read over a string.
func ReadString(src string) (*sexp.Cons, error) {
	return Read(strings.NewReader(src))
}

// Parse groups tokens into the list of top-level forms. An empty token sequence yields the
// empty list.
func Parse(tokens []lexer.Token) (*sexp.Cons, error) {
	var p parser
	return p.Parse(tokens)
}

func (p *parser) Parse(tokens []lexer.Token) (*sexp.Cons, error) {
	p.root = *newScope(nil, lexer.Token{})
	p.last = &p.root

	for _, tok := range tokens {
		if err := p.read(tok); err != nil {
			return nil, err
		}
	}

	if p.last != &p.root {
		open := p.last.open
		return nil, &ParseError{
			Line: open.Line,
			Col:  open.Col,
			Err:  UnclosedError('('),
			Desc: "encountered end of input inside list",
		}
	}

	root := p.root.cons()
	p.root, p.last = scope{}, nil
	debug.Logf("parsed %d tokens: %v", len(tokens), root)
	return root, nil
}

func (p *parser) read(tok lexer.Token) error {
	switch tok.Kind {
	case lexer.LParen:
		p.last = newScope(p.last, tok)
	case lexer.RParen:
		if p.last.up == nil {
			return &ParseError{Line: tok.Line, Col: tok.Col, Err: UnexpectedCloseError(')')}
		}
		return p.closeList()
	case lexer.Int:
		p.last.append(sexp.Int(tok.Int))
	case lexer.Float:
		p.last.append(sexp.Float(tok.Float))
	case lexer.Ident:
		p.last.append(sexp.Symbol(tok.Text))
	default:
		return &ParseError{Line: tok.Line, Col: tok.Col, Err: fmt.Errorf("unexpected token %v", tok.Kind)}
	}
	return nil
}

func (p *parser) closeList() error {
	s := p.last
	list := s.cons()
	if desc, err := checkList(list, s.up == &p.root); err != nil {
		return &ParseError{Line: s.open.Line, Col: s.open.Col, Err: err, Desc: desc}
	}
	p.last = s.up
	p.last.append(list)
	return nil
}

// CheckForm validates the shape of an already built form and every list nested in it. top
// reports whether form is a top-level form, where setq is allowed.
func CheckForm(form sexp.Atom, top bool) error {
	list, ok := form.(*sexp.Cons)
	if !ok {
		return nil
	}
	if desc, err := checkList(list, top); err != nil {
		return &ParseError{Err: err, Desc: desc}
	}

	args, _ := sexp.Cdr(list)
	if head, _ := sexp.Head(list); head == sexp.Setq {
		// skip the name
		args, _ = sexp.Cddr(list)
	}
	return sexp.Walk(args, func(a sexp.Atom) error {
		return CheckForm(a, false)
	})
}

// checkList checks a single list's head and, for setq, its arguments. Nested lists are checked
// separately.
func checkList(list *sexp.Cons, top bool) (desc string, err error) {
	if sexp.IsNil(list) {
		return "", ErrEmptyForm
	}

	head, ok := sexp.Head(list)
	if !ok {
		return fmt.Sprintf("got %v", list.Car), ErrHeadNotSymbol
	}
	if head != sexp.Setq {
		return "", nil
	}

	if !top {
		return list.String(), ErrSetqNested
	}
	if n, err := sexp.Len(list); err != nil || n != 3 {
		return list.String(), ErrSetqShape
	}
	name, _ := sexp.Cadr(list)
	if _, ok := name.(sexp.Symbol); !ok {
		return fmt.Sprintf("got %v", name), ErrSetqName
	}
	return "", nil
}
