// Package lexer turns program text into a flat sequence of tokens.
//
// The lexer is a rune decoder driven by a chain of state functions. Whitespace separates tokens,
// parentheses are always tokens of their own, and a semicolon starts a comment that runs to the
// end of the line. Every other run of characters is either a numeric literal or an identifier:
// a run that starts like a number (a digit, or a sign followed by a digit) must be a complete
// literal of the form [+-]digits[.digits], otherwise lexing fails.
package lexer

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// nextfunc is a lexing function that modifies the decoder's state and returns another lexing
// function. If nextfunc returns io.EOF, lexing is complete. Any other error halts lexing.
type nextfunc func() (nextfunc, error)

// decoder is a wrapper around an io.Reader for the purpose of doing by-rune lexing of program
// input. It also holds enough state to track line, column, the start of the current token, and
// errors.
type decoder struct {
	readrune func() (rune, int, error)

	err       error
	current   rune
	line, col int
	newline   bool
	comment   bool // comment text is discarded unchecked

	// Storage
	buffer bytes.Buffer
	tokens []Token

	// position of the token being read
	startLine, startCol int
}

const (
	rNewline    = '\n'
	rComment    = ';'
	rOpenParen  = '('
	rCloseParen = ')'
)

// Lex reads all of r and returns its tokens in order.
func Lex(r io.Reader) ([]Token, error) {
	var dec decoder
	return dec.Lex(r)
}

// LexString is Lex over a string.
func LexString(src string) ([]Token, error) {
	return Lex(strings.NewReader(src))
}

func (d *decoder) Lex(r io.Reader) ([]Token, error) {
	d.reset(r)
	if err := d.lex(); err != nil {
		return nil, err
	}
	tokens := d.tokens
	d.tokens = nil
	d.buffer.Reset()
	return tokens, nil
}

func (d *decoder) lex() (err error) {
	var next nextfunc = d.start
	for next != nil && err == nil {
		next, err = next()
	}
	if err == io.EOF {
		err = nil
	}
	return err
}

func (d *decoder) reset(r io.Reader) {
	const defaultBufferCap = 64

	rx, ok := r.(runeReader)
	if !ok {
		rx = bufio.NewReader(r)
	}
	d.readrune = rx.ReadRune
	d.err = nil

	d.current = 0
	d.line = 1
	d.col = 0
	d.newline = false
	d.comment = false

	d.buffer.Reset()
	d.buffer.Grow(defaultBufferCap)
	d.tokens = nil
}

func (d *decoder) start() (next nextfunc, err error) {
	if err = d.skip(); err != nil {
		return nil, err
	}
	return d.readSyntax, nil
}

func (d *decoder) readSyntax() (next nextfunc, err error) {
	if err = d.skipSpace(); err != nil {
		return nil, err
	}

	d.buffer.Reset()
	d.startLine, d.startCol = d.line, d.col
	switch d.current {
	case rOpenParen:
		d.emit(Token{Kind: LParen, Text: "("})
		return d.readSyntax, d.skip()
	case rCloseParen:
		d.emit(Token{Kind: RParen, Text: ")"})
		return d.readSyntax, d.skip()
	case rComment:
		return d.readComment, nil
	default:
		return d.readRun, nil
	}
}

func (d *decoder) readComment() (next nextfunc, err error) {
	d.comment = true
	err = d.readUntil(oneRune(rNewline), false)
	d.comment = false
	return d.readSyntax, err
}

var sentinelRunes = runestr("();")

func isDelimiter(r rune) bool {
	return unicode.IsSpace(r) || sentinelRunes.Contains(r)
}

// readRun reads a maximal run of non-delimiter runes and classifies it as a number or an
// identifier. The delimiter that ends the run is left as the current rune.
func (d *decoder) readRun() (next nextfunc, err error) {
	d.buffer.WriteRune(d.current)
	err = d.readUntil(runeFunc(isDelimiter), true)
	if err != nil && err != io.EOF {
		return nil, err
	}

	tok, lerr := classify(d.buffer.String())
	if lerr != nil {
		return nil, d.lexerr(lerr, d.startLine, d.startCol)
	}
	d.emit(tok)
	return d.readSyntax, err
}

func (d *decoder) emit(tok Token) {
	tok.Line, tok.Col = d.startLine, d.startCol
	d.tokens = append(d.tokens, tok)
}

// looksNumeric reports whether a run must be lexed as a numeric literal.
func looksNumeric(txt string) bool {
	if txt == "" {
		return false
	}
	if txt[0] == '+' || txt[0] == '-' {
		txt = txt[1:]
	}
	return txt != "" && isDigit(txt[0])
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// numberShape checks txt against [+-]digits[.digits] and reports whether it has a fraction.
func numberShape(txt string) (ok, fraction bool) {
	i, n := 0, len(txt)
	if i < n && (txt[i] == '+' || txt[i] == '-') {
		i++
	}
	digits := i
	for i < n && isDigit(txt[i]) {
		i++
	}
	if i == digits {
		return false, false
	}
	if i == n {
		return true, false
	}
	if txt[i] != '.' {
		return false, false
	}
	i++
	digits = i
	for i < n && isDigit(txt[i]) {
		i++
	}
	return i > digits && i == n, true
}

func classify(txt string) (Token, error) {
	if !looksNumeric(txt) {
		return Token{Kind: Ident, Text: txt}, nil
	}

	ok, fraction := numberShape(txt)
	if !ok {
		return Token{}, NumberError(txt)
	}

	if !fraction {
		integer, err := strconv.ParseInt(txt, 10, 64)
		if err != nil {
			return Token{}, err
		}
		return Token{Kind: Int, Text: txt, Int: integer}, nil
	}

	fp, err := strconv.ParseFloat(txt, 64)
	if err != nil {
		return Token{}, err
	}
	return Token{Kind: Float, Text: txt, Float: fp}, nil
}

func (d *decoder) lexerr(err error, line, col int, msg ...interface{}) *LexError {
	if le, ok := err.(*LexError); ok {
		return le
	}
	return &LexError{Line: line, Col: col, Err: err, Desc: fmt.Sprint(msg...)}
}

func (d *decoder) skipSpace() error {
	if unicode.IsSpace(d.current) {
		return d.readUntil(notRune(runeFunc(unicode.IsSpace)), false)
	}
	return nil
}

func (d *decoder) nextRune() (r rune, size int, err error) {
	if d.err != nil {
		return d.current, utf8.RuneLen(d.current), d.err
	}

	r, size, err = d.readrune()

	if err != nil {
		d.err = err
		return r, size, err
	}

	if d.newline {
		d.line++
		d.col = 0
	}
	d.col++
	d.current = r
	d.newline = r == rNewline

	if r == utf8.RuneError && size == 1 && !d.comment {
		d.err = d.lexerr(BadCharError(r), d.line, d.col, "invalid UTF-8 encoding")
		return r, size, d.err
	}

	return r, size, nil
}

func (d *decoder) skip() error {
	_, _, err := d.nextRune()
	return err
}

func (d *decoder) readUntil(oneof runeset, buffer bool) (err error) {
	for out := &d.buffer; ; {
		var r rune
		r, _, err = d.nextRune()
		if err != nil {
			return err
		} else if oneof.Contains(r) {
			return nil
		} else if buffer {
			out.WriteRune(r)
		}
	}
}

// Rune handling

type runeReader interface {
	ReadRune() (rune, int, error)
}

type (
	runeset interface {
		Contains(rune) bool
	}

	oneRune  rune
	runeFunc func(rune) bool
	runestr  string
)

func notRune(runes runeset) runeset {
	return runeFunc(func(r rune) bool { return !runes.Contains(r) })
}

func (s runestr) Contains(r rune) bool { return strings.ContainsRune(string(s), r) }

func (fn runeFunc) Contains(r rune) bool { return fn(r) }

func (lhs oneRune) Contains(rhs rune) bool { return rune(lhs) == rhs }
