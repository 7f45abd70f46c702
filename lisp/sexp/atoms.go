package sexp

import (
	"bytes"
	"fmt"
	"strconv"
)

// Atom defines any expression read from a program, including lists themselves.
type Atom interface {
	// SexpAtom is an empty method -- it exists only to mark a type as an Atom at compile time.
	SexpAtom()
	String() string
}

type goStringer interface {
	GoString() string
}

func fmtgostring(v interface{}) string {
	switch v := v.(type) {
	case goStringer:
		return v.GoString()
	case fmt.Stringer:
		return v.String()
	case nil:
		return "#nil"
	default:
		return fmt.Sprint(v)
	}
}

func fmtstring(v interface{}) string {
	switch v := v.(type) {
	case fmt.Stringer:
		return v.String()
	case nil:
		return "#nil"
	default:
		return fmt.Sprint(v)
	}
}

// The set of expression atoms

type Int int64

func (Int) SexpAtom()          {}
func (i Int) String() string   { return strconv.FormatInt(int64(i), 10) }
func (i Int) GoString() string { return "int{" + i.String() + "}" }

type Float float64

func (Float) SexpAtom()          {}
func (f Float) String() string   { return strconv.FormatFloat(float64(f), 'f', -1, 64) }
func (f Float) GoString() string { return "float{" + f.String() + "}" }

type Symbol string

// Setq is the head of the only special form.
const Setq = Symbol("setq")

func (Symbol) SexpAtom() {}

func (s Symbol) String() string   { return string(s) }
func (s Symbol) GoString() string { return string(s) }

type Cons struct{ Car, Cdr Atom }

// IsNil reports whether a is nil or the empty list.
func IsNil(a Atom) bool {
	if a == nil {
		return true
	}
	switch a := a.(type) {
	case *Cons:
		return a == nil || (a.Cdr == nil && a.Car == nil)
	default:
		return false
	}
}

func (*Cons) SexpAtom() {}
func (c *Cons) string(gostring bool) string {
	if c == nil {
		return "#null"
	}

	if IsNil(c) {
		return "()"
	}

	fmtfn := fmtstring
	if gostring {
		fmtfn = fmtgostring
	}

	var b bytes.Buffer
	ch := byte('(')
	for c := Atom(c); c != nil; {
		b.WriteByte(ch)
		ch = ' '

		cons, ok := c.(*Cons)
		if !ok {
			b.WriteString(". ")
			b.WriteString(fmtfn(c))
			break
		}

		b.WriteString(fmtfn(cons.Car))
		c = cons.Cdr
	}
	b.WriteByte(')')
	return b.String()
}

func (c *Cons) String() string { return c.string(false) }

func (c *Cons) GoString() string {
	if c == nil {
		return "#null"
	}
	return "(" + fmtgostring(c.Car) + " . " + fmtgostring(c.Cdr) + ")"
}

// Head returns the symbol at the head of a list. ok is false if a is not a non-empty list or
// its head is not a symbol.
func Head(a Atom) (sym Symbol, ok bool) {
	c, _ := a.(*Cons)
	if c == nil || IsNil(c) {
		return "", false
	}
	sym, ok = c.Car.(Symbol)
	return sym, ok
}

// Slice returns the elements of a proper list as a slice. The empty list returns nil.
func Slice(a Atom) ([]Atom, error) {
	var out []Atom
	err := Walk(a, func(a Atom) error {
		out = append(out, a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Len returns the number of elements in a proper list.
func Len(a Atom) (n int, err error) {
	err = Walk(a, func(Atom) error { n++; return nil })
	return n, err
}

// Walk recursively visits all cons pairs in a singly-linked list, calling fn for the car of each
// cons pair and walking through each cdr it encounters a nil cdr. If a cdr is encountered that is
// neither a cons pair nor nil, Walk returns an error.
func Walk(a Atom, fn func(Atom) error) error {
	for {
		switch cons := a.(type) {
		case nil:
			return nil
		case *Cons:
			if cons == nil || (cons.Car == nil && cons.Cdr == nil) {
				// nil / sentinel cons
				return nil
			}

			if err := fn(cons.Car); err != nil {
				return err
			}
			a = cons.Cdr
		default:
			return fmt.Errorf("cannot walk %T", a)
		}
	}
}

func List(args ...Atom) Atom {
	if len(args) == 0 {
		return &Cons{}
	}
	cons := make([]Cons, len(args))
	for i, q := range args {
		c := &cons[i]
		c.Car = q
		if i < len(args)-1 {
			c.Cdr = &cons[i+1]
		}
	}
	return &cons[0]
}

func cadr(a Atom, seq string) (Atom, error) {
	var c *Cons
	var op byte
	for i := len(seq) - 1; i >= 0; i-- {
		op = seq[i]
		c, _ = a.(*Cons)
		if c == nil {
			return nil, fmt.Errorf("c%cr: %T is not a Cons", op, a)
		} else if op == 'a' {
			a = c.Car
		} else {
			a = c.Cdr
		}
	}
	return a, nil
}

func Cdr(a Atom) (Atom, error) {
	c, _ := a.(*Cons)
	if c == nil {
		return nil, fmt.Errorf("cdr: %T is not a Cons", a)
	}
	return c.Cdr, nil
}

func Cadr(a Atom) (Atom, error) { return cadr(a, "ad") }
func Cddr(a Atom) (Atom, error) { return cadr(a, "dd") }
