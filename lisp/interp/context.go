// Package interp evaluates parsed construction programs against a single environment of
// geometric values.
package interp

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/Injng/elements/geom"
	"github.com/Injng/elements/internal/debug"
	"github.com/Injng/elements/lisp/parser"
	"github.com/Injng/elements/lisp/sexp"
)

const randUpvalue = "rand"

type Context struct {
	table map[sexp.Symbol]geom.Value
	procs map[sexp.Symbol][]Overload

	// upval is the table of upvalue names to opaque values (empty interfaces). These are used
	// as private data held by the context and shared with its procedures, such as the random
	// source. Assigning a nil value to an upvalue deletes the upvalue.
	upval map[string]interface{}
}

// Option configures a Context created by NewContext.
type Option func(*Context)

// WithRand sets the random source used by randomised constructions. Without it, a source seeded
// from the clock is created on first use.
func WithRand(rng geom.Rand) Option {
	return func(c *Context) {
		if rng != nil {
			c.SetUpvalue(randUpvalue, rng)
		}
	}
}

func NewContext(opts ...Option) *Context {
	c := &Context{
		table: make(map[sexp.Symbol]geom.Value),
		procs: make(map[sexp.Symbol][]Overload),
		upval: make(map[string]interface{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Context) SetUpvalue(name string, val interface{}) *Context {
	if val != nil {
		c.upval[name] = val
	} else {
		delete(c.upval, name)
	}
	return c
}

func (c *Context) Upvalue(name string) interface{} {
	return c.upval[name]
}

// Rand returns the context's random source.
func (c *Context) Rand() geom.Rand {
	if rng, ok := c.Upvalue(randUpvalue).(geom.Rand); ok {
		return rng
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	c.SetUpvalue(randUpvalue, rng)
	return rng
}

// Bind binds name to value, replacing any previous binding.
func (c *Context) Bind(name sexp.Symbol, value geom.Value) *Context {
	c.table[name] = value
	return c
}

func (c *Context) Resolve(name sexp.Symbol) (value geom.Value, ok bool) {
	value, ok = c.table[name]
	return value, ok
}

// BindProc appends an overload of name. Overloads are tried in the order they were bound.
func (c *Context) BindProc(name sexp.Symbol, sig Signature, proc Proc) *Context {
	c.procs[name] = append(c.procs[name], Overload{Sig: sig, Proc: proc})
	return c
}

// Overloads returns the signatures bound for name, in resolution order.
func (c *Context) Overloads(name sexp.Symbol) []Signature {
	sigs := make([]Signature, len(c.procs[name]))
	for i, o := range c.procs[name] {
		sigs[i] = o.Sig
	}
	return sigs
}

// Run evaluates each top-level form of program in order and returns the values of the forms
// that are not setq bindings. Evaluation stops at the first error, in which case no values are
// returned.
func (c *Context) Run(program *sexp.Cons) ([]geom.Value, error) {
	var visible []geom.Value
	err := sexp.Walk(program, func(form sexp.Atom) error {
		if err := parser.CheckForm(form, true); err != nil {
			return err
		}

		if head, _ := sexp.Head(form); head == sexp.Setq {
			// CheckForm guarantees (setq name expr)
			parts, _ := sexp.Slice(form)
			name, expr := parts[1].(sexp.Symbol), parts[2]
			v, err := c.Eval(expr)
			if err != nil {
				return err
			}
			c.Bind(name, v)
			debug.Logf("setq %v = %v", name, v)
			return nil
		}

		v, err := c.Eval(form)
		if err != nil {
			return err
		}
		debug.Logf("visible %v", v)
		visible = append(visible, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return visible, nil
}

// Eval evaluates a single expression. setq is not an expression and is only accepted by Run.
func (c *Context) Eval(a sexp.Atom) (geom.Value, error) {
	switch a := a.(type) {
	case *sexp.Cons:
		head, ok := sexp.Head(a)
		if !ok {
			if sexp.IsNil(a) {
				return nil, &parser.ParseError{Err: parser.ErrEmptyForm}
			}
			return nil, &parser.ParseError{Err: parser.ErrHeadNotSymbol, Desc: fmt.Sprintf("got %v", a.Car)}
		}
		if head == sexp.Setq {
			return nil, &parser.ParseError{Err: parser.ErrSetqNested, Desc: a.String()}
		}

		var args []geom.Value
		err := sexp.Walk(a.Cdr, func(arg sexp.Atom) error {
			v, err := c.Eval(arg)
			if err != nil {
				return err
			}
			args = append(args, v)
			return nil
		})
		if err != nil {
			return nil, err
		}
		return c.Call(head, args...)

	case sexp.Int:
		return geom.Number(a), nil
	case sexp.Float:
		return geom.Number(a), nil
	case sexp.Symbol:
		v, ok := c.Resolve(a)
		if !ok {
			return nil, &UnboundVariableError{Name: a}
		}
		return v, nil
	}

	return nil, fmt.Errorf("unsupported execution atom: %T", a)
}

// Call resolves the overload of name matching args and calls it.
func (c *Context) Call(name sexp.Symbol, args ...geom.Value) (result geom.Value, err error) {
	overloads, ok := c.procs[name]
	if !ok {
		return nil, &UnboundVariableError{Name: name, Proc: true}
	}
	o, ok := resolve(overloads, args)
	if !ok {
		return nil, &NoMatchingOverloadError{
			Name:       name,
			Args:       geom.Kinds(args),
			Candidates: c.Overloads(name),
		}
	}

	defer func() {
		switch rc := recover().(type) {
		case nil:
			return
		case error:
			err = fmt.Errorf("%v: %w", name, rc)
		default:
			err = fmt.Errorf("%v: PANIC: %v", name, rc)
		}
		result = nil
	}()

	result, err = o.Proc(c, args)
	if err != nil {
		return nil, wrapProcError(name, err)
	}
	if result == nil {
		return nil, fmt.Errorf("%v: procedure returned no value", name)
	}
	return result, nil
}

// wrapProcError prefixes err with the procedure name unless it is a geometry error, which
// already names its operation.
func wrapProcError(name sexp.Symbol, err error) error {
	var (
		invalid *geom.InvalidGeometryError
		noint   *geom.NoIntersectionError
		gen     *geom.GeometryGenerationError
	)
	if errors.As(err, &invalid) || errors.As(err, &noint) || errors.As(err, &gen) {
		return err
	}
	return fmt.Errorf("%v: %w", name, err)
}
