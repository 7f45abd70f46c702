package interp

import (
	"fmt"
	"strings"

	"github.com/Injng/elements/geom"
)

// Proc is a built-in procedure. It receives its arguments already evaluated and already
// matched against the Signature it was bound with.
type Proc func(*Context, []geom.Value) (geom.Value, error)

func (p Proc) String() string {
	if p == nil {
		return "proc#nil"
	}
	return fmt.Sprintf("proc#%p", p)
}

// Signature is the ordered list of argument kinds an overload accepts.
type Signature []geom.Kind

// Match reports whether args has exactly the arity and per-position kinds of s.
func (s Signature) Match(args []geom.Value) bool {
	if len(args) != len(s) {
		return false
	}
	for i, k := range s {
		if args[i] == nil || args[i].Kind() != k {
			return false
		}
	}
	return true
}

func (s Signature) String() string {
	names := make([]string, len(s))
	for i, k := range s {
		names[i] = k.String()
	}
	return "(" + strings.Join(names, ", ") + ")"
}

// Overload pairs a Signature with the Proc that handles it.
type Overload struct {
	Sig  Signature
	Proc Proc
}

// resolve returns the first overload whose signature matches args.
func resolve(overloads []Overload, args []geom.Value) (Overload, bool) {
	for _, o := range overloads {
		if o.Sig.Match(args) {
			return o, true
		}
	}
	return Overload{}, false
}
