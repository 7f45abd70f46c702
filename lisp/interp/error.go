package interp

import (
	"fmt"
	"strings"

	"github.com/Injng/elements/geom"
	"github.com/Injng/elements/lisp/sexp"
)

// UnboundVariableError is returned when an identifier has no binding. Proc is set when the
// identifier was used as the head of a call and names no procedure.
type UnboundVariableError struct {
	Name sexp.Symbol
	Proc bool
}

func (e *UnboundVariableError) Error() string {
	if e.Proc {
		return fmt.Sprintf("undefined procedure: %v", e.Name)
	}
	return fmt.Sprintf("undefined symbol: %v", e.Name)
}

// NoMatchingOverloadError is returned when none of a procedure's signatures match the kinds of
// its evaluated arguments.
type NoMatchingOverloadError struct {
	Name       sexp.Symbol
	Args       []geom.Kind
	Candidates []Signature
}

func (e *NoMatchingOverloadError) Error() string {
	cands := make([]string, len(e.Candidates))
	for i, sig := range e.Candidates {
		cands[i] = string(e.Name) + sig.String()
	}
	return fmt.Sprintf("%v: no overload accepts %v; have %s",
		e.Name, Signature(e.Args), strings.Join(cands, ", "))
}
