package debug

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/davecgh/go-spew/spew"
)

// prefix returns "file:line: " for whoever called the logging function, or for a frame step
// levels further up.
func prefix(step int) string {
	_, file, line, ok := runtime.Caller(2 + step)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s:%d: ", filepath.Base(file), line)
}

func SetLogger(fn func(...interface{})) {
	logfunc = fn
}

func SetLoggerf(fn func(string, ...interface{})) {
	if fn != nil {
		logfunc = func(args ...interface{}) {
			fn("%s", fmt.Sprint(args...))
		}
	} else {
		logfunc = nil
	}
}

// Enabled reports whether a logger is installed. Callers use it to skip building expensive
// log arguments.
func Enabled() bool {
	return logfunc != nil
}

func Logf(format string, args ...interface{}) {
	if logfunc == nil {
		return
	}
	logfunc(prefix(0), fmt.Sprintf(format, args...))
}

func Log(args ...interface{}) {
	if logfunc == nil {
		return
	}
	logfunc(append(append(make([]interface{}, 0, len(args)+1), prefix(0)), args...)...)
}

// Dump logs label followed by a structural dump of each value.
func Dump(label string, values ...interface{}) {
	if logfunc == nil {
		return
	}
	logfunc(prefix(0), label, ":\n", dumper.Sdump(values...))
}

// Sdump returns the same structural dump used by Dump, for error and test messages.
func Sdump(values ...interface{}) string {
	return dumper.Sdump(values...)
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// logfunc should follow fmt.Sprint formatting rules
var logfunc func(...interface{})
