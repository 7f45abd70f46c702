// Command elements reads a geometric construction program and draws it as an SVG diagram.
//
// Usage:
//
//	elements [flags] [file]
//
// The program is read from file, or from standard input when file is omitted or "-". The
// diagram is written to standard output and to the file named by -o.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/Injng/elements/internal/debug"
	"github.com/Injng/elements/lisp/builtins"
	"github.com/Injng/elements/lisp/interp"
	"github.com/Injng/elements/lisp/parser"
	"github.com/Injng/elements/render"
)

type config struct {
	label  bool
	output string
	seed   int64
	scale  float64
	debug  bool
}

func (c *config) flags(fs *flag.FlagSet) {
	fs.BoolVar(&c.label, "label", false, "label points, vertices and angle measures")
	fs.StringVar(&c.output, "o", "out.svg", "write the diagram to `file` as well as standard output")
	fs.Int64Var(&c.seed, "seed", 0, "random `seed` for sampled constructions (0 uses the clock)")
	fs.Float64Var(&c.scale, "scale", 20, "canvas units per geometric unit")
	fs.BoolVar(&c.debug, "debug", false, "log parsed forms and evaluated values")
}

func (c *config) options() render.Options {
	opts := render.DefaultOptions()
	opts.Label = c.label
	opts.Transform.Scale = c.scale
	return opts
}

// compile runs a program through every stage and returns the finished SVG document. Nothing is
// returned unless every stage succeeds.
func compile(r io.Reader, cfg config) ([]byte, error) {
	program, err := parser.Read(r)
	if err != nil {
		return nil, err
	}
	if debug.Enabled() {
		debug.Dump("program", program)
	}

	seed := cfg.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	ctx := builtins.BindAll(interp.NewContext(interp.WithRand(rand.New(rand.NewSource(seed)))))
	values, err := ctx.Run(program)
	if err != nil {
		return nil, err
	}
	debug.Logf("%d visible values", len(values))

	var buf bytes.Buffer
	if err := render.Render(values, cfg.options()).WriteSVG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func open(name string) (io.ReadCloser, error) {
	if name == "" || name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(name)
}

func run(args []string, stdout io.Writer) error {
	var cfg config
	fs := flag.NewFlagSet("elements", flag.ContinueOnError)
	cfg.flags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 1 {
		return fmt.Errorf("expected at most one input file; got %d", fs.NArg())
	}
	if cfg.debug {
		debug.SetLogger(log.Print)
	}

	in, err := open(fs.Arg(0))
	if err != nil {
		return err
	}
	defer in.Close()

	svg, err := compile(in, cfg)
	if err != nil {
		return err
	}
	if _, err := stdout.Write(svg); err != nil {
		return err
	}
	if cfg.output == "" {
		return nil
	}
	return os.WriteFile(cfg.output, svg, 0o644)
}

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if err == flag.ErrHelp {
			os.Exit(2)
		}
		log.Fatal("elements: ", err)
	}
}
