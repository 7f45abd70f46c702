// Package render turns evaluated construction values into drawing primitives in canvas
// coordinates and serializes them as SVG.
//
// Geometric coordinates map to the canvas through a Transform: (x, y) becomes (x·s, y·s), or
// (x·s, −y·s) when FlipY is set so that geometric "up" is up on screen. Marker radii, label
// offsets, font sizes and margins are given directly in canvas units and are not scaled.
package render

import (
	"math"
	"unicode/utf8"

	"github.com/Injng/elements/geom"
	"github.com/Injng/elements/internal/debug"
)

// Transform maps geometric coordinates to canvas coordinates.
type Transform struct {
	// Scale is the number of canvas units per geometric unit. Zero means 1.
	Scale float64
	FlipY bool
}

// Identity maps every point to itself.
var Identity = Transform{Scale: 1}

func (t Transform) scale() float64 {
	if t.Scale == 0 {
		return 1
	}
	return t.Scale
}

// Apply returns the canvas coordinates of p.
func (t Transform) Apply(p geom.Point) (x, y float64) {
	s := t.scale()
	x, y = p.X*s, p.Y*s
	if t.FlipY {
		y = -y
	}
	return x, y
}

// Length returns the canvas length of a geometric length.
func (t Transform) Length(l float64) float64 {
	return math.Abs(l * t.scale())
}

type Options struct {
	// Label turns on coordinate labels for points and triangle vertices, point markers and
	// measure labels for angles.
	Label     bool
	Transform Transform

	MarkerRadius float64
	LabelOffset  float64
	FontSize     float64
	// Margin pads the bounding box of the primitives to form the SVG viewBox.
	Margin float64
}

// DefaultOptions returns the options used by the command line: 20 canvas units per unit, y
// flipped, labelling off.
func DefaultOptions() Options {
	return Options{
		Transform:    Transform{Scale: 20, FlipY: true},
		MarkerRadius: 2,
		LabelOffset:  4,
		FontSize:     10,
		Margin:       10,
	}
}

// Rect is an axis-aligned box in canvas coordinates.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

func (r Rect) Union(o Rect) Rect {
	return Rect{
		MinX: math.Min(r.MinX, o.MinX),
		MinY: math.Min(r.MinY, o.MinY),
		MaxX: math.Max(r.MaxX, o.MaxX),
		MaxY: math.Max(r.MaxY, o.MaxY),
	}
}

func (r Rect) Pad(m float64) Rect {
	return Rect{r.MinX - m, r.MinY - m, r.MaxX + m, r.MaxY + m}
}

func (r Rect) Width() float64  { return r.MaxX - r.MinX }
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Primitive is a drawable element in canvas coordinates: *Line, *Circle or *Text.
type Primitive interface {
	Bounds() Rect
	primitive()
}

type Line struct {
	X1, Y1, X2, Y2 float64
}

func (*Line) primitive() {}

func (l *Line) Bounds() Rect {
	return Rect{
		MinX: math.Min(l.X1, l.X2),
		MinY: math.Min(l.Y1, l.Y2),
		MaxX: math.Max(l.X1, l.X2),
		MaxY: math.Max(l.Y1, l.Y2),
	}
}

type Circle struct {
	Cx, Cy, R float64
}

func (*Circle) primitive() {}

func (c *Circle) Bounds() Rect {
	return Rect{c.Cx - c.R, c.Cy - c.R, c.Cx + c.R, c.Cy + c.R}
}

// Text is a label whose baseline starts at (X, Y).
type Text struct {
	X, Y float64
	Size float64
	Body string
}

func (*Text) primitive() {}

// Bounds estimates the extent of the label from its rune count, assuming glyphs about 0.6em
// wide.
func (t *Text) Bounds() Rect {
	w := 0.6 * t.Size * float64(utf8.RuneCountInString(t.Body))
	return Rect{t.X, t.Y - t.Size, t.X + w, t.Y}
}

// Diagram is an ordered list of primitives ready to serialize.
type Diagram struct {
	Primitives []Primitive
	Margin     float64
}

// Bounds returns the bounding box of every primitive. ok is false for an empty diagram.
func (d *Diagram) Bounds() (box Rect, ok bool) {
	for i, p := range d.Primitives {
		if i == 0 {
			box = p.Bounds()
			continue
		}
		box = box.Union(p.Bounds())
	}
	return box, len(d.Primitives) > 0
}

type renderer struct {
	opts Options
	out  []Primitive
}

// Render maps values, in order, to primitives:
//
//   - Point: nothing, or with labelling a marker and a "(x, y)" label;
//   - Lineseg: one line;
//   - Circle: one circle;
//   - Triangle: lines AB, BC and CA, and with labelling a label per vertex;
//   - Angle: lines from the vertex to Start and End, and with labelling a measure label;
//   - Number: nothing.
func Render(values []geom.Value, opts Options) *Diagram {
	r := &renderer{opts: opts}
	for _, v := range values {
		r.value(v)
	}
	debug.Logf("rendered %d values into %d primitives", len(values), len(r.out))
	return &Diagram{Primitives: r.out, Margin: opts.Margin}
}

func (r *renderer) value(v geom.Value) {
	switch v := v.(type) {
	case geom.Point:
		if r.opts.Label {
			r.marker(v)
			r.label(v, coordinates(v))
		}
	case geom.Lineseg:
		r.line(v.Start, v.End)
	case geom.Circle:
		x, y := r.opts.Transform.Apply(v.Center)
		r.out = append(r.out, &Circle{Cx: x, Cy: y, R: r.opts.Transform.Length(v.Radius)})
	case geom.Triangle:
		for _, side := range v.Sides() {
			r.line(side.Start, side.End)
		}
		if r.opts.Label {
			for _, p := range v.Vertices() {
				r.label(p, coordinates(p))
			}
		}
	case geom.Angle:
		r.line(v.Vertex, v.Start)
		r.line(v.Vertex, v.End)
		if r.opts.Label {
			r.label(v.Vertex, geom.Format(v.Degrees())+"°")
		}
	case geom.Number:
		debug.Logf("number %v has no drawing", v)
	default:
		debug.Logf("skipping %T", v)
	}
}

func (r *renderer) line(p, q geom.Point) {
	x1, y1 := r.opts.Transform.Apply(p)
	x2, y2 := r.opts.Transform.Apply(q)
	r.out = append(r.out, &Line{X1: x1, Y1: y1, X2: x2, Y2: y2})
}

func (r *renderer) marker(p geom.Point) {
	x, y := r.opts.Transform.Apply(p)
	r.out = append(r.out, &Circle{Cx: x, Cy: y, R: r.opts.MarkerRadius})
}

// label places text at p, offset right and up on the canvas.
func (r *renderer) label(p geom.Point, body string) {
	x, y := r.opts.Transform.Apply(p)
	r.out = append(r.out, &Text{
		X:    x + r.opts.LabelOffset,
		Y:    y - r.opts.LabelOffset,
		Size: r.opts.FontSize,
		Body: body,
	})
}

func coordinates(p geom.Point) string {
	return "(" + geom.Format(p.X) + ", " + geom.Format(p.Y) + ")"
}
