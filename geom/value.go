// Package geom holds the values a construction program computes and the geometry engine that
// derives new values from old ones.
//
// Every function here is pure and works in float64. Degenerate conditions (collinear points,
// parallel lines, zero-length directions) are detected with the shared tolerance Epsilon,
// scaled to the magnitudes involved.
package geom

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies the variant of a Value.
type Kind int

const (
	KindNumber Kind = iota
	KindPoint
	KindLineseg
	KindCircle
	KindAngle
	KindTriangle
)

var kindNames = [...]string{
	KindNumber:   "Number",
	KindPoint:    "Point",
	KindLineseg:  "Lineseg",
	KindCircle:   "Circle",
	KindAngle:    "Angle",
	KindTriangle: "Triangle",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Value is the result of evaluating an expression. The set of implementations is closed: Number,
// Point, Lineseg, Circle, Angle and Triangle.
type Value interface {
	Kind() Kind
	String() string
}

// Kinds returns the kind of each value.
func Kinds(values []Value) []Kind {
	kinds := make([]Kind, len(values))
	for i, v := range values {
		kinds[i] = v.Kind()
	}
	return kinds
}

type Number float64

func (Number) Kind() Kind       { return KindNumber }
func (n Number) String() string { return fmtfloat(float64(n)) }

type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (Point) Kind() Kind { return KindPoint }
func (p Point) String() string {
	return "(point " + fmtfloat(p.X) + " " + fmtfloat(p.Y) + ")"
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }
func (p Point) Eq(q Point, eps float64) bool { return p.Sub(q).Len() <= eps }

// Lineseg is an ordered pair of points. The order is the segment's identity: Start and End are
// not interchangeable.
type Lineseg struct {
	Start, End Point
}

func (Lineseg) Kind() Kind { return KindLineseg }
func (l Lineseg) String() string {
	return "(lineseg " + l.Start.String() + " " + l.End.String() + ")"
}

// Direction returns End - Start.
func (l Lineseg) Direction() Point { return l.End.Sub(l.Start) }

func (l Lineseg) Len() float64 { return l.Direction().Len() }

type Circle struct {
	Center Point
	Radius float64
}

func (Circle) Kind() Kind { return KindCircle }
func (c Circle) String() string {
	return "(circle " + c.Center.String() + " " + fmtfloat(c.Radius) + ")"
}

// At returns the point on the circle at polar angle theta (radians).
func (c Circle) At(theta float64) Point {
	return Point{
		X: c.Center.X + c.Radius*math.Cos(theta),
		Y: c.Center.Y + c.Radius*math.Sin(theta),
	}
}

// Angle is a vertex with two rays, each given by its outer point.
type Angle struct {
	Start, Vertex, End Point
}

func (Angle) Kind() Kind { return KindAngle }
func (a Angle) String() string {
	return "(angle " + a.Start.String() + " " + a.Vertex.String() + " " + a.End.String() + ")"
}

// Rays returns the two ray segments, both starting at the vertex.
func (a Angle) Rays() (Lineseg, Lineseg) {
	return Lineseg{a.Vertex, a.Start}, Lineseg{a.Vertex, a.End}
}

// Degrees returns the measure of the angle in [0, 180].
func (a Angle) Degrees() float64 {
	u, v := a.Start.Sub(a.Vertex), a.End.Sub(a.Vertex)
	return math.Atan2(math.Abs(u.Cross(v)), u.Dot(v)) * 180 / math.Pi
}

type Triangle struct {
	A, B, C Point
}

func (Triangle) Kind() Kind { return KindTriangle }
func (t Triangle) String() string {
	return "(triangle " + t.A.String() + " " + t.B.String() + " " + t.C.String() + ")"
}

// Vertices returns A, B and C in order.
func (t Triangle) Vertices() [3]Point { return [3]Point{t.A, t.B, t.C} }

// Sides returns the segments AB, BC and CA.
func (t Triangle) Sides() [3]Lineseg {
	return [3]Lineseg{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}}
}

func fmtfloat(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

// Format returns a short label for a number: at most four decimals, trailing zeros trimmed.
func Format(f float64) string {
	s := strconv.FormatFloat(f, 'f', 4, 64)
	for len(s) > 1 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		s = "0"
	}
	return s
}
