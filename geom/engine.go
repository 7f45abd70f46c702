package geom

import (
	"math"
)

// Epsilon is the tolerance used for every degeneracy test. It is applied relative to the
// lengths involved, so the tests behave the same at any scale.
const Epsilon = 1e-9

// DefaultRadius is the radius of the circle built by circle with no arguments.
const DefaultRadius = 5

// NewPoint returns the point (x, y).
func NewPoint(x, y float64) (Point, error) {
	return finitePoint("point", Point{X: x, Y: y})
}

// Midpoint returns the point halfway between p and q.
func Midpoint(p, q Point) (Point, error) {
	return finitePoint("midpoint", Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2})
}

// Distance returns the euclidean distance between p and q.
func Distance(p, q Point) float64 {
	return q.Sub(p).Len()
}

// MeasureDistance is Distance for results that become values. It fails when the distance
// overflows.
func MeasureDistance(p, q Point) (float64, error) {
	d := Distance(p, q)
	if err := finite("distance", d); err != nil {
		return 0, err
	}
	return d, nil
}

// NewCircle returns a circle around center. The radius must not be negative.
func NewCircle(center Point, radius float64) (Circle, error) {
	if err := finite("circle", center.X, center.Y, radius); err != nil {
		return Circle{}, err
	}
	if radius < 0 {
		return Circle{}, invalid("circle", "negative radius %s", fmtfloat(radius))
	}
	return Circle{Center: center, Radius: radius}, nil
}

// DefaultCircle returns the circle of radius DefaultRadius around the origin.
func DefaultCircle() Circle {
	return Circle{Radius: DefaultRadius}
}

// NewAngle returns the angle at vertex between the rays toward start and end. Neither ray may
// have zero length.
func NewAngle(start, vertex, end Point) (Angle, error) {
	if start.Eq(vertex, Epsilon) || end.Eq(vertex, Epsilon) {
		return Angle{}, invalid("angle", "ray point coincides with vertex %v", vertex)
	}
	return Angle{Start: start, Vertex: vertex, End: end}, nil
}

// Collinear reports whether a, b and c lie on one line, which includes any two of them
// coinciding.
func Collinear(a, b, c Point) bool {
	u, v := b.Sub(a), c.Sub(a)
	return math.Abs(u.Cross(v)) <= Epsilon*u.Len()*v.Len()
}

// NewTriangle returns the triangle abc. Collinear points are rejected.
func NewTriangle(a, b, c Point) (Triangle, error) {
	if Collinear(a, b, c) {
		return Triangle{}, invalid("triangle", "points %v %v %v are collinear", a, b, c)
	}
	return Triangle{A: a, B: b, C: c}, nil
}

// TriangleFromAngle closes an angle into a triangle by joining the outer points of its rays.
func TriangleFromAngle(a Angle) (Triangle, error) {
	return NewTriangle(a.Start, a.Vertex, a.End)
}

// InscribedAngle returns an inscribed angle of the given measure in c.
//
// Placement is fixed: the vertex is the lowest point of the circle (polar angle 270°) and the
// rays end at polar angles 90°+θ (Start) and 90°-θ (End), so the intercepted arc is centred on
// the top of the circle. The measure must be strictly between 0 and 180 degrees and the circle
// must have a positive radius.
func InscribedAngle(c Circle, degrees float64) (Angle, error) {
	if c.Radius <= 0 {
		return Angle{}, invalid("iangle", "circle has no positive radius")
	}
	if !(degrees > 0 && degrees < 180) {
		return Angle{}, invalid("iangle", "measure %s is outside (0, 180)", fmtfloat(degrees))
	}

	theta := degrees * math.Pi / 180
	angle := Angle{
		Start:  c.At(math.Pi/2 + theta),
		Vertex: c.At(3 * math.Pi / 2),
		End:    c.At(math.Pi/2 - theta),
	}
	if err := finite("iangle", angle.Start.X, angle.Start.Y, angle.End.X, angle.End.Y); err != nil {
		return Angle{}, err
	}
	return angle, nil
}

// Centroid returns the average of the three vertices.
func (t Triangle) Centroid() (Point, error) {
	return finitePoint("centroid", Point{
		X: (t.A.X + t.B.X + t.C.X) / 3,
		Y: (t.A.Y + t.B.Y + t.C.Y) / 3,
	})
}

// Circumcenter returns the intersection of the perpendicular bisectors of the sides.
func (t Triangle) Circumcenter() (Point, error) {
	b, c := t.B.Sub(t.A), t.C.Sub(t.A)
	d := 2 * b.Cross(c)
	bb, cc := b.Dot(b), c.Dot(c)
	o := Point{
		X: (c.Y*bb - b.Y*cc) / d,
		Y: (b.X*cc - c.X*bb) / d,
	}
	return finitePoint("circumcenter", t.A.Add(o))
}

// Orthocenter returns the intersection of the altitudes from A and B.
func (t Triangle) Orthocenter() (Point, error) {
	perp := func(p Point) Point { return Point{X: -p.Y, Y: p.X} }
	h, ok := lineIntersection(t.A, perp(t.C.Sub(t.B)), t.B, perp(t.C.Sub(t.A)))
	if !ok {
		return Point{}, invalid("orthocenter", "altitudes of %v are parallel", t)
	}
	return finitePoint("orthocenter", h)
}

// SideLengths returns |BC|, |CA| and |AB|, the lengths opposite A, B and C.
func (t Triangle) SideLengths() (a, b, c float64) {
	return Distance(t.B, t.C), Distance(t.C, t.A), Distance(t.A, t.B)
}

// Incenter returns the vertex average weighted by the lengths of the opposite sides.
func (t Triangle) Incenter() (Point, error) {
	a, b, c := t.SideLengths()
	p := a + b + c
	return finitePoint("incenter", Point{
		X: (a*t.A.X + b*t.B.X + c*t.C.X) / p,
		Y: (a*t.A.Y + b*t.B.Y + c*t.C.Y) / p,
	})
}

// Area returns the unsigned area from the cross product of two sides.
func (t Triangle) Area() float64 {
	return math.Abs(t.B.Sub(t.A).Cross(t.C.Sub(t.A))) / 2
}

// Inradius returns the area divided by the semiperimeter.
func (t Triangle) Inradius() (float64, error) {
	a, b, c := t.SideLengths()
	r := t.Area() / ((a + b + c) / 2)
	if err := finite("inradius", r); err != nil {
		return 0, err
	}
	return r, nil
}

// lineIntersection intersects the line through p with direction d and the line through q with
// direction e. ok is false when the lines are parallel.
func lineIntersection(p, d, q, e Point) (_ Point, ok bool) {
	denom := d.Cross(e)
	if math.Abs(denom) <= Epsilon*d.Len()*e.Len() {
		return Point{}, false
	}
	t := q.Sub(p).Cross(e) / denom
	return p.Add(d.Scale(t)), true
}

func direction(op string, l Lineseg) (Point, error) {
	d := l.Direction()
	if d.Len() <= Epsilon {
		return Point{}, invalid(op, "segment %v has zero length", l)
	}
	return d, nil
}

// IntersectLines intersects the infinite lines through two segments.
func IntersectLines(l, m Lineseg) (Point, error) {
	d, err := direction("intersect", l)
	if err != nil {
		return Point{}, err
	}
	e, err := direction("intersect", m)
	if err != nil {
		return Point{}, err
	}
	p, ok := lineIntersection(l.Start, d, m.Start, e)
	if !ok {
		return Point{}, nointersect("intersect", "%v and %v are parallel", l, m)
	}
	return finitePoint("intersect", p)
}

// IntersectionIndex converts a number to an index for IntersectLineCircle. Only exactly 0 and
// 1 are accepted.
func IntersectionIndex(n float64) (int, error) {
	switch n {
	case 0:
		return 0, nil
	case 1:
		return 1, nil
	}
	return 0, nointersect("intersect", "index %s is not 0 or 1", fmtfloat(n))
}

// IntersectLineCircle returns one of the intersections of the infinite line through l with c.
//
// The line is parametrised as Start + t·u with u the unit vector from Start toward End; index 0
// is the intersection with the smaller t and index 1 the larger. A tangent line gives the same
// point for both indices.
func IntersectLineCircle(l Lineseg, c Circle, index int) (Point, error) {
	d, err := direction("intersect", l)
	if err != nil {
		return Point{}, err
	}
	if index != 0 && index != 1 {
		return Point{}, nointersect("intersect", "index %d is not 0 or 1", index)
	}

	u := d.Scale(1 / d.Len())
	w := l.Start.Sub(c.Center)
	b := u.Dot(w)
	disc := b*b - (w.Dot(w) - c.Radius*c.Radius)
	if disc < 0 {
		if disc < -Epsilon*math.Max(1, c.Radius*c.Radius) {
			return Point{}, nointersect("intersect", "%v misses %v", l, c)
		}
		disc = 0
	}

	s := math.Sqrt(disc)
	t := -b - s
	if index == 1 {
		t = -b + s
	}
	return finitePoint("intersect", l.Start.Add(u.Scale(t)))
}
