package geom

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

const tol = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) <= tol*math.Max(1, math.Max(math.Abs(a), math.Abs(b))) }

func nearPt(p, q Point) bool { return near(p.X, q.X) && near(p.Y, q.Y) }

func mustTriangle(t *testing.T, a, b, c Point) Triangle {
	t.Helper()
	tri, err := NewTriangle(a, b, c)
	if err != nil {
		t.Fatalf("NewTriangle(%v, %v, %v) err = %v", a, b, c, err)
	}
	return tri
}

var triangles = map[string][3]Point{
	"right-3-4-5": {Pt(0, 0), Pt(0, 3), Pt(4, 0)},
	"scalene":     {Pt(-2, 1), Pt(5, 3.5), Pt(1, -4)},
	"equilateral": {Pt(0, 0), Pt(2, 0), Pt(1, math.Sqrt(3))},
	"obtuse":      {Pt(0, 0), Pt(10, 0), Pt(1, 1)},
	"far":         {Pt(1e6, 1e6), Pt(1e6+3, 1e6), Pt(1e6, 1e6+7)},
}

func TestMidpointCommutative(t *testing.T) {
	pairs := [][2]Point{
		{Pt(0, 0), Pt(2, 2)},
		{Pt(-1.5, 3), Pt(7.25, -0.125)},
		{Pt(1e12, 1), Pt(-1e-12, 3)},
	}
	for _, pq := range pairs {
		p, q := pq[0], pq[1]
		a, _ := Midpoint(p, q)
		b, _ := Midpoint(q, p)
		if a != b {
			t.Errorf("Midpoint(%v, %v) = %v; Midpoint(%v, %v) = %v", p, q, a, q, p, b)
		}
	}
	if got, err := Midpoint(Pt(0, 0), Pt(2, 4)); got != Pt(1, 2) || err != nil {
		t.Errorf("Midpoint = %v, %v; want %v", got, err, Pt(1, 2))
	}
}

func TestOverflow(t *testing.T) {
	const big = 9e307 // finite, but twice it is not
	var ie *InvalidGeometryError
	if p, err := Midpoint(Pt(big, 0), Pt(big, 0)); !errors.As(err, &ie) {
		t.Errorf("Midpoint overflow = %v, %v; want *InvalidGeometryError", p, err)
	}
	tri := mustTriangle(t, Pt(big, 0), Pt(big, 1), Pt(0, 1))
	if p, err := tri.Centroid(); !errors.As(err, &ie) {
		t.Errorf("Centroid overflow = %v, %v; want *InvalidGeometryError", p, err)
	}
	if d, err := MeasureDistance(Pt(-big, 0), Pt(big, 0)); !errors.As(err, &ie) {
		t.Errorf("MeasureDistance overflow = %v, %v; want *InvalidGeometryError", d, err)
	}
	if d, err := MeasureDistance(Pt(0, 0), Pt(3, 4)); d != 5 || err != nil {
		t.Errorf("MeasureDistance = %v, %v; want 5", d, err)
	}
}

func TestCentroid(t *testing.T) {
	for name, v := range triangles {
		a, b, c := v[0], v[1], v[2]
		want := Pt((a.X+b.X+c.X)/3, (a.Y+b.Y+c.Y)/3)
		orders := [][3]Point{{a, b, c}, {b, c, a}, {c, a, b}, {c, b, a}, {a, c, b}, {b, a, c}}
		for _, o := range orders {
			got, err := mustTriangle(t, o[0], o[1], o[2]).Centroid()
			if err != nil || !nearPt(got, want) {
				t.Errorf("%s: Centroid(%v) = %v; want %v", name, o, got, want)
			}
		}
	}
}

func TestCircumcenter(t *testing.T) {
	for name, v := range triangles {
		tri := mustTriangle(t, v[0], v[1], v[2])
		o, err := tri.Circumcenter()
		if err != nil {
			t.Fatalf("%s: Circumcenter() err = %v", name, err)
		}
		ra, rb, rc := Distance(o, tri.A), Distance(o, tri.B), Distance(o, tri.C)
		if !near(ra, rb) || !near(rb, rc) {
			t.Errorf("%s: circumcenter %v distances = %v, %v, %v; want equal", name, o, ra, rb, rc)
		}
	}

	o, _ := mustTriangle(t, Pt(0, 0), Pt(0, 3), Pt(4, 0)).Circumcenter()
	if want := Pt(2, 1.5); !nearPt(o, want) {
		t.Errorf("right triangle circumcenter = %v; want hypotenuse midpoint %v", o, want)
	}
}

func TestOrthocenter(t *testing.T) {
	h, err := mustTriangle(t, Pt(0, 0), Pt(0, 3), Pt(4, 0)).Orthocenter()
	if err != nil {
		t.Fatalf("Orthocenter() err = %v", err)
	}
	if want := Pt(0, 0); !nearPt(h, want) {
		t.Errorf("right triangle orthocenter = %v; want right-angle vertex %v", h, want)
	}

	for name, v := range triangles {
		tri := mustTriangle(t, v[0], v[1], v[2])
		h, err := tri.Orthocenter()
		if err != nil {
			t.Fatalf("%s: Orthocenter() err = %v", name, err)
		}
		// H lies on every altitude: (H - A) is perpendicular to BC, and so on.
		for i, side := range [3][2]Point{{tri.B, tri.C}, {tri.C, tri.A}, {tri.A, tri.B}} {
			vertex := tri.Vertices()[i]
			bc := side[1].Sub(side[0])
			dot := h.Sub(vertex).Dot(bc)
			if math.Abs(dot) > 1e-6*math.Max(1, h.Sub(vertex).Len()*bc.Len()) {
				t.Errorf("%s: orthocenter %v not on altitude from %v (dot %v)", name, h, vertex, dot)
			}
		}
	}
}

func lineDistance(p Point, l Lineseg) float64 {
	d := l.Direction()
	return math.Abs(d.Cross(p.Sub(l.Start))) / d.Len()
}

func TestIncenterInradius(t *testing.T) {
	tri := mustTriangle(t, Pt(0, 0), Pt(0, 3), Pt(4, 0))
	i, err := tri.Incenter()
	if err != nil {
		t.Fatalf("Incenter() err = %v", err)
	}
	if want := Pt(1, 1); !nearPt(i, want) {
		t.Errorf("Incenter() = %v; want %v", i, want)
	}
	if r, _ := tri.Inradius(); !near(r, 1) {
		t.Errorf("Inradius() = %v; want 1", r)
	}

	for name, v := range triangles {
		tri := mustTriangle(t, v[0], v[1], v[2])
		i, err := tri.Incenter()
		if err != nil {
			t.Fatalf("%s: Incenter() err = %v", name, err)
		}
		r, err := tri.Inradius()
		if err != nil {
			t.Fatalf("%s: Inradius() err = %v", name, err)
		}

		// shoelace
		a, b, c := tri.A, tri.B, tri.C
		area := math.Abs(a.X*(b.Y-c.Y)+b.X*(c.Y-a.Y)+c.X*(a.Y-b.Y)) / 2
		s := (Distance(a, b) + Distance(b, c) + Distance(c, a)) / 2
		if want := area / s; math.Abs(r-want) > 1e-9*math.Max(1, want) {
			t.Errorf("%s: Inradius() = %v; want %v", name, r, want)
		}

		for _, side := range tri.Sides() {
			if d := lineDistance(i, side); math.Abs(d-r) > 1e-6*math.Max(1, r) {
				t.Errorf("%s: incenter %v is %v from %v; want inradius %v", name, i, d, side, r)
			}
		}
	}
}

func TestNewTriangleCollinear(t *testing.T) {
	cases := map[string][3]Point{
		"line":       {Pt(0, 0), Pt(1, 1), Pt(2, 2)},
		"coincident": {Pt(1, 1), Pt(1, 1), Pt(3, 0)},
		"all-same":   {Pt(2, 2), Pt(2, 2), Pt(2, 2)},
		"nearly":     {Pt(0, 0), Pt(1, 1), Pt(2, 2+1e-12)},
	}
	for name, v := range cases {
		_, err := NewTriangle(v[0], v[1], v[2])
		var ie *InvalidGeometryError
		if !errors.As(err, &ie) {
			t.Errorf("%s: NewTriangle(%v) err = %v; want *InvalidGeometryError", name, v, err)
		}
	}
}

func TestNewCircle(t *testing.T) {
	if _, err := NewCircle(Pt(0, 0), -1); err == nil {
		t.Fatal("NewCircle(r=-1) err = nil; want error")
	} else if ie := (*InvalidGeometryError)(nil); !errors.As(err, &ie) {
		t.Fatalf("NewCircle(r=-1) err = (%T) %v; want *InvalidGeometryError", err, err)
	}

	c, err := NewCircle(Pt(1, 2), 0)
	if err != nil || c.Radius != 0 {
		t.Fatalf("NewCircle(r=0) = %v, %v; want zero radius circle", c, err)
	}

	if got, want := DefaultCircle(), (Circle{Center: Pt(0, 0), Radius: 5}); got != want {
		t.Fatalf("DefaultCircle() = %v; want %v", got, want)
	}
}

func TestAngle(t *testing.T) {
	a, err := NewAngle(Pt(1, 0), Pt(0, 0), Pt(0, 2))
	if err != nil {
		t.Fatalf("NewAngle() err = %v", err)
	}
	if d := a.Degrees(); !near(d, 90) {
		t.Errorf("Degrees() = %v; want 90", d)
	}

	if _, err := NewAngle(Pt(0, 0), Pt(0, 0), Pt(1, 1)); err == nil {
		t.Error("NewAngle with zero-length ray err = nil; want error")
	}

	tri, err := TriangleFromAngle(a)
	if err != nil {
		t.Fatalf("TriangleFromAngle() err = %v", err)
	}
	if want := (Triangle{Pt(1, 0), Pt(0, 0), Pt(0, 2)}); tri != want {
		t.Errorf("TriangleFromAngle() = %v; want %v", tri, want)
	}

	straight := Angle{Pt(-1, 0), Pt(0, 0), Pt(1, 0)}
	if _, err := TriangleFromAngle(straight); err == nil {
		t.Error("TriangleFromAngle(straight) err = nil; want error")
	}
}

func TestInscribedAngle(t *testing.T) {
	circles := []Circle{{Pt(0, 0), 5}, {Pt(-3, 7), 0.5}, {Pt(100, -40), 12}}
	for _, c := range circles {
		for _, deg := range []float64{1, 30, 45, 60, 90, 120, 179} {
			a, err := InscribedAngle(c, deg)
			if err != nil {
				t.Fatalf("InscribedAngle(%v, %v) err = %v", c, deg, err)
			}
			if got := a.Degrees(); math.Abs(got-deg) > 1e-7 {
				t.Errorf("InscribedAngle(%v, %v).Degrees() = %v", c, deg, got)
			}
			for _, p := range []Point{a.Start, a.Vertex, a.End} {
				if d := Distance(c.Center, p); !near(d, c.Radius) {
					t.Errorf("InscribedAngle(%v, %v): %v is %v from center", c, deg, p, d)
				}
			}
			again, _ := InscribedAngle(c, deg)
			if again != a {
				t.Errorf("InscribedAngle(%v, %v) not deterministic: %v then %v", c, deg, a, again)
			}
		}
	}

	a, _ := InscribedAngle(Circle{Pt(0, 0), 5}, 90)
	if !nearPt(a.Vertex, Pt(0, -5)) || !nearPt(a.Start, Pt(-5, 0)) || !nearPt(a.End, Pt(5, 0)) {
		t.Errorf("InscribedAngle(r=5, 90) = %v; want vertex (0,-5), rays to (-5,0) and (5,0)", a)
	}

	bad := []struct {
		c   Circle
		deg float64
	}{
		{Circle{Pt(0, 0), 5}, 0},
		{Circle{Pt(0, 0), 5}, 180},
		{Circle{Pt(0, 0), 5}, -30},
		{Circle{Pt(0, 0), 5}, 200},
		{Circle{Pt(0, 0), 0}, 45},
	}
	for _, b := range bad {
		var ie *InvalidGeometryError
		if _, err := InscribedAngle(b.c, b.deg); !errors.As(err, &ie) {
			t.Errorf("InscribedAngle(%v, %v) err = %v; want *InvalidGeometryError", b.c, b.deg, err)
		}
	}
}

func TestIntersectLines(t *testing.T) {
	p, err := IntersectLines(Lineseg{Pt(0, 0), Pt(1, 1)}, Lineseg{Pt(0, 1), Pt(1, 0)})
	if err != nil || !nearPt(p, Pt(0.5, 0.5)) {
		t.Errorf("IntersectLines(diagonals) = %v, %v; want (0.5, 0.5)", p, err)
	}

	// the lines extend past the segments
	p, err = IntersectLines(Lineseg{Pt(0, 0), Pt(1, 0)}, Lineseg{Pt(5, 1), Pt(5, 2)})
	if err != nil || !nearPt(p, Pt(5, 0)) {
		t.Errorf("IntersectLines(extended) = %v, %v; want (5, 0)", p, err)
	}

	var ne *NoIntersectionError
	if _, err := IntersectLines(Lineseg{Pt(0, 0), Pt(1, 1)}, Lineseg{Pt(0, 1), Pt(2, 3)}); !errors.As(err, &ne) {
		t.Errorf("IntersectLines(parallel) err = %v; want *NoIntersectionError", err)
	}

	var ie *InvalidGeometryError
	if _, err := IntersectLines(Lineseg{Pt(1, 1), Pt(1, 1)}, Lineseg{Pt(0, 1), Pt(2, 3)}); !errors.As(err, &ie) {
		t.Errorf("IntersectLines(zero-length) err = %v; want *InvalidGeometryError", err)
	}
}

func TestIntersectLineCircle(t *testing.T) {
	c := Circle{Pt(0, 0), 5}
	cases := []struct {
		name  string
		l     Lineseg
		index int
		want  Point
	}{
		{"forward/0", Lineseg{Pt(-10, 0), Pt(10, 0)}, 0, Pt(-5, 0)},
		{"forward/1", Lineseg{Pt(-10, 0), Pt(10, 0)}, 1, Pt(5, 0)},
		{"reversed/0", Lineseg{Pt(10, 0), Pt(-10, 0)}, 0, Pt(5, 0)},
		{"reversed/1", Lineseg{Pt(10, 0), Pt(-10, 0)}, 1, Pt(-5, 0)},
		{"short-segment", Lineseg{Pt(0, 0), Pt(0, 1)}, 0, Pt(0, -5)},
		{"tangent/0", Lineseg{Pt(-1, 5), Pt(1, 5)}, 0, Pt(0, 5)},
		{"tangent/1", Lineseg{Pt(-1, 5), Pt(1, 5)}, 1, Pt(0, 5)},
		{"diagonal/1", Lineseg{Pt(0, 0), Pt(3, 4)}, 1, Pt(3, 4)},
	}
	for _, tc := range cases {
		got, err := IntersectLineCircle(tc.l, c, tc.index)
		if err != nil {
			t.Errorf("%s: IntersectLineCircle err = %v", tc.name, err)
			continue
		}
		if !nearPt(got, tc.want) {
			t.Errorf("%s: IntersectLineCircle = %v; want %v", tc.name, got, tc.want)
		}
		if d := Distance(got, c.Center); !near(d, c.Radius) {
			t.Errorf("%s: intersection %v is %v from center", tc.name, got, d)
		}
	}

	var ne *NoIntersectionError
	if _, err := IntersectLineCircle(Lineseg{Pt(-1, 6), Pt(1, 6)}, c, 0); !errors.As(err, &ne) {
		t.Errorf("miss err = %v; want *NoIntersectionError", err)
	}
	if _, err := IntersectLineCircle(Lineseg{Pt(-1, 0), Pt(1, 0)}, c, 2); !errors.As(err, &ne) {
		t.Errorf("index 2 err = %v; want *NoIntersectionError", err)
	}
	var ie *InvalidGeometryError
	if _, err := IntersectLineCircle(Lineseg{Pt(1, 0), Pt(1, 0)}, c, 0); !errors.As(err, &ie) {
		t.Errorf("zero-length err = %v; want *InvalidGeometryError", err)
	}

	for _, n := range []float64{-1, 0.5, 2, math.NaN()} {
		if _, err := IntersectionIndex(n); !errors.As(err, &ne) {
			t.Errorf("IntersectionIndex(%v) err = %v; want *NoIntersectionError", n, err)
		}
	}
	if i, err := IntersectionIndex(1); i != 1 || err != nil {
		t.Errorf("IntersectionIndex(1) = %v, %v; want 1, nil", i, err)
	}
}

func TestInscribedTriangle(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	circles := []Circle{{Pt(0, 0), 5}, {Pt(3, -2), 0.25}, {Pt(-50, 50), 1000}}
	for _, c := range circles {
		for i := 0; i < 200; i++ {
			tri, err := InscribedTriangle(c, rng)
			if err != nil {
				t.Fatalf("InscribedTriangle(%v) err = %v", c, err)
			}
			v := tri.Vertices()
			for _, p := range v {
				if d := Distance(c.Center, p); !near(d, c.Radius) {
					t.Fatalf("InscribedTriangle(%v): %v is %v from center", c, p, d)
				}
			}
			for j := range v {
				if chord := Distance(v[j], v[(j+1)%3]); chord <= c.Radius {
					t.Fatalf("InscribedTriangle(%v): chord %v <= radius", c, chord)
				}
			}
		}
	}
}

type constRand float64

func (r constRand) Float64() float64 { return float64(r) }

func TestInscribedTriangleGivesUp(t *testing.T) {
	var ge *GeometryGenerationError

	if _, err := InscribedTriangle(Circle{Pt(0, 0), 0}, rand.New(rand.NewSource(2))); !errors.As(err, &ge) {
		t.Fatalf("InscribedTriangle(r=0) err = %v; want *GeometryGenerationError", err)
	}
	if ge.Attempts != MaxSamples {
		t.Errorf("Attempts = %d; want %d", ge.Attempts, MaxSamples)
	}

	if _, err := InscribedTriangle(Circle{Pt(0, 0), 5}, constRand(0.3)); !errors.As(err, &ge) {
		t.Fatalf("InscribedTriangle(constant source) err = %v; want *GeometryGenerationError", err)
	}
}

func TestFormat(t *testing.T) {
	cases := map[float64]string{
		0:        "0",
		3:        "3",
		-2.5:     "-2.5",
		1.0 / 3:  "0.3333",
		-0.00001: "0",
		60.00004: "60",
		1234.5:   "1234.5",
	}
	for in, want := range cases {
		if got := Format(in); got != want {
			t.Errorf("Format(%v) = %q; want %q", in, got, want)
		}
	}
}
