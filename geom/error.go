package geom

import (
	"fmt"
	"math"
	"strings"
)

// InvalidGeometryError reports degenerate input: collinear triangle points, a negative radius,
// a zero-length direction, or a result that is not finite.
type InvalidGeometryError struct {
	Op     string
	Reason string
}

func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("%s: invalid geometry: %s", e.Op, e.Reason)
}

// NoIntersectionError reports parallel lines, a line that misses a circle, or an intersection
// index outside {0, 1}.
type NoIntersectionError struct {
	Op     string
	Reason string
}

func (e *NoIntersectionError) Error() string {
	return fmt.Sprintf("%s: no intersection: %s", e.Op, e.Reason)
}

// GeometryGenerationError reports that a randomised construction found no acceptable sample
// within its attempt budget.
type GeometryGenerationError struct {
	Op       string
	Attempts int
	Reason   string
}

func (e *GeometryGenerationError) Error() string {
	return fmt.Sprintf("%s: gave up after %d attempts: %s", e.Op, e.Attempts, e.Reason)
}

func invalid(op, format string, args ...interface{}) error {
	return &InvalidGeometryError{Op: op, Reason: fmt.Sprintf(format, args...)}
}

func nointersect(op, format string, args ...interface{}) error {
	return &NoIntersectionError{Op: op, Reason: fmt.Sprintf(format, args...)}
}

// finite fails with InvalidGeometryError if any of the given coordinates is NaN or infinite.
func finite(op string, fs ...float64) error {
	var bad []string
	for _, f := range fs {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			bad = append(bad, fmtfloat(f))
		}
	}
	if len(bad) > 0 {
		return invalid(op, "non-finite result (%s)", strings.Join(bad, ", "))
	}
	return nil
}

func finitePoint(op string, p Point) (Point, error) {
	if err := finite(op, p.X, p.Y); err != nil {
		return Point{}, err
	}
	return p, nil
}
