package geom

import (
	"math"
)

// MaxSamples bounds the number of attempts made by InscribedTriangle.
const MaxSamples = 1000

// Rand is the source of randomness for randomised constructions. *math/rand.Rand satisfies it.
type Rand interface {
	// Float64 returns a number in [0, 1).
	Float64() float64
}

// InscribedTriangle samples a triangle with its vertices on c such that every side is strictly
// longer than the radius. Vertices are drawn at uniformly random polar angles until a sample
// satisfies the spacing, up to MaxSamples attempts.
func InscribedTriangle(c Circle, rng Rand) (Triangle, error) {
	for attempt := 0; attempt < MaxSamples; attempt++ {
		var v [3]Point
		for i := range v {
			v[i] = c.At(2 * math.Pi * rng.Float64())
		}
		if !spaced(c.Radius, v) {
			continue
		}
		if t, err := NewTriangle(v[0], v[1], v[2]); err == nil {
			return t, nil
		}
	}
	return Triangle{}, &GeometryGenerationError{
		Op:       "triangle",
		Attempts: MaxSamples,
		Reason:   "no sample with every side longer than radius " + fmtfloat(c.Radius),
	}
}

func spaced(radius float64, v [3]Point) bool {
	return Distance(v[0], v[1]) > radius &&
		Distance(v[1], v[2]) > radius &&
		Distance(v[2], v[0]) > radius
}
