package builtins

import (
	"github.com/Injng/elements/geom"
	"github.com/Injng/elements/lisp/interp"
)

func IntersectLines(_ *interp.Context, args []geom.Value) (geom.Value, error) {
	return geom.IntersectLines(seg(args[0]), seg(args[1]))
}

// IntersectLineCircle returns intersection 0 or 1 of a line and a circle, ordered along the
// segment's direction.
func IntersectLineCircle(_ *interp.Context, args []geom.Value) (geom.Value, error) {
	index, err := geom.IntersectionIndex(num(args[2]))
	if err != nil {
		return nil, err
	}
	return geom.IntersectLineCircle(seg(args[0]), circ(args[1]), index)
}

func BindIntersections(ctx *interp.Context) {
	ctx.BindProc("intersect", sig(lineseg, lineseg), IntersectLines)
	ctx.BindProc("intersect", sig(lineseg, circle, number), IntersectLineCircle)
}

func Measure(_ *interp.Context, args []geom.Value) (geom.Value, error) {
	return geom.Number(ang(args[0]).Degrees()), nil
}

func Distance(_ *interp.Context, args []geom.Value) (geom.Value, error) {
	d, err := geom.MeasureDistance(pt(args[0]), pt(args[1]))
	if err != nil {
		return nil, err
	}
	return geom.Number(d), nil
}

func Radius(_ *interp.Context, args []geom.Value) (geom.Value, error) {
	return geom.Number(circ(args[0]).Radius), nil
}

func Center(_ *interp.Context, args []geom.Value) (geom.Value, error) {
	return circ(args[0]).Center, nil
}

func BindMeasures(ctx *interp.Context) {
	ctx.BindProc("measure", sig(angle), Measure)
	ctx.BindProc("distance", sig(point, point), Distance)
	ctx.BindProc("radius", sig(circle), Radius)
	ctx.BindProc("center", sig(circle), Center)
}
