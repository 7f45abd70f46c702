// Package builtins binds the geometric procedures of the construction language to an
// interp.Context.
package builtins

import (
	"github.com/Injng/elements/geom"
	"github.com/Injng/elements/lisp/interp"
)

const (
	number   = geom.KindNumber
	point    = geom.KindPoint
	lineseg  = geom.KindLineseg
	circle   = geom.KindCircle
	angle    = geom.KindAngle
	triangle = geom.KindTriangle
)

func sig(kinds ...geom.Kind) interp.Signature { return interp.Signature(kinds) }

// Argument accessors. Procedures only run once their signature matched, so the assertions hold.

func num(v geom.Value) float64       { return float64(v.(geom.Number)) }
func pt(v geom.Value) geom.Point     { return v.(geom.Point) }
func seg(v geom.Value) geom.Lineseg  { return v.(geom.Lineseg) }
func circ(v geom.Value) geom.Circle  { return v.(geom.Circle) }
func ang(v geom.Value) geom.Angle    { return v.(geom.Angle) }
func tri(v geom.Value) geom.Triangle { return v.(geom.Triangle) }

// BindAll binds every built-in procedure.
func BindAll(ctx *interp.Context) *interp.Context {
	BindConstructors(ctx)
	BindTriangles(ctx)
	BindIntersections(ctx)
	BindMeasures(ctx)
	return ctx
}

func Point(_ *interp.Context, args []geom.Value) (geom.Value, error) {
	return geom.NewPoint(num(args[0]), num(args[1]))
}

func Lineseg(_ *interp.Context, args []geom.Value) (geom.Value, error) {
	return geom.Lineseg{Start: pt(args[0]), End: pt(args[1])}, nil
}

func Midpoint(_ *interp.Context, args []geom.Value) (geom.Value, error) {
	return geom.Midpoint(pt(args[0]), pt(args[1]))
}

func MidpointOf(_ *interp.Context, args []geom.Value) (geom.Value, error) {
	l := seg(args[0])
	return geom.Midpoint(l.Start, l.End)
}

func DefaultCircle(*interp.Context, []geom.Value) (geom.Value, error) {
	return geom.DefaultCircle(), nil
}

func Circle(_ *interp.Context, args []geom.Value) (geom.Value, error) {
	return geom.NewCircle(pt(args[0]), num(args[1]))
}

func Angle(_ *interp.Context, args []geom.Value) (geom.Value, error) {
	return geom.NewAngle(pt(args[0]), pt(args[1]), pt(args[2]))
}

func InscribedAngle(_ *interp.Context, args []geom.Value) (geom.Value, error) {
	return geom.InscribedAngle(circ(args[0]), num(args[1]))
}

func BindConstructors(ctx *interp.Context) {
	ctx.BindProc("point", sig(number, number), Point)
	ctx.BindProc("lineseg", sig(point, point), Lineseg)
	ctx.BindProc("midpoint", sig(point, point), Midpoint)
	ctx.BindProc("midpoint", sig(lineseg), MidpointOf)
	ctx.BindProc("circle", sig(), DefaultCircle)
	ctx.BindProc("circle", sig(point, number), Circle)
	ctx.BindProc("angle", sig(point, point, point), Angle)
	ctx.BindProc("iangle", sig(circle, number), InscribedAngle)
}
