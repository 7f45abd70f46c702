package builtins

import (
	"github.com/Injng/elements/geom"
	"github.com/Injng/elements/internal/debug"
	"github.com/Injng/elements/lisp/interp"
)

func Triangle(_ *interp.Context, args []geom.Value) (geom.Value, error) {
	return geom.NewTriangle(pt(args[0]), pt(args[1]), pt(args[2]))
}

func TriangleFromAngle(_ *interp.Context, args []geom.Value) (geom.Value, error) {
	return geom.TriangleFromAngle(ang(args[0]))
}

// InscribedTriangle samples a triangle on a circle using the context's random source.
func InscribedTriangle(ctx *interp.Context, args []geom.Value) (geom.Value, error) {
	t, err := geom.InscribedTriangle(circ(args[0]), ctx.Rand())
	if err != nil {
		return nil, err
	}
	debug.Logf("sampled %v", t)
	return t, nil
}

// center adapts a triangle center construction to a Proc.
func center(fn func(geom.Triangle) (geom.Point, error)) interp.Proc {
	return func(_ *interp.Context, args []geom.Value) (geom.Value, error) {
		return fn(tri(args[0]))
	}
}


func Inradius(_ *interp.Context, args []geom.Value) (geom.Value, error) {
	r, err := tri(args[0]).Inradius()
	if err != nil {
		return nil, err
	}
	return geom.Number(r), nil
}

func BindTriangles(ctx *interp.Context) {
	ctx.BindProc("triangle", sig(point, point, point), Triangle)
	ctx.BindProc("triangle", sig(angle), TriangleFromAngle)
	ctx.BindProc("triangle", sig(circle), InscribedTriangle)

	ctx.BindProc("circumcenter", sig(triangle), center(geom.Triangle.Circumcenter))
	ctx.BindProc("orthocenter", sig(triangle), center(geom.Triangle.Orthocenter))
	ctx.BindProc("centroid", sig(triangle), center(geom.Triangle.Centroid))
	ctx.BindProc("incenter", sig(triangle), center(geom.Triangle.Incenter))
	ctx.BindProc("inradius", sig(triangle), Inradius)
}
