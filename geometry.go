package splines

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/arithm"
)

// KnotGeometry is the complete derivation record for one interior knot:
// the joining line between its two neighbors, the perpendiculars of that
// line, the handle angles and radii, and the resulting pair of control
// points. Records are recomputed for every synthesis call and never
// mutated afterwards.
type KnotGeometry struct {
	Knot       int         // knot index within the polyline
	Z          arithm.Pair // the knot itself
	Join       arithm.Pair // joining vector, Z(i+1) - Z(i-1)
	Length     float64     // length of the joining vector
	Unit       arithm.Pair // unit vector of the joining line
	NormalPre  arithm.Pair // unit perpendicular inducing the pre-handle
	NormalPost arithm.Pair // unit perpendicular inducing the post-handle
	AnglePre   float64     // direction of the pre-handle, in radians
	AnglePost  float64     // direction of the post-handle, in radians
	DistPre    float64     // distance to the previous knot
	DistPost   float64     // distance to the next knot
	RadiusPre  float64     // handle length on the pre side
	RadiusPost float64     // handle length on the post side
	PreC       arithm.Pair // control point i-, facing the previous knot
	PostC      arithm.Pair // control point i+, facing the next knot
}

// knotGeometry derives the geometry record for interior knot i. The two
// control points lie on the line through Z(i) parallel to the joining
// line, which guarantees a continuous tangent across the knot. The
// combined handle span scaling*Length is distributed in proportion to the
// distances of the two neighbors, so the handle nearer to the shorter
// adjacent segment comes out shorter. Pure function of the polyline.
func knotGeometry(pl *Polyline, i int, scaling float64) (KnotGeometry, error) {
	g := KnotGeometry{Knot: i, Z: pl.Z(i)}
	g.Join = pl.Z(i+1) - pl.Z(i-1)
	g.Length = cmplx.Abs(g.Join.C())
	if g.Length <= _epsilon {
		return g, fmt.Errorf("%w: neighbors of knot %d coincide", ErrDegenerateSegment, i)
	}
	g.Unit = arithm.P(g.Join.X()/g.Length, g.Join.Y()/g.Length)
	g.NormalPre = arithm.P(-g.Unit.Y(), g.Unit.X())
	g.NormalPost = arithm.P(g.Unit.Y(), -g.Unit.X())
	// A quarter turn maps each perpendicular back onto the joining-line
	// direction; the handles extend along the joining line, not across it.
	g.AnglePre = reduceAngle(cmplx.Phase(g.NormalPre.C()) + math.Pi/2)
	g.AnglePost = reduceAngle(cmplx.Phase(g.NormalPost.C()) + math.Pi/2)
	g.DistPre = cmplx.Abs((pl.Z(i) - pl.Z(i-1)).C())
	g.DistPost = cmplx.Abs((pl.Z(i+1) - pl.Z(i)).C())
	span := scaling * g.Length
	g.RadiusPre = span * g.DistPre / (g.DistPre + g.DistPost)
	g.RadiusPost = span - g.RadiusPre
	// The pre-handle direction is -Unit, the post-handle direction +Unit
	// (what the angles above express in polar form).
	g.PreC = (g.Z - g.Unit.Scaled(g.RadiusPre)).Zap()
	g.PostC = (g.Z + g.Unit.Scaled(g.RadiusPost)).Zap()
	return g, nil
}
