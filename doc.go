// Package splines turns an ordered sequence of 2D points into a smooth
// spline of Bézier curve segments.
/*

Line charts and freehand polylines look better when drawn with rounded,
continuous curvature instead of straight segments. This package computes,
for a given sequence of knots and a curviness factor, the Bézier control
points that make the curve segments meet at every knot with a continuous
tangent direction. The underlying data points are never altered; only
control points are synthesized.

The method places both handles of an interior knot on a line through the
knot which is parallel to the "joining line" of its two neighbors, and
distributes the handle lengths in proportion to the distances to those
neighbors. Uneven point spacing therefore does not produce bulging
artifacts. It is described in:

   Smooth Bézier Spline Through Prescribed Points -- R. Spencer (2010)
   https://www.scaledinnovation.com/analytics/splines/aboutSplines.html

In contrast to Hobby's spline interpolation (see package
github.com/npillmayer/arithm/jhobby) no global equation system is solved:
every knot's handles follow in closed form from its two neighbors, which
makes the computation O(N), local and trivially deterministic.

# Usage

Clients build a skeleton polyline with a builder pattern and then have the
control points synthesized (package qualifiers omitted for brevity):

   pl := NullPolyline().Knot(P(50,182)).Knot(P(100,166)).Knot(P(150,87)).
      Knot(P(200,191)).Knot(P(250,106)).End()
   sp, err := Synthesize(pl, 0.4)

The resulting spline starts with a quadratic segment, continues with cubic
segments and ends with a quadratic segment (the outermost knots own a
single handle each). Closing the polyline with Cycle() instead of End()
yields a closed spline of cubic segments only.

Serialization to SVG path data lives in the subpackage svgpath:

   d := svgpath.PathData(sp)   // "M 50,182 Q ... C ... C ... Q ..."

Diagnostic consumers may observe every intermediate geometry record
(joining vectors, normals, angles, handle radii) without altering the
result:

   rec := &Recorder{}
   sp, err := SynthesizeObserved(pl, 0.4, rec)
   fmt.Println(rec.Table())

# BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package splines
