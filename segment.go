package splines

import (
	"github.com/npillmayer/arithm"
)

// CurveSegment is one piece of a spline: a Bézier curve between two
// consecutive knots. Concrete types are QuadraticSegment and CubicSegment.
type CurveSegment interface {
	Start() arithm.Pair
	End() arithm.Pair
	Point(t float64) arithm.Pair
	transformed(m arithm.AT) CurveSegment
}

// QuadraticSegment is a curve with a single control point. Only the first
// and the last segment of an open spline are quadratic: the outermost
// knots own one handle each, and no second handle is fabricated.
type QuadraticSegment struct {
	P0   arithm.Pair
	Ctrl arithm.Pair
	P1   arithm.Pair
}

// CubicSegment is a curve with two control points, one per adjacent knot.
type CubicSegment struct {
	P0    arithm.Pair
	Ctrl1 arithm.Pair
	Ctrl2 arithm.Pair
	P1    arithm.Pair
}

// Start returns the knot the segment departs from.
func (seg QuadraticSegment) Start() arithm.Pair { return seg.P0 }

// End returns the knot the segment arrives at.
func (seg QuadraticSegment) End() arithm.Pair { return seg.P1 }

// Point evaluates the curve at parameter t in [0,1], using the Bernstein
// form (1-t)²·P0 + 2t(1-t)·Ctrl + t²·P1.
func (seg QuadraticSegment) Point(t float64) arithm.Pair {
	u := 1 - t
	x := u*u*seg.P0.X() + 2*t*u*seg.Ctrl.X() + t*t*seg.P1.X()
	y := u*u*seg.P0.Y() + 2*t*u*seg.Ctrl.Y() + t*t*seg.P1.Y()
	return arithm.P(x, y)
}

func (seg QuadraticSegment) transformed(m arithm.AT) CurveSegment {
	return QuadraticSegment{
		P0:   m.Transform(seg.P0),
		Ctrl: m.Transform(seg.Ctrl),
		P1:   m.Transform(seg.P1),
	}
}

// Start returns the knot the segment departs from.
func (seg CubicSegment) Start() arithm.Pair { return seg.P0 }

// End returns the knot the segment arrives at.
func (seg CubicSegment) End() arithm.Pair { return seg.P1 }

// Point evaluates the curve at parameter t in [0,1].
func (seg CubicSegment) Point(t float64) arithm.Pair {
	u := 1 - t
	x := u*u*u*seg.P0.X() + 3*t*u*u*seg.Ctrl1.X() + 3*t*t*u*seg.Ctrl2.X() + t*t*t*seg.P1.X()
	y := u*u*u*seg.P0.Y() + 3*t*u*u*seg.Ctrl1.Y() + 3*t*t*u*seg.Ctrl2.Y() + t*t*t*seg.P1.Y()
	return arithm.P(x, y)
}

func (seg CubicSegment) transformed(m arithm.AT) CurveSegment {
	return CubicSegment{
		P0:    m.Transform(seg.P0),
		Ctrl1: m.Transform(seg.Ctrl1),
		Ctrl2: m.Transform(seg.Ctrl2),
		P1:    m.Transform(seg.P1),
	}
}

// Spline is the complete, renderer-agnostic description of a smooth curve
// through the knots of a polyline: a starting knot plus an ordered list of
// curve segments. Consecutive segments share their end/start knot.
type Spline struct {
	start    arithm.Pair
	segments []CurveSegment
	cycle    bool
}

// Start returns the starting knot of the spline.
func (sp *Spline) Start() arithm.Pair {
	return sp.start
}

// Segments returns the ordered curve segments of the spline.
func (sp *Spline) Segments() []CurveSegment {
	return sp.segments
}

// IsCycle is a predicate: is this spline closed?
func (sp *Spline) IsCycle() bool {
	return sp.cycle
}

// Transformed returns a new spline with every knot and every control point
// mapped through an affine transform. Render pipelines use this to scale
// or to flip the y-axis.
func (sp *Spline) Transformed(m arithm.AT) *Spline {
	t := &Spline{
		start:    m.Transform(sp.start),
		segments: make([]CurveSegment, len(sp.segments)),
		cycle:    sp.cycle,
	}
	for i, seg := range sp.segments {
		t.segments[i] = seg.transformed(m)
	}
	return t
}
