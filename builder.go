package splines

import (
	"github.com/npillmayer/arithm"
)

// NullPolyline creates an empty polyline, to be extended by subsequent
// builder calls. The following example builds an open polyline of three
// knots.
//
//	pl := NullPolyline().Knot(arithm.P(0, 0)).Knot(arithm.P(1, 1)).Knot(arithm.P(2, 0)).End()
//
// Calling End() or Cycle() returns the polyline, ready for synthesis.
func NullPolyline() *Polyline {
	return &Polyline{}
}

// Knots is a shorthand for building an open polyline from a list of points.
func Knots(points ...arithm.Pair) *Polyline {
	pl := NullPolyline()
	for _, p := range points {
		pl.Knot(p)
	}
	return pl
}

// Knot adds a knot to a polyline. Part of builder functionality.
func (pl *Polyline) Knot(p arithm.Pair) *Polyline {
	pl.points = append(pl.points, p)
	return pl
}

// End terminates an open polyline. Part of builder functionality.
func (pl *Polyline) End() *Polyline {
	return pl
}

// Cycle closes a polyline. The last knot connects back to the first one;
// callers must not repeat the first knot. Part of builder functionality.
func (pl *Polyline) Cycle() *Polyline {
	pl.cycle = true
	return pl
}

// IsCycle is a predicate: is this polyline closed?
func (pl *Polyline) IsCycle() bool {
	return pl.cycle
}

// N returns the knot count of this polyline.
func (pl *Polyline) N() int {
	return len(pl.points)
}

// Z returns the knot at position (i mod N). Negative indices wrap around,
// i.e. Z(-1) is the last knot.
func (pl *Polyline) Z(i int) arithm.Pair {
	n := pl.N()
	if i < 0 || i >= n {
		i = ((i % n) + n) % n
	}
	return pl.points[i]
}
