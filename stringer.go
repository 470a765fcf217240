package splines

import (
	"fmt"
	"strings"
)

// AsString returns a spline as a (debugging) string, in a notation close
// to MetaFont's path output. Quadratic segments list their single control
// point, cubic segments both.
//
// Example, an open spline over three knots:
//
//	(0,0) .. control (0.5000,0.0000) .. (1,0) .. control (1.5000,0.0000) .. (2,0)
func AsString(sp *Spline) string {
	if sp == nil {
		return "<nil spline>"
	}
	var b strings.Builder
	b.WriteString(ptstring(sp.start, false))
	for i, seg := range sp.segments {
		switch c := seg.(type) {
		case QuadraticSegment:
			fmt.Fprintf(&b, " .. control %s", ptstring(c.Ctrl, true))
		case CubicSegment:
			fmt.Fprintf(&b, " .. controls %s and %s", ptstring(c.Ctrl1, true), ptstring(c.Ctrl2, true))
		}
		if sp.cycle && i == len(sp.segments)-1 {
			b.WriteString(" .. cycle")
		} else {
			fmt.Fprintf(&b, " .. %s", ptstring(seg.End(), false))
		}
	}
	return b.String()
}

// String implements fmt.Stringer for polylines, listing the knots in
// MetaFont's ".." notation.
func (pl *Polyline) String() string {
	var b strings.Builder
	for i := 0; i < pl.N(); i++ {
		if i > 0 {
			b.WriteString(" .. ")
		}
		b.WriteString(ptstring(pl.Z(i), false))
	}
	if pl.IsCycle() {
		b.WriteString(" .. cycle")
	}
	return b.String()
}
