package splines

import (
	"math/cmplx"
	"testing"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestQuadraticEvaluation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := QuadraticSegment{P0: arithm.P(0, 0), Ctrl: arithm.P(1, 2), P1: arithm.P(2, 0)}
	if seg.Point(0) != seg.P0 {
		t.Errorf("Point(0) = %s", seg.Point(0))
	}
	if seg.Point(1) != seg.P1 {
		t.Errorf("Point(1) = %s", seg.Point(1))
	}
	// apex of the parabola
	if mid := seg.Point(0.5); !mid.Equal(arithm.P(1, 1)) {
		t.Errorf("Point(0.5) = %s, want (1,1)", mid)
	}
}

func TestCubicEvaluation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := CubicSegment{
		P0:    arithm.P(0, 0),
		Ctrl1: arithm.P(0, 1),
		Ctrl2: arithm.P(2, 1),
		P1:    arithm.P(2, 0),
	}
	if seg.Point(0) != seg.P0 || seg.Point(1) != seg.P1 {
		t.Errorf("endpoints not interpolated: %s, %s", seg.Point(0), seg.Point(1))
	}
	// symmetric control polygon, so the midpoint sits on x = 1
	mid := seg.Point(0.5)
	if !arithm.Is0(mid.X() - 1) {
		t.Errorf("Point(0.5) = %s, want x = 1", mid)
	}
	if mid.Y() <= 0 || mid.Y() >= 1 {
		t.Errorf("Point(0.5) = %s, want y within the hull", mid)
	}
}

func TestSegmentTransformRoundTrip(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sp := MustSynthesize(chartKnots(), 0.4)
	there := sp.Transformed(arithm.Translation(arithm.P(5, 7)))
	back := there.Transformed(arithm.Translation(arithm.P(-5, -7)))
	for i, seg := range back.Segments() {
		orig := sp.Segments()[i]
		if cmplx.Abs((seg.Start() - orig.Start()).C()) > 1e-9 ||
			cmplx.Abs((seg.End() - orig.End()).C()) > 1e-9 {
			t.Errorf("segment %d did not survive the round trip", i)
		}
	}
}
