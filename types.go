package splines

import (
	"errors"
	"math/cmplx"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'splines'
func tracer() tracing.Trace {
	return tracing.Select("splines")
}

const pi float64 = 3.14159265
const pi2 float64 = 6.28318530
const _epsilon = 0.0000001

var (
	// ErrNilPolyline indicates a nil polyline pointer.
	ErrNilPolyline = errors.New("polyline must not be nil")
	// ErrTooFewKnots indicates the knot count is insufficient for synthesis.
	ErrTooFewKnots = errors.New("polyline has too few knots")
	// ErrInvalidKnot indicates a knot coordinate contains NaN/Inf.
	ErrInvalidKnot = errors.New("polyline has invalid knot coordinate")
	// ErrScalingOutOfRange indicates a scaling factor outside of [0,1].
	ErrScalingOutOfRange = errors.New("scaling factor outside of [0,1]")
	// ErrDegenerateSegment indicates coincident knots which leave no direction to derive.
	ErrDegenerateSegment = errors.New("polyline has degenerate segment")
	// ErrCycleHasDuplicateTerminalKnot indicates a cyclic polyline redundantly repeats
	// its first knot as the last knot.
	ErrCycleHasDuplicateTerminalKnot = errors.New("cycle must not repeat first knot as terminal knot")
)

// Polyline is the concrete type for building knot sequences to be smoothed.
// To construct a polyline, start with NullPolyline(), which creates an empty
// sequence, and then extend it.
type Polyline struct {
	points []arithm.Pair // knot i
	cycle  bool          // is this polyline closed ?
}

// Controls collects the synthesized control points flanking each knot.
// Unlike solver-style implementations which keep parallel arrays addressed
// by shared position, handles are stored as one record per knot.
type Controls struct {
	handles []handlePair
}

// The two handles owned by a knot. Outermost knots of an open polyline
// own just one of them; the missing one stays NaN.
type handlePair struct {
	pre  arithm.Pair // control point i-, facing the previous knot
	post arithm.Pair // control point i+, facing the next knot
}

func nanPair() arithm.Pair {
	return arithm.Pair(cmplx.NaN())
}

// SetPreControl sets the control point facing the previous knot.
func (ctrls *Controls) SetPreControl(i int, c arithm.Pair) {
	ctrls.extend(i)
	ctrls.handles[i].pre = c
}

// SetPostControl sets the control point facing the next knot.
func (ctrls *Controls) SetPostControl(i int, c arithm.Pair) {
	ctrls.extend(i)
	ctrls.handles[i].post = c
}

// PreControl returns the control point of knot i facing the previous knot,
// or a NaN pair if it has not been set.
func (ctrls *Controls) PreControl(i int) arithm.Pair {
	if i >= len(ctrls.handles) {
		return nanPair()
	}
	return ctrls.handles[i].pre
}

// PostControl returns the control point of knot i facing the next knot,
// or a NaN pair if it has not been set.
func (ctrls *Controls) PostControl(i int) arithm.Pair {
	if i >= len(ctrls.handles) {
		return nanPair()
	}
	return ctrls.handles[i].post
}

// Extend the handle records to make room for index i. Fresh records start
// out with both handles unknown.
func (ctrls *Controls) extend(i int) {
	for l := len(ctrls.handles); l <= i; l++ {
		ctrls.handles = append(ctrls.handles, handlePair{pre: nanPair(), post: nanPair()})
	}
}
