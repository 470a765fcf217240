package splines

import (
	"fmt"
	"math"
	"math/cmplx"
)

// ValidateForSynthesis checks whether a polyline can be smoothed with the
// given scaling factor. All violations are fatal; nothing is silently
// corrected: a scaling factor outside of [0,1] is not clamped, and
// coincident knots are not deduplicated.
func (pl *Polyline) ValidateForSynthesis(scaling float64) error {
	if pl == nil {
		return ErrNilPolyline
	}
	n := pl.N()
	if n < 3 {
		return fmt.Errorf("%w: need at least 3 knots, got %d", ErrTooFewKnots, n)
	}
	for i := 0; i < n; i++ {
		z := pl.points[i]
		x, y := real(z), imag(z)
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			return fmt.Errorf("%w at knot %d", ErrInvalidKnot, i)
		}
	}
	if math.IsNaN(scaling) || scaling < 0 || scaling > 1 {
		return fmt.Errorf("%w: %g", ErrScalingOutOfRange, scaling)
	}
	if pl.cycle && cmplx.Abs((pl.points[0]-pl.points[n-1]).C()) <= _epsilon {
		return ErrCycleHasDuplicateTerminalKnot
	}
	limit := n - 1
	if pl.cycle {
		limit = n
	}
	for i := 0; i < limit; i++ {
		j := (i + 1) % n
		if cmplx.Abs((pl.Z(j) - pl.Z(i)).C()) <= _epsilon {
			return fmt.Errorf("%w between knots %d and %d", ErrDegenerateSegment, i, j)
		}
	}
	return nil
}
