package splines

// Synthesize computes a smooth spline through the knots of a polyline.
// This is the central API function of this package.
//
// The scaling factor controls the curviness: it is the fraction of the
// joining-line length which the two handles of an interior knot span
// together. 0 degenerates the spline into the underlying polyline, values
// around 0.33 - 0.5 give pleasing results, values outside of [0,1] are
// rejected.
//
// Synthesis is a pure function: identical input yields identical output,
// and concurrent calls need no coordination.
func Synthesize(pl *Polyline, scaling float64) (*Spline, error) {
	return SynthesizeObserved(pl, scaling, nil)
}

// MustSynthesize is a convenience helper which panics on validation errors.
func MustSynthesize(pl *Polyline, scaling float64) *Spline {
	sp, err := Synthesize(pl, scaling)
	if err != nil {
		panic(err)
	}
	return sp
}

// SynthesizeObserved is Synthesize with a diagnostics side channel: every
// per-knot geometry record is handed to obs as it is derived. A nil
// observer is allowed; the primary output is the same either way.
func SynthesizeObserved(pl *Polyline, scaling float64, obs Observer) (*Spline, error) {
	controls, err := findControls(pl, scaling, nil, obs)
	if err != nil {
		return nil, err
	}
	sp := assemble(pl, controls)
	tracer().Infof("synthesized spline: %s", AsString(sp))
	return sp, nil
}

// FindSplineControls computes the control points flanking every interior
// knot of a polyline (every knot, for a closed polyline), without
// assembling curve segments. Clients may provide a container for the
// control points; if controls is nil, the function allocates one.
func FindSplineControls(pl *Polyline, scaling float64, controls *Controls) (*Controls, error) {
	return findControls(pl, scaling, controls, nil)
}

func findControls(pl *Polyline, scaling float64, controls *Controls, obs Observer) (*Controls, error) {
	if err := pl.ValidateForSynthesis(scaling); err != nil {
		return nil, err
	}
	if controls == nil {
		controls = &Controls{}
	}
	lo, hi := 1, pl.N()-2 // outermost knots of an open polyline have no joining line
	if pl.IsCycle() {
		lo, hi = 0, pl.N()-1
	}
	for i := lo; i <= hi; i++ {
		g, err := knotGeometry(pl, i, scaling)
		if err != nil {
			return nil, err
		}
		tracer().Debugf("knot %d: joining line %s, d = %.4g, handles %s and %s",
			i, g.Join, g.Length, ptstring(g.PreC, true), ptstring(g.PostC, true))
		controls.SetPreControl(i, g.PreC)
		controls.SetPostControl(i, g.PostC)
		if obs != nil {
			obs.Knot(g)
		}
	}
	return controls, nil
}

// assemble orders knots and control points into curve segments. Open
// splines start and end with a quadratic segment (single handle), all
// other segments are cubic. Closed splines consist of cubic segments only.
func assemble(pl *Polyline, controls *Controls) *Spline {
	n := pl.N()
	sp := &Spline{start: pl.Z(0), cycle: pl.IsCycle()}
	if pl.IsCycle() {
		sp.segments = make([]CurveSegment, 0, n)
		for i := 0; i < n; i++ {
			sp.segments = append(sp.segments, CubicSegment{
				P0:    pl.Z(i),
				Ctrl1: controls.PostControl(i),
				Ctrl2: controls.PreControl((i + 1) % n),
				P1:    pl.Z((i + 1) % n),
			})
		}
		return sp
	}
	sp.segments = make([]CurveSegment, 0, n-1)
	sp.segments = append(sp.segments, QuadraticSegment{
		P0:   pl.Z(0),
		Ctrl: controls.PreControl(1),
		P1:   pl.Z(1),
	})
	for i := 1; i <= n-3; i++ {
		sp.segments = append(sp.segments, CubicSegment{
			P0:    pl.Z(i),
			Ctrl1: controls.PostControl(i),
			Ctrl2: controls.PreControl(i + 1),
			P1:    pl.Z(i + 1),
		})
	}
	sp.segments = append(sp.segments, QuadraticSegment{
		P0:   pl.Z(n - 2),
		Ctrl: controls.PostControl(n - 2),
		P1:   pl.Z(n - 1),
	})
	return sp
}
