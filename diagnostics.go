package splines

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// Observer is a diagnostics side channel. During synthesis it receives the
// geometry record of every interior knot, in knot order. Observers must
// not rely on being called to produce the spline: synthesis without an
// observer yields the identical result.
type Observer interface {
	Knot(g KnotGeometry)
}

// Recorder is an Observer which collects all geometry records for later
// inspection, e.g. for construction-line overlays or tabular output.
type Recorder struct {
	Geometry []KnotGeometry
}

// Knot stores a geometry record.
func (rec *Recorder) Knot(g KnotGeometry) {
	rec.Geometry = append(rec.Geometry, g)
}

// Table renders the collected records as a labeled text table, one row per
// interior knot: joining line, handle angles (in degrees) and radii, and
// the resulting control points.
func (rec *Recorder) Table() string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 2, 0, 2, ' ', 0)
	fmt.Fprintln(w, "knot\tz\tjoin\tlength\tunit\tangle-\tangle+\tr-\tr+\tctrl-\tctrl+")
	for _, g := range rec.Geometry {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.4f\t%s\t%.2f\t%.2f\t%.4f\t%.4f\t%s\t%s\n",
			g.Knot, ptstring(g.Z, false), ptstring(g.Join, false), g.Length,
			ptstring(g.Unit, true), rad2deg(g.AnglePre), rad2deg(g.AnglePost),
			g.RadiusPre, g.RadiusPost, ptstring(g.PreC, true), ptstring(g.PostC, true))
	}
	w.Flush()
	return b.String()
}
