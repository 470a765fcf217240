package svgpath

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/splines"
	"github.com/stretchr/testify/assert"
)

func TestParsePoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	points, err := ParsePoints("50,182 100,166 150,87 200,191 250,106")
	assert.NoError(t, err)
	assert.Len(t, points, 5)
	assert.Equal(t, arithm.P(50, 182), points[0])
	assert.Equal(t, arithm.P(250, 106), points[4])
}

func TestParsePointsAcceptsArbitraryWhitespace(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	points, err := ParsePoints(" 0,0\t1.5,-2e1\n  3,4 ")
	assert.NoError(t, err)
	assert.Len(t, points, 3)
	assert.Equal(t, arithm.P(1.5, -20), points[1])
}

func TestParsePointsRejectsMalformedTokens(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, input := range []string{
		"50,182 100 150,87",  // missing comma
		"a,b 1,2 3,4",        // not a number
		"1,2,3 4,5 6,7",      // too many components
		"1, 2 3,4 5,6",       // empty y component
	} {
		_, err := ParsePoints(input)
		assert.ErrorIs(t, err, ErrMalformedInput, "input %q", input)
	}
}

func TestParsePointsRejectsTooFewPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := ParsePoints("1,2 3,4")
	assert.ErrorIs(t, err, ErrMalformedInput)
	_, err = ParsePoints("")
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestPathDataSnapshot(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pl := splines.Knots(arithm.P(0, 0), arithm.P(1, 0), arithm.P(2, 0), arithm.P(3, 0)).End()
	sp := splines.MustSynthesize(pl, 0.5)
	assert.Equal(t, "M 0,0 Q 0.5,0 1,0 C 1.5,0 1.5,0 2,0 Q 2.5,0 3,0", PathData(sp))
}

func TestPathDataScalingZeroIsPolyline(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pl := splines.Knots(arithm.P(0, 0), arithm.P(1, 1), arithm.P(2, 0)).End()
	sp := splines.MustSynthesize(pl, 0)
	// every control point collapses onto its knot
	assert.Equal(t, "M 0,0 Q 1,1 1,1 Q 1,1 2,0", PathData(sp))
}

func TestPathDataCycleEndsWithZ(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pl := splines.Knots(arithm.P(0, 0), arithm.P(2, 0), arithm.P(2, 2), arithm.P(0, 2)).Cycle()
	sp := splines.MustSynthesize(pl, 0.4)
	d := PathData(sp)
	assert.True(t, strings.HasPrefix(d, "M 0,0 C "), "path data: %s", d)
	assert.True(t, strings.HasSuffix(d, " Z"), "path data: %s", d)
	assert.Equal(t, 4, strings.Count(d, "C "), "path data: %s", d)
}

func TestPathDataIsReproducible(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	points, err := ParsePoints("50,182 100,166 150,87 200,191 250,106")
	assert.NoError(t, err)
	d1 := PathData(splines.MustSynthesize(splines.Knots(points...).End(), 0.4))
	d2 := PathData(splines.MustSynthesize(splines.Knots(points...).End(), 0.4))
	assert.Equal(t, d1, d2)
	assert.True(t, strings.HasPrefix(d1, "M 50,182 Q "), "path data: %s", d1)
}

func TestHandleLinesOverlay(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pl := splines.Knots(arithm.P(50, 182), arithm.P(100, 166), arithm.P(150, 87),
		arithm.P(200, 191), arithm.P(250, 106)).End()
	rec := &splines.Recorder{}
	_, err := splines.SynthesizeObserved(pl, 0.4, rec)
	assert.NoError(t, err)
	overlay := HandleLines(rec.Geometry)
	// two construction lines per interior knot
	assert.Equal(t, 2*len(rec.Geometry), strings.Count(overlay, "M "))
	assert.Equal(t, 2*len(rec.Geometry), strings.Count(overlay, "L "))
	assert.True(t, strings.HasPrefix(overlay, "M 100,166 L "), "overlay: %s", overlay)
}

func ExamplePathData() {
	pl := splines.Knots(arithm.P(0, 0), arithm.P(1, 0), arithm.P(2, 0), arithm.P(3, 0)).End()
	sp := splines.MustSynthesize(pl, 0.5)
	fmt.Println(PathData(sp))
	// Output:
	// M 0,0 Q 0.5,0 1,0 C 1.5,0 1.5,0 2,0 Q 2.5,0 3,0
}
