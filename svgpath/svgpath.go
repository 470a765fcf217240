// Package svgpath connects package splines to SVG: it parses the textual
// point-list syntax of a polyline attribute and serializes a synthesized
// spline to path data for the d attribute of an SVG path element.
//
// The serialization is a pure, exact mapping: the same spline always
// produces the same path data, byte for byte.
//
// # BSD License
//
// # Copyright (c) Norbert Pillmayer
//
// All rights reserved.
//
// Please refer to the license file for more information.
package svgpath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/splines"
)

// tracer writes to trace with key 'splines.svgpath'
func tracer() tracing.Trace {
	return tracing.Select("splines.svgpath")
}

// ErrMalformedInput indicates a point-list syntax violation.
var ErrMalformedInput = errors.New("malformed point list")

// ParsePoints parses a whitespace-delimited sequence of "x,y" tokens into
// points, e.g.
//
//	"50,182 100,166 150,87 200,191 250,106"
//
// Any token not matching number,number is a fatal syntax violation, as is
// a list of fewer than 3 points.
func ParsePoints(input string) ([]arithm.Pair, error) {
	tokens := strings.Fields(input)
	points := make([]arithm.Pair, 0, len(tokens))
	for i, token := range tokens {
		sx, sy, ok := strings.Cut(token, ",")
		if !ok {
			return nil, fmt.Errorf("%w: token %d (%q) is not of form x,y", ErrMalformedInput, i, token)
		}
		x, err := strconv.ParseFloat(sx, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d (%q): %v", ErrMalformedInput, i, token, err)
		}
		y, err := strconv.ParseFloat(sy, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d (%q): %v", ErrMalformedInput, i, token, err)
		}
		points = append(points, arithm.P(x, y))
	}
	if len(points) < 3 {
		return nil, fmt.Errorf("%w: need at least 3 points, got %d", ErrMalformedInput, len(points))
	}
	tracer().Debugf("parsed %d points", len(points))
	return points, nil
}

// PathData serializes a spline to SVG path data: an M command for the
// starting knot, followed by a Q command per quadratic segment and a C
// command per cubic segment, space-joined. Closed splines end with Z.
func PathData(sp *splines.Spline) string {
	var b strings.Builder
	b.WriteString("M ")
	b.WriteString(coord(sp.Start()))
	for _, seg := range sp.Segments() {
		switch c := seg.(type) {
		case splines.QuadraticSegment:
			b.WriteString(" Q ")
			b.WriteString(coord(c.Ctrl))
			b.WriteByte(' ')
			b.WriteString(coord(c.P1))
		case splines.CubicSegment:
			b.WriteString(" C ")
			b.WriteString(coord(c.Ctrl1))
			b.WriteByte(' ')
			b.WriteString(coord(c.Ctrl2))
			b.WriteByte(' ')
			b.WriteString(coord(c.P1))
		}
	}
	if sp.IsCycle() {
		b.WriteString(" Z")
	}
	return b.String()
}

// HandleLines emits path data for a diagnostic overlay: one straight line
// from each knot to each of its handles, in knot order. Feed it the
// records collected by a splines.Recorder. The overlay is presentation
// only and plays no part in synthesis.
func HandleLines(geometry []splines.KnotGeometry) string {
	var b strings.Builder
	for _, g := range geometry {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "M %s L %s M %s L %s",
			coord(g.Z), coord(g.PreC), coord(g.Z), coord(g.PostC))
	}
	return b.String()
}

// coord formats a point as "x,y" with the shortest representation which
// round-trips exactly.
func coord(p arithm.Pair) string {
	return strconv.FormatFloat(p.X(), 'g', -1, 64) + "," + strconv.FormatFloat(p.Y(), 'g', -1, 64)
}
