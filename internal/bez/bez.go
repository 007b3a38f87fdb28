// Package bez computes exact vertical bounds of glyph outlines.
//
// Control points of a Bezier curve can lie well outside the curve itself,
// so a control-point bounding box overstates how far a glyph reaches. The
// extent engine ranks words by their extremes, so it needs tight bounds:
// curve extrema are found by solving for the roots of the y-derivative.
package bez

import (
	"math"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
)

// YExtent returns the lowest and highest y coordinate reached by the
// outline, in the units of its segment points. ok is false for an outline
// with no segments.
func YExtent(segments []font.Segment) (lowest, highest float64, ok bool) {
	if len(segments) == 0 {
		return 0, 0, false
	}

	lowest = math.Inf(1)
	highest = math.Inf(-1)
	include := func(y float64) {
		lowest = math.Min(lowest, y)
		highest = math.Max(highest, y)
	}

	var cur float64 // y of the current point
	for _, seg := range segments {
		switch seg.Op {
		case ot.SegmentOpMoveTo, ot.SegmentOpLineTo:
			cur = float64(seg.Args[0].Y)
			include(cur)
		case ot.SegmentOpQuadTo:
			y0, y1, y2 := cur, float64(seg.Args[0].Y), float64(seg.Args[1].Y)
			include(y2)
			quadExtremum(y0, y1, y2, include)
			cur = y2
		case ot.SegmentOpCubeTo:
			y0 := cur
			y1 := float64(seg.Args[0].Y)
			y2 := float64(seg.Args[1].Y)
			y3 := float64(seg.Args[2].Y)
			include(y3)
			cubicExtrema(y0, y1, y2, y3, include)
			cur = y3
		}
	}
	return lowest, highest, true
}

// quadExtremum evaluates the quadratic at its single interior derivative
// root, if any.
//
// The derivative of a quadratic Bezier is linear:
// B'(t) = 2[(y1-y0) + t(y2-2y1+y0)], zero at t = (y0-y1)/(y0-2y1+y2).
func quadExtremum(y0, y1, y2 float64, include func(float64)) {
	d0 := y1 - y0
	dd := (y2 - y1) - d0
	if dd == 0 {
		return
	}
	t := -d0 / dd
	if t > 0 && t < 1 {
		mt := 1 - t
		include(mt*mt*y0 + 2*mt*t*y1 + t*t*y2)
	}
}

// cubicExtrema evaluates the cubic at its interior derivative roots.
//
// The derivative is a quadratic in the differences d0=y1-y0, d1=y2-y1,
// d2=y3-y2: (d0-2d1+d2)t^2 + 2(d1-d0)t + d0 = 0.
func cubicExtrema(y0, y1, y2, y3 float64, include func(float64)) {
	d0 := y1 - y0
	d1 := y2 - y1
	d2 := y3 - y2

	eval := func(t float64) {
		if t <= 0 || t >= 1 {
			return
		}
		mt := 1 - t
		include(mt*mt*mt*y0 + 3*mt*mt*t*y1 + 3*mt*t*t*y2 + t*t*t*y3)
	}

	a := d0 - 2*d1 + d2
	b := 2 * (d1 - d0)
	c := d0
	if a == 0 {
		// Degenerate: the derivative is linear.
		if b != 0 {
			eval(-c / b)
		}
		return
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return
	}
	if disc == 0 {
		eval(-b / (2 * a))
		return
	}

	// Numerically stable split to avoid cancellation.
	q := -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
	eval(q / a)
	eval(c / q)
}
