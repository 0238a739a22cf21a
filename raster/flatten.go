package raster

import (
	"math"

	"github.com/gogpu/pen"
)

// curveSteps picks a flattening step count from the rough arc length of the
// control polygon. Enough for sub-pixel error at typical canvas sizes.
func curveSteps(approxLen float64) int {
	n := int(approxLen / 3)
	if n < 8 {
		return 8
	}
	if n > 64 {
		return 64
	}
	return n
}

func quadPoint(p0, p1, p2 pen.Point, t float64) pen.Point {
	u := 1 - t
	return pen.Pt(
		u*u*p0.X+2*u*t*p1.X+t*t*p2.X,
		u*u*p0.Y+2*u*t*p1.Y+t*t*p2.Y,
	)
}

func cubicPoint(p0, p1, p2, p3 pen.Point, t float64) pen.Point {
	u := 1 - t
	return pen.Pt(
		u*u*u*p0.X+3*u*u*t*p1.X+3*u*t*t*p2.X+t*t*t*p3.X,
		u*u*u*p0.Y+3*u*u*t*p1.Y+3*u*t*t*p2.Y+t*t*t*p3.Y,
	)
}

// arcSteps picks a flattening step count for an arc of radius r spanning
// sweep radians.
func arcSteps(r, sweep float64) int {
	n := int(math.Abs(sweep) * math.Max(r, 1) / 2)
	if n < 8 {
		return 8
	}
	if n > 128 {
		return 128
	}
	return n
}

// Arc implements pen.Surface. If a subpath is open, a line connects the
// current point to the arc start, matching canvas semantics.
func (s *Surface) Arc(x, y, r, a1, a2 float64) {
	start := pen.Pt(x+r*math.Cos(a1), y+r*math.Sin(a1))
	if s.curSet {
		s.LineTo(start.X, start.Y)
	} else {
		s.MoveTo(start.X, start.Y)
	}
	sweep := a2 - a1
	steps := arcSteps(r*s.state.matrix.ScaleFactor(), sweep)
	for i := 1; i <= steps; i++ {
		a := a1 + sweep*float64(i)/float64(steps)
		s.vertex(x+r*math.Cos(a), y+r*math.Sin(a))
	}
	s.cur = pen.Pt(x+r*math.Cos(a2), y+r*math.Sin(a2))
}

// Ellipse implements pen.Surface. The ellipse is a closed contour of its
// own, leaving the current point at its rightmost point.
func (s *Surface) Ellipse(x, y, rx, ry float64) {
	s.contours = append(s.contours, contour{start: pen.Pt(x+rx, y), closed: true})
	steps := arcSteps(math.Max(rx, ry)*s.state.matrix.ScaleFactor(), 2*math.Pi)
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		s.vertex(x+rx*math.Cos(a), y+ry*math.Sin(a))
	}
	s.cur = pen.Pt(x+rx, y)
	s.curSet = true
}

// ArcTo implements pen.Surface with canvas arcTo semantics: an arc of the
// given radius tangent to the lines current→(cx,cy) and (cx,cy)→(x,y).
// Degenerate configurations collapse to a line to the control point.
func (s *Surface) ArcTo(cx, cy, x, y, r float64) {
	if !s.curSet {
		s.MoveTo(cx, cy)
		return
	}
	p0 := s.cur
	p1 := pen.Pt(cx, cy)
	p2 := pen.Pt(x, y)

	v0 := p0.Sub(p1)
	v1 := p2.Sub(p1)
	l0 := v0.Length()
	l1 := v1.Length()
	if r <= 0 || l0 == 0 || l1 == 0 {
		s.LineTo(cx, cy)
		return
	}
	v0 = v0.Mul(1 / l0)
	v1 = v1.Mul(1 / l1)

	cross := v0.X*v1.Y - v0.Y*v1.X
	dot := v0.X*v1.X + v0.Y*v1.Y
	if math.Abs(cross) < 1e-12 {
		// Collinear: no arc fits.
		s.LineTo(cx, cy)
		return
	}

	theta := math.Acos(math.Max(-1, math.Min(1, dot)))
	tanDist := r / math.Tan(theta/2)
	t0 := p1.Add(v0.Mul(tanDist))
	t1 := p1.Add(v1.Mul(tanDist))

	bisector := v0.Add(v1).Normalize()
	center := p1.Add(bisector.Mul(r / math.Sin(theta/2)))

	a0 := math.Atan2(t0.Y-center.Y, t0.X-center.X)
	a1 := math.Atan2(t1.Y-center.Y, t1.X-center.X)
	sweep := a1 - a0
	// Pick the short way around, oriented by the turn direction.
	if cross > 0 && sweep < 0 {
		sweep += 2 * math.Pi
	} else if cross < 0 && sweep > 0 {
		sweep -= 2 * math.Pi
	}

	s.LineTo(t0.X, t0.Y)
	steps := arcSteps(r*s.state.matrix.ScaleFactor(), sweep)
	for i := 1; i <= steps; i++ {
		a := a0 + sweep*float64(i)/float64(steps)
		s.vertex(center.X+r*math.Cos(a), center.Y+r*math.Sin(a))
	}
	s.cur = t1
}
