package pen

// curveKind identifies which curve command is waiting for its destination.
type curveKind uint8

const (
	curveNone curveKind = iota
	curveQuad
	curveCubic
	curveArcTo
)

// pendingCurve is a curve command captured before its destination point is
// known. The zero value means no curve is pending. Exactly one subsequent
// point-adding call consumes it, emitting the curve to the new position
// instead of a line.
type pendingCurve struct {
	kind   curveKind
	c1, c2 Point
	radius float64
}

// emit issues the captured curve to the destination (x, y).
func (c pendingCurve) emit(s Surface, x, y float64) {
	switch c.kind {
	case curveQuad:
		s.QuadTo(c.c1.X, c.c1.Y, x, y)
	case curveCubic:
		s.CubicTo(c.c1.X, c.c1.Y, c.c2.X, c.c2.Y, x, y)
	case curveArcTo:
		s.ArcTo(c.c1.X, c.c1.Y, x, y, c.radius)
	}
}

// QuadTo defers a quadratic Bezier curve through one control point.
// The curve is drawn to the destination given by the next point-adding
// call (XY and friends).
func (p *Pen) QuadTo(cx, cy float64) *Pen {
	p.pending = pendingCurve{kind: curveQuad, c1: Pt(cx, cy)}
	return p
}

// CurveTo defers a cubic Bezier curve through two control points.
// The curve is drawn to the destination given by the next point-adding
// call.
func (p *Pen) CurveTo(c1x, c1y, c2x, c2y float64) *Pen {
	p.pending = pendingCurve{kind: curveCubic, c1: Pt(c1x, c1y), c2: Pt(c2x, c2y)}
	return p
}

// ArcTo defers an arc-tangent construction through the control point
// (cx, cy) with the given radius. The arc is drawn toward the destination
// given by the next point-adding call.
func (p *Pen) ArcTo(cx, cy, r float64) *Pen {
	p.pending = pendingCurve{kind: curveArcTo, c1: Pt(cx, cy), radius: r}
	return p
}
