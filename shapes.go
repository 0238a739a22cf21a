package pen

import "math"

// Shape primitives add self-contained geometry anchored at the pen's
// current position. They run the lazy path-reset check, drop any deferred
// curve (a shape is not a point-adding step, so the curve loses its
// destination), and leave the position committed.

// Rect adds a rectangle with its top-left corner at the current position.
func (p *Pen) Rect(w, h float64) *Pen {
	p.checkPathReset()
	p.pending = pendingCurve{}
	p.s.Rect(p.pos.X, p.pos.Y, w, h)
	p.committed = true
	return p
}

// CenteredRect adds a rectangle centered on the current position.
func (p *Pen) CenteredRect(w, h float64) *Pen {
	p.checkPathReset()
	p.pending = pendingCurve{}
	p.s.Rect(p.pos.X-w/2, p.pos.Y-h/2, w, h)
	p.committed = true
	return p
}

// Square adds a square with its top-left corner at the current position.
func (p *Pen) Square(size float64) *Pen {
	return p.Rect(size, size)
}

// CenteredSquare adds a square centered on the current position.
func (p *Pen) CenteredSquare(size float64) *Pen {
	return p.CenteredRect(size, size)
}

// Ellipse adds a full ellipse centered on the current position.
func (p *Pen) Ellipse(rx, ry float64) *Pen {
	p.checkPathReset()
	p.pending = pendingCurve{}
	p.s.Ellipse(p.pos.X, p.pos.Y, rx, ry)
	p.committed = true
	return p
}

// Arc adds a circular arc around the current position from angle a1 to a2
// (radians).
func (p *Pen) Arc(r, a1, a2 float64) *Pen {
	p.checkPathReset()
	p.pending = pendingCurve{}
	p.s.Arc(p.pos.X, p.pos.Y, r, a1, a2)
	p.committed = true
	return p
}

// Circle adds a full circle of radius r centered on the current position.
// The circle is always its own closed subpath: a move to the circle's
// rightmost point is forced first, and the subpath start is cleared
// afterwards so a later Close does not connect back into it.
func (p *Pen) Circle(r float64) *Pen {
	p.checkPathReset()
	p.pending = pendingCurve{}
	p.s.MoveTo(p.pos.X+r, p.pos.Y)
	p.s.Arc(p.pos.X, p.pos.Y, r, 0, 2*math.Pi)
	p.committed = true
	p.hasStart = false
	return p
}
