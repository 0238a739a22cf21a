package pen

import "iter"

// Pen is a chainable drawing cursor over a Surface.
//
// The pen keeps a logical current position that is deliberately one call
// behind the surface: a point recorded by XY is only emitted (as a move or
// a line) once a later point, structural call or paint forces it out. This
// lets a curve issued before its destination is known (QuadTo, CurveTo,
// ArcTo) intercept the next point, and spares shape calls from emitting a
// trailing line segment when they only reposition the pen.
//
// After Stroke or Fill the pen marks the path as spent; the next
// path-mutating call begins a fresh surface path and discards queued text.
//
// All methods return the pen for chaining. A Pen is not safe for
// concurrent use.
type Pen struct {
	s Surface

	// pos is the logical current point. committed is false while pos has
	// been recorded but not yet pushed into the surface path.
	pos       Point
	committed bool

	// start is the point that opened the current subpath; valid only while
	// hasStart is true.
	start    Point
	hasStart bool

	// pendingClose is set by paint operations; the next path-mutating call
	// must begin a fresh path before doing anything else.
	pendingClose bool

	// pending is a curve waiting for its destination point.
	pending pendingCurve

	textStyle TextStyle
	queued    []queuedText

	dash *Dash
}

// New creates a Pen drawing onto the given surface.
// The initial position is (0, 0) with nothing pending.
func New(s Surface) *Pen {
	return &Pen{s: s, committed: true}
}

// Surface returns the surface the pen draws onto.
func (p *Pen) Surface() Surface { return p.s }

// Position returns the pen's logical current position.
func (p *Pen) Position() Point { return p.pos }

// checkPathReset lazily begins a fresh path after a paint operation.
// It must run first in every path-mutating operation so that a stroke or
// fill always starts a logically independent path for what follows.
func (p *Pen) checkPathReset() {
	if !p.pendingClose {
		return
	}
	p.pendingClose = false
	p.queued = p.queued[:0]
	p.hasStart = false
	p.pending = pendingCurve{}
	p.s.BeginPath()
	Logger().Debug("pen: lazy path reset")
}

// flushPoint pushes a recorded-but-unemitted position into the surface
// path: a move when no subpath is open (which also marks the subpath
// start), a line otherwise.
func (p *Pen) flushPoint() {
	if p.committed {
		return
	}
	if !p.hasStart {
		p.s.MoveTo(p.pos.X, p.pos.Y)
		p.start = p.pos
		p.hasStart = true
	} else {
		p.s.LineTo(p.pos.X, p.pos.Y)
	}
	p.committed = true
}

// setPoint records a new logical position, flushing the previous one
// first. The new point stays unemitted until a later call forces it out.
func (p *Pen) setPoint(x, y float64) {
	p.flushPoint()
	p.pos = Pt(x, y)
	p.committed = false
}

// XY moves the pen to an absolute position. If a line is in progress the
// previous position is emitted first; if a curve is pending it is emitted
// to the new position instead of a line.
func (p *Pen) XY(x, y float64) *Pen {
	p.checkPathReset()
	p.setPoint(x, y)
	if p.pending.kind != curveNone {
		p.pending.emit(p.s, x, y)
		p.pending = pendingCurve{}
		p.committed = true
	}
	return p
}

// X moves the pen horizontally, keeping the current y.
func (p *Pen) X(x float64) *Pen { return p.XY(x, p.pos.Y) }

// Y moves the pen vertically, keeping the current x.
func (p *Pen) Y(y float64) *Pen { return p.XY(p.pos.X, y) }

// RelXY moves the pen by a delta from the current position.
func (p *Pen) RelXY(dx, dy float64) *Pen { return p.XY(p.pos.X+dx, p.pos.Y+dy) }

// RelX moves the pen horizontally by a delta.
func (p *Pen) RelX(dx float64) *Pen { return p.XY(p.pos.X+dx, p.pos.Y) }

// RelY moves the pen vertically by a delta.
func (p *Pen) RelY(dy float64) *Pen { return p.XY(p.pos.X, p.pos.Y+dy) }

// Points feeds the pen from a coordinate sequence. The path-reset check
// runs once up front; each produced pair then goes through the raw
// flush/record primitive, so pending curves are not consumed on this path.
func (p *Pen) Points(seq iter.Seq2[float64, float64]) *Pen {
	p.checkPathReset()
	for x, y := range seq {
		p.setPoint(x, y)
	}
	return p
}

// Close ends the current subpath and connects it back to its starting
// point: a line is drawn back to the subpath start if the pen is not
// already there, and the surface then closes the path geometrically.
// Without an open subpath only the geometric close is issued.
func (p *Pen) Close() *Pen {
	p.checkPathReset()
	p.flushPoint()
	p.pending = pendingCurve{}
	if p.hasStart {
		if p.pos != p.start {
			p.setPoint(p.start.X, p.start.Y)
			p.flushPoint()
		}
		p.hasStart = false
	}
	p.s.ClosePath()
	return p
}

// Split ends the current subpath without closing it: the next point starts
// a disconnected subpath with no line between them.
func (p *Pen) Split() *Pen {
	p.checkPathReset()
	p.flushPoint()
	p.pending = pendingCurve{}
	p.hasStart = false
	return p
}

// Join re-records the current position as a fresh pending point, forcing
// the next point-adding call to draw a line starting exactly here even if
// no coordinate changed. Used to bridge two shape primitives into one
// continuous outline.
func (p *Pen) Join() *Pen {
	p.checkPathReset()
	p.flushPoint()
	p.committed = false
	return p
}
