package pen

import "image/color"

// Stroke paints the outline of the current path with the current stroke
// style. Queued text is rendered first, stroked at its snapshotted
// position and style. Stroke is terminal for the current path: the next
// path-mutating call begins a fresh one.
func (p *Pen) Stroke() *Pen {
	p.flushPoint()
	for _, t := range p.queued {
		p.s.StrokeText(t.s, t.pos.X, t.pos.Y, t.style)
	}
	p.s.Stroke()
	p.pendingClose = true
	return p
}

// StrokeWith sets the line width and stroke color, then strokes.
func (p *Pen) StrokeWith(width float64, c color.Color) *Pen {
	p.s.SetLineWidth(width)
	p.s.SetStrokeColor(c)
	return p.Stroke()
}

// Fill paints the interior of the current path with the current fill
// color using the non-zero winding rule. Queued text is rendered first,
// filled at its snapshotted position and style. Fill is terminal for the
// current path.
func (p *Pen) Fill() *Pen {
	return p.fill(FillRuleNonZero)
}

// FillWith sets the fill color, then fills using the given rule.
// The even-odd rule matters for self-intersecting paths.
func (p *Pen) FillWith(c color.Color, rule FillRule) *Pen {
	p.s.SetFillColor(c)
	return p.fill(rule)
}

func (p *Pen) fill(rule FillRule) *Pen {
	p.flushPoint()
	for _, t := range p.queued {
		p.s.FillText(t.s, t.pos.X, t.pos.Y, t.style)
	}
	p.s.Fill(rule)
	p.pendingClose = true
	return p
}
