package pen

import (
	"image"
	"image/color"
)

// Style and transform operations forward directly to the surface after no
// more than dash bookkeeping; none of them touch the path state.

// SetLineWidth sets the stroke width.
func (p *Pen) SetLineWidth(w float64) *Pen {
	p.s.SetLineWidth(w)
	return p
}

// SetLineCap sets the shape of stroke endpoints.
func (p *Pen) SetLineCap(c LineCap) *Pen {
	p.s.SetLineCap(c)
	return p
}

// SetLineJoin sets the shape of stroke joins.
func (p *Pen) SetLineJoin(j LineJoin) *Pen {
	p.s.SetLineJoin(j)
	return p
}

// SetDash sets the dash pattern from alternating dash/gap lengths.
// Passing no arguments clears the pattern (solid lines).
func (p *Pen) SetDash(lengths ...float64) *Pen {
	p.dash = NewDash(lengths...)
	p.s.SetDash(p.dash)
	return p
}

// SetDashOffset sets the starting offset into the dash pattern.
// This has no effect if no dash pattern is set.
func (p *Pen) SetDashOffset(offset float64) *Pen {
	if p.dash != nil {
		p.dash = p.dash.WithOffset(offset)
		p.s.SetDash(p.dash)
	}
	return p
}

// SetStrokeColor sets the color used by Stroke.
func (p *Pen) SetStrokeColor(c color.Color) *Pen {
	p.s.SetStrokeColor(c)
	return p
}

// SetFillColor sets the color used by Fill.
func (p *Pen) SetFillColor(c color.Color) *Pen {
	p.s.SetFillColor(c)
	return p
}

// SetShadow sets the shadow for subsequent paint operations.
func (p *Pen) SetShadow(sh Shadow) *Pen {
	p.s.SetShadow(sh)
	return p
}

// ClearShadow disables shadowing.
func (p *Pen) ClearShadow() *Pen {
	p.s.SetShadow(Shadow{})
	return p
}

// Save pushes the surface's transform and style state.
func (p *Pen) Save() *Pen {
	p.s.Save()
	return p
}

// Restore pops the surface's transform and style state.
func (p *Pen) Restore() *Pen {
	p.s.Restore()
	return p
}

// Translate moves the surface's coordinate origin.
func (p *Pen) Translate(x, y float64) *Pen {
	p.s.Translate(x, y)
	return p
}

// Scale scales the surface's coordinate system.
func (p *Pen) Scale(x, y float64) *Pen {
	p.s.Scale(x, y)
	return p
}

// Rotate rotates the surface's coordinate system by angle radians.
func (p *Pen) Rotate(angle float64) *Pen {
	p.s.Rotate(angle)
	return p
}

// ClearRect clears a w×h region with its top-left corner at the current
// position.
func (p *Pen) ClearRect(w, h float64) *Pen {
	p.s.ClearRect(p.pos.X, p.pos.Y, w, h)
	return p
}

// Image draws an image at its natural size with its top-left corner at
// the current position.
func (p *Pen) Image(img image.Image) *Pen {
	p.s.DrawImage(img, p.pos.X, p.pos.Y, 0, 0)
	return p
}

// ImageSized draws an image scaled to w×h with its top-left corner at the
// current position.
func (p *Pen) ImageSized(img image.Image, w, h float64) *Pen {
	p.s.DrawImage(img, p.pos.X, p.pos.Y, w, h)
	return p
}
